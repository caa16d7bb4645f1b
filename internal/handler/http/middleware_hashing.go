// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/bloom-crm/internal/logger"
	"github.com/MKhiriev/bloom-crm/internal/utils"
)

// verifyHashing checks the HashSHA256 header against the raw request body.
// When the server has no hash key the check is skipped. With a key, a
// missing or wrong signature is rejected with 400.
func (h *Handler) verifyHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.hasher.Enabled() {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)
		log.Debug().Str("func", "*Handler.verifyHashing").Msg("checking hash begins")

		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", ErrReadingBody, err), "*Handler.verifyHashing")
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		signature := r.Header.Get(utils.HashHeader)
		if signature == "" {
			writeError(w, r, fmt.Errorf("%w: no %s header", ErrIntegrityCheckFailed, utils.HashHeader), "*Handler.verifyHashing")
			return
		}

		if !h.hasher.Verify(body, signature) {
			log.Error().Str("func", "*Handler.verifyHashing").
				Str("hash from request", signature).
				Str("hashed body", h.hasher.SumHex(body)).
				Msg("hashes are not equal")
			writeError(w, r, ErrIntegrityCheckFailed, "*Handler.verifyHashing")
			return
		}

		log.Debug().Str("func", "*Handler.verifyHashing").Msg("hashes are equal")
		next.ServeHTTP(w, r)
	})
}
