// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/bloom-crm/internal/logger"
	"github.com/MKhiriev/bloom-crm/internal/service"
	"github.com/MKhiriev/bloom-crm/internal/store"
	"github.com/MKhiriev/bloom-crm/internal/utils"
	"github.com/MKhiriev/bloom-crm/internal/validators"
	"github.com/MKhiriev/bloom-crm/models"
)

const problemTypeDefault = "about:blank"

// errorStatuses is checked in order, so an error wrapping several
// sentinels gets the status of the first one listed.
var errorStatuses = []struct {
	target error
	status int
}{
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrIntegrityCheckFailed, http.StatusBadRequest},
	{ErrReadingBody, http.StatusBadRequest},
	{ErrRouteNotFound, http.StatusNotFound},
	{ErrDatabaseUnavailable, http.StatusServiceUnavailable},

	{validators.ErrInvalidClientDraft, http.StatusBadRequest},

	{service.ErrNoPinger, http.StatusServiceUnavailable},

	{store.ErrClientNotFound, http.StatusNotFound},
	{store.ErrClientAlreadyExists, http.StatusConflict},

	{context.DeadlineExceeded, http.StatusGatewayTimeout},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

// statusFromError returns the status for err and the sentinel it matched.
// Unknown errors are 500 with a nil sentinel.
func statusFromError(err error) (int, error) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status, e.target
		}
	}
	return http.StatusInternalServerError, nil
}

// newProblem builds the problem document for err. Client errors expose the
// matched sentinel's message; server errors never expose internals.
func newProblem(r *http.Request, err error) models.Problem {
	status, target := statusFromError(err)

	problem := models.Problem{
		Type:     problemTypeDefault,
		Title:    http.StatusText(status),
		Status:   status,
		Instance: r.URL.Path,
	}
	if traceID, ok := utils.GetTraceIDFromContext(r.Context()); ok {
		problem.TraceID = traceID
	}

	if status < http.StatusInternalServerError && target != nil {
		problem.Detail = target.Error()
	}

	var verr *validators.ValidationError
	if errors.As(err, &verr) {
		problem.Errors = verr.Fields
	}

	return problem
}

// writeError logs err and answers with its problem document.
func writeError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	problem := newProblem(r, err)

	log := logger.FromRequest(r)
	if problem.Status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Int("status", problem.Status).Msg("request failed")
	} else {
		log.Warn().Err(err).Str("func", funcName).Int("status", problem.Status).Msg("request rejected")
	}

	if _, werr := utils.WriteProblem(w, problem, problem.Status); werr != nil {
		log.Err(werr).Str("func", funcName).Msg("error writing problem response")
	}
}
