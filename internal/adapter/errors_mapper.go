// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/bloom-crm/internal/validators"
	"github.com/MKhiriev/bloom-crm/models"
)

// mapHTTPError turns a non-2xx response into a wrapped status sentinel. A
// 400 problem document carrying field errors is additionally unwrapped into
// a *validators.ValidationError.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	problem, body := decodeProblem(resp)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		if len(problem.Errors) > 0 {
			return fmt.Errorf("%w: %w", ErrBadRequest, &validators.ValidationError{Fields: problem.Errors})
		}
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", ErrServiceUnavailable, body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, resp.StatusCode(), body)
	}
}

// decodeProblem reads a problem+json body. body is the text to show: the
// problem's detail or title when present, the raw body otherwise.
func decodeProblem(resp *resty.Response) (models.Problem, string) {
	raw := strings.TrimSpace(string(resp.Body()))

	var problem models.Problem
	if strings.HasPrefix(resp.Header().Get("Content-Type"), "application/problem+json") {
		if err := json.Unmarshal(resp.Body(), &problem); err == nil {
			switch {
			case problem.Detail != "":
				return problem, problem.Detail
			case problem.Title != "":
				return problem, problem.Title
			}
		}
	}

	if raw == "" {
		raw = http.StatusText(resp.StatusCode())
	}
	return problem, raw
}
