// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/bloom-crm/internal/store"
	"github.com/MKhiriev/bloom-crm/internal/utils"
	"github.com/MKhiriev/bloom-crm/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantTarget error
	}{
		{"not found", store.ErrClientNotFound, http.StatusNotFound, store.ErrClientNotFound},
		{"wrapped not found", fmt.Errorf("get: %w", store.ErrClientNotFound), http.StatusNotFound, store.ErrClientNotFound},
		{"conflict", store.ErrClientAlreadyExists, http.StatusConflict, store.ErrClientAlreadyExists},
		{"validation", &validators.ValidationError{Fields: map[string]string{"id": "x"}}, http.StatusBadRequest, validators.ErrInvalidClientDraft},
		{"bad json", fmt.Errorf("%w: EOF", ErrInvalidJSON), http.StatusBadRequest, ErrInvalidJSON},
		{"query failure", fmt.Errorf("%w: boom", store.ErrExecutingQuery), http.StatusInternalServerError, store.ErrExecutingQuery},
		{
			name:       "timeout wins over statement failure",
			err:        fmt.Errorf("%w: %w", store.ErrExecutingStatement, context.DeadlineExceeded),
			wantStatus: http.StatusGatewayTimeout,
			wantTarget: context.DeadlineExceeded,
		},
		{
			name:       "unavailable wins over query failure",
			err:        fmt.Errorf("%w: %w", ErrDatabaseUnavailable, store.ErrExecutingQuery),
			wantStatus: http.StatusServiceUnavailable,
			wantTarget: ErrDatabaseUnavailable,
		},
		{"unknown", errors.New("something else"), http.StatusInternalServerError, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, target := statusFromError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantTarget, target)
		})
	}
}

func TestNewProblem(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/clients/", nil)
	req = req.WithContext(utils.WithTraceID(req.Context(), "trace-1"))

	verr := &validators.ValidationError{Fields: map[string]string{"lastName": validators.MsgLastNameRequired}}
	problem := newProblem(req, verr)

	assert.Equal(t, problemTypeDefault, problem.Type)
	assert.Equal(t, "Bad Request", problem.Title)
	assert.Equal(t, http.StatusBadRequest, problem.Status)
	assert.Equal(t, "/api/clients/", problem.Instance)
	assert.Equal(t, "trace-1", problem.TraceID)
	assert.Equal(t, verr.Fields, problem.Errors)
}

func TestNewProblem_ServerErrorHasNoDetail(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/clients/", nil)

	problem := newProblem(req, errors.New("pq: password authentication failed"))

	assert.Equal(t, http.StatusInternalServerError, problem.Status)
	assert.Empty(t, problem.Detail)
	assert.Empty(t, problem.TraceID)
	assert.Nil(t, problem.Errors)
}
