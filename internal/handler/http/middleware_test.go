// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/bloom-crm/internal/logger"
	"github.com/MKhiriev/bloom-crm/internal/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

// ---- withTraceID ----

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name           string
		requestTraceID string
	}{
		{name: "trace ID from request header is reused", requestTraceID: "my-custom-trace-id"},
		{name: "no trace ID in request, UUID generated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ctxTraceID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctxTraceID, _ = utils.GetTraceIDFromContext(r.Context())
				w.WriteHeader(http.StatusTeapot)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/clients/", nil)
			if tt.requestTraceID != "" {
				req.Header.Set(utils.TraceIDHeader, tt.requestTraceID)
			}
			rr := httptest.NewRecorder()
			newTestHandler().withTraceID(next).ServeHTTP(rr, req)

			responseTraceID := rr.Header().Get(utils.TraceIDHeader)
			require.NotEmpty(t, responseTraceID)
			assert.Equal(t, responseTraceID, ctxTraceID)
			assert.Equal(t, http.StatusTeapot, rr.Code)

			if tt.requestTraceID != "" {
				assert.Equal(t, tt.requestTraceID, responseTraceID)
			} else {
				_, err := uuid.Parse(responseTraceID)
				assert.NoError(t, err)
			}
		})
	}
}

func TestWithTraceID_LoggerCarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(utils.TraceIDHeader, "trace-7")
	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"trace_id":"trace-7"`)
}

func TestWithTraceID_UniqueIDs(t *testing.T) {
	h := newTestHandler()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	seen := make(map[string]struct{})
	for range 50 {
		rr := httptest.NewRecorder()
		h.withTraceID(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		seen[rr.Header().Get(utils.TraceIDHeader)] = struct{}{}
	}

	assert.Len(t, seen, 50)
}

// ---- withLogging ----

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name          string
		method        string
		path          string
		handlerStatus int
		response      string
		wantLog       []string
	}{
		{
			name:          "GET 200",
			method:        http.MethodGet,
			path:          "/api/clients/",
			handlerStatus: http.StatusOK,
			response:      "OK",
			wantLog:       []string{`"level":"info"`, `"method":"GET"`, `"uri":"/api/clients/"`, `"status":200`, `"size":2`, `"duration":`},
		},
		{
			name:          "DELETE 204 no body",
			method:        http.MethodDelete,
			path:          "/api/clients/c-1",
			handlerStatus: http.StatusNoContent,
			wantLog:       []string{`"method":"DELETE"`, `"status":204`, `"size":0`},
		},
		{
			name:          "500 logged as error",
			method:        http.MethodGet,
			path:          "/api/clients/",
			handlerStatus: http.StatusInternalServerError,
			response:      "{}",
			wantLog:       []string{`"level":"error"`, `"status":500`},
		},
		{
			name:    "implicit 200",
			method:  http.MethodGet,
			path:    "/api/health/",
			wantLog: []string{`"status":200`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.handlerStatus != 0 {
					w.WriteHeader(tt.handlerStatus)
				}
				if tt.response != "" {
					w.Write([]byte(tt.response))
				}
			})

			req := httptest.NewRequest(tt.method, tt.path, nil)
			l := zerolog.New(&buf)
			req = req.WithContext(l.WithContext(req.Context()))

			rr := httptest.NewRecorder()
			newTestHandler().withLogging(next).ServeHTTP(rr, req)

			for _, want := range tt.wantLog {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

// ---- responseWriter ----

func TestResponseWriter(t *testing.T) {
	t.Run("second WriteHeader ignored", func(t *testing.T) {
		rr := httptest.NewRecorder()
		w := &responseWriter{ResponseWriter: rr}

		w.WriteHeader(http.StatusCreated)
		w.WriteHeader(http.StatusInternalServerError)

		assert.Equal(t, http.StatusCreated, w.statusCode())
		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("write implies 200 and counts bytes", func(t *testing.T) {
		rr := httptest.NewRecorder()
		w := &responseWriter{ResponseWriter: rr}

		w.Write([]byte("abc"))
		w.Write([]byte("de"))

		assert.Equal(t, http.StatusOK, w.status)
		assert.Equal(t, 5, w.size)
		assert.Equal(t, "abcde", rr.Body.String())
	})

	t.Run("nothing written", func(t *testing.T) {
		w := &responseWriter{ResponseWriter: httptest.NewRecorder()}

		assert.Equal(t, http.StatusOK, w.statusCode())
		assert.Zero(t, w.size)
	})
}
