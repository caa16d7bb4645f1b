// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Content types written by the API.
const (
	ContentTypeJSON    = "application/json"
	ContentTypeProblem = "application/problem+json"
)

// WriteJSON marshals data and writes it with the given status code and an
// application/json content type. If marshaling fails it answers 500 and
// returns the error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	return writeJSON(w, data, statusCode, ContentTypeJSON)
}

// WriteProblem is WriteJSON for RFC 7807 problem documents.
func WriteProblem(w http.ResponseWriter, problem any, statusCode int) (int, error) {
	return writeJSON(w, problem, statusCode, ContentTypeProblem)
}

func writeJSON(w http.ResponseWriter, data any, statusCode int, contentType string) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
