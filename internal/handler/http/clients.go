// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/bloom-crm/internal/logger"
	"github.com/MKhiriev/bloom-crm/internal/utils"
	"github.com/MKhiriev/bloom-crm/models"
	"github.com/go-chi/chi/v5"
)

const clientIDParam = "id"

func (h *Handler) listClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.services.ClientService.ListClients(r.Context())
	if err != nil {
		writeError(w, r, err, "*Handler.listClients")
		return
	}
	if clients == nil {
		clients = []models.Client{}
	}

	response := models.ListClientsResponse{
		Success: true,
		Data:    clients,
		Length:  len(clients),
	}
	h.respond(w, r, response, http.StatusOK, "*Handler.listClients")
}

func (h *Handler) getClient(w http.ResponseWriter, r *http.Request) {
	client, err := h.services.ClientService.GetClient(r.Context(), chi.URLParam(r, clientIDParam))
	if err != nil {
		writeError(w, r, err, "*Handler.getClient")
		return
	}

	h.respond(w, r, client, http.StatusOK, "*Handler.getClient")
}

func (h *Handler) createClient(w http.ResponseWriter, r *http.Request) {
	draft, err := decodeDraft(r)
	if err != nil {
		writeError(w, r, err, "*Handler.createClient")
		return
	}

	client, err := h.services.ClientService.CreateClient(r.Context(), draft)
	if err != nil {
		writeError(w, r, err, "*Handler.createClient")
		return
	}

	logger.FromRequest(r).Info().Str("client_id", client.ID).Msg("client created")
	h.respond(w, r, client, http.StatusCreated, "*Handler.createClient")
}

func (h *Handler) updateClient(w http.ResponseWriter, r *http.Request) {
	draft, err := decodeDraft(r)
	if err != nil {
		writeError(w, r, err, "*Handler.updateClient")
		return
	}

	client, err := h.services.ClientService.UpdateClient(r.Context(), chi.URLParam(r, clientIDParam), draft)
	if err != nil {
		writeError(w, r, err, "*Handler.updateClient")
		return
	}

	logger.FromRequest(r).Info().Str("client_id", client.ID).Msg("client updated")
	h.respond(w, r, client, http.StatusOK, "*Handler.updateClient")
}

func (h *Handler) deleteClient(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, clientIDParam)
	if err := h.services.ClientService.DeleteClient(r.Context(), id); err != nil {
		writeError(w, r, err, "*Handler.deleteClient")
		return
	}

	logger.FromRequest(r).Info().Str("client_id", id).Msg("client deleted")
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, data any, status int, funcName string) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", funcName).Msg("error writing response")
	}
}

// decodeDraft reads a single client draft. Server-owned fields (id,
// timestamps) present in the body are ignored.
func decodeDraft(r *http.Request) (models.ClientDraft, error) {
	var draft models.ClientDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		return models.ClientDraft{}, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return draft, nil
}
