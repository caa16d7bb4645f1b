// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/bloom-crm/internal/config"
	"github.com/MKhiriev/bloom-crm/internal/logger"
	"github.com/MKhiriev/bloom-crm/internal/utils"
	"github.com/MKhiriev/bloom-crm/models"
)

const clientsPath = "/api/clients/"

type httpEntityStore struct {
	client *utils.HTTPClient
	hasher *utils.Hasher

	logger *logger.Logger
}

// NewHTTPEntityStore constructs the HTTP/REST implementation of
// [EntityStore]. The base URL comes from adapterCfg.HTTPAddress ("http://"
// is assumed when no scheme is given) and every request is bounded by
// adapterCfg.RequestTimeout. With a non-empty appCfg.HashKey, write
// requests carry the HashSHA256 integrity header.
func NewHTTPEntityStore(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (EntityStore, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpEntityStore{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		hasher: utils.NewHasher(appCfg.HashKey),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// List implements [EntityStore]: GET /api/clients/.
func (h *httpEntityStore) List(ctx context.Context) (models.ListClientsResponse, error) {
	resp, err := h.request(ctx).Get(clientsPath)
	if err != nil {
		return models.ListClientsResponse{}, fmt.Errorf("%w: list clients: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ListClientsResponse{}, err
	}

	var list models.ListClientsResponse
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return models.ListClientsResponse{}, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}
	if !list.Success {
		return models.ListClientsResponse{}, ErrUnsuccessfulResponse
	}
	if list.Data == nil {
		list.Data = []models.Client{}
	}

	return list, nil
}

// Create implements [EntityStore]: POST /api/clients/, expecting 201.
func (h *httpEntityStore) Create(ctx context.Context, draft models.ClientDraft) (models.Client, error) {
	req, err := h.writeRequest(ctx, draft)
	if err != nil {
		return models.Client{}, err
	}

	resp, err := req.Post(clientsPath)
	if err != nil {
		return models.Client{}, fmt.Errorf("%w: create client: %w", ErrRequestFailed, err)
	}

	return decodeClient(resp)
}

// Update implements [EntityStore]: PUT /api/clients/{id}.
func (h *httpEntityStore) Update(ctx context.Context, id string, draft models.ClientDraft) (models.Client, error) {
	if id == "" {
		return models.Client{}, ErrEmptyIdentifier
	}

	req, err := h.writeRequest(ctx, draft)
	if err != nil {
		return models.Client{}, err
	}

	resp, err := req.Put(clientsPath + url.PathEscape(id))
	if err != nil {
		return models.Client{}, fmt.Errorf("%w: update client: %w", ErrRequestFailed, err)
	}

	return decodeClient(resp)
}

// Delete implements [EntityStore]: DELETE /api/clients/{id}, expecting 204.
func (h *httpEntityStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyIdentifier
	}

	resp, err := h.request(ctx).Delete(clientsPath + url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("%w: delete client: %w", ErrRequestFailed, err)
	}

	return mapHTTPError(resp)
}

// request starts a request that carries the caller's trace id, or a fresh
// one. It logs to the ctx logger, falling back to the store's own.
func (h *httpEntityStore) request(ctx context.Context) *resty.Request {
	traceID, ok := utils.GetTraceIDFromContext(ctx)
	if !ok {
		traceID = utils.NewTraceID()
	}

	logger.FromContextOr(ctx, h.logger).Debug().Str("func", "httpEntityStore.request").Str("trace_id", traceID).Msg("sending request")

	return h.client.R().
		SetContext(ctx).
		SetHeader(utils.TraceIDHeader, traceID)
}

// writeRequest encodes body once so the integrity hash covers exactly the
// bytes sent.
func (h *httpEntityStore) writeRequest(ctx context.Context, body any) (*resty.Request, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	req := h.request(ctx).
		SetHeader("Content-Type", utils.ContentTypeJSON).
		SetBody(payload)

	if h.hasher.Enabled() {
		req.SetHeader(utils.HashHeader, h.hasher.SumHex(payload))
	}

	return req, nil
}

func decodeClient(resp *resty.Response) (models.Client, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.Client{}, err
	}

	var c models.Client
	if err := json.Unmarshal(resp.Body(), &c); err != nil {
		return models.Client{}, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}
	return c, nil
}
