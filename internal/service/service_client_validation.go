// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/bloom-crm/internal/validators"
	"github.com/MKhiriev/bloom-crm/models"
)

// ClientServiceWrapper defines middleware composition for ClientService.
// Implementations wrap an existing ClientService to add behavior such as
// validation.
type ClientServiceWrapper interface {
	Wrap(ClientService) ClientService
}

// ClientValidationService rejects malformed input before the wrapped
// ClientService runs. Validation failures are returned as
// *validators.ValidationError.
type ClientValidationService struct {
	inner     ClientService
	validator validators.Validator
}

func NewClientValidationService() ClientServiceWrapper {
	return &ClientValidationService{
		validator: validators.NewClientValidator(),
	}
}

func (v *ClientValidationService) ListClients(ctx context.Context) ([]models.Client, error) {
	return v.inner.ListClients(ctx)
}

func (v *ClientValidationService) GetClient(ctx context.Context, id string) (models.Client, error) {
	if err := v.validator.Validate(ctx, models.Client{ID: id}, validators.FieldID); err != nil {
		return models.Client{}, err
	}
	return v.inner.GetClient(ctx, id)
}

func (v *ClientValidationService) CreateClient(ctx context.Context, draft models.ClientDraft) (models.Client, error) {
	if err := v.validator.Validate(ctx, draft); err != nil {
		return models.Client{}, err
	}
	return v.inner.CreateClient(ctx, draft)
}

func (v *ClientValidationService) UpdateClient(ctx context.Context, id string, draft models.ClientDraft) (models.Client, error) {
	if err := v.validator.Validate(ctx, draft.Apply(models.Client{ID: id})); err != nil {
		return models.Client{}, err
	}
	return v.inner.UpdateClient(ctx, id, draft)
}

func (v *ClientValidationService) DeleteClient(ctx context.Context, id string) error {
	if err := v.validator.Validate(ctx, models.Client{ID: id}, validators.FieldID); err != nil {
		return err
	}
	return v.inner.DeleteClient(ctx, id)
}

func (v *ClientValidationService) Wrap(wrapped ClientService) ClientService {
	v.inner = wrapped
	return v
}
