package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cols/internal/validators"
	"github.com/MKhiriev/go-cols/models"
)

// AscensionValidationService validates ascensions before the inner service
// stores them.
type AscensionValidationService struct {
	inner     AscensionService
	validator validators.Validator
}

// NewAscensionValidationService returns a wrapper that validates input
// before the wrapped service sees it.
func NewAscensionValidationService(validator validators.Validator) AscensionServiceWrapper {
	return &AscensionValidationService{
		validator: validator,
	}
}

// Log rejects a missing user and an invalid ascension with
// ErrInvalidDataProvided wrapping the validator error.
func (v *AscensionValidationService) Log(ctx context.Context, userID string, ascension models.Ascension) (models.Ascension, error) {
	if userID == "" {
		return models.Ascension{}, ErrInvalidDataProvided
	}
	if err := v.validator.Validate(ctx, ascension); err != nil {
		return models.Ascension{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Log(ctx, userID, ascension)
}

func (v *AscensionValidationService) Delete(ctx context.Context, userID, ascensionID string) error {
	if userID == "" || ascensionID == "" {
		return ErrInvalidDataProvided
	}
	return v.inner.Delete(ctx, userID, ascensionID)
}

func (v *AscensionValidationService) Recent(ctx context.Context, userID string, limit uint64) ([]models.AscensionWithDetails, error) {
	if userID == "" {
		return nil, ErrInvalidDataProvided
	}
	return v.inner.Recent(ctx, userID, limit)
}

// Wrap sets the service calls are forwarded to.
func (v *AscensionValidationService) Wrap(inner AscensionService) AscensionService {
	v.inner = inner
	return v
}
