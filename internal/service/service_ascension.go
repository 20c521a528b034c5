package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cols/internal/logger"
	"github.com/MKhiriev/go-cols/internal/store"
	"github.com/MKhiriev/go-cols/models"
)

// DefaultRecentLimit caps Recent when no limit is given.
const DefaultRecentLimit = 10

type ascensionService struct {
	ascensions store.AscensionRepository
	logger     *logger.Logger
}

func NewAscensionService(storages *store.Storages, logger *logger.Logger) AscensionService {
	return &ascensionService{
		ascensions: storages.AscensionRepository,
		logger:     logger,
	}
}

// Log records an ascension for userID. Ascensions logged by the cyclist are
// validated immediately.
func (s *ascensionService) Log(ctx context.Context, userID string, ascension models.Ascension) (models.Ascension, error) {
	ascension.ID = ""
	ascension.UserID = userID
	ascension.Validated = true

	created, err := s.ascensions.CreateAscension(ctx, ascension)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("col_id", ascension.ColID).Msg("ascension creation failed")
		return models.Ascension{}, fmt.Errorf("ascension creation failed: %w", err)
	}
	return created, nil
}

func (s *ascensionService) Delete(ctx context.Context, userID, ascensionID string) error {
	if err := s.ascensions.DeleteAscension(ctx, userID, ascensionID); err != nil {
		return fmt.Errorf("ascension deletion failed: %w", err)
	}
	return nil
}

// Recent returns the latest ascensions of userID, validated or not.
func (s *ascensionService) Recent(ctx context.Context, userID string, limit uint64) ([]models.AscensionWithDetails, error) {
	if limit == 0 {
		limit = DefaultRecentLimit
	}

	list, err := s.ascensions.ListAscensions(ctx, store.AscensionQuery{UserID: userID, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("listing ascensions failed: %w", err)
	}
	return list, nil
}
