package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cols/internal/compare"
	"github.com/MKhiriev/go-cols/internal/enrich"
	"github.com/MKhiriev/go-cols/internal/logger"
	"github.com/MKhiriev/go-cols/internal/store"
	"github.com/MKhiriev/go-cols/internal/validators"
	"github.com/MKhiriev/go-cols/models"
)

type colService struct {
	cols       store.ColRepository
	ascensions store.AscensionRepository
	pins       store.PinRepository
	validator  validators.Validator
	logger     *logger.Logger
}

// NewColService builds the col service over the col, ascension and pin
// repositories.
func NewColService(storages *store.Storages, validator validators.Validator, logger *logger.Logger) ColService {
	return &colService{
		cols:       storages.ColRepository,
		ascensions: storages.AscensionRepository,
		pins:       storages.PinRepository,
		validator:  validator,
		logger:     logger,
	}
}

// ListWithStatus enriches the catalogue with the viewer's climbed and pinned
// sets. The catalogue is required; a failure reading either set degrades to
// an empty set.
func (s *colService) ListWithStatus(ctx context.Context, userID string, query store.ColQuery) ([]models.ColWithStatus, error) {
	cols, err := s.cols.ListCols(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing cols failed: %w", err)
	}

	climbed, pinned := s.viewerSets(ctx, userID)
	return enrich.Cols(cols, climbed, pinned), nil
}

func (s *colService) Count(ctx context.Context) (models.ColCount, error) {
	total, err := s.cols.CountCols(ctx)
	if err != nil {
		return models.ColCount{}, fmt.Errorf("counting cols failed: %w", err)
	}
	return models.ColCount{Total: total}, nil
}

// Map builds the marker list. Comparing with oneself is treated as not comparing.
func (s *colService) Map(ctx context.Context, userID string, filter compare.Filter, compareUserID string) (models.MapView, error) {
	log := logger.FromContext(ctx)

	statuses, err := s.ListWithStatus(ctx, userID, store.ColQuery{})
	if err != nil {
		return models.MapView{}, err
	}

	var other enrich.IDSet
	if compareUserID != "" && compareUserID != userID {
		ids, err := s.ascensions.ClimbedColIDs(ctx, compareUserID)
		if err != nil {
			log.Warn().Err(err).Str("compare_user_id", compareUserID).Msg("comparison set unavailable, using empty set")
			ids = nil
		}
		other = enrich.NewIDSet(ids...)
	} else {
		compareUserID = ""
	}

	return models.MapView{
		Filter:         string(filter),
		ComparisonUser: compareUserID,
		Markers:        compare.Markers(statuses, filter, other),
	}, nil
}

func (s *colService) ClimbedColIDs(ctx context.Context, userID string) (models.ClimbedCols, error) {
	ids, err := s.ascensions.ClimbedColIDs(ctx, userID)
	if err != nil {
		return models.ClimbedCols{}, fmt.Errorf("reading climbed cols failed: %w", err)
	}
	return models.ClimbedCols{UserID: userID, ColIDs: ids}, nil
}

func (s *colService) Pin(ctx context.Context, userID, colID string) (models.Pin, error) {
	pin, err := s.pins.CreatePin(ctx, models.Pin{UserID: userID, ColID: colID})
	if err != nil {
		return models.Pin{}, fmt.Errorf("pinning col failed: %w", err)
	}
	return pin, nil
}

func (s *colService) Unpin(ctx context.Context, userID, colID string) error {
	if err := s.pins.DeletePin(ctx, userID, colID); err != nil {
		return fmt.Errorf("unpinning col failed: %w", err)
	}
	return nil
}

// UpdatePinNote stores note on the pin of colID. A nil note clears it.
func (s *colService) UpdatePinNote(ctx context.Context, userID, colID string, note models.PinNote) (models.Pin, error) {
	if err := s.validator.Validate(ctx, note); err != nil {
		return models.Pin{}, err
	}

	pin, err := s.pins.UpdatePinNote(ctx, userID, colID, note.Note)
	if err != nil {
		return models.Pin{}, fmt.Errorf("updating pin note failed: %w", err)
	}
	return pin, nil
}

func (s *colService) ListPinned(ctx context.Context, userID string) ([]models.PinnedCol, error) {
	pins, err := s.pins.ListPinnedCols(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing pinned cols failed: %w", err)
	}
	return pins, nil
}

// viewerSets returns the cols userID climbed and pinned. A failing lookup
// logs a warning and yields an empty set.
func (s *colService) viewerSets(ctx context.Context, userID string) (climbed, pinned enrich.IDSet) {
	log := logger.FromContext(ctx)

	climbedIDs, err := s.ascensions.ClimbedColIDs(ctx, userID)
	if err != nil {
		log.Warn().Err(err).Str("func", "*colService.viewerSets").Msg("climbed set unavailable")
	}
	pinnedIDs, err := s.pins.PinnedColIDs(ctx, userID)
	if err != nil {
		log.Warn().Err(err).Str("func", "*colService.viewerSets").Msg("pinned set unavailable")
	}

	return enrich.NewIDSet(climbedIDs...), enrich.NewIDSet(pinnedIDs...)
}
