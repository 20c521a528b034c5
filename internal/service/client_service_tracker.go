package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-cols/internal/adapter"
	"github.com/MKhiriev/go-cols/internal/enrich"
	"github.com/MKhiriev/go-cols/internal/logger"
	"github.com/MKhiriev/go-cols/internal/state"
	"github.com/MKhiriev/go-cols/internal/validators"
	"github.com/MKhiriev/go-cols/models"
)

type clientTrackerService struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator

	logger *logger.Logger
}

// NewClientTrackerService returns the tracker service over serverAdapter.
// Input is validated locally before it is sent.
func NewClientTrackerService(serverAdapter adapter.ServerAdapter, validator validators.Validator, logger *logger.Logger) ClientTrackerService {
	return &clientTrackerService{adapter: serverAdapter, validator: validator, logger: logger}
}

// LoadMap splits the catalogue into the reducer input: cols plus the
// climbed and pinned id sets.
func (t *clientTrackerService) LoadMap(ctx context.Context) (state.ColsLoaded, error) {
	cols, err := t.adapter.Cols(ctx)
	if err != nil {
		return state.ColsLoaded{}, mapAdapterError(err)
	}

	loaded := state.ColsLoaded{
		Cols:    make([]models.Col, 0, len(cols)),
		Climbed: enrich.NewIDSet(),
		Pinned:  enrich.NewIDSet(),
	}
	for _, c := range cols {
		loaded.Cols = append(loaded.Cols, c.Col)
		if c.Climbed {
			loaded.Climbed[c.ID] = struct{}{}
		}
		if c.Pinned {
			loaded.Pinned[c.ID] = struct{}{}
		}
	}

	return loaded, nil
}

func (t *clientTrackerService) ClimbedColIDs(ctx context.Context, userID string) ([]string, error) {
	climbed, err := t.adapter.ClimbedColIDs(ctx, userID)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return climbed.ColIDs, nil
}

func (t *clientTrackerService) SetPinned(ctx context.Context, colID string, pinned bool) error {
	if pinned {
		_, err := t.adapter.Pin(ctx, colID)
		return mapAdapterError(err)
	}
	return mapAdapterError(t.adapter.Unpin(ctx, colID))
}

// LoadExplorer fetches every other cyclist; search and the favorites filter
// are applied by the explorer reducer.
func (t *clientTrackerService) LoadExplorer(ctx context.Context) (state.UsersLoaded, error) {
	users, err := t.adapter.Explorer(ctx, "", false)
	if err != nil {
		return state.UsersLoaded{}, mapAdapterError(err)
	}

	loaded := state.UsersLoaded{
		Stats:     make([]models.UserStatistics, 0, len(users)),
		Favorites: enrich.NewIDSet(),
	}
	for _, u := range users {
		loaded.Stats = append(loaded.Stats, u.UserStatistics)
		if u.IsFavorite {
			loaded.Favorites[u.UserID] = struct{}{}
		}
	}

	return loaded, nil
}

func (t *clientTrackerService) SetFavorite(ctx context.Context, userID string, favorite bool) error {
	if favorite {
		_, err := t.adapter.AddFavorite(ctx, userID)
		return mapAdapterError(err)
	}
	return mapAdapterError(t.adapter.RemoveFavorite(ctx, userID))
}

func (t *clientTrackerService) Dashboard(ctx context.Context) (models.Dashboard, error) {
	dashboard, err := t.adapter.Dashboard(ctx)
	return dashboard, mapAdapterError(err)
}

func (t *clientTrackerService) ProfilePage(ctx context.Context, userID string) (models.ProfilePage, error) {
	page, err := t.adapter.ProfilePage(ctx, userID)
	return page, mapAdapterError(err)
}

func (t *clientTrackerService) LogAscension(ctx context.Context, ascension models.Ascension) (models.Ascension, error) {
	if err := t.validator.Validate(ctx, ascension); err != nil {
		return models.Ascension{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := t.adapter.LogAscension(ctx, ascension)
	return created, mapAdapterError(err)
}

// DeleteAscension removes one of the viewer's ascensions.
func (t *clientTrackerService) DeleteAscension(ctx context.Context, ascensionID string) error {
	return mapAdapterError(t.adapter.DeleteAscension(ctx, ascensionID))
}

// UpdatePinNote replaces the note on a pinned col. A blank note clears it.
func (t *clientTrackerService) UpdatePinNote(ctx context.Context, colID, note string) (models.Pin, error) {
	var body models.PinNote
	if trimmed := strings.TrimSpace(note); trimmed != "" {
		body.Note = &trimmed
	}
	if err := t.validator.Validate(ctx, body); err != nil {
		return models.Pin{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	pin, err := t.adapter.UpdatePinNote(ctx, colID, body)
	return pin, mapAdapterError(err)
}

func (t *clientTrackerService) ServerVersion(ctx context.Context) (string, error) {
	version, err := t.adapter.Version(ctx)
	return version, mapAdapterError(err)
}
