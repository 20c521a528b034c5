package store

import (
	"context"

	"github.com/MKhiriev/go-cols/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ProfileRepository persists cyclist profiles.
type ProfileRepository interface {
	// CreateProfile inserts a profile. Uniqueness of pseudo and email is
	// decided by the database and reported as ErrPseudoAlreadyExists or
	// ErrEmailAlreadyExists.
	CreateProfile(ctx context.Context, profile models.Profile) (models.Profile, error)
	FindProfileByEmail(ctx context.Context, email string) (models.Profile, error)
	FindProfileByID(ctx context.Context, id string) (models.Profile, error)
	PseudoExists(ctx context.Context, pseudo string) (bool, error)
}

// ColRepository reads reference cols and loads them from catalogs.
type ColRepository interface {
	ListCols(ctx context.Context, query ColQuery) ([]models.Col, error)
	FindColByID(ctx context.Context, id string) (models.Col, error)
	CountCols(ctx context.Context) (int, error)
	// UpsertCols inserts or updates cols keyed by (nom, pays) in one
	// transaction and returns how many were inserted and updated.
	UpsertCols(ctx context.Context, cols []models.Col) (inserted, updated int, err error)
}

// AscensionRepository persists ascensions.
type AscensionRepository interface {
	CreateAscension(ctx context.Context, ascension models.Ascension) (models.Ascension, error)
	DeleteAscension(ctx context.Context, userID, ascensionID string) error
	ClimbedColIDs(ctx context.Context, userID string) ([]string, error)
	ListAscensions(ctx context.Context, query AscensionQuery) ([]models.AscensionWithDetails, error)
}

// PinRepository persists the cols a cyclist pinned.
type PinRepository interface {
	CreatePin(ctx context.Context, pin models.Pin) (models.Pin, error)
	DeletePin(ctx context.Context, userID, colID string) error
	UpdatePinNote(ctx context.Context, userID, colID string, note *string) (models.Pin, error)
	PinnedColIDs(ctx context.Context, userID string) ([]string, error)
	ListPinnedCols(ctx context.Context, userID string) ([]models.PinnedCol, error)
}

// FavoriteRepository persists follows between cyclists.
type FavoriteRepository interface {
	CreateFavorite(ctx context.Context, favorite models.Favorite) (models.Favorite, error)
	DeleteFavorite(ctx context.Context, userID, favoriteUserID string) error
	FavoriteUserIDs(ctx context.Context, userID string) ([]string, error)
}

// StatisticsRepository reads the user_statistics view.
type StatisticsRepository interface {
	StatisticsByUser(ctx context.Context, userID string) (models.UserStatistics, error)
	ListStatistics(ctx context.Context, query StatisticsQuery) ([]models.UserStatistics, error)
}

// SessionRepository keeps the client's last access token on disk.
type SessionRepository interface {
	SaveSession(ctx context.Context, session models.Session) error
	LoadSession(ctx context.Context, serverURL string) (models.Session, error)
	DeleteSession(ctx context.Context, serverURL string) error
}
