package service

import (
	"context"

	"github.com/MKhiriev/go-cols/internal/compare"
	"github.com/MKhiriev/go-cols/internal/store"
	"github.com/MKhiriev/go-cols/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers cyclists and issues access tokens.
type AuthService interface {
	// Register validates the request, hashes the password and inserts the
	// profile. A taken pseudo is reported by the database constraint as
	// store.ErrPseudoAlreadyExists; nothing is checked beforehand.
	Register(ctx context.Context, req models.RegisterRequest) (models.Profile, error)
	Login(ctx context.Context, req models.LoginRequest) (models.Profile, error)
	CreateToken(ctx context.Context, profile models.Profile) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// PseudoAvailable is advisory feedback for the registration form.
	PseudoAvailable(ctx context.Context, pseudo string) (models.PseudoAvailability, error)
	Me(ctx context.Context, userID string) (models.Profile, error)
}

// ColService serves the col catalogue annotated for the viewer.
type ColService interface {
	ListWithStatus(ctx context.Context, userID string, query store.ColQuery) ([]models.ColWithStatus, error)
	Count(ctx context.Context) (models.ColCount, error)
	// Map returns markers after filter. A non-empty compareUserID other than
	// userID switches markers to the four comparison states.
	Map(ctx context.Context, userID string, filter compare.Filter, compareUserID string) (models.MapView, error)
	ClimbedColIDs(ctx context.Context, userID string) (models.ClimbedCols, error)

	Pin(ctx context.Context, userID, colID string) (models.Pin, error)
	Unpin(ctx context.Context, userID, colID string) error
	UpdatePinNote(ctx context.Context, userID, colID string, note models.PinNote) (models.Pin, error)
	ListPinned(ctx context.Context, userID string) ([]models.PinnedCol, error)
}

// AscensionService records climbs.
type AscensionService interface {
	Log(ctx context.Context, userID string, ascension models.Ascension) (models.Ascension, error)
	Delete(ctx context.Context, userID, ascensionID string) error
	Recent(ctx context.Context, userID string, limit uint64) ([]models.AscensionWithDetails, error)
}

// ExplorerService lists other cyclists and manages favorites.
type ExplorerService interface {
	List(ctx context.Context, userID, search string, favoritesOnly bool) ([]models.UserWithStats, error)
	AddFavorite(ctx context.Context, userID, favoriteUserID string) (models.Favorite, error)
	RemoveFavorite(ctx context.Context, userID, favoriteUserID string) error
}

// DashboardService assembles the home screen and public profile pages.
type DashboardService interface {
	Dashboard(ctx context.Context, userID string) (models.Dashboard, error)
	ProfilePage(ctx context.Context, viewerID, userID string) (models.ProfilePage, error)
}

// AppInfoService reports the running build.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AscensionServiceWrapper decorates an AscensionService, e.g. with validation.
type AscensionServiceWrapper interface {
	Wrap(AscensionService) AscensionService
}
