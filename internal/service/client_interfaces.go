package service

import (
	"context"

	"github.com/MKhiriev/go-cols/internal/state"
	"github.com/MKhiriev/go-cols/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService signs the terminal client in and keeps its session on disk.
type ClientAuthService interface {
	// Resume restores the session saved for the configured server and checks
	// it is still accepted. It returns ErrNoSession when nothing is saved and
	// ErrSessionExpired when the server rejects the saved token.
	Resume(ctx context.Context) (models.Profile, error)

	// Register validates req locally before any server call: a confirmation
	// mismatch first, then a password shorter than six characters, then the
	// remaining fields. The pseudo is checked with the server before submit;
	// the register answer stays authoritative.
	Register(ctx context.Context, req models.RegisterRequest) (models.Profile, error)
	Login(ctx context.Context, req models.LoginRequest) (models.Profile, error)
	// Logout forgets the token in memory and on disk.
	Logout(ctx context.Context) error
}

// ClientTrackerService loads and mutates the data behind the client screens.
type ClientTrackerService interface {
	// LoadMap fetches the catalogue and the viewer's climbed and pinned sets.
	LoadMap(ctx context.Context) (state.ColsLoaded, error)
	// ClimbedColIDs fetches the climbed cols of another cyclist for comparison.
	ClimbedColIDs(ctx context.Context, userID string) ([]string, error)
	SetPinned(ctx context.Context, colID string, pinned bool) error

	LoadExplorer(ctx context.Context) (state.UsersLoaded, error)
	SetFavorite(ctx context.Context, userID string, favorite bool) error

	Dashboard(ctx context.Context) (models.Dashboard, error)
	ProfilePage(ctx context.Context, userID string) (models.ProfilePage, error)
	LogAscension(ctx context.Context, ascension models.Ascension) (models.Ascension, error)
	DeleteAscension(ctx context.Context, ascensionID string) error
	// UpdatePinNote sets the note on a pinned col. A blank note clears it.
	UpdatePinNote(ctx context.Context, colID, note string) (models.Pin, error)
	ServerVersion(ctx context.Context) (string, error)
}
