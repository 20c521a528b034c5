// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the terminal client's connection to the cols API.
//
// [ServerAdapter] hides the transport from the client services. The HTTP
// implementation ([NewHTTPServerAdapter]) is built on resty behind a circuit
// breaker: once the server keeps failing, calls fail fast with
// [ErrServerUnreachable] instead of waiting for timeouts. No call is retried.
//
// Non-2xx answers become an [*APIError] that wraps one of the status
// sentinels of errors.go, so callers can both match with [errors.Is] and show
// the server's message as is.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-cols/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the client's view of every API endpoint.
type ServerAdapter interface {
	// SetToken stores the bearer token sent with authenticated requests.
	SetToken(token string)
	Token() string

	// Register and Login store the returned token on success.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	PseudoAvailable(ctx context.Context, pseudo string) (models.PseudoAvailability, error)
	Version(ctx context.Context) (string, error)

	Me(ctx context.Context) (models.Profile, error)
	Dashboard(ctx context.Context) (models.Dashboard, error)
	ProfilePage(ctx context.Context, userID string) (models.ProfilePage, error)

	Cols(ctx context.Context) ([]models.ColWithStatus, error)
	ClimbedColIDs(ctx context.Context, userID string) (models.ClimbedCols, error)

	Pin(ctx context.Context, colID string) (models.Pin, error)
	Unpin(ctx context.Context, colID string) error
	UpdatePinNote(ctx context.Context, colID string, note models.PinNote) (models.Pin, error)

	LogAscension(ctx context.Context, ascension models.Ascension) (models.Ascension, error)
	DeleteAscension(ctx context.Context, ascensionID string) error

	Explorer(ctx context.Context, search string, favoritesOnly bool) ([]models.UserWithStats, error)
	AddFavorite(ctx context.Context, userID string) (models.Favorite, error)
	RemoveFavorite(ctx context.Context, userID string) error
}
