package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-cols/internal/adapter"
	"github.com/MKhiriev/go-cols/internal/logger"
	"github.com/MKhiriev/go-cols/internal/mock"
	"github.com/MKhiriev/go-cols/internal/store"
	"github.com/MKhiriev/go-cols/internal/validators"
	"github.com/MKhiriev/go-cols/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testServerURL = "http://localhost:8080"

var fixedNow = time.Date(2026, 7, 14, 10, 0, 0, 0, time.UTC)

func newTestClientAuthSvc(t *testing.T) (*clientAuthService, *mock.MockServerAdapter, *mock.MockSessionRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockSessions := mock.NewMockSessionRepository(ctrl)

	svc := NewClientAuthService(mockSessions, mockAdapter, validators.NewDomainValidator(), testServerURL, logger.Nop()).(*clientAuthService)
	svc.now = func() time.Time { return fixedNow }

	return svc, mockAdapter, mockSessions
}

func validRegisterRequest() models.RegisterRequest {
	return models.RegisterRequest{
		Email:    "marco@example.com",
		Password: "pirata98",
		Confirm:  "pirata98",
		Pseudo:   "pirate",
	}
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestClientAuthService_Register_Success(t *testing.T) {
	svc, mockAdapter, mockSessions := newTestClientAuthSvc(t)
	ctx := context.Background()
	req := validRegisterRequest()

	profile := models.Profile{ID: "u1", Pseudo: "pirate"}
	gomock.InOrder(
		mockAdapter.EXPECT().PseudoAvailable(ctx, "pirate").Return(models.PseudoAvailability{Pseudo: "pirate", Available: true}, nil),
		mockAdapter.EXPECT().Register(ctx, req).Return(models.AuthResponse{AccessToken: "tok", Profile: profile}, nil),
		mockSessions.EXPECT().SaveSession(ctx, models.Session{
			ServerURL:   testServerURL,
			UserID:      "u1",
			Pseudo:      "pirate",
			AccessToken: "tok",
			SavedAt:     fixedNow,
		}).Return(nil),
	)

	got, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, profile, got)
}

func TestClientAuthService_Register_ValidationBeforeServer(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.RegisterRequest)
		wantErr error
	}{
		{
			name:    "mismatch is reported before length",
			mutate:  func(r *models.RegisterRequest) { r.Password, r.Confirm = "abc", "abd" },
			wantErr: validators.ErrPasswordMismatch,
		},
		{
			name:    "five characters",
			mutate:  func(r *models.RegisterRequest) { r.Password, r.Confirm = "abcde", "abcde" },
			wantErr: validators.ErrPasswordTooShort,
		},
		{
			name:    "invalid email",
			mutate:  func(r *models.RegisterRequest) { r.Email = "not-an-email" },
			wantErr: validators.ErrInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no adapter call is expected: gomock fails on any
			svc, _, _ := newTestClientAuthSvc(t)
			req := validRegisterRequest()
			tt.mutate(&req)

			_, err := svc.Register(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientAuthService_Register_PseudoTakenOnServer(t *testing.T) {
	svc, mockAdapter, _ := newTestClientAuthSvc(t)
	ctx := context.Background()

	// the pseudo was free when checked but taken before the account was created
	serverErr := adapter.NewAPIError(http.StatusConflict, store.ErrPseudoAlreadyExists.Error())
	mockAdapter.EXPECT().PseudoAvailable(ctx, "pirate").Return(models.PseudoAvailability{Pseudo: "pirate", Available: true}, nil)
	mockAdapter.EXPECT().Register(ctx, gomock.Any()).Return(models.AuthResponse{}, serverErr)

	_, err := svc.Register(ctx, validRegisterRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrPseudoAlreadyExists)
	assert.Equal(t, store.ErrPseudoAlreadyExists.Error(), adapter.Message(err))
}

func TestClientAuthService_Register_PseudoTakenBeforeSubmit(t *testing.T) {
	svc, mockAdapter, _ := newTestClientAuthSvc(t)
	ctx := context.Background()

	// Register must not be called
	mockAdapter.EXPECT().PseudoAvailable(ctx, "pirate").Return(models.PseudoAvailability{Pseudo: "pirate", Available: false}, nil)

	_, err := svc.Register(ctx, validRegisterRequest())
	require.ErrorIs(t, err, store.ErrPseudoAlreadyExists)
}

func TestClientAuthService_Register_AvailabilityCheckFailureStillSubmits(t *testing.T) {
	svc, mockAdapter, mockSessions := newTestClientAuthSvc(t)
	ctx := context.Background()

	mockAdapter.EXPECT().PseudoAvailable(ctx, "pirate").Return(models.PseudoAvailability{}, adapter.ErrServerUnreachable)
	mockAdapter.EXPECT().Register(ctx, gomock.Any()).Return(models.AuthResponse{AccessToken: "tok", Profile: models.Profile{ID: "u1"}}, nil)
	mockSessions.EXPECT().SaveSession(ctx, gomock.Any()).Return(nil)

	got, err := svc.Register(ctx, validRegisterRequest())
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)
}

func TestClientAuthService_Register_SessionSaveFailureIsNotFatal(t *testing.T) {
	svc, mockAdapter, mockSessions := newTestClientAuthSvc(t)
	ctx := context.Background()

	mockAdapter.EXPECT().PseudoAvailable(ctx, "pirate").Return(models.PseudoAvailability{Pseudo: "pirate", Available: true}, nil)
	mockAdapter.EXPECT().Register(ctx, gomock.Any()).Return(models.AuthResponse{AccessToken: "tok", Profile: models.Profile{ID: "u1"}}, nil)
	mockSessions.EXPECT().SaveSession(ctx, gomock.Any()).Return(errors.New("disk full"))

	got, err := svc.Register(ctx, validRegisterRequest())
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestClientAuthService_Login_WrongPassword(t *testing.T) {
	svc, mockAdapter, _ := newTestClientAuthSvc(t)
	ctx := context.Background()
	req := models.LoginRequest{Email: "marco@example.com", Password: "pirata98"}

	mockAdapter.EXPECT().Login(ctx, req).Return(models.AuthResponse{}, adapter.NewAPIError(http.StatusUnauthorized, ErrWrongPassword.Error()))

	_, err := svc.Login(ctx, req)
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestClientAuthService_Login_ServerUnreachable(t *testing.T) {
	svc, mockAdapter, _ := newTestClientAuthSvc(t)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, gomock.Any()).Return(models.AuthResponse{}, adapter.ErrServerUnreachable)

	_, err := svc.Login(ctx, models.LoginRequest{Email: "marco@example.com", Password: "pirata98"})
	assert.ErrorIs(t, err, adapter.ErrServerUnreachable)
}

func TestClientAuthService_Login_InvalidInput(t *testing.T) {
	svc, _, _ := newTestClientAuthSvc(t)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "marco@example.com"})
	require.Error(t, err)
}

// ── Resume / Logout ──────────────────────────────────────────────────────────

func TestClientAuthService_Resume_NoSession(t *testing.T) {
	svc, _, mockSessions := newTestClientAuthSvc(t)
	ctx := context.Background()

	mockSessions.EXPECT().LoadSession(ctx, testServerURL).Return(models.Session{}, store.ErrSessionNotFound)

	_, err := svc.Resume(ctx)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestClientAuthService_Resume_Success(t *testing.T) {
	svc, mockAdapter, mockSessions := newTestClientAuthSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		mockSessions.EXPECT().LoadSession(ctx, testServerURL).Return(models.Session{UserID: "u1", AccessToken: "tok"}, nil),
		mockAdapter.EXPECT().SetToken("tok"),
		mockAdapter.EXPECT().Me(ctx).Return(models.Profile{ID: "u1"}, nil),
	)

	got, err := svc.Resume(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)
}

func TestClientAuthService_Resume_ExpiredTokenIsForgotten(t *testing.T) {
	svc, mockAdapter, mockSessions := newTestClientAuthSvc(t)
	ctx := context.Background()

	rejected := adapter.NewAPIError(http.StatusUnauthorized, "token is expired or invalid")
	gomock.InOrder(
		mockSessions.EXPECT().LoadSession(ctx, testServerURL).Return(models.Session{AccessToken: "old"}, nil),
		mockAdapter.EXPECT().SetToken("old"),
		mockAdapter.EXPECT().Me(ctx).Return(models.Profile{}, rejected),
		mockAdapter.EXPECT().SetToken(""),
		mockSessions.EXPECT().DeleteSession(ctx, testServerURL).Return(nil),
	)

	_, err := svc.Resume(ctx)
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestClientAuthService_Logout(t *testing.T) {
	svc, mockAdapter, mockSessions := newTestClientAuthSvc(t)
	ctx := context.Background()

	mockAdapter.EXPECT().SetToken("")
	mockSessions.EXPECT().DeleteSession(ctx, testServerURL).Return(errors.New("locked"))

	err := svc.Logout(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delete session")
}
