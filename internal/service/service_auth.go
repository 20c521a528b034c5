package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-cols/internal/config"
	"github.com/MKhiriev/go-cols/internal/logger"
	"github.com/MKhiriev/go-cols/internal/store"
	"github.com/MKhiriev/go-cols/internal/utils"
	"github.com/MKhiriev/go-cols/internal/validators"
	"github.com/MKhiriev/go-cols/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// Passwords are stored as bcrypt hashes; tokens are HS256 JWTs carrying the
// profile id in "sub".
type authService struct {
	profileRepository store.ProfileRepository
	validator         validators.Validator

	// bcryptCost is the work factor passed to bcrypt.GenerateFromPassword.
	bcryptCost int

	// tokenSignKey signs and verifies JWTs.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match are rejected during parsing.
	tokenIssuer string

	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService from cfg. The returned service is
// safe for concurrent use; all state is read-only after construction.
func NewAuthService(profileRepository store.ProfileRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	cost := cfg.BcryptCost
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}

	return &authService{
		profileRepository: profileRepository,
		validator:         validator,
		bcryptCost:        cost,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		logger:            logger,
	}
}

// Register creates a profile.
//
// Returns the stored profile or:
//   - a validators error (mismatch, too short, invalid email/pseudo/name);
//   - store.ErrPseudoAlreadyExists or store.ErrEmailAlreadyExists, wrapped,
//     when a uniqueness constraint rejects the insert.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.Profile, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("pseudo", req.Pseudo).Msg("registration rejected by validation")
		return models.Profile{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrPasswordHashingFailed, err)
	}

	profile, err := a.profileRepository.CreateProfile(ctx, models.Profile{
		Email:        normalizeEmail(req.Email),
		Pseudo:       strings.TrimSpace(req.Pseudo),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		PasswordHash: string(hash),
	})
	if err != nil {
		log.Err(err).Str("pseudo", req.Pseudo).Msg("profile creation ended with error")
		return models.Profile{}, fmt.Errorf("profile creation ended with error: %w", err)
	}

	return profile, nil
}

// Login checks the credentials. An unknown email and a wrong password
// both yield ErrWrongPassword.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Profile, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.Profile{}, err
	}

	profile, err := a.profileRepository.FindProfileByEmail(ctx, normalizeEmail(req.Email))
	if errors.Is(err, store.ErrProfileNotFound) {
		log.Debug().Msg("login with unknown email")
		return models.Profile{}, ErrWrongPassword
	}
	if err != nil {
		log.Err(err).Msg("profile search by email failed")
		return models.Profile{}, fmt.Errorf("profile search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(req.Password)); err != nil {
		log.Debug().Str("id", profile.ID).Msg("wrong password")
		return models.Profile{}, ErrWrongPassword
	}

	return profile, nil
}

// CreateToken issues a signed JWT for profile.
func (a *authService) CreateToken(ctx context.Context, profile models.Profile) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, profile.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken normalises every validation failure (expired, wrong issuer,
// malformed) to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// PseudoAvailable validates the trimmed pseudo before looking it up.
func (a *authService) PseudoAvailable(ctx context.Context, pseudo string) (models.PseudoAvailability, error) {
	pseudo = strings.TrimSpace(pseudo)
	if err := a.validator.Validate(ctx, models.RegisterRequest{Pseudo: pseudo}, validators.FieldPseudo); err != nil {
		return models.PseudoAvailability{}, err
	}

	exists, err := a.profileRepository.PseudoExists(ctx, pseudo)
	if err != nil {
		return models.PseudoAvailability{}, fmt.Errorf("pseudo lookup failed: %w", err)
	}

	return models.PseudoAvailability{Pseudo: pseudo, Available: !exists}, nil
}

func (a *authService) Me(ctx context.Context, userID string) (models.Profile, error) {
	profile, err := a.profileRepository.FindProfileByID(ctx, userID)
	if err != nil {
		return models.Profile{}, fmt.Errorf("profile lookup failed: %w", err)
	}
	return profile, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
