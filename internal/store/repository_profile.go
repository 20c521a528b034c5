package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MKhiriev/go-cols/internal/logger"
	"github.com/MKhiriev/go-cols/internal/utils"
	"github.com/MKhiriev/go-cols/models"
	"github.com/jackc/pgerrcode"
)

// IDGenerator produces primary keys for new rows.
type IDGenerator interface {
	Generate() string
}

// profileRepository is the PostgreSQL-backed implementation of [ProfileRepository].
type profileRepository struct {
	logger *logger.Logger
	db     *DB
	ids    IDGenerator
}

// NewProfileRepository constructs a [ProfileRepository] backed by db.
func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		db:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
	}
}

// CreateProfile inserts the profile and returns it as stored.
//
// Error handling:
//   - unique_violation on profiles_pseudo_key → [ErrPseudoAlreadyExists].
//   - unique_violation on profiles_email_key → [ErrEmailAlreadyExists].
//   - anything else → [ErrExecutingQuery] wrapping the driver error.
func (r *profileRepository) CreateProfile(ctx context.Context, profile models.Profile) (models.Profile, error) {
	log := logger.FromContext(ctx)

	if profile.ID == "" {
		profile.ID = r.ids.Generate()
	}

	row := r.db.QueryRowContext(ctx, createProfile, profile.ID, profile.Email, profile.Pseudo, profile.FirstName, profile.LastName, profile.PasswordHash)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*profileRepository.CreateProfile").Msg("error inserting profile")
		return models.Profile{}, r.mapInsertError(err)
	}

	created, err := scanProfile(row)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.CreateProfile").Msg("error scanning profile")
		return models.Profile{}, r.mapInsertError(err)
	}

	return created, nil
}

// mapInsertError turns a unique violation into the matching domain error.
func (r *profileRepository) mapInsertError(err error) error {
	code, constraint := postgresError(err)
	if code == pgerrcode.UniqueViolation {
		switch constraint {
		case constraintPseudo:
			return ErrPseudoAlreadyExists
		case constraintEmail:
			return ErrEmailAlreadyExists
		}
	}
	return r.db.wrap(ErrExecutingQuery, err)
}

// FindProfileByEmail looks the profile up case-insensitively.
func (r *profileRepository) FindProfileByEmail(ctx context.Context, email string) (models.Profile, error) {
	return r.findOne(ctx, "*profileRepository.FindProfileByEmail", findProfileByEmail, email)
}

// FindProfileByID returns [ErrProfileNotFound] when id matches no profile.
func (r *profileRepository) FindProfileByID(ctx context.Context, id string) (models.Profile, error) {
	return r.findOne(ctx, "*profileRepository.FindProfileByID", findProfileByID, id)
}

// findOne scans a single profile row; fn names the caller in logs.
func (r *profileRepository) findOne(ctx context.Context, fn, query string, arg any) (models.Profile, error) {
	log := logger.FromContext(ctx)

	profile, err := scanProfile(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Profile{}, ErrProfileNotFound
	}
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error finding profile")
		return models.Profile{}, r.db.wrap(ErrScanningRow, err)
	}

	return profile, nil
}

// PseudoExists is advisory: a false answer may be stale by the time the
// cyclist submits the registration form.
func (r *profileRepository) PseudoExists(ctx context.Context, pseudo string) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, pseudoExists, pseudo).Scan(&exists); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*profileRepository.PseudoExists").Msg("error checking pseudo")
		return false, r.db.wrap(ErrExecutingQuery, err)
	}
	return exists, nil
}
