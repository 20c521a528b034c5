package store

import (
	"context"

	"github.com/MKhiriev/go-cols/internal/logger"
	"github.com/MKhiriev/go-cols/internal/utils"
	"github.com/MKhiriev/go-cols/models"
	"github.com/jackc/pgerrcode"
)

// ascensionRepository is the PostgreSQL-backed implementation of
// [AscensionRepository] over the ascensions table.
type ascensionRepository struct {
	logger *logger.Logger
	db     *DB
	ids    IDGenerator
}

// NewAscensionRepository constructs an [AscensionRepository] backed by db.
func NewAscensionRepository(db *DB, logger *logger.Logger) AscensionRepository {
	logger.Debug().Msg("creating ascension repository")
	return &ascensionRepository{
		db:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
	}
}

// CreateAscension inserts an ascension. An unknown col yields [ErrColNotFound].
func (r *ascensionRepository) CreateAscension(ctx context.Context, a models.Ascension) (models.Ascension, error) {
	log := logger.FromContext(ctx)

	if a.ID == "" {
		a.ID = r.ids.Generate()
	}

	row := r.db.QueryRowContext(ctx, createAscension, a.ID, a.UserID, a.ColID, a.Date, a.DurationSeconds, a.AvgSpeedKmh,
		a.AvgHeartRate, a.AvgPowerWatts, a.StravaActivityID, a.Validated)

	created, err := scanAscension(row)
	if err != nil {
		log.Err(err).Str("func", "*ascensionRepository.CreateAscension").Msg("error inserting ascension")
		if code, _ := postgresError(err); code == pgerrcode.ForeignKeyViolation {
			return models.Ascension{}, ErrColNotFound
		}
		return models.Ascension{}, r.db.wrap(ErrExecutingQuery, err)
	}

	return created, nil
}

// DeleteAscension removes an ascension owned by userID.
func (r *ascensionRepository) DeleteAscension(ctx context.Context, userID, ascensionID string) error {
	res, err := r.db.ExecContext(ctx, deleteAscension, ascensionID, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*ascensionRepository.DeleteAscension").Msg("error deleting ascension")
		return r.db.wrap(ErrExecutingStatement, err)
	}
	return affectedOrNotFound(res, ErrAscensionNotFound)
}

// ClimbedColIDs lists the distinct cols with at least one validated ascension.
func (r *ascensionRepository) ClimbedColIDs(ctx context.Context, userID string) ([]string, error) {
	return queryIDs(ctx, r.db, "*ascensionRepository.ClimbedColIDs", climbedColIDs, userID)
}

// ListAscensions returns ascensions most recent first, each with its col.
func (r *ascensionRepository) ListAscensions(ctx context.Context, query AscensionQuery) ([]models.AscensionWithDetails, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildSelectAscensionsQuery(query)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).Str("func", "*ascensionRepository.ListAscensions").Msg("error querying ascensions")
		return nil, r.db.wrap(ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make([]models.AscensionWithDetails, 0)
	for rows.Next() {
		var (
			a models.Ascension
			c models.Col
		)
		if err = rows.Scan(append(ascensionFields(&a), colFields(&c)...)...); err != nil {
			log.Err(err).Str("func", "*ascensionRepository.ListAscensions").Msg("error scanning ascension")
			return nil, r.db.wrap(ErrScanningRows, err)
		}
		result = append(result, models.AscensionWithDetails{Ascension: a, Col: &c})
	}
	if err = rows.Err(); err != nil {
		return nil, r.db.wrap(ErrScanningRows, err)
	}

	return result, nil
}
