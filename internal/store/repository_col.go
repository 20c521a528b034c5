package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MKhiriev/go-cols/internal/logger"
	"github.com/MKhiriev/go-cols/internal/utils"
	"github.com/MKhiriev/go-cols/models"
)

// colRepository is the PostgreSQL-backed implementation of [ColRepository].
// The catalogue is read-only for cyclists; only the import tool writes it.
type colRepository struct {
	logger *logger.Logger
	db     *DB
	ids    IDGenerator
}

// NewColRepository constructs a [ColRepository] backed by db.
func NewColRepository(db *DB, logger *logger.Logger) ColRepository {
	logger.Debug().Msg("creating col repository")
	return &colRepository{
		db:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
	}
}

// ListCols returns cols ordered by altitude, highest first.
func (r *colRepository) ListCols(ctx context.Context, query ColQuery) ([]models.Col, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildSelectColsQuery(query)
	if err != nil {
		log.Err(err).Str("func", "*colRepository.ListCols").Msg("error building query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).Str("func", "*colRepository.ListCols").Msg("error querying cols")
		return nil, r.db.wrap(ErrExecutingQuery, err)
	}
	defer rows.Close()

	cols := make([]models.Col, 0)
	for rows.Next() {
		col, err := scanCol(rows)
		if err != nil {
			log.Err(err).Str("func", "*colRepository.ListCols").Msg("error scanning col")
			return nil, r.db.wrap(ErrScanningRows, err)
		}
		cols = append(cols, col)
	}
	if err = rows.Err(); err != nil {
		return nil, r.db.wrap(ErrScanningRows, err)
	}

	return cols, nil
}

// FindColByID returns [ErrColNotFound] when id matches no col.
func (r *colRepository) FindColByID(ctx context.Context, id string) (models.Col, error) {
	col, err := scanCol(r.db.QueryRowContext(ctx, findColByID, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Col{}, ErrColNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*colRepository.FindColByID").Msg("error finding col")
		return models.Col{}, r.db.wrap(ErrScanningRow, err)
	}
	return col, nil
}

// CountCols calls get_total_cols_count().
func (r *colRepository) CountCols(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, countCols).Scan(&total); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*colRepository.CountCols").Msg("error counting cols")
		return 0, r.db.wrap(ErrExecutingQuery, err)
	}
	return total, nil
}

// UpsertCols loads a catalog atomically: either every col is written or none.
func (r *colRepository) UpsertCols(ctx context.Context, cols []models.Col) (inserted, updated int, err error) {
	log := logger.FromContext(ctx)

	err = r.db.WithTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, upsertCol)
		if err != nil {
			return r.db.wrap(ErrExecutingStatement, err)
		}
		defer stmt.Close()

		for _, col := range cols {
			id := col.ID
			if id == "" {
				id = r.ids.Generate()
			}

			var isNew bool
			err = stmt.QueryRowContext(ctx, id, col.Name, col.Altitude, col.Latitude, col.Longitude, col.ElevationGain, col.DistanceKm,
				col.AvgGrade, col.MaxGrade, col.Country, col.Region, col.Description, difficultyArg(col.Difficulty), col.StravaSegmentID).
				Scan(&isNew)
			if err != nil {
				log.Err(err).Str("func", "*colRepository.UpsertCols").Str("col", col.Name).Msg("error upserting col")
				return r.db.wrap(ErrExecutingStatement, err)
			}

			if isNew {
				inserted++
			} else {
				updated++
			}
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	log.Info().Str("func", "*colRepository.UpsertCols").Int("inserted", inserted).Int("updated", updated).Msg("catalog loaded")
	return inserted, updated, nil
}

// difficultyArg maps an unset difficulty to SQL NULL.
func difficultyArg(d *models.Difficulty) any {
	if d == nil {
		return nil
	}
	return string(*d)
}
