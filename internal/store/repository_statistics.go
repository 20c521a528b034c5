package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MKhiriev/go-cols/internal/logger"
	"github.com/MKhiriev/go-cols/models"
)

// statisticsRepository reads the user_statistics view.
type statisticsRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewStatisticsRepository constructs a [StatisticsRepository] over the
// user_statistics view.
func NewStatisticsRepository(db *DB, logger *logger.Logger) StatisticsRepository {
	logger.Debug().Msg("creating statistics repository")
	return &statisticsRepository{
		db:     db,
		logger: logger,
	}
}

// StatisticsByUser returns [ErrProfileNotFound] for an unknown user. A
// cyclist with no ascension still has a row of zeros.
func (r *statisticsRepository) StatisticsByUser(ctx context.Context, userID string) (models.UserStatistics, error) {
	s, err := scanStatistics(r.db.QueryRowContext(ctx, statisticsByUser, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.UserStatistics{}, ErrProfileNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*statisticsRepository.StatisticsByUser").Msg("error reading statistics")
		return models.UserStatistics{}, r.db.wrap(ErrScanningRow, err)
	}
	return s, nil
}

// ListStatistics returns rows ordered by cols climbed, then pseudo.
func (r *statisticsRepository) ListStatistics(ctx context.Context, query StatisticsQuery) ([]models.UserStatistics, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildSelectStatisticsQuery(query)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).Str("func", "*statisticsRepository.ListStatistics").Msg("error querying statistics")
		return nil, r.db.wrap(ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make([]models.UserStatistics, 0)
	for rows.Next() {
		s, err := scanStatistics(rows)
		if err != nil {
			log.Err(err).Str("func", "*statisticsRepository.ListStatistics").Msg("error scanning statistics")
			return nil, r.db.wrap(ErrScanningRows, err)
		}
		result = append(result, s)
	}
	if err = rows.Err(); err != nil {
		return nil, r.db.wrap(ErrScanningRows, err)
	}

	return result, nil
}
