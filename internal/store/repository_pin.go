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

// pinRepository is the PostgreSQL-backed implementation of [PinRepository]
// over the cols_epingles table.
type pinRepository struct {
	logger *logger.Logger
	db     *DB
	ids    IDGenerator
}

// NewPinRepository constructs a [PinRepository] backed by db.
func NewPinRepository(db *DB, logger *logger.Logger) PinRepository {
	logger.Debug().Msg("creating pin repository")
	return &pinRepository{
		db:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
	}
}

// CreatePin pins a col. Pinning twice yields [ErrAlreadyPinned].
func (r *pinRepository) CreatePin(ctx context.Context, pin models.Pin) (models.Pin, error) {
	if pin.ID == "" {
		pin.ID = r.ids.Generate()
	}

	created, err := scanPin(r.db.QueryRowContext(ctx, createPin, pin.ID, pin.UserID, pin.ColID, pin.Note))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*pinRepository.CreatePin").Msg("error inserting pin")
		switch code, _ := postgresError(err); code {
		case pgerrcode.UniqueViolation:
			return models.Pin{}, ErrAlreadyPinned
		case pgerrcode.ForeignKeyViolation:
			return models.Pin{}, ErrColNotFound
		}
		return models.Pin{}, r.db.wrap(ErrExecutingQuery, err)
	}

	return created, nil
}

// DeletePin returns [ErrPinNotFound] when colID is not pinned by userID.
func (r *pinRepository) DeletePin(ctx context.Context, userID, colID string) error {
	res, err := r.db.ExecContext(ctx, deletePin, userID, colID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*pinRepository.DeletePin").Msg("error deleting pin")
		return r.db.wrap(ErrExecutingStatement, err)
	}
	return affectedOrNotFound(res, ErrPinNotFound)
}

// UpdatePinNote replaces the note; a nil note clears it.
func (r *pinRepository) UpdatePinNote(ctx context.Context, userID, colID string, note *string) (models.Pin, error) {
	pin, err := scanPin(r.db.QueryRowContext(ctx, updatePinNote, userID, colID, note))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Pin{}, ErrPinNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*pinRepository.UpdatePinNote").Msg("error updating pin note")
		return models.Pin{}, r.db.wrap(ErrExecutingQuery, err)
	}
	return pin, nil
}

// PinnedColIDs lists the cols userID has pinned.
func (r *pinRepository) PinnedColIDs(ctx context.Context, userID string) ([]string, error) {
	return queryIDs(ctx, r.db, "*pinRepository.PinnedColIDs", pinnedColIDs, userID)
}

// ListPinnedCols returns pins with their col, newest first.
func (r *pinRepository) ListPinnedCols(ctx context.Context, userID string) ([]models.PinnedCol, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildSelectPinnedColsQuery(userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).Str("func", "*pinRepository.ListPinnedCols").Msg("error querying pins")
		return nil, r.db.wrap(ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make([]models.PinnedCol, 0)
	for rows.Next() {
		var pc models.PinnedCol
		if err = rows.Scan(append(pinFields(&pc.Pin), colFields(&pc.Col)...)...); err != nil {
			log.Err(err).Str("func", "*pinRepository.ListPinnedCols").Msg("error scanning pin")
			return nil, r.db.wrap(ErrScanningRows, err)
		}
		result = append(result, pc)
	}
	if err = rows.Err(); err != nil {
		return nil, r.db.wrap(ErrScanningRows, err)
	}

	return result, nil
}
