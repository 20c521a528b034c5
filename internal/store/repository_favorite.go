package store

import (
	"context"

	"github.com/MKhiriev/go-cols/internal/logger"
	"github.com/MKhiriev/go-cols/internal/utils"
	"github.com/MKhiriev/go-cols/models"
	"github.com/jackc/pgerrcode"
)

// favoriteRepository is the PostgreSQL-backed implementation of
// [FavoriteRepository] over the favoris table.
type favoriteRepository struct {
	logger *logger.Logger
	db     *DB
	ids    IDGenerator
}

// NewFavoriteRepository constructs a [FavoriteRepository] backed by db.
func NewFavoriteRepository(db *DB, logger *logger.Logger) FavoriteRepository {
	logger.Debug().Msg("creating favorite repository")
	return &favoriteRepository{
		db:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
	}
}

// CreateFavorite follows a cyclist.
//
// Error handling:
//   - unique_violation → [ErrAlreadyFavorite].
//   - check_violation on favoris_not_self → [ErrSelfFavorite].
//   - foreign_key_violation → [ErrProfileNotFound].
func (r *favoriteRepository) CreateFavorite(ctx context.Context, f models.Favorite) (models.Favorite, error) {
	if f.ID == "" {
		f.ID = r.ids.Generate()
	}

	var created models.Favorite
	err := r.db.QueryRowContext(ctx, createFavorite, f.ID, f.UserID, f.FavoriteUserID).
		Scan(&created.ID, &created.UserID, &created.FavoriteUserID, &created.CreatedAt)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*favoriteRepository.CreateFavorite").Msg("error inserting favorite")
		code, constraint := postgresError(err)
		switch {
		case code == pgerrcode.UniqueViolation:
			return models.Favorite{}, ErrAlreadyFavorite
		case code == pgerrcode.CheckViolation && constraint == constraintFavoriteSelf:
			return models.Favorite{}, ErrSelfFavorite
		case code == pgerrcode.ForeignKeyViolation:
			return models.Favorite{}, ErrProfileNotFound
		}
		return models.Favorite{}, r.db.wrap(ErrExecutingQuery, err)
	}

	return created, nil
}

// DeleteFavorite returns [ErrFavoriteNotFound] when userID does not follow
// favoriteUserID.
func (r *favoriteRepository) DeleteFavorite(ctx context.Context, userID, favoriteUserID string) error {
	res, err := r.db.ExecContext(ctx, deleteFavorite, userID, favoriteUserID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*favoriteRepository.DeleteFavorite").Msg("error deleting favorite")
		return r.db.wrap(ErrExecutingStatement, err)
	}
	return affectedOrNotFound(res, ErrFavoriteNotFound)
}

// FavoriteUserIDs lists the cyclists userID follows.
func (r *favoriteRepository) FavoriteUserIDs(ctx context.Context, userID string) ([]string, error) {
	return queryIDs(ctx, r.db, "*favoriteRepository.FavoriteUserIDs", favoriteUserIDs, userID)
}
