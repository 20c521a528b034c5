package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cols/internal/enrich"
	"github.com/MKhiriev/go-cols/internal/logger"
	"github.com/MKhiriev/go-cols/internal/store"
	"github.com/MKhiriev/go-cols/models"
)

type explorerService struct {
	statistics store.StatisticsRepository
	favorites  store.FavoriteRepository
	logger     *logger.Logger
}

// NewExplorerService builds the explorer service over the statistics and
// favorite repositories.
func NewExplorerService(storages *store.Storages, logger *logger.Logger) ExplorerService {
	return &explorerService{
		statistics: storages.StatisticsRepository,
		favorites:  storages.FavoriteRepository,
		logger:     logger,
	}
}

// List returns every other cyclist with statistics, ordered by cols climbed.
// The favorites set is optional: on failure every row has IsFavorite false.
func (s *explorerService) List(ctx context.Context, userID, search string, favoritesOnly bool) ([]models.UserWithStats, error) {
	rows, err := s.statistics.ListStatistics(ctx, store.StatisticsQuery{ExcludeUserID: userID, Search: search})
	if err != nil {
		return nil, fmt.Errorf("listing cyclists failed: %w", err)
	}

	favoriteIDs, err := s.favorites.FavoriteUserIDs(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*explorerService.List").Msg("favorites unavailable")
	}

	users := enrich.Users(rows, enrich.NewIDSet(favoriteIDs...), userID)
	if favoritesOnly {
		users = enrich.FavoritesOnly(users)
	}
	return enrich.SortByColsClimbed(users), nil
}

func (s *explorerService) AddFavorite(ctx context.Context, userID, favoriteUserID string) (models.Favorite, error) {
	if userID == favoriteUserID {
		return models.Favorite{}, store.ErrSelfFavorite
	}

	favorite, err := s.favorites.CreateFavorite(ctx, models.Favorite{UserID: userID, FavoriteUserID: favoriteUserID})
	if err != nil {
		return models.Favorite{}, fmt.Errorf("adding favorite failed: %w", err)
	}
	return favorite, nil
}

func (s *explorerService) RemoveFavorite(ctx context.Context, userID, favoriteUserID string) error {
	if err := s.favorites.DeleteFavorite(ctx, userID, favoriteUserID); err != nil {
		return fmt.Errorf("removing favorite failed: %w", err)
	}
	return nil
}
