package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-cols/internal/logger"
	"github.com/MKhiriev/go-cols/internal/store"
	"github.com/MKhiriev/go-cols/models"
)

const (
	dashboardRecentLimit   = 5
	profilePageRecentLimit = 10
)

// dashboardService aggregates several repositories. Only the profile is
// required; every other part falls back to an empty value and a warning.
type dashboardService struct {
	profiles   store.ProfileRepository
	cols       store.ColRepository
	ascensions store.AscensionRepository
	pins       store.PinRepository
	favorites  store.FavoriteRepository
	statistics store.StatisticsRepository
	logger     *logger.Logger
}

// NewDashboardService builds the dashboard and profile page service from the
// repositories in storages.
func NewDashboardService(storages *store.Storages, logger *logger.Logger) DashboardService {
	return &dashboardService{
		profiles:   storages.ProfileRepository,
		cols:       storages.ColRepository,
		ascensions: storages.AscensionRepository,
		pins:       storages.PinRepository,
		favorites:  storages.FavoriteRepository,
		statistics: storages.StatisticsRepository,
		logger:     logger,
	}
}

// Dashboard assembles the viewer's home page. Only validated ascensions are
// listed.
func (s *dashboardService) Dashboard(ctx context.Context, userID string) (models.Dashboard, error) {
	profile, err := s.profiles.FindProfileByID(ctx, userID)
	if err != nil {
		return models.Dashboard{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	pinned, err := s.pins.ListPinnedCols(ctx, userID)
	if err != nil {
		s.warn(ctx, err, "pinned cols unavailable")
		pinned = []models.PinnedCol{}
	}

	return models.Dashboard{
		Profile:          profile,
		Statistics:       s.statisticsOrZero(ctx, profile),
		TotalCols:        s.totalColsOrZero(ctx),
		RecentAscensions: s.recentOrEmpty(ctx, userID, dashboardRecentLimit),
		PinnedCols:       pinned,
	}, nil
}

// ProfilePage shows any cyclist's page. Only validated ascensions are listed.
func (s *dashboardService) ProfilePage(ctx context.Context, viewerID, userID string) (models.ProfilePage, error) {
	profile, err := s.profiles.FindProfileByID(ctx, userID)
	if err != nil {
		return models.ProfilePage{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	isFavorite := false
	if viewerID != userID {
		ids, err := s.favorites.FavoriteUserIDs(ctx, viewerID)
		if err != nil {
			s.warn(ctx, err, "favorites unavailable")
		}
		isFavorite = slices.Contains(ids, userID)
	}

	return models.ProfilePage{
		Profile:          profile,
		Statistics:       s.statisticsOrZero(ctx, profile),
		TotalCols:        s.totalColsOrZero(ctx),
		RecentAscensions: s.recentOrEmpty(ctx, userID, profilePageRecentLimit),
		IsFavorite:       isFavorite,
	}, nil
}

// statisticsOrZero falls back to zero statistics carrying the profile.
func (s *dashboardService) statisticsOrZero(ctx context.Context, profile models.Profile) models.UserStatistics {
	stats, err := s.statistics.StatisticsByUser(ctx, profile.ID)
	if err != nil {
		s.warn(ctx, err, "statistics unavailable")
		return models.UserStatistics{UserID: profile.ID, Pseudo: profile.Pseudo}
	}
	return stats
}

func (s *dashboardService) totalColsOrZero(ctx context.Context) int {
	total, err := s.cols.CountCols(ctx)
	if err != nil {
		s.warn(ctx, err, "col count unavailable")
		return 0
	}
	return total
}

// recentOrEmpty lists the latest validated ascensions of userID.
func (s *dashboardService) recentOrEmpty(ctx context.Context, userID string, limit uint64) []models.AscensionWithDetails {
	query := store.AscensionQuery{UserID: userID, ValidatedOnly: true, Limit: limit}
	list, err := s.ascensions.ListAscensions(ctx, query)
	if err != nil {
		s.warn(ctx, err, "recent ascensions unavailable")
		return []models.AscensionWithDetails{}
	}
	return list
}

func (s *dashboardService) warn(ctx context.Context, err error, msg string) {
	logger.FromContext(ctx).Warn().Err(err).Str("func", "*dashboardService").Msg(msg)
}
