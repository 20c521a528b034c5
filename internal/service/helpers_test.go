package service

import (
	"testing"

	"github.com/MKhiriev/go-cols/internal/mock"
	"github.com/MKhiriev/go-cols/internal/store"
	"go.uber.org/mock/gomock"
)

type storageMocks struct {
	profiles   *mock.MockProfileRepository
	cols       *mock.MockColRepository
	ascensions *mock.MockAscensionRepository
	pins       *mock.MockPinRepository
	favorites  *mock.MockFavoriteRepository
	statistics *mock.MockStatisticsRepository
}

func newStorageMocks(t *testing.T) (*store.Storages, storageMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := storageMocks{
		profiles:   mock.NewMockProfileRepository(ctrl),
		cols:       mock.NewMockColRepository(ctrl),
		ascensions: mock.NewMockAscensionRepository(ctrl),
		pins:       mock.NewMockPinRepository(ctrl),
		favorites:  mock.NewMockFavoriteRepository(ctrl),
		statistics: mock.NewMockStatisticsRepository(ctrl),
	}

	return &store.Storages{
		ProfileRepository:    m.profiles,
		ColRepository:        m.cols,
		AscensionRepository:  m.ascensions,
		PinRepository:        m.pins,
		FavoriteRepository:   m.favorites,
		StatisticsRepository: m.statistics,
	}, m
}
