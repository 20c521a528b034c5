package store

import (
	"github.com/MKhiriev/go-cols/internal/logger"
)

// Storages groups the server repositories sharing one database handle.
type Storages struct {
	ProfileRepository    ProfileRepository
	ColRepository        ColRepository
	AscensionRepository  AscensionRepository
	PinRepository        PinRepository
	FavoriteRepository   FavoriteRepository
	StatisticsRepository StatisticsRepository
}

// NewStorages builds every server repository on db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		ProfileRepository:    NewProfileRepository(db, log),
		ColRepository:        NewColRepository(db, log),
		AscensionRepository:  NewAscensionRepository(db, log),
		PinRepository:        NewPinRepository(db, log),
		FavoriteRepository:   NewFavoriteRepository(db, log),
		StatisticsRepository: NewStatisticsRepository(db, log),
	}
}
