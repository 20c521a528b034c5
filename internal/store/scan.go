package store

import (
	"github.com/MKhiriev/go-cols/models"
)

type scanner interface {
	Scan(dest ...any) error
}

func profileFields(p *models.Profile) []any {
	return []any{&p.ID, &p.Email, &p.Pseudo, &p.FirstName, &p.LastName, &p.AvatarURL, &p.StravaID, &p.PasswordHash, &p.CreatedAt, &p.UpdatedAt}
}

func colFields(c *models.Col) []any {
	return []any{&c.ID, &c.Name, &c.Altitude, &c.Latitude, &c.Longitude, &c.ElevationGain, &c.DistanceKm, &c.AvgGrade, &c.MaxGrade, &c.Country, &c.Region, &c.Description, &c.Difficulty, &c.StravaSegmentID, &c.CreatedAt}
}

func ascensionFields(a *models.Ascension) []any {
	return []any{&a.ID, &a.UserID, &a.ColID, &a.Date, &a.DurationSeconds, &a.AvgSpeedKmh, &a.AvgHeartRate, &a.AvgPowerWatts, &a.StravaActivityID, &a.Validated, &a.CreatedAt}
}

func pinFields(p *models.Pin) []any {
	return []any{&p.ID, &p.UserID, &p.ColID, &p.Note, &p.CreatedAt}
}

func statsFields(s *models.UserStatistics) []any {
	return []any{&s.UserID, &s.Pseudo, &s.ColsClimbed, &s.AscentCount, &s.TotalElevation, &s.OutingCount}
}

func scanProfile(row scanner) (models.Profile, error) {
	var p models.Profile
	err := row.Scan(profileFields(&p)...)
	return p, err
}

func scanCol(row scanner) (models.Col, error) {
	var c models.Col
	err := row.Scan(colFields(&c)...)
	return c, err
}

func scanAscension(row scanner) (models.Ascension, error) {
	var a models.Ascension
	err := row.Scan(ascensionFields(&a)...)
	return a, err
}

func scanPin(row scanner) (models.Pin, error) {
	var p models.Pin
	err := row.Scan(pinFields(&p)...)
	return p, err
}

func scanStatistics(row scanner) (models.UserStatistics, error) {
	var s models.UserStatistics
	err := row.Scan(statsFields(&s)...)
	return s, err
}
