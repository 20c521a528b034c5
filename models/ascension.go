package models

import "time"

// Ascension records that a cyclist climbed a col on a given date.
// Only validated ascensions count toward statistics and climbed status.
type Ascension struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	ColID            string    `json:"col_id" validate:"required"`
	// Date is the calendar day of the climb, stored at midnight UTC.
	Date             time.Time `json:"date_ascension" validate:"required"`
	// Metrics are optional; when set they must be positive.
	DurationSeconds  *int      `json:"temps_secondes,omitempty" validate:"omitempty,gt=0"`
	AvgSpeedKmh      *float64  `json:"vitesse_moyenne_kmh,omitempty" validate:"omitempty,gt=0"`
	AvgHeartRate     *int      `json:"frequence_cardiaque_moyenne,omitempty" validate:"omitempty,gt=0"`
	AvgPowerWatts    *int      `json:"puissance_moyenne_watts,omitempty" validate:"omitempty,gt=0"`
	// StravaActivityID links an imported activity.
	StravaActivityID *int64    `json:"strava_activity_id,omitempty"`
	// Validated is set by the server; a client-sent value is ignored.
	Validated        bool      `json:"validee"`
	CreatedAt        time.Time `json:"created_at"`
}

// TableName returns the name of the database table backing Ascension.
func (a Ascension) TableName() string {
	return "ascensions"
}

// AscensionWithDetails embeds the col and, when relevant, the climber.
type AscensionWithDetails struct {
	Ascension
	Col     *Col     `json:"col,omitempty"`
	Profile *Profile `json:"profile,omitempty"`
}
