package models

import "time"

// Profile is the public identity of a cyclist.
//
// Pseudo is unique across all profiles; the database constraint is the
// only authority on that. PasswordHash never leaves the server.
type Profile struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Pseudo    string  `json:"pseudo"`
	FirstName string  `json:"prenom"`
	LastName  string  `json:"nom"`
	AvatarURL *string `json:"avatar_url,omitempty"`

	// Strava linkage is stored and surfaced only.
	StravaID *int64 `json:"strava_id,omitempty"`

	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table backing Profile.
func (p Profile) TableName() string {
	return "profiles"
}

// DisplayName returns "Prénom Nom" when available and the pseudo otherwise.
func (p Profile) DisplayName() string {
	switch {
	case p.FirstName != "" && p.LastName != "":
		return p.FirstName + " " + p.LastName
	case p.FirstName != "":
		return p.FirstName
	default:
		return p.Pseudo
	}
}

// RegisterRequest carries the registration form.
//
// Confirm is checked on the client and again on the server; it is never stored.
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	Confirm   string `json:"confirm_password"`
	Pseudo    string `json:"pseudo" validate:"required,min=2,max=32"`
	FirstName string `json:"prenom" validate:"max=64"`
	LastName  string `json:"nom" validate:"max=64"`
}

// LoginRequest carries email and password credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// PseudoAvailability answers the advisory pseudo lookup.
type PseudoAvailability struct {
	Pseudo    string `json:"pseudo"`
	Available bool   `json:"available"`
}
