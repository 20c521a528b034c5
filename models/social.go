package models

import "time"

// Pin is a cyclist's bookmark on a col, independent of whether it was climbed.
type Pin struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ColID     string    `json:"col_id"`
	Note      *string   `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table backing Pin.
func (p Pin) TableName() string {
	return "cols_epingles"
}

// PinnedCol is a pin joined with its col, as listed on the dashboard.
type PinnedCol struct {
	Pin
	Col Col `json:"col"`
}

// PinNote is the body of a pin note edit. A nil Note clears it.
type PinNote struct {
	Note *string `json:"note" validate:"omitempty,max=500"`
}

// Favorite is a directed follow from UserID to FavoriteUserID.
type Favorite struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	FavoriteUserID string    `json:"favori_user_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// TableName returns the name of the database table backing Favorite.
func (f Favorite) TableName() string {
	return "favoris"
}
