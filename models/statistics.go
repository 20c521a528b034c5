package models

// UserStatistics is one row of the user_statistics view.
// All counts consider validated ascensions only.
type UserStatistics struct {
	UserID         string `json:"id"`
	Pseudo         string `json:"pseudo"`
	ColsClimbed    int    `json:"cols_gravis"`
	AscentCount    int    `json:"nombre_ascensions"`
	TotalElevation int    `json:"denivele_total"`
	// OutingCount counts distinct climb dates.
	OutingCount    int    `json:"nombre_sorties"`
}

// UserWithStats is a row of the explorer listing.
type UserWithStats struct {
	UserStatistics
	IsFavorite bool `json:"is_favorite"`
}

// Dashboard is everything the home screen shows for the current user.
type Dashboard struct {
	Profile          Profile                `json:"profile"`
	Statistics       UserStatistics         `json:"statistics"`
	TotalCols        int                    `json:"total_cols"`
	// RecentAscensions holds the latest validated ascensions.
	RecentAscensions []AscensionWithDetails `json:"recent_ascensions"`
	PinnedCols       []PinnedCol            `json:"pinned_cols"`
}

// ProfilePage is the public page of any cyclist.
type ProfilePage struct {
	Profile          Profile                `json:"profile"`
	Statistics       UserStatistics         `json:"statistics"`
	TotalCols        int                    `json:"total_cols"`
	RecentAscensions []AscensionWithDetails `json:"recent_ascensions"`
	IsFavorite       bool                   `json:"is_favorite"`
}

// ColCount answers GET /api/cols/count.
type ColCount struct {
	Total int `json:"total"`
}

// ClimbedCols answers GET /api/users/{userID}/climbed.
type ClimbedCols struct {
	UserID string   `json:"user_id"`
	ColIDs []string `json:"col_ids"`
}
