package models

// MarkerState is the colour class of a col on the map.
type MarkerState string

const (
	// Comparison states, used when another cyclist is selected.
	MarkerBoth       MarkerState = "both"
	MarkerSelfOnly   MarkerState = "self-only"
	MarkerOtherOnly  MarkerState = "other-only"
	MarkerNeither    MarkerState = "neither"
	// Solo states.
	MarkerClimbed    MarkerState = "climbed"
	MarkerNotClimbed MarkerState = "not-climbed"
)

// MapMarker is one rendered col on the map.
type MapMarker struct {
	Col    ColWithStatus `json:"col"`
	State  MarkerState   `json:"state"`
	// Color is the hex colour of State.
	Color  string        `json:"color"`
	Pinned bool          `json:"pinned"`
}

// MapView is the full map payload: markers after filtering plus the
// comparison target, if any.
type MapView struct {
	Filter         string      `json:"filter"`
	ComparisonUser string      `json:"comparison_user_id,omitempty"`
	Markers        []MapMarker `json:"markers"`
}
