// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package compare classifies cols for the map: which cyclist climbed what,
// which colour the marker takes and which cols the active filter keeps.
package compare

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cols/internal/enrich"
	"github.com/MKhiriev/go-cols/models"
)

// Filter narrows the displayed cols. It is orthogonal to comparison.
type Filter string

const (
	FilterAll        Filter = "all"
	FilterClimbed    Filter = "climbed"
	FilterNotClimbed Filter = "not-climbed"
	FilterPinned     Filter = "pinned"
)

// Filters lists every filter in display order.
var Filters = []Filter{FilterAll, FilterClimbed, FilterNotClimbed, FilterPinned}

// ErrUnknownFilter is returned by ParseFilter.
var ErrUnknownFilter = errors.New("unknown filter")

// ParseFilter maps a query value to a Filter. Empty means all.
func ParseFilter(s string) (Filter, error) {
	if s == "" {
		return FilterAll, nil
	}
	for _, f := range Filters {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFilter, s)
}

// Keep reports whether c passes the filter.
func (f Filter) Keep(c models.ColWithStatus) bool {
	switch f {
	case FilterClimbed:
		return c.Climbed
	case FilterNotClimbed:
		return !c.Climbed
	case FilterPinned:
		return c.Pinned
	default:
		return true
	}
}

// Label is the French label of the filter button.
func (f Filter) Label() string {
	switch f {
	case FilterClimbed:
		return "Gravis"
	case FilterNotClimbed:
		return "Non gravis"
	case FilterPinned:
		return "Épinglés"
	default:
		return "Tous"
	}
}

// Marker colours.
const (
	ColorBoth      = "#10b981"
	ColorSelfOnly  = "#3b82f6"
	ColorOtherOnly = "#f59e0b"
	ColorNeither   = "#9ca3af"
	ColorPinned    = "#fbbf24"
)

// Classify returns the marker state of a col. Without a comparison target
// only selfClimbed matters.
func Classify(selfClimbed, otherClimbed, comparing bool) models.MarkerState {
	if !comparing {
		if selfClimbed {
			return models.MarkerClimbed
		}
		return models.MarkerNotClimbed
	}

	switch {
	case selfClimbed && otherClimbed:
		return models.MarkerBoth
	case selfClimbed:
		return models.MarkerSelfOnly
	case otherClimbed:
		return models.MarkerOtherOnly
	default:
		return models.MarkerNeither
	}
}

// Color returns the hex colour of a marker state.
func Color(s models.MarkerState) string {
	switch s {
	case models.MarkerBoth, models.MarkerClimbed:
		return ColorBoth
	case models.MarkerSelfOnly:
		return ColorSelfOnly
	case models.MarkerOtherOnly:
		return ColorOtherOnly
	default:
		return ColorNeither
	}
}

// Apply returns the cols kept by the filter, in input order.
func Apply(cols []models.ColWithStatus, f Filter) []models.ColWithStatus {
	out := make([]models.ColWithStatus, 0, len(cols))
	for _, c := range cols {
		if f.Keep(c) {
			out = append(out, c)
		}
	}
	return out
}

// Markers filters cols and classifies every remaining one. A nil other
// means no comparison target is selected. Pin state always belongs to the
// viewer.
func Markers(cols []models.ColWithStatus, f Filter, other enrich.IDSet) []models.MapMarker {
	comparing := other != nil
	filtered := Apply(cols, f)

	out := make([]models.MapMarker, 0, len(filtered))
	for _, c := range filtered {
		state := Classify(c.Climbed, other.Has(c.ID), comparing)
		out = append(out, models.MapMarker{
			Col:    c,
			State:  state,
			Color:  Color(state),
			Pinned: c.Pinned,
		})
	}
	return out
}

// LegendEntry is one line of the map legend.
type LegendEntry struct {
	State models.MarkerState
	Color string
	Label string
}

// Legend returns the legend for the current mode. otherPseudo names the
// comparison target.
func Legend(comparing bool, otherPseudo string) []LegendEntry {
	if !comparing {
		return []LegendEntry{
			{State: models.MarkerClimbed, Color: ColorBoth, Label: "Gravi"},
			{State: models.MarkerNotClimbed, Color: ColorNeither, Label: "Non gravi"},
		}
	}

	return []LegendEntry{
		{State: models.MarkerBoth, Color: ColorBoth, Label: "Gravi par les deux"},
		{State: models.MarkerSelfOnly, Color: ColorSelfOnly, Label: "Gravi par moi uniquement"},
		{State: models.MarkerOtherOnly, Color: ColorOtherOnly, Label: "Gravi par " + otherPseudo + " uniquement"},
		{State: models.MarkerNeither, Color: ColorNeither, Label: "Non gravi"},
	}
}

// Counts tallies markers per state.
func Counts(markers []models.MapMarker) map[models.MarkerState]int {
	out := make(map[models.MarkerState]int, 4)
	for _, m := range markers {
		out[m.State]++
	}
	return out
}
