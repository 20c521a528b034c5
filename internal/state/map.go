package state

import (
	"github.com/MKhiriev/go-cols/internal/compare"
	"github.com/MKhiriev/go-cols/internal/enrich"
	"github.com/MKhiriev/go-cols/models"
)

// MapState is the state of the map screen.
type MapState struct {
	Cols    []models.Col
	Climbed enrich.IDSet
	Pinned  enrich.IDSet
	Filter  compare.Filter

	// Target is the comparison user id; empty when not comparing.
	Target       string
	TargetPseudo string
	// Other is the target's climbed set; nil until it is loaded.
	Other enrich.IDSet
	// Generation increases on every target change.
	Generation uint64

	Loading bool
	Err     string
}

// NewMapState returns the initial map state: no data, filter "all".
func NewMapState() MapState {
	return MapState{Filter: compare.FilterAll}
}

// MapAction is an input of ReduceMap.
type MapAction interface {
	mapAction()
}

// ColsLoaded replaces the cols and the viewer's climbed and pinned sets.
type ColsLoaded struct {
	Cols    []models.Col
	Climbed enrich.IDSet
	Pinned  enrich.IDSet
}

// SetFilter changes the displayed subset.
type SetFilter struct {
	Filter compare.Filter
}

// SetComparisonTarget selects another cyclist, or clears the selection
// when UserID is empty.
type SetComparisonTarget struct {
	UserID string
	Pseudo string
}

// ComparisonLoaded delivers the result of a FetchComparison.
type ComparisonLoaded struct {
	Generation uint64
	ColIDs     []string
	Err        error
}

// TogglePin flips the viewer's pin on ColID.
type TogglePin struct {
	ColID string
}

// PinPersisted reports the outcome of a PersistPin.
type PinPersisted struct {
	ColID  string
	Pinned bool
	Err    error
}

func (ColsLoaded) mapAction()          {}
func (SetFilter) mapAction()           {}
func (SetComparisonTarget) mapAction() {}
func (ComparisonLoaded) mapAction()    {}
func (TogglePin) mapAction()           {}
func (PinPersisted) mapAction()        {}

// ReduceMap returns the next map state and the commands to run.
func ReduceMap(s MapState, action MapAction) (MapState, []Command) {
	switch a := action.(type) {
	case ColsLoaded:
		s.Cols = a.Cols
		s.Climbed = a.Climbed
		s.Pinned = a.Pinned
		s.Err = ""
		return s, nil

	case SetFilter:
		s.Filter = a.Filter
		return s, nil

	case SetComparisonTarget:
		s.Generation++
		s.Other = nil
		s.Err = ""
		if a.UserID == "" {
			s.Target, s.TargetPseudo = "", ""
			s.Loading = false
			return s, nil
		}
		s.Target, s.TargetPseudo = a.UserID, a.Pseudo
		s.Loading = true
		return s, []Command{FetchComparison{UserID: a.UserID, Generation: s.Generation}}

	case ComparisonLoaded:
		if a.Generation != s.Generation || s.Target == "" {
			return s, nil
		}
		s.Loading = false
		if a.Err != nil {
			s.Other = enrich.NewIDSet()
			s.Err = a.Err.Error()
			return s, nil
		}
		s.Other = enrich.NewIDSet(a.ColIDs...)
		return s, nil

	case TogglePin:
		pinned := !s.Pinned.Has(a.ColID)
		s.Pinned = s.Pinned.With(a.ColID, pinned)
		return s, []Command{PersistPin{ColID: a.ColID, Pinned: pinned}}

	case PinPersisted:
		if a.Err != nil {
			s.Pinned = s.Pinned.With(a.ColID, !a.Pinned)
			s.Err = a.Err.Error()
		}
		return s, []Command{Refresh{}}
	}

	return s, nil
}

// Comparing reports whether a comparison target's set is loaded.
func (s MapState) Comparing() bool {
	return s.Target != "" && s.Other != nil
}

// Statuses returns every col annotated for the viewer.
func (s MapState) Statuses() []models.ColWithStatus {
	return enrich.Cols(s.Cols, s.Climbed, s.Pinned)
}

// Markers recomputes every displayed marker from scratch.
func (s MapState) Markers() []models.MapMarker {
	var other enrich.IDSet
	if s.Comparing() {
		other = s.Other
	}
	return compare.Markers(s.Statuses(), s.Filter, other)
}

// View packages the markers for transport.
func (s MapState) View() models.MapView {
	view := models.MapView{Filter: string(s.Filter), Markers: s.Markers()}
	if s.Comparing() {
		view.ComparisonUser = s.Target
	}
	return view
}
