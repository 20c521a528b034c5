// Package enrich joins raw rows into the read-only view values the screens
// render: cols annotated with the viewer's climbed and pinned state, and
// other cyclists annotated with the viewer's favorites.
//
// Every function is pure. Inputs are never modified and the returned
// slices are freshly allocated.
package enrich

import (
	"cmp"
	"slices"
	"strings"

	"github.com/MKhiriev/go-cols/models"
)

// IDSet is a set of row ids with O(1) membership.
// The zero value is an empty, read-only set.
type IDSet map[string]struct{}

// NewIDSet builds a set from ids. Duplicates collapse.
func NewIDSet(ids ...string) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id is in the set. Safe on a nil set.
func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of ids in the set.
func (s IDSet) Len() int {
	return len(s)
}

// IDs returns the members in ascending order.
func (s IDSet) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// With returns a copy of s with id added or removed.
func (s IDSet) With(id string, present bool) IDSet {
	out := make(IDSet, len(s)+1)
	for k := range s {
		out[k] = struct{}{}
	}
	if present {
		out[id] = struct{}{}
	} else {
		delete(out, id)
	}
	return out
}

// Cols annotates each col with climbed and pinned for the current viewer.
// Empty or nil sets yield all-false annotations.
func Cols(cols []models.Col, climbed, pinned IDSet) []models.ColWithStatus {
	out := make([]models.ColWithStatus, 0, len(cols))
	for _, c := range cols {
		out = append(out, models.ColWithStatus{
			Col:     c,
			Climbed: climbed.Has(c.ID),
			Pinned:  pinned.Has(c.ID),
		})
	}
	return out
}

// Users builds the explorer listing. The viewer's own row is always left out.
func Users(stats []models.UserStatistics, favorites IDSet, currentUserID string) []models.UserWithStats {
	out := make([]models.UserWithStats, 0, len(stats))
	for _, s := range stats {
		if s.UserID == currentUserID {
			continue
		}
		out = append(out, models.UserWithStats{
			UserStatistics: s,
			IsFavorite:     favorites.Has(s.UserID),
		})
	}
	return out
}

// Search keeps users whose pseudo contains term, ignoring case.
// A blank term keeps everyone.
func Search(users []models.UserWithStats, term string) []models.UserWithStats {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return slices.Clone(users)
	}

	out := make([]models.UserWithStats, 0, len(users))
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Pseudo), term) {
			out = append(out, u)
		}
	}
	return out
}

// FavoritesOnly keeps the users the viewer follows.
func FavoritesOnly(users []models.UserWithStats) []models.UserWithStats {
	out := make([]models.UserWithStats, 0, len(users))
	for _, u := range users {
		if u.IsFavorite {
			out = append(out, u)
		}
	}
	return out
}

// SortByColsClimbed orders users by climbed cols, most first, then by pseudo.
func SortByColsClimbed(users []models.UserWithStats) []models.UserWithStats {
	out := slices.Clone(users)
	slices.SortStableFunc(out, func(a, b models.UserWithStats) int {
		if c := cmp.Compare(b.ColsClimbed, a.ColsClimbed); c != 0 {
			return c
		}
		return cmp.Compare(strings.ToLower(a.Pseudo), strings.ToLower(b.Pseudo))
	})
	return out
}

// ClimbedColIDs collects the col ids of validated ascensions.
func ClimbedColIDs(ascensions []models.Ascension) IDSet {
	s := make(IDSet, len(ascensions))
	for _, a := range ascensions {
		if a.Validated {
			s[a.ColID] = struct{}{}
		}
	}
	return s
}
