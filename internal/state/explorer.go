package state

import (
	"github.com/MKhiriev/go-cols/internal/enrich"
	"github.com/MKhiriev/go-cols/models"
)

// ExplorerState is the state of the "other cyclists" screen.
type ExplorerState struct {
	UserID        string
	Stats         []models.UserStatistics
	Favorites     enrich.IDSet
	Search        string
	FavoritesOnly bool
	Err           string
}

// NewExplorerState returns an empty explorer for the viewer userID.
func NewExplorerState(userID string) ExplorerState {
	return ExplorerState{UserID: userID}
}

// ExplorerAction is an input of ReduceExplorer.
type ExplorerAction interface {
	explorerAction()
}

// UsersLoaded replaces the listing and the viewer's favorites.
type UsersLoaded struct {
	Stats     []models.UserStatistics
	Favorites enrich.IDSet
}

// SetSearch changes the pseudo search term.
type SetSearch struct {
	Term string
}

// SetFavoritesOnly toggles the favorites filter.
type SetFavoritesOnly struct {
	On bool
}

// ToggleFavorite follows or unfollows UserID.
type ToggleFavorite struct {
	UserID string
}

// FavoritePersisted reports the outcome of a PersistFavorite.
type FavoritePersisted struct {
	UserID   string
	Favorite bool
	Err      error
}

func (UsersLoaded) explorerAction()       {}
func (SetSearch) explorerAction()         {}
func (SetFavoritesOnly) explorerAction()  {}
func (ToggleFavorite) explorerAction()    {}
func (FavoritePersisted) explorerAction() {}

// ReduceExplorer returns the next explorer state and the commands to run.
func ReduceExplorer(s ExplorerState, action ExplorerAction) (ExplorerState, []Command) {
	switch a := action.(type) {
	case UsersLoaded:
		s.Stats = a.Stats
		s.Favorites = a.Favorites
		s.Err = ""
		return s, nil

	case SetSearch:
		s.Search = a.Term
		return s, nil

	case SetFavoritesOnly:
		s.FavoritesOnly = a.On
		return s, nil

	case ToggleFavorite:
		if a.UserID == s.UserID {
			return s, nil
		}
		favorite := !s.Favorites.Has(a.UserID)
		s.Favorites = s.Favorites.With(a.UserID, favorite)
		return s, []Command{PersistFavorite{UserID: a.UserID, Favorite: favorite}}

	case FavoritePersisted:
		if a.Err != nil {
			s.Favorites = s.Favorites.With(a.UserID, !a.Favorite)
			s.Err = a.Err.Error()
		}
		return s, []Command{Refresh{}}
	}

	return s, nil
}

// Visible returns the listing after excluding the viewer, searching and
// filtering, best climbers first.
func (s ExplorerState) Visible() []models.UserWithStats {
	users := enrich.Users(s.Stats, s.Favorites, s.UserID)
	users = enrich.Search(users, s.Search)
	if s.FavoritesOnly {
		users = enrich.FavoritesOnly(users)
	}
	return enrich.SortByColsClimbed(users)
}
