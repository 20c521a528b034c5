package state

import (
	"errors"
	"testing"

	"github.com/MKhiriev/go-cols/internal/enrich"
	"github.com/MKhiriev/go-cols/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedExplorer() ExplorerState {
	s, _ := ReduceExplorer(NewExplorerState("u1"), UsersLoaded{
		Stats: []models.UserStatistics{
			{UserID: "u1", Pseudo: "alice", ColsClimbed: 9},
			{UserID: "u2", Pseudo: "bob", ColsClimbed: 2},
			{UserID: "u3", Pseudo: "carol", ColsClimbed: 5},
		},
		Favorites: enrich.NewIDSet("u2"),
	})
	return s
}

func pseudos(users []models.UserWithStats) []string {
	out := make([]string, 0, len(users))
	for _, u := range users {
		out = append(out, u.Pseudo)
	}
	return out
}

func TestExplorer_VisibleExcludesViewer(t *testing.T) {
	assert.Equal(t, []string{"carol", "bob"}, pseudos(loadedExplorer().Visible()))
}

func TestExplorer_SearchAndFavoritesCompose(t *testing.T) {
	s, _ := ReduceExplorer(loadedExplorer(), SetSearch{Term: "O"})
	assert.Equal(t, []string{"carol", "bob"}, pseudos(s.Visible()))

	s, _ = ReduceExplorer(s, SetFavoritesOnly{On: true})
	assert.Equal(t, []string{"bob"}, pseudos(s.Visible()))

	s, _ = ReduceExplorer(s, SetSearch{Term: "car"})
	assert.Empty(t, s.Visible())
}

func TestExplorer_ToggleFavorite(t *testing.T) {
	s, cmds := ReduceExplorer(loadedExplorer(), ToggleFavorite{UserID: "u3"})

	assert.True(t, s.Favorites.Has("u3"))
	assert.Equal(t, []Command{PersistFavorite{UserID: "u3", Favorite: true}}, cmds)

	s, cmds = ReduceExplorer(s, ToggleFavorite{UserID: "u2"})
	assert.False(t, s.Favorites.Has("u2"))
	assert.Equal(t, []Command{PersistFavorite{UserID: "u2", Favorite: false}}, cmds)
}

func TestExplorer_CannotFavoriteSelf(t *testing.T) {
	s, cmds := ReduceExplorer(loadedExplorer(), ToggleFavorite{UserID: "u1"})

	assert.Empty(t, cmds)
	assert.False(t, s.Favorites.Has("u1"))
}

func TestExplorer_FavoriteFailureReverts(t *testing.T) {
	s, _ := ReduceExplorer(loadedExplorer(), ToggleFavorite{UserID: "u3"})

	s, cmds := ReduceExplorer(s, FavoritePersisted{UserID: "u3", Favorite: true, Err: errors.New("down")})

	assert.False(t, s.Favorites.Has("u3"))
	assert.Equal(t, "down", s.Err)
	require.Equal(t, []Command{Refresh{}}, cmds)
}
