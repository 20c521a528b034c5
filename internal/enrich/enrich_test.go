package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cols/models"
)

func testCols() []models.Col {
	return []models.Col{
		{ID: "c1", Name: "Col du Tourmalet"},
		{ID: "c2", Name: "Col du Galibier"},
		{ID: "c3", Name: "Mont Ventoux"},
	}
}

// ── IDSet ─────────────────────────────────────────────────────────────────────

func TestIDSet_NilIsEmpty(t *testing.T) {
	var s IDSet
	assert.False(t, s.Has("x"))
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.IDs())
}

func TestIDSet_WithDoesNotMutate(t *testing.T) {
	s := NewIDSet("a", "b", "a")
	require.Equal(t, 2, s.Len())

	added := s.With("c", true)
	removed := s.With("a", false)

	assert.Equal(t, []string{"a", "b"}, s.IDs())
	assert.Equal(t, []string{"a", "b", "c"}, added.IDs())
	assert.Equal(t, []string{"b"}, removed.IDs())
}

// ── Cols ──────────────────────────────────────────────────────────────────────

func TestCols_ClimbedAndPinnedFollowMembership(t *testing.T) {
	climbed := NewIDSet("c1", "c3")
	pinned := NewIDSet("c2", "c3")

	got := Cols(testCols(), climbed, pinned)

	require.Len(t, got, 3)
	for _, c := range got {
		assert.Equal(t, climbed.Has(c.ID), c.Climbed, c.ID)
		assert.Equal(t, pinned.Has(c.ID), c.Pinned, c.ID)
	}
	assert.Equal(t, "Col du Tourmalet", got[0].Name)
}

func TestCols_EmptySetsYieldAllFalse(t *testing.T) {
	got := Cols(testCols(), nil, NewIDSet())

	require.Len(t, got, 3)
	for _, c := range got {
		assert.False(t, c.Climbed)
		assert.False(t, c.Pinned)
	}
}

func TestCols_DoesNotMutateInput(t *testing.T) {
	cols := testCols()
	before := testCols()

	_ = Cols(cols, NewIDSet("c1"), NewIDSet("c1"))

	assert.Equal(t, before, cols)
}

func TestCols_EmptyInput(t *testing.T) {
	got := Cols(nil, NewIDSet("c1"), nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// ── Users ─────────────────────────────────────────────────────────────────────

func TestUsers_ExcludesViewer(t *testing.T) {
	stats := []models.UserStatistics{
		{UserID: "u1", Pseudo: "alice"},
		{UserID: "u2", Pseudo: "bob"},
	}

	got := Users(stats, nil, "u1")

	require.Len(t, got, 1)
	assert.Equal(t, "u2", got[0].UserID)
	assert.Equal(t, "bob", got[0].Pseudo)
}

func TestUsers_MarksFavorites(t *testing.T) {
	stats := []models.UserStatistics{
		{UserID: "u2", Pseudo: "bob"},
		{UserID: "u3", Pseudo: "carol"},
	}

	got := Users(stats, NewIDSet("u3"), "u1")

	require.Len(t, got, 2)
	assert.False(t, got[0].IsFavorite)
	assert.True(t, got[1].IsFavorite)
}

func TestSearch_CaseInsensitive(t *testing.T) {
	users := []models.UserWithStats{
		{UserStatistics: models.UserStatistics{UserID: "u2", Pseudo: "Bob"}},
		{UserStatistics: models.UserStatistics{UserID: "u3", Pseudo: "carol"}},
	}

	assert.Len(t, Search(users, "  "), 2)

	got := Search(users, "BO")
	require.Len(t, got, 1)
	assert.Equal(t, "u2", got[0].UserID)
}

func TestFavoritesOnly(t *testing.T) {
	users := []models.UserWithStats{
		{UserStatistics: models.UserStatistics{UserID: "u2"}, IsFavorite: true},
		{UserStatistics: models.UserStatistics{UserID: "u3"}},
	}

	got := FavoritesOnly(users)
	require.Len(t, got, 1)
	assert.Equal(t, "u2", got[0].UserID)
}

func TestSortByColsClimbed(t *testing.T) {
	users := []models.UserWithStats{
		{UserStatistics: models.UserStatistics{Pseudo: "zoe", ColsClimbed: 3}},
		{UserStatistics: models.UserStatistics{Pseudo: "bob", ColsClimbed: 7}},
		{UserStatistics: models.UserStatistics{Pseudo: "amy", ColsClimbed: 3}},
	}

	got := SortByColsClimbed(users)

	assert.Equal(t, "bob", got[0].Pseudo)
	assert.Equal(t, "amy", got[1].Pseudo)
	assert.Equal(t, "zoe", got[2].Pseudo)
	assert.Equal(t, "zoe", users[0].Pseudo, "input must stay untouched")
}

func TestClimbedColIDs_OnlyValidated(t *testing.T) {
	set := ClimbedColIDs([]models.Ascension{
		{ColID: "c1", Validated: true},
		{ColID: "c1", Validated: true},
		{ColID: "c2", Validated: false},
		{ColID: "c3", Validated: true},
	})

	assert.Equal(t, []string{"c1", "c3"}, set.IDs())
}
