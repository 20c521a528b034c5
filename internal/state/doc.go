// Package state holds the client-side view state of the map and explorer
// screens as plain values updated only through reducers.
//
// A reducer takes the current state and an action and returns the next
// state plus the commands the caller must run (fetches, writes). Commands
// that complete feed their result back as another action. Comparison
// fetches carry a generation number; a result whose generation no longer
// matches the state is dropped.
package state

// Command is a side effect requested by a reducer.
type Command interface {
	command()
}

// FetchComparison asks for the climbed cols of UserID.
type FetchComparison struct {
	UserID     string
	Generation uint64
}

// PersistPin asks to pin or unpin ColID for the current user.
type PersistPin struct {
	ColID  string
	Pinned bool
}

// PersistFavorite asks to follow or unfollow UserID.
type PersistFavorite struct {
	UserID   string
	Favorite bool
}

// Refresh asks for a full reload of the screen's data.
type Refresh struct{}

func (FetchComparison) command() {}
func (PersistPin) command()      {}
func (PersistFavorite) command() {}
func (Refresh) command()         {}
