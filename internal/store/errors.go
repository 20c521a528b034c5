package store

import "errors"

// Domain errors returned by repositories. Match them with [errors.Is].
var (
	// ErrPseudoAlreadyExists is returned when the profiles_pseudo_key
	// constraint rejects an insert. It is the authoritative answer to
	// "is this pseudo taken"; its text is shown to the user as is.
	ErrPseudoAlreadyExists = errors.New("Ce pseudo est déjà utilisé")

	// ErrEmailAlreadyExists is returned when profiles_email_key rejects an insert.
	ErrEmailAlreadyExists = errors.New("Un compte existe déjà avec cet email")

	ErrProfileNotFound   = errors.New("profile not found")
	ErrColNotFound       = errors.New("col not found")
	ErrAscensionNotFound = errors.New("ascension not found")
	ErrPinNotFound       = errors.New("pin not found")
	ErrFavoriteNotFound  = errors.New("favorite not found")
	ErrAlreadyPinned     = errors.New("col already pinned")
	ErrAlreadyFavorite   = errors.New("user already in favorites")
	ErrSelfFavorite      = errors.New("cannot add yourself to favorites")
	ErrSessionNotFound   = errors.New("local session not found")

	// ErrTemporarilyUnavailable wraps driver errors classified as retryable.
	ErrTemporarilyUnavailable = errors.New("database temporarily unavailable")
)

// Low-level failures wrapped around driver errors.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to execute statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
)
