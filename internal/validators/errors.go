package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrPasswordMismatch = errors.New("Les mots de passe ne correspondent pas")
	ErrPasswordTooShort = errors.New("Le mot de passe doit contenir au moins 6 caractères")
	ErrInvalidEmail     = errors.New("Adresse email invalide")
	ErrInvalidPseudo    = errors.New("Le pseudo doit contenir entre 2 et 32 caractères")
	ErrInvalidName      = errors.New("Nom ou prénom trop long")
	ErrEmptyPassword    = errors.New("Mot de passe requis")

	ErrInvalidColID      = errors.New("invalid col id")
	ErrInvalidDate       = errors.New("invalid ascension date")
	ErrInvalidMetric     = errors.New("performance metrics must be positive")
	ErrNoteTooLong       = errors.New("note is too long")
	ErrInvalidCol        = errors.New("invalid col")
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	ErrEmptyCatalog      = errors.New("catalog contains no cols")
)
