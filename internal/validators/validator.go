package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-cols/models"
	"github.com/go-playground/validator/v10"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 6

// Field names accepted by Validate.
const (
	FieldPassword  = "password"
	FieldConfirm   = "confirm"
	FieldEmail     = "email"
	FieldPseudo    = "pseudo"
	FieldNames     = "names"
	FieldColID     = "col_id"
	FieldDate      = "date"
	FieldMetrics   = "metrics"
	FieldNote      = "note"
	FieldColValues = "col_values"
	FieldColList   = "cols"
)

// maxUTCOffset is the furthest ahead of UTC a local calendar day can be.
// Ascension dates are calendar days stored at midnight UTC.
const maxUTCOffset = 14 * time.Hour

// DomainValidator validates registration, login, ascensions, pin notes and
// imported cols. Struct tags are checked with go-playground/validator;
// rules that need a specific user-facing message are checked by hand first.
type DomainValidator struct {
	tags *validator.Validate
	now  func() time.Time
}

// NewDomainValidator returns the validator used by both binaries.
func NewDomainValidator() *DomainValidator {
	return &DomainValidator{
		tags: validator.New(validator.WithRequiredStructEnabled()),
		now:  time.Now,
	}
}

// Validate checks obj, a value or pointer of a known request or domain type.
// fields restricts the check to the named fields; none means all of them.
// Unknown types answer ErrUnsupportedType.
func (v *DomainValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLogin(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(ctx, *value, fields...)

	case models.Ascension:
		return v.validateAscension(ctx, value, fields...)
	case *models.Ascension:
		return v.validateAscension(ctx, *value, fields...)

	case models.PinNote:
		return v.validatePinNote(ctx, value, fields...)
	case *models.PinNote:
		return v.validatePinNote(ctx, *value, fields...)

	case models.Col:
		return v.validateCol(ctx, value, fields...)
	case *models.Col:
		return v.validateCol(ctx, *value, fields...)

	case models.ColCatalog:
		return v.validateCatalog(ctx, value, fields...)
	case *models.ColCatalog:
		return v.validateCatalog(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateRegister checks, in order: confirmation, length, email, pseudo, names.
// Pseudo uniqueness is left to the database.
func (v *DomainValidator) validateRegister(ctx context.Context, req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldConfirm, FieldPassword, FieldEmail, FieldPseudo, FieldNames}
	}

	for _, f := range fields {
		switch f {
		case FieldConfirm:
			if req.Password != req.Confirm {
				return ErrPasswordMismatch
			}
		case FieldPassword:
			if utf8.RuneCountInString(req.Password) < MinPasswordLength {
				return ErrPasswordTooShort
			}
		case FieldEmail:
			if err := v.tags.VarCtx(ctx, strings.TrimSpace(req.Email), "required,email"); err != nil {
				return ErrInvalidEmail
			}
		case FieldPseudo:
			if err := v.tags.StructPartialCtx(ctx, req, "Pseudo"); err != nil {
				return ErrInvalidPseudo
			}
		case FieldNames:
			if err := v.tags.StructPartialCtx(ctx, req, "FirstName", "LastName"); err != nil {
				return ErrInvalidName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateLogin only checks the shape of the email; the password is checked
// against the stored hash.
func (v *DomainValidator) validateLogin(ctx context.Context, req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := v.tags.VarCtx(ctx, strings.TrimSpace(req.Email), "required,email"); err != nil {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateAscension rejects future dates and non-positive metrics.
func (v *DomainValidator) validateAscension(ctx context.Context, a models.Ascension, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldColID, FieldDate, FieldMetrics}
	}

	for _, f := range fields {
		switch f {
		case FieldColID:
			if err := v.tags.VarCtx(ctx, a.ColID, "required,uuid"); err != nil {
				return ErrInvalidColID
			}
		case FieldDate:
			if a.Date.IsZero() || a.Date.After(v.now().Add(maxUTCOffset)) {
				return ErrInvalidDate
			}
		case FieldMetrics:
			if err := v.tags.StructPartialCtx(ctx, a, "DurationSeconds", "AvgSpeedKmh", "AvgHeartRate", "AvgPowerWatts"); err != nil {
				return ErrInvalidMetric
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DomainValidator) validatePinNote(ctx context.Context, n models.PinNote, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNote}
	}

	for _, f := range fields {
		switch f {
		case FieldNote:
			if err := v.tags.StructCtx(ctx, n); err != nil {
				return ErrNoteTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateCol wraps the failing tag error with the col name.
func (v *DomainValidator) validateCol(ctx context.Context, c models.Col, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldColValues}
	}

	for _, f := range fields {
		switch f {
		case FieldColValues:
			if err := v.tags.StructCtx(ctx, c); err != nil {
				return fmt.Errorf("%w %q: %w", ErrInvalidCol, c.Name, err)
			}
			if c.Difficulty != nil && !c.Difficulty.Valid() {
				return fmt.Errorf("%w %q: %s", ErrInvalidDifficulty, c.Name, *c.Difficulty)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateCatalog rejects an empty catalog and reports every invalid col at
// once.
func (v *DomainValidator) validateCatalog(ctx context.Context, catalog models.ColCatalog, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldColList}
	}

	for _, f := range fields {
		switch f {
		case FieldColList:
			if len(catalog.Cols) == 0 {
				return ErrEmptyCatalog
			}
			var errs []error
			for i, c := range catalog.Cols {
				if err := v.validateCol(ctx, c); err != nil {
					errs = append(errs, fmt.Errorf("col at index %d: %w", i, err))
				}
			}
			if err := errors.Join(errs...); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
