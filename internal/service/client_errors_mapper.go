// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cols/internal/adapter"
	"github.com/MKhiriev/go-cols/internal/store"
	"github.com/MKhiriev/go-cols/internal/validators"
)

// mapAdapterError puts the business sentinel for a transport error in front
// of it. The adapter error stays in the chain, so adapter.Message still
// returns the server's own text.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *adapter.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	if kind := businessError(apiErr); kind != nil {
		return fmt.Errorf("%w: %w", kind, err)
	}
	return err
}

func businessError(apiErr *adapter.APIError) error {
	msg := apiErr.Message

	switch {
	case errors.Is(apiErr, adapter.ErrBadRequest):
		for _, known := range []error{
			validators.ErrPasswordMismatch,
			validators.ErrPasswordTooShort,
			validators.ErrInvalidEmail,
			validators.ErrInvalidPseudo,
			validators.ErrInvalidName,
			validators.ErrEmptyPassword,
			store.ErrSelfFavorite,
		} {
			if msg == known.Error() {
				return known
			}
		}
		return ErrInvalidDataProvided

	case errors.Is(apiErr, adapter.ErrUnauthorized):
		if msg == ErrWrongPassword.Error() {
			return ErrWrongPassword
		}
		return ErrSessionExpired

	case errors.Is(apiErr, adapter.ErrConflict):
		switch msg {
		case store.ErrPseudoAlreadyExists.Error():
			return store.ErrPseudoAlreadyExists
		case store.ErrEmailAlreadyExists.Error():
			return store.ErrEmailAlreadyExists
		case store.ErrAlreadyPinned.Error():
			return store.ErrAlreadyPinned
		case store.ErrAlreadyFavorite.Error():
			return store.ErrAlreadyFavorite
		}
		return ErrConflict

	case errors.Is(apiErr, adapter.ErrNotFound):
		return ErrNotFound
	}

	return nil
}
