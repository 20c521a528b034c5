// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-cols/internal/adapter"
	"github.com/MKhiriev/go-cols/internal/service"
)

var (
	ErrUserQuit = errors.New("quitté par l'utilisateur")

	errNothingToCopy = errors.New("Aucun col sélectionné")
)

// humanize returns the text shown for err. Server rejections are shown as
// received; a rejected token gets the session message.
func humanize(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, service.ErrSessionExpired) {
		return service.ErrSessionExpired.Error()
	}
	return adapter.Message(err)
}

// displayError keeps err for errors.Is while printing only humanize(err).
type displayError struct {
	err error
}

func (d displayError) Error() string {
	return humanize(d.err)
}

func (d displayError) Unwrap() error {
	return d.err
}

// forDisplay wraps err so its text is the user-facing message. nil stays nil.
func forDisplay(err error) error {
	if err == nil {
		return nil
	}
	return displayError{err: err}
}
