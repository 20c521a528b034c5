// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches storage.
//
// The same validators run in the terminal client, before any request is
// sent, and in the API server, before any row is written. Passing a list
// of field names restricts validation to those fields.
package validators

import "context"

// Validator validates a value, optionally restricted to named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
