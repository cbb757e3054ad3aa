// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for the authentication
// commands.
//
// A Validator checks an arbitrary value (usually a request model) and can be
// restricted to a subset of named fields. Validation runs before any store
// access, so services receiving validated input never see empty names or
// passwords.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
