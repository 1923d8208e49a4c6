// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for domain records before any
// side effect takes place.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - Violations: the aggregated field → message set produced by a failed
//     validation. It implements error so it can travel through the usual
//     error paths and be recovered with [errors.As].
//
// Validation is exhaustive: every violated field is reported in one pass.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	//
	// It returns nil when the value is valid, [Violations] when one or more
	// fields are invalid, or another error when the value cannot be validated
	// at all (see [ErrUnsupportedType], [ErrUnknownField]).
	Validate(context.Context, any, ...string) error
}
