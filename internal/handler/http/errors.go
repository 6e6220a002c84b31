// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Errors raised by the auth middleware before a token reaches the issuer.
// Both map to 401.
var (
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is missing")
	ErrInvalidAuthorizationHeader = errors.New(`authorization header must be "Bearer <token>"`)
)
