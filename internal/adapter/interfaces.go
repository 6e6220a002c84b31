// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the auth service API.
//
// [CredentialAdapter] hides the transport from callers such as the CLI. The
// package ships an HTTP/REST implementation ([NewHTTPCredentialAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError, so callers can use [errors.Is] (e.g. [ErrUnauthorized] for
// 401) while the server's message stays in the error text.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-auth-service/models"
)

// CredentialAdapter talks to the auth service on behalf of one user.
// Implementations keep the bearer token of the last successful Register or
// Login and attach it to authenticated requests.
type CredentialAdapter interface {
	// SetToken stores the bearer token used by GetUser.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none is set.
	Token() string

	// Register creates an account. On success the returned token is stored
	// via SetToken.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error)

	// Login authenticates with email and password. On success the returned
	// token is stored via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error)

	// GetUser returns the profile of the token's owner.
	GetUser(ctx context.Context) (models.PublicProfile, error)

	// ServerVersion returns the version string reported by the server.
	ServerVersion(ctx context.Context) (string, error)
}
