// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrUnknownHasher is returned by NewPasswordHasher for an algorithm
	// name it does not support.
	ErrUnknownHasher = errors.New("unknown password hasher")

	// ErrMalformedDigest is returned by Verify when the stored digest cannot
	// be decoded.
	ErrMalformedDigest = errors.New("malformed password digest")

	// ErrInvalidIssuerConfig is returned by NewJWTIssuer when the sign key or
	// issuer is empty or the TTL is not positive.
	ErrInvalidIssuerConfig = errors.New("invalid token issuer configuration")

	// ErrTokenIsExpired is returned by Parse for a correctly signed token
	// whose exp claim is in the past.
	ErrTokenIsExpired = errors.New("token is expired")

	// ErrTokenIsInvalid is returned by Parse for every other verification
	// failure (signature, issuer, malformed, missing claims).
	ErrTokenIsInvalid = errors.New("token is invalid")
)
