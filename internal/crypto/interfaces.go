// Package crypto holds the credential primitives of the auth service: the
// one-way password hashers and the bearer-token issuer.
package crypto

import "github.com/MKhiriev/go-auth-service/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher turns a plaintext password into a self-describing digest
// and checks plaintexts against such digests.
type PasswordHasher interface {
	// Hash returns a salted one-way digest of plaintext.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches digest. A mismatch is
	// (false, nil); an error means the digest itself could not be used.
	Verify(plaintext, digest string) (bool, error)
}

// TokenIssuer mints and verifies signed, time-bounded session tokens.
type TokenIssuer interface {
	// Issue returns a freshly signed token whose subject is userID.
	Issue(userID string) (models.Token, error)

	// Parse verifies tokenString and returns its claims. It returns
	// ErrTokenIsExpired or ErrTokenIsInvalid on failure.
	Parse(tokenString string) (models.Token, error)
}
