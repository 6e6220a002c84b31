package crypto

import (
	"fmt"
	"strings"
)

const (
	// AlgorithmBcrypt selects [BcryptHasher].
	AlgorithmBcrypt = "bcrypt"
	// AlgorithmArgon2id selects [Argon2Hasher].
	AlgorithmArgon2id = "argon2id"
)

// HasherConfig selects and tunes the password hasher.
type HasherConfig struct {
	// Algorithm is either "bcrypt" (default when empty) or "argon2id".
	Algorithm string

	// BcryptCost is the bcrypt work factor; out-of-range values fall back to
	// bcrypt.DefaultCost.
	BcryptCost int
}

// NewPasswordHasher builds the hasher named by cfg.Algorithm.
func NewPasswordHasher(cfg HasherConfig) (PasswordHasher, error) {
	switch strings.ToLower(cfg.Algorithm) {
	case "", AlgorithmBcrypt:
		return NewBcryptHasher(cfg.BcryptCost), nil
	case AlgorithmArgon2id:
		return NewArgon2Hasher(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownHasher, cfg.Algorithm)
	}
}
