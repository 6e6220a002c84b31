package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewPasswordHasher(t *testing.T) {
	tests := []struct {
		name      string
		cfg       HasherConfig
		wantType  PasswordHasher
		wantError error
	}{
		{name: "default is bcrypt", cfg: HasherConfig{}, wantType: &BcryptHasher{}},
		{name: "bcrypt", cfg: HasherConfig{Algorithm: "bcrypt", BcryptCost: bcrypt.MinCost}, wantType: &BcryptHasher{}},
		{name: "argon2id case-insensitive", cfg: HasherConfig{Algorithm: "Argon2ID"}, wantType: &Argon2Hasher{}},
		{name: "unknown", cfg: HasherConfig{Algorithm: "md5"}, wantError: ErrUnknownHasher},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewPasswordHasher(tt.cfg)
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				assert.Nil(t, h)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, h)
		})
	}
}

func TestNewBcryptHasher_CostBounds(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(bcrypt.MaxCost+1).cost)
	assert.Equal(t, 12, NewBcryptHasher(12).cost)
}

func TestHashers_RoundTrip(t *testing.T) {
	hashers := map[string]PasswordHasher{
		"bcrypt":   NewBcryptHasher(bcrypt.MinCost),
		"argon2id": NewArgon2Hasher(),
	}

	for name, h := range hashers {
		t.Run(name, func(t *testing.T) {
			const password = "secret1"

			digest, err := h.Hash(password)
			require.NoError(t, err)
			assert.NotEqual(t, password, digest)
			assert.NotContains(t, digest, password)

			again, err := h.Hash(password)
			require.NoError(t, err)
			assert.NotEqual(t, digest, again, "digests must be salted")

			ok, err := h.Verify(password, digest)
			require.NoError(t, err)
			assert.True(t, ok)

			ok, err = h.Verify("wrong", digest)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestArgon2Hasher_Format(t *testing.T) {
	digest, err := NewArgon2Hasher().Hash("secret1")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(digest, "$argon2id$v=19$m=65536,t=1,p=4$"))
	assert.Len(t, strings.Split(digest, "$"), 6)
}

func TestHashers_MalformedDigest(t *testing.T) {
	tests := []struct {
		name   string
		hasher PasswordHasher
		digest string
	}{
		{name: "bcrypt garbage", hasher: NewBcryptHasher(bcrypt.MinCost), digest: "not-a-hash"},
		{name: "argon2 wrong prefix", hasher: NewArgon2Hasher(), digest: "$argon2i$v=19$m=1,t=1,p=1$c2FsdA$a2V5"},
		{name: "argon2 wrong version", hasher: NewArgon2Hasher(), digest: "$argon2id$v=16$m=1,t=1,p=1$c2FsdA$a2V5"},
		{name: "argon2 bad params", hasher: NewArgon2Hasher(), digest: "$argon2id$v=19$m=x,t=1,p=1$c2FsdA$a2V5"},
		{name: "argon2 bad salt", hasher: NewArgon2Hasher(), digest: "$argon2id$v=19$m=1,t=1,p=1$!!$a2V5"},
		{name: "argon2 short", hasher: NewArgon2Hasher(), digest: "$argon2id$v=19"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := tt.hasher.Verify("secret1", tt.digest)
			assert.False(t, ok)
			assert.ErrorIs(t, err, ErrMalformedDigest)
		})
	}
}
