package crypto

import (
	"errors"
	"time"

	"github.com/MKhiriev/go-auth-service/internal/utils"
	"github.com/MKhiriev/go-auth-service/models"
	"github.com/golang-jwt/jwt/v5"
)

// JWTConfig carries everything the issuer needs to sign and verify tokens.
type JWTConfig struct {
	// SignKey is the HMAC-SHA256 secret.
	SignKey string
	// Issuer is the iss claim written into and required from every token.
	Issuer string
	// TTL is the offset between iat and exp.
	TTL time.Duration
}

// JWTIssuer implements [TokenIssuer] with HS256 JWTs.
//
// All fields are read-only after construction, so a single instance is
// safe for concurrent use.
type JWTIssuer struct {
	signKey string
	issuer  string
	ttl     time.Duration
	now     func() time.Time
}

// NewJWTIssuer validates cfg and returns an issuer. Rejecting an incomplete
// configuration here means Issue cannot fail on configuration later.
func NewJWTIssuer(cfg JWTConfig) (*JWTIssuer, error) {
	if cfg.SignKey == "" || cfg.Issuer == "" || cfg.TTL <= 0 {
		return nil, ErrInvalidIssuerConfig
	}

	return &JWTIssuer{
		signKey: cfg.SignKey,
		issuer:  cfg.Issuer,
		ttl:     cfg.TTL,
		now:     time.Now,
	}, nil
}

// Issue implements [TokenIssuer].
func (j *JWTIssuer) Issue(userID string) (models.Token, error) {
	return utils.GenerateJWTToken(j.issuer, userID, j.ttl, j.signKey, j.now())
}

// Parse implements [TokenIssuer]. Low-level JWT errors are normalised to
// ErrTokenIsExpired or ErrTokenIsInvalid.
func (j *JWTIssuer) Parse(tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, j.signKey, j.issuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsInvalid
	}

	return token, nil
}
