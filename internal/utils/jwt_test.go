package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer = "test-issuer"
	testKey    = "secret-key"
	testUserID = "0190d4c2-8f5e-7a9b-b1c2-d3e4f5a6b7c8"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	now := time.Now()

	token, err := GenerateJWTToken(testIssuer, testUserID, time.Hour, testKey, now)
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	require.NotNil(t, token.Token)
	assert.Equal(t, testUserID, token.UserID)

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	require.True(t, ok)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.Equal(t, testUserID, claims.Subject)
	assert.Equal(t, now.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
	assert.Equal(t, now.Unix(), claims.IssuedAt.Unix())
}

func TestGenerateJWTToken_DiffersAcrossInstants(t *testing.T) {
	now := time.Now()

	first, err := GenerateJWTToken(testIssuer, testUserID, time.Hour, testKey, now)
	require.NoError(t, err)
	second, err := GenerateJWTToken(testIssuer, testUserID, time.Hour, testKey, now.Add(2*time.Second))
	require.NoError(t, err)

	assert.NotEqual(t, first.SignedString, second.SignedString)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		userID   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", testUserID, time.Hour, testKey},
		{"empty user id", testIssuer, "", time.Hour, testKey},
		{"zero duration", testIssuer, testUserID, 0, testKey},
		{"empty key", testIssuer, testUserID, time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.userID, tt.duration, tt.key, time.Now())
			assert.ErrorIs(t, err, ErrInvalidJWTParams)
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	generated, err := GenerateJWTToken(testIssuer, testUserID, 5*time.Minute, testKey, time.Now())
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(generated.SignedString, testKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, testUserID, parsed.UserID)
	assert.Equal(t, generated.SignedString, parsed.SignedString)
}

func TestValidateAndParseJWTToken_Rejections(t *testing.T) {
	valid, err := GenerateJWTToken(testIssuer, testUserID, time.Hour, testKey, time.Now())
	require.NoError(t, err)
	expired, err := GenerateJWTToken(testIssuer, testUserID, time.Hour, testKey, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	noneSigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   testUserID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:  testIssuer,
		Subject: testUserID,
	}).SignedString([]byte(testKey))
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
		target error
	}{
		{name: "wrong key", token: valid.SignedString, key: "wrong-key", issuer: testIssuer, target: jwt.ErrTokenSignatureInvalid},
		{name: "wrong issuer", token: valid.SignedString, key: testKey, issuer: "fake-issuer", target: jwt.ErrTokenInvalidIssuer},
		{name: "expired", token: expired.SignedString, key: testKey, issuer: testIssuer, target: jwt.ErrTokenExpired},
		{name: "alg none", token: noneSigned, key: testKey, issuer: testIssuer, target: jwt.ErrTokenSignatureInvalid},
		{name: "missing exp", token: noExpiry, key: testKey, issuer: testIssuer, target: jwt.ErrTokenRequiredClaimMissing},
		{name: "malformed", token: "not.a.token", key: testKey, issuer: testIssuer, target: jwt.ErrTokenMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "  bearer abc  ", want: "abc"},
		{header: "Bearer", wantErr: true},
		{header: "Basic dXNlcjpwYXNz", wantErr: true},
		{header: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseUserIDFromJWT(t *testing.T) {
	generated, err := GenerateJWTToken(testIssuer, testUserID, time.Hour, testKey, time.Now())
	require.NoError(t, err)

	id, err := ParseUserIDFromJWT(generated.SignedString)
	require.NoError(t, err)
	assert.Equal(t, testUserID, id)

	_, err = ParseUserIDFromJWT("garbage")
	assert.Error(t, err)
}
