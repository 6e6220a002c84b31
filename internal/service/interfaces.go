// Package service implements the credential operations of the auth service
// on top of the record store and the crypto primitives.
package service

import (
	"context"

	"github.com/MKhiriev/go-auth-service/models"
)

// CredentialService registers accounts, authenticates them and returns
// their public profiles. Errors can be classified with [KindOf].
type CredentialService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error)
	Authenticate(ctx context.Context, req models.LoginRequest) (models.AuthResult, error)
	FetchProfile(ctx context.Context, userID string) (models.PublicProfile, error)
}

// AppInfoService exposes build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
