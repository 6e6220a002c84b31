package service

import (
	"fmt"

	"github.com/MKhiriev/go-auth-service/internal/config"
	"github.com/MKhiriev/go-auth-service/internal/crypto"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/store"
)

// Services groups the services exposed to the transport layer.
type Services struct {
	CredentialService CredentialService
	AppInfoService    AppInfoService

	// TokenIssuer verifies bearer tokens for the transport's auth middleware.
	TokenIssuer crypto.TokenIssuer
}

// NewServices builds the password hasher and token issuer from cfg and
// wires every service. The token issuer is validated here, so a bad
// signing configuration fails startup instead of a request.
func NewServices(storages *store.Storages, cfg config.App, version string, log *logger.Logger) (*Services, error) {
	hasher, err := crypto.NewPasswordHasher(crypto.HasherConfig{
		Algorithm:  cfg.PasswordHasher,
		BcryptCost: cfg.BcryptCost,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	issuer, err := crypto.NewJWTIssuer(crypto.JWTConfig{
		SignKey: cfg.TokenSignKey,
		Issuer:  cfg.TokenIssuer,
		TTL:     cfg.TokenDuration,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating token issuer: %w", err)
	}

	appInfoService, err := NewAppInfoService(version, log)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		CredentialService: NewCredentialService(storages.UserRepository, hasher, issuer, log),
		AppInfoService:    appInfoService,
		TokenIssuer:       issuer,
	}, nil
}
