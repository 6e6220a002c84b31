// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-auth-service/internal/crypto"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/store"
	"github.com/MKhiriev/go-auth-service/models"
)

// credentialService is the concrete implementation of [CredentialService].
// All fields are read-only after construction, so one instance serves
// concurrent requests.
type credentialService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	tokenIssuer    crypto.TokenIssuer
	validate       *validator.Validate
}

// NewCredentialService wires a [CredentialService] to its collaborators.
func NewCredentialService(
	userRepository store.UserRepository,
	hasher crypto.PasswordHasher,
	tokenIssuer crypto.TokenIssuer,
	log *logger.Logger,
) CredentialService {
	log.Debug().Msg("creating credential service")
	return &credentialService{
		userRepository: userRepository,
		hasher:         hasher,
		tokenIssuer:    tokenIssuer,
		validate:       validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Register creates an account and returns it with a fresh token.
//
// Returns:
//   - ErrInvalidDataProvided if fullName, email or password is empty.
//   - ErrEmailAlreadyInUse if the email is taken, including the case where a
//     concurrent registration wins the store's uniqueness check.
//   - ErrInternal wrapping the cause for any other failure.
func (s *credentialService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	if err := s.validate.StructCtx(ctx, req); err != nil {
		log.Debug().Str("func", "*credentialService.Register").Err(err).Msg("invalid registration data")
		return models.AuthResult{}, ErrInvalidDataProvided
	}

	_, err := s.userRepository.FindUserByEmail(ctx, req.Email)
	switch {
	case err == nil:
		log.Info().Str("func", "*credentialService.Register").Msg("email already in use")
		return models.AuthResult{}, ErrEmailAlreadyInUse
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("func", "*credentialService.Register").Msg("email lookup failed")
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	digest, err := s.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Str("func", "*credentialService.Register").Msg("password hashing failed")
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	created, err := s.userRepository.CreateUser(ctx, models.User{
		FullName:        req.FullName,
		Email:           req.Email,
		PasswordHash:    digest,
		ProfileImageURL: req.ProfileImageURL,
	})
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		log.Info().Str("func", "*credentialService.Register").Msg("email taken by a concurrent registration")
		return models.AuthResult{}, ErrEmailAlreadyInUse
	}
	if err != nil {
		log.Err(err).Str("func", "*credentialService.Register").Msg("user creation ended with error")
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	log.Info().Str("func", "*credentialService.Register").Str("user_id", created.ID).Msg("user registered")
	return s.authResult(ctx, created)
}

// Authenticate checks email and password and returns the account with a
// fresh token. An unknown email and a wrong password both yield
// ErrInvalidCredentials.
func (s *credentialService) Authenticate(ctx context.Context, req models.LoginRequest) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	if err := s.validate.StructCtx(ctx, req); err != nil {
		log.Debug().Str("func", "*credentialService.Authenticate").Err(err).Msg("invalid login data")
		return models.AuthResult{}, ErrInvalidDataProvided
	}

	user, err := s.userRepository.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Str("func", "*credentialService.Authenticate").Msg("unknown email")
		return models.AuthResult{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*credentialService.Authenticate").Msg("user search by email failed")
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	ok, err := s.hasher.Verify(req.Password, user.PasswordHash)
	if err != nil {
		log.Err(err).Str("func", "*credentialService.Authenticate").Str("user_id", user.ID).Msg("stored digest is unusable")
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	if !ok {
		log.Info().Str("func", "*credentialService.Authenticate").Str("user_id", user.ID).Msg("wrong password")
		return models.AuthResult{}, ErrInvalidCredentials
	}

	return s.authResult(ctx, user)
}

// FetchProfile returns the public projection of the account with userID.
// The caller is expected to have authenticated userID already.
func (s *credentialService) FetchProfile(ctx context.Context, userID string) (models.PublicProfile, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return models.PublicProfile{}, ErrInvalidDataProvided
	}

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Str("func", "*credentialService.FetchProfile").Str("user_id", userID).Msg("user not found")
		return models.PublicProfile{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*credentialService.FetchProfile").Str("user_id", userID).Msg("user search by id failed")
		return models.PublicProfile{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return user.Public(), nil
}

// authResult mints a token for the stored record's ID.
func (s *credentialService) authResult(ctx context.Context, user models.User) (models.AuthResult, error) {
	token, err := s.tokenIssuer.Issue(user.ID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*credentialService.authResult").Msg("token issuing failed")
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return models.AuthResult{
		ID:    user.ID,
		User:  user.Public(),
		Token: token.SignedString,
	}, nil
}
