// Package store persists user records. It offers PostgreSQL and SQLite
// backends on top of database/sql and an in-memory backend for local runs
// and tests.
package store

import (
	"context"

	"github.com/MKhiriev/go-auth-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the record store of the credential service.
type UserRepository interface {
	// CreateUser assigns ID and CreatedAt, persists the record and returns
	// it. It returns ErrEmailAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the record whose email equals email exactly,
	// or ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the record with the given ID, or ErrNoUserWasFound.
	FindUserByID(ctx context.Context, id string) (models.User, error)
}
