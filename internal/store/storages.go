package store

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-auth-service/internal/config"
	"github.com/MKhiriev/go-auth-service/internal/logger"
)

// Storage backend names accepted by [NewStorages].
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// Storages groups the repositories used by the service layer. Close
// releases the underlying connection, if any.
type Storages struct {
	UserRepository UserRepository

	closer io.Closer
}

// NewStorages opens the backend selected by cfg.DB.Driver, applies
// migrations for the SQL backends and wires the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Str("driver", cfg.DB.Driver).Msg("creating new storages...")

	var (
		db  *DB
		err error
	)

	switch cfg.DB.Driver {
	case DriverMemory, "":
		return &Storages{UserRepository: NewMemoryUserRepository(log)}, nil
	case DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB.DSN, log)
	case DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB.DSN, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.DB.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("%s connection error: %w", cfg.DB.Driver, err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		closer:         db,
	}, nil
}

// Close releases the database connection of SQL backends.
func (s *Storages) Close() error {
	if s.closer == nil {
		return nil
	}

	return s.closer.Close()
}
