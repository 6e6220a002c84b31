package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/migrations"
)

// DB wraps a database/sql handle together with the dialect-specific pieces
// the repositories need: the query builder and the error classifier.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// ErrorClassificator maps driver-specific errors onto [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// ErrorClassification is the result type returned by [ErrorClassificator.Classify].
type ErrorClassification int

const (
	// Unclassified is returned for nil errors and for codes that carry no
	// special meaning for the repositories.
	Unclassified ErrorClassification = iota

	// UniqueViolation means an INSERT collided with a UNIQUE constraint.
	UniqueViolation

	// Transient means the failure is caused by the connection or by lock
	// contention and the statement itself is fine.
	Transient
)

func (c ErrorClassification) String() string {
	switch c {
	case UniqueViolation:
		return "unique_violation"
	case Transient:
		return "transient"
	default:
		return "unclassified"
	}
}
