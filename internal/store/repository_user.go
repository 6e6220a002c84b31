package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/utils"
	"github.com/MKhiriev/go-auth-service/models"
)

// userRepository is the SQL implementation of [UserRepository]. The same
// code serves PostgreSQL and SQLite; the dialect differences live in [DB].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	db            *DB
	uuidGenerator *utils.UUIDGenerator
	now           func() time.Time
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, log *logger.Logger) UserRepository {
	log.Debug().Msg("creating user repository")
	return &userRepository{
		db:            db,
		uuidGenerator: utils.NewUUIDGenerator(),
		now:           time.Now,
	}
}

// CreateUser assigns a UUID v7 and a creation timestamp and inserts the
// record with a single statement.
//
// Error handling:
//   - UNIQUE violation on email → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.ID = r.uuidGenerator.Generate()
	user.CreatedAt = r.now().UTC().Truncate(time.Microsecond)

	query, args, err := buildInsertUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		classification := r.db.errorClassificator.Classify(err)
		if classification == UniqueViolation {
			log.Debug().Str("func", "*userRepository.CreateUser").Msg("email already exists")
			return models.User{}, ErrEmailAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").
			Stringer("classification", classification).
			Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// FindUserByEmail looks a record up by exact email.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	query, args, err := buildSelectUserByEmailQuery(r.db.builder, email)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "*userRepository.FindUserByEmail", query, args)
}

// FindUserByID looks a record up by its ID.
func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	query, args, err := buildSelectUserByIDQuery(r.db.builder, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.FindUserByID").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "*userRepository.FindUserByID", query, args)
}

func (r *userRepository) findOne(ctx context.Context, caller, query string, args []any) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.FullName,
		&user.Email,
		&user.PasswordHash,
		&user.ProfileImageURL,
		&user.CreatedAt,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	case err != nil:
		log.Err(err).Str("func", caller).Msg("error querying user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}
