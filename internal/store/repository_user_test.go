package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/utils"
	"github.com/MKhiriev/go-auth-service/models"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	repo := &userRepository{
		db:            newPostgresDB(conn, logger.Nop()),
		uuidGenerator: utils.NewUUIDGenerator(),
		now:           func() time.Time { return fixedNow },
	}
	return repo, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows(userColumns)
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	user := models.User{
		FullName:     "Alice",
		Email:        "a@x.io",
		PasswordHash: "digest",
	}

	mock.ExpectExec(`INSERT INTO users \(id,full_name,email,password_hash,profile_image_url,created_at\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6\)`).
		WithArgs(sqlmock.AnyArg(), "Alice", "a@x.io", "digest", "", fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, fixedNow, created.CreatedAt)
	assert.Equal(t, "a@x.io", created.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_IgnoresClientSuppliedID(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("INSERT INTO users").
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreateUser(context.Background(), models.User{ID: "client-id", Email: "a@x.io"})
	require.NoError(t, err)
	assert.NotEqual(t, "client-id", created.ID)
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "a@x.io"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestCreateUser_OtherError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.ConnectionFailure))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "a@x.io"})
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestFindUserByEmail_Found(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`SELECT id, full_name, email, password_hash, profile_image_url, created_at FROM users WHERE email = \$1 LIMIT 1`).
		WithArgs("a@x.io").
		WillReturnRows(userRows().AddRow("id-1", "Alice", "a@x.io", "digest", "", fixedNow))

	user, err := repo.FindUserByEmail(context.Background(), "a@x.io")
	require.NoError(t, err)
	assert.Equal(t, models.User{
		ID:           "id-1",
		FullName:     "Alice",
		Email:        "a@x.io",
		PasswordHash: "digest",
		CreatedAt:    fixedNow,
	}, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs("nobody@x.io").
		WillReturnRows(userRows())

	_, err := repo.FindUserByEmail(context.Background(), "nobody@x.io")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestFindUserByID(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		want    models.User
		wantErr error
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM users WHERE id").
					WithArgs("id-1").
					WillReturnRows(userRows().AddRow("id-1", "Alice", "a@x.io", "digest", "https://img/a.png", fixedNow))
			},
			want: models.User{ID: "id-1", FullName: "Alice", Email: "a@x.io", PasswordHash: "digest", ProfileImageURL: "https://img/a.png", CreatedAt: fixedNow},
		},
		{
			name: "missing",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM users WHERE id").
					WithArgs("id-1").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: ErrNoUserWasFound,
		},
		{
			name: "driver error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM users WHERE id").
					WithArgs("id-1").
					WillReturnError(errors.New("boom"))
			},
			wantErr: ErrScanningRow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)
			tt.setup(mock)

			user, err := repo.FindUserByID(context.Background(), "id-1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, user)
		})
	}
}
