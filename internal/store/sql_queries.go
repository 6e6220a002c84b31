package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-auth-service/models"
)

const usersTable = "users"

var userColumns = []string{
	"id",
	"full_name",
	"email",
	"password_hash",
	"profile_image_url",
	"created_at",
}

func buildInsertUserQuery(builder sq.StatementBuilderType, user models.User) (string, []any, error) {
	return builder.
		Insert(usersTable).
		Columns(userColumns...).
		Values(user.ID, user.FullName, user.Email, user.PasswordHash, user.ProfileImageURL, user.CreatedAt).
		ToSql()
}

func buildSelectUserByEmailQuery(builder sq.StatementBuilderType, email string) (string, []any, error) {
	return builder.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"email": email}).
		Limit(1).
		ToSql()
}

func buildSelectUserByIDQuery(builder sq.StatementBuilderType, id string) (string, []any, error) {
	return builder.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
}
