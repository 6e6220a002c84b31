package models

import "time"

// User represents an account record used for authentication.
// It contains identity attributes and the stored credential.
// PasswordHash must never leave the server: use [User.Public] for anything
// that is returned to a caller.
type User struct {
	// ID is the opaque identifier assigned by the store on creation.
	ID string `json:"id"`

	// FullName is the display name supplied at registration.
	FullName string `json:"fullName"`

	// Email is unique across all users and is the lookup key for login.
	Email string `json:"email"`

	// PasswordHash is the output of the configured one-way hasher,
	// never the plaintext the caller supplied.
	PasswordHash string `json:"-"`

	// ProfileImageURL is an optional reference to the user's avatar.
	ProfileImageURL string `json:"profileImageUrl,omitempty"`

	// CreatedAt is the timestamp when the record was persisted.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns the projection of u that is safe to hand out to callers.
func (u User) Public() PublicProfile {
	return PublicProfile{
		ID:              u.ID,
		FullName:        u.FullName,
		Email:           u.Email,
		ProfileImageURL: u.ProfileImageURL,
		CreatedAt:       u.CreatedAt,
	}
}

// PublicProfile is a [User] with the password hash removed.
// It deliberately has no credential field at all.
type PublicProfile struct {
	ID              string    `json:"id"`
	FullName        string    `json:"fullName"`
	Email           string    `json:"email"`
	ProfileImageURL string    `json:"profileImageUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}
