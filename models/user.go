package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is assigned by the database at creation time and is immutable.
	UserID int64 `json:"id"`

	// Username is the unique, case-sensitive login identifier.
	// Immutable after creation.
	Username string `json:"username"`

	// PasswordDigest stores the bcrypt digest of the user's password.
	// This value MUST be a hash output, never plaintext, and is never
	// serialized to JSON.
	PasswordDigest string `json:"-"`

	// Bio is an optional free-form profile field.
	Bio string `json:"bio"`

	// ImageURL is an optional link to the user's avatar image.
	ImageURL string `json:"image_url"`

	// CreatedAt is the timestamp when the user account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
