package models

import "time"

// Session binds an opaque server-side token to an authenticated user.
//
// The token is a UUID issued on signup or login and carried by the client
// in a cookie. The session row is the single source of truth for request
// identity: revoked or unknown tokens never resolve to a user. Sessions
// have no expiry timer; revocation on logout is the only termination.
type Session struct {
	// Token is the opaque session identifier presented by the client.
	// It carries no embedded claims; all state lives server-side.
	Token string `json:"-"`

	// UserID is the identity the session is bound to.
	UserID int64 `json:"-"`

	// CreatedAt is the timestamp when the session was issued.
	CreatedAt time.Time `json:"-"`

	// RevokedAt is non-nil once the session has been ended by logout.
	// A revoked session never authenticates a request again.
	RevokedAt *time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}
