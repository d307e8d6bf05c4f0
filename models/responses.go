package models

// MessageResponse is the generic response body used by endpoints that
// report an outcome without returning a resource ({"message": "..."}).
type MessageResponse struct {
	// Message is a short human-readable description of the outcome.
	// Internal error detail is never placed here.
	Message string `json:"message"`
}

// ProfileResponse is the response body of the check_session endpoint.
// It exposes only non-sensitive profile fields of the session's user.
type ProfileResponse struct {
	// ID is the user's unique identifier.
	ID int64 `json:"id"`

	// Username is the user's login identifier.
	Username string `json:"username"`

	// ImageURL is the optional avatar link.
	ImageURL string `json:"image_url"`

	// Bio is the optional free-form profile field.
	Bio string `json:"bio"`
}
