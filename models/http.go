package models

// CredentialsRequest is the request payload for the signup and login
// endpoints. Both fields are required; missing or empty values are rejected
// at the service layer before any domain logic runs.
type CredentialsRequest struct {
	// Username is the unique login identifier chosen by the user.
	Username string `json:"username"`

	// Password is the plaintext password. It exists only in the request
	// lifetime and is hashed before any persistence.
	Password string `json:"password"`
}

// CreateRecipeRequest is the request payload for recipe creation.
// The owner is never part of the payload; it is resolved from the session.
type CreateRecipeRequest struct {
	// Title is the required recipe name.
	Title string `json:"title"`

	// Instructions is the required cooking text.
	Instructions string `json:"instructions"`

	// MinutesToComplete is the required, non-negative preparation time.
	// A pointer distinguishes an absent field from an explicit zero.
	MinutesToComplete *int `json:"minutes_to_complete"`
}
