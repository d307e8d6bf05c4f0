package models

import "time"

// Recipe represents a single recipe record owned by exactly one user.
// Visibility is always restricted to the owner; no sharing semantics exist
// at the storage level.
type Recipe struct {
	// RecipeID is the internal unique identifier of the recipe.
	// It is assigned by the database at creation time and is immutable.
	RecipeID int64 `json:"id"`

	// UserID is the owner of the recipe. It is always taken from the
	// authenticated session at creation time, never from client input,
	// and is immutable afterwards.
	UserID int64 `json:"-"`

	// Title is the required, non-empty display name of the recipe.
	Title string `json:"title"`

	// Instructions is the required, non-empty free-form cooking text.
	Instructions string `json:"instructions"`

	// MinutesToComplete is the estimated preparation time.
	// Required and non-negative.
	MinutesToComplete int `json:"minutes_to_complete"`

	// CreatedAt is the timestamp when the recipe was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Recipe model.
func (r Recipe) TableName() string {
	return "recipes"
}
