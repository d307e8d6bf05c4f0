package store

import (
	"context"

	"github.com/MKhiriev/recipe-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the data-access contract for user accounts.
// It exclusively owns the users table.
type UserRepository interface {
	// CreateUser persists a new user together with their first session in a
	// single transaction: either both rows exist afterwards or neither does.
	// A duplicate username yields [ErrUsernameTaken].
	CreateUser(ctx context.Context, user models.User, sessionToken string) (models.User, models.Session, error)

	// FindUserByUsername looks up a user by their unique username.
	// An empty result yields [ErrNoUserWasFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByID looks up a user by their internal identifier.
	// An empty result yields [ErrNoUserWasFound].
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// SessionRepository is the data-access contract for the server-side session
// bindings. It references but never owns user records.
type SessionRepository interface {
	// CreateSession persists a new active session binding token to userID.
	CreateSession(ctx context.Context, token string, userID int64) (models.Session, error)

	// FindSessionByToken resolves an active session by its opaque token.
	// Unknown or revoked tokens yield [ErrNoSessionWasFound].
	FindSessionByToken(ctx context.Context, token string) (models.Session, error)

	// RevokeSession ends the active session identified by token.
	// Revoking an unknown or already-revoked token yields
	// [ErrNoSessionWasFound].
	RevokeSession(ctx context.Context, token string) error
}

// RecipeRepository is the data-access contract for recipes.
// Every read is owner-scoped; the owner id always comes from a resolved
// session, never from client input.
type RecipeRepository interface {
	// GetAllRecipes returns every recipe owned by userID. Order is
	// unspecified; no pagination.
	GetAllRecipes(ctx context.Context, userID int64) ([]models.Recipe, error)

	// CreateRecipe persists a new recipe and returns it with
	// server-assigned fields populated.
	CreateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error)
}

// ErrorClassificator inspects driver-level errors and recognises the
// constraint violations the domain layer cares about. Each database backend
// provides its own implementation.
type ErrorClassificator interface {
	// IsUniqueViolation reports whether err is a storage-level uniqueness
	// constraint violation.
	IsUniqueViolation(err error) bool
}
