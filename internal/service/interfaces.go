package service

import (
	"context"

	"github.com/MKhiriev/recipe-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService owns the credential and session lifecycle: registration,
// login, logout, session resolution, and profile lookup.
type AuthService interface {
	// Register creates a new account from the supplied credentials and
	// starts its first session. Fails with [ErrMissingCredentials] on empty
	// fields and with [store.ErrUsernameTaken] on a duplicate username.
	Register(ctx context.Context, creds models.CredentialsRequest) (models.User, models.Session, error)

	// Login verifies the supplied credentials and starts a new session.
	// Fails with [ErrMissingCredentials] on empty fields, and with
	// [store.ErrNoUserWasFound] or [ErrWrongPassword] on bad credentials.
	Login(ctx context.Context, creds models.CredentialsRequest) (models.User, models.Session, error)

	// Logout revokes the session identified by token. Revoking an unknown
	// or already-revoked token fails with [store.ErrNoSessionWasFound] so
	// the transport layer can report the misuse.
	Logout(ctx context.Context, token string) error

	// ResolveSession resolves an opaque token to its active session.
	ResolveSession(ctx context.Context, token string) (models.Session, error)

	// GetProfile looks up the user a session is bound to. A session may
	// outlive its user; [store.ErrNoUserWasFound] signals that case.
	GetProfile(ctx context.Context, userID int64) (models.User, error)
}

// RecipeService owns the recipe operations on top of the owner-scoped
// repository. The userID argument always comes from a resolved session.
type RecipeService interface {
	// ListRecipes returns every recipe owned by userID.
	ListRecipes(ctx context.Context, userID int64) ([]models.Recipe, error)

	// CreateRecipe validates the request payload and persists a new recipe
	// owned by userID. Fails with [ErrInvalidRecipeData] before any write
	// when validation fails.
	CreateRecipe(ctx context.Context, userID int64, request models.CreateRecipeRequest) (models.Recipe, error)
}
