package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/recipe-keeper/internal/crypto"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/store"
	"github.com/MKhiriev/recipe-keeper/internal/utils"
	"github.com/MKhiriev/recipe-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and the session
// lifecycle using a UserRepository and SessionRepository for persistence
// and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// sessionRepository is the data-access layer for the server-side
	// session bindings.
	sessionRepository store.SessionRepository

	// hasher produces and verifies salted password digests.
	// Plaintext passwords never travel past this service.
	hasher crypto.PasswordHasher

	// tokens generates the opaque session token strings.
	tokens *utils.UUIDGenerator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// repositories and password hasher.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, sessionRepository store.SessionRepository, hasher crypto.PasswordHasher, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:    userRepository,
		sessionRepository: sessionRepository,
		hasher:            hasher,
		tokens:            utils.NewUUIDGenerator(),
		logger:            logger,
	}
}

// Register creates a new user account and starts its first session.
//
// It validates that both Username and Password are non-empty, hashes the
// password, and delegates the transactional user+session write to the
// UserRepository. The plaintext password is never persisted or logged.
//
// Returns the persisted user and session or:
//   - ErrMissingCredentials if Username or Password is empty.
//   - A wrapped storage error if the repository call fails (e.g. username
//     already taken — see store.ErrUsernameTaken).
func (a *authService) Register(ctx context.Context, creds models.CredentialsRequest) (models.User, models.Session, error) {
	log := logger.FromContext(ctx)

	if creds.Username == "" || creds.Password == "" {
		log.Error().Str("username", creds.Username).Msg("missing username or password")
		return models.User{}, models.Session{}, ErrMissingCredentials
	}

	digest, err := a.hasher.Hash(creds.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, models.Session{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Username:       creds.Username,
		PasswordDigest: digest,
	}

	registeredUser, session, err := a.userRepository.CreateUser(ctx, user, a.tokens.Generate())
	if err != nil {
		log.Err(err).Str("username", creds.Username).Msg("user creation ended with error")
		return models.User{}, models.Session{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, session, nil
}

// Login authenticates an existing user and starts a new session.
//
// It validates that both Username and Password are non-empty, looks up the
// account by username, and verifies the password against the stored digest.
//
// Returns the authenticated user and the new session or:
//   - ErrMissingCredentials if Username or Password is empty.
//   - A wrapped storage error if the repository lookup fails (e.g. user not
//     found — see store.ErrNoUserWasFound).
//   - ErrWrongPassword if the password does not verify.
func (a *authService) Login(ctx context.Context, creds models.CredentialsRequest) (models.User, models.Session, error) {
	log := logger.FromContext(ctx)

	if creds.Username == "" || creds.Password == "" {
		log.Error().Str("username", creds.Username).Msg("missing username or password")
		return models.User{}, models.Session{}, ErrMissingCredentials
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, creds.Username)
	if err != nil {
		log.Err(err).Str("username", creds.Username).Msg("user search by username failed")
		return models.User{}, models.Session{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !a.hasher.Verify(creds.Password, foundUser.PasswordDigest) {
		log.Error().
			Int64("id", foundUser.UserID).
			Str("username", foundUser.Username).
			Msg("wrong password")
		return models.User{}, models.Session{}, ErrWrongPassword
	}

	session, err := a.sessionRepository.CreateSession(ctx, a.tokens.Generate(), foundUser.UserID)
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("session creation ended with error")
		return models.User{}, models.Session{}, fmt.Errorf("session creation ended with error: %w", err)
	}

	return foundUser, session, nil
}

// Logout revokes the session identified by token.
//
// Revoking a token with no active session returns
// store.ErrNoSessionWasFound; the transport layer reports that as an
// authorization failure to signal misuse.
func (a *authService) Logout(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	if err := a.sessionRepository.RevokeSession(ctx, token); err != nil {
		log.Err(err).Msg("session revocation failed")
		return fmt.Errorf("session revocation failed: %w", err)
	}

	return nil
}

// ResolveSession resolves an opaque token to its active session.
//
// Unknown and revoked tokens fail identically with
// store.ErrNoSessionWasFound, so a caller cannot probe which tokens ever
// existed.
func (a *authService) ResolveSession(ctx context.Context, token string) (models.Session, error) {
	session, err := a.sessionRepository.FindSessionByToken(ctx, token)
	if err != nil {
		return models.Session{}, fmt.Errorf("session lookup failed: %w", err)
	}

	return session, nil
}

// GetProfile looks up the user a resolved session is bound to.
//
// Returns store.ErrNoUserWasFound (wrapped) when the user record has
// vanished between session issue and this check.
func (a *authService) GetProfile(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}
