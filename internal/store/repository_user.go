package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record together with their first session
// in a single transaction and returns both fully populated models with
// server-assigned fields (UserID, CreatedAt).
//
// The users.username UNIQUE constraint is the authoritative uniqueness
// guard: no existence check precedes the INSERT, so concurrent signups with
// the same username resolve to one committed row and one [ErrUsernameTaken]
// regardless of arrival order. Any failure after the user INSERT rolls the
// whole transaction back; a user row never exists without its session row.
//
// Error handling:
//   - uniqueness violation on username → [ErrUsernameTaken].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → wrapped [ErrScanningRow].
func (r *userRepository) CreateUser(ctx context.Context, user models.User, sessionToken string) (models.User, models.Session, error) {
	log := logger.FromContext(ctx)

	// begin transaction
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error during opening transaction")
		return models.User{}, models.Session{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	// create user in db
	row := tx.QueryRowContext(ctx, createUser, user.Username, user.PasswordDigest, user.Bio, user.ImageURL)
	if err := row.Scan(&user.UserID, &user.Username, &user.PasswordDigest, &user.Bio, &user.ImageURL, &user.CreatedAt); err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			log.Err(err).Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("username already exists")
			return models.User{}, models.Session{}, ErrUsernameTaken
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning created user")
		return models.User{}, models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// start the first session in the same transaction
	var session models.Session
	row = tx.QueryRowContext(ctx, createSession, sessionToken, user.UserID)
	if err := row.Scan(&session.Token, &session.UserID, &session.CreatedAt, &session.RevokedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning created session")
		return models.User{}, models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error during committing transaction")
		return models.User{}, models.Session{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return user, session, nil
}

// FindUserByUsername retrieves a user record whose Username matches the one
// provided.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByUsername, username)

	// scan found user from db
	if err := row.Scan(&foundUser.UserID, &foundUser.Username, &foundUser.PasswordDigest, &foundUser.Bio, &foundUser.ImageURL, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}

// FindUserByID retrieves a user record by its internal identifier.
//
// Used by the check_session flow: a session may outlive its user, in which
// case [ErrNoUserWasFound] signals the vanished-user case to the caller.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByID, userID)

	if err := row.Scan(&foundUser.UserID, &foundUser.Username, &foundUser.PasswordDigest, &foundUser.Bio, &foundUser.ImageURL, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}
