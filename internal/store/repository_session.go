package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/models"
)

// sessionRepository is the SQL-backed implementation of [SessionRepository].
// It manages the "sessions" table: the server-side bindings between opaque
// client tokens and user identities.
//
// A session row is the only way a request resolves to an identity; there is
// no signed client-side state. Revocation flips revoked_at and is final.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSession persists a new active session binding token to userID and
// returns it with server-assigned fields (CreatedAt).
func (r *sessionRepository) CreateSession(ctx context.Context, token string, userID int64) (models.Session, error) {
	log := logger.FromContext(ctx)

	var session models.Session
	row := r.db.QueryRowContext(ctx, createSession, token, userID)

	if err := row.Scan(&session.Token, &session.UserID, &session.CreatedAt, &session.RevokedAt); err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Int64("user_id", userID).Msg("error: scanning created session")
		return models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return session, nil
}

// FindSessionByToken resolves an active (non-revoked) session by its token.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoSessionWasFound]. Revoked tokens take this
//     path too: the WHERE clause filters them out, so a revoked session is
//     indistinguishable from one that never existed.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *sessionRepository) FindSessionByToken(ctx context.Context, token string) (models.Session, error) {
	log := logger.FromContext(ctx)

	var session models.Session
	row := r.db.QueryRowContext(ctx, findSessionByToken, token)

	if err := row.Scan(&session.Token, &session.UserID, &session.CreatedAt, &session.RevokedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrNoSessionWasFound
		}

		log.Err(err).Str("func", "*sessionRepository.FindSessionByToken").Msg("error: scanning error")
		return models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return session, nil
}

// RevokeSession ends the active session identified by token by setting
// revoked_at. The UPDATE targets only non-revoked rows, so revocation is
// idempotent at the storage level; zero affected rows reports
// [ErrNoSessionWasFound] so callers can signal misuse.
func (r *sessionRepository) RevokeSession(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, revokeSession, token)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.RevokeSession").Msg("error executing revoke statement")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNoSessionWasFound
	}

	return nil
}
