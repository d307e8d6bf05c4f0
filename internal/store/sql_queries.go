package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/recipe-keeper/models"
)

// The $N placeholder style and the RETURNING clause are understood by both
// supported backends (PostgreSQL natively, SQLite since 3.35).
const (
	createUser = `INSERT INTO users (username, password_digest, bio, image_url)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, username, password_digest, bio, image_url, created_at;`

	findUserByUsername = `SELECT user_id, username, password_digest, bio, image_url, created_at
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT user_id, username, password_digest, bio, image_url, created_at
    FROM users
    WHERE user_id = $1;`

	createSession = `INSERT INTO sessions (token, user_id)
    VALUES ($1, $2)
    RETURNING token, user_id, created_at, revoked_at;`

	findSessionByToken = `SELECT token, user_id, created_at, revoked_at
    FROM sessions
    WHERE token = $1 AND revoked_at IS NULL;`

	revokeSession = `UPDATE sessions
    SET revoked_at = CURRENT_TIMESTAMP
    WHERE token = $1 AND revoked_at IS NULL;`
)

// buildSelectRecipesForOwnerQuery builds the owner-scoped recipe listing.
// The user_id filter is mandatory: recipes are never visible across owners.
func buildSelectRecipesForOwnerQuery(userID int64) (string, []any, error) {
	query, args, err := sq.
		Select("recipe_id", "user_id", "title", "instructions", "minutes_to_complete", "created_at").
		From(models.Recipe{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildInsertRecipeQuery builds the recipe INSERT with a RETURNING clause so
// the caller receives the canonical database representation of the new row.
func buildInsertRecipeQuery(recipe models.Recipe) (string, []any, error) {
	query, args, err := sq.
		Insert(models.Recipe{}.TableName()).
		Columns("user_id", "title", "instructions", "minutes_to_complete").
		Values(recipe.UserID, recipe.Title, recipe.Instructions, recipe.MinutesToComplete).
		Suffix("RETURNING recipe_id, user_id, title, instructions, minutes_to_complete, created_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
