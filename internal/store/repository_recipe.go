package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/models"
)

// recipeRepository is the SQL-backed implementation of [RecipeRepository].
// It executes all recipe operations against the "recipes" table using the
// embedded [*DB] connection.
//
// Every query is owner-scoped: the user_id predicate comes from a resolved
// session further up the stack, never from client-supplied input.
type recipeRepository struct {
	*DB
	logger *logger.Logger
}

// NewRecipeRepository constructs a [RecipeRepository] backed by the provided
// database connection and logger.
func NewRecipeRepository(db *DB, logger *logger.Logger) RecipeRepository {
	logger.Debug().Msg("creating recipe repository")
	return &recipeRepository{
		DB:     db,
		logger: logger,
	}
}

// GetAllRecipes retrieves every recipe owned by the given user.
//
// Returns an empty slice when the user owns no recipes. Order is whatever
// the database produces; callers must not rely on it.
func (p *recipeRepository) GetAllRecipes(ctx context.Context, userID int64) ([]models.Recipe, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRecipesForOwnerQuery(userID)
	if err != nil {
		log.Err(err).
			Str("func", "recipeRepository.GetAllRecipes").
			Int64("user_id", userID).
			Msg("failed to create query")
		return nil, err
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recipeRepository.GetAllRecipes").
			Int64("user_id", userID).
			Msg("failed to execute query for getting user recipes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	recipes := make([]models.Recipe, 0, 20)

	for rows.Next() {
		var recipe models.Recipe

		scanErr := rows.Scan(
			&recipe.RecipeID,
			&recipe.UserID,
			&recipe.Title,
			&recipe.Instructions,
			&recipe.MinutesToComplete,
			&recipe.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "recipeRepository.GetAllRecipes").
				Int64("user_id", userID).
				Msg("failed to scan recipe row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		recipes = append(recipes, recipe)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "recipeRepository.GetAllRecipes").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return recipes, nil
}

// CreateRecipe persists a new recipe and returns the fully populated
// [models.Recipe] with server-assigned fields (RecipeID, CreatedAt).
//
// The INSERT carries a RETURNING clause, so the caller receives the
// canonical database representation of the newly created row.
func (p *recipeRepository) CreateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertRecipeQuery(recipe)
	if err != nil {
		log.Err(err).
			Str("func", "recipeRepository.CreateRecipe").
			Int64("user_id", recipe.UserID).
			Msg("failed to create query")
		return models.Recipe{}, err
	}

	row := p.DB.QueryRowContext(ctx, query, args...)

	var saved models.Recipe
	if err := row.Scan(&saved.RecipeID, &saved.UserID, &saved.Title, &saved.Instructions, &saved.MinutesToComplete, &saved.CreatedAt); err != nil {
		log.Err(err).
			Str("func", "recipeRepository.CreateRecipe").
			Int64("user_id", recipe.UserID).
			Msg("failed to scan created recipe")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return saved, nil
}
