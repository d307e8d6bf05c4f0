package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/store"
	"github.com/MKhiriev/recipe-keeper/models"
)

type recipeService struct {
	recipeRepository store.RecipeRepository

	logger *logger.Logger
}

func NewRecipeService(recipeRepository store.RecipeRepository, logger *logger.Logger) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		logger:           logger,
	}
}

// ListRecipes returns every recipe owned by userID, newest first.
// No recipes is not an error: the result is an empty slice.
func (r *recipeService) ListRecipes(ctx context.Context, userID int64) ([]models.Recipe, error) {
	recipes, err := r.recipeRepository.GetAllRecipes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("recipe listing ended with error: %w", err)
	}

	return recipes, nil
}

// CreateRecipe validates the submitted fields and persists a new recipe
// owned by userID. The owner always comes from the resolved session, never
// from the request body.
//
// Returns ErrInvalidRecipeData when any field fails validation.
func (r *recipeService) CreateRecipe(ctx context.Context, userID int64, request models.CreateRecipeRequest) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	if err := validateCreateRecipeRequest(request); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("recipe validation failed")
		return models.Recipe{}, err
	}

	recipe := models.Recipe{
		UserID:            userID,
		Title:             request.Title,
		Instructions:      request.Instructions,
		MinutesToComplete: *request.MinutesToComplete,
	}

	savedRecipe, err := r.recipeRepository.CreateRecipe(ctx, recipe)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("recipe creation ended with error")
		return models.Recipe{}, fmt.Errorf("recipe creation ended with error: %w", err)
	}

	return savedRecipe, nil
}
