package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/utils"
	"github.com/MKhiriev/recipe-keeper/models"
)

func (h *Handler) listRecipes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("recipe listing reached without a resolved session")
		utils.WriteJSON(w, models.MessageResponse{Message: "Unauthorized"}, http.StatusUnauthorized)
		return
	}

	recipes, err := h.services.RecipeService.ListRecipes(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("recipe listing failed")
		writeError(w, err)
		return
	}

	// a fresh owner gets [] rather than null
	if recipes == nil {
		recipes = []models.Recipe{}
	}

	utils.WriteJSON(w, recipes, http.StatusOK)
}

func (h *Handler) createRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("recipe creation reached without a resolved session")
		utils.WriteJSON(w, models.MessageResponse{Message: "Unauthorized"}, http.StatusUnauthorized)
		return
	}

	var request models.CreateRecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: "Invalid recipe data"}, http.StatusUnprocessableEntity)
		return
	}

	savedRecipe, err := h.services.RecipeService.CreateRecipe(ctx, userID, request)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("recipe creation failed")
		writeError(w, err)
		return
	}

	log.Debug().Int64("id", savedRecipe.RecipeID).Int64("user_id", userID).Msg("recipe created")

	utils.WriteJSON(w, models.MessageResponse{Message: "Recipe created successfully"}, http.StatusCreated)
}
