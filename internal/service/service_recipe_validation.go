package service

import "github.com/MKhiriev/recipe-keeper/models"

// validateCreateRecipeRequest checks the user-submitted recipe fields.
// Title and Instructions must be non-empty; MinutesToComplete must be
// present and non-negative. A zero duration is allowed, absence is not,
// which is why the request field is a pointer.
func validateCreateRecipeRequest(request models.CreateRecipeRequest) error {
	if request.Title == "" {
		return ErrInvalidRecipeData
	}
	if request.Instructions == "" {
		return ErrInvalidRecipeData
	}
	if request.MinutesToComplete == nil || *request.MinutesToComplete < 0 {
		return ErrInvalidRecipeData
	}

	return nil
}
