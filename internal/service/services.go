package service

import (
	"github.com/MKhiriev/recipe-keeper/internal/config"
	"github.com/MKhiriev/recipe-keeper/internal/crypto"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/store"
)

type Services struct {
	AuthService   AuthService
	RecipeService RecipeService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	hasher := crypto.NewPasswordHasher(cfg.App.BcryptCost)

	return &Services{
		AuthService:   NewAuthService(storages.UserRepository, storages.SessionRepository, hasher, logger),
		RecipeService: NewRecipeService(storages.RecipeRepository, logger),
	}
}
