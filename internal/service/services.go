package service

import (
	"recipekeep/internal/blob"
	"recipekeep/internal/config"
	"recipekeep/internal/logger"
	"recipekeep/internal/store"
)

// Services bundles the server-side services for handler wiring.
type Services struct {
	RecipeService  RecipeService
	PhotoService   PhotoService
	ExtractService ExtractService
}

func NewServices(repositories *store.Repositories, blobStorage blob.Storage, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		RecipeService:  NewRecipeService(repositories.RecipeRepository, blobStorage, logger),
		PhotoService:   NewPhotoService(repositories.RecipeRepository, blobStorage, logger),
		ExtractService: NewExtractService(cfg.Extractor, logger),
	}
}
