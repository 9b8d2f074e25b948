package store

import (
	"context"

	"recipekeep/models"
)

// RecipeRepository is the persistence collaborator owning the recipe
// aggregate. The store is the single source of truth; clients hold cached,
// possibly-stale copies.
type RecipeRepository interface {
	GetByID(ctx context.Context, id int64) (models.Recipe, error)
	GetAll(ctx context.Context) ([]models.Recipe, error)
	Create(ctx context.Context, recipe models.Recipe) (models.Recipe, error)
	UpdateFields(ctx context.Context, id int64, update models.RecipeUpdate) (models.Recipe, error)
	Delete(ctx context.Context, id int64) error
}

// PendingUploadRepository is the client-local durable table tracking photo
// uploads across process restarts. Keyed by temp id, scoped by recipe id.
type PendingUploadRepository interface {
	Save(ctx context.Context, upload models.PendingUpload) error
	GetByRecipe(ctx context.Context, recipeID int64) ([]models.PendingUpload, error)
	Delete(ctx context.Context, tempID string) error
}
