package service

import (
	"context"

	"recipekeep/models"
)

// RecipeService owns the recipe aggregate on the server side. Each update
// method touches exactly its own field group and returns the full normalized
// entity after the write.
type RecipeService interface {
	GetAll(ctx context.Context) ([]models.Recipe, error)
	GetByID(ctx context.Context, id int64) (models.Recipe, error)
	Create(ctx context.Context, draft models.RecipeDraft) (models.Recipe, error)
	Update(ctx context.Context, id int64, update models.RecipeUpdate) (models.Recipe, error)
	Delete(ctx context.Context, id int64) error

	UpdateRating(ctx context.Context, id int64, req models.RatingUpdateRequest) (models.Recipe, error)
	UpdateText(ctx context.Context, id int64, req models.TextUpdateRequest) (models.Recipe, error)
	UpdateIngredients(ctx context.Context, id int64, req models.IngredientsUpdateRequest) (models.Recipe, error)
	UpdateLinks(ctx context.Context, id int64, req models.LinksUpdateRequest) (models.Recipe, error)
}

// PhotoService manages the photos of one recipe: the object-store bytes and
// the photo list persisted on the recipe entity.
type PhotoService interface {
	ListPhotos(ctx context.Context, recipeID int64) ([]string, error)
	GetPhoto(ctx context.Context, recipeID int64, filename string) ([]byte, string, error)

	// UploadPhoto stores the bytes, appends the generated path to the
	// recipe's photo list and returns the stored path. The caller decides
	// how the outcome reaches the client; the handler streams it into an
	// already-committed response body.
	UploadPhoto(ctx context.Context, recipeID int64, originalFilename string, data []byte, contentType string) (string, error)

	// DeletePhoto removes the stored photo whose path ends with filename.
	DeletePhoto(ctx context.Context, recipeID int64, filename string) error
}

// ExtractService turns free-form recipe text into an ingredient checklist
// via an external text-generation API.
type ExtractService interface {
	ExtractIngredients(ctx context.Context, recipeText string) ([]models.Ingredient, error)
}
