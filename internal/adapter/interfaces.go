// Package adapter provides the transport layer between the client-side sync
// controller and the recipekeep server.
//
// The primary abstraction is [ServerGateway], which decouples the sync logic
// from the wire protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerGateway]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrServerUnavailable] for 503).
package adapter

import (
	"context"

	"recipekeep/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_gateway_mock.go -package=mock

// ServerGateway defines transport-agnostic communication with the recipekeep
// server. Every write is scoped to one field group and returns the full
// normalized entity the server persisted, which the caller adopts as truth.
type ServerGateway interface {
	// GetRecipe fetches the current server copy of one recipe, bypassing
	// HTTP caches so an optimistic client never reads back its own stale
	// state.
	GetRecipe(ctx context.Context, recipeID int64) (models.Recipe, error)

	// UpdateRating replaces only the rating field.
	UpdateRating(ctx context.Context, recipeID int64, rating float64) (models.Recipe, error)

	// UpdateRecipeText replaces only the free-text field.
	UpdateRecipeText(ctx context.Context, recipeID int64, text string) (models.Recipe, error)

	// UpdateIngredients replaces the whole ingredient list.
	UpdateIngredients(ctx context.Context, recipeID int64, ingredients []models.Ingredient) (models.Recipe, error)

	// UpdateLinks replaces the whole link list.
	UpdateLinks(ctx context.Context, recipeID int64, links []string) (models.Recipe, error)

	// UploadPhoto sends the photo bytes as a multipart request with an
	// extended timeout. The server commits its status line before the
	// upload outcome is known, so implementations must treat the response
	// body, not the status code, as the authoritative result.
	UploadPhoto(ctx context.Context, recipeID int64, filename string, data []byte) (models.PhotoUploadResult, error)

	// DeletePhoto removes the stored photo whose path ends with filename.
	DeletePhoto(ctx context.Context, recipeID int64, filename string) error

	// ExtractIngredients asks the server to derive an ingredient checklist
	// from free-form recipe text.
	ExtractIngredients(ctx context.Context, recipeText string) ([]models.Ingredient, error)
}
