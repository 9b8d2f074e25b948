package service

import "errors"

// Validation and capability sentinels. Handlers map them to HTTP statuses
// with errors.Is; services wrap them with context via fmt.Errorf("%w: ...").
var (
	ErrInvalidRecipeData = errors.New("invalid recipe data provided")

	ErrRatingOutOfRange  = errors.New("rating must be a number between 0 and 5")
	ErrMissingRecipeText = errors.New("recipeText field is required")
	ErrNotAnArray        = errors.New("field must be a JSON array")
	ErrEmptyUpdate       = errors.New("update contains no fields")

	ErrPhotoNotFound = errors.New("photo was not found")
	ErrEmptyPhoto    = errors.New("photo file is empty")

	ErrExtractorDisabled = errors.New("ingredient extraction is not configured")
	ErrExtractorUpstream = errors.New("ingredient extraction upstream call failed")
)
