package syncer

import "errors"

var (
	ErrInvalidRating       = errors.New("rating must be between 0 and 5")
	ErrEmptyIngredientName = errors.New("ingredient name is empty")
	ErrEmptyLink           = errors.New("link is empty")
	ErrNoSuchIngredient    = errors.New("no ingredient at index")
	ErrNoSuchLink          = errors.New("no link at index")
	ErrNoSuchPhoto         = errors.New("photo is not part of the recipe")
)
