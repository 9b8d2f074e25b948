package models

import "encoding/json"

// Field-group update request bodies. Each endpoint owns exactly the fields of
// its request type; raw array fields go through the Normalize helpers so both
// native arrays and string-encoded arrays are accepted.

type RatingUpdateRequest struct {
	Rating *float64 `json:"rating"`
}

type TextUpdateRequest struct {
	RecipeText *string `json:"recipeText"`
}

type IngredientsUpdateRequest struct {
	Ingredients json.RawMessage `json:"ingredients"`
}

type LinksUpdateRequest struct {
	Links json.RawMessage `json:"links"`
}

// RecipeUpdate carries a partial whole-entity update: nil pointers mean
// "leave unchanged". It is the internal, already-normalized counterpart of
// the per-field request bodies and of PUT /api/recipes/{id}.
type RecipeUpdate struct {
	Name        *string
	ImagePath   *string
	Date        *string
	Rating      *float64
	RecipeText  *string
	Ingredients []Ingredient
	Links       []string
	Photos      []string
}

// ParseRecipeUpdate decodes a partial entity body into a RecipeUpdate.
// Absent (or null) fields stay nil and leave the stored value unchanged;
// both JSON naming conventions are accepted, like Recipe.UnmarshalJSON.
func ParseRecipeUpdate(data []byte) (RecipeUpdate, error) {
	var w struct {
		Name      *string `json:"name"`
		NameAlias *string `json:"Name"`

		ImagePath      *string `json:"image_path"`
		ImagePathAlias *string `json:"Image_path"`

		Date *string `json:"date"`

		Rating      *float64 `json:"rating"`
		RatingAlias *float64 `json:"Rating"`

		RecipeText      *string `json:"recipe_text"`
		RecipeTextAlias *string `json:"recipeText"`

		Ingredients json.RawMessage `json:"ingredients"`
		Links       json.RawMessage `json:"links"`
		Photos      json.RawMessage `json:"photos"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return RecipeUpdate{}, err
	}

	update := RecipeUpdate{
		Name:       firstPtr(w.Name, w.NameAlias),
		ImagePath:  firstPtr(w.ImagePath, w.ImagePathAlias),
		Date:       w.Date,
		Rating:     firstPtr(w.Rating, w.RatingAlias),
		RecipeText: firstPtr(w.RecipeText, w.RecipeTextAlias),
	}

	if rawPresent(w.Ingredients) {
		ingredients, err := NormalizeIngredients(w.Ingredients)
		if err != nil {
			return RecipeUpdate{}, err
		}
		update.Ingredients = ingredients
	}
	if rawPresent(w.Links) {
		links, err := NormalizeStrings(w.Links)
		if err != nil {
			return RecipeUpdate{}, err
		}
		update.Links = links
	}
	if rawPresent(w.Photos) {
		photos, err := NormalizeStrings(w.Photos)
		if err != nil {
			return RecipeUpdate{}, err
		}
		update.Photos = photos
	}

	return update, nil
}

func firstPtr[T any](values ...*T) *T {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

func rawPresent(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}

// IsEmpty reports whether the update would touch no field at all.
func (u RecipeUpdate) IsEmpty() bool {
	return u.Name == nil && u.ImagePath == nil && u.Date == nil &&
		u.Rating == nil && u.RecipeText == nil &&
		u.Ingredients == nil && u.Links == nil && u.Photos == nil
}

// RecipeDraft is the decoded multipart form of POST /api/recipes. Rating
// stays a raw string until the service parses and range-checks it; the
// array fields stay raw JSON until normalization.
type RecipeDraft struct {
	Name          string
	Rating        string
	ImageFilename string
	ImageData     []byte
	RecipeText    string
	Ingredients   json.RawMessage
	Links         json.RawMessage
	Photos        json.RawMessage
}

type ExtractRequest struct {
	RecipeText string `json:"recipeText"`
}
