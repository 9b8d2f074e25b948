package models

import (
	"encoding/json"
	"fmt"
)

// Recipe is the aggregate root of the application: one editable record with
// independently updatable field-groups (rating, text, ingredients, links,
// photos). The struct is the single canonical schema; translation to and from
// the two historical JSON naming conventions happens only in MarshalJSON /
// UnmarshalJSON, never in business logic.
type Recipe struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	ImagePath   string       `json:"image_path"`
	Date        string       `json:"date"`
	Rating      *float64     `json:"rating"`
	RecipeText  string       `json:"recipe_text"`
	Ingredients []Ingredient `json:"ingredients"`
	Links       []string     `json:"links"`
	Photos      []string     `json:"photos"`
}

// Ingredient is one checklist entry. Order inside Recipe.Ingredients is
// display order; names are not required to be unique.
type Ingredient struct {
	Name    string `json:"name"`
	Checked bool   `json:"checked"`
}

// recipeWire is the JSON shape actually put on the wire. Alongside the
// canonical lower-case fields it carries the capitalized aliases that the
// first generation of clients produced and still expects.
type recipeWire struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	NameAlias string `json:"Name"`

	ImagePath      string `json:"image_path"`
	ImagePathAlias string `json:"Image_path"`

	Date string `json:"date"`

	Rating      *float64 `json:"rating"`
	RatingAlias *float64 `json:"Rating"`

	RecipeText      string `json:"recipe_text"`
	RecipeTextAlias string `json:"recipeText"`

	Ingredients json.RawMessage `json:"ingredients"`
	Links       json.RawMessage `json:"links"`
	Photos      json.RawMessage `json:"photos"`
}

// MarshalJSON writes the canonical fields and duplicates the historical
// aliases so either generation of readers can consume the payload.
func (r Recipe) MarshalJSON() ([]byte, error) {
	ingredients, err := json.Marshal(sliceOrEmpty(r.Ingredients))
	if err != nil {
		return nil, fmt.Errorf("marshal ingredients: %w", err)
	}
	links, err := json.Marshal(sliceOrEmpty(r.Links))
	if err != nil {
		return nil, fmt.Errorf("marshal links: %w", err)
	}
	photos, err := json.Marshal(sliceOrEmpty(r.Photos))
	if err != nil {
		return nil, fmt.Errorf("marshal photos: %w", err)
	}

	return json.Marshal(recipeWire{
		ID:              r.ID,
		Name:            r.Name,
		NameAlias:       r.Name,
		ImagePath:       r.ImagePath,
		ImagePathAlias:  r.ImagePath,
		Date:            r.Date,
		Rating:          r.Rating,
		RatingAlias:     r.Rating,
		RecipeText:      r.RecipeText,
		RecipeTextAlias: r.RecipeText,
		Ingredients:     ingredients,
		Links:           links,
		Photos:          photos,
	})
}

// UnmarshalJSON accepts either naming convention, preferring the canonical
// lower-case form when both are present. Array fields additionally tolerate
// a JSON-encoded string representation left behind by old writers.
func (r *Recipe) UnmarshalJSON(data []byte) error {
	var w recipeWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	r.ID = w.ID
	r.Name = firstNonEmpty(w.Name, w.NameAlias)
	r.ImagePath = firstNonEmpty(w.ImagePath, w.ImagePathAlias)
	r.Date = w.Date
	r.Rating = w.Rating
	if r.Rating == nil {
		r.Rating = w.RatingAlias
	}
	r.RecipeText = firstNonEmpty(w.RecipeText, w.RecipeTextAlias)

	ingredients, err := NormalizeIngredients(w.Ingredients)
	if err != nil {
		return fmt.Errorf("normalize ingredients: %w", err)
	}
	r.Ingredients = ingredients

	links, err := NormalizeStrings(w.Links)
	if err != nil {
		return fmt.Errorf("normalize links: %w", err)
	}
	r.Links = links

	photos, err := NormalizeStrings(w.Photos)
	if err != nil {
		return fmt.Errorf("normalize photos: %w", err)
	}
	r.Photos = photos

	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func sliceOrEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
