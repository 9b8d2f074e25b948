package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ratingPtr(v float64) *float64 { return &v }

// ─────────────────────────────────────────────
// MarshalJSON
// ─────────────────────────────────────────────

func TestRecipe_Marshal_WritesBothNamingConventions(t *testing.T) {
	recipe := Recipe{
		ID:         42,
		Name:       "Borscht",
		ImagePath:  "static/1700000000000.jpg",
		Date:       "15 Mar 2024",
		Rating:     ratingPtr(4.5),
		RecipeText: "Cook the beets.",
	}

	data, err := json.Marshal(recipe)
	require.NoError(t, err)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(data, &wire))

	assert.Equal(t, "Borscht", wire["name"])
	assert.Equal(t, "Borscht", wire["Name"])
	assert.Equal(t, "static/1700000000000.jpg", wire["image_path"])
	assert.Equal(t, "static/1700000000000.jpg", wire["Image_path"])
	assert.Equal(t, 4.5, wire["rating"])
	assert.Equal(t, 4.5, wire["Rating"])
	assert.Equal(t, "Cook the beets.", wire["recipe_text"])
	assert.Equal(t, "Cook the beets.", wire["recipeText"])
}

func TestRecipe_Marshal_NilSlicesBecomeEmptyArrays(t *testing.T) {
	data, err := json.Marshal(Recipe{ID: 1, Name: "Bare"})
	require.NoError(t, err)

	var wire map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &wire))

	assert.JSONEq(t, `[]`, string(wire["ingredients"]))
	assert.JSONEq(t, `[]`, string(wire["links"]))
	assert.JSONEq(t, `[]`, string(wire["photos"]))
}

// ─────────────────────────────────────────────
// UnmarshalJSON
// ─────────────────────────────────────────────

func TestRecipe_Unmarshal_CanonicalNames(t *testing.T) {
	payload := `{
		"id": 7,
		"name": "Plov",
		"image_path": "static/1.jpg",
		"date": "02 Jan 2006",
		"rating": 3,
		"recipe_text": "Fry the onions.",
		"ingredients": [{"name":"rice","checked":true}],
		"links": ["https://example.com"],
		"photos": ["recipe-photos/7/a.jpg"]
	}`

	var recipe Recipe
	require.NoError(t, json.Unmarshal([]byte(payload), &recipe))

	assert.Equal(t, int64(7), recipe.ID)
	assert.Equal(t, "Plov", recipe.Name)
	require.NotNil(t, recipe.Rating)
	assert.InDelta(t, 3, *recipe.Rating, 0.0001)
	assert.Equal(t, []Ingredient{{Name: "rice", Checked: true}}, recipe.Ingredients)
	assert.Equal(t, []string{"https://example.com"}, recipe.Links)
	assert.Equal(t, []string{"recipe-photos/7/a.jpg"}, recipe.Photos)
}

func TestRecipe_Unmarshal_LegacyAliases(t *testing.T) {
	payload := `{
		"id": 7,
		"Name": "Plov",
		"Image_path": "static/1.jpg",
		"Rating": 2.5,
		"recipeText": "Fry the onions."
	}`

	var recipe Recipe
	require.NoError(t, json.Unmarshal([]byte(payload), &recipe))

	assert.Equal(t, "Plov", recipe.Name)
	assert.Equal(t, "static/1.jpg", recipe.ImagePath)
	require.NotNil(t, recipe.Rating)
	assert.InDelta(t, 2.5, *recipe.Rating, 0.0001)
	assert.Equal(t, "Fry the onions.", recipe.RecipeText)
}

func TestRecipe_Unmarshal_CanonicalWinsOverAlias(t *testing.T) {
	payload := `{"name": "canonical", "Name": "legacy", "rating": 4, "Rating": 1}`

	var recipe Recipe
	require.NoError(t, json.Unmarshal([]byte(payload), &recipe))

	assert.Equal(t, "canonical", recipe.Name)
	require.NotNil(t, recipe.Rating)
	assert.InDelta(t, 4, *recipe.Rating, 0.0001)
}

func TestRecipe_Unmarshal_StringEncodedArrays(t *testing.T) {
	payload := `{
		"id": 1,
		"ingredients": "[{\"name\":\"rice\",\"checked\":false}]",
		"links": "[\"https://example.com\"]",
		"photos": "[]"
	}`

	var recipe Recipe
	require.NoError(t, json.Unmarshal([]byte(payload), &recipe))

	assert.Equal(t, []Ingredient{{Name: "rice", Checked: false}}, recipe.Ingredients)
	assert.Equal(t, []string{"https://example.com"}, recipe.Links)
	assert.Equal(t, []string{}, recipe.Photos)
}

func TestRecipe_Unmarshal_MissingRating(t *testing.T) {
	var recipe Recipe
	require.NoError(t, json.Unmarshal([]byte(`{"id": 1, "name": "x"}`), &recipe))
	assert.Nil(t, recipe.Rating)
}

func TestRecipe_Unmarshal_NullArraysBecomeEmpty(t *testing.T) {
	var recipe Recipe
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"ingredients":null,"links":null,"photos":null}`), &recipe))

	assert.Equal(t, []Ingredient{}, recipe.Ingredients)
	assert.Equal(t, []string{}, recipe.Links)
	assert.Equal(t, []string{}, recipe.Photos)
}

// ─────────────────────────────────────────────
// Normalize helpers
// ─────────────────────────────────────────────

func TestNormalizeStrings(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []string
		wantErr bool
	}{
		{name: "native array", raw: `["a","b"]`, want: []string{"a", "b"}},
		{name: "string-encoded array", raw: `"[\"a\"]"`, want: []string{"a"}},
		{name: "empty string", raw: `""`, want: []string{}},
		{name: "null", raw: `null`, want: []string{}},
		{name: "absent", raw: ``, want: []string{}},
		{name: "not an array", raw: `{"a":1}`, wantErr: true},
		{name: "string-encoded garbage", raw: `"not json"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeStrings(json.RawMessage(tt.raw))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeIngredients(t *testing.T) {
	got, err := NormalizeIngredients(json.RawMessage(`"[{\"name\":\"salt\",\"checked\":true}]"`))
	require.NoError(t, err)
	assert.Equal(t, []Ingredient{{Name: "salt", Checked: true}}, got)

	got, err = NormalizeIngredients(nil)
	require.NoError(t, err)
	assert.Equal(t, []Ingredient{}, got)

	_, err = NormalizeIngredients(json.RawMessage(`42`))
	assert.Error(t, err)
}

// ─────────────────────────────────────────────
// ParseRecipeUpdate
// ─────────────────────────────────────────────

func TestParseRecipeUpdate_AbsentFieldsStayNil(t *testing.T) {
	update, err := ParseRecipeUpdate([]byte(`{"rating": 3.5}`))
	require.NoError(t, err)

	require.NotNil(t, update.Rating)
	assert.InDelta(t, 3.5, *update.Rating, 0.0001)
	assert.Nil(t, update.Name)
	assert.Nil(t, update.RecipeText)
	assert.Nil(t, update.Ingredients)
	assert.Nil(t, update.Links)
	assert.Nil(t, update.Photos)
	assert.False(t, update.IsEmpty())
}

func TestParseRecipeUpdate_AliasNames(t *testing.T) {
	update, err := ParseRecipeUpdate([]byte(`{"Name":"Lagman","Rating":3,"recipeText":"Pull the noodles."}`))
	require.NoError(t, err)

	require.NotNil(t, update.Name)
	assert.Equal(t, "Lagman", *update.Name)
	require.NotNil(t, update.Rating)
	assert.InDelta(t, 3, *update.Rating, 0.0001)
	require.NotNil(t, update.RecipeText)
	assert.Equal(t, "Pull the noodles.", *update.RecipeText)
}

func TestParseRecipeUpdate_PresentEmptyArrayClears(t *testing.T) {
	update, err := ParseRecipeUpdate([]byte(`{"links": []}`))
	require.NoError(t, err)

	// present-but-empty means "set to empty", absent means "leave alone"
	require.NotNil(t, update.Links)
	assert.Empty(t, update.Links)
	assert.Nil(t, update.Photos)
}

func TestParseRecipeUpdate_StringEncodedArray(t *testing.T) {
	update, err := ParseRecipeUpdate([]byte(`{"ingredients": "[{\"name\":\"rice\",\"checked\":false}]"}`))
	require.NoError(t, err)
	assert.Equal(t, []Ingredient{{Name: "rice", Checked: false}}, update.Ingredients)
}

func TestParseRecipeUpdate_Empty(t *testing.T) {
	update, err := ParseRecipeUpdate([]byte(`{}`))
	require.NoError(t, err)
	assert.True(t, update.IsEmpty())

	_, err = ParseRecipeUpdate([]byte(`not json`))
	assert.Error(t, err)
}
