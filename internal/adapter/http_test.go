package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipekeep/internal/config"
	"recipekeep/internal/logger"
	"recipekeep/models"
)

func newTestGateway(t *testing.T, serverURL string) ServerGateway {
	t.Helper()

	g, err := NewHTTPServerGateway(config.ClientAdapter{
		HTTPAddress:    serverURL,
		RequestTimeout: 5 * time.Second,
		UploadTimeout:  10 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return g
}

func recipeJSON(t *testing.T, recipe models.Recipe) []byte {
	t.Helper()
	data, err := json.Marshal(recipe)
	require.NoError(t, err)
	return data
}

// ── Base URL normalisation ──────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"localhost:8080", "http://localhost:8080", false},
		{"http://localhost:8080/", "http://localhost:8080", false},
		{"https://api.example.com", "https://api.example.com", false},
		{"  ", "", true},
	}

	for _, tt := range tests {
		got, err := normalizeBaseURL(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

// ── GetRecipe ───────────────────────────────────────────────────────────────

func TestGetRecipe_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/recipes/42", r.URL.Path)
		assert.Equal(t, "no-cache", r.Header.Get("Cache-Control"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(recipeJSON(t, models.Recipe{ID: 42, Name: "Plov"}))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	got, err := g.GetRecipe(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, int64(42), got.ID)
	assert.Equal(t, "Plov", got.Name)
}

func TestGetRecipe_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "recipe was not found", http.StatusNotFound)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	_, err := g.GetRecipe(context.Background(), 42)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetRecipe_ServerUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "store down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	_, err := g.GetRecipe(context.Background(), 42)

	assert.ErrorIs(t, err, ErrServerUnavailable)
}

// ── Field-scoped updates ────────────────────────────────────────────────────

func TestUpdateRating(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/recipes/42/rating", r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"rating":4.5}`, string(body))

		rating := 4.5
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(recipeJSON(t, models.Recipe{ID: 42, Rating: &rating}))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	got, err := g.UpdateRating(context.Background(), 42, 4.5)

	require.NoError(t, err)
	require.NotNil(t, got.Rating)
	assert.InDelta(t, 4.5, *got.Rating, 0.0001)
}

func TestUpdateRecipeText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/recipes/42/text", r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"recipeText":"Boil water."}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(recipeJSON(t, models.Recipe{ID: 42, RecipeText: "Boil water."}))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	got, err := g.UpdateRecipeText(context.Background(), 42, "Boil water.")

	require.NoError(t, err)
	assert.Equal(t, "Boil water.", got.RecipeText)
}

func TestUpdateIngredients_SendsWholeList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/recipes/42/ingredients", r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"ingredients":[{"name":"rice","checked":true},{"name":"salt","checked":false}]}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(recipeJSON(t, models.Recipe{ID: 42, Ingredients: []models.Ingredient{
			{Name: "rice", Checked: true}, {Name: "salt", Checked: false},
		}}))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	got, err := g.UpdateIngredients(context.Background(), 42, []models.Ingredient{
		{Name: "rice", Checked: true}, {Name: "salt", Checked: false},
	})

	require.NoError(t, err)
	assert.Len(t, got.Ingredients, 2)
}

func TestUpdateLinks_NilBecomesEmptyArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"links":[]}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(recipeJSON(t, models.Recipe{ID: 42}))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	_, err := g.UpdateLinks(context.Background(), 42, nil)

	require.NoError(t, err)
}

// ── UploadPhoto ─────────────────────────────────────────────────────────────

func TestUploadPhoto_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/recipes/42/photos", r.URL.Path)

		file, header, err := r.FormFile("photo")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "dinner.jpg", header.Filename)
		data, _ := io.ReadAll(file)
		assert.Equal(t, []byte("jpegbytes"), data)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Photo uploaded successfully","photoPath":"recipe-photos/42/123-abc.jpg"}`))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	result, err := g.UploadPhoto(context.Background(), 42, "dinner.jpg", []byte("jpegbytes"))

	require.NoError(t, err)
	assert.Equal(t, "recipe-photos/42/123-abc.jpg", result.PhotoPath)
}

// Upload failures arrive inside a 200 response; the gateway must surface
// them as errors anyway.
func TestUploadPhoto_BodyErrorDespite200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Error uploading photo","error":"storage exploded"}`))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	result, err := g.UploadPhoto(context.Background(), 42, "dinner.jpg", []byte("x"))

	require.ErrorIs(t, err, ErrUploadRejected)
	assert.Contains(t, err.Error(), "storage exploded")
	assert.False(t, result.Succeeded())
}

// ── DeletePhoto ─────────────────────────────────────────────────────────────

func TestDeletePhoto(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/recipes/42/photos/123-abc.jpg", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Photo deleted successfully"}`))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)

	assert.NoError(t, g.DeletePhoto(context.Background(), 42, "123-abc.jpg"))
}

func TestDeletePhoto_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no photo matched", http.StatusNotFound)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)

	assert.ErrorIs(t, g.DeletePhoto(context.Background(), 42, "nope.jpg"), ErrNotFound)
}

// ── ExtractIngredients ──────────────────────────────────────────────────────

func TestExtractIngredients(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/extract-ingredients", r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"recipeText":"boil pasta"}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Ingredients extracted successfully","ingredients":[{"name":"pasta","checked":false}]}`))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	got, err := g.ExtractIngredients(context.Background(), "boil pasta")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "pasta", got[0].Name)
}

func TestExtractIngredients_BadGateway(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "extractor upstream failed", http.StatusBadGateway)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	_, err := g.ExtractIngredients(context.Background(), "x")

	assert.ErrorIs(t, err, ErrBadGateway)
}
