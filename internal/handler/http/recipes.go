package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"recipekeep/internal/logger"
	"recipekeep/internal/utils"
	"recipekeep/models"
)

// createRecipeMaxMemory bounds the in-memory part of multipart parsing; the
// rest spills to temp files.
const createRecipeMaxMemory = 32 << 20

func recipeIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func (h *Handler) listRecipes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	recipes, err := h.services.RecipeService.GetAll(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listRecipes").Msg("error getting recipes")
		http.Error(w, "error getting recipes", statusFromError(err))
		return
	}

	utils.WriteJSON(w, recipes, http.StatusOK)
}

func (h *Handler) getRecipe(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := recipeIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getRecipe").Msg("invalid recipe id")
		http.Error(w, "invalid recipe id", http.StatusBadRequest)
		return
	}

	recipe, err := h.services.RecipeService.GetByID(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getRecipe").Int64("recipe_id", id).Msg("error getting recipe")
		http.Error(w, "error getting recipe", statusFromError(err))
		return
	}

	utils.WriteJSON(w, recipe, http.StatusOK)
}

func (h *Handler) createRecipe(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseMultipartForm(createRecipeMaxMemory); err != nil {
		log.Err(err).Str("func", "*Handler.createRecipe").Msg("invalid multipart form")
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	draft := models.RecipeDraft{
		Name:        r.FormValue("name"),
		Rating:      r.FormValue("rating"),
		RecipeText:  r.FormValue("recipeText"),
		Ingredients: json.RawMessage(r.FormValue("ingredients")),
		Links:       json.RawMessage(r.FormValue("links")),
		Photos:      json.RawMessage(r.FormValue("photos")),
	}

	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		draft.ImageFilename = header.Filename
		if draft.ImageData, err = io.ReadAll(file); err != nil {
			log.Err(err).Str("func", "*Handler.createRecipe").Msg("error reading image file")
			http.Error(w, "error reading image file", http.StatusBadRequest)
			return
		}
	}

	recipe, err := h.services.RecipeService.Create(r.Context(), draft)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createRecipe").Msg("error creating recipe")
		http.Error(w, "error creating recipe", statusFromError(err))
		return
	}

	utils.WriteJSON(w, recipe, http.StatusCreated)
}

func (h *Handler) updateRecipe(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := recipeIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateRecipe").Msg("invalid recipe id")
		http.Error(w, "invalid recipe id", http.StatusBadRequest)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateRecipe").Msg("error reading request body")
		http.Error(w, "error reading request body", http.StatusBadRequest)
		return
	}

	update, err := models.ParseRecipeUpdate(body)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateRecipe").Msg("invalid update body")
		http.Error(w, "invalid update body", http.StatusBadRequest)
		return
	}

	recipe, err := h.services.RecipeService.Update(r.Context(), id, update)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateRecipe").Int64("recipe_id", id).Msg("error updating recipe")
		http.Error(w, "error updating recipe", statusFromError(err))
		return
	}

	utils.WriteJSON(w, recipe, http.StatusOK)
}

func (h *Handler) deleteRecipe(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := recipeIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteRecipe").Msg("invalid recipe id")
		http.Error(w, "invalid recipe id", http.StatusBadRequest)
		return
	}

	if err = h.services.RecipeService.Delete(r.Context(), id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteRecipe").Int64("recipe_id", id).Msg("error deleting recipe")
		http.Error(w, "error deleting recipe", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Recipe deleted successfully"}, http.StatusOK)
}

func (h *Handler) updateRating(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := recipeIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateRating").Msg("invalid recipe id")
		http.Error(w, "invalid recipe id", http.StatusBadRequest)
		return
	}

	var req models.RatingUpdateRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.updateRating").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	recipe, err := h.services.RecipeService.UpdateRating(r.Context(), id, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateRating").Int64("recipe_id", id).Msg("error updating rating")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, recipe, http.StatusOK)
}

func (h *Handler) updateText(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := recipeIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateText").Msg("invalid recipe id")
		http.Error(w, "invalid recipe id", http.StatusBadRequest)
		return
	}

	var req models.TextUpdateRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.updateText").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	recipe, err := h.services.RecipeService.UpdateText(r.Context(), id, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateText").Int64("recipe_id", id).Msg("error updating recipe text")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, recipe, http.StatusOK)
}

func (h *Handler) updateIngredients(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := recipeIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateIngredients").Msg("invalid recipe id")
		http.Error(w, "invalid recipe id", http.StatusBadRequest)
		return
	}

	var req models.IngredientsUpdateRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.updateIngredients").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	recipe, err := h.services.RecipeService.UpdateIngredients(r.Context(), id, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateIngredients").Int64("recipe_id", id).Msg("error updating ingredients")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, recipe, http.StatusOK)
}

func (h *Handler) updateLinks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := recipeIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateLinks").Msg("invalid recipe id")
		http.Error(w, "invalid recipe id", http.StatusBadRequest)
		return
	}

	var req models.LinksUpdateRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.updateLinks").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	recipe, err := h.services.RecipeService.UpdateLinks(r.Context(), id, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateLinks").Int64("recipe_id", id).Msg("error updating links")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, recipe, http.StatusOK)
}
