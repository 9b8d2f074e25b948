package http

import (
	"encoding/json"
	"net/http"

	"recipekeep/internal/logger"
	"recipekeep/internal/utils"
	"recipekeep/models"
)

func (h *Handler) extractIngredients(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.extractIngredients").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if req.RecipeText == "" {
		log.Error().Str("func", "*Handler.extractIngredients").Msg("no recipe text was given")
		utils.WriteJSON(w, models.ExtractResponse{
			Message:     "Recipe text is required",
			Ingredients: []models.Ingredient{},
		}, http.StatusBadRequest)
		return
	}

	ingredients, err := h.services.ExtractService.ExtractIngredients(r.Context(), req.RecipeText)
	if err != nil {
		log.Err(err).Str("func", "*Handler.extractIngredients").Msg("error extracting ingredients")
		utils.WriteJSON(w, models.ExtractResponse{
			Message:     "Error extracting ingredients",
			Ingredients: []models.Ingredient{},
		}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.ExtractResponse{
		Message:     "Ingredients extracted successfully",
		Ingredients: ingredients,
	}, http.StatusOK)
}
