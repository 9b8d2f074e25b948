package service

import (
	"encoding/json"
	"regexp"
	"strings"

	"recipekeep/models"
)

var (
	jsonArrayPattern = regexp.MustCompile(`(?s)\[.*\]`)
	lineNoisePattern = regexp.MustCompile(`^[\d.\-*•]+\s*`)
)

// parseIngredients turns a model response into an ingredient list using
// three tiers: direct JSON array parse, a JSON array extracted from
// surrounding prose, and finally one ingredient per non-empty line with
// leading numbering and bullets stripped.
func parseIngredients(content string) []models.Ingredient {
	var ingredients []models.Ingredient
	if err := json.Unmarshal([]byte(content), &ingredients); err == nil {
		return ingredients
	}

	if match := jsonArrayPattern.FindString(content); match != "" {
		if err := json.Unmarshal([]byte(match), &ingredients); err == nil {
			return ingredients
		}
	}

	ingredients = []models.Ingredient{}
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		name := strings.TrimSpace(lineNoisePattern.ReplaceAllString(strings.TrimSpace(line), ""))
		ingredients = append(ingredients, models.Ingredient{Name: name, Checked: false})
	}

	return ingredients
}
