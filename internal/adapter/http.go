package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"recipekeep/internal/config"
	"recipekeep/internal/logger"
	"recipekeep/internal/utils"
	"recipekeep/models"
)

type httpServerGateway struct {
	client *utils.HTTPClient

	// uploadClient shares the base URL but carries the extended timeout
	// photo uploads need. The server streams the outcome into a held-open
	// body, so the regular request timeout would cut large uploads short.
	uploadClient *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerGateway constructs the HTTP/REST implementation of
// [ServerGateway]. It normalises and validates the base URL from
// cfg.HTTPAddress and configures two underlying clients: one with the
// regular request timeout and one with the extended upload timeout.
func NewHTTPServerGateway(cfg config.ClientAdapter, logger *logger.Logger) (ServerGateway, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	uploadClient := utils.NewHTTPClient()
	uploadClient.
		SetBaseURL(baseURL).
		SetTimeout(cfg.UploadTimeout)

	return &httpServerGateway{client: client, uploadClient: uploadClient, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetRecipe implements [ServerGateway]. The no-cache request header keeps
// intermediaries from serving the state an optimistic edit just replaced.
func (h *httpServerGateway) GetRecipe(ctx context.Context, recipeID int64) (models.Recipe, error) {
	var recipe models.Recipe

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Cache-Control", "no-cache").
		SetResult(&recipe).
		Get(fmt.Sprintf("/api/recipes/%d", recipeID))
	if err != nil {
		return models.Recipe{}, fmt.Errorf("get recipe request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Recipe{}, err
	}

	return recipe, nil
}

// UpdateRating implements [ServerGateway].
func (h *httpServerGateway) UpdateRating(ctx context.Context, recipeID int64, rating float64) (models.Recipe, error) {
	return h.putField(ctx, recipeID, "rating", models.RatingUpdateRequest{Rating: &rating})
}

// UpdateRecipeText implements [ServerGateway].
func (h *httpServerGateway) UpdateRecipeText(ctx context.Context, recipeID int64, text string) (models.Recipe, error) {
	return h.putField(ctx, recipeID, "text", models.TextUpdateRequest{RecipeText: &text})
}

// UpdateIngredients implements [ServerGateway]. The full list replaces the
// server copy; per-item diffs do not exist on the wire.
func (h *httpServerGateway) UpdateIngredients(ctx context.Context, recipeID int64, ingredients []models.Ingredient) (models.Recipe, error) {
	if ingredients == nil {
		ingredients = []models.Ingredient{}
	}
	raw, err := json.Marshal(ingredients)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("marshal ingredients: %w", err)
	}

	return h.putField(ctx, recipeID, "ingredients", models.IngredientsUpdateRequest{Ingredients: raw})
}

// UpdateLinks implements [ServerGateway].
func (h *httpServerGateway) UpdateLinks(ctx context.Context, recipeID int64, links []string) (models.Recipe, error) {
	if links == nil {
		links = []string{}
	}
	raw, err := json.Marshal(links)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("marshal links: %w", err)
	}

	return h.putField(ctx, recipeID, "links", models.LinksUpdateRequest{Links: raw})
}

func (h *httpServerGateway) putField(ctx context.Context, recipeID int64, field string, body any) (models.Recipe, error) {
	var recipe models.Recipe

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&recipe).
		Put(fmt.Sprintf("/api/recipes/%d/%s", recipeID, field))
	if err != nil {
		return models.Recipe{}, fmt.Errorf("update %s request: %w", field, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Recipe{}, err
	}

	return recipe, nil
}

// UploadPhoto implements [ServerGateway]. The server answers 200 before the
// upload outcome exists; only the streamed body says whether the photo was
// stored, so the body error is promoted to a Go error here.
func (h *httpServerGateway) UploadPhoto(ctx context.Context, recipeID int64, filename string, data []byte) (models.PhotoUploadResult, error) {
	resp, err := h.uploadClient.R().
		SetContext(ctx).
		SetFileReader("photo", filename, bytes.NewReader(data)).
		Post(fmt.Sprintf("/api/recipes/%d/photos", recipeID))
	if err != nil {
		return models.PhotoUploadResult{}, fmt.Errorf("upload photo request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PhotoUploadResult{}, err
	}

	var result models.PhotoUploadResult
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.PhotoUploadResult{}, fmt.Errorf("decode upload result: %w", err)
	}
	if !result.Succeeded() {
		return result, fmt.Errorf("%w: %s", ErrUploadRejected, result.Error)
	}

	return result, nil
}

// DeletePhoto implements [ServerGateway].
func (h *httpServerGateway) DeletePhoto(ctx context.Context, recipeID int64, filename string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("/api/recipes/%d/photos/%s", recipeID, url.PathEscape(filename)))
	if err != nil {
		return fmt.Errorf("delete photo request: %w", err)
	}

	return mapHTTPError(resp)
}

// ExtractIngredients implements [ServerGateway].
func (h *httpServerGateway) ExtractIngredients(ctx context.Context, recipeText string) ([]models.Ingredient, error) {
	var extractResponse models.ExtractResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ExtractRequest{RecipeText: recipeText}).
		SetResult(&extractResponse).
		Post("/api/extract-ingredients")
	if err != nil {
		return nil, fmt.Errorf("extract ingredients request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return extractResponse.Ingredients, nil
}
