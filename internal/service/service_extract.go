package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"recipekeep/internal/config"
	"recipekeep/internal/logger"
	"recipekeep/internal/utils"
	"recipekeep/models"
)

const extractPrompt = "Extract all ingredients from this recipe: %s. " +
	"Return only a JSON array of ingredients and the quantity with no additional text. " +
	"Each ingredient should be an object with a 'name' property and 'checked' set to false."

const predictionPollInterval = time.Second

type extractService struct {
	httpClient *utils.HTTPClient
	cfg        config.Extractor

	logger *logger.Logger
}

// prediction is the subset of the upstream prediction resource the service
// reads. Output arrives as a string array of token chunks for most text
// models, but some return one plain string; RawMessage absorbs both.
type prediction struct {
	Status string          `json:"status"`
	Output json.RawMessage `json:"output"`
	Error  any             `json:"error"`
	URLs   struct {
		Get string `json:"get"`
	} `json:"urls"`
}

// NewExtractService builds the ingredient extractor over a Replicate-style
// prediction API. With no token configured every call reports the capability
// as disabled.
func NewExtractService(cfg config.Extractor, logger *logger.Logger) ExtractService {
	httpClient := utils.NewHTTPClient()
	httpClient.SetTimeout(cfg.RequestTimeout)

	return &extractService{
		httpClient: httpClient,
		cfg:        cfg,
		logger:     logger,
	}
}

func (e *extractService) ExtractIngredients(ctx context.Context, recipeText string) ([]models.Ingredient, error) {
	log := e.logger.GetChildLogger()

	if strings.TrimSpace(recipeText) == "" {
		return []models.Ingredient{}, nil
	}
	if e.cfg.Token == "" {
		return nil, ErrExtractorDisabled
	}

	content, err := e.generate(ctx, fmt.Sprintf(extractPrompt, recipeText))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExtractorUpstream, err)
	}

	ingredients := parseIngredients(content)
	log.Info().Int("count", len(ingredients)).Msg("ingredients extracted")

	return ingredients, nil
}

// generate creates a prediction and waits for its terminal state, polling
// the upstream get URL for predictions that outlive the sync window.
func (e *extractService) generate(ctx context.Context, prompt string) (string, error) {
	var created prediction

	resp, err := e.httpClient.R().
		SetContext(ctx).
		SetAuthToken(e.cfg.Token).
		SetHeader("Prefer", "wait").
		SetBody(map[string]any{
			"input": map[string]any{
				"prompt":      prompt,
				"temperature": 0.3,
				"max_length":  1000,
			},
		}).
		SetResult(&created).
		Post(fmt.Sprintf("%s/v1/models/%s/predictions", strings.TrimRight(e.cfg.Endpoint, "/"), e.cfg.Model))
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("prediction request returned status %d", resp.StatusCode())
	}

	current := created
	for current.Status == "starting" || current.Status == "processing" {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(predictionPollInterval):
		}

		var polled prediction
		resp, err = e.httpClient.R().
			SetContext(ctx).
			SetAuthToken(e.cfg.Token).
			SetResult(&polled).
			Get(current.URLs.Get)
		if err != nil {
			return "", err
		}
		if resp.IsError() {
			return "", fmt.Errorf("prediction poll returned status %d", resp.StatusCode())
		}
		polled.URLs = current.URLs
		current = polled
	}

	if current.Status != "succeeded" {
		return "", fmt.Errorf("prediction finished with status %q: %v", current.Status, current.Error)
	}

	return joinOutput(current.Output), nil
}

// joinOutput concatenates a chunked string-array output, or unwraps a plain
// string one.
func joinOutput(raw json.RawMessage) string {
	var chunks []string
	if err := json.Unmarshal(raw, &chunks); err == nil {
		return strings.TrimSpace(strings.Join(chunks, ""))
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return strings.TrimSpace(single)
	}

	return ""
}
