package service

import (
	"context"
	"fmt"
	"path"
	"strconv"
	"strings"
	"time"

	"recipekeep/internal/blob"
	"recipekeep/internal/logger"
	"recipekeep/internal/store"
	"recipekeep/internal/utils"
	"recipekeep/models"
)

const displayDateLayout = "02 Jan 2006"

type recipeService struct {
	recipeRepository store.RecipeRepository
	blobStorage      blob.Storage

	logger *logger.Logger
}

// NewRecipeService builds the server-side recipe service over the recipe
// repository and the object storage holding cover images.
func NewRecipeService(recipeRepository store.RecipeRepository, blobStorage blob.Storage, logger *logger.Logger) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		blobStorage:      blobStorage,
		logger:           logger,
	}
}

func (s *recipeService) GetAll(ctx context.Context) ([]models.Recipe, error) {
	return s.recipeRepository.GetAll(ctx)
}

func (s *recipeService) GetByID(ctx context.Context, id int64) (models.Recipe, error) {
	return s.recipeRepository.GetByID(ctx, id)
}

// Create validates the draft, stores the cover image and inserts the new
// recipe. Name, rating and image are required together; the array fields
// tolerate invalid JSON by falling back to empty lists.
func (s *recipeService) Create(ctx context.Context, draft models.RecipeDraft) (models.Recipe, error) {
	log := s.logger.GetChildLogger()

	if draft.Name == "" || draft.Rating == "" || len(draft.ImageData) == 0 {
		return models.Recipe{}, fmt.Errorf("%w: name, rating and image are required", ErrInvalidRecipeData)
	}

	rating, err := strconv.ParseFloat(draft.Rating, 64)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrRatingOutOfRange, err)
	}
	if rating < 0 || rating > 5 {
		return models.Recipe{}, fmt.Errorf("%w: got %v", ErrRatingOutOfRange, rating)
	}

	now := time.Now()
	imagePath := fmt.Sprintf("static/%d%s", now.UnixMilli(), imageExtension(draft.ImageFilename))
	if _, err = s.blobStorage.Put(ctx, imagePath, draft.ImageData, ""); err != nil {
		return models.Recipe{}, fmt.Errorf("saving recipe image: %w", err)
	}

	ingredients, err := models.NormalizeIngredients(draft.Ingredients)
	if err != nil {
		log.Warn().Err(err).Msg("invalid ingredients in create form, storing empty list")
		ingredients = []models.Ingredient{}
	}
	links, err := models.NormalizeStrings(draft.Links)
	if err != nil {
		log.Warn().Err(err).Msg("invalid links in create form, storing empty list")
		links = []string{}
	}
	photos, err := models.NormalizeStrings(draft.Photos)
	if err != nil {
		log.Warn().Err(err).Msg("invalid photos in create form, storing empty list")
		photos = []string{}
	}

	recipe := models.Recipe{
		ID:          now.UnixMilli(),
		Name:        draft.Name,
		ImagePath:   imagePath,
		Date:        now.Format(displayDateLayout),
		Rating:      &rating,
		RecipeText:  draft.RecipeText,
		Ingredients: ingredients,
		Links:       links,
		Photos:      photos,
	}

	created, err := s.recipeRepository.Create(ctx, recipe)
	if err != nil {
		return models.Recipe{}, err
	}

	log.Info().Int64("recipe_id", created.ID).Msg("recipe created")

	return created, nil
}

func (s *recipeService) Update(ctx context.Context, id int64, update models.RecipeUpdate) (models.Recipe, error) {
	if update.IsEmpty() {
		return models.Recipe{}, ErrEmptyUpdate
	}
	if update.Rating != nil && (*update.Rating < 0 || *update.Rating > 5) {
		return models.Recipe{}, fmt.Errorf("%w: got %v", ErrRatingOutOfRange, *update.Rating)
	}

	return s.recipeRepository.UpdateFields(ctx, id, update)
}

// Delete removes the recipe row and sweeps its stored photos. The sweep is
// best effort; a failed object deletion never fails the recipe deletion.
func (s *recipeService) Delete(ctx context.Context, id int64) error {
	if err := s.recipeRepository.Delete(ctx, id); err != nil {
		return err
	}

	s.sweepPhotos(ctx, id)

	return nil
}

func (s *recipeService) UpdateRating(ctx context.Context, id int64, req models.RatingUpdateRequest) (models.Recipe, error) {
	if req.Rating == nil {
		return models.Recipe{}, fmt.Errorf("%w: rating field is required", ErrRatingOutOfRange)
	}
	if *req.Rating < 0 || *req.Rating > 5 {
		return models.Recipe{}, fmt.Errorf("%w: got %v", ErrRatingOutOfRange, *req.Rating)
	}

	return s.recipeRepository.UpdateFields(ctx, id, models.RecipeUpdate{Rating: req.Rating})
}

func (s *recipeService) UpdateText(ctx context.Context, id int64, req models.TextUpdateRequest) (models.Recipe, error) {
	if req.RecipeText == nil {
		return models.Recipe{}, ErrMissingRecipeText
	}

	return s.recipeRepository.UpdateFields(ctx, id, models.RecipeUpdate{RecipeText: req.RecipeText})
}

func (s *recipeService) UpdateIngredients(ctx context.Context, id int64, req models.IngredientsUpdateRequest) (models.Recipe, error) {
	if len(req.Ingredients) == 0 {
		return models.Recipe{}, fmt.Errorf("%w: ingredients field is required", ErrNotAnArray)
	}

	ingredients, err := models.NormalizeIngredients(req.Ingredients)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrNotAnArray, err)
	}

	return s.recipeRepository.UpdateFields(ctx, id, models.RecipeUpdate{Ingredients: ingredients})
}

func (s *recipeService) UpdateLinks(ctx context.Context, id int64, req models.LinksUpdateRequest) (models.Recipe, error) {
	if len(req.Links) == 0 {
		return models.Recipe{}, fmt.Errorf("%w: links field is required", ErrNotAnArray)
	}

	links, err := models.NormalizeStrings(req.Links)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrNotAnArray, err)
	}

	return s.recipeRepository.UpdateFields(ctx, id, models.RecipeUpdate{Links: links})
}

func (s *recipeService) sweepPhotos(ctx context.Context, recipeID int64) {
	log := s.logger.GetChildLogger()
	prefix := fmt.Sprintf("%s/%d/", utils.PhotoKeyPrefix, recipeID)

	objects, err := s.blobStorage.List(ctx, prefix)
	if err != nil {
		log.Warn().Err(err).Int64("recipe_id", recipeID).Msg("photo sweep: listing objects failed")
		return
	}

	for _, object := range objects {
		if err = s.blobStorage.Delete(ctx, object.Key); err != nil {
			log.Warn().Err(err).Str("key", object.Key).Msg("photo sweep: delete failed")
		}
	}
}

func imageExtension(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	if ext == "" {
		return ".jpg"
	}
	return ext
}
