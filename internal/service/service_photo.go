package service

import (
	"context"
	"fmt"
	"strings"

	"recipekeep/internal/blob"
	"recipekeep/internal/logger"
	"recipekeep/internal/store"
	"recipekeep/internal/utils"
	"recipekeep/models"
)

type photoService struct {
	recipeRepository store.RecipeRepository
	blobStorage      blob.Storage

	logger *logger.Logger
}

// NewPhotoService builds the photo service over the recipe repository (the
// photo list lives on the recipe entity) and the object storage holding the
// bytes.
func NewPhotoService(recipeRepository store.RecipeRepository, blobStorage blob.Storage, logger *logger.Logger) PhotoService {
	return &photoService{
		recipeRepository: recipeRepository,
		blobStorage:      blobStorage,
		logger:           logger,
	}
}

func (p *photoService) ListPhotos(ctx context.Context, recipeID int64) ([]string, error) {
	recipe, err := p.recipeRepository.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	return recipe.Photos, nil
}

func (p *photoService) GetPhoto(ctx context.Context, recipeID int64, filename string) ([]byte, string, error) {
	data, contentType, err := p.blobStorage.Get(ctx, utils.PhotoKey(recipeID, filename))
	if err != nil {
		return nil, "", fmt.Errorf("reading photo %q of recipe %d: %w", filename, recipeID, err)
	}

	return data, contentType, nil
}

// UploadPhoto stores the bytes under a generated key and appends the key to
// the recipe's photo list. The write order matters: the object goes in
// first, so a failed list update leaves an orphaned object rather than a
// dangling reference.
func (p *photoService) UploadPhoto(ctx context.Context, recipeID int64, originalFilename string, data []byte, contentType string) (string, error) {
	log := p.logger.GetChildLogger()

	if len(data) == 0 {
		return "", ErrEmptyPhoto
	}

	key := utils.PhotoKey(recipeID, utils.NewPhotoFilename(originalFilename))
	if _, err := p.blobStorage.Put(ctx, key, data, contentType); err != nil {
		return "", fmt.Errorf("storing photo for recipe %d: %w", recipeID, err)
	}

	recipe, err := p.recipeRepository.GetByID(ctx, recipeID)
	if err != nil {
		return "", err
	}

	photos := append(recipe.Photos, key)
	if _, err = p.recipeRepository.UpdateFields(ctx, recipeID, models.RecipeUpdate{Photos: photos}); err != nil {
		return "", err
	}

	log.Info().Int64("recipe_id", recipeID).Str("photo", key).Msg("photo uploaded")

	return key, nil
}

// DeletePhoto removes the entry of the recipe's photo list whose stored path
// ends with filename, then best-effort deletes the object. A missing suffix
// match is ErrPhotoNotFound; a failed object deletion only logs.
func (p *photoService) DeletePhoto(ctx context.Context, recipeID int64, filename string) error {
	log := p.logger.GetChildLogger()

	recipe, err := p.recipeRepository.GetByID(ctx, recipeID)
	if err != nil {
		return err
	}

	matched := ""
	kept := make([]string, 0, len(recipe.Photos))
	for _, photo := range recipe.Photos {
		if matched == "" && (photo == filename || strings.HasSuffix(photo, "/"+filename)) {
			matched = photo
			continue
		}
		kept = append(kept, photo)
	}
	if matched == "" {
		return fmt.Errorf("%w: %q on recipe %d", ErrPhotoNotFound, filename, recipeID)
	}

	if _, err = p.recipeRepository.UpdateFields(ctx, recipeID, models.RecipeUpdate{Photos: kept}); err != nil {
		return err
	}

	if err = p.blobStorage.Delete(ctx, matched); err != nil {
		log.Warn().Err(err).Str("photo", matched).Msg("object deletion failed, photo list already updated")
	}

	return nil
}
