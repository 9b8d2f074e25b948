package syncer

import (
	"context"
	"fmt"
	"time"

	"recipekeep/internal/utils"
	"recipekeep/models"
)

// UploadPhoto shows the photo immediately under a temp id, records a durable
// pending-upload row, then pushes the bytes. On success the temp id is
// swapped for the server path; on failure the temp entry stays visible (the
// row flips to error) until the next reconcile drops it.
func (c *Controller) UploadPhoto(ctx context.Context, filename string, data []byte) (string, error) {
	tempID := utils.NewTempID()

	c.mu.Lock()
	recipeID := c.recipe.ID
	c.recipe.Photos = append(c.recipe.Photos, tempID)
	c.previews[tempID] = data
	c.issueSeq(fieldPhotos)
	c.mu.Unlock()

	row := models.PendingUpload{
		TempID:    tempID,
		RecipeID:  recipeID,
		Timestamp: time.Now().UnixMilli(),
		Filename:  filename,
		Status:    models.UploadStatusUploading,
	}
	if err := c.pending.Save(ctx, row); err != nil {
		c.logger.Warn().Err(err).Str("temp_id", tempID).Msg("saving pending upload row failed")
	}

	result, err := c.gateway.UploadPhoto(ctx, recipeID, filename, data)
	if err != nil {
		row.Status = models.UploadStatusError
		row.Error = err.Error()
		if saveErr := c.pending.Save(ctx, row); saveErr != nil {
			c.logger.Warn().Err(saveErr).Str("temp_id", tempID).Msg("marking pending upload as failed failed")
		}
		return tempID, fmt.Errorf("upload photo: %w", err)
	}

	c.mu.Lock()
	for i, photo := range c.recipe.Photos {
		if photo == tempID {
			c.recipe.Photos[i] = result.PhotoPath
			break
		}
	}
	delete(c.previews, tempID)
	c.mu.Unlock()

	// The completed row stays on disk until the next ResolvePendingUploads
	// pass clears it; if the process dies before the in-memory swap above is
	// ever observed, the row still carries the server path for recovery.
	row.Status = models.UploadStatusCompleted
	row.PhotoPath = result.PhotoPath
	if err = c.pending.Save(ctx, row); err != nil {
		c.logger.Warn().Err(err).Str("temp_id", tempID).Msg("marking pending upload as completed failed")
	}

	return result.PhotoPath, nil
}

// DeletePhoto removes a photo optimistically and pushes the deletion using
// the path's leaf filename. A temp-id photo is only local state: its entry,
// preview and pending row go away without any network call.
func (c *Controller) DeletePhoto(ctx context.Context, photoPath string) error {
	c.mu.Lock()
	recipeID := c.recipe.ID
	index := -1
	for i, photo := range c.recipe.Photos {
		if photo == photoPath {
			index = i
			break
		}
	}
	if index < 0 {
		c.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrNoSuchPhoto, photoPath)
	}
	c.recipe.Photos = append(c.recipe.Photos[:index], c.recipe.Photos[index+1:]...)
	c.issueSeq(fieldPhotos)

	if utils.IsTempID(photoPath) {
		delete(c.previews, photoPath)
		c.mu.Unlock()
		if err := c.pending.Delete(ctx, photoPath); err != nil {
			c.logger.Warn().Err(err).Str("temp_id", photoPath).Msg("removing pending upload row failed")
		}
		return nil
	}
	c.mu.Unlock()

	if err := c.gateway.DeletePhoto(ctx, recipeID, utils.PhotoLeaf(photoPath)); err != nil {
		c.reconcileAfterFailure(ctx, "delete photo", err)
		return fmt.Errorf("delete photo: %w", err)
	}

	return nil
}

// ResolvePendingUploads folds the durable pending-upload table into the
// working copy after a restart or recipe switch. Completed rows contribute
// their server path when the copy does not have it yet; uploading and error
// rows have no recoverable preview in a fresh process, so they are dropped
// and server truth wins at the next reconcile.
func (c *Controller) ResolvePendingUploads(ctx context.Context) error {
	c.mu.RLock()
	recipeID := c.recipe.ID
	c.mu.RUnlock()

	rows, err := c.pending.GetByRecipe(ctx, recipeID)
	if err != nil {
		return fmt.Errorf("loading pending uploads for recipe %d: %w", recipeID, err)
	}

	for _, row := range rows {
		switch row.Status {
		case models.UploadStatusCompleted:
			c.mu.Lock()
			if row.PhotoPath != "" && !containsString(c.recipe.Photos, row.PhotoPath) {
				c.recipe.Photos = append(c.recipe.Photos, row.PhotoPath)
			}
			c.mu.Unlock()
		case models.UploadStatusUploading, models.UploadStatusError:
			c.logger.Debug().
				Str("temp_id", row.TempID).
				Str("status", row.Status).
				Msg("dropping unrecoverable pending upload")
		}

		if err = c.pending.Delete(ctx, row.TempID); err != nil {
			c.logger.Warn().Err(err).Str("temp_id", row.TempID).Msg("removing pending upload row failed")
		}
	}

	return nil
}
