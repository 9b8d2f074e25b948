package store

import (
	"context"
	"fmt"

	"recipekeep/internal/logger"
	"recipekeep/models"
)

const (
	savePendingUpload = `
		INSERT INTO pending_uploads (temp_id, recipe_id, timestamp, filename, status, photo_path, error)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (temp_id) DO UPDATE SET
			status = excluded.status,
			photo_path = excluded.photo_path,
			error = excluded.error;`

	getPendingUploadsByRecipe = `
		SELECT temp_id, recipe_id, timestamp, filename, status, photo_path, error
		FROM pending_uploads
		WHERE recipe_id = $1
		ORDER BY timestamp;`

	deletePendingUpload = `
		DELETE FROM pending_uploads
		WHERE temp_id = $1;`
)

// pendingUploadRepository is the SQLite-backed implementation of
// [PendingUploadRepository]. It replaces ad hoc key-prefixed scans with a
// typed table so upload bookkeeping survives a full client restart.
type pendingUploadRepository struct {
	*DB
	logger *logger.Logger
}

// NewPendingUploadRepository constructs a [PendingUploadRepository] over the
// client-local database.
func NewPendingUploadRepository(db *DB, logger *logger.Logger) PendingUploadRepository {
	return &pendingUploadRepository{
		DB:     db,
		logger: logger,
	}
}

// Save inserts or updates the record for upload.TempID.
func (p *pendingUploadRepository) Save(ctx context.Context, upload models.PendingUpload) error {
	_, err := p.DB.ExecContext(ctx, savePendingUpload,
		upload.TempID,
		upload.RecipeID,
		upload.Timestamp,
		upload.Filename,
		upload.Status,
		upload.PhotoPath,
		upload.Error,
	)
	if err != nil {
		p.logger.Err(err).
			Str("func", "pendingUploadRepository.Save").
			Str("temp_id", upload.TempID).
			Msg("failed to save pending upload")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetByRecipe returns every record scoped to recipeID, oldest first.
func (p *pendingUploadRepository) GetByRecipe(ctx context.Context, recipeID int64) ([]models.PendingUpload, error) {
	rows, err := p.DB.QueryContext(ctx, getPendingUploadsByRecipe, recipeID)
	if err != nil {
		p.logger.Err(err).
			Str("func", "pendingUploadRepository.GetByRecipe").
			Int64("recipe_id", recipeID).
			Msg("failed to query pending uploads")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	uploads := make([]models.PendingUpload, 0, 4)

	for rows.Next() {
		var upload models.PendingUpload
		if scanErr := rows.Scan(
			&upload.TempID,
			&upload.RecipeID,
			&upload.Timestamp,
			&upload.Filename,
			&upload.Status,
			&upload.PhotoPath,
			&upload.Error,
		); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		uploads = append(uploads, upload)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return uploads, nil
}

// Delete removes the record for tempID. Deleting an absent record is not an
// error: resolve runs may race with upload completion.
func (p *pendingUploadRepository) Delete(ctx context.Context, tempID string) error {
	if _, err := p.DB.ExecContext(ctx, deletePendingUpload, tempID); err != nil {
		p.logger.Err(err).
			Str("func", "pendingUploadRepository.Delete").
			Str("temp_id", tempID).
			Msg("failed to delete pending upload")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
