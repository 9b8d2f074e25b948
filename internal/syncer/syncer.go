// Package syncer implements the client-side sync controller: one instance
// owns the local working copy of a single recipe, applies edits optimistically,
// pushes each edit through the field-scoped gateway call that owns it, and
// reconciles the whole copy from the server when a push fails.
package syncer

import (
	"context"
	"fmt"
	"sync"

	"recipekeep/internal/adapter"
	"recipekeep/internal/logger"
	"recipekeep/internal/store"
	"recipekeep/models"
)

// Field groups with independent write ordering. Responses for a field are
// applied only when they answer the latest request issued for that field,
// so a slow early write can never overwrite a later one.
const (
	fieldRating      = "rating"
	fieldText        = "text"
	fieldIngredients = "ingredients"
	fieldLinks       = "links"
	fieldPhotos      = "photos"
)

type Controller struct {
	gateway adapter.ServerGateway
	pending store.PendingUploadRepository

	logger *logger.Logger

	mu     sync.RWMutex
	recipe models.Recipe

	// previews holds in-memory photo bytes keyed by temp id, so an upload
	// in flight (or failed) still renders something.
	previews map[string][]byte

	// lastIssued tracks the newest sequence number handed out per field.
	lastIssued map[string]uint64

	reconciling  sync.Mutex
	reconcileHot bool
}

// NewController builds a controller for one recipe, loads the server copy
// and folds in any pending uploads left over from a previous run.
func NewController(ctx context.Context, recipeID int64, gateway adapter.ServerGateway, pending store.PendingUploadRepository, logger *logger.Logger) (*Controller, error) {
	c := &Controller{
		gateway:    gateway,
		pending:    pending,
		logger:     logger,
		previews:   make(map[string][]byte),
		lastIssued: make(map[string]uint64),
	}

	recipe, err := gateway.GetRecipe(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("loading recipe %d: %w", recipeID, err)
	}

	c.mu.Lock()
	c.recipe = recipe
	c.mu.Unlock()

	if err = c.ResolvePendingUploads(ctx); err != nil {
		logger.Warn().Err(err).Int64("recipe_id", recipeID).Msg("resolving pending uploads failed")
	}

	return c, nil
}

// Recipe returns a snapshot of the local working copy.
func (c *Controller) Recipe() models.Recipe {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return copyRecipe(c.recipe)
}

// PhotoPreview returns the in-memory bytes behind a temp photo id.
func (c *Controller) PhotoPreview(tempID string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	data, ok := c.previews[tempID]
	return data, ok
}

// issueSeq hands out the next sequence number for a field. Must be called
// under c.mu.
func (c *Controller) issueSeq(field string) uint64 {
	c.lastIssued[field]++
	return c.lastIssued[field]
}

// isLatest reports whether seq is still the newest issued for the field.
// Must be called under c.mu.
func (c *Controller) isLatest(field string, seq uint64) bool {
	return c.lastIssued[field] == seq
}

// Reconcile replaces the whole local copy with the server's, dropping every
// optimistic edit and temp photo entry. Concurrent calls collapse into one:
// a second caller returns immediately while the first fetch is running.
func (c *Controller) Reconcile(ctx context.Context) error {
	c.reconciling.Lock()
	if c.reconcileHot {
		c.reconciling.Unlock()
		return nil
	}
	c.reconcileHot = true
	c.reconciling.Unlock()

	defer func() {
		c.reconciling.Lock()
		c.reconcileHot = false
		c.reconciling.Unlock()
	}()

	c.mu.RLock()
	recipeID := c.recipe.ID
	c.mu.RUnlock()

	recipe, err := c.gateway.GetRecipe(ctx, recipeID)
	if err != nil {
		return fmt.Errorf("reconcile recipe %d: %w", recipeID, err)
	}

	c.mu.Lock()
	c.recipe = recipe
	for tempID := range c.previews {
		if !containsString(recipe.Photos, tempID) {
			delete(c.previews, tempID)
		}
	}
	c.mu.Unlock()

	c.logger.Debug().Int64("recipe_id", recipeID).Msg("reconciled from server")

	return nil
}

// reconcileAfterFailure rolls the local copy back to server truth after a
// failed push. The reconcile error, if any, is secondary to the push error
// the caller already holds.
func (c *Controller) reconcileAfterFailure(ctx context.Context, op string, pushErr error) {
	c.logger.Warn().Err(pushErr).Str("op", op).Msg("push failed, reconciling")
	if err := c.Reconcile(ctx); err != nil {
		c.logger.Error().Err(err).Str("op", op).Msg("reconcile after failed push also failed")
	}
}

func copyRecipe(r models.Recipe) models.Recipe {
	out := r
	out.Ingredients = append([]models.Ingredient(nil), r.Ingredients...)
	out.Links = append([]string(nil), r.Links...)
	out.Photos = append([]string(nil), r.Photos...)
	return out
}

func containsString(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
