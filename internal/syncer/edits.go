package syncer

import (
	"context"
	"fmt"
	"strings"

	"recipekeep/models"
)

// SetRating validates locally, applies the rating optimistically and pushes
// it. An out-of-range value is rejected before any network traffic.
func (c *Controller) SetRating(ctx context.Context, rating float64) error {
	if rating < 0 || rating > 5 {
		return fmt.Errorf("%w: got %v", ErrInvalidRating, rating)
	}

	c.mu.Lock()
	recipeID := c.recipe.ID
	c.recipe.Rating = &rating
	seq := c.issueSeq(fieldRating)
	c.mu.Unlock()

	updated, err := c.gateway.UpdateRating(ctx, recipeID, rating)
	if err != nil {
		c.reconcileAfterFailure(ctx, "set rating", err)
		return fmt.Errorf("set rating: %w", err)
	}

	c.mu.Lock()
	if c.isLatest(fieldRating, seq) {
		c.recipe.Rating = updated.Rating
	}
	c.mu.Unlock()

	return nil
}

// SetRecipeText records a local edit of the free text without any network
// traffic; CommitRecipeText pushes the accumulated state.
func (c *Controller) SetRecipeText(text string) {
	c.mu.Lock()
	c.recipe.RecipeText = text
	c.mu.Unlock()
}

// CommitRecipeText pushes the current free text. Unlike the other edits a
// failed commit does NOT reconcile: the user's draft is worth more than
// server truth, so the local text stays and the failure is only logged.
func (c *Controller) CommitRecipeText(ctx context.Context) error {
	c.mu.Lock()
	recipeID := c.recipe.ID
	text := c.recipe.RecipeText
	seq := c.issueSeq(fieldText)
	c.mu.Unlock()

	updated, err := c.gateway.UpdateRecipeText(ctx, recipeID, text)
	if err != nil {
		c.logger.Warn().Err(err).Msg("recipe text commit failed, keeping local draft")
		return fmt.Errorf("commit recipe text: %w", err)
	}

	c.mu.Lock()
	if c.isLatest(fieldText, seq) {
		c.recipe.RecipeText = updated.RecipeText
	}
	c.mu.Unlock()

	return nil
}

// ToggleIngredient flips the checked state of the ingredient at index and
// pushes the whole list.
func (c *Controller) ToggleIngredient(ctx context.Context, index int) error {
	c.mu.Lock()
	if index < 0 || index >= len(c.recipe.Ingredients) {
		c.mu.Unlock()
		return fmt.Errorf("%w: index %d", ErrNoSuchIngredient, index)
	}
	c.recipe.Ingredients[index].Checked = !c.recipe.Ingredients[index].Checked
	c.mu.Unlock()

	return c.pushIngredients(ctx, "toggle ingredient")
}

// AddIngredient appends an unchecked ingredient and pushes the whole list.
func (c *Controller) AddIngredient(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyIngredientName
	}

	c.mu.Lock()
	c.recipe.Ingredients = append(c.recipe.Ingredients, models.Ingredient{Name: name, Checked: false})
	c.mu.Unlock()

	return c.pushIngredients(ctx, "add ingredient")
}

// DeleteIngredient removes the ingredient at index and pushes the whole list.
func (c *Controller) DeleteIngredient(ctx context.Context, index int) error {
	c.mu.Lock()
	if index < 0 || index >= len(c.recipe.Ingredients) {
		c.mu.Unlock()
		return fmt.Errorf("%w: index %d", ErrNoSuchIngredient, index)
	}
	c.recipe.Ingredients = append(c.recipe.Ingredients[:index], c.recipe.Ingredients[index+1:]...)
	c.mu.Unlock()

	return c.pushIngredients(ctx, "delete ingredient")
}

// MergeExtractedIngredients folds an extracted checklist into the current
// one. Names already present are skipped, compared case-insensitively, so
// re-running extraction never duplicates entries.
func (c *Controller) MergeExtractedIngredients(ctx context.Context, extracted []models.Ingredient) error {
	c.mu.Lock()
	seen := make(map[string]struct{}, len(c.recipe.Ingredients))
	for _, ingredient := range c.recipe.Ingredients {
		seen[strings.ToLower(strings.TrimSpace(ingredient.Name))] = struct{}{}
	}

	added := 0
	for _, ingredient := range extracted {
		key := strings.ToLower(strings.TrimSpace(ingredient.Name))
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		c.recipe.Ingredients = append(c.recipe.Ingredients, models.Ingredient{Name: ingredient.Name, Checked: false})
		added++
	}
	c.mu.Unlock()

	if added == 0 {
		return nil
	}

	return c.pushIngredients(ctx, "merge extracted ingredients")
}

// AddLink appends a link and pushes the whole list.
func (c *Controller) AddLink(ctx context.Context, link string) error {
	link = strings.TrimSpace(link)
	if link == "" {
		return ErrEmptyLink
	}

	c.mu.Lock()
	c.recipe.Links = append(c.recipe.Links, link)
	c.mu.Unlock()

	return c.pushLinks(ctx, "add link")
}

// DeleteLink removes the link at index and pushes the whole list.
func (c *Controller) DeleteLink(ctx context.Context, index int) error {
	c.mu.Lock()
	if index < 0 || index >= len(c.recipe.Links) {
		c.mu.Unlock()
		return fmt.Errorf("%w: index %d", ErrNoSuchLink, index)
	}
	c.recipe.Links = append(c.recipe.Links[:index], c.recipe.Links[index+1:]...)
	c.mu.Unlock()

	return c.pushLinks(ctx, "delete link")
}

func (c *Controller) pushIngredients(ctx context.Context, op string) error {
	c.mu.Lock()
	recipeID := c.recipe.ID
	snapshot := append([]models.Ingredient(nil), c.recipe.Ingredients...)
	seq := c.issueSeq(fieldIngredients)
	c.mu.Unlock()

	updated, err := c.gateway.UpdateIngredients(ctx, recipeID, snapshot)
	if err != nil {
		c.reconcileAfterFailure(ctx, op, err)
		return fmt.Errorf("%s: %w", op, err)
	}

	c.mu.Lock()
	if c.isLatest(fieldIngredients, seq) {
		c.recipe.Ingredients = updated.Ingredients
	}
	c.mu.Unlock()

	return nil
}

func (c *Controller) pushLinks(ctx context.Context, op string) error {
	c.mu.Lock()
	recipeID := c.recipe.ID
	snapshot := append([]string(nil), c.recipe.Links...)
	seq := c.issueSeq(fieldLinks)
	c.mu.Unlock()

	updated, err := c.gateway.UpdateLinks(ctx, recipeID, snapshot)
	if err != nil {
		c.reconcileAfterFailure(ctx, op, err)
		return fmt.Errorf("%s: %w", op, err)
	}

	c.mu.Lock()
	if c.isLatest(fieldLinks, seq) {
		c.recipe.Links = updated.Links
	}
	c.mu.Unlock()

	return nil
}
