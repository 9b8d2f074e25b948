package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"recipekeep/internal/logger"
	"recipekeep/models"
)

// recipeRepository is the PostgreSQL-backed implementation of
// [RecipeRepository]. All recipe CRUD runs against the "recipes" table using
// the embedded [*DB] connection; array-typed fields are stored as JSONB.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so database interactions are traced with structured
// fields (recipe id, operation).
type recipeRepository struct {
	*DB
	logger *logger.Logger
}

// NewRecipeRepository constructs a [RecipeRepository] backed by the provided
// database connection and logger.
func NewRecipeRepository(db *DB, logger *logger.Logger) RecipeRepository {
	return &recipeRepository{
		DB:     db,
		logger: logger,
	}
}

// GetByID retrieves one recipe. Returns [ErrRecipeNotFound] when no row
// matches, [ErrStoreUnavailable] when the database cannot be reached.
func (r *recipeRepository) GetByID(ctx context.Context, id int64) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, getRecipeByID, id)

	recipe, err := scanRecipe(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Recipe{}, ErrRecipeNotFound
		}
		log.Err(err).
			Str("func", "recipeRepository.GetByID").
			Int64("recipe_id", id).
			Msg("failed to query recipe")
		return models.Recipe{}, r.classify(fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}

	return recipe, nil
}

// GetAll retrieves every recipe, newest first. Returns an empty slice when
// the table is empty.
func (r *recipeRepository) GetAll(ctx context.Context) ([]models.Recipe, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := r.DB.QueryContext(ctx, getAllRecipes)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "recipeRepository.GetAll").
			Msg("failed to execute query for getting all recipes")
		return nil, r.classify(fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr))
	}
	defer rows.Close()

	recipes := make([]models.Recipe, 0, 50)

	for rows.Next() {
		recipe, scanErr := scanRecipe(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "recipeRepository.GetAll").
				Msg("failed to scan recipe row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		recipes = append(recipes, recipe)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "recipeRepository.GetAll").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return recipes, nil
}

// Create inserts a new recipe and returns the stored row.
func (r *recipeRepository) Create(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	ingredients, links, photos, err := marshalArrayFields(recipe)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.DB.QueryRowContext(ctx, createRecipe,
		recipe.ID,
		recipe.Name,
		recipe.ImagePath,
		recipe.Date,
		ratingArg(recipe.Rating),
		recipe.RecipeText,
		ingredients,
		links,
		photos,
	)

	saved, err := scanRecipe(row)
	if err != nil {
		log.Err(err).
			Str("func", "recipeRepository.Create").
			Int64("recipe_id", recipe.ID).
			Msg("failed to insert recipe")
		return models.Recipe{}, r.classify(fmt.Errorf("%w: %w", ErrExecutingStatement, err))
	}

	return saved, nil
}

// UpdateFields performs a partial update restricted to the non-nil fields of
// update and returns the post-write row. The per-field endpoints rely on
// this method never touching a field their request does not own.
func (r *recipeRepository) UpdateFields(ctx context.Context, id int64, update models.RecipeUpdate) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	query, args, err := buildRecipeUpdateQuery(id, update)
	if err != nil {
		log.Err(err).
			Str("func", "recipeRepository.UpdateFields").
			Int64("recipe_id", id).
			Msg("failed to build update query")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.DB.QueryRowContext(ctx, query, args...)

	updated, err := scanRecipe(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Recipe{}, ErrRecipeNotFound
		}
		log.Err(err).
			Str("func", "recipeRepository.UpdateFields").
			Int64("recipe_id", id).
			Msg("failed to execute update")
		return models.Recipe{}, r.classify(fmt.Errorf("%w: %w", ErrExecutingStatement, err))
	}

	return updated, nil
}

// Delete removes one recipe. Returns [ErrRecipeNotFound] when no row was
// affected.
func (r *recipeRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteRecipe, id)
	if err != nil {
		log.Err(err).
			Str("func", "recipeRepository.Delete").
			Int64("recipe_id", id).
			Msg("failed to delete recipe")
		return r.classify(fmt.Errorf("%w: %w", ErrExecutingStatement, err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRecipeNotFound
	}

	return nil
}

// buildRecipeUpdateQuery assembles the dynamic SET clause with squirrel.
// Only non-nil update fields appear in the statement.
func buildRecipeUpdateQuery(id int64, update models.RecipeUpdate) (string, []any, error) {
	builder := sq.Update("recipes").
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, name, image_path, date, rating, recipe_text, ingredients, links, photos")

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.ImagePath != nil {
		builder = builder.Set("image_path", *update.ImagePath)
	}
	if update.Date != nil {
		builder = builder.Set("date", *update.Date)
	}
	if update.Rating != nil {
		builder = builder.Set("rating", *update.Rating)
	}
	if update.RecipeText != nil {
		builder = builder.Set("recipe_text", *update.RecipeText)
	}
	if update.Ingredients != nil {
		data, err := json.Marshal(update.Ingredients)
		if err != nil {
			return "", nil, err
		}
		builder = builder.Set("ingredients", data)
	}
	if update.Links != nil {
		data, err := json.Marshal(update.Links)
		if err != nil {
			return "", nil, err
		}
		builder = builder.Set("links", data)
	}
	if update.Photos != nil {
		data, err := json.Marshal(update.Photos)
		if err != nil {
			return "", nil, err
		}
		builder = builder.Set("photos", data)
	}

	return builder.ToSql()
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecipe(row rowScanner) (models.Recipe, error) {
	var recipe models.Recipe
	var rating sql.NullFloat64
	var ingredients, links, photos []byte

	if err := row.Scan(
		&recipe.ID,
		&recipe.Name,
		&recipe.ImagePath,
		&recipe.Date,
		&rating,
		&recipe.RecipeText,
		&ingredients,
		&links,
		&photos,
	); err != nil {
		return models.Recipe{}, err
	}

	if rating.Valid {
		value := rating.Float64
		recipe.Rating = &value
	}

	var err error
	if recipe.Ingredients, err = models.NormalizeIngredients(ingredients); err != nil {
		return models.Recipe{}, err
	}
	if recipe.Links, err = models.NormalizeStrings(links); err != nil {
		return models.Recipe{}, err
	}
	if recipe.Photos, err = models.NormalizeStrings(photos); err != nil {
		return models.Recipe{}, err
	}

	return recipe, nil
}

func marshalArrayFields(recipe models.Recipe) (ingredients, links, photos []byte, err error) {
	if ingredients, err = json.Marshal(recipe.Ingredients); err != nil {
		return nil, nil, nil, err
	}
	if links, err = json.Marshal(recipe.Links); err != nil {
		return nil, nil, nil, err
	}
	if photos, err = json.Marshal(recipe.Photos); err != nil {
		return nil, nil, nil, err
	}
	return ingredients, links, photos, nil
}

func ratingArg(rating *float64) any {
	if rating == nil {
		return nil
	}
	return *rating
}
