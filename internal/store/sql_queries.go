package store

const (
	getRecipeByID = `
		SELECT
			id,
			name,
			image_path,
			date,
			rating,
			recipe_text,
			ingredients,
			links,
			photos
		FROM recipes
		WHERE id = $1;`

	getAllRecipes = `
		SELECT
			id,
			name,
			image_path,
			date,
			rating,
			recipe_text,
			ingredients,
			links,
			photos
		FROM recipes
		ORDER BY id DESC;`

	createRecipe = `
		INSERT INTO recipes (
			id,
			name,
			image_path,
			date,
			rating,
			recipe_text,
			ingredients,
			links,
			photos
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, name, image_path, date, rating, recipe_text, ingredients, links, photos;`

	deleteRecipe = `
		DELETE FROM recipes
		WHERE id = $1;`
)
