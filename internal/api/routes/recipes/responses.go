package recipes

import (
	"github.com/budget-bites/budgetbites/internal/recipe"
)

type ListRecipesResponse struct {
	Recipes []recipe.Recipe `json:"recipes"`
}

type ListLegacyRecipesResponse struct {
	Recipes []recipe.Legacy `json:"recipes"`
}

type CreateRecipeResponse struct {
	RecipeID string `json:"recipe_id"`
}

type ImportRecipesResponse struct {
	Imported int `json:"imported"`
}

type ListCategoriesResponse struct {
	Categories []recipe.Category `json:"categories"`
}
