package recipeclip

import (
	"context"
	"time"
)

// DefaultTitle is used when a recipe's structured data carries no name.
const DefaultTitle = "Untitled Recipe"

// Recipe represents a recipe clipped from a web page.
//
// Title, Description, Ingredients and Instructions are filled by extraction;
// ID, ContentHash and ClippedAt are assigned by the store on save.
type Recipe struct {
	ID           string    `json:"id"`
	SourceURL    string    `json:"sourceUrl"`
	Title        string    `json:"title"`
	Description  string    `json:"description"` // Markdown
	Ingredients  []string  `json:"ingredients"`
	Instructions []string  `json:"instructions"`
	ContentHash  string    `json:"contentHash"`
	ClippedAt    time.Time `json:"clippedAt"`
}

// Validate returns an error if the recipe contains invalid fields.
func (r *Recipe) Validate() error {
	if r.Title == "" {
		return Errorf(EINVALID, "recipe title required")
	}
	if r.SourceURL == "" {
		return Errorf(EINVALID, "recipe source URL required")
	}
	return nil
}

// RecipeService represents a service for managing saved recipes.
type RecipeService interface {
	// CreateRecipe saves a new recipe.
	// Returns ECONFLICT if a recipe with identical content is already saved.
	CreateRecipe(ctx context.Context, recipe *Recipe) error

	// FindRecipeByID retrieves a recipe by ID.
	// Returns ENOTFOUND if the recipe does not exist.
	FindRecipeByID(ctx context.Context, id string) (*Recipe, error)

	// FindRecipes retrieves recipes matching the filter.
	FindRecipes(ctx context.Context, filter RecipeFilter) ([]*Recipe, error)

	// DeleteRecipe permanently removes a recipe.
	// Returns ENOTFOUND if the recipe does not exist.
	DeleteRecipe(ctx context.Context, id string) error
}

// SortOrder represents the sort order for recipe queries.
type SortOrder string

// SortOrder constants for RecipeFilter.
const (
	SortByClippedAt SortOrder = "clipped_at"
	SortByTitle     SortOrder = "title"
)

// RecipeFilter represents a filter for FindRecipes.
type RecipeFilter struct {
	ID        *string `json:"id"`
	SourceURL *string `json:"sourceUrl"`
	Title     *string `json:"title"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	SortBy SortOrder `json:"sortBy"`
}
