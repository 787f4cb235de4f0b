package recipeclip

import "context"

// RecipeWriter persists recipes outside the recipe box, e.g. as files.
type RecipeWriter interface {
	WriteRecipe(ctx context.Context, recipe *Recipe) error
}
