package mock

import (
	"context"

	"github.com/fwojciec/recipeclip"
)

var _ recipeclip.RecipeWriter = (*RecipeWriter)(nil)

// RecipeWriter is a mock implementation of recipeclip.RecipeWriter.
type RecipeWriter struct {
	WriteRecipeFn func(ctx context.Context, recipe *recipeclip.Recipe) error
}

func (w *RecipeWriter) WriteRecipe(ctx context.Context, recipe *recipeclip.Recipe) error {
	return w.WriteRecipeFn(ctx, recipe)
}
