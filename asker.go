package recipeclip

import "context"

// Asker answers natural language questions about saved recipes.
type Asker interface {
	// Ask answers a question using the saved recipes as context.
	// Returns ENOTFOUND if no recipes have been saved yet.
	Ask(ctx context.Context, question string) (string, error)
}
