package main

import (
	"fmt"

	"github.com/fwojciec/recipeclip"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	recipes, err := deps.Recipes.FindRecipes(deps.Ctx, recipeclip.RecipeFilter{SortBy: recipeclip.SortByTitle})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", recipeclip.ErrorMessage(err))
		return err
	}

	if len(recipes) == 0 {
		fmt.Fprintln(deps.Stdout, "No recipes saved. Use 'recipeclip clip' to save one.")
		return nil
	}

	for _, r := range recipes {
		if err := deps.Writer.WriteRecipe(deps.Ctx, r); err != nil {
			fmt.Fprintf(deps.Stderr, "error exporting %q: %s\n", r.Title, recipeclip.ErrorMessage(err))
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "Exported %d recipes to %s\n", len(recipes), c.Dir)
	return nil
}
