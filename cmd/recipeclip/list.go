package main

import (
	"fmt"

	"github.com/fwojciec/recipeclip"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := recipeclip.RecipeFilter{SortBy: recipeclip.SortByClippedAt}
	if c.Sort == "title" {
		filter.SortBy = recipeclip.SortByTitle
	}
	if c.Title != "" {
		filter.Title = &c.Title
	}

	recipes, err := deps.Recipes.FindRecipes(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", recipeclip.ErrorMessage(err))
		return err
	}

	if len(recipes) == 0 {
		fmt.Fprintln(deps.Stdout, "No recipes saved. Use 'recipeclip clip' to save one.")
		return nil
	}

	for _, r := range recipes {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", r.ID, r.Title, r.SourceURL)
	}

	return nil
}
