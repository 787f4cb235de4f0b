package main

import (
	"fmt"

	"github.com/fwojciec/recipeclip"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	recipe, err := deps.Recipes.FindRecipeByID(deps.Ctx, c.ID)
	if err != nil {
		if recipeclip.ErrorCode(err) == recipeclip.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: recipe %q not found. Use 'recipeclip list' to see saved recipes.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", recipeclip.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprint(deps.Stdout, recipeclip.FormatRecipe(recipe))
	return nil
}
