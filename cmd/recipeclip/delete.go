package main

import (
	"fmt"

	"github.com/fwojciec/recipeclip"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return recipeclip.Errorf(recipeclip.EINVALID, "use --force to confirm deletion")
	}

	recipe, err := deps.Recipes.FindRecipeByID(deps.Ctx, c.ID)
	if err != nil {
		if recipeclip.ErrorCode(err) == recipeclip.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: recipe %q not found. Use 'recipeclip list' to see saved recipes.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", recipeclip.ErrorMessage(err))
		}
		return err
	}

	if err := deps.Recipes.DeleteRecipe(deps.Ctx, recipe.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", recipeclip.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted recipe %q\n", recipe.Title)
	return nil
}
