package main

import (
	"fmt"

	"github.com/fwojciec/recipeclip"
)

// Run executes the clip command.
func (c *ClipCmd) Run(deps *Dependencies) error {
	// Preview mode: show the readable page content without saving
	if c.Preview {
		html, err := deps.Clipper.Fetcher.Fetch(deps.Ctx, c.URL)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", recipeclip.ErrorMessage(err))
			return err
		}

		preview, err := deps.Previewer.Preview(html)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", recipeclip.ErrorMessage(err))
			return err
		}

		if preview.Title != "" {
			fmt.Fprintf(deps.Stdout, "# %s\n\n", preview.Title)
		}
		fmt.Fprintln(deps.Stdout, preview.Text)
		return nil
	}

	recipe, err := deps.Clipper.ClipAndSave(deps.Ctx, c.URL)
	if err != nil {
		switch recipeclip.ErrorCode(err) {
		case recipeclip.ENOTFOUND:
			fmt.Fprintf(deps.Stderr, "error: no recipe found at %s. Try --render if the page requires JavaScript.\n", c.URL)
		case recipeclip.ECONFLICT:
			fmt.Fprintf(deps.Stderr, "error: this recipe is already saved\n")
		default:
			fmt.Fprintf(deps.Stderr, "error: %s\n", recipeclip.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Clipped %q (%s)\n", recipe.Title, recipe.ID)
	return nil
}
