package main

import (
	"fmt"

	"github.com/fwojciec/recipeclip"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	answer, err := deps.Asker.Ask(deps.Ctx, c.Question)
	if err != nil {
		if recipeclip.ErrorCode(err) == recipeclip.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: no recipes saved yet. Use 'recipeclip clip' to save one first.\n")
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", recipeclip.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}
