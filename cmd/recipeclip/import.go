package main

import (
	"fmt"
	"regexp"

	"github.com/fwojciec/recipeclip"
	"github.com/fwojciec/recipeclip/clip"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	// Compile filters to URLFilter (validates regex patterns early)
	var urlFilter *recipeclip.URLFilter
	if len(c.Filter) > 0 {
		urlFilter = &recipeclip.URLFilter{}
		for _, pattern := range c.Filter {
			re, err := regexp.Compile(pattern)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: invalid filter pattern %q: %v\n", pattern, err)
				return err
			}
			urlFilter.Include = append(urlFilter.Include, re)
		}
	}

	urls, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, c.URL, urlFilter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", recipeclip.ErrorMessage(err))
		return err
	}

	if len(urls) == 0 {
		fmt.Fprintln(deps.Stdout, "No URLs found. The site may not publish a sitemap.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Found %d URLs\n", len(urls))

	progress := func(event clip.ProgressEvent) {
		if event.Outcome == clip.OutcomeFailed {
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.URL, event.Err)
		}
	}

	result, err := deps.Clipper.ClipAll(deps.Ctx, urls, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error importing: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d recipes (%d duplicates, %d pages without recipes, %d failed)\n",
		result.Saved, result.Duplicates, result.NotFound, result.Failed)
	return nil
}
