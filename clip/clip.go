// Package clip orchestrates the fetch, extract and save pipeline for
// recipe pages, both for single URLs and for bulk imports.
package clip

import (
	"context"
	"net/url"
	"sync/atomic"

	"github.com/fwojciec/recipeclip"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of concurrent workers used by ClipAll
// when Clipper.Concurrency is not set.
const DefaultConcurrency = 4

// ParseFunc converts raw HTML into a queryable document.
type ParseFunc func(html string) (recipeclip.Document, error)

// SeenFilter tracks URLs that have already been processed. It is
// approximate: false positives skip a URL that was never clipped, which
// is acceptable for bulk imports.
type SeenFilter interface {
	Add(url string)
	Test(url string) bool
}

// Outcome classifies the result of clipping a single URL.
type Outcome int

const (
	OutcomeSaved Outcome = iota
	OutcomeDuplicate
	OutcomeNotFound
	OutcomeFailed
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeSaved:
		return "saved"
	case OutcomeDuplicate:
		return "duplicate"
	case OutcomeNotFound:
		return "not found"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ProgressEvent reports the outcome of a single URL during a bulk clip.
type ProgressEvent struct {
	URL       string
	Outcome   Outcome
	Err       error
	Completed int
	Total     int
}

// ProgressFunc is called after each URL completes during ClipAll.
// Implementations must be safe for concurrent use.
type ProgressFunc func(event ProgressEvent)

// Result summarizes a bulk clip run.
type Result struct {
	Saved      int
	Duplicates int
	NotFound   int
	Failed     int
}

// Total returns the number of URLs processed.
func (r *Result) Total() int {
	return r.Saved + r.Duplicates + r.NotFound + r.Failed
}

// Clipper runs the clip pipeline: fetch a page, extract a recipe from
// it, convert the description to markdown and save it to the recipe box.
type Clipper struct {
	Fetcher   recipeclip.Fetcher
	Parse     ParseFunc
	Extractor recipeclip.Extractor
	Converter recipeclip.Converter
	Recipes   recipeclip.RecipeService
	Limiter   recipeclip.DomainLimiter
	Seen      SeenFilter

	// Concurrency is the number of workers used by ClipAll.
	// Defaults to DefaultConcurrency if zero.
	Concurrency int
}

// ClipURL fetches and extracts a recipe from a single page. The recipe
// is returned without being saved so the caller can inspect it first.
func (c *Clipper) ClipURL(ctx context.Context, pageURL string) (*recipeclip.Recipe, error) {
	if c.Limiter != nil {
		if domain := domainOf(pageURL); domain != "" {
			if err := c.Limiter.Wait(ctx, domain); err != nil {
				return nil, err
			}
		}
	}

	html, err := c.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	doc, err := c.Parse(html)
	if err != nil {
		return nil, err
	}

	recipe, err := c.Extractor.Extract(doc, pageURL)
	if err != nil {
		return nil, err
	}

	c.convertDescription(recipe)
	return recipe, nil
}

// ClipAndSave clips a single page and saves the result to the recipe box.
func (c *Clipper) ClipAndSave(ctx context.Context, pageURL string) (*recipeclip.Recipe, error) {
	recipe, err := c.ClipURL(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	if err := c.Recipes.CreateRecipe(ctx, recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

// ClipAll clips a batch of URLs concurrently. URLs already recorded in
// the seen filter are skipped before workers start. Per-URL failures are
// counted rather than aborting the batch; only context cancellation
// stops the run early.
func (c *Clipper) ClipAll(ctx context.Context, urls []string, progress ProgressFunc) (*Result, error) {
	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	pending := make([]string, 0, len(urls))
	for _, pageURL := range urls {
		if c.Seen != nil {
			if c.Seen.Test(pageURL) {
				continue
			}
			c.Seen.Add(pageURL)
		}
		pending = append(pending, pageURL)
	}
	total := len(pending)

	var saved, duplicates, notFound, failed atomic.Int64
	var completed atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, pageURL := range pending {
		g.Go(func() error {
			outcome, err := c.clipOne(ctx, pageURL)

			switch outcome {
			case OutcomeSaved:
				saved.Add(1)
			case OutcomeDuplicate:
				duplicates.Add(1)
			case OutcomeNotFound:
				notFound.Add(1)
			case OutcomeFailed:
				failed.Add(1)
			}

			if progress != nil {
				progress(ProgressEvent{
					URL:       pageURL,
					Outcome:   outcome,
					Err:       err,
					Completed: int(completed.Add(1)),
					Total:     total,
				})
			}

			return ctx.Err()
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Result{
		Saved:      int(saved.Load()),
		Duplicates: int(duplicates.Load()),
		NotFound:   int(notFound.Load()),
		Failed:     int(failed.Load()),
	}, nil
}

// clipOne runs the pipeline for a single URL and classifies the result.
func (c *Clipper) clipOne(ctx context.Context, pageURL string) (Outcome, error) {
	if _, err := c.ClipAndSave(ctx, pageURL); err != nil {
		switch recipeclip.ErrorCode(err) {
		case recipeclip.ECONFLICT:
			return OutcomeDuplicate, err
		case recipeclip.ENOTFOUND:
			return OutcomeNotFound, err
		default:
			return OutcomeFailed, err
		}
	}
	return OutcomeSaved, nil
}

// convertDescription converts an HTML description to markdown in place.
// Conversion failures leave the original description untouched.
func (c *Clipper) convertDescription(recipe *recipeclip.Recipe) {
	if c.Converter == nil || recipe.Description == "" {
		return
	}
	if markdown, err := c.Converter.Convert(recipe.Description); err == nil {
		recipe.Description = markdown
	}
}

// domainOf extracts the hostname from a URL, or "" if it cannot be parsed.
func domainOf(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
