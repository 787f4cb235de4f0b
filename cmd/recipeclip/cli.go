package main

import (
	"context"
	"io"

	"github.com/fwojciec/recipeclip"
	"github.com/fwojciec/recipeclip/clip"
	"github.com/fwojciec/recipeclip/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Recipes   recipeclip.RecipeService
	Sitemaps  recipeclip.SitemapService
	Clipper   *clip.Clipper
	Previewer recipeclip.Previewer
	Writer    recipeclip.RecipeWriter
	Asker     recipeclip.Asker
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Clip   ClipCmd   `cmd:"" help:"Clip a recipe from a URL"`
	Import ImportCmd `cmd:"" help:"Bulk import recipes from a site's sitemap"`
	List   ListCmd   `cmd:"" help:"List saved recipes"`
	Show   ShowCmd   `cmd:"" help:"Show a saved recipe"`
	Delete DeleteCmd `cmd:"" help:"Delete a saved recipe"`
	Export ExportCmd `cmd:"" help:"Export saved recipes as markdown files"`
	Ask    AskCmd    `cmd:"" help:"Ask a question about your saved recipes"`

	Verbose bool `short:"v" help:"Enable debug logging"`
}

// ClipCmd is the "clip" subcommand.
type ClipCmd struct {
	URL     string `arg:"" help:"Recipe page URL"`
	Render  bool   `short:"r" help:"Render the page in a headless browser before extracting"`
	Preview bool   `short:"p" help:"Show the readable page content without saving"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	URL         string   `arg:"" help:"Site URL to discover recipe pages from"`
	Filter      []string `short:"F" name:"filter" help:"Filter URLs by regex (repeatable)"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent fetch limit"`
	Rate        float64  `default:"1" help:"Requests per second per domain"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Title string `short:"t" help:"Filter by title substring"`
	Sort  string `enum:"clipped,title" default:"clipped" help:"Sort order (clipped or title)"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Recipe ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Recipe ID"`
	Force bool   `help:"Confirm deletion"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir string `arg:"" help:"Directory to write markdown files to"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question string `arg:"" help:"Question to ask about your saved recipes"`
}
