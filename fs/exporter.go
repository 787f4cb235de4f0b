// Package fs writes recipes as markdown files.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/recipeclip"
)

// Ensure Exporter implements recipeclip.RecipeWriter at compile time.
var _ recipeclip.RecipeWriter = (*Exporter)(nil)

// Exporter writes recipes as markdown files to a directory.
type Exporter struct {
	baseDir string
}

// NewExporter creates a new Exporter that writes to the given base directory.
func NewExporter(baseDir string) *Exporter {
	return &Exporter{baseDir: baseDir}
}

// WriteRecipe writes a recipe to disk as a markdown file.
func (e *Exporter) WriteRecipe(ctx context.Context, recipe *recipeclip.Recipe) error {
	if err := recipe.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(e.baseDir, 0755); err != nil {
		return err
	}

	fullPath := filepath.Join(e.baseDir, Filename(recipe))
	return os.WriteFile(fullPath, []byte(FormatRecipeFile(recipe)), 0644)
}

// Filename derives a stable markdown filename for a recipe. The title is
// slugified and the recipe ID is appended so same-titled recipes don't
// overwrite each other.
func Filename(recipe *recipeclip.Recipe) string {
	base := slugify(recipe.Title)
	if base == "" {
		base = "recipe"
	}
	if id := shortID(recipe.ID); id != "" {
		base += "-" + id
	}
	return base + ".md"
}

// FormatRecipeFile formats a recipe with YAML frontmatter.
func FormatRecipeFile(recipe *recipeclip.Recipe) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(recipe.SourceURL)
	b.WriteString("\ntitle: ")
	b.WriteString(recipe.Title)
	b.WriteString("\nclipped: ")
	b.WriteString(recipe.ClippedAt.Format("2006-01-02"))
	b.WriteString("\n---\n")

	if recipe.Description != "" {
		b.WriteString("\n")
		b.WriteString(recipe.Description)
		b.WriteString("\n")
	}

	if len(recipe.Ingredients) > 0 {
		b.WriteString("\n## Ingredients\n")
		for _, ing := range recipe.Ingredients {
			b.WriteString("- " + ing + "\n")
		}
	}

	if len(recipe.Instructions) > 0 {
		b.WriteString("\n## Instructions\n")
		for i, step := range recipe.Instructions {
			fmt.Fprintf(&b, "%d. %s\n", i+1, step)
		}
	}

	return b.String()
}

// slugify lowercases the title and replaces runs of non-alphanumeric
// characters with single hyphens.
func slugify(s string) string {
	var b strings.Builder
	lastHyphen := true // suppress leading hyphen
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// shortID returns the first 8 characters of an ID.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
