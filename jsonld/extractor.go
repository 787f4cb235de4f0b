// Package jsonld extracts schema.org Recipe data from JSON-LD blocks
// embedded in recipe pages.
package jsonld

import (
	"encoding/json"

	"github.com/fwojciec/recipeclip"
)

// Ensure Extractor implements recipeclip.Extractor at compile time.
var _ recipeclip.Extractor = (*Extractor)(nil)

// Extractor scans a document's structured-data blocks for the first
// Recipe-typed JSON-LD object and normalizes it.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract scans structured-data blocks in document order. Blocks that fail
// to decode are skipped; malformed JSON-LD is common on real pages. The
// first Recipe-typed object wins, across both blocks and item order.
func (e *Extractor) Extract(doc recipeclip.Document, sourceURL string) (*recipeclip.Recipe, error) {
	for _, block := range doc.StructuredDataBlocks() {
		var payload any
		if err := json.Unmarshal([]byte(block), &payload); err != nil {
			continue
		}

		if obj := findRecipe(payload); obj != nil {
			recipe := Normalize(obj)
			recipe.SourceURL = sourceURL
			return recipe, nil
		}
	}

	return nil, recipeclip.Errorf(recipeclip.ENOTFOUND, "no recipe structured data found")
}

// findRecipe locates the first Recipe-typed object in a decoded JSON-LD
// value. A value wrapped in an @graph container is unwrapped to its item
// list before type inspection.
func findRecipe(v any) map[string]any {
	switch val := v.(type) {
	case map[string]any:
		if graph, ok := val["@graph"].([]any); ok {
			return findRecipeInList(graph)
		}
		if isRecipeType(val["@type"]) {
			return val
		}
	case []any:
		return findRecipeInList(val)
	}
	return nil
}

// findRecipeInList returns the first list item whose declared type is Recipe.
func findRecipeInList(items []any) map[string]any {
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if isRecipeType(obj["@type"]) {
			return obj
		}
	}
	return nil
}

// isRecipeType reports whether a JSON-LD @type value declares a Recipe.
// The value may be a single string or a list of strings.
func isRecipeType(v any) bool {
	switch t := v.(type) {
	case string:
		return t == "Recipe"
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok && s == "Recipe" {
				return true
			}
		}
	}
	return false
}
