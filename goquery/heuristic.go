package goquery

import "github.com/fwojciec/recipeclip"

// Ensure HeuristicExtractor implements recipeclip.Extractor at compile time.
var _ recipeclip.Extractor = (*HeuristicExtractor)(nil)

// Candidate selectors per field, most specific first. The first selector
// that matches at least one element wins for its field; lower-priority
// selectors are then ignored.
var (
	titleSelectors = []string{
		"[itemprop='name']",
		".recipe-title",
		"h1.entry-title",
		"h1",
	}

	ingredientSelectors = []string{
		"[itemprop='recipeIngredient']",
		"[itemprop='ingredients']",
		".recipe-ingredients li",
		".ingredients li",
		"ul.ingredients li",
	}

	instructionSelectors = []string{
		"[itemprop='recipeInstructions']",
		".recipe-instructions li",
		".instructions li",
		".directions li",
		"ol.instructions li",
	}
)

// HeuristicExtractor assembles a recipe from common visual markup patterns.
// It is the fallback for pages that carry no structured data.
type HeuristicExtractor struct{}

// NewHeuristicExtractor creates a new HeuristicExtractor.
func NewHeuristicExtractor() *HeuristicExtractor {
	return &HeuristicExtractor{}
}

// Extract scans the document with each field's selector priority list.
// A result is returned only when the title is non-empty and at least one
// of ingredients or instructions matched; anything less reports ENOTFOUND.
func (e *HeuristicExtractor) Extract(doc recipeclip.Document, sourceURL string) (*recipeclip.Recipe, error) {
	var title string
	if texts := firstMatch(doc, titleSelectors); len(texts) > 0 {
		title = texts[0]
	}

	ingredients := firstMatch(doc, ingredientSelectors)
	instructions := firstMatch(doc, instructionSelectors)

	if title == "" || (len(ingredients) == 0 && len(instructions) == 0) {
		return nil, recipeclip.Errorf(recipeclip.ENOTFOUND, "no recipe markup found")
	}

	return &recipeclip.Recipe{
		SourceURL:    sourceURL,
		Title:        title,
		Ingredients:  ingredients,
		Instructions: instructions,
	}, nil
}

// firstMatch returns the matched texts of the first selector in the
// priority list that matches at least one element.
func firstMatch(doc recipeclip.Document, selectors []string) []string {
	for _, selector := range selectors {
		if texts := doc.SelectTexts(selector); len(texts) > 0 {
			return texts
		}
	}
	return nil
}
