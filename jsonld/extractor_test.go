package jsonld_test

import (
	"testing"

	"github.com/fwojciec/recipeclip"
	"github.com/fwojciec/recipeclip/jsonld"
	"github.com/fwojciec/recipeclip/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// docWithBlocks builds a mock document serving the given JSON-LD payloads.
func docWithBlocks(blocks ...string) *mock.Document {
	return &mock.Document{
		StructuredDataBlocksFn: func() []string { return blocks },
	}
}

func TestExtractor_ExtractsRecipeBlock(t *testing.T) {
	t.Parallel()

	block := `{
		"@context": "https://schema.org",
		"@type": "Recipe",
		"name": "Potato Leek Soup",
		"recipeIngredient": ["2 leeks", "3 potatoes", "1l vegetable stock"],
		"recipeInstructions": ["Chop the leeks.", "Simmer everything in stock."]
	}`

	ext := jsonld.NewExtractor()
	recipe, err := ext.Extract(docWithBlocks(block), "https://example.com/soup")

	require.NoError(t, err)
	assert.Equal(t, "Potato Leek Soup", recipe.Title)
	assert.Equal(t, "https://example.com/soup", recipe.SourceURL)
	assert.Equal(t, []string{"2 leeks", "3 potatoes", "1l vegetable stock"}, recipe.Ingredients)
	assert.Equal(t, []string{"Chop the leeks.", "Simmer everything in stock."}, recipe.Instructions)
}

func TestExtractor_UnwrapsGraphContainer(t *testing.T) {
	t.Parallel()

	block := `{
		"@context": "https://schema.org",
		"@graph": [
			{"@type": "WebSite", "name": "Example Cooking"},
			{"@type": "BreadcrumbList"},
			{"@type": "Recipe", "name": "Shakshuka", "recipeIngredient": ["6 eggs"]},
			{"@type": "Recipe", "name": "Should Not Win"}
		]
	}`

	ext := jsonld.NewExtractor()
	recipe, err := ext.Extract(docWithBlocks(block), "https://example.com")

	require.NoError(t, err)
	assert.Equal(t, "Shakshuka", recipe.Title)
	assert.Equal(t, []string{"6 eggs"}, recipe.Ingredients)
}

func TestExtractor_AcceptsTopLevelArray(t *testing.T) {
	t.Parallel()

	block := `[
		{"@type": "NewsArticle", "name": "Not a recipe"},
		{"@type": "Recipe", "name": "Focaccia"}
	]`

	ext := jsonld.NewExtractor()
	recipe, err := ext.Extract(docWithBlocks(block), "https://example.com")

	require.NoError(t, err)
	assert.Equal(t, "Focaccia", recipe.Title)
}

func TestExtractor_AcceptsTypeList(t *testing.T) {
	t.Parallel()

	block := `{"@type": ["Recipe", "NewsArticle"], "name": "Carbonara"}`

	ext := jsonld.NewExtractor()
	recipe, err := ext.Extract(docWithBlocks(block), "https://example.com")

	require.NoError(t, err)
	assert.Equal(t, "Carbonara", recipe.Title)
}

func TestExtractor_SkipsMalformedBlock(t *testing.T) {
	t.Parallel()

	malformed := `{"@type": "Recipe", "name": "Broken"` // unterminated
	valid := `{"@type": "Recipe", "name": "Survivor"}`

	ext := jsonld.NewExtractor()
	recipe, err := ext.Extract(docWithBlocks(malformed, valid), "https://example.com")

	require.NoError(t, err)
	assert.Equal(t, "Survivor", recipe.Title)
}

func TestExtractor_FirstBlockWins(t *testing.T) {
	t.Parallel()

	first := `{"@type": "Recipe", "name": "First"}`
	second := `{"@type": "Recipe", "name": "Second"}`

	ext := jsonld.NewExtractor()
	recipe, err := ext.Extract(docWithBlocks(first, second), "https://example.com")

	require.NoError(t, err)
	assert.Equal(t, "First", recipe.Title)
}

func TestExtractor_NoRecipeTypedBlock(t *testing.T) {
	t.Parallel()

	block := `{"@type": "NewsArticle", "name": "Just an article"}`

	ext := jsonld.NewExtractor()
	_, err := ext.Extract(docWithBlocks(block), "https://example.com")

	assert.Equal(t, recipeclip.ENOTFOUND, recipeclip.ErrorCode(err))
}

func TestExtractor_NoBlocksAtAll(t *testing.T) {
	t.Parallel()

	ext := jsonld.NewExtractor()
	_, err := ext.Extract(docWithBlocks(), "https://example.com")

	assert.Equal(t, recipeclip.ENOTFOUND, recipeclip.ErrorCode(err))
}

func TestExtractor_Idempotent(t *testing.T) {
	t.Parallel()

	block := `{"@type": "Recipe", "name": "Stable", "recipeInstructions": ["Mix.", "Bake."]}`
	doc := docWithBlocks(block)

	ext := jsonld.NewExtractor()
	first, err := ext.Extract(doc, "https://example.com")
	require.NoError(t, err)
	second, err := ext.Extract(doc, "https://example.com")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
