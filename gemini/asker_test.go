package gemini_test

import (
	"context"
	"testing"

	"github.com/fwojciec/recipeclip"
	"github.com/fwojciec/recipeclip/gemini"
	"github.com/fwojciec/recipeclip/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsker_Ask_ReturnsErrorWhenQuestionEmpty(t *testing.T) {
	t.Parallel()

	asker := gemini.NewAsker(nil, nil) // nil client ok for this test

	_, err := asker.Ask(context.Background(), "")

	require.Error(t, err)
	assert.Equal(t, recipeclip.EINVALID, recipeclip.ErrorCode(err))
	assert.Contains(t, recipeclip.ErrorMessage(err), "question required")
}

func TestAsker_Ask_ReturnsErrorWhenNoRecipes(t *testing.T) {
	t.Parallel()

	recipes := &mock.RecipeService{
		FindRecipesFn: func(context.Context, recipeclip.RecipeFilter) ([]*recipeclip.Recipe, error) {
			return []*recipeclip.Recipe{}, nil
		},
	}

	asker := gemini.NewAsker(nil, recipes)

	_, err := asker.Ask(context.Background(), "what can I make with leeks?")

	require.Error(t, err)
	assert.Equal(t, recipeclip.ENOTFOUND, recipeclip.ErrorCode(err))
	assert.Contains(t, recipeclip.ErrorMessage(err), "no recipes")
}

func TestAsker_Ask_PropagatesRecipeServiceError(t *testing.T) {
	t.Parallel()

	expectedErr := recipeclip.Errorf(recipeclip.EINTERNAL, "database error")
	recipes := &mock.RecipeService{
		FindRecipesFn: func(context.Context, recipeclip.RecipeFilter) ([]*recipeclip.Recipe, error) {
			return nil, expectedErr
		},
	}

	asker := gemini.NewAsker(nil, recipes)

	_, err := asker.Ask(context.Background(), "what can I make with leeks?")

	require.Error(t, err)
	assert.Equal(t, recipeclip.EINTERNAL, recipeclip.ErrorCode(err))
}

func TestBuildUserPrompt_IncludesRecipesAndQuestion(t *testing.T) {
	t.Parallel()

	recipes := []*recipeclip.Recipe{
		{
			Title:       "Leek Soup",
			SourceURL:   "https://example.com/leek-soup",
			Ingredients: []string{"2 leeks"},
		},
		{
			Title:     "Shakshuka",
			SourceURL: "https://example.com/shakshuka",
		},
	}

	prompt := gemini.BuildUserPrompt(recipes, "what can I make with leeks?")

	assert.Contains(t, prompt, "<title>Leek Soup</title>")
	assert.Contains(t, prompt, "<title>Shakshuka</title>")
	assert.Contains(t, prompt, "- 2 leeks")
	assert.Contains(t, prompt, "<source>https://example.com/leek-soup</source>")
	assert.Contains(t, prompt, "Question: what can I make with leeks?")
}

func TestBuildConfig_SetsSystemInstruction(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.SystemInstruction)
	require.NotEmpty(t, config.SystemInstruction.Parts)
	assert.Contains(t, config.SystemInstruction.Parts[0].Text, "cooking assistant")
	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.4, float64(*config.Temperature), 0.001)
}
