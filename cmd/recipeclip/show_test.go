package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/recipeclip"
	main "github.com/fwojciec/recipeclip/cmd/recipeclip"
	"github.com/fwojciec/recipeclip/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("shows a formatted recipe", func(t *testing.T) {
		t.Parallel()

		recipes := &mock.RecipeService{
			FindRecipeByIDFn: func(_ context.Context, id string) (*recipeclip.Recipe, error) {
				assert.Equal(t, "recipe-1", id)
				return &recipeclip.Recipe{
					ID:           "recipe-1",
					Title:        "Carbonara",
					SourceURL:    "https://example.com/carbonara",
					Ingredients:  []string{"spaghetti", "guanciale"},
					Instructions: []string{"Boil the pasta.", "Fry the guanciale."},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  stderr,
			Recipes: recipes,
		}

		cmd := &main.ShowCmd{ID: "recipe-1"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "# Carbonara")
		assert.Contains(t, output, "- spaghetti")
		assert.Contains(t, output, "1. Boil the pasta.")
	})

	t.Run("reports missing recipe", func(t *testing.T) {
		t.Parallel()

		recipes := &mock.RecipeService{
			FindRecipeByIDFn: func(_ context.Context, id string) (*recipeclip.Recipe, error) {
				return nil, recipeclip.Errorf(recipeclip.ENOTFOUND, "recipe not found")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  stderr,
			Recipes: recipes,
		}

		cmd := &main.ShowCmd{ID: "missing"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "not found")
		assert.Empty(t, stdout.String())
	})
}
