// Package gemini answers questions about saved recipes using Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/recipeclip"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Ensure Asker implements recipeclip.Asker at compile time.
var _ recipeclip.Asker = (*Asker)(nil)

// Asker implements recipeclip.Asker using Google Gemini.
type Asker struct {
	client  *genai.Client
	recipes recipeclip.RecipeService
}

// NewAsker creates a new Asker.
func NewAsker(client *genai.Client, recipes recipeclip.RecipeService) *Asker {
	return &Asker{client: client, recipes: recipes}
}

// Ask answers a natural language question about the saved recipes.
func (a *Asker) Ask(ctx context.Context, question string) (string, error) {
	if question == "" {
		return "", recipeclip.Errorf(recipeclip.EINVALID, "question required")
	}

	recipes, err := a.recipes.FindRecipes(ctx, recipeclip.RecipeFilter{})
	if err != nil {
		return "", err
	}
	if len(recipes) == 0 {
		return "", recipeclip.Errorf(recipeclip.ENOTFOUND, "no recipes saved yet")
	}

	prompt := BuildUserPrompt(recipes, question)
	config := BuildConfig()

	result, err := a.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", recipeclip.Errorf(recipeclip.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a helpful cooking assistant answering questions about the user's saved recipes. Answer based only on the recipes provided. If the answer is not in the recipes, say so.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing the recipes and question.
func BuildUserPrompt(recipes []*recipeclip.Recipe, question string) string {
	var sb strings.Builder
	sb.WriteString("<recipes>\n")
	for i, r := range recipes {
		sb.WriteString("<recipe>\n")
		fmt.Fprintf(&sb, "<index>%d</index>\n", i+1)
		fmt.Fprintf(&sb, "<title>%s</title>\n", r.Title)
		fmt.Fprintf(&sb, "<source>%s</source>\n", r.SourceURL)
		fmt.Fprintf(&sb, "<content>%s</content>\n", recipeclip.FormatRecipe(r))
		sb.WriteString("</recipe>\n")
	}
	sb.WriteString("</recipes>\n\n")
	fmt.Fprintf(&sb, "Question: %s", question)
	return sb.String()
}
