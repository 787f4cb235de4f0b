package recipeclip

import (
	"fmt"
	"strings"
)

// FormatRecipe formats a single recipe for terminal display.
// Ingredients are rendered as a bulleted list and instructions as
// numbered steps. Empty sections are omitted.
func FormatRecipe(r *Recipe) string {
	var sb strings.Builder

	sb.WriteString("# " + r.Title + "\n")
	if r.SourceURL != "" {
		sb.WriteString(r.SourceURL + "\n")
	}

	if r.Description != "" {
		sb.WriteString("\n" + r.Description + "\n")
	}

	if len(r.Ingredients) > 0 {
		sb.WriteString("\n## Ingredients\n")
		for _, ing := range r.Ingredients {
			sb.WriteString("- " + ing + "\n")
		}
	}

	if len(r.Instructions) > 0 {
		sb.WriteString("\n## Instructions\n")
		for i, step := range r.Instructions {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, step)
		}
	}

	return sb.String()
}

// FormatRecipes formats recipes for display or LLM context.
// Recipes are separated by blank lines.
func FormatRecipes(recipes []*Recipe) string {
	if len(recipes) == 0 {
		return ""
	}

	parts := make([]string, 0, len(recipes))
	for _, r := range recipes {
		parts = append(parts, FormatRecipe(r))
	}

	return strings.Join(parts, "\n\n")
}
