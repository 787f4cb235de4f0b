package jsonld

import (
	"regexp"
	"strings"

	"github.com/fwojciec/recipeclip"
	"golang.org/x/net/html"
)

// Normalize converts a loosely-typed schema.org Recipe object into the
// canonical Recipe form. It never fails: missing or unexpectedly shaped
// fields degrade to defaults or empty values.
func Normalize(obj map[string]any) *recipeclip.Recipe {
	return &recipeclip.Recipe{
		Title:        normalizeTitle(obj["name"]),
		Description:  stringValue(obj["description"]),
		Ingredients:  normalizeIngredients(obj["recipeIngredient"]),
		Instructions: normalizeInstructions(obj["recipeInstructions"]),
	}
}

// normalizeTitle reads the name field, defaulting when absent or empty.
func normalizeTitle(v any) string {
	if title := strings.TrimSpace(stringValue(v)); title != "" {
		return title
	}
	return recipeclip.DefaultTitle
}

// normalizeIngredients accepts a single string or a list of strings.
// Anything else is treated as absent.
func normalizeIngredients(v any) []string {
	var ingredients []string

	appendIngredient := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			ingredients = append(ingredients, s)
		}
	}

	switch val := v.(type) {
	case string:
		appendIngredient(val)
	case []any:
		for _, item := range val {
			if s, ok := item.(string); ok {
				appendIngredient(s)
			}
		}
	}

	return ingredients
}

// instructionKind tags the recognized shapes of a recipeInstructions item.
// Publishers emit plain strings, HowToStep objects, and HowToSection
// groupings; anything else is Unrecognized and dropped.
type instructionKind int

const (
	kindPlain instructionKind = iota
	kindStep
	kindSection
	kindUnrecognized
)

// instruction is one decoded recipeInstructions list item.
type instruction struct {
	kind  instructionKind
	text  string   // kindPlain, kindStep
	steps []string // kindSection: nested step texts in order
}

// decodeInstruction classifies one list item into its instruction variant.
// For object items the text field wins over name, which wins over section
// expansion.
func decodeInstruction(v any) instruction {
	switch item := v.(type) {
	case string:
		return instruction{kind: kindPlain, text: item}
	case map[string]any:
		if text := stringValue(item["text"]); text != "" {
			return instruction{kind: kindStep, text: text}
		}
		if name := stringValue(item["name"]); name != "" {
			return instruction{kind: kindStep, text: name}
		}
		if isSectionType(item["@type"]) {
			return instruction{kind: kindSection, steps: sectionSteps(item)}
		}
	}
	return instruction{kind: kindUnrecognized}
}

// resolve returns the instruction's display text, or "" if it yields nothing.
func (in instruction) resolve() string {
	switch in.kind {
	case kindPlain, kindStep:
		return in.text
	case kindSection:
		return strings.Join(in.steps, " ")
	}
	return ""
}

// normalizeInstructions handles the three legal shapes of
// recipeInstructions: a single text blob split into sentences, a list of
// items resolved independently, or absent.
func normalizeInstructions(v any) []string {
	var instructions []string

	appendStep := func(s string) {
		if s = cleanText(s); s != "" {
			instructions = append(instructions, s)
		}
	}

	switch val := v.(type) {
	case string:
		for _, step := range splitSteps(val) {
			appendStep(step)
		}
	case []any:
		for _, item := range val {
			appendStep(decodeInstruction(item).resolve())
		}
	}

	return instructions
}

// isSectionType reports whether a JSON-LD @type value declares a HowToSection.
func isSectionType(v any) bool {
	switch t := v.(type) {
	case string:
		return t == "HowToSection"
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok && s == "HowToSection" {
				return true
			}
		}
	}
	return false
}

// sectionSteps collects the text of a section's nested step items in order.
// Each step yields its text field, else its name field, else nothing.
func sectionSteps(section map[string]any) []string {
	items, ok := section["itemListElement"].([]any)
	if !ok {
		return nil
	}

	var steps []string
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if text := stringValue(obj["text"]); text != "" {
			steps = append(steps, text)
		} else if name := stringValue(obj["name"]); name != "" {
			steps = append(steps, name)
		}
	}
	return steps
}

// sentenceBoundary matches step boundaries in a single-string instruction
// blob: sentence-ending punctuation followed by whitespace, or a blank line.
// Abbreviations like "approx. 5 min" will over-split.
var sentenceBoundary = regexp.MustCompile(`[.!?]\s+|\n[ \t]*\n`)

// splitSteps splits an instruction blob into steps, dropping empty fragments.
// Sentence-ending punctuation stays with its step.
func splitSteps(text string) []string {
	var steps []string
	start := 0

	appendStep := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			steps = append(steps, s)
		}
	}

	for _, loc := range sentenceBoundary.FindAllStringIndex(text, -1) {
		end := loc[0]
		if c := text[loc[0]]; c == '.' || c == '!' || c == '?' {
			end = loc[0] + 1
		}
		appendStep(text[start:end])
		start = loc[1]
	}
	appendStep(text[start:])

	return steps
}

// whitespaceRun matches any run of whitespace, including newlines.
var whitespaceRun = regexp.MustCompile(`\s+`)

// cleanText strips markup tags, collapses whitespace runs to single spaces,
// and trims the result.
func cleanText(s string) string {
	s = stripTags(s)
	s = whitespaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// stripTags removes HTML markup from a string, keeping text content.
// Entities are decoded in the process.
func stripTags(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}

	tokenizer := html.NewTokenizer(strings.NewReader(s))
	var sb strings.Builder
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return sb.String()
		case html.TextToken:
			sb.Write(tokenizer.Text())
		}
	}
}

// stringValue returns v as a string, or "" if it is not one.
func stringValue(v any) string {
	s, _ := v.(string)
	return s
}
