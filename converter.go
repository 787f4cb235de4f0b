package recipeclip

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// Recipe descriptions in structured data frequently carry embedded
	// HTML; conversion happens before a recipe is stored or displayed.
	Convert(html string) (string, error)
}
