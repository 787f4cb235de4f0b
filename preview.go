package recipeclip

// PagePreview holds the readable main content of a page, shown before a
// clip is committed.
type PagePreview struct {
	// Title is the page title extracted from metadata.
	Title string

	// Text is the main content as plain text, boilerplate removed.
	Text string
}

// Previewer extracts the readable main content of a page.
type Previewer interface {
	Preview(html string) (*PagePreview, error)
}
