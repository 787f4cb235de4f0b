package recipeclip

// Extractor extracts a recipe from a parsed page.
type Extractor interface {
	// Extract scans the document and returns the recipe it describes.
	// The source URL is available for site-specific handling; the document
	// alone determines the result for the bundled extractors.
	// Returns ENOTFOUND if the document contains no usable recipe data.
	Extract(doc Document, sourceURL string) (*Recipe, error)
}

// Extractors composes multiple extractors into a fallback chain.
// Each extractor is tried in order; an ENOTFOUND result moves on to the
// next, any other error aborts. The zero-length chain reports ENOTFOUND.
type Extractors []Extractor

var _ Extractor = (Extractors)(nil)

// Extract returns the first extractor's result, falling through on ENOTFOUND.
func (e Extractors) Extract(doc Document, sourceURL string) (*Recipe, error) {
	for _, extractor := range e {
		recipe, err := extractor.Extract(doc, sourceURL)
		if err != nil {
			if ErrorCode(err) == ENOTFOUND {
				continue
			}
			return nil, err
		}
		return recipe, nil
	}
	return nil, Errorf(ENOTFOUND, "no recipe data found")
}
