package recipeclip

// Document represents a parsed recipe page. It is the boundary between the
// extraction core and the HTML parsing layer: extractors only ever see an
// already-parsed, read-only document.
type Document interface {
	// StructuredDataBlocks returns the raw text payload of every embedded
	// structured-data block (JSON-LD script element) in document order.
	// Payloads are returned as-is; decoding is the extractor's concern.
	StructuredDataBlocks() []string

	// SelectTexts returns the trimmed text content of every element matching
	// the CSS selector, in document order. Returns an empty slice when
	// nothing matches.
	SelectTexts(selector string) []string
}
