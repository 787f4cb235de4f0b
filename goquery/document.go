// Package goquery provides the HTML-parsing layer: a recipeclip.Document
// implementation backed by a parsed goquery document, and a heuristic
// extractor that scans visual markup when no structured data exists.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/recipeclip"
)

// Ensure Document implements recipeclip.Document at compile time.
var _ recipeclip.Document = (*Document)(nil)

// Document wraps a parsed HTML document. It is read-only after parsing and
// safe for concurrent extraction calls.
type Document struct {
	doc *goquery.Document
}

// ParseDocument parses raw HTML into a Document.
func ParseDocument(rawHTML string) (*Document, error) {
	if rawHTML == "" {
		return nil, recipeclip.Errorf(recipeclip.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, recipeclip.Errorf(recipeclip.EINVALID, "failed to parse HTML: %v", err)
	}

	return &Document{doc: doc}, nil
}

// StructuredDataBlocks returns the raw payload of every JSON-LD script
// element in document order. Whitespace-only payloads are skipped.
func (d *Document) StructuredDataBlocks() []string {
	var blocks []string
	d.doc.Find("script[type='application/ld+json']").Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			blocks = append(blocks, text)
		}
	})
	return blocks
}

// SelectTexts returns the trimmed text content of every element matching
// the selector, in document order.
func (d *Document) SelectTexts(selector string) []string {
	var texts []string
	d.doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		texts = append(texts, strings.TrimSpace(sel.Text()))
	})
	return texts
}
