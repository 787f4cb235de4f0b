package mock

import "github.com/fwojciec/recipeclip"

var _ recipeclip.Document = (*Document)(nil)

// Document is a mock implementation of recipeclip.Document.
// Nil function fields behave as an empty document.
type Document struct {
	StructuredDataBlocksFn func() []string
	SelectTextsFn          func(selector string) []string
}

func (d *Document) StructuredDataBlocks() []string {
	if d.StructuredDataBlocksFn == nil {
		return nil
	}
	return d.StructuredDataBlocksFn()
}

func (d *Document) SelectTexts(selector string) []string {
	if d.SelectTextsFn == nil {
		return nil
	}
	return d.SelectTextsFn(selector)
}
