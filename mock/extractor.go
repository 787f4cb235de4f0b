package mock

import "github.com/fwojciec/recipeclip"

var _ recipeclip.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of recipeclip.Extractor.
type Extractor struct {
	ExtractFn func(doc recipeclip.Document, sourceURL string) (*recipeclip.Recipe, error)
}

func (e *Extractor) Extract(doc recipeclip.Document, sourceURL string) (*recipeclip.Recipe, error) {
	return e.ExtractFn(doc, sourceURL)
}
