// Package readability provides page previews using go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/recipeclip"
	"github.com/go-shiori/go-readability"
)

// Ensure Previewer implements recipeclip.Previewer at compile time.
var _ recipeclip.Previewer = (*Previewer)(nil)

// Previewer wraps go-readability to extract a page's readable content,
// used to preview pages before clipping.
type Previewer struct{}

// NewPreviewer creates a new Previewer.
func NewPreviewer() *Previewer {
	return &Previewer{}
}

// Preview processes raw HTML and returns the page's readable content.
func (p *Previewer) Preview(rawHTML string) (*recipeclip.PagePreview, error) {
	if rawHTML == "" {
		return nil, recipeclip.Errorf(recipeclip.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &recipeclip.PagePreview{
		Title: article.Title,
		Text:  article.TextContent,
	}, nil
}
