package mock

import "github.com/fwojciec/recipeclip"

var _ recipeclip.Previewer = (*Previewer)(nil)

// Previewer is a mock implementation of recipeclip.Previewer.
type Previewer struct {
	PreviewFn func(html string) (*recipeclip.PagePreview, error)
}

func (p *Previewer) Preview(html string) (*recipeclip.PagePreview, error) {
	return p.PreviewFn(html)
}
