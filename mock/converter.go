package mock

import "github.com/fwojciec/recipeclip"

var _ recipeclip.Converter = (*Converter)(nil)

// Converter is a mock implementation of recipeclip.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
