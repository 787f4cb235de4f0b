package mock

import (
	"context"

	"github.com/fwojciec/recipeclip"
)

var _ recipeclip.Asker = (*Asker)(nil)

// Asker is a mock implementation of recipeclip.Asker.
type Asker struct {
	AskFn func(ctx context.Context, question string) (string, error)
}

func (a *Asker) Ask(ctx context.Context, question string) (string, error) {
	return a.AskFn(ctx, question)
}
