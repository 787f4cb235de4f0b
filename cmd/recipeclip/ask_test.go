package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/recipeclip"
	main "github.com/fwojciec/recipeclip/cmd/recipeclip"
	"github.com/fwojciec/recipeclip/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAskCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the answer", func(t *testing.T) {
		t.Parallel()

		asker := &mock.Asker{
			AskFn: func(_ context.Context, question string) (string, error) {
				assert.Equal(t, "what can I cook with eggs?", question)
				return "Try the carbonara.", nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Asker:  asker,
		}

		cmd := &main.AskCmd{Question: "what can I cook with eggs?"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Try the carbonara.")
	})

	t.Run("suggests clipping when no recipes are saved", func(t *testing.T) {
		t.Parallel()

		asker := &mock.Asker{
			AskFn: func(_ context.Context, question string) (string, error) {
				return "", recipeclip.Errorf(recipeclip.ENOTFOUND, "no recipes saved yet")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Asker:  asker,
		}

		cmd := &main.AskCmd{Question: "anything?"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "recipeclip clip")
		assert.Empty(t, stdout.String())
	})
}
