package recipeclip_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/recipeclip"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := recipeclip.Errorf(recipeclip.ENOTFOUND, "recipe %q not found", "test")

	assert.Equal(t, recipeclip.ENOTFOUND, recipeclip.ErrorCode(err))
	assert.Equal(t, "recipe \"test\" not found", recipeclip.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, recipeclip.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, recipeclip.EINTERNAL, recipeclip.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, recipeclip.ErrorMessage(nil))
}

func TestRecipe_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		r := &recipeclip.Recipe{Title: "Leek Soup", SourceURL: "https://example.com/leek-soup"}
		assert.NoError(t, r.Validate())
	})

	t.Run("missing title", func(t *testing.T) {
		t.Parallel()

		r := &recipeclip.Recipe{SourceURL: "https://example.com/leek-soup"}
		err := r.Validate()
		assert.Equal(t, recipeclip.EINVALID, recipeclip.ErrorCode(err))
	})

	t.Run("missing source URL", func(t *testing.T) {
		t.Parallel()

		r := &recipeclip.Recipe{Title: "Leek Soup"}
		err := r.Validate()
		assert.Equal(t, recipeclip.EINVALID, recipeclip.ErrorCode(err))
	})
}
