package embedkit_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/embedkit"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := embedkit.Errorf(embedkit.EINVALID, "unknown field %q", "colour")

	assert.Equal(t, embedkit.EINVALID, embedkit.ErrorCode(err))
	assert.Equal(t, "unknown field \"colour\"", embedkit.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, embedkit.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, embedkit.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("reading input: %w", embedkit.Errorf(embedkit.ENOTFOUND, "no such file"))

	assert.Equal(t, embedkit.ENOTFOUND, embedkit.ErrorCode(err))
	assert.Equal(t, "no such file", embedkit.ErrorMessage(err))
}

func TestErrorCode_ForeignError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, embedkit.EINTERNAL, embedkit.ErrorCode(err))
	assert.Equal(t, "Internal error.", embedkit.ErrorMessage(err))
}
