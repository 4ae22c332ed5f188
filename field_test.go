package embedkit_test

import (
	"testing"

	"github.com/fwojciec/embedkit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseField(t *testing.T) {
	t.Parallel()

	t.Run("parses every known field by its name", func(t *testing.T) {
		t.Parallel()

		for _, f := range embedkit.Fields() {
			got, err := embedkit.ParseField(f.String())

			require.NoError(t, err)
			assert.Equal(t, f, got)
		}
	})

	t.Run("ignores case and surrounding space", func(t *testing.T) {
		t.Parallel()

		got, err := embedkit.ParseField(" AuthorURL ")

		require.NoError(t, err)
		assert.Equal(t, embedkit.FieldAuthorURL, got)
	})

	t.Run("rejects unknown field", func(t *testing.T) {
		t.Parallel()

		_, err := embedkit.ParseField("colour")

		require.Error(t, err)
		assert.Equal(t, embedkit.EINVALID, embedkit.ErrorCode(err))
	})
}

func TestField_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "title", embedkit.FieldTitle.String())
	assert.Equal(t, "providerIcon", embedkit.FieldProviderIcon.String())
	assert.Equal(t, "unknown", embedkit.Field(0).String())
}

func TestField_IsURL(t *testing.T) {
	t.Parallel()

	assert.True(t, embedkit.FieldImage.IsURL())
	assert.True(t, embedkit.FieldFeeds.IsURL())
	assert.False(t, embedkit.FieldTitle.IsURL())
	assert.False(t, embedkit.FieldCode.IsURL())
}
