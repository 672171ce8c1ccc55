package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{KindDestructiveAction, KindGridSizeHigh, KindWipe} {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	_, err := ParseKind("custom")
	require.ErrorIs(t, err, ErrInvalidKind, "custom has no template")

	_, err = ParseKind("explode")
	require.ErrorIs(t, err, ErrInvalidKind)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "grid-size-high", KindGridSizeHigh.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}
