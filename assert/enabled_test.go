//go:build !assertions_disabled

package assert_test

import (
	"testing"

	"github.com/amp-labs/amp-sortedset/assert"
	commonerrors "github.com/amp-labs/amp-sortedset/errors"
	"github.com/stretchr/testify/require"
)

func TestType_Success(t *testing.T) {
	t.Parallel()

	str, err := assert.Type[string]("hello")
	require.NoError(t, err)
	require.Equal(t, "hello", str)

	num, err := assert.Type[int](42)
	require.NoError(t, err)
	require.Equal(t, 42, num)

	ptr := new(int)
	gotPtr, err := assert.Type[*int](ptr)
	require.NoError(t, err)
	require.Same(t, ptr, gotPtr)
}

func TestType_Failure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input any
	}{
		{name: "int as string", input: 42},
		{name: "nil interface", input: nil},
		{name: "pointer as value", input: new(string)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := assert.Type[string](tt.input)
			require.ErrorIs(t, err, commonerrors.ErrWrongType)
			require.Empty(t, result)
			require.Contains(t, err.Error(), "expected type string")
		})
	}
}

func TestTrue(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() { assert.True(true) })
	require.PanicsWithValue(t, "assertion failed", func() { assert.True(false) })
	require.PanicsWithValue(t, "bad value 7", func() { assert.True(false, "bad value %d", 7) })
	require.PanicsWithValue(t, "assertion failed: [7 8]", func() { assert.True(false, 7, 8) })
}
