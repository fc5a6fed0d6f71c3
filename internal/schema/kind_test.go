package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want ValueKind
	}{
		{"bool", KindBool},
		{"Bool", KindBool},
		{"FLOAT", KindFloat},
		{"  vector3  ", KindVector3},
		{"BitMask", KindBitmask},
		{"action", KindAction},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseKindUnrecognized(t *testing.T) {
	for _, in := range []string{"", "vector4", "integer", "boolean"} {
		_, err := ParseKind(in)
		require.Error(t, err, in)
		assert.True(t, IsDecodeError(err), in)
	}
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, KindInt.IsNumeric())
	assert.True(t, KindFloat.IsNumeric())
	assert.True(t, KindUint32.IsNumeric())
	assert.True(t, KindUint64.IsNumeric())
	assert.True(t, KindBitmask.IsNumeric())

	assert.False(t, KindBool.IsNumeric())
	assert.False(t, KindString.IsNumeric())
	assert.False(t, KindEnum.IsNumeric())
	assert.False(t, KindVector3.IsNumeric())
	assert.False(t, KindAction.IsNumeric())
}
