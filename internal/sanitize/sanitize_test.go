package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInput_SizeLimit(t *testing.T) {
	t.Setenv(EnvMaxInputSize, "16")

	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{"Under Limit", 15, false},
		{"Exact Limit", 16, false},
		{"Over Limit", 17, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Input(strings.Repeat("a", tt.size))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInputTooLarge)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMaxInputSize_IgnoresGarbage(t *testing.T) {
	t.Setenv(EnvMaxInputSize, "-3")
	assert.Equal(t, DefaultMaxInputSize, MaxInputSize())
	t.Setenv(EnvMaxInputSize, "lots")
	assert.Equal(t, DefaultMaxInputSize, MaxInputSize())
}

func TestInput_ControlChars(t *testing.T) {
	tests := []struct {
		name, input, want string
	}{
		{"Normal Text", "Jane Doe", "Jane Doe"},
		{"Safe Controls", "Line1\nLine2\tTabbed\r", "Line1\nLine2\tTabbed\r"},
		{"ANSI Code", "\x1b[31mRed\x1b[0m", "[31mRed[0m"},
		{"Null Byte", "Null\x00Byte", "NullByte"},
		{"Bell", "Ding\x07", "Ding"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Input(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInput_InvalidUTF8(t *testing.T) {
	_, err := Input("bad\xffbyte")
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestValue_Nested(t *testing.T) {
	s := "x\x00y"
	in := map[string]any{
		"op":    "updateField",
		"value": "Jane\x1b Doe",
		"list":  []any{"a\x07", 3.0},
		"ptr":   &s,
	}

	out, err := Value(in)
	require.NoError(t, err)

	m := out.(map[string]any)
	assert.Equal(t, "Jane Doe", m["value"])
	assert.Equal(t, []any{"a", 3.0}, m["list"])
	assert.Equal(t, "xy", s)

	_, err = Value(map[string]any{"value": "bad\xff"})
	assert.ErrorIs(t, err, ErrInvalidUTF8)
	assert.Contains(t, err.Error(), "value")
}
