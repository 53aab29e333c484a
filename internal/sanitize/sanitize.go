// Package sanitize cleans user-supplied text before it reaches a document model.
package sanitize

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// DefaultMaxInputSize bounds a single text value. Rich bodies are the largest inputs.
	DefaultMaxInputSize = 64 << 10
	// EnvMaxInputSize overrides the default limit.
	EnvMaxInputSize = "FOLIO_MAX_INPUT_SIZE"
)

var (
	ErrInputTooLarge = errors.New("input exceeds maximum allowed size")
	ErrInvalidUTF8   = errors.New("input contains invalid UTF-8 sequences")
)

// Input enforces the size limit, validates UTF-8 and strips control characters
// other than newline, tab and carriage return.
func Input(input string) (string, error) {
	return InputLimit(input, MaxInputSize())
}

// InputLimit is Input with an explicit limit in bytes.
func InputLimit(input string, limit int) (string, error) {
	if len(input) > limit {
		// Rejected rather than truncated so the stored value is never a surprise.
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrInputTooLarge, len(input), limit)
	}
	if !utf8.ValidString(input) {
		return "", ErrInvalidUTF8
	}

	if strings.IndexFunc(input, unsafeControl) < 0 {
		return input, nil
	}
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if !unsafeControl(r) {
			b.WriteRune(r)
		}
	}
	return b.String(), nil
}

// Value sanitizes every string reachable from v (strings, slices, maps) in place
// and returns the cleaned value.
func Value(v any) (any, error) {
	switch t := v.(type) {
	case string:
		return Input(t)
	case *string:
		if t == nil {
			return t, nil
		}
		s, err := Input(*t)
		if err != nil {
			return nil, err
		}
		*t = s
		return t, nil
	case []any:
		for i := range t {
			c, err := Value(t[i])
			if err != nil {
				return nil, err
			}
			t[i] = c
		}
		return t, nil
	case map[string]any:
		for k, e := range t {
			c, err := Value(e)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			t[k] = c
		}
		return t, nil
	default:
		return v, nil
	}
}

func unsafeControl(r rune) bool {
	return unicode.IsControl(r) && r != '\n' && r != '\t' && r != '\r'
}

// MaxInputSize returns the configured limit.
func MaxInputSize() int {
	if val := os.Getenv(EnvMaxInputSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			return size
		}
	}
	return DefaultMaxInputSize
}
