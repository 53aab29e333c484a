package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/aretw0/folio/pkg/ports"
)

// Masked replaces the value of every matching key.
const Masked = "***"

type piiMiddleware struct {
	next     ports.BlobStore
	patterns []*regexp.Regexp
}

// NewPIIMiddleware creates a middleware that masks values of JSON object keys matching the patterns.
// Masking happens before the blob reaches the next store, so masked values are not recoverable.
// Blobs that are not JSON are stored unchanged.
func NewPIIMiddleware(patternStrings []string) Middleware {
	patterns := make([]*regexp.Regexp, len(patternStrings))
	for i, p := range patternStrings {
		patterns[i] = regexp.MustCompile(p)
	}
	return func(next ports.BlobStore) ports.BlobStore {
		return &piiMiddleware{next: next, patterns: patterns}
	}
}

func (m *piiMiddleware) Put(ctx context.Context, key string, value []byte) error {
	masked, err := m.mask(value)
	if err != nil {
		return err
	}
	return m.next.Put(ctx, key, masked)
}

func (m *piiMiddleware) Get(ctx context.Context, key string) ([]byte, error) {
	return m.next.Get(ctx, key)
}

func (m *piiMiddleware) Delete(ctx context.Context, key string) error {
	return m.next.Delete(ctx, key)
}

// mask rewrites the values of matching keys in one pass over the token
// stream, so object keys keep their order and untouched literals keep their form.
func (m *piiMiddleware) mask(value []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(value))
	dec.UseNumber()

	var out bytes.Buffer
	changed, err := m.maskValue(dec, &out)
	if err != nil || !changed {
		return value, nil
	}
	return out.Bytes(), nil
}

// maskValue copies one JSON value from dec to out and reports whether any
// key was masked.
func (m *piiMiddleware) maskValue(dec *json.Decoder, out *bytes.Buffer) (bool, error) {
	tok, err := dec.Token()
	if err != nil {
		return false, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return false, writeScalar(out, tok)
	}

	changed := false
	switch delim {
	case '{':
		out.WriteByte('{')
		for i := 0; dec.More(); i++ {
			if i > 0 {
				out.WriteByte(',')
			}
			keyTok, err := dec.Token()
			if err != nil {
				return false, err
			}
			key, _ := keyTok.(string)
			if err := writeScalar(out, key); err != nil {
				return false, err
			}
			out.WriteByte(':')

			if matchesAny(key, m.patterns) {
				var skipped json.RawMessage
				if err := dec.Decode(&skipped); err != nil {
					return false, err
				}
				out.WriteString(`"` + Masked + `"`)
				changed = true
				continue
			}
			sub, err := m.maskValue(dec, out)
			if err != nil {
				return false, err
			}
			changed = changed || sub
		}
		out.WriteByte('}')
	case '[':
		out.WriteByte('[')
		for i := 0; dec.More(); i++ {
			if i > 0 {
				out.WriteByte(',')
			}
			sub, err := m.maskValue(dec, out)
			if err != nil {
				return false, err
			}
			changed = changed || sub
		}
		out.WriteByte(']')
	}

	// Closing delimiter.
	if _, err := dec.Token(); err != nil {
		return false, err
	}
	return changed, nil
}

func writeScalar(out *bytes.Buffer, v any) error {
	if n, ok := v.(json.Number); ok {
		out.WriteString(n.String())
		return nil
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write masked blob: %w", err)
	}
	out.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
	return nil
}

func matchesAny(key string, patterns []*regexp.Regexp) bool {
	for _, p := range patterns {
		if p.MatchString(key) {
			return true
		}
	}
	return false
}
