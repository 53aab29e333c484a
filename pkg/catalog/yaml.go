package catalog

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// DecodeYAML reads catalog data from YAML without validating it.
func DecodeYAML(r io.Reader) (Data, error) {
	var data Data
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&data); err != nil {
		if err == io.EOF {
			return Data{}, nil
		}
		return Data{}, fmt.Errorf("failed to decode catalog yaml: %w", err)
	}
	return data, nil
}

// LoadYAML decodes and validates a catalog.
func LoadYAML(r io.Reader, opts ...Option) (*Catalog, error) {
	data, err := DecodeYAML(r)
	if err != nil {
		return nil, err
	}
	return New(data, opts...)
}

// LoadFile loads a catalog from a YAML file.
func LoadFile(path string, opts ...Option) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()
	return LoadYAML(f, opts...)
}

// DefaultYAML returns the bundled catalog configuration.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultYAML))
	copy(out, defaultYAML)
	return out
}

// Default returns the bundled catalog.
func Default(opts ...Option) (*Catalog, error) {
	var d Data
	if err := yaml.Unmarshal(defaultYAML, &d); err != nil {
		return nil, fmt.Errorf("failed to decode bundled catalog: %w", err)
	}
	return New(d, opts...)
}
