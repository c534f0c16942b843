package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Decoder reads a manifest from raw bytes.
type Decoder func(data []byte, m *Manifest) error

// DefaultDecoders returns the decoders keyed by file extension.
func DefaultDecoders() map[string]Decoder {
	return map[string]Decoder{
		".yaml": decodeYAML,
		".yml":  decodeYAML,
		".json": decodeJSON,
	}
}

func decodeYAML(data []byte, m *Manifest) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(m); err != nil {
		return fmt.Errorf("invalid yaml: %w", err)
	}
	return nil
}

func decodeJSON(data []byte, m *Manifest) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(m); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	return nil
}

// Parse decodes data in the format named by ext (".yaml", ".yml", ".json").
func Parse(data []byte, ext string) (*Manifest, error) {
	dec, ok := DefaultDecoders()[strings.ToLower(ext)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	m := &Manifest{}
	if err := dec(data, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Load reads and decodes the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	m, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Encode writes m as YAML.
func Encode(m *Manifest) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
