package manifest

import (
	"fmt"
	"io/fs"
	"os"

	"go.yaml.in/yaml/v3"
)

// Parse unmarshals snippet.yaml data into a Manifest.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if m.Name == "" {
		return nil, fmt.Errorf("manifest missing required 'name' field")
	}
	if m.Kind == "" {
		return nil, fmt.Errorf("manifest %s missing required 'kind' field", m.Name)
	}
	return &m, nil
}

// ParseFile reads a manifest from the local filesystem.
func ParseFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// ParseFS reads a manifest from an fs.FS, typically the embedded catalog.
func ParseFS(fsys fs.FS, path string) (*Manifest, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
