// Package mimetypes infers download content types from file
// extensions. The primary mapping ships as an embedded YAML file so it
// can be audited and extended without touching code.
package mimetypes

import (
	"embed"
	"fmt"
	"mime"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed config/types.yaml
var configFiles embed.FS

// Registry resolves lowercase extensions (without the leading dot) to
// MIME types.
type Registry struct {
	types map[string]string
}

type registryFile struct {
	Types map[string]string `yaml:"types"`
}

// NewRegistry loads the embedded mapping.
func NewRegistry() (*Registry, error) {
	data, err := configFiles.ReadFile("config/types.yaml")
	if err != nil {
		return nil, fmt.Errorf("read embedded type map: %w", err)
	}

	var f registryFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("unmarshal type map: %w", err)
	}

	return &Registry{types: f.Types}, nil
}

// Lookup returns the MIME type for an extension (the File.Type value:
// lowercase, no dot, possibly nil). Unknown extensions fall back to the
// platform mime database and finally to application/octet-stream.
func (r *Registry) Lookup(ext *string) string {
	if ext == nil || *ext == "" {
		return "application/octet-stream"
	}

	if t, ok := r.types[strings.ToLower(*ext)]; ok {
		return t
	}

	if t := mime.TypeByExtension("." + *ext); t != "" {
		return t
	}

	return "application/octet-stream"
}
