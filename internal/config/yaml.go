package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// isYAML reports whether path names a YAML rc file rather than key=value.
func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// ReadYAML parses the YAML rc file at path. A missing file yields no
// settings and no error.
func ReadYAML(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ParseYAML(data)
}

// ParseYAML parses a flat YAML mapping. Scalars are kept in their textual
// form, so `verbose: true` and `verbose=true` read the same.
func ParseYAML(data []byte) (map[string]string, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	out := make(map[string]string, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case nil:
			out[key] = ""
		case map[string]any, []any:
			return nil, fmt.Errorf("config: key %q: nested values are not supported", key)
		default:
			out[key] = fmt.Sprint(v)
		}
	}
	return out, nil
}
