package config

import (
	"github.com/swtools/swcli/internal/domain"
	"github.com/swtools/swcli/internal/log"
)

// Defaults returns the built-in value of every known key.
func Defaults() map[string]string {
	out := make(map[string]string, len(domain.ConfigKeys))
	for _, key := range domain.ConfigKeys {
		out[key.Name] = key.Default
	}
	return out
}

// Load reads and parses the rc file at path, as YAML when the extension
// says so and as key=value lines otherwise.
// Unknown keys are kept but logged, so typos show up in the log file.
func Load(path string) (map[string]string, error) {
	cfg, err := load(path)
	if err != nil {
		return nil, err
	}

	for key := range cfg {
		if !domain.IsValidConfigKey(key) {
			log.Warn("config: unknown key %q in %s", key, path)
		}
	}

	return cfg, nil
}

// Get returns the value for key from the rc file at path, falling back to
// the default. The bool reports whether the key is known at all.
func Get(path, key string) (string, bool) {
	cfg, err := Load(path)
	if err == nil {
		if value, exists := cfg[key]; exists {
			return value, true
		}
	} else {
		log.Warn("config: could not read %s: %v", path, err)
	}

	return domain.GetDefaultValue(key)
}

// GetAll returns the defaults overridden by whatever the rc file at path sets.
// A broken file is reported and the defaults are still returned.
func GetAll(path string) (map[string]string, error) {
	result := Defaults()

	cfg, err := Load(path)
	if err != nil {
		return result, err
	}

	for key, value := range cfg {
		result[key] = value
	}

	return result, nil
}

func load(path string) (map[string]string, error) {
	if isYAML(path) {
		return ReadYAML(path)
	}

	lines, err := ReadLines(path)
	if err != nil {
		return nil, err
	}
	return Parse(lines)
}
