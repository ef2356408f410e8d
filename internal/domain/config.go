package domain

// ConfigKey defines a configuration key with its metadata.
type ConfigKey struct {
	Name        string
	Default     string
	Description string
	Section     string // Section for grouping in the generated rc file
}

// ConfigKeys defines all keys recognised in the rc file.
// Order determines the order of the generated sample file.
var ConfigKeys = []ConfigKey{
	// Output
	{
		Name:        "verbose",
		Default:     "false",
		Description: "Print progress to stderr unless --quiet is given (true/false)",
		Section:     "Output",
	},
	{
		Name:        "quiet",
		Default:     "false",
		Description: "Suppress diagnostics even with --verbose (true/false)",
		Section:     "Output",
	},
	{
		Name:        "color",
		Default:     "auto",
		Description: "Color mode: auto, always, never",
		Section:     "Output",
	},
	// Logging
	{
		Name:        "enable_log",
		Default:     "false",
		Description: "Enable logging to file (true/false)",
		Section:     "Logging",
	},
	{
		Name:        "log_level",
		Default:     "warn",
		Description: "Minimum log level: debug, info, warn, error",
		Section:     "Logging",
	},
}

// configKeyMap is a lookup map for configuration keys.
var configKeyMap map[string]ConfigKey

func init() {
	configKeyMap = make(map[string]ConfigKey, len(ConfigKeys))
	for _, key := range ConfigKeys {
		configKeyMap[key.Name] = key
	}
}

// GetConfigKey returns the ConfigKey for a given name.
func GetConfigKey(name string) (ConfigKey, bool) {
	key, ok := configKeyMap[name]
	return key, ok
}

// IsValidConfigKey checks if a key name is valid.
func IsValidConfigKey(name string) bool {
	_, ok := configKeyMap[name]
	return ok
}

// GetDefaultValue returns the default value for a config key.
func GetDefaultValue(name string) (string, bool) {
	if key, ok := configKeyMap[name]; ok {
		return key.Default, true
	}
	return "", false
}
