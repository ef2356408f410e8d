package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const appDirName = "swcli"

// ConfigEnvVar overrides the rc file location for every tool.
const ConfigEnvVar = "SWCLI_CONFIG"

// AppConfigDir returns the directory holding the rc files.
//   - Linux: $XDG_CONFIG_HOME/swcli or ~/.config/swcli
//   - macOS: ~/Library/Application Support/swcli
//   - Windows: %LOCALAPPDATA%\swcli
//
// The directory is not created; the tools only ever read from it.
func AppConfigDir() string {
	return filepath.Join(xdg.ConfigHome, appDirName)
}

// AppStateDir returns the directory holding log files.
//   - Linux: $XDG_STATE_HOME/swcli or ~/.local/state/swcli
//   - macOS: ~/Library/Application Support/swcli
//   - Windows: %LOCALAPPDATA%\swcli
func AppStateDir() string {
	return filepath.Join(xdg.StateHome, appDirName)
}

// rcExtensions are tried in order when looking for an existing rc file.
var rcExtensions = []string{".conf", ".yaml", ".yml"}

// ConfigFilePath returns the rc file of the named tool. $SWCLI_CONFIG takes
// precedence; otherwise the first existing <tool>.conf, <tool>.yaml or
// <tool>.yml under the user and system XDG config directories wins. When
// none exists the result is ~/.config/swcli/<tool>.conf.
func ConfigFilePath(tool string) string {
	if p := os.Getenv(ConfigEnvVar); p != "" {
		return p
	}
	for _, ext := range rcExtensions {
		if p, err := xdg.SearchConfigFile(filepath.Join(appDirName, tool+ext)); err == nil {
			return p
		}
	}
	return filepath.Join(AppConfigDir(), tool+".conf")
}

// LogFilePath returns the log file of the named tool.
func LogFilePath(tool string) string {
	return filepath.Join(AppStateDir(), tool+".log")
}

// Reload re-reads the XDG environment variables.
func Reload() {
	xdg.Reload()
}
