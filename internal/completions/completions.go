package completions

import (
	"fmt"
	"io"
	"strings"

	"github.com/swtools/swcli/internal/cli"
)

// FlagInfo is one flag as the generators see it.
type FlagInfo struct {
	Long        string // without dashes, empty if none
	Short       string // single letter, empty if none
	Description string
	HasValue    bool
}

// ExtractFlags flattens the descriptors of tool.
func ExtractFlags(tool cli.AppSpec) []FlagInfo {
	flags := make([]FlagInfo, 0, len(tool.Flags))
	for _, d := range tool.Flags {
		info := FlagInfo{
			Description: d.Description,
			HasValue:    d.Kind != cli.KindBool,
		}
		for _, n := range d.Names {
			switch {
			case strings.HasPrefix(n, "--"):
				info.Long = n[2:]
			case strings.HasPrefix(n, "-") && len(n) == 2:
				info.Short = n[1:]
			}
		}
		flags = append(flags, info)
	}
	return flags
}

// Generate returns the completion script of tool for shell.
func Generate(shell Shell, tool cli.AppSpec) (string, error) {
	flags := ExtractFlags(tool)
	switch shell {
	case ShellBash:
		return GenerateBash(tool.Name, flags), nil
	case ShellZsh:
		return GenerateZsh(tool.Name, flags), nil
	case ShellFish:
		return GenerateFish(tool.Name, flags), nil
	default:
		return "", fmt.Errorf("unsupported shell: %s", shell)
	}
}

// PrintCompletions writes the completion script for the given shell to w
func PrintCompletions(w io.Writer, shell Shell, tool cli.AppSpec) error {
	script, err := Generate(shell, tool)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, script)
	return err
}

// funcName turns a binary name into a shell identifier.
func funcName(bin string) string {
	return strings.NewReplacer("-", "_", ".", "_").Replace(bin)
}
