package cli

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/swtools/swcli/internal/ui/style"
)

// Example is one annotated invocation shown by --help.
type Example struct {
	Command     string
	Description string
}

// AppSpec is everything the help renderer needs to know about a tool.
type AppSpec struct {
	Name     string
	Summary  string
	Usage    string
	Flags    []FlagDescriptor
	Examples []Example
}

// formatUsage styles the usage line with the command in Info color and the rest muted.
func formatUsage(usage string) string {
	cmdEnd := strings.IndexAny(usage, "[<")
	if cmdEnd < 0 {
		return style.Info(usage)
	}
	cmd := strings.TrimSpace(usage[:cmdEnd])
	return style.Info(cmd) + " " + style.Muted(usage[cmdEnd:])
}

func flagLabel(d FlagDescriptor) string {
	label := strings.Join(d.Names, ", ")
	if d.ValueHint != "" {
		label += " " + d.ValueHint
	}
	return label
}

func writeFlags(out *bytes.Buffer, flags []FlagDescriptor) {
	width := 0
	for _, d := range flags {
		width = max(width, len(flagLabel(d)))
	}

	out.WriteString(style.Header("FLAGS"))
	out.WriteString("\n")
	for _, d := range flags {
		label := fmt.Sprintf("%-*s", width, flagLabel(d))
		fmt.Fprintf(out, "   %s  %s", style.Info(label), d.Description)
		if d.Default != "" {
			out.WriteString(style.Muted(fmt.Sprintf(" (default %q)", d.Default)))
		}
		out.WriteString("\n")
	}
}

// ShortHelp renders the quick reference printed for -h.
func ShortHelp(app AppSpec) string {
	var out bytes.Buffer

	out.WriteString(app.Name)
	out.WriteString(" - ")
	out.WriteString(app.Summary)
	out.WriteString("\n\n")

	out.WriteString(style.Header("USAGE"))
	out.WriteString("\n   ")
	out.WriteString(formatUsage(app.Usage))
	out.WriteString("\n\n")

	writeFlags(&out, app.Flags)

	return strings.TrimRight(out.String(), "\n")
}

// LongHelp renders ShortHelp followed by the examples, printed for --help.
func LongHelp(app AppSpec) string {
	var out bytes.Buffer
	out.WriteString(ShortHelp(app))

	if len(app.Examples) > 0 {
		out.WriteString("\n\n")
		out.WriteString(style.Header("EXAMPLES"))
		out.WriteString("\n")
		for i, ex := range app.Examples {
			if i > 0 {
				out.WriteString("\n")
			}
			fmt.Fprintf(&out, "   %s\n", style.Muted("# "+ex.Description))
			fmt.Fprintf(&out, "   %s\n", ex.Command)
		}
	}

	return strings.TrimRight(out.String(), "\n")
}
