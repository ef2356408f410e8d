package actions

import (
	"slices"

	"github.com/swtools/swcli/internal/cli"
	"github.com/swtools/swcli/internal/completions"
	"github.com/swtools/swcli/internal/domain"
)

// LinesConfig is the parsed command line of the lines tool.
type LinesConfig struct {
	domain.BaseConfig
	completions.Request

	Inputs     []string // empty means stdin
	Output     string   // empty means stdout
	Pattern    string
	HasPattern bool
	Count      bool
	Reverse    bool
}

// LinesFlags are the flags lines accepts on top of cli.StandardFlags.
var LinesFlags = []cli.FlagDescriptor{
	{
		Names:       []string{"--input", "-i"},
		ValueHint:   "<file>",
		Description: "Input file, may be repeated (default stdin)",
		Kind:        cli.KindStrings,
	},
	{
		Names:       []string{"--output", "-o"},
		ValueHint:   "<file>",
		Description: "Write results to file instead of stdout",
		Kind:        cli.KindString,
	},
	{
		Names:       []string{"--pattern", "-p"},
		ValueHint:   "<text>",
		Description: "Print only lines containing text",
		Kind:        cli.KindString,
	},
	{
		Names:       []string{"--count"},
		Description: "Count lines",
	},
	{
		Names:       []string{"--reverse"},
		Description: "Print lines in reverse order",
	},
	completions.Flag,
}

// LinesApp describes lines for the help renderer.
var LinesApp = cli.AppSpec{
	Name:    "lines",
	Summary: "count, search, reverse or copy lines of text",
	Usage:   "lines [flags] [file...]",
	Flags:   cli.WithStandard(LinesFlags...),
	Examples: []cli.Example{
		{Command: "lines --count -i notes.txt", Description: "Count lines in a file"},
		{Command: "lines -p TODO -i a.go -i b.go", Description: "Print lines containing TODO"},
		{Command: "lines --reverse notes.txt -o reversed.txt", Description: "Reverse a file into another file"},
		{Command: "lines -v --count notes.txt", Description: "Show per-file counts and progress"},
		{Command: "lines -n --count notes.txt", Description: "Show what would be done"},
	},
}

// NewLinesConfig builds a LinesConfig from parsed flags. Positional
// arguments are inputs too, after any -i values. rc may be nil.
func NewLinesConfig(pf *cli.ParsedFlags, rc domain.ConfigProvider) *LinesConfig {
	inputs := slices.Concat(pf.Strings("--input"), pf.Args())

	return &LinesConfig{
		BaseConfig: cli.ApplyDefaults(cli.ParseBase(pf), rc),
		Request:    completions.Request{Shell: pf.String("--completion", "")},
		Inputs:     inputs,
		Output:     pf.String("--output", ""),
		Pattern:    pf.String("--pattern", ""),
		HasPattern: pf.Has("--pattern"),
		Count:      pf.Has("--count"),
		Reverse:    pf.Has("--reverse"),
	}
}
