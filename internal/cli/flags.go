package cli

// FlagKind selects how a flag is bound and read back.
type FlagKind int

const (
	KindBool FlagKind = iota
	KindString
	KindStrings // repeatable, every occurrence kept in order
	KindInt
)

// FlagDescriptor describes one flag: its spellings, its value and its help line.
//
// Names holds "--long" and/or "-s" forms. A descriptor with only a short
// name is still addressable by that single letter.
type FlagDescriptor struct {
	Names       []string
	ValueHint   string
	Description string
	Kind        FlagKind
	Default     string
}

var (
	VersionFlag = FlagDescriptor{
		Names:       []string{"--version", "-V"},
		Description: "Show version and build information",
	}
	ShortHelpFlag = FlagDescriptor{
		Names:       []string{"-h"},
		Description: "Show short help",
	}
	LongHelpFlag = FlagDescriptor{
		Names:       []string{"--help"},
		Description: "Show full help with examples",
	}
	VerboseFlag = FlagDescriptor{
		Names:       []string{"--verbose", "-v"},
		Description: "Print diagnostics to stderr",
	}
	DryRunFlag = FlagDescriptor{
		Names:       []string{"--dry-run", "-n"},
		Description: "Describe what would be done without doing it",
	}
	QuietFlag = FlagDescriptor{
		Names:       []string{"--quiet", "-q"},
		Description: "Suppress diagnostics (overrides --verbose)",
	}
)

// StandardFlags are understood by every tool.
var StandardFlags = []FlagDescriptor{
	VersionFlag,
	ShortHelpFlag,
	LongHelpFlag,
	VerboseFlag,
	DryRunFlag,
	QuietFlag,
}

// WithStandard returns StandardFlags followed by extra.
func WithStandard(extra ...FlagDescriptor) []FlagDescriptor {
	out := make([]FlagDescriptor, 0, len(StandardFlags)+len(extra))
	out = append(out, StandardFlags...)
	return append(out, extra...)
}

// names splits Names into the pflag long name and shorthand.
// A short-only descriptor uses its letter as the long name too.
func (d FlagDescriptor) names() (long, short string) {
	for _, n := range d.Names {
		switch {
		case len(n) > 2 && n[:2] == "--":
			if long == "" {
				long = n[2:]
			}
		case len(n) == 2 && n[0] == '-':
			if short == "" {
				short = n[1:]
			}
		}
	}
	if long == "" {
		long = short
	}
	return long, short
}
