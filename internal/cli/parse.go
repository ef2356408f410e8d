package cli

import (
	"io"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/swtools/swcli/internal/domain"
	"github.com/swtools/swcli/internal/usage"
)

// NewFlagSet binds descs onto a fresh pflag set.
// pflag's own help handling and error printing are switched off; Parse
// reports problems as usage errors instead.
func NewFlagSet(name string, descs []FlagDescriptor) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SortFlags = false

	for _, d := range descs {
		long, short := d.names()
		switch d.Kind {
		case KindString:
			fs.StringP(long, short, d.Default, d.Description)
		case KindStrings:
			fs.StringArrayP(long, short, nil, d.Description)
		case KindInt:
			def, _ := strconv.Atoi(d.Default)
			fs.IntP(long, short, def, d.Description)
		default:
			fs.BoolP(long, short, false, d.Description)
		}
	}
	return fs
}

// Parse parses args into fs and returns a typed view of the result.
func Parse(fs *pflag.FlagSet, args []string) (*ParsedFlags, error) {
	if err := fs.Parse(args); err != nil {
		return nil, translateError(fs, err)
	}
	return &ParsedFlags{fs: fs}, nil
}

const (
	unknownFlagPrefix      = "unknown flag: "
	unknownShorthandPrefix = "unknown shorthand flag: "
	needsArgumentPrefix    = "flag needs an argument: "
)

func translateError(fs *pflag.FlagSet, err error) error {
	msg := err.Error()

	switch {
	case strings.HasPrefix(msg, unknownFlagPrefix):
		flag := strings.TrimPrefix(msg, unknownFlagPrefix)
		name, _, _ := strings.Cut(strings.TrimPrefix(flag, "--"), "=")
		invalid := usage.InvalidFlag(msg, similarFlags(fs, name)...)
		invalid.Err = err
		return invalid

	case strings.HasPrefix(msg, unknownShorthandPrefix):
		return &usage.Error{Kind: usage.ErrInvalidFlag, Message: msg, Err: err}

	case strings.HasPrefix(msg, needsArgumentPrefix):
		// "--output" or "'o' in -o"
		flag := strings.TrimPrefix(msg, needsArgumentPrefix)
		if _, after, found := strings.Cut(flag, " in "); found {
			flag = after
		}
		missing := usage.MissingArgument(flag)
		missing.Err = err
		return missing
	}

	return &usage.Error{Kind: usage.ErrInvalidFlag, Message: msg, Err: err}
}

func similarFlags(fs *pflag.FlagSet, name string) []string {
	var candidates []string
	fs.VisitAll(func(f *pflag.Flag) {
		if len(f.Name) > 1 {
			candidates = append(candidates, f.Name)
		}
	})

	found := FindSimilar(name, candidates, 2)
	for i := range found {
		found[i] = "--" + found[i]
	}
	return found
}

// ParsedFlags provides typed access to a parsed command line.
// Flags are addressed as written by the user: "--output" or "-o".
type ParsedFlags struct {
	fs *pflag.FlagSet
}

func (f *ParsedFlags) lookup(name string) *pflag.Flag {
	if strings.HasPrefix(name, "--") {
		return f.fs.Lookup(name[2:])
	}
	if len(name) == 2 && name[0] == '-' {
		if fl := f.fs.ShorthandLookup(name[1:]); fl != nil {
			return fl
		}
		return f.fs.Lookup(name[1:])
	}
	return f.fs.Lookup(name)
}

// Has reports whether the flag was given on the command line.
func (f *ParsedFlags) Has(name string) bool {
	fl := f.lookup(name)
	if fl == nil || !fl.Changed {
		return false
	}
	if fl.Value.Type() == "bool" {
		return fl.Value.String() == "true"
	}
	return true
}

// String returns the flag's value, or defaultVal when the flag was not given.
func (f *ParsedFlags) String(name, defaultVal string) string {
	fl := f.lookup(name)
	if fl == nil || !fl.Changed {
		return defaultVal
	}
	return fl.Value.String()
}

// Strings returns every value given for a repeatable flag, in order.
func (f *ParsedFlags) Strings(name string) []string {
	fl := f.lookup(name)
	if fl == nil {
		return nil
	}
	if sv, ok := fl.Value.(pflag.SliceValue); ok {
		return sv.GetSlice()
	}
	if fl.Changed {
		return []string{fl.Value.String()}
	}
	return nil
}

// Int returns the integer value of a flag, or defaultVal if not given.
func (f *ParsedFlags) Int(name string, defaultVal int) int {
	fl := f.lookup(name)
	if fl == nil || !fl.Changed {
		return defaultVal
	}
	n, err := strconv.Atoi(fl.Value.String())
	if err != nil {
		return defaultVal
	}
	return n
}

// Args returns the positional arguments left after flags.
func (f *ParsedFlags) Args() []string {
	return f.fs.Args()
}

// ParseBase extracts the flags every tool shares.
// --help wins over -h when both are given.
func ParseBase(pf *ParsedFlags) domain.BaseConfig {
	base := domain.BaseConfig{
		Verbose: pf.Has("--verbose"),
		DryRun:  pf.Has("--dry-run"),
		Quiet:   pf.Has("--quiet"),
		Version: pf.Has("--version"),
	}

	switch {
	case pf.Has("--help"):
		base.Help = domain.HelpLong
	case pf.Has("-h"):
		base.Help = domain.HelpShort
	}

	return base
}

// ApplyDefaults fills verbose and quiet from the rc file when the command
// line left them unset. A nil provider leaves base untouched.
func ApplyDefaults(base domain.BaseConfig, cfg domain.ConfigProvider) domain.BaseConfig {
	if cfg == nil {
		return base
	}
	if !base.Verbose {
		base.Verbose = boolKey(cfg, "verbose")
	}
	if !base.Quiet {
		base.Quiet = boolKey(cfg, "quiet")
	}
	return base
}

func boolKey(cfg domain.ConfigProvider, key string) bool {
	value, ok := cfg.Get(key)
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	return err == nil && b
}
