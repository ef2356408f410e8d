package domain

// HelpRequest tells which help flag was given, if any.
type HelpRequest int

const (
	HelpNone  HelpRequest = iota
	HelpShort             // -h
	HelpLong              // --help
)

func (h HelpRequest) String() string {
	switch h {
	case HelpShort:
		return "short"
	case HelpLong:
		return "long"
	default:
		return "none"
	}
}

// BaseConfig holds the flags every tool understands.
// It is filled once by the argument source and never modified afterwards.
type BaseConfig struct {
	Verbose bool
	DryRun  bool
	Quiet   bool
	Help    HelpRequest
	Version bool
}

// CliConfig is the read-only view commands get of a parsed command line.
//
// Applications embed BaseConfig in their own config struct; the promoted
// methods make that struct a CliConfig without further code.
type CliConfig interface {
	Base() BaseConfig
	WantsHelp() bool
	WantsShortHelp() bool
	WantsLongHelp() bool
	WantsVersion() bool
	Verbosity() int
	IsDryRun() bool
}

// Base returns the standard flags.
func (b BaseConfig) Base() BaseConfig { return b }

func (b BaseConfig) WantsHelp() bool      { return b.Help != HelpNone }
func (b BaseConfig) WantsShortHelp() bool { return b.Help == HelpShort }
func (b BaseConfig) WantsLongHelp() bool  { return b.Help == HelpLong }
func (b BaseConfig) WantsVersion() bool   { return b.Version }
func (b BaseConfig) IsDryRun() bool       { return b.DryRun }

// Verbosity is 1 when verbose output was asked for, 0 otherwise.
// Quiet always forces 0, even together with Verbose.
func (b BaseConfig) Verbosity() int {
	if b.Quiet {
		return 0
	}
	if b.Verbose {
		return 1
	}
	return 0
}

// As recovers the concrete configuration type behind cfg.
// It reports false, never panics, when cfg holds some other type.
func As[T CliConfig](cfg CliConfig) (T, bool) {
	concrete, ok := cfg.(T)
	return concrete, ok
}

// Verify BaseConfig implements CliConfig
var _ CliConfig = BaseConfig{}
