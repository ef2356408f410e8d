package dispatchers

import (
	"fmt"
	"io"
	"os"

	"github.com/swtools/swcli/internal/domain"
	"github.com/swtools/swcli/internal/version"
)

// VersionCommand prints version and build information for -V/--version.
type VersionCommand[C domain.CliConfig] struct {
	Info version.Version
	Out  io.Writer
}

func (c *VersionCommand[C]) Name() string         { return "version" }
func (c *VersionCommand[C]) Priority() int        { return PriorityVersion }
func (c *VersionCommand[C]) CanHandle(cfg C) bool { return cfg.WantsVersion() }

func (c *VersionCommand[C]) Execute(_ C) error {
	_, err := fmt.Fprintln(writerOrStdout(c.Out), c.Info.String())
	return err
}

// HelpCommand prints ShortHelp for -h and LongHelp for --help.
type HelpCommand[C domain.CliConfig] struct {
	ShortHelp string
	LongHelp  string
	Out       io.Writer
}

func (c *HelpCommand[C]) Name() string         { return "help" }
func (c *HelpCommand[C]) Priority() int        { return PriorityHelp }
func (c *HelpCommand[C]) CanHandle(cfg C) bool { return cfg.WantsHelp() }

func (c *HelpCommand[C]) Execute(cfg C) error {
	text := c.ShortHelp
	if cfg.WantsLongHelp() {
		text = c.LongHelp
	}
	_, err := fmt.Fprintln(writerOrStdout(c.Out), text)
	return err
}

// Builtins configures the commands NewWithBuiltins registers.
type Builtins struct {
	Version   version.Version
	ShortHelp string
	LongHelp  string
	Out       io.Writer // defaults to os.Stdout
}

// NewWithBuiltins creates a dispatcher that already answers --version and
// -h/--help ahead of any application command.
func NewWithBuiltins[C domain.CliConfig](b Builtins, opts ...DispatcherOption) *Dispatcher[C] {
	return New[C](opts...).
		Register(&VersionCommand[C]{Info: b.Version, Out: b.Out}).
		Register(&HelpCommand[C]{ShortHelp: b.ShortHelp, LongHelp: b.LongHelp, Out: b.Out})
}

func writerOrStdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
