package actions

import (
	"fmt"
	"strings"

	"github.com/swtools/swcli/internal/cli"
	"github.com/swtools/swcli/internal/completions"
	"github.com/swtools/swcli/internal/dispatchers"
	"github.com/swtools/swcli/internal/domain"
	"github.com/swtools/swcli/internal/usage"
)

// DefaultShoutText is printed when --text is not given.
const DefaultShoutText = "Hello, World!"

// ShoutConfig is the parsed command line of the shout tool.
type ShoutConfig struct {
	domain.BaseConfig
	completions.Request

	Text      string
	Uppercase bool
	Repeat    int
	HasRepeat bool
}

// ShoutFlags are the flags shout accepts on top of cli.StandardFlags.
var ShoutFlags = []cli.FlagDescriptor{
	{
		Names:       []string{"--text", "-t"},
		ValueHint:   "<text>",
		Description: "Text to print",
		Kind:        cli.KindString,
		Default:     DefaultShoutText,
	},
	{
		Names:       []string{"--uppercase", "-u"},
		Description: "Convert to uppercase",
	},
	{
		Names:       []string{"--repeat", "-r"},
		ValueHint:   "<n>",
		Description: "Print the text n times",
		Kind:        cli.KindInt,
	},
	completions.Flag,
}

// ShoutApp describes shout for the help renderer.
var ShoutApp = cli.AppSpec{
	Name:    "shout",
	Summary: "print a line of text, louder or more often",
	Usage:   "shout [flags]",
	Flags:   cli.WithStandard(ShoutFlags...),
	Examples: []cli.Example{
		{Command: "shout -t hi -u", Description: "Print HI"},
		{Command: "shout -t hi -r 3", Description: "Print hi three times"},
		{Command: "shout -n -u", Description: "Show what would be printed"},
	},
}

// NewShoutConfig builds a ShoutConfig from parsed flags. rc may be nil.
func NewShoutConfig(pf *cli.ParsedFlags, rc domain.ConfigProvider) *ShoutConfig {
	return &ShoutConfig{
		BaseConfig: cli.ApplyDefaults(cli.ParseBase(pf), rc),
		Request:    completions.Request{Shell: pf.String("--completion", "")},
		Text:       pf.String("--text", DefaultShoutText),
		Uppercase:  pf.Has("--uppercase"),
		Repeat:     pf.Int("--repeat", 0),
		HasRepeat:  pf.Has("--repeat"),
	}
}

// ShoutCommands returns shout's commands. They accept any domain.CliConfig
// and decline configs that are not a *ShoutConfig.
func ShoutCommands(app *domain.Application) []dispatchers.Command[domain.CliConfig] {
	return shoutCommands(depsFor(app))
}

func shoutCommands(deps actionDependencies) []dispatchers.Command[domain.CliConfig] {
	return []dispatchers.Command[domain.CliConfig]{
		shoutCommand("uppercase",
			func(c *ShoutConfig) bool { return c.Uppercase },
			func(c *ShoutConfig) error { return uppercase(c, deps) }),
		shoutCommand("repeat",
			func(c *ShoutConfig) bool { return c.HasRepeat },
			func(c *ShoutConfig) error { return repeat(c, deps) }),
		shoutCommand("echo",
			func(*ShoutConfig) bool { return true },
			func(c *ShoutConfig) error { return echo(c, deps) }),
	}
}

// shoutCommand adapts typed functions to a command over the capability.
func shoutCommand(name string, canHandle func(*ShoutConfig) bool, execute func(*ShoutConfig) error) dispatchers.Command[domain.CliConfig] {
	return dispatchers.NewCommand[domain.CliConfig](name,
		func(cfg domain.CliConfig) bool {
			c, ok := domain.As[*ShoutConfig](cfg)
			return ok && canHandle(c)
		},
		func(cfg domain.CliConfig) error {
			c, ok := domain.As[*ShoutConfig](cfg)
			if !ok {
				return fmt.Errorf("%s: unexpected config type %T", name, cfg)
			}
			return execute(c)
		})
}

func uppercase(c *ShoutConfig, deps actionDependencies) error {
	if c.IsDryRun() {
		_, err := fmt.Fprintf(deps.Stdout, "Would uppercase: %s\n", c.Text)
		return err
	}
	if c.Verbosity() > 0 {
		fmt.Fprintln(deps.Stderr, "Converting to uppercase...")
	}
	_, err := fmt.Fprintln(deps.Stdout, strings.ToUpper(c.Text))
	return err
}

func repeat(c *ShoutConfig, deps actionDependencies) error {
	if c.Repeat < 0 {
		return usage.InvalidFlag(fmt.Sprintf("invalid value for '--repeat': %d (must be 0 or more)", c.Repeat))
	}
	if c.IsDryRun() {
		_, err := fmt.Fprintf(deps.Stdout, "Would repeat '%s' %d times\n", c.Text, c.Repeat)
		return err
	}
	if c.Verbosity() > 0 {
		fmt.Fprintf(deps.Stderr, "Repeating %d times...\n", c.Repeat)
	}
	for range c.Repeat {
		if _, err := fmt.Fprintln(deps.Stdout, c.Text); err != nil {
			return err
		}
	}
	return nil
}

func echo(c *ShoutConfig, deps actionDependencies) error {
	if c.Verbosity() > 0 {
		fmt.Fprintln(deps.Stderr, "Echoing text...")
	}
	_, err := fmt.Fprintln(deps.Stdout, c.Text)
	return err
}
