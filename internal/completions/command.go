package completions

import (
	"fmt"
	"io"
	"os"

	"github.com/swtools/swcli/internal/cli"
	"github.com/swtools/swcli/internal/dispatchers"
	"github.com/swtools/swcli/internal/domain"
)

// PriorityCompletion runs after help and before every tool command.
const PriorityCompletion = dispatchers.PriorityHelp + 1

// Flag is the --completion flag tools add to their flag table.
var Flag = cli.FlagDescriptor{
	Names:       []string{"--completion"},
	ValueHint:   "<shell>",
	Description: "Print a completion script for bash, zsh or fish",
	Kind:        cli.KindString,
}

// Request carries the --completion value. Embed it in a tool config.
type Request struct {
	Shell string
}

// CompletionShell returns the requested shell, empty when none.
func (r Request) CompletionShell() string { return r.Shell }

// Requester is implemented by configs that embed Request.
type Requester interface {
	CompletionShell() string
}

// Command prints the completion script of tool when a config asks for one.
// Configs that do not implement Requester are never handled.
func Command[C domain.CliConfig](tool cli.AppSpec, out, diag io.Writer) dispatchers.Command[C] {
	if out == nil {
		out = os.Stdout
	}
	if diag == nil {
		diag = os.Stderr
	}

	return dispatchers.NewCommand[C]("completion",
		func(cfg C) bool {
			r, ok := any(cfg).(Requester)
			return ok && r.CompletionShell() != ""
		},
		func(cfg C) error {
			shell, err := ParseShell(any(cfg).(Requester).CompletionShell())
			if err != nil {
				return err
			}
			if cfg.IsDryRun() {
				_, err := fmt.Fprintf(out, "Would print %s completion script for %s\n", shell, tool.Name)
				return err
			}
			if cfg.Verbosity() > 0 {
				fmt.Fprintf(diag, "Add to %s:\n    %s\n", RcFile(shell), SourceInstructions(shell, tool.Name))
			}
			return PrintCompletions(out, shell, tool)
		},
		dispatchers.WithPriority(PriorityCompletion))
}
