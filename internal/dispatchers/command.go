package dispatchers

import "github.com/swtools/swcli/internal/domain"

// Reserved priorities. Lower values are tried first.
const (
	PriorityVersion = 0
	PriorityHelp    = 1
	DefaultPriority = 100
)

// Command is one mutually exclusive behaviour of a tool.
//
// CanHandle must be cheap and free of side effects: the dispatcher may call it
// on every registered command. Returning true is a commitment, since a failing
// Execute is reported as-is and no other command is tried.
type Command[C domain.CliConfig] interface {
	Name() string
	CanHandle(cfg C) bool
	Execute(cfg C) error
	Priority() int
}

// CanHandleFunc is the predicate half of a command.
type CanHandleFunc[C domain.CliConfig] func(cfg C) bool

// ExecuteFunc is the action half of a command.
type ExecuteFunc[C domain.CliConfig] func(cfg C) error

// CommandOption configures a command built by NewCommand.
type CommandOption func(*commandOptions)

type commandOptions struct {
	priority int
}

// WithPriority overrides DefaultPriority.
func WithPriority(priority int) CommandOption {
	return func(o *commandOptions) {
		o.priority = priority
	}
}

type funcCommand[C domain.CliConfig] struct {
	name      string
	priority  int
	canHandle CanHandleFunc[C]
	execute   ExecuteFunc[C]
}

// NewCommand builds a Command from a predicate and an action.
// A nil predicate never matches.
func NewCommand[C domain.CliConfig](
	name string,
	canHandle CanHandleFunc[C],
	execute ExecuteFunc[C],
	opts ...CommandOption,
) Command[C] {
	o := commandOptions{priority: DefaultPriority}
	for _, opt := range opts {
		opt(&o)
	}

	return &funcCommand[C]{
		name:      name,
		priority:  o.priority,
		canHandle: canHandle,
		execute:   execute,
	}
}

// Always is a predicate for catch-all commands.
func Always[C domain.CliConfig](C) bool { return true }

func (c *funcCommand[C]) Name() string  { return c.name }
func (c *funcCommand[C]) Priority() int { return c.priority }

func (c *funcCommand[C]) CanHandle(cfg C) bool {
	if c.canHandle == nil {
		return false
	}
	return c.canHandle(cfg)
}

func (c *funcCommand[C]) Execute(cfg C) error {
	if c.execute == nil {
		return nil
	}
	return c.execute(cfg)
}
