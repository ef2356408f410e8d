package dispatchers

import (
	"errors"
	"sort"

	"github.com/swtools/swcli/internal/domain"
	"github.com/swtools/swcli/internal/log"
)

// ErrUnhandled is returned by Dispatch when no command accepts the request.
var ErrUnhandled = errors.New("no command could handle this request")

// Dispatcher picks and runs exactly one command per invocation.
//
// Commands are kept sorted by priority. Equal priorities keep registration
// order, so a catch-all registered last stays last among its peers.
type Dispatcher[C domain.CliConfig] struct {
	commands []Command[C]
	logger   domain.Logger
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*dispatcherOptions)

type dispatcherOptions struct {
	logger domain.Logger
}

// WithLogger makes the dispatcher log which command ran, or that none matched.
func WithLogger(logger domain.Logger) DispatcherOption {
	return func(o *dispatcherOptions) {
		o.logger = logger
	}
}

// New creates a dispatcher with no commands.
func New[C domain.CliConfig](opts ...DispatcherOption) *Dispatcher[C] {
	o := dispatcherOptions{logger: log.NopLogger{}}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.NopLogger{}
	}

	return &Dispatcher[C]{logger: o.logger}
}

// Register adds cmd and restores priority order.
// It returns d so registrations can be chained.
func (d *Dispatcher[C]) Register(cmd Command[C]) *Dispatcher[C] {
	d.commands = append(d.commands, cmd)
	sort.SliceStable(d.commands, func(i, j int) bool {
		return d.commands[i].Priority() < d.commands[j].Priority()
	})
	return d
}

// Commands returns the registered commands in dispatch order.
func (d *Dispatcher[C]) Commands() []Command[C] {
	out := make([]Command[C], len(d.commands))
	copy(out, d.commands)
	return out
}

// Dispatch runs the first command, in priority order, that can handle cfg and
// returns its result unchanged. Later commands are never consulted, even if
// the chosen one fails.
func (d *Dispatcher[C]) Dispatch(cfg C) error {
	for _, cmd := range d.commands {
		if !cmd.CanHandle(cfg) {
			continue
		}
		d.logger.Debug("dispatch: running %q (priority %d)", cmd.Name(), cmd.Priority())

		err := cmd.Execute(cfg)
		if err != nil {
			d.logger.Debug("dispatch: %q failed: %v", cmd.Name(), err)
		}
		return err
	}

	d.logger.Warn("dispatch: none of %d commands matched", len(d.commands))
	return ErrUnhandled
}
