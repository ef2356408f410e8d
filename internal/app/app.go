package app

import (
	"errors"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/swtools/swcli/internal/config"
	"github.com/swtools/swcli/internal/domain"
	"github.com/swtools/swcli/internal/log"
	"github.com/swtools/swcli/internal/paths"
	"github.com/swtools/swcli/internal/ui"
	"github.com/swtools/swcli/internal/ui/style"
)

// Options configures the application factory.
type Options struct {
	// ConfigPath is the rc file read for defaults.
	ConfigPath string

	// Log options
	LogEnabled bool
	LogLevel   log.Level
	LogPath    string

	// Style options
	StyleEnabled bool

	Stdout io.Writer
	Stderr io.Writer
}

// DefaultOptions derives options for tool from its rc file and the terminal.
func DefaultOptions(tool string) Options {
	configPath := paths.ConfigFilePath(tool)
	settings, err := config.GetAll(configPath)
	if err != nil {
		// settings still holds the defaults
		log.Warn("config: %v", err)
	}

	return Options{
		ConfigPath:   configPath,
		LogEnabled:   settings["enable_log"] == "true",
		LogLevel:     log.ParseLevel(settings["log_level"]),
		LogPath:      paths.LogFilePath(tool),
		StyleEnabled: colorEnabled(settings["color"], term.IsTerminal(int(os.Stdout.Fd()))),
		Stdout:       os.Stdout,
		Stderr:       os.Stderr,
	}
}

// colorEnabled resolves the color rc key: always, never, or auto (follow the terminal).
func colorEnabled(mode string, isTerminal bool) bool {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "always":
		return true
	case "never":
		return false
	default:
		return isTerminal
	}
}

// New creates a new Application with all dependencies wired up.
func New(opts Options) *domain.Application {
	var logger domain.Logger = log.NopLogger{}
	if opts.LogEnabled && opts.LogPath != "" {
		// A log file that cannot be opened is not worth failing the tool over.
		if err := log.Init(opts.LogPath, opts.LogLevel); err == nil {
			if l := log.GetLogger(); l != nil {
				logger = l
			}
		}
	}

	style.Init(opts.StyleEnabled)

	stdout, stderr := opts.Stdout, opts.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &domain.Application{
		Config: config.NewProvider(opts.ConfigPath),
		Logger: logger,
		Stdout: ui.NewWriterTo(stdout),
		Stderr: ui.NewWriterTo(stderr),
		Styler: style.NewStyler(),
	}
}

// NewForTesting creates an Application writing to the given buffers,
// with no rc file, no logging and no styling.
func NewForTesting(stdout, stderr io.Writer) *domain.Application {
	return &domain.Application{
		Config: config.NewProvider(""),
		Logger: log.NopLogger{},
		Stdout: ui.NewWriterTo(stdout),
		Stderr: ui.NewWriterTo(stderr),
		Styler: style.NopStyler{},
	}
}

// Close cleans up application resources, including the global log file.
func Close(app *domain.Application) error {
	var err error
	if app.Logger != nil {
		err = app.Logger.Close()
	}
	return errors.Join(err, log.Close())
}
