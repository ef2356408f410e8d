package actions

import (
	"io"
	"os"
	"path/filepath"

	"github.com/swtools/swcli/internal/domain"
)

type actionDependencies struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
	Open   func(name string) (io.ReadCloser, error)
	Create func(name string) (io.WriteCloser, error)
	// SameFile reports whether both names refer to one file.
	SameFile func(a, b string) bool
}

func defaultDeps() actionDependencies {
	return actionDependencies{
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Stdin:    os.Stdin,
		Open:     func(name string) (io.ReadCloser, error) { return os.Open(name) },
		Create:   func(name string) (io.WriteCloser, error) { return os.Create(name) },
		SameFile: sameFile,
	}
}

// sameFile compares by inode when both files exist, by absolute path otherwise.
func sameFile(a, b string) bool {
	ai, aerr := os.Stat(a)
	bi, berr := os.Stat(b)
	if aerr == nil && berr == nil {
		return os.SameFile(ai, bi)
	}

	absA, err := filepath.Abs(a)
	if err != nil {
		return false
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false
	}
	return absA == absB
}

// depsFor routes command output through app's writers.
func depsFor(app *domain.Application) actionDependencies {
	deps := defaultDeps()
	if app == nil {
		return deps
	}
	if app.Stdout != nil {
		deps.Stdout = app.Stdout
	}
	if app.Stderr != nil {
		deps.Stderr = app.Stderr
	}
	return deps
}
