package actions

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/swtools/swcli/internal/dispatchers"
	"github.com/swtools/swcli/internal/domain"
	"github.com/swtools/swcli/internal/log"
	"github.com/swtools/swcli/internal/usage"
)

// LinesCommands returns the lines tool's commands in registration order,
// writing through app (or the process streams when app is nil).
// Copy accepts everything and must stay last among equal priorities.
func LinesCommands(app *domain.Application) []dispatchers.Command[*LinesConfig] {
	return linesCommands(depsFor(app))
}

func linesCommands(deps actionDependencies) []dispatchers.Command[*LinesConfig] {
	return []dispatchers.Command[*LinesConfig]{
		dispatchers.NewCommand[*LinesConfig]("count",
			func(cfg *LinesConfig) bool { return cfg.Count },
			func(cfg *LinesConfig) error { return countLines(cfg, deps) }),
		dispatchers.NewCommand[*LinesConfig]("grep",
			func(cfg *LinesConfig) bool { return cfg.HasPattern },
			func(cfg *LinesConfig) error { return grepLines(cfg, deps) }),
		dispatchers.NewCommand[*LinesConfig]("reverse",
			func(cfg *LinesConfig) bool { return cfg.Reverse },
			func(cfg *LinesConfig) error { return reverseLines(cfg, deps) }),
		dispatchers.NewCommand[*LinesConfig]("copy",
			dispatchers.Always[*LinesConfig],
			func(cfg *LinesConfig) error { return copyLines(cfg, deps) }),
	}
}

func countLines(cfg *LinesConfig, deps actionDependencies) error {
	if len(cfg.Inputs) == 0 {
		diag(cfg, deps, "Reading from stdin...")
		n, err := count(deps.Stdin)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(deps.Stdout, n)
		return err
	}

	for _, path := range cfg.Inputs {
		if cfg.IsDryRun() {
			fmt.Fprintf(deps.Stdout, "Would count lines in: %s\n", path)
			continue
		}

		diag(cfg, deps, "Processing: "+path)
		n, err := withInput(deps, path, count)
		if err != nil {
			return err
		}
		log.Debug("count: %s: %d lines", path, n)

		if cfg.Verbosity() > 0 {
			fmt.Fprintf(deps.Stdout, "%s: %d lines\n", path, n)
		} else {
			fmt.Fprintln(deps.Stdout, n)
		}
	}
	return nil
}

func grepLines(cfg *LinesConfig, deps actionDependencies) error {
	return withOutput(cfg, deps, func(out io.Writer) error {
		if len(cfg.Inputs) == 0 {
			return forEachLine(deps.Stdin, func(line string) error {
				if !strings.Contains(line, cfg.Pattern) {
					return nil
				}
				_, err := fmt.Fprintln(out, line)
				return err
			})
		}

		for _, path := range cfg.Inputs {
			if cfg.IsDryRun() {
				fmt.Fprintf(deps.Stdout, "Would search for '%s' in: %s\n", cfg.Pattern, path)
				continue
			}

			prefix := ""
			if cfg.Verbosity() > 0 {
				prefix = path + ": "
			}
			_, err := withInput(deps, path, func(r io.Reader) (struct{}, error) {
				return struct{}{}, forEachLine(r, func(line string) error {
					if !strings.Contains(line, cfg.Pattern) {
						return nil
					}
					_, err := fmt.Fprintln(out, prefix+line)
					return err
				})
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func reverseLines(cfg *LinesConfig, deps actionDependencies) error {
	return withOutput(cfg, deps, func(out io.Writer) error {
		if len(cfg.Inputs) == 0 {
			return writeReversed(deps.Stdin, out)
		}

		for _, path := range cfg.Inputs {
			if cfg.IsDryRun() {
				fmt.Fprintf(deps.Stdout, "Would reverse lines in: %s\n", path)
				continue
			}
			_, err := withInput(deps, path, func(r io.Reader) (struct{}, error) {
				return struct{}{}, writeReversed(r, out)
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func copyLines(cfg *LinesConfig, deps actionDependencies) error {
	return withOutput(cfg, deps, func(out io.Writer) error {
		if len(cfg.Inputs) == 0 {
			return writeLines(deps.Stdin, out)
		}

		for _, path := range cfg.Inputs {
			if cfg.IsDryRun() {
				fmt.Fprintf(deps.Stdout, "Would copy: %s\n", path)
				continue
			}
			diag(cfg, deps, "Copying: "+path)
			_, err := withInput(deps, path, func(r io.Reader) (struct{}, error) {
				return struct{}{}, writeLines(r, out)
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// diag writes a progress line to stderr when verbose.
func diag(cfg *LinesConfig, deps actionDependencies, msg string) {
	if cfg.Verbosity() > 0 {
		fmt.Fprintln(deps.Stderr, msg)
	}
}

// withInput opens path, hands it to fn and closes it on every path.
// Open and read errors come back unchanged.
func withInput[T any](deps actionDependencies, path string, fn func(io.Reader) (T, error)) (T, error) {
	f, err := deps.Open(path)
	if err != nil {
		var zero T
		return zero, err
	}
	defer f.Close()

	return fn(f)
}

// withOutput runs fn against the -o file, or stdout when none was given.
// Under dry-run the file is announced and never created.
func withOutput(cfg *LinesConfig, deps actionDependencies, fn func(io.Writer) error) (err error) {
	if cfg.Output == "" {
		return fn(deps.Stdout)
	}

	// Creating the output truncates it, so it must not be one of the inputs.
	for _, path := range cfg.Inputs {
		if deps.SameFile(path, cfg.Output) {
			return usage.InvalidFlag(fmt.Sprintf("output file '%s' is also an input; refusing to overwrite it", cfg.Output))
		}
	}

	if cfg.IsDryRun() {
		fmt.Fprintf(deps.Stdout, "Would write output to: %s\n", cfg.Output)
		return fn(io.Discard)
	}

	f, err := deps.Create(cfg.Output)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	if err := fn(w); err != nil {
		return err
	}
	return w.Flush()
}

// forEachLine calls fn for every line of r without its line ending.
// A final line without a newline still counts.
func forEachLine(r io.Reader, fn func(line string) error) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if ferr := fn(line); ferr != nil {
				return ferr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func count(r io.Reader) (int, error) {
	n := 0
	err := forEachLine(r, func(string) error {
		n++
		return nil
	})
	return n, err
}

func readAll(r io.Reader) ([]string, error) {
	var lines []string
	err := forEachLine(r, func(line string) error {
		lines = append(lines, line)
		return nil
	})
	return lines, err
}

func writeReversed(r io.Reader, out io.Writer) error {
	lines, err := readAll(r)
	if err != nil {
		return err
	}
	slices.Reverse(lines)
	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

func writeLines(r io.Reader, out io.Writer) error {
	return forEachLine(r, func(line string) error {
		_, err := fmt.Fprintln(out, line)
		return err
	})
}
