package actions

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/swtools/swcli/internal/cli"
	"github.com/swtools/swcli/internal/dispatchers"
	"github.com/swtools/swcli/internal/domain"
	"github.com/swtools/swcli/internal/usage"
)

type fakeFS struct {
	files   map[string]string
	opened  []string
	closed  []string
	created map[string]*bytes.Buffer
}

type trackedReader struct {
	io.Reader
	onClose func()
}

func (r trackedReader) Close() error { r.onClose(); return nil }

type trackedWriter struct {
	*bytes.Buffer
	onClose func()
}

func (w trackedWriter) Close() error { w.onClose(); return nil }

type testEnv struct {
	fs     *fakeFS
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	deps   actionDependencies
}

func newTestEnv(files map[string]string, stdin string) *testEnv {
	f := &fakeFS{files: files, created: map[string]*bytes.Buffer{}}
	env := &testEnv{fs: f, stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}}

	env.deps = actionDependencies{
		Stdout: env.stdout,
		Stderr: env.stderr,
		Stdin:  strings.NewReader(stdin),
		Open: func(name string) (io.ReadCloser, error) {
			content, ok := f.files[name]
			if !ok {
				return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
			}
			f.opened = append(f.opened, name)
			return trackedReader{
				Reader:  strings.NewReader(content),
				onClose: func() { f.closed = append(f.closed, name) },
			}, nil
		},
		Create: func(name string) (io.WriteCloser, error) {
			buf := &bytes.Buffer{}
			f.created[name] = buf
			return trackedWriter{
				Buffer:  buf,
				onClose: func() { f.closed = append(f.closed, name) },
			}, nil
		},
		SameFile: func(a, b string) bool { return filepath.Clean(a) == filepath.Clean(b) },
	}
	return env
}

func (e *testEnv) dispatch(t *testing.T, cfg *LinesConfig) error {
	t.Helper()
	d := dispatchers.New[*LinesConfig]()
	for _, cmd := range linesCommands(e.deps) {
		d.Register(cmd)
	}
	return d.Dispatch(cfg)
}

var sampleFiles = map[string]string{
	"a.txt": "one\ntwo\nthree\n",
	"b.txt": "alpha\nbeta", // no trailing newline
}

func TestLinesCommands_Order(t *testing.T) {
	var names []string
	for _, cmd := range LinesCommands(nil) {
		names = append(names, cmd.Name())
		require.Equal(t, dispatchers.DefaultPriority, cmd.Priority())
	}
	require.Equal(t, []string{"count", "grep", "reverse", "copy"}, names)
}

func TestCount(t *testing.T) {
	tests := []struct {
		name       string
		cfg        LinesConfig
		stdin      string
		wantStdout string
		wantStderr string
	}{
		{
			name:       "files",
			cfg:        LinesConfig{Count: true, Inputs: []string{"a.txt", "b.txt"}},
			wantStdout: "3\n2\n",
		},
		{
			name:       "verbose",
			cfg:        LinesConfig{BaseConfig: domain.BaseConfig{Verbose: true}, Count: true, Inputs: []string{"a.txt"}},
			wantStdout: "a.txt: 3 lines\n",
			wantStderr: "Processing: a.txt\n",
		},
		{
			name:       "quiet beats verbose",
			cfg:        LinesConfig{BaseConfig: domain.BaseConfig{Verbose: true, Quiet: true}, Count: true, Inputs: []string{"a.txt"}},
			wantStdout: "3\n",
		},
		{
			name:       "stdin",
			cfg:        LinesConfig{BaseConfig: domain.BaseConfig{Verbose: true}, Count: true},
			stdin:      "x\ny\n",
			wantStdout: "2\n",
			wantStderr: "Reading from stdin...\n",
		},
		{
			name:       "empty stdin",
			cfg:        LinesConfig{Count: true},
			wantStdout: "0\n",
		},
		{
			name:       "dry run",
			cfg:        LinesConfig{BaseConfig: domain.BaseConfig{DryRun: true}, Count: true, Inputs: []string{"a.txt", "missing.txt"}},
			wantStdout: "Would count lines in: a.txt\nWould count lines in: missing.txt\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(sampleFiles, tt.stdin)
			cfg := tt.cfg

			require.NoError(t, env.dispatch(t, &cfg))
			require.Equal(t, tt.wantStdout, env.stdout.String())
			require.Equal(t, tt.wantStderr, env.stderr.String())
			require.Equal(t, env.fs.opened, env.fs.closed)
		})
	}
}

func TestGrep(t *testing.T) {
	env := newTestEnv(sampleFiles, "")
	cfg := &LinesConfig{Pattern: "t", HasPattern: true, Inputs: []string{"a.txt", "b.txt"}}

	require.NoError(t, env.dispatch(t, cfg))
	require.Equal(t, "two\nthree\nbeta\n", env.stdout.String())
}

func TestGrep_VerbosePrefixesPath(t *testing.T) {
	env := newTestEnv(sampleFiles, "")
	cfg := &LinesConfig{BaseConfig: domain.BaseConfig{Verbose: true}, Pattern: "e", HasPattern: true, Inputs: []string{"a.txt"}}

	require.NoError(t, env.dispatch(t, cfg))
	require.Equal(t, "a.txt: one\na.txt: three\n", env.stdout.String())
}

func TestGrep_EmptyPatternMatchesAll(t *testing.T) {
	env := newTestEnv(nil, "x\ny\n")
	cfg := &LinesConfig{HasPattern: true}

	require.NoError(t, env.dispatch(t, cfg))
	require.Equal(t, "x\ny\n", env.stdout.String())
}

func TestReverse(t *testing.T) {
	env := newTestEnv(sampleFiles, "")
	cfg := &LinesConfig{Reverse: true, Inputs: []string{"a.txt", "b.txt"}}

	require.NoError(t, env.dispatch(t, cfg))
	require.Equal(t, "three\ntwo\none\nbeta\nalpha\n", env.stdout.String())
}

func TestReverse_Stdin(t *testing.T) {
	env := newTestEnv(nil, "1\r\n2\r\n3")
	cfg := &LinesConfig{Reverse: true}

	require.NoError(t, env.dispatch(t, cfg))
	require.Equal(t, "3\n2\n1\n", env.stdout.String())
}

func TestCopy_IsDefault(t *testing.T) {
	env := newTestEnv(sampleFiles, "")
	cfg := &LinesConfig{Inputs: []string{"b.txt"}}

	require.NoError(t, env.dispatch(t, cfg))
	require.Equal(t, "alpha\nbeta\n", env.stdout.String())
}

func TestCountWinsOverGrep(t *testing.T) {
	env := newTestEnv(sampleFiles, "")
	cfg := &LinesConfig{Count: true, Pattern: "t", HasPattern: true, Reverse: true, Inputs: []string{"a.txt"}}

	require.NoError(t, env.dispatch(t, cfg))
	require.Equal(t, "3\n", env.stdout.String())
}

func TestOutputFile(t *testing.T) {
	env := newTestEnv(sampleFiles, "")
	cfg := &LinesConfig{Reverse: true, Inputs: []string{"a.txt"}, Output: "out.txt"}

	require.NoError(t, env.dispatch(t, cfg))
	require.Empty(t, env.stdout.String())
	require.Equal(t, "three\ntwo\none\n", env.fs.created["out.txt"].String())
	require.Equal(t, []string{"a.txt", "out.txt"}, env.fs.closed)
}

func TestOutputFile_ClosedOnInputError(t *testing.T) {
	env := newTestEnv(sampleFiles, "")
	cfg := &LinesConfig{Inputs: []string{"a.txt", "missing.txt"}, Output: "out.txt"}

	err := env.dispatch(t, cfg)
	require.ErrorIs(t, err, fs.ErrNotExist)
	require.Contains(t, env.fs.closed, "out.txt")
}

func TestMissingInputErrorIsUnchanged(t *testing.T) {
	for _, cfg := range []*LinesConfig{
		{Count: true, Inputs: []string{"missing.txt"}},
		{Pattern: "x", HasPattern: true, Inputs: []string{"missing.txt"}},
		{Reverse: true, Inputs: []string{"missing.txt"}},
		{Inputs: []string{"missing.txt"}},
	} {
		env := newTestEnv(sampleFiles, "")
		err := env.dispatch(t, cfg)

		var pathErr *fs.PathError
		require.True(t, errors.As(err, &pathErr))
		require.Equal(t, "missing.txt", pathErr.Path)
		require.ErrorIs(t, err, fs.ErrNotExist)
	}
}

func TestDryRun_TouchesNothing(t *testing.T) {
	base := domain.BaseConfig{DryRun: true}
	tests := []struct {
		name string
		cfg  LinesConfig
		want string
	}{
		{
			name: "grep",
			cfg:  LinesConfig{BaseConfig: base, Pattern: "x", HasPattern: true, Inputs: []string{"a.txt"}},
			want: "Would search for 'x' in: a.txt\n",
		},
		{
			name: "reverse",
			cfg:  LinesConfig{BaseConfig: base, Reverse: true, Inputs: []string{"a.txt"}},
			want: "Would reverse lines in: a.txt\n",
		},
		{
			name: "copy with output",
			cfg:  LinesConfig{BaseConfig: base, Inputs: []string{"a.txt", "b.txt"}, Output: "out.txt"},
			want: "Would write output to: out.txt\nWould copy: a.txt\nWould copy: b.txt\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(sampleFiles, "")
			cfg := tt.cfg

			// Running twice must print the same and still touch nothing.
			require.NoError(t, env.dispatch(t, &cfg))
			first := env.stdout.String()
			require.NoError(t, env.dispatch(t, &cfg))

			require.Equal(t, tt.want, first)
			require.Equal(t, tt.want+tt.want, env.stdout.String())
			require.Empty(t, env.fs.opened)
			require.Empty(t, env.fs.created)
		})
	}
}

func TestLinesAgainstRealFiles(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(in, []byte("a\nb\nc\n"), 0644))

	deps := defaultDeps()
	var stdout bytes.Buffer
	deps.Stdout = &stdout

	d := dispatchers.New[*LinesConfig]()
	for _, cmd := range linesCommands(deps) {
		d.Register(cmd)
	}

	require.NoError(t, d.Dispatch(&LinesConfig{Reverse: true, Inputs: []string{in}, Output: out}))
	content, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "c\nb\na\n", string(content))

	err = d.Dispatch(&LinesConfig{Count: true, Inputs: []string{filepath.Join(dir, "nope.txt")}})
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewLinesConfig(t *testing.T) {
	pf, err := cli.Parse(cli.NewFlagSet("lines", LinesApp.Flags), []string{"-v", "-i", "a.txt", "-p", "x", "--count", "b.txt", "-o", "out.txt"})
	require.NoError(t, err)

	cfg := NewLinesConfig(pf, nil)
	require.True(t, cfg.Verbose)
	require.Equal(t, []string{"a.txt", "b.txt"}, cfg.Inputs)
	require.Equal(t, "out.txt", cfg.Output)
	require.Equal(t, "x", cfg.Pattern)
	require.True(t, cfg.HasPattern)
	require.True(t, cfg.Count)
	require.False(t, cfg.Reverse)
}

func TestOutputFile_RefusesToOverwriteAnInput(t *testing.T) {
	for _, cfg := range []*LinesConfig{
		{Reverse: true, Inputs: []string{"a.txt"}, Output: "a.txt"},
		{Inputs: []string{"b.txt", "./a.txt"}, Output: "a.txt"},
		{BaseConfig: domain.BaseConfig{DryRun: true}, Pattern: "o", HasPattern: true, Inputs: []string{"a.txt"}, Output: "a.txt"},
	} {
		env := newTestEnv(sampleFiles, "")
		err := env.dispatch(t, cfg)

		var usageErr *usage.Error
		require.True(t, errors.As(err, &usageErr))
		require.Equal(t, 2, usageErr.GetExitCode())
		require.Contains(t, usageErr.Message, "output file 'a.txt' is also an input")
		require.Empty(t, env.fs.created)
		require.Empty(t, env.fs.opened)
		require.Empty(t, env.stdout.String())
	}
}

func TestOutputFile_SameFileOnDisk(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(in, []byte("1\n2\n3\n"), 0644))

	deps := defaultDeps()
	deps.Stdout = &bytes.Buffer{}
	d := dispatchers.New[*LinesConfig]()
	for _, cmd := range linesCommands(deps) {
		d.Register(cmd)
	}

	other := filepath.Join(dir, "sub", "..", "in.txt")
	err := d.Dispatch(&LinesConfig{Reverse: true, Inputs: []string{in}, Output: other})
	require.Error(t, err)

	content, err := os.ReadFile(in)
	require.NoError(t, err)
	require.Equal(t, "1\n2\n3\n", string(content))
}

func TestSameFile(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(a, nil, 0644))
	link := filepath.Join(dir, "link.txt")

	require.True(t, sameFile(a, a))
	require.True(t, sameFile(a, filepath.Join(dir, ".", "a.txt")))
	require.False(t, sameFile(a, filepath.Join(dir, "b.txt")))
	require.True(t, sameFile(filepath.Join(dir, "new.txt"), filepath.Join(dir, "new.txt")))

	if err := os.Symlink(a, link); err == nil {
		require.True(t, sameFile(a, link))
	}
}
