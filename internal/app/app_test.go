package app

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/swtools/swcli/internal/log"
	"github.com/swtools/swcli/internal/usage"
)

func TestColorEnabled(t *testing.T) {
	tests := []struct {
		mode     string
		terminal bool
		want     bool
	}{
		{"always", false, true},
		{"ALWAYS", false, true},
		{"never", true, false},
		{"auto", true, true},
		{"auto", false, false},
		{"", true, true},
		{"bogus", false, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%v", tt.mode, tt.terminal), func(t *testing.T) {
			require.Equal(t, tt.want, colorEnabled(tt.mode, tt.terminal))
		})
	}
}

func TestDefaultOptions_ReadsRcFile(t *testing.T) {
	dir := t.TempDir()
	rc := filepath.Join(dir, "lines.conf")
	require.NoError(t, os.WriteFile(rc, []byte("color=never\nenable_log=true\nlog_level=debug\n"), 0600))
	t.Setenv("SWCLI_CONFIG", rc)

	opts := DefaultOptions("lines")

	require.Equal(t, rc, opts.ConfigPath)
	require.False(t, opts.StyleEnabled)
	require.True(t, opts.LogEnabled)
	require.Equal(t, log.LevelDebug, opts.LogLevel)
	require.Equal(t, "lines.log", filepath.Base(opts.LogPath))
}

func TestDefaultOptions_MissingRcFile(t *testing.T) {
	t.Setenv("SWCLI_CONFIG", filepath.Join(t.TempDir(), "absent.conf"))

	opts := DefaultOptions("shout")

	require.False(t, opts.LogEnabled)
	require.Equal(t, log.LevelWarn, opts.LogLevel)
}

func TestNew_WithoutLogging(t *testing.T) {
	var stdout, stderr bytes.Buffer
	app := New(Options{Stdout: &stdout, Stderr: &stderr})

	require.IsType(t, log.NopLogger{}, app.Logger)
	require.False(t, app.Styler.Enabled())

	_, err := app.Stdout.Println("out")
	require.NoError(t, err)
	require.Equal(t, "out\n", stdout.String())
	require.NoError(t, Close(app))
}

func TestNew_WithLogging(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "tool.log")
	app := New(Options{LogEnabled: true, LogLevel: log.LevelInfo, LogPath: logPath, Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}})

	require.IsType(t, &log.Logger{}, app.Logger)
	require.Same(t, log.GetLogger(), app.Logger)

	app.Logger.Info("before close")
	require.NoError(t, Close(app))
	log.Info("after close")
	require.NoError(t, Close(app))

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(content), "INFO: before close")
	require.NotContains(t, string(content), "after close")
}

func TestNewForTesting(t *testing.T) {
	app := NewForTesting(&bytes.Buffer{}, &bytes.Buffer{})

	require.NotNil(t, app.Config)
	require.NotNil(t, app.Logger)
	require.NotNil(t, app.Stdout)
	require.NotNil(t, app.Stderr)
	require.NotNil(t, app.Styler)

	value, ok := app.Config.Get("color")
	require.True(t, ok)
	require.Equal(t, "auto", value)
	require.NoError(t, Close(app))
}

func TestReportError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantText string
	}{
		{name: "nil", err: nil, wantCode: 0, wantText: ""},
		{name: "plain", err: errors.New("boom"), wantCode: 1, wantText: "Error: boom\n"},
		{name: "usage", err: usage.InvalidFlag("unknown flag: --x"), wantCode: 2, wantText: "Error: unknown flag: --x\n"},
		{name: "wrapped usage", err: fmt.Errorf("parse: %w", usage.MissingArgument("-o")), wantCode: 2, wantText: "Error: parse: missing value for '-o'\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			app := NewForTesting(&bytes.Buffer{}, &stderr)

			require.Equal(t, tt.wantCode, ReportError(app, tt.err))
			require.Equal(t, tt.wantText, stderr.String())
		})
	}
}

func TestVersionInfo(t *testing.T) {
	saved := []string{Version, Commit, BuildHost, BuildTimestamp}
	defer func() { Version, Commit, BuildHost, BuildTimestamp = saved[0], saved[1], saved[2], saved[3] }()

	Version, Commit, BuildHost, BuildTimestamp = "1.2.0", "0123456789abcdef", "ci", "1700000000000"
	v := VersionInfo("Copyright (c) 2025 Example", "MIT", "https://opensource.org/licenses/MIT")

	require.Equal(t, "1.2.0", v.Version)
	require.Equal(t, int64(1700000000000), v.Build.TimestampMs)
	require.Equal(t, "Build: 0123456 @ ci (2023-11-14T22:13:20+00:00)", v.Build.String())

	BuildTimestamp = "yesterday"
	require.Equal(t, int64(0), VersionInfo("", "", "").Build.TimestampMs)
}
