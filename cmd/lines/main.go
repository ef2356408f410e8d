package main

import (
	"errors"
	"os"

	"github.com/swtools/swcli/internal/actions"
	"github.com/swtools/swcli/internal/app"
	"github.com/swtools/swcli/internal/cli"
	"github.com/swtools/swcli/internal/completions"
	"github.com/swtools/swcli/internal/dispatchers"
	"github.com/swtools/swcli/internal/domain"
	"github.com/swtools/swcli/internal/usage"
)

const toolName = "lines"

func main() {
	a := app.New(app.DefaultOptions(toolName))
	code := run(a, os.Args[1:])
	_ = app.Close(a)
	os.Exit(code)
}

func run(a *domain.Application, args []string) int {
	pf, err := cli.Parse(cli.NewFlagSet(toolName, actions.LinesApp.Flags), args)
	if err != nil {
		return app.ReportError(a, err)
	}
	cfg := actions.NewLinesConfig(pf, a.Config)

	d := dispatchers.NewWithBuiltins[*actions.LinesConfig](dispatchers.Builtins{
		Version:   app.VersionInfo("Copyright (c) 2025 swtools contributors", "MIT", "https://opensource.org/licenses/MIT"),
		ShortHelp: cli.ShortHelp(actions.LinesApp),
		LongHelp:  cli.LongHelp(actions.LinesApp),
		Out:       a.Stdout,
	}, dispatchers.WithLogger(a.Logger))
	d.Register(completions.Command[*actions.LinesConfig](actions.LinesApp, a.Stdout, a.Stderr))
	for _, cmd := range actions.LinesCommands(a) {
		d.Register(cmd)
	}

	err = d.Dispatch(cfg)
	if errors.Is(err, dispatchers.ErrUnhandled) {
		err = usage.Unhandled(toolName, err)
	}
	return app.ReportError(a, err)
}
