package app

import (
	"errors"

	"github.com/swtools/swcli/internal/domain"
	"github.com/swtools/swcli/internal/usage"
)

// ReportError prints err to the application's stderr as "Error: <message>"
// and returns the exit code main should use. A nil err yields 0.
func ReportError(app *domain.Application, err error) int {
	if err == nil {
		return 0
	}

	app.Logger.Error("%v", err)
	_, _ = app.Stderr.Printf("%s %s\n", app.Styler.Error("Error:"), err.Error())

	var usageErr *usage.Error
	if errors.As(err, &usageErr) {
		return usageErr.GetExitCode()
	}
	return 1
}
