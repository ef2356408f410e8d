package usage

import "fmt"

// Unhandled wraps err, normally dispatchers.ErrUnhandled, for the named tool.
func Unhandled(tool string, err error) *Error {
	return &Error{
		Kind:    ErrUnhandledRequest,
		Message: fmt.Sprintf("%s. See '%s --help'.", err, tool),
		Err:     err,
	}
}
