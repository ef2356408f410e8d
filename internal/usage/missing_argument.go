package usage

import "fmt"

// MissingArgument is returned when a flag that takes a value was given none.
func MissingArgument(arg string) *Error {
	return &Error{
		Kind:    ErrMissingArgument,
		Message: fmt.Sprintf("missing value for '%s'", arg),
	}
}
