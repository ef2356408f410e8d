package usage

import (
	"fmt"
	"strings"
)

// InvalidFlag is returned when a flag is not recognised or has a bad value.
// Up to a few close matches may be offered as suggestions.
func InvalidFlag(detail string, suggestions ...string) *Error {
	msg := detail
	if len(suggestions) > 0 {
		msg = fmt.Sprintf("%s (did you mean %s?)", detail, strings.Join(suggestions, " or "))
	}
	return &Error{
		Kind:    ErrInvalidFlag,
		Message: msg,
	}
}
