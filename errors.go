package devon

import "errors"

// Startup failures. All of them abort the program before the terminal is
// switched into interactive mode.
var (
	ErrToolMissing        = errors.New("executable not found in $PATH")
	ErrMalformedOutput    = errors.New("malformed output")
	ErrSourceUnreadable   = errors.New("source file unreadable")
	ErrPositionOutOfRange = errors.New("position out of range")
	ErrInvalidConfig      = errors.New("invalid configuration")
)

// ToolError attributes a failure to the analyzer that caused it.
type ToolError struct {
	Tool string
	Err  error
}

func (e *ToolError) Error() string {
	return e.Tool + ": " + e.Err.Error()
}

func (e *ToolError) Unwrap() error {
	return e.Err
}
