package options

import "fmt"

// ArgumentError reports a malformed, missing or out-of-range option value,
// an unknown flag, or an unexpected positional argument.
type ArgumentError struct {
	Err error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid arguments: %v", e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}
