package tagmark

import "fmt"

// ArgumentError reports an argument that does not satisfy an operation's
// contract. It is returned before any event is emitted, so no state has
// changed when the caller sees it.
type ArgumentError struct {
	Arg      string // name of the offending argument
	Expected string // human-readable expectation, e.g. "a number"
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("expected %s to be %s", e.Arg, e.Expected)
}

// NewArgumentError creates a new ArgumentError.
func NewArgumentError(arg, expected string) *ArgumentError {
	return &ArgumentError{Arg: arg, Expected: expected}
}
