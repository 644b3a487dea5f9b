package serror

import "fmt"

// SimError is an error raised by the simulation core, usually because the host
// violated an integration contract.
type SimError struct {
	Err string
}

// New returns a SimError formatted with the given arguments.
func New(format string, args ...any) *SimError {
	return &SimError{Err: fmt.Sprintf(format, args...)}
}

func (e *SimError) Error() string {
	return e.Err
}
