package bias

import "fmt"

// ValidationError marks failures caused by the caller's data, as opposed to
// internal faults. Handlers map it to a 400 response.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func Validationf(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}
