package frame

import "fmt"

// DataError is an expected, user-facing failure: a missing column, a value
// out of range, a bad option enum. It is reported as a single line on stderr
// and a non-zero exit, without a usage dump. Anything else returned up the
// command stack is treated as a programming or environment error.
type DataError struct {
	msg string
}

func (e *DataError) Error() string {
	return e.msg
}

// Errorf builds a DataError with a formatted message. The message is shown
// to the user verbatim, so known cases keep stable literal prefixes.
func Errorf(format string, args ...any) *DataError {
	return &DataError{msg: fmt.Sprintf(format, args...)}
}
