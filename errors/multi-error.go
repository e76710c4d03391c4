package errors

import (
	"strings"
)

// MultiError is the list of errors collected by an operation that doesn't stop on the first failure.
type MultiError []error

// Error implements error interface. The messages are separated with the semicolons.
func (m MultiError) Error() string {
	messages := make([]string, len(m))
	for i, e := range m {
		messages[i] = e.Error()
	}
	return strings.Join(messages, "; ")
}

// Unwrap gets the collected errors, so that each of them is visible to the errors.Is and errors.As.
func (m MultiError) Unwrap() []error {
	return m
}

// ErrorOrNil gets the MultiError as an error, or nil if no errors were collected.
func (m MultiError) ErrorOrNil() error {
	if len(m) == 0 {
		return nil
	}
	return m
}
