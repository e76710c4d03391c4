package errors

import (
	"errors"

	"github.com/neuronlabs/neuron-join/errors/class"
)

// IsClass checks if given error or any error in its chain is of given 'class'.
func IsClass(err error, c class.Class) bool {
	var classError ClassError
	if !errors.As(err, &classError) {
		return false
	}
	return classError.Class() == c
}

// IsMajor checks if the classified error is of provided major.
func IsMajor(err error, m class.Major) bool {
	var classError ClassError
	if !errors.As(err, &classError) {
		return false
	}
	return classError.Class().IsMajor(m)
}
