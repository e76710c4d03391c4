// Package errors provides lightweight error handling and classification primitives.
//
// The package provides simple error handling interfaces and functions.
// It allows to create detailed classified errors, where each classification is defined
// in the 'errors/class' package.
package errors
