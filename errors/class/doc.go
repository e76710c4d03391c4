// Package class contains the error classification system used by all neuron-join packages.
// Each Class is composed of the Major, Minor and Index subclassifications registered
// at the package initialization.
package class
