// Package config contains the configuration structures for the neuron-join packages.
// The configuration is read with the 'github.com/spf13/viper' and validated
// with the 'gopkg.in/go-playground/validator.v9' tags.
package config
