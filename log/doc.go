// Package log contains the default logger used by all neuron-join packages.
// It wraps the 'github.com/neuronlabs/uni-logger' leveled loggers, so that any logger
// implementing unilogger.LeveledLogger might be set with SetLogger.
//
// Until a logger is set all the logging functions are no-op.
// The ModuleLogger allows to set different levels for the package components.
package log
