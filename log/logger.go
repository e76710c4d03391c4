package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/neuronlabs/uni-logger"

	"github.com/neuronlabs/neuron-join/errors"
	"github.com/neuronlabs/neuron-join/errors/class"
)

const (
	// LDEBUG3 is the logger DEBUG3 level.
	LDEBUG3 = unilogger.DEBUG3
	// LDEBUG2 is the logger DEBUG2 level.
	LDEBUG2 = unilogger.DEBUG2
	// LDEBUG is the logger DEBUG level.
	LDEBUG = unilogger.DEBUG
	// LINFO is the logger INFO level.
	LINFO = unilogger.INFO
	// LWARNING is the logger WARNING level.
	LWARNING = unilogger.WARNING
	// LERROR is the logger ERROR level.
	LERROR = unilogger.ERROR
	// LCRITICAL is the logger CRITICAL level.
	LCRITICAL = unilogger.CRITICAL
	// LUNKNOWN is the unspecified logger level.
	LUNKNOWN = unilogger.UNKNOWN
)

var (
	logger         unilogger.LeveledLogger
	currentLevel   = LINFO
	debugLeveled   unilogger.DebugLeveledLogger
	isDebugLeveled bool
)

var levelNames = map[string]unilogger.Level{
	"debug3":   LDEBUG3,
	"debug2":   LDEBUG2,
	"debug":    LDEBUG,
	"info":     LINFO,
	"warning":  LWARNING,
	"warn":     LWARNING,
	"error":    LERROR,
	"critical": LCRITICAL,
}

// ParseLevel parses the level from its name. Unknown names result in LUNKNOWN level.
func ParseLevel(level string) unilogger.Level {
	l, ok := levelNames[strings.ToLower(strings.TrimSpace(level))]
	if !ok {
		return LUNKNOWN
	}
	return l
}

// Default creates and sets new unilogger.BasicLogger with writer to 'os.Stderr'.
func Default() {
	New(os.Stderr, "", log.Ldate|log.Ltime|log.Lshortfile)
}

// New creates new unilogger.BasicLogger that writes to provided 'out' io.Writer
// with specific 'prefix' and provided 'flags'.
func New(out io.Writer, prefix string, flags int) {
	basic := unilogger.NewBasicLogger(out, prefix, flags)
	basic.SetOutputDepth(4)
	SetLogger(basic)
}

// Logger returns default logger.
func Logger() unilogger.LeveledLogger {
	return logger
}

// Level returns current logger Level.
func Level() unilogger.Level {
	return currentLevel
}

// SetLogger sets the 'log' as the current logger.
func SetLogger(log unilogger.LeveledLogger) {
	logger = log

	if depth, ok := log.(unilogger.OutputDepthGetter); ok {
		if setter, ok := log.(unilogger.OutputDepthSetter); ok {
			setter.SetOutputDepth(depth.GetOutputDepth() + 1)
		}
	}

	if lvlSetter, ok := log.(unilogger.LevelSetter); ok {
		lvlSetter.SetLevel(currentLevel)
	}
	debugLeveled, isDebugLeveled = log.(unilogger.DebugLeveledLogger)

	for _, m := range modules {
		m.SetLevel(currentLevel)
	}
	Debugf("New logger set with level: %s", currentLevel)
}

// SetLevel sets the level if possible for the logger and all the module loggers.
func SetLevel(level unilogger.Level) error {
	if level == LUNKNOWN {
		return errors.NewDet(class.CommonLoggerUnknownLevel, "can't set unknown logger level. provided level is not valid")
	}

	if level == currentLevel {
		return nil
	}

	currentLevel = level
	for _, m := range modules {
		m.SetLevel(level)
	}
	if logger == nil {
		return nil
	}

	lvl, ok := logger.(unilogger.LevelSetter)
	if !ok {
		return errors.NewDet(class.CommonLoggerNotImplement, "logger doesn't implement LevelSetter interface")
	}
	lvl.SetLevel(currentLevel)
	return nil
}

// Debug writes the LDEBUG level log.
func Debug(args ...interface{}) {
	if logger != nil {
		logger.Debug(args...)
	}
}

// Debugf writes the formatted LDEBUG level log.
func Debugf(format string, args ...interface{}) {
	if logger != nil {
		logger.Debugf(format, args...)
	}
}

// Debug2f writes the formatted LDEBUG2 level log.
func Debug2f(format string, args ...interface{}) {
	if isDebugLeveled {
		debugLeveled.Debug2f(format, args...)
	} else if logger != nil {
		logger.Debugf(format, args...)
	}
}

// Debug3f writes the formatted LDEBUG3 level log.
func Debug3f(format string, args ...interface{}) {
	if isDebugLeveled {
		debugLeveled.Debug3f(format, args...)
	} else if logger != nil {
		logger.Debugf(format, args...)
	}
}

// Info writes the LINFO level log.
func Info(args ...interface{}) {
	if logger != nil {
		logger.Info(args...)
	}
}

// Infof writes the formatted LINFO level log.
func Infof(format string, args ...interface{}) {
	if logger != nil {
		logger.Infof(format, args...)
	}
}

// Warning writes the warning level log.
func Warning(args ...interface{}) {
	if logger != nil {
		logger.Warning(args...)
	}
}

// Warningf writes the formatted warning level log.
func Warningf(format string, args ...interface{}) {
	if logger != nil {
		logger.Warningf(format, args...)
	}
}

// Error writes the LERROR level log.
func Error(args ...interface{}) {
	if logger != nil {
		logger.Error(args...)
	}
}

// Errorf writes the formatted LERROR level log.
func Errorf(format string, args ...interface{}) {
	if logger != nil {
		logger.Errorf(format, args...)
	}
}

// Fatalf writes the formatted fatal - LCRITICAL level log and exits.
func Fatalf(format string, args ...interface{}) {
	if logger != nil {
		logger.Fatalf(format, args...)
		return
	}
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}

// Panicf writes and panics formatted log.
func Panicf(format string, args ...interface{}) {
	if logger != nil {
		logger.Panicf(format, args...)
		return
	}
	panic(fmt.Sprintf(format, args...))
}
