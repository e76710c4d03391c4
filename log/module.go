package log

import (
	"github.com/neuronlabs/uni-logger"
)

var modules = []*ModuleLogger{}

// ModuleLogger is the logger used by the specific modules.
// Each message is prefixed with the module name and filtered by the module level.
type ModuleLogger struct {
	Name         string
	currentLevel unilogger.Level
}

// NewModuleLogger creates new module logger for given 'name' of the module.
func NewModuleLogger(name string) *ModuleLogger {
	m := &ModuleLogger{Name: name, currentLevel: currentLevel}
	modules = append(modules, m)
	return m
}

// Level gets the module logger level.
func (m *ModuleLogger) Level() unilogger.Level {
	return m.currentLevel
}

// SetLevel sets the moduleLogger level.
func (m *ModuleLogger) SetLevel(level unilogger.Level) {
	m.currentLevel = level
}

// Debug3f writes the formatted debug3 log.
func (m *ModuleLogger) Debug3f(format string, args ...interface{}) {
	if m.allowed(LDEBUG3) {
		Debug3f(m.name()+" "+format, args...)
	}
}

// Debug2f writes the formatted debug2 log.
func (m *ModuleLogger) Debug2f(format string, args ...interface{}) {
	if m.allowed(LDEBUG2) {
		Debug2f(m.name()+" "+format, args...)
	}
}

// Debugf writes the formatted debug log.
func (m *ModuleLogger) Debugf(format string, args ...interface{}) {
	if m.allowed(LDEBUG) {
		Debugf(m.name()+" "+format, args...)
	}
}

// Infof writes the formatted info log.
func (m *ModuleLogger) Infof(format string, args ...interface{}) {
	if m.allowed(LINFO) {
		Infof(m.name()+" "+format, args...)
	}
}

// Warningf writes the formatted warning log.
func (m *ModuleLogger) Warningf(format string, args ...interface{}) {
	if m.allowed(LWARNING) {
		Warningf(m.name()+" "+format, args...)
	}
}

// Errorf writes the formatted error log.
func (m *ModuleLogger) Errorf(format string, args ...interface{}) {
	if m.allowed(LERROR) {
		Errorf(m.name()+" "+format, args...)
	}
}

func (m *ModuleLogger) allowed(level unilogger.Level) bool {
	return m.currentLevel == LUNKNOWN || level >= m.currentLevel
}

func (m *ModuleLogger) name() string {
	return "[" + m.Name + "]"
}
