package class

// MjrCommon is the major classification for errors not bound to any specific package.
var MjrCommon Major

var (
	// MnrCommonLogger is the 'MjrCommon' minor classification for the logger issues.
	MnrCommonLogger Minor

	// CommonLoggerUnknownLevel is the 'MjrCommon', 'MnrCommonLogger' error classification
	// used when setting an unknown logger level.
	CommonLoggerUnknownLevel Class

	// CommonLoggerNotImplement is the 'MjrCommon', 'MnrCommonLogger' error classification
	// used when the logger doesn't implement required interface.
	CommonLoggerNotImplement Class
)

func registerCommonClasses() {
	MjrCommon = MustRegisterMajor("Common", "common errors used by all packages")

	MnrCommonLogger = MjrCommon.MustRegisterMinor("Logger", "logger related issues")
	CommonLoggerUnknownLevel = MnrCommonLogger.MustRegisterIndex("Unknown Level", "unknown logger level provided").Class()
	CommonLoggerNotImplement = MnrCommonLogger.MustRegisterIndex("Not Implement", "logger doesn't implement required interface").Class()
}
