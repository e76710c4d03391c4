package class

// MjrConfig is the major classification for the configuration errors.
var MjrConfig Major

var (
	// MnrConfigRead is the 'MjrConfig' minor classification for reading config issues.
	MnrConfigRead Minor

	// ConfigReadFailed is the 'MjrConfig', 'MnrConfigRead' error classification
	// used when the configuration couldn't be read or decoded.
	ConfigReadFailed Class

	// MnrConfigValue is the 'MjrConfig' minor classification for the config values.
	MnrConfigValue Minor

	// ConfigValueInvalid is the 'MjrConfig', 'MnrConfigValue' error classification
	// used when the configuration value doesn't pass the validation.
	ConfigValueInvalid Class
)

func registerConfigClasses() {
	MjrConfig = MustRegisterMajor("Config", "configuration related errors")

	MnrConfigRead = MjrConfig.MustRegisterMinor("Read", "reading configuration issues")
	ConfigReadFailed = MnrConfigRead.MustRegisterIndex("Failed", "reading or decoding the configuration failed").Class()

	MnrConfigValue = MjrConfig.MustRegisterMinor("Value", "configuration values issues")
	ConfigValueInvalid = MnrConfigValue.MustRegisterIndex("Invalid", "configuration value is not valid").Class()
}
