package config

// Config contains general configurations for the neuron-join packages.
type Config struct {
	// Join defines the configuration for the relation join compiler.
	Join *Join `mapstructure:"join"`
}

// Validate validates the config values.
func (c *Config) Validate() error {
	if c.Join == nil {
		c.Join = DefaultJoin()
	}
	return c.Join.Validate()
}
