package config

import (
	"github.com/spf13/viper"

	"github.com/neuronlabs/neuron-join/errors"
	"github.com/neuronlabs/neuron-join/errors/class"
	"github.com/neuronlabs/neuron-join/log"
)

// ViperSetDefaults sets the default values for the viper config.
func ViperSetDefaults(v *viper.Viper) {
	setDefaults(v)
}

// ReadNamedConfig reads the config with the provided 'name' searched within provided 'paths'.
// If no paths are provided the current directory and the 'configs' directory are searched.
func ReadNamedConfig(name string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(name)

	if len(paths) == 0 {
		paths = []string{".", "configs"}
	}
	for _, path := range paths {
		v.AddConfigPath(path)
	}
	return read(v)
}

// ReadConfigFile reads the config from the file at 'path'.
func ReadConfigFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return read(v)
}

// ReadDefaultConfig reads the default configuration.
func ReadDefaultConfig() *Config {
	v := viper.New()
	setDefaults(v)

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		log.Debugf("Unmarshaling default config failed: %v", err)
		panic(err)
	}
	return c
}

func read(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	v.SetEnvPrefix("neuron_join")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.WrapDet(err, class.ConfigReadFailed)
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		log.Debugf("Unmarshaling Config failed. %v", err)
		return nil, errors.WrapDet(err, class.ConfigReadFailed)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func setDefaults(v *viper.Viper) {
	def := DefaultJoin()
	keys := map[string]interface{}{
		"join.use_table_alias":           def.UseTableAlias,
		"join.left_join":                 def.LeftJoin,
		"join.singleton_order_column":    def.SingletonOrderColumn,
		"join.singleton_order_direction": def.SingletonOrderDirection,
		"join.soft_delete_column":        def.SoftDeleteColumn,
		"join.naming_convention":         def.NamingConvention,
		"join.log_level":                 def.LogLevel,
	}

	for k, value := range keys {
		v.SetDefault(k, value)
	}
}
