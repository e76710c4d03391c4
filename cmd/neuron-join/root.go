package main

import (
	"github.com/spf13/cobra"

	"github.com/neuronlabs/neuron-join/config"
	"github.com/neuronlabs/neuron-join/log"
	"github.com/neuronlabs/neuron-join/mapping"
)

// options are the values shared by the sub commands, set by the root persistent flags.
type options struct {
	configFile string
	logLevel   string
	schema     string

	cfg *config.Join
}

func newRootCmd() *cobra.Command {
	o := &options{}
	rootCmd := &cobra.Command{
		Use:   "neuron-join",
		Short: "Compiles the relation paths into SQL joins.",
		Long: `It compiles the dotted relation paths, i.e. 'posts.comments.author_name', of the models
defined in the YAML schema into the SQL queries with the relations joined.`,
		SilenceUsage:      true,
		PersistentPreRunE: o.preRun,
	}
	rootCmd.PersistentFlags().StringVarP(&o.configFile, "config", "c", "", "path to the configuration file")
	rootCmd.PersistentFlags().StringVar(&o.logLevel, "log-level", "", "logger level: debug3, debug2, debug, info, warning, error")
	rootCmd.PersistentFlags().StringVarP(&o.schema, "schema", "s", "schema.yaml", "path to the YAML schema file")

	rootCmd.AddCommand(newCompileCmd(o), newValidateCmd(o))
	return rootCmd
}

func (o *options) preRun(cmd *cobra.Command, args []string) error {
	c := config.ReadDefaultConfig()
	if o.configFile != "" {
		var err error
		if c, err = config.ReadConfigFile(o.configFile); err != nil {
			return err
		}
	}
	if err := c.Validate(); err != nil {
		return err
	}
	o.cfg = c.Join

	level := o.cfg.LogLevel
	if o.logLevel != "" {
		level = o.logLevel
	}
	log.New(cmd.ErrOrStderr(), "", 0)
	if err := log.SetLevel(log.ParseLevel(level)); err != nil {
		return err
	}
	log.Debugf("Configuration loaded: %+v", *o.cfg)
	return nil
}

// mapOptions gets the model map options for the configuration.
func (o *options) mapOptions() ([]mapping.MapOption, error) {
	naming, err := mapping.ParseNamingConvention(o.cfg.NamingConvention)
	if err != nil {
		return nil, err
	}
	return []mapping.MapOption{
		mapping.WithNamingConvention(naming),
		mapping.WithSoftDeleteColumn(o.cfg.SoftDeleteColumn),
	}, nil
}
