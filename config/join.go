package config

import (
	"strings"

	"gopkg.in/go-playground/validator.v9"

	"github.com/neuronlabs/neuron-join/errors"
	"github.com/neuronlabs/neuron-join/errors/class"
)

// Join is the configuration of the relation join compiler.
type Join struct {
	// UseTableAlias sets the alias mode. When set the joined tables get the generated
	// unique aliases instead of the real table names.
	UseTableAlias bool `mapstructure:"use_table_alias"`

	// LeftJoin sets the default join mode. By default the relations are joined with 'LEFT JOIN'.
	LeftJoin bool `mapstructure:"left_join"`

	// SingletonOrderColumn is the column used to pick the single row of the has-one relations.
	// If empty the related model primary key is used.
	SingletonOrderColumn string `mapstructure:"singleton_order_column"`

	// SingletonOrderDirection is the direction used to pick the single row of the has-one relations.
	SingletonOrderDirection string `mapstructure:"singleton_order_direction" validate:"required,oneof=asc desc ASC DESC"`

	// SoftDeleteColumn is the default soft delete column name.
	SoftDeleteColumn string `mapstructure:"soft_delete_column" validate:"required"`

	// NamingConvention is the naming convention used for mapping the models.
	NamingConvention string `mapstructure:"naming_convention" validate:"required,oneof=snake kebab camel lower_camel"`

	// LogLevel is the default logger level name.
	LogLevel string `mapstructure:"log_level" validate:"omitempty,oneof=debug3 debug2 debug info warning error critical"`
}

var validate = validator.New()

// Validate checks if the join configuration values are valid.
func (j *Join) Validate() error {
	if err := validate.Struct(j); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return errors.WrapDet(err, class.ConfigValueInvalid)
		}
		fields := make([]string, len(verrs))
		for i, fe := range verrs {
			fields[i] = fe.Namespace() + ": " + fe.Tag()
		}
		return errors.NewDet(class.ConfigValueInvalid, "invalid join configuration").
			WithDetail(strings.Join(fields, ", "))
	}
	return nil
}
