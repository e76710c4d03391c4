package mapping

import (
	"strings"

	"github.com/neuronlabs/neuron-join/errors"
	"github.com/neuronlabs/neuron-join/errors/class"
	"github.com/neuronlabs/neuron-join/namer"
)

// NamingConvention is the model mapping naming convention.
type NamingConvention int

const (
	_ NamingConvention = iota
	// SnakeCase is the naming convention where all words are in lower case letters separated by the '_' character.
	// i.e.: naming_convention
	SnakeCase
	// CamelCase is the naming convention where words are not separated by any character or space and each word starts
	// with a capital letter.
	// i.e.: NamingConvention
	CamelCase
	// LowerCamelCase is the naming convention where words are not separated by any character or space and all but first words starts
	// with a capital letter.
	// i.e.: namingConvention
	LowerCamelCase
	// KebabCase is the naming convention where all words are in lower case letters separated by the '-' character.
	// i.e.: naming-convention
	KebabCase
)

// ParseNamingConvention parses the naming convention from its config 'name'.
func ParseNamingConvention(name string) (NamingConvention, error) {
	switch strings.ToLower(name) {
	case "snake":
		return SnakeCase, nil
	case "lower_camel":
		return LowerCamelCase, nil
	case "camel":
		return CamelCase, nil
	case "kebab":
		return KebabCase, nil
	}
	return 0, errors.NewDetf(class.ConfigValueInvalid, "unknown naming convention name: %s", name)
}

// Namer gets the namer function for the naming convention.
func (n NamingConvention) Namer() namer.Namer {
	switch n {
	case CamelCase:
		return namer.NamingCamel
	case LowerCamelCase:
		return namer.NamingLowerCamel
	case KebabCase:
		return namer.NamingKebab
	default:
		return namer.NamingSnake
	}
}

func (n NamingConvention) String() string {
	switch n {
	case SnakeCase:
		return "snake"
	case CamelCase:
		return "camel"
	case LowerCamelCase:
		return "lower_camel"
	case KebabCase:
		return "kebab"
	}
	return "unknown"
}
