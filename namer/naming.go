package namer

import (
	"github.com/iancoleman/strcase"
	"github.com/jinzhu/inflection"
)

// Namer is the function that change the name with some prepared formatting.
type Namer func(string) string

// NamingSnake is a Namer function that converts the 'raw' into the 'snake_case_model'.
func NamingSnake(raw string) string {
	return strcase.ToSnake(raw)
}

// NamingKebab is a Namer function that converts the 'raw' into the 'kebab-case-model'.
func NamingKebab(raw string) string {
	return strcase.ToKebab(raw)
}

// NamingCamel is a Namer function that converts the 'raw' into the 'CamelCaseModel'.
func NamingCamel(raw string) string {
	return strcase.ToCamel(raw)
}

// NamingLowerCamel is a Namer function that converts the 'raw' into the 'camelCaseModel'.
func NamingLowerCamel(raw string) string {
	return strcase.ToLowerCamel(raw)
}

// Plural gets the plural form of the 'raw' english noun.
func Plural(raw string) string {
	return inflection.Plural(raw)
}

// TableName gets the default table name for the model type name using the 'namer' function,
// i.e.: 'BlogPost' with snake namer would be 'blog_posts'.
func TableName(typeName string, namer Namer) string {
	return namer(Plural(typeName))
}
