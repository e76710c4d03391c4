package main

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/neuronlabs/neuron-join/errors"
	"github.com/neuronlabs/neuron-join/errors/class"
	"github.com/neuronlabs/neuron-join/query"
)

// maxOperatorWords is the number of words of the longest operator: 'is not null'.
const maxOperatorWords = 3

type condition struct {
	path  string
	op    *query.Operator
	value interface{}
}

// conditionExpr is the condition expression of the '--where' or the '--or-where' flag.
type conditionExpr struct {
	or   bool
	expr string
}

// conditionsFlag is the flag value appending its expressions to the list shared by the
// '--where' and '--or-where' flags, so that the conditions keep the command line order.
type conditionsFlag struct {
	or    bool
	exprs *[]conditionExpr
}

func (f *conditionsFlag) String() string {
	var values []string
	for _, c := range *f.exprs {
		if c.or == f.or {
			values = append(values, c.expr)
		}
	}
	return "[" + strings.Join(values, ",") + "]"
}

func (f *conditionsFlag) Set(value string) error {
	*f.exprs = append(*f.exprs, conditionExpr{or: f.or, expr: value})
	return nil
}

func (f *conditionsFlag) Type() string {
	return "stringArray"
}

// parseCondition parses the condition expression 'path operator [value]'.
// The value is decoded as the YAML scalar or flow sequence, i.e.: '10', 'true', '[a, b]'.
func parseCondition(expr string) (*condition, error) {
	tokens := strings.Fields(expr)
	if len(tokens) < 2 {
		return nil, errors.NewDetf(class.QueryInvalidValue, "invalid condition: '%s', expected 'path operator value'", expr)
	}

	c := &condition{path: tokens[0]}
	for n := maxOperatorWords; n > 0; n-- {
		if 1+n > len(tokens) {
			continue
		}
		op, err := query.ParseOperator(strings.Join(tokens[1:1+n], " "))
		if err != nil {
			continue
		}
		c.op = op
		raw := strings.Join(tokens[1+n:], " ")
		switch {
		case op.IsNullCheck() && raw != "":
			return nil, errors.NewDetf(class.QueryInvalidValue, "operator: '%s' takes no value in condition: '%s'", op, expr)
		case op.IsNullCheck():
		case raw == "":
			return nil, errors.NewDetf(class.QueryInvalidValue, "no value in condition: '%s'", expr)
		default:
			c.value = parseValue(raw)
		}
		return c, nil
	}
	return nil, errors.NewDetf(class.QueryInvalidOperator, "no valid operator in condition: '%s'", expr)
}

func parseValue(raw string) interface{} {
	var value interface{}
	if err := yaml.Unmarshal([]byte(raw), &value); err != nil || value == nil {
		return raw
	}
	if _, ok := value.(map[string]interface{}); ok {
		return raw
	}
	return value
}

// parseOrder parses the sort expression 'path [asc|desc]'.
func parseOrder(expr string) (string, query.SortOrder, error) {
	tokens := strings.Fields(expr)
	switch len(tokens) {
	case 1:
		return tokens[0], query.AscendingOrder, nil
	case 2:
		order, err := query.ParseSortOrder(tokens[1])
		return tokens[0], order, err
	}
	return "", query.AscendingOrder, errors.NewDetf(class.QueryInvalidSortOrder, "invalid sort expression: '%s'", expr)
}
