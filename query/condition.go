package query

import (
	"reflect"
	"strings"

	"github.com/neuronlabs/neuron-join/errors"
	"github.com/neuronlabs/neuron-join/errors/class"
)

// Boolean is the logical conjunction used to join the conditions.
type Boolean int

const (
	// And joins the condition with the 'AND' conjunction.
	And Boolean = iota
	// Or joins the condition with the 'OR' conjunction.
	Or
)

// String implements fmt.Stringer interface.
func (b Boolean) String() string {
	if b == Or {
		return "OR"
	}
	return "AND"
}

type conditionKind int

const (
	conditionValue conditionKind = iota
	conditionColumn
	conditionNull
	conditionIn
	conditionRaw
	conditionGroup
)

// condition is a single where or on predicate. Once created it is not modified.
type condition struct {
	kind    conditionKind
	boolean Boolean
	column  string
	op      *Operator
	value   interface{}
	second  string
	raw     string
	args    []interface{}
	nested  []*condition
}

func newColumnCondition(boolean Boolean, first string, op *Operator, second string) *condition {
	return &condition{kind: conditionColumn, boolean: boolean, column: first, op: op, second: second}
}

func newNullCondition(boolean Boolean, column string, not bool) *condition {
	op := OpIsNull
	if not {
		op = OpNotNull
	}
	return &condition{kind: conditionNull, boolean: boolean, column: column, op: op}
}

func newRawCondition(boolean Boolean, raw string, args []interface{}) *condition {
	return &condition{kind: conditionRaw, boolean: boolean, raw: raw, args: args}
}

func newGroupCondition(boolean Boolean, nested []*condition) *condition {
	return &condition{kind: conditionGroup, boolean: boolean, nested: nested}
}

// newValueCondition creates the condition comparing the 'column' with the 'value'.
// A nil value compared with the equal or not equal operator results in the null check.
func newValueCondition(boolean Boolean, column string, op *Operator, value interface{}) (*condition, error) {
	if op == nil {
		return nil, errors.NewDetf(class.QueryInvalidOperator, "no operator provided for the column: '%s'", column)
	}
	if column == "" {
		return nil, errors.NewDet(class.QueryInvalidValue, "empty column name")
	}
	if op.IsNullCheck() {
		return newNullCondition(boolean, column, op.ID == OpNotNull.ID), nil
	}
	if value == nil {
		switch op.ID {
		case OpEqual.ID:
			return newNullCondition(boolean, column, false), nil
		case OpNotEqual.ID:
			return newNullCondition(boolean, column, true), nil
		}
		return nil, errors.NewDetf(class.QueryInvalidValue, "nil value for the operator: '%s'", op)
	}

	values, isList := listValues(value)
	if op.IsMultiValue() {
		if !isList {
			return nil, errors.NewDetf(class.QueryInvalidValue, "operator: '%s' requires the list of values", op)
		}
		return &condition{kind: conditionIn, boolean: boolean, column: column, op: op, args: values}, nil
	}
	if isList {
		return nil, errors.NewDetf(class.QueryInvalidValue, "operator: '%s' doesn't allow the list of values", op)
	}
	return &condition{kind: conditionValue, boolean: boolean, column: column, op: op, value: value}, nil
}

func listValues(value interface{}) ([]interface{}, bool) {
	if _, ok := value.([]byte); ok {
		return nil, false
	}
	v := reflect.ValueOf(value)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil, false
	}
	values := make([]interface{}, v.Len())
	for i := range values {
		values[i] = v.Index(i).Interface()
	}
	return values, true
}

// writeConditions writes the 'conditions' into 'sb' and appends their arguments in order of appearance.
func writeConditions(sb *strings.Builder, conditions []*condition, args []interface{}) []interface{} {
	for i, c := range conditions {
		if i > 0 {
			sb.WriteRune(' ')
			sb.WriteString(c.boolean.String())
			sb.WriteRune(' ')
		}
		args = c.write(sb, args)
	}
	return args
}

func (c *condition) write(sb *strings.Builder, args []interface{}) []interface{} {
	switch c.kind {
	case conditionValue:
		sb.WriteString(c.column + " " + c.op.SQL + " ?")
		args = append(args, c.value)
	case conditionColumn:
		sb.WriteString(c.column + " " + c.op.SQL + " " + c.second)
	case conditionNull:
		sb.WriteString(c.column + " " + c.op.SQL)
	case conditionIn:
		if len(c.args) == 0 {
			// an empty list matches no rows for 'IN' and all rows for 'NOT IN'.
			if c.op.ID == OpIn.ID {
				sb.WriteString("1 = 0")
			} else {
				sb.WriteString("1 = 1")
			}
			break
		}
		sb.WriteString(c.column + " " + c.op.SQL + " (")
		sb.WriteString(strings.TrimSuffix(strings.Repeat("?, ", len(c.args)), ", "))
		sb.WriteRune(')')
		args = append(args, c.args...)
	case conditionRaw:
		sb.WriteString(c.raw)
		args = append(args, c.args...)
	case conditionGroup:
		sb.WriteRune('(')
		args = writeConditions(sb, c.nested, args)
		sb.WriteRune(')')
	}
	return args
}
