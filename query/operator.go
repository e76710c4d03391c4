package query

import (
	"strings"
	"sync"

	"github.com/neuronlabs/neuron-join/errors"
	"github.com/neuronlabs/neuron-join/errors/class"
)

// Operators is the container that stores all query operators.
var Operators = newOpContainer()

// Operator definitions variables.
var (
	// Logical Operators
	OpEqual        = &Operator{Raw: "=", SQL: "=", Name: "Equal"}
	OpNotEqual     = &Operator{Raw: "!=", SQL: "<>", Name: "NotEqual"}
	OpGreaterThan  = &Operator{Raw: ">", SQL: ">", Name: "GreaterThan"}
	OpGreaterEqual = &Operator{Raw: ">=", SQL: ">=", Name: "GreaterThanOrEqualTo"}
	OpLessThan     = &Operator{Raw: "<", SQL: "<", Name: "LessThan"}
	OpLessEqual    = &Operator{Raw: "<=", SQL: "<=", Name: "LessThanOrEqualTo"}

	// Strings Only operators.
	OpLike    = &Operator{Raw: "like", SQL: "LIKE", Name: "Like"}
	OpNotLike = &Operator{Raw: "not like", SQL: "NOT LIKE", Name: "NotLike"}

	// Multi value operators.
	OpIn    = &Operator{Raw: "in", SQL: "IN", Name: "In"}
	OpNotIn = &Operator{Raw: "not in", SQL: "NOT IN", Name: "NotIn"}

	// Null operators.
	OpIsNull  = &Operator{Raw: "is null", SQL: "IS NULL", Name: "IsNull"}
	OpNotNull = &Operator{Raw: "is not null", SQL: "IS NOT NULL", Name: "NotNull"}
)

var defaultOperators = []*Operator{
	OpEqual,
	OpNotEqual,
	OpGreaterThan,
	OpGreaterEqual,
	OpLessThan,
	OpLessEqual,
	OpLike,
	OpNotLike,
	OpIn,
	OpNotIn,
	OpIsNull,
	OpNotNull,
}

// operatorAliases are the alternative raw values of the default operators.
var operatorAliases = map[string]*Operator{
	"==":       OpEqual,
	"<>":       OpNotEqual,
	"null":     OpIsNull,
	"not null": OpNotNull,
	"notnull":  OpNotNull,
}

// Operator is the comparison operator used in the where clauses.
type Operator struct {
	// ID is the operator id used for comparing the operator type.
	ID uint16
	// Raw is the operator string value used for parsing.
	Raw string
	// SQL is the operator SQL representation.
	SQL string
	// Name is the human readable operator name.
	Name string
}

// IsMultiValue checks if the operator compares against the list of values.
func (o *Operator) IsMultiValue() bool {
	return o.ID == OpIn.ID || o.ID == OpNotIn.ID
}

// IsNullCheck checks if the operator is 'OpIsNull' or 'OpNotNull'.
func (o *Operator) IsNullCheck() bool {
	return o.ID == OpIsNull.ID || o.ID == OpNotNull.ID
}

// String implements fmt.Stringer interface.
func (o *Operator) String() string {
	return o.Name
}

// ParseOperator gets the registered operator for its 'raw' value. The raw value
// is case insensitive, i.e.: 'NOT LIKE', '<>', 'in'.
func ParseOperator(raw string) (*Operator, error) {
	normalized := strings.Join(strings.Fields(strings.ToLower(raw)), " ")
	if op, ok := Operators.Get(normalized); ok {
		return op, nil
	}
	if op, ok := operatorAliases[normalized]; ok {
		return op, nil
	}
	return nil, errors.NewDetf(class.QueryInvalidOperator, "unknown operator: '%s'", raw)
}

// RegisterOperator registers the custom operator 'o' within the Operators container.
func RegisterOperator(o *Operator) error {
	return Operators.registerOperators(o)
}

// operatorContainer is the container for the query operators.
// It registers new operators and checks if no operator with
// provided Raw value already exists inside.
type operatorContainer struct {
	operators map[string]*Operator
	sync.RWMutex
	lastID uint16
}

func newOpContainer() *operatorContainer {
	o := &operatorContainer{operators: make(map[string]*Operator)}
	if err := o.registerOperators(defaultOperators...); err != nil {
		panic(err)
	}
	return o
}

// Get gets the operator on the base of the raw value.
func (c *operatorContainer) Get(raw string) (*Operator, bool) {
	c.RLock()
	defer c.RUnlock()
	op, ok := c.operators[raw]
	return op, ok
}

func (c *operatorContainer) registerOperators(ops ...*Operator) error {
	c.Lock()
	defer c.Unlock()

	for _, op := range ops {
		if op.Raw == "" || op.SQL == "" {
			return errors.NewDetf(class.QueryInvalidOperator, "operator: '%s' has no raw or sql value", op.Name)
		}
		if _, ok := c.operators[op.Raw]; ok {
			return errors.NewDetf(class.QueryInvalidOperator, "operator with the raw value: '%s' already registered", op.Raw)
		}
		c.lastID++
		op.ID = c.lastID
		c.operators[op.Raw] = op
	}
	return nil
}
