package query

import (
	"strings"
)

// JoinKind defines the join type.
type JoinKind int

const (
	// InnerJoin is the 'JOIN' clause.
	InnerJoin JoinKind = iota
	// LeftJoin is the 'LEFT JOIN' clause.
	LeftJoin
)

// SQL gets the join kind SQL keyword.
func (k JoinKind) SQL() string {
	if k == LeftJoin {
		return "LEFT JOIN"
	}
	return "JOIN"
}

// String implements fmt.Stringer interface.
func (k JoinKind) String() string {
	if k == LeftJoin {
		return "left"
	}
	return "inner"
}

// JoinClause is the single joined table with its 'ON' predicates.
type JoinClause struct {
	kind       JoinKind
	table      string
	alias      string
	conditions []*condition
}

func newJoinClause(kind JoinKind, table, alias string) *JoinClause {
	if alias == table {
		alias = ""
	}
	return &JoinClause{kind: kind, table: table, alias: alias}
}

// Alias gets the joined table alias. Empty when the table is not aliased.
func (j *JoinClause) Alias() string {
	return j.alias
}

// Kind gets the join kind.
func (j *JoinClause) Kind() JoinKind {
	return j.kind
}

// Name gets the name the joined table is referenced by: its alias or the table name.
func (j *JoinClause) Name() string {
	if j.alias != "" {
		return j.alias
	}
	return j.table
}

// Table gets the joined table name.
func (j *JoinClause) Table() string {
	return j.table
}

// On adds the predicate comparing two columns.
func (j *JoinClause) On(first string, op *Operator, second string) *JoinClause {
	j.conditions = append(j.conditions, newColumnCondition(And, first, op, second))
	return j
}

// OrOn adds the 'or' predicate comparing two columns.
func (j *JoinClause) OrOn(first string, op *Operator, second string) *JoinClause {
	j.conditions = append(j.conditions, newColumnCondition(Or, first, op, second))
	return j
}

// Where adds the predicate comparing the 'column' with the 'value'.
func (j *JoinClause) Where(column string, op *Operator, value interface{}) error {
	return j.where(And, column, op, value)
}

// OrWhere adds the 'or' predicate comparing the 'column' with the 'value'.
func (j *JoinClause) OrWhere(column string, op *Operator, value interface{}) error {
	return j.where(Or, column, op, value)
}

// WhereGroup adds the parenthesized group of predicates defined by the 'fn' on the nested join clause.
func (j *JoinClause) WhereGroup(boolean Boolean, fn func(nested *JoinClause) error) error {
	nested := &JoinClause{kind: j.kind, table: j.table, alias: j.alias}
	if err := fn(nested); err != nil {
		return err
	}
	if len(nested.conditions) > 0 {
		j.conditions = append(j.conditions, newGroupCondition(boolean, nested.conditions))
	}
	return nil
}

// WhereNull adds the 'column IS NULL' predicate.
func (j *JoinClause) WhereNull(column string) *JoinClause {
	j.conditions = append(j.conditions, newNullCondition(And, column, false))
	return j
}

// WhereNotNull adds the 'column IS NOT NULL' predicate.
func (j *JoinClause) WhereNotNull(column string) *JoinClause {
	j.conditions = append(j.conditions, newNullCondition(And, column, true))
	return j
}

// WhereRaw adds the raw SQL predicate with its arguments.
func (j *JoinClause) WhereRaw(sql string, args ...interface{}) *JoinClause {
	j.conditions = append(j.conditions, newRawCondition(And, sql, args))
	return j
}

func (j *JoinClause) where(boolean Boolean, column string, op *Operator, value interface{}) error {
	c, err := newValueCondition(boolean, column, op, value)
	if err != nil {
		return err
	}
	j.conditions = append(j.conditions, c)
	return nil
}

func (j *JoinClause) copy() *JoinClause {
	cp := *j
	cp.conditions = make([]*condition, len(j.conditions))
	copy(cp.conditions, j.conditions)
	return &cp
}

func (j *JoinClause) write(sb *strings.Builder, args []interface{}) []interface{} {
	sb.WriteString(j.kind.SQL())
	sb.WriteRune(' ')
	sb.WriteString(j.table)
	if j.alias != "" {
		sb.WriteString(" AS ")
		sb.WriteString(j.alias)
	}
	if len(j.conditions) > 0 {
		sb.WriteString(" ON ")
		args = writeConditions(sb, j.conditions, args)
	}
	return args
}
