package query

import (
	"strconv"
	"strings"

	"github.com/neuronlabs/neuron-join/config"
	"github.com/neuronlabs/neuron-join/errors"
	"github.com/neuronlabs/neuron-join/errors/class"
	"github.com/neuronlabs/neuron-join/log"
	"github.com/neuronlabs/neuron-join/mapping"
)

var logger = log.NewModuleLogger("query")

// Option is the builder option function.
type Option func(b *Builder)

// WithConfig sets the join compiler configuration.
func WithConfig(cfg *config.Join) Option {
	return func(b *Builder) {
		if cfg != nil {
			c := *cfg
			b.cfg = &c
		}
	}
}

// WithTableAlias sets the alias mode. In the alias mode each joined
// relation gets the generated unique table alias.
// The option overrides the 'use_table_alias' of the configuration regardless of the options order.
func WithTableAlias(useAlias bool) Option {
	return func(b *Builder) {
		b.tableAlias = &useAlias
	}
}

type orderBy struct {
	column string
	order  SortOrder
}

// Builder is the select query builder for the model's table.
// Nested builders created by WhereGroup share the join state of the top-level builder
// and add their joins, selects and orders on it.
type Builder struct {
	model  *mapping.ModelStruct
	cfg    *config.Join
	parent *Builder

	tableAlias *bool

	selects []string
	joins   []*JoinClause
	wheres  []*condition
	orders  []orderBy
	limit   int
	offset  int

	joinCtx *joinContext
}

// New creates new query builder for the 'model'.
func New(model *mapping.ModelStruct, options ...Option) *Builder {
	b := &Builder{
		model:   model,
		cfg:     config.DefaultJoin(),
		limit:   -1,
		joinCtx: newJoinContext(),
	}
	for _, option := range options {
		option(b)
	}
	if b.tableAlias != nil {
		b.cfg.UseTableAlias = *b.tableAlias
	}
	return b
}

// Config gets the copy of the builder join configuration.
func (b *Builder) Config() config.Join {
	return *b.cfg
}

// Model gets the builder's root model.
func (b *Builder) Model() *mapping.ModelStruct {
	return b.model
}

// Table gets the builder's base table.
func (b *Builder) Table() string {
	return b.model.Table()
}

// Select adds the selected 'columns'.
func (b *Builder) Select(columns ...string) *Builder {
	root := b.root()
	root.selects = append(root.selects, columns...)
	return b
}

// Selects gets the copy of the selected columns.
func (b *Builder) Selects() []string {
	root := b.root()
	selects := make([]string, len(root.selects))
	copy(selects, root.selects)
	return selects
}

// Joins gets the copy of the joined tables.
func (b *Builder) Joins() []*JoinClause {
	root := b.root()
	joins := make([]*JoinClause, len(root.joins))
	copy(joins, root.joins)
	return joins
}

// Where adds the condition comparing 'column' with the 'value'.
func (b *Builder) Where(column string, op *Operator, value interface{}) error {
	return b.where(And, column, op, value)
}

// OrWhere adds the 'or' condition comparing 'column' with the 'value'.
func (b *Builder) OrWhere(column string, op *Operator, value interface{}) error {
	return b.where(Or, column, op, value)
}

// WhereNull adds the 'column IS NULL' condition.
func (b *Builder) WhereNull(column string) *Builder {
	b.wheres = append(b.wheres, newNullCondition(And, column, false))
	return b
}

// WhereNotNull adds the 'column IS NOT NULL' condition.
func (b *Builder) WhereNotNull(column string) *Builder {
	b.wheres = append(b.wheres, newNullCondition(And, column, true))
	return b
}

// WhereRaw adds the raw SQL condition with its arguments.
func (b *Builder) WhereRaw(sql string, args ...interface{}) *Builder {
	b.wheres = append(b.wheres, newRawCondition(And, sql, args))
	return b
}

// OrWhereRaw adds the 'or' raw SQL condition with its arguments.
func (b *Builder) OrWhereRaw(sql string, args ...interface{}) *Builder {
	b.wheres = append(b.wheres, newRawCondition(Or, sql, args))
	return b
}

// WhereGroup adds the parenthesized group of conditions defined by the 'fn' on the nested builder.
// The joins performed on the nested builder are shared with this builder.
func (b *Builder) WhereGroup(fn func(nested *Builder) error) error {
	return b.whereGroup(And, fn)
}

// OrWhereGroup adds the 'or' parenthesized group of conditions defined by the 'fn' on the nested builder.
func (b *Builder) OrWhereGroup(fn func(nested *Builder) error) error {
	return b.whereGroup(Or, fn)
}

// OrderBy adds the sort order by the 'column'.
func (b *Builder) OrderBy(column string, order SortOrder) *Builder {
	root := b.root()
	root.orders = append(root.orders, orderBy{column: column, order: order})
	return b
}

// Limit sets the query limit. Negative value removes the limit.
func (b *Builder) Limit(limit int) *Builder {
	b.root().limit = limit
	return b
}

// Offset sets the query offset.
func (b *Builder) Offset(offset int) *Builder {
	b.root().offset = offset
	return b
}

// Join adds the inner join of the 'table' with the 'ON' predicates defined by the 'fn'.
// The table could be aliased, i.e.: 'users AS authors'.
func (b *Builder) Join(table string, fn func(j *JoinClause) error) error {
	t, alias := splitTableAlias(table)
	return b.join(InnerJoin, t, alias, fn)
}

// LeftJoin adds the left join of the 'table' with the 'ON' predicates defined by the 'fn'.
func (b *Builder) LeftJoin(table string, fn func(j *JoinClause) error) error {
	t, alias := splitTableAlias(table)
	return b.join(LeftJoin, t, alias, fn)
}

// Clone creates the top-level copy of the builder. The copy gets its own
// join state so that the joins performed on it are not visible to the receiver.
func (b *Builder) Clone() *Builder {
	root := b.root()
	cp := &Builder{
		model:   b.model,
		cfg:     b.cfg,
		selects: append([]string(nil), root.selects...),
		wheres:  append([]*condition(nil), b.wheres...),
		orders:  append([]orderBy(nil), root.orders...),
		limit:   root.limit,
		offset:  root.offset,
		joinCtx: b.joinCtx.clone(),
	}
	cp.joins = make([]*JoinClause, len(root.joins))
	for i, j := range root.joins {
		cp.joins[i] = j.copy()
	}
	return cp
}

// SQL builds the SQL query with its arguments. The arguments are bound with the '?' placeholders.
func (b *Builder) SQL() (string, []interface{}) {
	root := b.root()
	sb := &strings.Builder{}
	var args []interface{}

	sb.WriteString("SELECT ")
	if len(root.selects) == 0 {
		sb.WriteString("*")
	} else {
		sb.WriteString(strings.Join(root.selects, ", "))
	}
	sb.WriteString(" FROM ")
	sb.WriteString(b.model.Table())

	for _, j := range root.joins {
		sb.WriteRune(' ')
		args = j.write(sb, args)
	}

	if len(b.wheres) > 0 {
		sb.WriteString(" WHERE ")
		args = writeConditions(sb, b.wheres, args)
	}

	if len(root.orders) > 0 {
		sb.WriteString(" ORDER BY ")
		for i, o := range root.orders {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(o.column + " " + o.order.SQL())
		}
	}
	if root.limit >= 0 {
		sb.WriteString(" LIMIT " + strconv.Itoa(root.limit))
	}
	if root.offset > 0 {
		sb.WriteString(" OFFSET " + strconv.Itoa(root.offset))
	}
	return sb.String(), args
}

// String implements fmt.Stringer interface. It returns the SQL with the arguments interpolated.
func (b *Builder) String() string {
	sql, args := b.SQL()
	return Interpolate(sql, args)
}

func (b *Builder) root() *Builder {
	root := b
	for root.parent != nil {
		root = root.parent
	}
	return root
}

func (b *Builder) where(boolean Boolean, column string, op *Operator, value interface{}) error {
	c, err := newValueCondition(boolean, column, op, value)
	if err != nil {
		return err
	}
	b.wheres = append(b.wheres, c)
	return nil
}

func (b *Builder) whereGroup(boolean Boolean, fn func(nested *Builder) error) error {
	nested := &Builder{
		model:   b.model,
		cfg:     b.cfg,
		parent:  b,
		joinCtx: b.joinCtx,
	}
	if err := fn(nested); err != nil {
		if _, ok := err.(errors.ClassError); ok {
			return err
		}
		return errors.WrapDet(err, class.QueryNestedScope)
	}
	if len(nested.wheres) > 0 {
		b.wheres = append(b.wheres, newGroupCondition(boolean, nested.wheres))
	}
	return nil
}

func (b *Builder) join(kind JoinKind, table, alias string, fn func(j *JoinClause) error) error {
	j := newJoinClause(kind, table, alias)
	if fn != nil {
		if err := fn(j); err != nil {
			return err
		}
	}
	root := b.root()
	root.joins = append(root.joins, j)
	return nil
}

func splitTableAlias(table string) (string, string) {
	fields := strings.Fields(table)
	if len(fields) == 3 && strings.EqualFold(fields[1], "as") {
		return fields[0], fields[2]
	}
	return strings.TrimSpace(table), ""
}
