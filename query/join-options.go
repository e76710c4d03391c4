package query

// JoinOption is the option function for the relation joins.
type JoinOption func(o *joinOptions)

type joinOptions struct {
	kind           JoinKind
	orderColumn    string
	orderDirection SortOrder
}

// WithLeftJoin joins the relations using the 'LEFT JOIN'.
func WithLeftJoin() JoinOption {
	return func(o *joinOptions) {
		o.kind = LeftJoin
	}
}

// WithInnerJoin joins the relations using the 'JOIN'.
func WithInnerJoin() JoinOption {
	return func(o *joinOptions) {
		o.kind = InnerJoin
	}
}

// WithSingletonOrder sets the column and direction used to pick the single row of the has-one relations.
func WithSingletonOrder(column string, order SortOrder) JoinOption {
	return func(o *joinOptions) {
		o.orderColumn = column
		o.orderDirection = order
	}
}

// joinOptions gets the join options defaulted by the builder's configuration.
func (b *Builder) joinOptions(options []JoinOption) *joinOptions {
	o := &joinOptions{
		kind:           InnerJoin,
		orderColumn:    b.cfg.SingletonOrderColumn,
		orderDirection: DescendingOrder,
	}
	if b.cfg.LeftJoin {
		o.kind = LeftJoin
	}
	if order, err := ParseSortOrder(b.cfg.SingletonOrderDirection); err == nil {
		o.orderDirection = order
	}
	for _, option := range options {
		option(o)
	}
	return o
}
