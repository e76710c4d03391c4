package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neuronlabs/neuron-join/errors"
	"github.com/neuronlabs/neuron-join/errors/class"
	"github.com/neuronlabs/neuron-join/internal/schema"
	"github.com/neuronlabs/neuron-join/query"
)

type compileOptions struct {
	model    string
	selects  []string
	joins    []string
	wheres   []conditionExpr
	orders   []string
	alias    bool
	inner    bool
	limit    int
	offset   int
}

func newCompileCmd(o *options) *cobra.Command {
	co := &compileOptions{}
	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Compiles the relation paths of the model into the SQL query",
		Example: `  neuron-join compile -s schema.yaml -m users --where "posts.comments.status = approved" --order "posts.title desc"
  neuron-join compile -s schema.yaml -m users --join country.id --alias`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cmd, o, co)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&co.model, "model", "m", "", "name or table of the queried model")
	flags.StringSliceVar(&co.selects, "select", nil, "selected columns")
	flags.StringArrayVarP(&co.joins, "join", "j", nil, "relation path to join, i.e.: 'posts.comments.id'")
	flags.VarP(&conditionsFlag{exprs: &co.wheres}, "where", "w", "condition on the relation path: 'path operator value', i.e.: 'posts.votes >= 10'")
	flags.Var(&conditionsFlag{or: true, exprs: &co.wheres}, "or-where", "'or' condition on the relation path: 'path operator value'. The conditions keep the command line order")
	flags.StringArrayVarP(&co.orders, "order", "o", nil, "sort order by the relation path: 'path [asc|desc]'")
	flags.BoolVar(&co.alias, "alias", false, "join the relations with the generated table aliases")
	flags.BoolVar(&co.inner, "inner", false, "join the relations with the 'JOIN' instead of the 'LEFT JOIN'")
	flags.IntVar(&co.limit, "limit", -1, "query limit")
	flags.IntVar(&co.offset, "offset", 0, "query offset")
	_ = cmd.MarkFlagRequired("model")
	return cmd
}

func runCompile(cmd *cobra.Command, o *options, co *compileOptions) error {
	mapOptions, err := o.mapOptions()
	if err != nil {
		return err
	}
	mm, err := schema.LoadModelMap(o.schema, mapOptions...)
	if err != nil {
		return err
	}
	model, ok := mm.ModelByName(co.model)
	if !ok {
		return errors.NewDetf(class.ModelNotMapped, "model: '%s' is not defined in the schema: '%s'", co.model, o.schema)
	}

	cfg := *o.cfg
	if co.inner {
		cfg.LeftJoin = false
	}
	b := query.New(model, query.WithConfig(&cfg), query.WithTableAlias(cfg.UseTableAlias || co.alias))
	if len(co.selects) > 0 {
		b.Select(co.selects...)
	}

	for _, path := range co.joins {
		if err = b.JoinOnly(path); err != nil {
			return err
		}
	}
	for _, where := range co.wheres {
		c, err := parseCondition(where.expr)
		if err != nil {
			return err
		}
		if where.or {
			err = b.OrWhereOnJoin(c.path, c.op, c.value)
		} else {
			err = b.WhereOnJoin(c.path, c.op, c.value)
		}
		if err != nil {
			return err
		}
	}
	for _, expr := range co.orders {
		path, order, err := parseOrder(expr)
		if err != nil {
			return err
		}
		if err = b.OrderByJoin(path, order); err != nil {
			return err
		}
	}
	b.Limit(co.limit).Offset(co.offset)

	sql, args := b.SQL()
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, sql)
	if len(args) > 0 {
		fmt.Fprintf(out, "-- args: %v\n", args)
		fmt.Fprintf(out, "-- interpolated: %s\n", query.Interpolate(sql, args))
	}
	return nil
}
