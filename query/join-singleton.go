package query

import (
	"fmt"
	"strings"

	"github.com/neuronlabs/neuron-join/mapping"
)

// singletonPredicate gets the raw predicate that restricts the has-one 'relation' join to a single row.
// The row is picked by the join options order column, by default the related primary key, and its direction.
// The subquery table gets its own alias '<alias>_sub' so that it never shadows the current table,
// i.e. on the self-referencing relations.
func singletonPredicate(plan *joinPlan, relation *mapping.Relationship, alias string, o *joinOptions) string {
	related := relation.Struct()
	primaryKey := related.PrimaryKey()
	sub := alias + "_sub"

	orderColumn := o.orderColumn
	if orderColumn == "" {
		orderColumn = primaryKey
	}
	if !strings.Contains(orderColumn, ".") {
		orderColumn = sub + "." + orderColumn
	}
	return fmt.Sprintf("%s.%s = (SELECT %s.%s FROM %s AS %s WHERE %s.%s = %s.%s ORDER BY %s %s LIMIT 1)",
		alias, primaryKey,
		sub, primaryKey, related.Table(), sub,
		sub, relation.ForeignKey(), plan.alias, plan.primaryKey,
		orderColumn, o.orderDirection.SQL(),
	)
}
