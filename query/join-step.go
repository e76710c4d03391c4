package query

import (
	"github.com/neuronlabs/neuron-join/errors"
	"github.com/neuronlabs/neuron-join/errors/class"
	"github.com/neuronlabs/neuron-join/mapping"
)

// joinRelation joins the 'relation' table as 'alias' to the current table of the 'plan'.
//
// The belongs-to relation has the foreign key on the current table:
//	target.primary_key = current.foreign_key
// The has-one relation has the foreign key on the target table:
//	target.foreign_key = current.primary_key
// and is restricted to a single target row by the correlated subquery.
func (b *Builder) joinRelation(plan *joinPlan, relation *mapping.Relationship, alias string, o *joinOptions) error {
	related := relation.Struct()

	var on func(j *JoinClause) error
	switch relation.Kind() {
	case mapping.RelBelongsTo:
		on = func(j *JoinClause) error {
			j.On(alias+"."+related.PrimaryKey(), OpEqual, plan.alias+"."+relation.ForeignKey())
			return b.applyRelationScope(j, relation, alias)
		}
	case mapping.RelHasOne:
		on = func(j *JoinClause) error {
			j.On(alias+"."+relation.ForeignKey(), OpEqual, plan.alias+"."+plan.primaryKey)
			if err := b.applyRelationScope(j, relation, alias); err != nil {
				return err
			}
			j.WhereRaw(singletonPredicate(plan, relation, alias, o))
			return nil
		}
	default:
		err := errors.NewDetf(class.QueryInvalidRelation, "relation: '%s' of kind: '%s' can't be joined", relation.Name(), relation.Kind())
		logger.Errorf("Joining relation: '%s' of model: '%s' failed: %v", relation.Name(), plan.model.Name(), err)
		return err
	}

	if err := b.join(o.kind, related.Table(), alias, on); err != nil {
		logger.Errorf("Joining relation: '%s' of model: '%s' failed: %v", relation.Name(), plan.model.Name(), err)
		return err
	}
	logger.Debug2f("Joined relation: '%s' of model: '%s' as: '%s' (%s join)", relation.Name(), plan.model.Name(), alias, o.kind)
	return nil
}
