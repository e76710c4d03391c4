package query

import (
	"sort"

	"github.com/neuronlabs/neuron-join/errors"
	"github.com/neuronlabs/neuron-join/errors/class"
	"github.com/neuronlabs/neuron-join/mapping"
)

// applyRelationScope replays the clauses and global scopes of the relation's scope
// on the join clause 'j'. All the columns are qualified with the join 'alias'.
func (b *Builder) applyRelationScope(j *JoinClause, relation *mapping.Relationship, alias string) error {
	scope := relation.Scope()
	softDeleteColumn := b.softDeleteColumn(relation.Struct())

	var (
		wheres  = &JoinClause{}
		filters = &JoinClause{}
		grouped bool
	)
	for _, clause := range scope.Clauses() {
		logger.Debug3f("Replaying relation: '%s' clause: %s%v on: '%s'", relation.Name(), clause.Name, clause.Params, alias)
		switch clause.Method {
		case mapping.MethodWhere, mapping.MethodOrWhere:
			boolean := And
			if clause.Method == mapping.MethodOrWhere {
				boolean = Or
				grouped = true
			}
			if err := whereOnRelation(wheres, boolean, alias, clause.Params); err != nil {
				e := errors.NewDetf(class.QueryInvalidRelationWhere, "relation: '%s' %s clause can't be applied", relation.Name(), clause.Name)
				e.Cause = err
				return e.WithDetail(err.Error())
			}
		case mapping.MethodWithoutTrashed:
			filters.WhereNull(alias + "." + softDeleteColumn)
		case mapping.MethodOnlyTrashed:
			filters.WhereNotNull(alias + "." + softDeleteColumn)
		case mapping.MethodWithTrashed:
		default:
			return errors.NewDetf(class.QueryInvalidRelationClause, "relation: '%s' unsupported clause method: '%s'", relation.Name(), clause.Name)
		}
	}

	if len(wheres.conditions) > 0 {
		// 'or' conditions are parenthesized to keep the join predicate required.
		if grouped {
			j.conditions = append(j.conditions, newGroupCondition(And, wheres.conditions))
		} else {
			j.conditions = append(j.conditions, wheres.conditions...)
		}
	}
	j.conditions = append(j.conditions, filters.conditions...)

	for _, gs := range scope.GlobalScopes() {
		sd, ok := gs.(*mapping.SoftDeleteScope)
		if !ok {
			return errors.NewDetf(class.QueryInvalidRelationGlobalScope, "relation: '%s' unsupported global scope: '%s'", relation.Name(), gs.ScopeName())
		}
		column := sd.Column
		if column == "" {
			column = softDeleteColumn
		}
		logger.Debug3f("Replaying relation: '%s' global scope: '%s' on: '%s'", relation.Name(), gs.ScopeName(), alias)
		j.WhereNull(alias + "." + column)
	}
	return nil
}

// softDeleteColumn gets the soft delete column of the 'model' or the configured default one.
func (b *Builder) softDeleteColumn(model *mapping.ModelStruct) string {
	if sd, ok := model.SoftDeleteScope(); ok && sd.Column != "" {
		return sd.Column
	}
	return b.cfg.SoftDeleteColumn
}

// whereOnRelation adds the where clause recorded on the relation scope with its columns qualified by the 'alias'.
// The 'params' could be in one of the forms:
//	(column, value)
//	(column, operator, value)
//	(map[string]interface{}{column: value})
// where the operator is either the *Operator or its raw string value.
func whereOnRelation(j *JoinClause, boolean Boolean, alias string, params []interface{}) error {
	if len(params) == 0 {
		return errors.NewDet(class.QueryInvalidValue, "no where clause parameters")
	}

	switch first := params[0].(type) {
	case map[string]interface{}:
		if len(params) > 1 {
			return errors.NewDet(class.QueryInvalidValue, "too many where clause parameters for the column values map")
		}
		if len(first) == 0 {
			return errors.NewDet(class.QueryInvalidValue, "empty column values map")
		}
		keys := make([]string, 0, len(first))
		for k := range first {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		if len(keys) == 1 {
			return j.where(boolean, alias+"."+keys[0], OpEqual, first[keys[0]])
		}
		return j.WhereGroup(boolean, func(nested *JoinClause) error {
			for _, k := range keys {
				if err := nested.Where(alias+"."+k, OpEqual, first[k]); err != nil {
					return err
				}
			}
			return nil
		})
	case string:
		column := alias + "." + first
		switch len(params) {
		case 2:
			return j.where(boolean, column, OpEqual, params[1])
		case 3:
			op, err := toOperator(params[1])
			if err != nil {
				return err
			}
			return j.where(boolean, column, op, params[2])
		}
		return errors.NewDetf(class.QueryInvalidValue, "invalid number of where clause parameters: %d", len(params))
	}
	return errors.NewDetf(class.QueryInvalidValue, "invalid where clause column type: %T", params[0])
}

func toOperator(op interface{}) (*Operator, error) {
	switch o := op.(type) {
	case *Operator:
		return o, nil
	case string:
		return ParseOperator(o)
	}
	return nil, errors.NewDetf(class.QueryInvalidOperator, "invalid operator type: %T", op)
}
