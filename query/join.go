package query

import (
	"strings"

	"github.com/neuronlabs/neuron-join/errors"
	"github.com/neuronlabs/neuron-join/errors/class"
	"github.com/neuronlabs/neuron-join/mapping"
)

// JoinOnly joins the relations of the dotted 'path' without adding any condition.
// The last path segment is the column name and is never joined, i.e.: 'posts.comments.id'
// joins the 'posts' and the 'comments' relations.
func (b *Builder) JoinOnly(path string, options ...JoinOption) error {
	_, err := b.root().compile(path, b.joinOptions(options))
	return err
}

// QualifiedColumn joins the relations of the dotted 'path' and returns the qualified
// column reference: '<joined table or alias>.<column>'.
func (b *Builder) QualifiedColumn(path string, options ...JoinOption) (string, error) {
	return b.root().compile(path, b.joinOptions(options))
}

// WhereOnJoin joins the relations of the 'path' and adds the condition comparing
// the path's column with the 'value'.
func (b *Builder) WhereOnJoin(path string, op *Operator, value interface{}) error {
	column, err := b.root().compile(path, b.joinOptions(nil))
	if err != nil {
		return err
	}
	return b.Where(column, op, value)
}

// OrWhereOnJoin joins the relations of the 'path' and adds the 'or' condition comparing
// the path's column with the 'value'.
func (b *Builder) OrWhereOnJoin(path string, op *Operator, value interface{}) error {
	column, err := b.root().compile(path, b.joinOptions(nil))
	if err != nil {
		return err
	}
	return b.OrWhere(column, op, value)
}

// OrderByJoin joins the relations of the 'path' and sorts the query by the path's column.
func (b *Builder) OrderByJoin(path string, order SortOrder, options ...JoinOption) error {
	column, err := b.root().compile(path, b.joinOptions(options))
	if err != nil {
		return err
	}
	b.OrderBy(column, order)
	return nil
}

// joinPlan is the state of a single path compilation: the model, table alias
// and primary key the next relation is joined to.
type joinPlan struct {
	model      *mapping.ModelStruct
	alias      string
	primaryKey string
}

func (p *joinPlan) advance(model *mapping.ModelStruct, alias string) {
	p.model = model
	p.alias = alias
	p.primaryKey = model.PrimaryKey()
}

// compile walks the relations of the 'path' from the builder's model. Each relation path prefix
// is joined at most once per join context. A failure aborts the compilation leaving
// the relations joined so far in the query.
func (b *Builder) compile(path string, o *joinOptions) (string, error) {
	segments, err := splitPath(path)
	if err != nil {
		logger.Errorf("Compiling relation path: '%s' of model: '%s' failed: %v", path, b.model.Name(), err)
		return "", err
	}
	column := segments[len(segments)-1]
	relations := segments[:len(segments)-1]

	plan := &joinPlan{model: b.model, alias: b.model.Table(), primaryKey: b.model.PrimaryKey()}
	for i, name := range relations {
		relation, ok := plan.model.Relationship(name)
		if !ok {
			err = errors.NewDetf(class.QueryInvalidRelation, "model: '%s' has no relation: '%s'", plan.model.Name(), name)
			logger.Errorf("Compiling relation path: '%s' of model: '%s' failed: %v", path, b.model.Name(), err)
			return "", err
		}

		prefix := strings.Join(relations[:i+1], ".")
		alias, joined := b.joinCtx.alias(prefix)
		if !joined {
			alias = b.joinCtx.resolveAlias(prefix, relation.Struct().Table(), b.cfg.UseTableAlias)
			if err = b.joinRelation(plan, relation, alias, o); err != nil {
				return "", err
			}
			b.joinCtx.markJoined(prefix, alias)
		} else {
			logger.Debug3f("Relation path: '%s' already joined as: '%s'", prefix, alias)
		}
		plan.advance(relation.Struct(), alias)
	}

	if len(relations) > 0 {
		b.project()
	}
	return plan.alias + "." + column, nil
}

// project selects the base table columns once per join context, unless the columns were explicitly selected.
func (b *Builder) project() {
	if b.joinCtx.projected {
		return
	}
	b.joinCtx.projected = true
	if len(b.selects) == 0 {
		logger.Debug3f("Projecting the base table: '%s' columns", b.model.Table())
		b.selects = append(b.selects, b.model.Table()+".*")
	}
}

func splitPath(path string) ([]string, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.NewDet(class.QueryInvalidPath, "empty relation path")
	}
	segments := strings.Split(path, ".")
	for i, segment := range segments {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			return nil, errors.NewDetf(class.QueryInvalidPath, "relation path: '%s' has an empty segment", path)
		}
		segments[i] = segment
	}
	return segments, nil
}
