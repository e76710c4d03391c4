package mapping

import (
	"strings"

	"github.com/neuronlabs/neuron-join/errors"
	"github.com/neuronlabs/neuron-join/errors/class"
)

// RelationshipKind is the enum used to define the Relationship's kind.
type RelationshipKind int

const (
	// RelUnknown is the unknown default relationship kind. States for the relationship internal errors.
	RelUnknown RelationshipKind = iota
	// RelBelongsTo is the enum value for the 'Belongs To' relationship.
	// This relationship kind states that the model containing the relationship field
	// contains also the foreign key of the related models.
	// The foreign key is a related model's primary field.
	RelBelongsTo
	// RelHasOne is the enum value for the 'Has One' relationship.
	// This relationship kind states that the model is in a one to one relationship with
	// the related model. It also states that the foreign key is located in the related model.
	RelHasOne
	// RelHasMany is the enum value for the 'Has Many' relationship.
	// This relationship kind states that the model is in a many to one relationship with the
	// related model. It also states that the foreign key is located in the related model.
	RelHasMany
	// RelMany2Many is the enum value for the 'Many To Many' relationship.
	// This relationship kind states that the model is in a many to many relationship with the
	// related model. This relationship requires the usage of the join model structure that contains
	// foreign keys of both related model types.
	RelMany2Many
)

// ParseRelationshipKind parses the relationship kind from its 'name'.
// Names are case insensitive and may be written in any naming convention, i.e.: 'belongs_to', 'BelongsTo'.
// Unrecognized names result in RelUnknown.
func ParseRelationshipKind(name string) RelationshipKind {
	switch strings.NewReplacer("_", "", "-", "", " ", "").Replace(strings.ToLower(name)) {
	case "belongsto", "toone":
		return RelBelongsTo
	case "hasone", "toonelatest":
		return RelHasOne
	case "hasmany":
		return RelHasMany
	case "many2many", "manytomany", "belongstomany":
		return RelMany2Many
	}
	return RelUnknown
}

// String implements fmt.Stringer interface.
func (r RelationshipKind) String() string {
	switch r {
	case RelBelongsTo:
		return "BelongsTo"
	case RelHasOne:
		return "HasOne"
	case RelHasMany:
		return "HasMany"
	case RelMany2Many:
		return "Many2Many"
	}
	return "UnknownRelationship"
}

// Relationship is the structure that contains the relation's required field's
// kind, foreign key and the relation's own scope.
type Relationship struct {
	name    string
	kind    RelationshipKind
	source  *ModelStruct
	related *ModelStruct
	// foreignKey is the foreign key column. For the belongs-to relationship it is
	// stored on the source model, otherwise on the related one.
	foreignKey string
	field      *StructField
	scope      *RelationScope
}

// Field gets the relationship struct field. Nil for the relationships defined without the reflection.
func (r *Relationship) Field() *StructField {
	return r.field
}

// ForeignKey returns relationships foreign key column.
func (r *Relationship) ForeignKey() string {
	return r.foreignKey
}

// IsToOne checks if the relationship is of single related model.
func (r *Relationship) IsToOne() bool {
	return r.kind == RelBelongsTo || r.kind == RelHasOne
}

// Kind returns relationship's kind.
func (r *Relationship) Kind() RelationshipKind {
	return r.kind
}

// Name gets the relationship name.
func (r *Relationship) Name() string {
	return r.name
}

// Scope gets the relationship's own scope with its recorded clauses and global scopes.
func (r *Relationship) Scope() *RelationScope {
	return r.scope
}

// Source returns the model the relationship is defined on.
func (r *Relationship) Source() *ModelStruct {
	return r.source
}

// Struct returns relationship's related model struct.
func (r *Relationship) Struct() *ModelStruct {
	return r.related
}

// String implements fmt.Stringer interface.
func (r *Relationship) String() string {
	return r.source.Name() + "." + r.name + "(" + r.kind.String() + ")"
}

func (m *ModelStruct) addRelationship(name string, kind RelationshipKind, related *ModelStruct, foreignKey string, field *StructField) (*Relationship, error) {
	if name == "" {
		return nil, errors.NewDetf(class.ModelRelationshipInvalid, "model: '%s' relationship has no name", m.name)
	}
	if related == nil {
		return nil, errors.NewDetf(class.ModelRelationshipInvalid, "model: '%s' relationship: '%s' has no related model", m.name, name)
	}
	if _, ok := m.relationships[name]; ok {
		return nil, errors.NewDetf(class.ModelRelationshipInvalid, "model: '%s' relationship: '%s' already defined", m.name, name)
	}
	if foreignKey == "" && (kind == RelBelongsTo || kind == RelHasOne || kind == RelHasMany) {
		return nil, errors.NewDetf(class.ModelForeignKeyNotFound, "model: '%s' relationship: '%s' has no foreign key", m.name, name)
	}
	r := &Relationship{
		name:       name,
		kind:       kind,
		source:     m,
		related:    related,
		foreignKey: foreignKey,
		field:      field,
	}
	r.scope = newRelationScope(related)
	if field == nil {
		m.addField(&StructField{name: name, column: name, kind: KindRelationship, relationship: r})
	} else {
		field.relationship = r
	}
	m.relationships[name] = r
	return r, nil
}
