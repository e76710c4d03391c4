package mapping

import (
	"reflect"
	"sort"
)

// TableNamer is the interface implemented by the models that define their table name.
type TableNamer interface {
	TableName() string
}

// GlobalScoper is the interface implemented by the models that define
// the global scopes applied to every query of the model.
type GlobalScoper interface {
	GlobalScopes() []GlobalScope
}

// RelationScoper is the interface implemented by the models that record clauses
// on their relationship scopes. It is called once for every model's relationship
// after all the models were registered.
type RelationScoper interface {
	ScopeRelation(relation string, scope *RelationScope)
}

// ModelStruct is the mapped model definition: its table, primary key, fields and relationships.
type ModelStruct struct {
	name      string
	table     string
	modelType reflect.Type

	primary       *StructField
	fields        []*StructField
	fieldsByName  map[string]*StructField
	relationships map[string]*Relationship
	globalScopes  []GlobalScope
}

// NewModelStruct creates new model definition with provided 'name', 'table' and
// the 'primaryKey' column. It is used to define the models without the reflection.
func NewModelStruct(name, table, primaryKey string) *ModelStruct {
	m := newModelStruct(nil, name, table)
	m.primary = m.addField(&StructField{name: primaryKey, column: primaryKey, kind: KindPrimary})
	return m
}

func newModelStruct(t reflect.Type, name, table string) *ModelStruct {
	return &ModelStruct{
		name:          name,
		table:         table,
		modelType:     t,
		fieldsByName:  map[string]*StructField{},
		relationships: map[string]*Relationship{},
	}
}

// AddGlobalScope adds the global 'scope' to the model.
// A SoftDeleteScope replaces the previously defined one.
func (m *ModelStruct) AddGlobalScope(scope GlobalScope) {
	for i, s := range m.globalScopes {
		if s.ScopeName() == scope.ScopeName() {
			m.globalScopes[i] = scope
			return
		}
	}
	m.globalScopes = append(m.globalScopes, scope)
}

// AddRelationship defines new relationship with the 'name' of 'kind' to the 'related' model.
// The 'foreignKey' is the foreign key column. For the belongs-to relationship
// it is stored on this model table, for has-one and has-many on the related model table.
func (m *ModelStruct) AddRelationship(name string, kind RelationshipKind, related *ModelStruct, foreignKey string) (*Relationship, error) {
	return m.addRelationship(name, kind, related, foreignKey, nil)
}

// FieldByName gets the field by its Go name or its column name.
func (m *ModelStruct) FieldByName(name string) (*StructField, bool) {
	f, ok := m.fieldsByName[name]
	return f, ok
}

// Fields gets all the model's fields.
func (m *ModelStruct) Fields() []*StructField {
	return m.fields
}

// GlobalScopes gets the model's global scopes.
func (m *ModelStruct) GlobalScopes() []GlobalScope {
	scopes := make([]GlobalScope, len(m.globalScopes))
	copy(scopes, m.globalScopes)
	return scopes
}

// Name gets the model's name.
func (m *ModelStruct) Name() string {
	return m.name
}

// Primary returns model's primary field.
func (m *ModelStruct) Primary() *StructField {
	return m.primary
}

// PrimaryKey gets the primary key column name.
func (m *ModelStruct) PrimaryKey() string {
	if m.primary == nil {
		return ""
	}
	return m.primary.column
}

// Relationship gets the model's relationship by its 'name'.
func (m *ModelStruct) Relationship(name string) (*Relationship, bool) {
	r, ok := m.relationships[name]
	return r, ok
}

// Relationships gets all model's relationships sorted by their names.
func (m *ModelStruct) Relationships() []*Relationship {
	rels := make([]*Relationship, 0, len(m.relationships))
	for _, r := range m.relationships {
		rels = append(rels, r)
	}
	sort.Slice(rels, func(i, j int) bool {
		return rels[i].name < rels[j].name
	})
	return rels
}

// SoftDeletes checks if the model has the soft delete global scope.
func (m *ModelStruct) SoftDeletes() bool {
	_, ok := m.SoftDeleteScope()
	return ok
}

// SoftDeleteScope gets the model's soft delete scope if defined.
func (m *ModelStruct) SoftDeleteScope() (*SoftDeleteScope, bool) {
	for _, s := range m.globalScopes {
		if sd, ok := s.(*SoftDeleteScope); ok {
			return sd, true
		}
	}
	return nil, false
}

// String implements fmt.Stringer interface.
func (m *ModelStruct) String() string {
	return m.name
}

// Table gets the model's table name.
func (m *ModelStruct) Table() string {
	return m.table
}

// Type gets the model's reflect.Type. Nil for the models defined with NewModelStruct.
func (m *ModelStruct) Type() reflect.Type {
	return m.modelType
}

func (m *ModelStruct) addField(f *StructField) *StructField {
	f.mStruct = m
	m.fields = append(m.fields, f)
	m.fieldsByName[f.name] = f
	if f.column != "" {
		if _, ok := m.fieldsByName[f.column]; !ok {
			m.fieldsByName[f.column] = f
		}
	}
	return f
}
