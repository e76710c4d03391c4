package mapping

import (
	"reflect"
	"time"
)

// FieldKind is an enum that defines the following field types.
type FieldKind int

const (
	// KindUnknown is the undefined field kind.
	KindUnknown FieldKind = iota
	// KindPrimary is a 'primary' field.
	KindPrimary
	// KindAttribute is an 'attribute' field.
	KindAttribute
	// KindForeignKey is the 'foreign key' field.
	KindForeignKey
	// KindRelationship is the 'relationship' field.
	KindRelationship
)

func (f FieldKind) String() string {
	switch f {
	case KindPrimary:
		return "Primary"
	case KindAttribute:
		return "Attribute"
	case KindForeignKey:
		return "ForeignKey"
	case KindRelationship:
		return "Relationship"
	}
	return "Unknown"
}

// StructField represents a field structure with its column and relationship.
type StructField struct {
	mStruct      *ModelStruct
	name         string
	column       string
	kind         FieldKind
	reflectField reflect.StructField
	relationship *Relationship
	softDelete   bool
}

// Column gets the field's database column name. For relationship fields it is the relation name.
func (s *StructField) Column() string {
	return s.column
}

// IsPrimary checks if the field is the primary key.
func (s *StructField) IsPrimary() bool {
	return s.kind == KindPrimary
}

// IsRelationship checks if the field is a relationship.
func (s *StructField) IsRelationship() bool {
	return s.kind == KindRelationship
}

// IsSoftDelete checks if the field is the soft delete timestamp.
func (s *StructField) IsSoftDelete() bool {
	return s.softDelete
}

// IsTime checks whether the field is a time.Time or a *time.Time.
func (s *StructField) IsTime() bool {
	t := s.reflectField.Type
	if t == nil {
		return false
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t == reflect.TypeOf(time.Time{})
}

// Kind returns the struct field's kind.
func (s *StructField) Kind() FieldKind {
	return s.kind
}

// ModelStruct returns the model the field belongs to.
func (s *StructField) ModelStruct() *ModelStruct {
	return s.mStruct
}

// Name returns the field's Go name.
func (s *StructField) Name() string {
	return s.name
}

// ReflectField returns the struct field's reflect.StructField.
func (s *StructField) ReflectField() reflect.StructField {
	return s.reflectField
}

// Relationship returns the field's relationship, nil for non relationship fields.
func (s *StructField) Relationship() *Relationship {
	return s.relationship
}

// String implements fmt.Stringer interface.
func (s *StructField) String() string {
	return s.mStruct.Name() + "." + s.name
}

// baseType gets the dereferenced field type, for slices the dereferenced element type.
func (s *StructField) baseType() reflect.Type {
	t := s.reflectField.Type
	for t.Kind() == reflect.Ptr || t.Kind() == reflect.Slice || t.Kind() == reflect.Array {
		t = t.Elem()
	}
	return t
}

func (s *StructField) isSlice() bool {
	t := s.reflectField.Type
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Kind() == reflect.Slice || t.Kind() == reflect.Array
}
