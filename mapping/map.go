package mapping

import (
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/neuronlabs/neuron-join/errors"
	"github.com/neuronlabs/neuron-join/errors/class"
	"github.com/neuronlabs/neuron-join/log"
	"github.com/neuronlabs/neuron-join/namer"
)

var logger = log.NewModuleLogger("mapping")

// ModelMap contains the mapped models by their names and reflect types.
type ModelMap struct {
	models  map[string]*ModelStruct
	types   map[reflect.Type]*ModelStruct
	options *MapOptions
	namer   namer.Namer
}

// NewModelMap creates new model map with provided 'options'.
func NewModelMap(options ...MapOption) *ModelMap {
	o := defaultMapOptions()
	for _, option := range options {
		option(o)
	}
	return &ModelMap{
		models:  map[string]*ModelStruct{},
		types:   map[reflect.Type]*ModelStruct{},
		options: o,
		namer:   o.NamingConvention.Namer(),
	}
}

// GetModelStruct gets the model from the model map. The 'model' could be
// a *ModelStruct, a struct instance or a pointer to it.
func (m *ModelMap) GetModelStruct(model interface{}) (*ModelStruct, error) {
	if mStruct, ok := model.(*ModelStruct); ok {
		return mStruct, nil
	}
	t := reflect.TypeOf(model)
	if t == nil {
		return nil, errors.NewDet(class.ModelNotMapped, "nil model")
	}
	mStruct, ok := m.types[derefType(t)]
	if !ok {
		return nil, errors.NewDetf(class.ModelNotMapped, "model: '%s' is not mapped", t.String())
	}
	return mStruct, nil
}

// ModelByName gets the model by its name or its table name.
func (m *ModelMap) ModelByName(name string) (*ModelStruct, bool) {
	if mStruct, ok := m.models[name]; ok {
		return mStruct, true
	}
	for _, mStruct := range m.models {
		if mStruct.table == name {
			return mStruct, true
		}
	}
	return nil, false
}

// Models returns all models set within given model map sorted by their names.
func (m *ModelMap) Models() []*ModelStruct {
	structs := make([]*ModelStruct, 0, len(m.models))
	for _, model := range m.models {
		structs = append(structs, model)
	}
	sort.Slice(structs, func(i, j int) bool {
		return structs[i].name < structs[j].name
	})
	return structs
}

// Options gets the model map options.
func (m *ModelMap) Options() MapOptions {
	return *m.options
}

// Set sets the *ModelStruct for given map.
// If the model already exists the function returns an error.
func (m *ModelMap) Set(model *ModelStruct) error {
	if _, ok := m.models[model.name]; ok {
		return errors.NewDetf(class.ModelAlreadyRegistered, "model: '%s' already registered", model.name)
	}
	if model.modelType != nil {
		if _, ok := m.types[model.modelType]; ok {
			return errors.NewDetf(class.ModelAlreadyRegistered, "model: '%s' already registered", model.modelType)
		}
		m.types[model.modelType] = model
	}
	m.models[model.name] = model
	return nil
}

// RegisterModels maps the 'models' struct definitions and registers them within the model map.
// The models are mapped using the 'neuron' struct field tags:
//
//	type User struct {
//		ID        int
//		Name      string
//		DeletedAt *time.Time
//		Posts     []*Post
//		Profile   *Profile `neuron:"foreign=OwnerID"`
//	}
func (m *ModelMap) RegisterModels(models ...interface{}) error {
	instances := map[*ModelStruct]interface{}{}
	var registered []*ModelStruct
	for _, model := range models {
		mStruct, err := m.buildModelStruct(model)
		if err != nil {
			return err
		}
		if err = m.Set(mStruct); err != nil {
			return err
		}
		instances[mStruct] = model
		registered = append(registered, mStruct)
		logger.Debug2f("Model: '%s' mapped to table: '%s'", mStruct.name, mStruct.table)
	}

	for _, mStruct := range registered {
		if err := m.setRelationships(mStruct); err != nil {
			return err
		}
	}

	for _, mStruct := range registered {
		if scoper, ok := instances[mStruct].(GlobalScoper); ok {
			for _, scope := range scoper.GlobalScopes() {
				mStruct.AddGlobalScope(scope)
			}
		}
	}

	for _, mStruct := range registered {
		scoper, ok := instances[mStruct].(RelationScoper)
		if !ok {
			continue
		}
		for _, relation := range mStruct.Relationships() {
			scoper.ScopeRelation(relation.name, relation.scope)
		}
	}
	return nil
}

func (m *ModelMap) buildModelStruct(model interface{}) (*ModelStruct, error) {
	t := reflect.TypeOf(model)
	if t == nil {
		return nil, errors.NewDet(class.ModelMappingInvalidType, "provided nil model")
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, errors.NewDetf(class.ModelMappingInvalidType, "provided model: '%s' is not a struct", t.String())
	}

	var table string
	if tn, ok := model.(TableNamer); ok {
		table = tn.TableName()
	} else {
		table = namer.TableName(t.Name(), m.namer)
	}
	mStruct := newModelStruct(t, t.Name(), table)

	for i := 0; i < t.NumField(); i++ {
		rf := t.Field(i)
		if rf.PkgPath != "" {
			continue
		}
		field := &StructField{name: rf.Name, reflectField: rf}
		tags := tagValues(field.ExtractFieldTags())
		if _, ok := tags[AnnotationIgnore]; ok {
			continue
		}
		field.column = m.namer(rf.Name)
		if names := tags[AnnotationName]; len(names) > 0 && names[0] != "" {
			field.column = names[0]
		}

		switch fieldType := firstValue(tags[AnnotationFieldType]); fieldType {
		case AnnotationPrimary, AnnotationPrimaryShort:
			field.kind = KindPrimary
		case AnnotationForeignKey:
			field.kind = KindForeignKey
		case AnnotationRelation:
			field.kind = KindRelationship
		case AnnotationAttribute:
			field.kind = KindAttribute
		case "":
			field.kind = m.untaggedKind(field)
		default:
			return nil, errors.NewDetf(class.ModelMappingInvalidType, "model: '%s' field: '%s' unknown field type: '%s'", t.Name(), rf.Name, fieldType)
		}

		if field.kind == KindPrimary {
			if mStruct.primary != nil {
				return nil, errors.NewDetf(class.ModelMappingInvalidType, "model: '%s' has more than one primary field", t.Name())
			}
			mStruct.primary = field
		}
		if _, ok := tags[AnnotationSoftDelete]; ok || (field.kind == KindAttribute && field.column == m.options.SoftDeleteColumn && field.IsTime()) {
			field.softDelete = true
			mStruct.AddGlobalScope(&SoftDeleteScope{Column: field.column})
		}
		mStruct.addField(field)
	}

	if mStruct.primary == nil {
		return nil, errors.NewDetf(class.ModelMappingNoPrimary, "model: '%s' have no primary field defined", t.Name())
	}
	return mStruct, nil
}

func (m *ModelMap) untaggedKind(field *StructField) FieldKind {
	if field.name == "ID" {
		return KindPrimary
	}
	base := field.baseType()
	if base.Kind() == reflect.Struct && base != reflect.TypeOf(time.Time{}) {
		return KindRelationship
	}
	if strings.HasSuffix(field.name, "ID") {
		return KindForeignKey
	}
	return KindAttribute
}

func (m *ModelMap) setRelationships(model *ModelStruct) error {
	for _, field := range model.fields {
		if field.kind != KindRelationship {
			continue
		}
		related, ok := m.types[field.baseType()]
		if !ok {
			return errors.NewDetf(class.ModelNotMapped, "model: '%s' relationship: '%s' related model: '%s' is not mapped", model.name, field.name, field.baseType())
		}
		tags := tagValues(field.ExtractFieldTags())
		foreignKey := firstValue(tags[AnnotationForeignKey])
		if foreignKey == "_" {
			foreignKey = ""
		}

		var (
			kind RelationshipKind
			fk   *StructField
		)
		switch {
		case field.isSlice():
			if _, ok := tags[AnnotationMany2Many]; ok {
				kind = RelMany2Many
				break
			}
			kind = RelHasMany
			fk, ok = m.findForeignKey(related, foreignKey, field.name+"ID", model.modelType.Name()+"ID")
		case foreignKey != "":
			if fk, ok = model.fieldsByName[foreignKey]; ok {
				kind = RelBelongsTo
			} else if fk, ok = related.fieldsByName[foreignKey]; ok {
				kind = RelHasOne
			}
		default:
			if fk, ok = model.fieldsByName[field.name+"ID"]; ok {
				kind = RelBelongsTo
			} else if fk, ok = related.fieldsByName[model.modelType.Name()+"ID"]; ok {
				kind = RelHasOne
			}
		}
		if kind != RelMany2Many && !ok {
			logger.Errorf("Foreign key not found for the relationship: '%s' in model: '%s'", field.name, model.name)
			return errors.NewDetf(class.ModelForeignKeyNotFound, "foreign key not found for the relationship: '%s'. Model: '%s'", field.name, model.name)
		}

		var fkColumn string
		if fk != nil {
			if fk.kind == KindAttribute {
				fk.kind = KindForeignKey
			}
			fkColumn = fk.column
		}
		name := field.column
		if _, err := model.addRelationship(name, kind, related, fkColumn, field); err != nil {
			return err
		}
		logger.Debug3f("Model: '%s' relationship: '%s' of kind: %s with foreign key: '%s'", model.name, name, kind, fkColumn)
	}
	return nil
}

func (m *ModelMap) findForeignKey(model *ModelStruct, tagged string, names ...string) (*StructField, bool) {
	if tagged != "" {
		f, ok := model.fieldsByName[tagged]
		return f, ok
	}
	for _, name := range names {
		if f, ok := model.fieldsByName[name]; ok {
			return f, true
		}
	}
	return nil, false
}

func derefType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

func firstValue(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
