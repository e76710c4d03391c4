// Package schema loads the model definitions from the YAML documents.
//
//	models:
//	  - name: users
//	    soft_deletes: true
//	    relations:
//	      - name: latest_post
//	        kind: has_one
//	        model: posts
//	        foreign_key: user_id
//	        clauses:
//	          - method: where
//	            params: [status, published]
//	  - name: posts
package schema

import (
	"bytes"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/neuronlabs/neuron-join/errors"
	"github.com/neuronlabs/neuron-join/errors/class"
	"github.com/neuronlabs/neuron-join/log"
	"github.com/neuronlabs/neuron-join/mapping"
)

var logger = log.NewModuleLogger("schema")

// Document is the schema document root.
type Document struct {
	Models []Model `yaml:"models"`
}

// Model is the model definition.
type Model struct {
	Name             string     `yaml:"name"`
	Table            string     `yaml:"table"`
	PrimaryKey       string     `yaml:"primary_key"`
	SoftDeletes      bool       `yaml:"soft_deletes"`
	SoftDeleteColumn string     `yaml:"soft_delete_column"`
	GlobalScopes     []string   `yaml:"global_scopes"`
	Relations        []Relation `yaml:"relations"`
}

// Relation is the model's relation definition.
type Relation struct {
	Name        string   `yaml:"name"`
	Kind        string   `yaml:"kind"`
	Model       string   `yaml:"model"`
	ForeignKey  string   `yaml:"foreign_key"`
	WithTrashed bool     `yaml:"with_trashed"`
	OnlyTrashed bool     `yaml:"only_trashed"`
	Clauses     []Clause `yaml:"clauses"`
}

// Clause is the clause recorded on the relation scope.
type Clause struct {
	Method string        `yaml:"method"`
	Params []interface{} `yaml:"params"`
}

// Load reads the schema document from the file at 'path'.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapDet(err, class.ModelSchemaInvalid)
	}
	defer f.Close()
	return Decode(f)
}

// Parse parses the schema document from 'data'.
func Parse(data []byte) (*Document, error) {
	return Decode(bytes.NewReader(data))
}

// Decode decodes the schema document from the reader 'r'. Unknown document fields are not allowed.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	doc := &Document{}
	if err := dec.Decode(doc); err != nil && err != io.EOF {
		return nil, errors.WrapDet(err, class.ModelSchemaInvalid)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

// Validate checks if the models and their relations are well defined.
func (d *Document) Validate() error {
	if len(d.Models) == 0 {
		return errors.NewDet(class.ModelSchemaInvalid, "schema defines no models")
	}
	names := map[string]struct{}{}
	for i, m := range d.Models {
		if m.Name == "" {
			return errors.NewDetf(class.ModelSchemaInvalid, "model at index: %d has no name", i)
		}
		if _, ok := names[m.Name]; ok {
			return errors.NewDetf(class.ModelSchemaInvalid, "model: '%s' defined more than once", m.Name)
		}
		names[m.Name] = struct{}{}
	}
	for _, m := range d.Models {
		for _, r := range m.Relations {
			if r.Name == "" {
				return errors.NewDetf(class.ModelSchemaInvalid, "model: '%s' has a relation with no name", m.Name)
			}
			if _, ok := names[r.Model]; !ok {
				return errors.NewDetf(class.ModelSchemaInvalid, "model: '%s' relation: '%s' related model: '%s' is not defined", m.Name, r.Name, r.Model)
			}
			if r.WithTrashed && r.OnlyTrashed {
				return errors.NewDetf(class.ModelSchemaInvalid, "model: '%s' relation: '%s' can't be both with and only trashed", m.Name, r.Name)
			}
		}
	}
	return nil
}

// ModelMap creates the model map with the models defined in the document.
// Relations of unknown kinds, unknown clause methods and global scopes
// are loaded as they are and fail once they're joined.
func (d *Document) ModelMap(options ...mapping.MapOption) (*mapping.ModelMap, error) {
	mm := mapping.NewModelMap(options...)
	defaultSoftDelete := mm.Options().SoftDeleteColumn

	models := make(map[string]*mapping.ModelStruct, len(d.Models))
	for _, m := range d.Models {
		table := m.Table
		if table == "" {
			table = m.Name
		}
		primaryKey := m.PrimaryKey
		if primaryKey == "" {
			primaryKey = "id"
		}
		model := mapping.NewModelStruct(m.Name, table, primaryKey)

		if m.SoftDeletes || m.SoftDeleteColumn != "" {
			column := m.SoftDeleteColumn
			if column == "" {
				column = defaultSoftDelete
			}
			model.AddGlobalScope(&mapping.SoftDeleteScope{Column: column})
		}
		for _, name := range m.GlobalScopes {
			if name == mapping.SoftDeleteScopeName {
				if !model.SoftDeletes() {
					model.AddGlobalScope(&mapping.SoftDeleteScope{Column: defaultSoftDelete})
				}
				continue
			}
			model.AddGlobalScope(mapping.NamedScope(name))
		}
		if err := mm.Set(model); err != nil {
			return nil, err
		}
		models[m.Name] = model
	}

	for _, m := range d.Models {
		model := models[m.Name]
		for _, r := range m.Relations {
			kind := mapping.ParseRelationshipKind(r.Kind)
			if kind == mapping.RelUnknown {
				logger.Warningf("Model: '%s' relation: '%s' has unknown kind: '%s'", m.Name, r.Name, r.Kind)
			}
			relation, err := model.AddRelationship(r.Name, kind, models[r.Model], r.ForeignKey)
			if err != nil {
				return nil, err
			}
			scope := relation.Scope()
			switch {
			case r.WithTrashed:
				scope.WithTrashed()
			case r.OnlyTrashed:
				scope.OnlyTrashed()
			}
			for _, c := range r.Clauses {
				scope.Record(c.Method, c.Params...)
			}
		}
	}
	logger.Debugf("Loaded: %d models", len(d.Models))
	return mm, nil
}

// LoadModelMap loads the schema document from the file at 'path' and creates its model map.
func LoadModelMap(path string, options ...mapping.MapOption) (*mapping.ModelMap, error) {
	doc, err := Load(path)
	if err != nil {
		return nil, err
	}
	return doc.ModelMap(options...)
}
