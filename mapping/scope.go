package mapping

import (
	"strings"

	"github.com/neuronlabs/neuron-join/namer"
)

// ClauseMethod is the closed enumeration of the methods that could be recorded on the relation scope.
type ClauseMethod int

const (
	// MethodUnknown is the method that couldn't be recognized.
	MethodUnknown ClauseMethod = iota
	// MethodWhere is the 'and' where clause.
	MethodWhere
	// MethodOrWhere is the 'or' where clause.
	MethodOrWhere
	// MethodWithoutTrashed filters out the soft deleted rows.
	MethodWithoutTrashed
	// MethodOnlyTrashed takes only the soft deleted rows.
	MethodOnlyTrashed
	// MethodWithTrashed takes both soft deleted and not deleted rows.
	MethodWithTrashed
)

// ParseClauseMethod gets the clause method for its 'name'. The name could be written
// in any naming convention, i.e.: 'orWhere', 'or_where', 'OrWhere'.
func ParseClauseMethod(name string) ClauseMethod {
	switch namer.NamingSnake(strings.TrimSpace(name)) {
	case "where":
		return MethodWhere
	case "or_where":
		return MethodOrWhere
	case "without_trashed":
		return MethodWithoutTrashed
	case "only_trashed":
		return MethodOnlyTrashed
	case "with_trashed":
		return MethodWithTrashed
	}
	return MethodUnknown
}

// String implements fmt.Stringer interface.
func (c ClauseMethod) String() string {
	switch c {
	case MethodWhere:
		return "where"
	case MethodOrWhere:
		return "orWhere"
	case MethodWithoutTrashed:
		return "withoutTrashed"
	case MethodOnlyTrashed:
		return "onlyTrashed"
	case MethodWithTrashed:
		return "withTrashed"
	}
	return "unknown"
}

// Clause is a single method call recorded on the relation scope.
type Clause struct {
	Method ClauseMethod
	// Name is the method name as it was recorded.
	Name   string
	Params []interface{}
}

// RelationScope is the relation's own query scope. It keeps the ordered list of recorded
// clauses and the global scopes of the related model that are applied on the relation.
type RelationScope struct {
	related *ModelStruct
	clauses []Clause
	extra   []GlobalScope
	removed map[string]struct{}
}

func newRelationScope(related *ModelStruct) *RelationScope {
	return &RelationScope{related: related, removed: map[string]struct{}{}}
}

// Clauses gets the copy of the recorded clauses.
func (s *RelationScope) Clauses() []Clause {
	clauses := make([]Clause, len(s.clauses))
	copy(clauses, s.clauses)
	return clauses
}

// GlobalScopes gets the global scopes applied on the relation: the related model's
// global scopes without the removed ones, followed by the scopes added to the relation.
func (s *RelationScope) GlobalScopes() []GlobalScope {
	var scopes []GlobalScope
	if s.related != nil {
		for _, gs := range s.related.globalScopes {
			if _, ok := s.removed[gs.ScopeName()]; !ok {
				scopes = append(scopes, gs)
			}
		}
	}
	for _, gs := range s.extra {
		if _, ok := s.removed[gs.ScopeName()]; !ok {
			scopes = append(scopes, gs)
		}
	}
	return scopes
}

// OnlyTrashed records the only trashed clause. It removes the soft delete global scope.
func (s *RelationScope) OnlyTrashed() *RelationScope {
	return s.Record(MethodOnlyTrashed.String())
}

// OrWhere records the 'or' where clause.
func (s *RelationScope) OrWhere(params ...interface{}) *RelationScope {
	return s.Record(MethodOrWhere.String(), params...)
}

// Record records the clause 'method' with its 'params'. Unknown methods are stored
// with the MethodUnknown and fail when the relation is joined.
func (s *RelationScope) Record(method string, params ...interface{}) *RelationScope {
	c := Clause{Method: ParseClauseMethod(method), Name: method, Params: params}
	switch c.Method {
	case MethodWithTrashed, MethodOnlyTrashed, MethodWithoutTrashed:
		s.removed[SoftDeleteScopeName] = struct{}{}
	}
	s.clauses = append(s.clauses, c)
	return s
}

// Related gets the scope's related model.
func (s *RelationScope) Related() *ModelStruct {
	return s.related
}

// Where records the where clause.
func (s *RelationScope) Where(params ...interface{}) *RelationScope {
	return s.Record(MethodWhere.String(), params...)
}

// WithGlobalScope adds the global 'scope' to the relation. A removed related model's
// scope with the same name is restored instead.
func (s *RelationScope) WithGlobalScope(scope GlobalScope) *RelationScope {
	name := scope.ScopeName()
	if _, ok := s.removed[name]; ok {
		delete(s.removed, name)
		if s.related != nil {
			for _, gs := range s.related.globalScopes {
				if gs.ScopeName() == name {
					return s
				}
			}
		}
	}
	s.extra = append(s.extra, scope)
	return s
}

// WithoutGlobalScope removes the global scope with given 'name' from the relation.
func (s *RelationScope) WithoutGlobalScope(name string) *RelationScope {
	s.removed[name] = struct{}{}
	return s
}

// WithoutTrashed records the without trashed clause. It replaces the soft delete global scope.
func (s *RelationScope) WithoutTrashed() *RelationScope {
	return s.Record(MethodWithoutTrashed.String())
}

// WithTrashed records the with trashed clause. It removes the soft delete global scope.
func (s *RelationScope) WithTrashed() *RelationScope {
	return s.Record(MethodWithTrashed.String())
}
