package mapping

// SoftDeleteScopeName is the name of the soft delete global scope.
const SoftDeleteScopeName = "soft_delete"

// GlobalScope is the scope applied to each query of given model.
type GlobalScope interface {
	ScopeName() string
}

// SoftDeleteScope is the global scope that hides the soft deleted rows.
// A row is soft deleted when its Column is not null.
type SoftDeleteScope struct {
	Column string
}

// ScopeName implements GlobalScope interface.
func (s *SoftDeleteScope) ScopeName() string {
	return SoftDeleteScopeName
}

// NamedScope is a global scope known only by its name.
type NamedScope string

// ScopeName implements GlobalScope interface.
func (n NamedScope) ScopeName() string {
	return string(n)
}
