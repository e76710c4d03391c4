package class

import (
	"errors"
	"sync"
)

var registry = newClassRegistry()

// Major is a 7 bit top level error classification.
type Major uint8

// MustRegisterMajor registers new major error classification with provided
// 'name' and optional 'description'. Panics when the major already exists.
func MustRegisterMajor(name string, description ...string) Major {
	m, err := RegisterMajor(name, description...)
	if err != nil {
		panic(err)
	}
	return m
}

// RegisterMajor registers new major error classification with provided
// 'name', and optional 'description' for the major.
func RegisterMajor(name string, description ...string) (Major, error) {
	return registry.newMajor(name, description...)
}

// Description gets the major registered description.
func (m Major) Description() string {
	e := registry.major(m)
	if e == nil {
		return ""
	}
	return e.description
}

// InBounds checks if the major value is not greater than the allowed size.
func (m Major) InBounds() bool {
	return m != 0 && uint8(m) <= maxMajorValue
}

// Name returns the major registered name.
func (m Major) Name() string {
	e := registry.major(m)
	if e == nil {
		return ""
	}
	return e.name
}

// Minors gets the registered minors for given major 'm'.
func (m Major) Minors() []Minor {
	e := registry.major(m)
	if e == nil {
		return nil
	}
	minors := make([]Minor, len(e.minors))
	for i := range e.minors {
		minors[i] = Minor{value: uint16(i + 1), major: m}
	}
	return minors
}

// MustRegisterMinor registers the minor classification for given Major 'm'.
// Panics when the major is invalid or the name is already taken.
func (m Major) MustRegisterMinor(name string, description ...string) Minor {
	minor, err := m.RegisterMinor(name, description...)
	if err != nil {
		panic(err)
	}
	return minor
}

// RegisterMinor registers the minor classification for given Major 'm' with unique 'name'
// and optional 'description'.
func (m Major) RegisterMinor(name string, description ...string) (Minor, error) {
	return registry.newMinor(m, name, description...)
}

// MustNewMinorClass creates new class for provided minor with no index.
func MustNewMinorClass(minor Minor) Class {
	if !minor.Valid() {
		panic("provided invalid minor")
	}
	return newClass(minor.major, minor.value, 0)
}

// Minor is a mid level error classification.
type Minor struct {
	value uint16
	major Major
}

// Description gets the minor's description.
func (m Minor) Description() string {
	e := registry.minor(m)
	if e == nil {
		return ""
	}
	return e.description
}

// Major gets the minor's root Major.
func (m Minor) Major() Major {
	return m.major
}

// Name gets the minor's registered name.
func (m Minor) Name() string {
	e := registry.minor(m)
	if e == nil {
		return ""
	}
	return e.name
}

// Valid checks if the Minor is registered.
func (m Minor) Valid() bool {
	return registry.minor(m) != nil
}

// Value gets the minor's uint16 value.
func (m Minor) Value() uint16 {
	return m.value
}

// MustRegisterIndex registers and returns index for given minor value.
// Panics if the index name already exists or the minor is not valid.
func (m Minor) MustRegisterIndex(name string, description ...string) Index {
	idx, err := m.RegisterIndex(name, description...)
	if err != nil {
		panic(err)
	}
	return idx
}

// RegisterIndex registers the index for given Minor.
func (m Minor) RegisterIndex(name string, description ...string) (Index, error) {
	return registry.newIndex(m, name, description...)
}

// Index is the lowest level error classification.
// It is the most precise division - i.e.:
// 'major' Query
//	'minor' relation clause
//	 'index' unsupported method.
type Index struct {
	value uint16
	minor Minor
}

// Class gets the index related class.
func (i Index) Class() Class {
	if !i.Valid() {
		return Class(0)
	}
	return newClass(i.minor.major, i.minor.value, i.value)
}

// Description gets the index registered description.
func (i Index) Description() string {
	e := registry.index(i)
	if e == nil {
		return ""
	}
	return e.description
}

// Minor returns index related Minor.
func (i Index) Minor() Minor {
	return i.minor
}

// Name gets the index registered name.
func (i Index) Name() string {
	e := registry.index(i)
	if e == nil {
		return ""
	}
	return e.name
}

// Valid checks if the index is registered.
func (i Index) Valid() bool {
	return registry.index(i) != nil
}

// Value gets the index uint16 value.
func (i Index) Value() uint16 {
	return i.value
}

type entry struct {
	name        string
	description string
}

type majorEntry struct {
	entry
	minors []*minorEntry
}

type minorEntry struct {
	entry
	indexes []*entry
}

type classRegistry struct {
	majors []*majorEntry
	lock   sync.RWMutex
}

func newClassRegistry() *classRegistry {
	return &classRegistry{}
}

func (r *classRegistry) major(m Major) *majorEntry {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return r.majorLocked(m)
}

func (r *classRegistry) majorLocked(m Major) *majorEntry {
	if m == 0 || int(m) > len(r.majors) {
		return nil
	}
	return r.majors[m-1]
}

func (r *classRegistry) minor(m Minor) *minorEntry {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return r.minorLocked(m)
}

func (r *classRegistry) minorLocked(m Minor) *minorEntry {
	major := r.majorLocked(m.major)
	if major == nil || m.value == 0 || int(m.value) > len(major.minors) {
		return nil
	}
	return major.minors[m.value-1]
}

func (r *classRegistry) index(i Index) *entry {
	r.lock.RLock()
	defer r.lock.RUnlock()

	minor := r.minorLocked(i.minor)
	if minor == nil || i.value == 0 || int(i.value) > len(minor.indexes) {
		return nil
	}
	return minor.indexes[i.value-1]
}

func (r *classRegistry) newMajor(name string, description ...string) (Major, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	for _, m := range r.majors {
		if m.name == name {
			return 0, errors.New("major name already registered")
		}
	}
	if len(r.majors) >= maxMajorValue {
		return 0, errors.New("too many majors registered")
	}
	r.majors = append(r.majors, &majorEntry{entry: newEntry(name, description)})
	return Major(len(r.majors)), nil
}

func (r *classRegistry) newMinor(m Major, name string, description ...string) (Minor, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	major := r.majorLocked(m)
	if major == nil {
		return Minor{}, errors.New("major out of bounds")
	}
	for _, mn := range major.minors {
		if mn.name == name {
			return Minor{}, errors.New("minor name already exists")
		}
	}
	if len(major.minors) >= maxMinorValue {
		return Minor{}, errors.New("too many minors registered")
	}
	major.minors = append(major.minors, &minorEntry{entry: newEntry(name, description)})
	return Minor{value: uint16(len(major.minors)), major: m}, nil
}

func (r *classRegistry) newIndex(m Minor, name string, description ...string) (Index, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	minor := r.minorLocked(m)
	if minor == nil {
		return Index{}, errors.New("invalid minor provided")
	}
	for _, idx := range minor.indexes {
		if idx.name == name {
			return Index{}, errors.New("index name already exists")
		}
	}
	if len(minor.indexes) >= maxIndexValue {
		return Index{}, errors.New("too many indexes registered")
	}
	e := newEntry(name, description)
	minor.indexes = append(minor.indexes, &e)
	return Index{value: uint16(len(minor.indexes)), minor: m}, nil
}

func newEntry(name string, description []string) entry {
	e := entry{name: name}
	if len(description) > 0 {
		e.description = description[0]
	}
	return e
}
