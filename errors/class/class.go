package class

import (
	"strings"
)

const (
	majorBitSize = 7
	minorBitSize = 10
	indexBitSize = 32 - majorBitSize - minorBitSize

	maxIndexValue = (1 << indexBitSize) - 1
	maxMinorValue = (1 << minorBitSize) - 1
	maxMajorValue = (1 << majorBitSize) - 1

	majorMinorMask = uint32(((1 << (majorBitSize + minorBitSize)) - 1) << indexBitSize)
)

func init() {
	registerCommonClasses()
	registerConfigClasses()
	registerModelClasses()
	registerQueryClasses()
}

// Class is the error classification model.
// It is composed of the major, minor and index subclassifications.
// Major takes 7, minor 10 and index 15 bits of the value.
//
// Major should be a global scope division like 'Query', 'Model' or 'Config'.
// Minor divides the major into subclasses like the query relation clauses.
// Index is the most precise classification - i.e. Query - relation clause - unsupported method.
type Class uint32

// Index gets the class index classification.
func (c Class) Index() Index {
	return Index{value: uint16(uint32(c) & maxIndexValue), minor: c.Minor()}
}

// IsMajor checks if the class is composed of provided major 'm'.
func (c Class) IsMajor(m Major) bool {
	return c.Major() == m
}

// IsMinor checks if the class is composed of provided minor 'm'.
func (c Class) IsMinor(m Minor) bool {
	return c.Minor() == m
}

// Major gets the top level classification.
func (c Class) Major() Major {
	return Major(uint32(c) >> (32 - majorBitSize))
}

// Minor gets the mid level classification.
func (c Class) Minor() Minor {
	return Minor{value: uint16((uint32(c) >> indexBitSize) & maxMinorValue), major: c.Major()}
}

// MjrMnrMasked returns the class value masked by the major and minor value only.
func (c Class) MjrMnrMasked() uint32 {
	return uint32(c) & majorMinorMask
}

// String implements fmt.Stringer interface.
// The name is the concatenation of the major, minor and index names without spaces.
func (c Class) String() string {
	var names []string
	names = append(names, strings.Fields(c.Major().Name())...)

	minor := c.Minor()
	if minor.Valid() {
		names = append(names, strings.Fields(minor.Name())...)
		if index := c.Index(); index.Valid() {
			names = append(names, strings.Fields(index.Name())...)
		}
	}
	return strings.Join(names, "")
}

func newClass(major Major, minor, index uint16) Class {
	return Class(uint32(major)<<(32-majorBitSize) | uint32(minor)<<indexBitSize | uint32(index))
}
