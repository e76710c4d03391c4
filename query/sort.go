package query

import (
	"strings"

	"github.com/neuronlabs/neuron-join/errors"
	"github.com/neuronlabs/neuron-join/errors/class"
)

// SortOrder is the enum used as the sorting values order.
type SortOrder int

const (
	// AscendingOrder defines the sorting ascending order.
	AscendingOrder SortOrder = iota
	// DescendingOrder defines the sorting descending order.
	DescendingOrder
)

// ParseSortOrder parses the sort order from its 'raw' value: 'asc', 'ascending', 'desc' or 'descending'.
func ParseSortOrder(raw string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "asc", "ascending":
		return AscendingOrder, nil
	case "desc", "descending":
		return DescendingOrder, nil
	}
	return AscendingOrder, errors.NewDetf(class.QueryInvalidSortOrder, "unknown sort order: '%s'", raw)
}

// SQL gets the SQL keyword of the sort order.
func (o SortOrder) SQL() string {
	if o == DescendingOrder {
		return "DESC"
	}
	return "ASC"
}

// String implements fmt.Stringer interface.
func (o SortOrder) String() string {
	if o == AscendingOrder {
		return "ascending"
	}
	return "descending"
}
