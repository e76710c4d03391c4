package query

import (
	"strconv"
	"sync/atomic"

	"github.com/neuronlabs/neuron-join/namer"
)

// aliasCounter is the process wide sequence of the generated table aliases.
var aliasCounter uint64

// nextAlias generates the process unique alias for the 'table'. Schema qualified
// table names are flattened, i.e.: 'blog.posts' results in 'blog_posts_<n>'.
func nextAlias(table string) string {
	return namer.NamingSnake(table) + "_" + strconv.FormatUint(atomic.AddUint64(&aliasCounter, 1), 10)
}

// joinContext is the join state owned by the top-level builder and referenced by its nested scopes.
// It maps each joined relation path prefix to the alias of its joined table.
type joinContext struct {
	joined    map[string]string
	projected bool
}

func newJoinContext() *joinContext {
	return &joinContext{joined: map[string]string{}}
}

// alias gets the alias of the already joined relation path 'prefix'.
func (c *joinContext) alias(prefix string) (string, bool) {
	alias, ok := c.joined[prefix]
	return alias, ok
}

// resolveAlias returns the alias for the relation path 'prefix' joining the 'table'.
// The prefix reuses its alias once it was joined. Otherwise the table name
// is used, or a generated alias when 'useAlias' is set.
func (c *joinContext) resolveAlias(prefix, table string, useAlias bool) string {
	if alias, ok := c.joined[prefix]; ok {
		return alias
	}
	if useAlias {
		return nextAlias(table)
	}
	return table
}

func (c *joinContext) markJoined(prefix, alias string) {
	c.joined[prefix] = alias
}

func (c *joinContext) clone() *joinContext {
	cp := &joinContext{joined: make(map[string]string, len(c.joined)), projected: c.projected}
	for k, v := range c.joined {
		cp.joined[k] = v
	}
	return cp
}
