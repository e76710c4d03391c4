package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFieldTags(t *testing.T) {
	tags := extractFieldTags("type=relation; foreign=UserID,_;many2many")
	require.Len(t, tags, 3)
	assert.Equal(t, "type", tags[0].Key)
	assert.Equal(t, []string{"relation"}, tags[0].Values)
	assert.Equal(t, []string{"UserID", "_"}, tags[1].Values)
	assert.Equal(t, "many2many", tags[2].Key)
	assert.Empty(t, tags[2].Values)

	values := tagValues(tags)
	assert.Equal(t, []string{"UserID", "_"}, values["foreign"])
	_, ok := values["many2many"]
	assert.True(t, ok)

	assert.Nil(t, extractFieldTags(" "))
	ignored := extractFieldTags("-")
	require.Len(t, ignored, 1)
	assert.Equal(t, AnnotationIgnore, ignored[0].Key)
}
