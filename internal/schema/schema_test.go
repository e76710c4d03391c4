package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/neuron-join/errors"
	"github.com/neuronlabs/neuron-join/errors/class"
	"github.com/neuronlabs/neuron-join/mapping"
)

func TestLoadModelMap(t *testing.T) {
	mm, err := LoadModelMap("testdata/blog.yaml")
	require.NoError(t, err)
	require.Len(t, mm.Models(), 4)

	users, ok := mm.ModelByName("users")
	require.True(t, ok)
	assert.Equal(t, "users", users.Table())
	assert.Equal(t, "id", users.PrimaryKey())
	sd, ok := users.SoftDeleteScope()
	require.True(t, ok)
	assert.Equal(t, "deleted_at", sd.Column)

	countries, ok := mm.ModelByName("countries")
	require.True(t, ok)
	assert.Equal(t, "code", countries.PrimaryKey())
	assert.False(t, countries.SoftDeletes())

	posts, ok := mm.ModelByName("blog_posts")
	require.True(t, ok)
	assert.Equal(t, "posts", posts.Name())
	sd, ok = posts.SoftDeleteScope()
	require.True(t, ok)
	assert.Equal(t, "removed_at", sd.Column)

	t.Run("Relations", func(t *testing.T) {
		latest, ok := users.Relationship("latest_post")
		require.True(t, ok)
		assert.Equal(t, mapping.RelHasOne, latest.Kind())
		assert.Equal(t, posts, latest.Struct())
		assert.Equal(t, "user_id", latest.ForeignKey())

		clauses := latest.Scope().Clauses()
		require.Len(t, clauses, 1)
		assert.Equal(t, mapping.MethodWhere, clauses[0].Method)
		assert.Equal(t, []interface{}{"status", "published"}, clauses[0].Params)

		many, ok := users.Relationship("posts")
		require.True(t, ok)
		assert.Equal(t, mapping.RelHasMany, many.Kind())

		author, ok := posts.Relationship("author")
		require.True(t, ok)
		assert.Empty(t, author.Scope().GlobalScopes())
		require.Len(t, author.Scope().Clauses(), 1)
		assert.Equal(t, mapping.MethodWithTrashed, author.Scope().Clauses()[0].Method)

		comment, ok := posts.Relationship("latest_comment")
		require.True(t, ok)
		clauses = comment.Scope().Clauses()
		require.Len(t, clauses, 1)
		assert.Equal(t, mapping.MethodOrWhere, clauses[0].Method)
		assert.Equal(t, map[string]interface{}{"votes": 10, "pinned": true}, clauses[0].Params[0])
		assert.Equal(t, []mapping.GlobalScope{mapping.NamedScope("tenant")}, comment.Scope().GlobalScopes())
	})
}

func TestParse(t *testing.T) {
	t.Run("UnknownKind", func(t *testing.T) {
		doc, err := Parse([]byte(`
models:
  - name: users
    global_scopes: [soft_delete]
    relations:
      - name: tags
        kind: morph_to_many
        model: tags
        clauses:
          - method: whereHas
            params: [posts]
  - name: tags
`))
		require.NoError(t, err)
		mm, err := doc.ModelMap(mapping.WithSoftDeleteColumn("archived_at"))
		require.NoError(t, err)

		users, ok := mm.ModelByName("users")
		require.True(t, ok)
		sd, ok := users.SoftDeleteScope()
		require.True(t, ok)
		assert.Equal(t, "archived_at", sd.Column)

		tags, ok := users.Relationship("tags")
		require.True(t, ok)
		assert.Equal(t, mapping.RelUnknown, tags.Kind())
		assert.Equal(t, mapping.MethodUnknown, tags.Scope().Clauses()[0].Method)
	})

	t.Run("Invalid", func(t *testing.T) {
		cases := map[string]string{
			"Empty":          ``,
			"UnknownField":   "models:\n  - name: users\n    tablename: x\n",
			"NoName":         "models:\n  - table: users\n",
			"Duplicated":     "models:\n  - name: users\n  - name: users\n",
			"UnknownRelated": "models:\n  - name: users\n    relations:\n      - {name: posts, kind: has_many, model: posts, foreign_key: user_id}\n",
			"NoRelationName": "models:\n  - name: users\n    relations:\n      - {kind: has_many, model: users, foreign_key: user_id}\n",
			"Trashed":        "models:\n  - name: users\n    relations:\n      - {name: m, kind: belongs_to, model: users, foreign_key: m_id, with_trashed: true, only_trashed: true}\n",
			"Syntax":         "models: [",
		}
		for name, data := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := Parse([]byte(data))
				assert.True(t, errors.IsClass(err, class.ModelSchemaInvalid), err)
			})
		}
	})

	t.Run("NoForeignKey", func(t *testing.T) {
		doc, err := Parse([]byte("models:\n  - name: users\n    relations:\n      - {name: manager, kind: belongs_to, model: users}\n"))
		require.NoError(t, err)
		_, err = doc.ModelMap()
		assert.True(t, errors.IsClass(err, class.ModelForeignKeyNotFound))
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := Load("testdata/missing.yaml")
		assert.True(t, errors.IsClass(err, class.ModelSchemaInvalid))
	})
}
