package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/neuron-join/errors"
	"github.com/neuronlabs/neuron-join/errors/class"
)

func testingModelMap(t testing.TB, models ...interface{}) *ModelMap {
	t.Helper()

	m := NewModelMap(WithNamingConvention(SnakeCase))
	if len(models) == 0 {
		models = []interface{}{&User{}, &Profile{}, &Post{}, &Comment{}, &Tag{}}
	}
	require.NoError(t, m.RegisterModels(models...))
	return m
}

// TestRegisterModels tests the register models function.
func TestRegisterModels(t *testing.T) {
	t.Run("Tables", func(t *testing.T) {
		m := testingModelMap(t)

		user, err := m.GetModelStruct(&User{})
		require.NoError(t, err)
		assert.Equal(t, "User", user.Name())
		assert.Equal(t, "users", user.Table())
		assert.Equal(t, "id", user.PrimaryKey())

		comment, ok := m.ModelByName("post_comments")
		require.True(t, ok)
		assert.Equal(t, "Comment", comment.Name())

		tag, ok := m.ModelByName("Tag")
		require.True(t, ok)
		assert.Equal(t, "tag_id", tag.PrimaryKey())

		assert.Len(t, m.Models(), 5)
		assert.Equal(t, "Comment", m.Models()[0].Name())
	})

	t.Run("Fields", func(t *testing.T) {
		m := testingModelMap(t)
		post, err := m.GetModelStruct(Post{})
		require.NoError(t, err)

		f, ok := post.FieldByName("UserID")
		require.True(t, ok)
		assert.Equal(t, KindForeignKey, f.Kind())
		assert.Equal(t, "user_id", f.Column())

		f, ok = post.FieldByName("title")
		require.True(t, ok)
		assert.Equal(t, KindAttribute, f.Kind())
		assert.Equal(t, "Post.Title", f.String())
	})

	t.Run("Relationships", func(t *testing.T) {
		m := testingModelMap(t)
		user, err := m.GetModelStruct(&User{})
		require.NoError(t, err)
		post, err := m.GetModelStruct(&Post{})
		require.NoError(t, err)

		cases := []struct {
			model      *ModelStruct
			name       string
			kind       RelationshipKind
			related    string
			foreignKey string
		}{
			{user, "posts", RelHasMany, "Post", "user_id"},
			{user, "profile", RelHasOne, "Profile", "user_id"},
			{post, "user", RelBelongsTo, "User", "user_id"},
			{post, "latest_comment", RelHasOne, "Comment", "post_id"},
			{post, "comments", RelHasMany, "Comment", "post_id"},
			{post, "tags", RelMany2Many, "Tag", ""},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				rel, ok := c.model.Relationship(c.name)
				require.True(t, ok)
				assert.Equal(t, c.kind, rel.Kind())
				assert.Equal(t, c.related, rel.Struct().Name())
				assert.Equal(t, c.foreignKey, rel.ForeignKey())
				assert.Equal(t, c.model, rel.Source())
				assert.NotNil(t, rel.Field())
			})
		}
		assert.Len(t, post.Relationships(), 4)
	})

	t.Run("GlobalScopes", func(t *testing.T) {
		m := testingModelMap(t)
		user, err := m.GetModelStruct(&User{})
		require.NoError(t, err)
		sd, ok := user.SoftDeleteScope()
		require.True(t, ok)
		assert.Equal(t, "deleted_at", sd.Column)

		comment, err := m.GetModelStruct(&Comment{})
		require.NoError(t, err)
		sd, ok = comment.SoftDeleteScope()
		require.True(t, ok)
		assert.Equal(t, "archived_at", sd.Column)

		profile, err := m.GetModelStruct(&Profile{})
		require.NoError(t, err)
		assert.False(t, profile.SoftDeletes())
		assert.Equal(t, []GlobalScope{NamedScope("tenant")}, profile.GlobalScopes())
	})

	t.Run("RelationScoper", func(t *testing.T) {
		m := testingModelMap(t)
		post, err := m.GetModelStruct(&Post{})
		require.NoError(t, err)
		rel, ok := post.Relationship("latest_comment")
		require.True(t, ok)

		clauses := rel.Scope().Clauses()
		require.Len(t, clauses, 1)
		assert.Equal(t, MethodWhere, clauses[0].Method)
		assert.Equal(t, []interface{}{"status", "approved"}, clauses[0].Params)
		// the related model's soft delete scope is applied on the relation.
		assert.Len(t, rel.Scope().GlobalScopes(), 1)
	})

	t.Run("Ignored", func(t *testing.T) {
		m := testingModelMap(t, &Ignored{})
		model, err := m.GetModelStruct(&Ignored{})
		require.NoError(t, err)
		assert.Len(t, model.Fields(), 1)
	})

	t.Run("Errors", func(t *testing.T) {
		m := NewModelMap()
		err := m.RegisterModels(&NoPrimary{})
		assert.True(t, errors.IsClass(err, class.ModelMappingNoPrimary))

		m = NewModelMap()
		err = m.RegisterModels(&UnmappedRelation{})
		assert.True(t, errors.IsClass(err, class.ModelNotMapped))

		m = NewModelMap()
		err = m.RegisterModels(1)
		assert.True(t, errors.IsClass(err, class.ModelMappingInvalidType))

		m = testingModelMap(t, &Tag{})
		err = m.RegisterModels(&Tag{})
		assert.True(t, errors.IsClass(err, class.ModelAlreadyRegistered))

		_, err = m.GetModelStruct(&User{})
		assert.True(t, errors.IsClass(err, class.ModelNotMapped))
	})
}

func TestModelStruct(t *testing.T) {
	users := NewModelStruct("users", "users", "id")
	posts := NewModelStruct("posts", "posts", "id")
	posts.AddGlobalScope(&SoftDeleteScope{Column: "deleted_at"})

	rel, err := users.AddRelationship("posts", RelHasOne, posts, "user_id")
	require.NoError(t, err)
	assert.Equal(t, "users.posts(HasOne)", rel.String())
	assert.True(t, rel.IsToOne())
	assert.Len(t, rel.Scope().GlobalScopes(), 1)

	_, err = users.AddRelationship("posts", RelHasOne, posts, "user_id")
	assert.True(t, errors.IsClass(err, class.ModelRelationshipInvalid))

	_, err = users.AddRelationship("other", RelBelongsTo, posts, "")
	assert.True(t, errors.IsClass(err, class.ModelForeignKeyNotFound))

	_, err = users.AddRelationship("none", RelBelongsTo, nil, "x")
	assert.True(t, errors.IsClass(err, class.ModelRelationshipInvalid))

	// replacing soft delete scope.
	posts.AddGlobalScope(&SoftDeleteScope{Column: "removed_at"})
	sd, ok := posts.SoftDeleteScope()
	require.True(t, ok)
	assert.Equal(t, "removed_at", sd.Column)
	assert.Len(t, posts.GlobalScopes(), 1)

	m := NewModelMap()
	require.NoError(t, m.Set(users))
	require.NoError(t, m.Set(posts))
	model, err := m.GetModelStruct(users)
	require.NoError(t, err)
	assert.Equal(t, users, model)
	assert.True(t, errors.IsClass(m.Set(users), class.ModelAlreadyRegistered))
}

func TestParseRelationshipKind(t *testing.T) {
	cases := map[string]RelationshipKind{
		"belongs_to":    RelBelongsTo,
		"BelongsTo":     RelBelongsTo,
		"has-one":       RelHasOne,
		"hasOne":        RelHasOne,
		"has_many":      RelHasMany,
		"many2many":     RelMany2Many,
		"morph_to":      RelUnknown,
		"":              RelUnknown,
		"belongsToMany": RelMany2Many,
	}
	for name, kind := range cases {
		assert.Equal(t, kind, ParseRelationshipKind(name), name)
	}
}

func TestParseNamingConvention(t *testing.T) {
	nc, err := ParseNamingConvention("kebab")
	require.NoError(t, err)
	assert.Equal(t, KebabCase, nc)
	assert.Equal(t, "blog-post", nc.Namer()("BlogPost"))

	_, err = ParseNamingConvention("screaming")
	assert.True(t, errors.IsClass(err, class.ConfigValueInvalid))
}
