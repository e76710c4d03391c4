package query

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/neuron-join/mapping"
)

type testingModels struct {
	users, countries, posts, comments *mapping.ModelStruct
}

// newTestingModels defines the models:
//	users:    country (belongs to countries), manager (belongs to users), latest_post (has one posts), posts (has many posts),
//	          latest_subordinate (has one users)
//	posts:    author (belongs to users), latest_comment (has one comments)
//	comments: post (belongs to posts)
// The users and the posts are soft deletable.
func newTestingModels(t testing.TB) *testingModels {
	t.Helper()

	m := &testingModels{
		users:     mapping.NewModelStruct("users", "users", "id"),
		countries: mapping.NewModelStruct("countries", "countries", "id"),
		posts:     mapping.NewModelStruct("posts", "posts", "id"),
		comments:  mapping.NewModelStruct("comments", "comments", "id"),
	}
	m.users.AddGlobalScope(&mapping.SoftDeleteScope{Column: "deleted_at"})
	m.posts.AddGlobalScope(&mapping.SoftDeleteScope{Column: "deleted_at"})

	relations := []struct {
		model      *mapping.ModelStruct
		name       string
		kind       mapping.RelationshipKind
		related    *mapping.ModelStruct
		foreignKey string
	}{
		{m.users, "country", mapping.RelBelongsTo, m.countries, "country_id"},
		{m.users, "manager", mapping.RelBelongsTo, m.users, "manager_id"},
		{m.users, "latest_post", mapping.RelHasOne, m.posts, "user_id"},
		{m.users, "posts", mapping.RelHasMany, m.posts, "user_id"},
		{m.users, "latest_subordinate", mapping.RelHasOne, m.users, "manager_id"},
		{m.posts, "author", mapping.RelBelongsTo, m.users, "user_id"},
		{m.posts, "latest_comment", mapping.RelHasOne, m.comments, "post_id"},
		{m.comments, "post", mapping.RelBelongsTo, m.posts, "post_id"},
	}
	for _, r := range relations {
		_, err := r.model.AddRelationship(r.name, r.kind, r.related, r.foreignKey)
		require.NoError(t, err)
	}
	return m
}

func (m *testingModels) relation(t testing.TB, model *mapping.ModelStruct, name string) *mapping.Relationship {
	t.Helper()
	r, ok := model.Relationship(name)
	require.True(t, ok)
	return r
}
