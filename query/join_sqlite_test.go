package query

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE countries (id INTEGER PRIMARY KEY, name TEXT);
CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT, country_id INTEGER, manager_id INTEGER, deleted_at TEXT);
CREATE TABLE posts (id INTEGER PRIMARY KEY, user_id INTEGER, title TEXT, created_at TEXT, deleted_at TEXT);
CREATE TABLE comments (id INTEGER PRIMARY KEY, post_id INTEGER, body TEXT, status TEXT);

INSERT INTO countries VALUES (1, 'Poland'), (2, 'Germany');
INSERT INTO users VALUES
	(1, 'alice', 1, NULL, NULL),
	(2, 'bob', 2, 1, NULL),
	(3, 'carol', 1, 2, NULL),
	(4, 'dave', 2, 1, '2020-01-01');
INSERT INTO posts VALUES
	(1, 1, 'first', '2020-01-03', NULL),
	(2, 1, 'second', '2020-01-01', NULL),
	(3, 2, 'bob post', '2020-01-01', NULL),
	(4, 2, 'bob deleted', '2020-01-02', '2020-02-01'),
	(5, 4, 'dave post', '2020-01-01', NULL);
INSERT INTO comments VALUES
	(1, 2, 'nice', 'approved'),
	(2, 2, 'spam', 'rejected'),
	(3, 1, 'ok', 'approved');
`

func testingDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	// single connection keeps the in-memory database for all the queries.
	db.SetMaxOpenConns(1)

	_, err = db.Exec(sqliteSchema)
	require.NoError(t, err)
	return db
}

func queryStrings(t *testing.T, db *sql.DB, b *Builder) [][]sql.NullString {
	t.Helper()

	query, args := b.SQL()
	rows, err := db.Query(query, args...)
	require.NoError(t, err, query)
	defer rows.Close()

	columns, err := rows.Columns()
	require.NoError(t, err)

	var result [][]sql.NullString
	for rows.Next() {
		row := make([]sql.NullString, len(columns))
		dest := make([]interface{}, len(columns))
		for i := range row {
			dest[i] = &row[i]
		}
		require.NoError(t, rows.Scan(dest...))
		result = append(result, row)
	}
	require.NoError(t, rows.Err())
	return result
}

func TestJoinSQLite(t *testing.T) {
	db := testingDB(t)

	t.Run("SingletonRow", func(t *testing.T) {
		m := newTestingModels(t)
		b := New(m.users)
		b.Select("users.name")
		title, err := b.QualifiedColumn("latest_post.title")
		require.NoError(t, err)
		b.Select(title).OrderBy("users.id", AscendingOrder)

		rows := queryStrings(t, db, b)
		// one row per user: the latest post, null when the latest post is soft deleted or missing.
		require.Len(t, rows, 4)
		assert.Equal(t, "second", rows[0][1].String)
		assert.False(t, rows[1][1].Valid)
		assert.False(t, rows[2][1].Valid)
		assert.Equal(t, "dave post", rows[3][1].String)
	})

	t.Run("SingletonOrder", func(t *testing.T) {
		m := newTestingModels(t)
		b := New(m.users)
		b.Select("users.name")
		require.NoError(t, b.OrderByJoin("latest_post.title", AscendingOrder, WithInnerJoin(), WithSingletonOrder("created_at", DescendingOrder)))

		rows := queryStrings(t, db, b)
		require.Len(t, rows, 2)
		assert.Equal(t, "dave", rows[0][0].String)
		assert.Equal(t, "alice", rows[1][0].String)
	})

	t.Run("WhereOnJoin", func(t *testing.T) {
		m := newTestingModels(t)
		b := New(m.users)
		require.NoError(t, b.WhereOnJoin("latest_post.latest_comment.body", OpEqual, "spam"))

		rows := queryStrings(t, db, b)
		require.Len(t, rows, 1)
		assert.Equal(t, "alice", rows[0][1].String)
		// only the base table columns are selected.
		assert.Len(t, rows[0], 5)
	})

	t.Run("RelationScope", func(t *testing.T) {
		m := newTestingModels(t)
		m.relation(t, m.posts, "latest_comment").Scope().Where("status", "approved")

		b := New(m.posts)
		b.Select("posts.id")
		body, err := b.QualifiedColumn("latest_comment.body")
		require.NoError(t, err)
		b.Select(body).WhereRaw("posts.id = ?", 2)

		rows := queryStrings(t, db, b)
		require.Len(t, rows, 1)
		// the latest comment 'spam' is rejected so the scoped join finds no row.
		assert.False(t, rows[0][1].Valid)
	})

	t.Run("SoftDeletedBelongsTo", func(t *testing.T) {
		m := newTestingModels(t)
		b := New(m.posts)
		require.NoError(t, b.WhereOnJoin("author.name", OpIn, []string{"bob", "dave"}))

		rows := queryStrings(t, db, b)
		// dave is soft deleted.
		require.Len(t, rows, 2)

		m = newTestingModels(t)
		m.relation(t, m.posts, "author").Scope().WithTrashed()
		b = New(m.posts)
		require.NoError(t, b.WhereOnJoin("author.name", OpIn, []string{"bob", "dave"}))
		assert.Len(t, queryStrings(t, db, b), 3)

		m = newTestingModels(t)
		m.relation(t, m.posts, "author").Scope().OnlyTrashed()
		b = New(m.posts)
		require.NoError(t, b.WhereOnJoin("author.name", OpIn, []string{"bob", "dave"}))
		assert.Len(t, queryStrings(t, db, b), 1)
	})

	t.Run("AliasedSelfJoin", func(t *testing.T) {
		m := newTestingModels(t)
		b := New(m.users, WithTableAlias(true))
		require.NoError(t, b.WhereOnJoin("manager.manager.name", OpEqual, "alice"))
		require.NoError(t, b.OrderByJoin("manager.country.name", AscendingOrder))

		rows := queryStrings(t, db, b)
		require.Len(t, rows, 1)
		assert.Equal(t, "carol", rows[0][1].String)
	})

	t.Run("AliasedSelfSingleton", func(t *testing.T) {
		m := newTestingModels(t)
		b := New(m.users, WithTableAlias(true))
		b.Select("users.name")
		name, err := b.QualifiedColumn("latest_subordinate.name", WithSingletonOrder("id", AscendingOrder))
		require.NoError(t, err)
		b.Select(name).WhereRaw("users.id IN (?, ?, ?)", 1, 2, 3).OrderBy("users.id", AscendingOrder)

		rows := queryStrings(t, db, b)
		require.Len(t, rows, 3)
		assert.Equal(t, "bob", rows[0][1].String)
		assert.Equal(t, "carol", rows[1][1].String)
		assert.False(t, rows[2][1].Valid)
	})
}
