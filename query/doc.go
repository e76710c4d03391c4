// Package query contains the SQL query builder with the relation join compiler.
//
// The compiler takes a dotted relation path, i.e. 'posts.comments.author_name', walks
// the mapped relationships of the builder's model and joins each traversed relation exactly once.
// The result is the qualified column reference, i.e. 'comments.author_name', usable in
// the where and order by clauses:
//
//	b := query.New(users)
//	if err := b.WhereOnJoin("posts.comments.status", query.OpEqual, "approved"); err != nil {
//		return err
//	}
//	if err := b.OrderByJoin("posts.title", query.DescendingOrder); err != nil {
//		return err
//	}
//	sql, args := b.SQL()
package query
