package class

// MjrQuery - major that classifies all the errors related with
// creating, operating on or changing the queries.
var MjrQuery Major

func registerQueryClasses() {
	MjrQuery = MustRegisterMajor("Query")

	registerQueryRelations()
	registerQueryRelationClauses()
	registerQueryBuilder()
}

/**

Query Relations

*/

var (
	// MnrQueryRelation is the 'MjrQuery' minor classification for the joined relations.
	MnrQueryRelation Minor

	// QueryInvalidRelation is the 'MjrQuery', 'MnrQueryRelation' error classification
	// used when the relation name doesn't resolve to a joinable relationship kind.
	QueryInvalidRelation Class

	// QueryInvalidPath is the 'MjrQuery', 'MnrQueryRelation' error classification
	// used when provided relation path is empty or contains empty segments.
	QueryInvalidPath Class
)

func registerQueryRelations() {
	MnrQueryRelation = MjrQuery.MustRegisterMinor("Relation", "issues related with joining the relations")

	QueryInvalidRelation = MnrQueryRelation.MustRegisterIndex("Invalid", "relation not found or of unsupported kind").Class()
	QueryInvalidPath = MnrQueryRelation.MustRegisterIndex("Invalid Path", "malformed relation path").Class()
}

/**

Query Relation Clauses

*/

var (
	// MnrQueryRelationClause is the 'MjrQuery' minor classification for the clauses replayed
	// on the relation joins.
	MnrQueryRelationClause Minor

	// QueryInvalidRelationClause is the 'MjrQuery', 'MnrQueryRelationClause' error classification
	// used when the relation scope recorded unsupported clause method.
	QueryInvalidRelationClause Class

	// QueryInvalidRelationWhere is the 'MjrQuery', 'MnrQueryRelationClause' error classification
	// used when rewriting or applying relation's where clause failed.
	QueryInvalidRelationWhere Class

	// QueryInvalidRelationGlobalScope is the 'MjrQuery', 'MnrQueryRelationClause' error classification
	// used when the joined relation has unsupported global scope.
	QueryInvalidRelationGlobalScope Class
)

func registerQueryRelationClauses() {
	MnrQueryRelationClause = MjrQuery.MustRegisterMinor("Relation Clause", "issues related with the relation scope clauses")

	QueryInvalidRelationClause = MnrQueryRelationClause.MustRegisterIndex("Invalid", "unsupported relation clause method").Class()
	QueryInvalidRelationWhere = MnrQueryRelationClause.MustRegisterIndex("Invalid Where", "relation where clause couldn't be applied").Class()
	QueryInvalidRelationGlobalScope = MnrQueryRelationClause.MustRegisterIndex("Invalid Global Scope", "unsupported relation global scope").Class()
}

/**

Query Builder

*/

var (
	// MnrQueryBuilder is the 'MjrQuery' minor classification for the query builder.
	MnrQueryBuilder Minor

	// QueryInvalidOperator is the 'MjrQuery', 'MnrQueryBuilder' error classification
	// used for unknown or nil operators.
	QueryInvalidOperator Class

	// QueryInvalidSortOrder is the 'MjrQuery', 'MnrQueryBuilder' error classification
	// used for unknown sort order.
	QueryInvalidSortOrder Class

	// QueryInvalidValue is the 'MjrQuery', 'MnrQueryBuilder' error classification
	// used when the value doesn't match the operator.
	QueryInvalidValue Class

	// QueryNestedScope is the 'MjrQuery', 'MnrQueryBuilder' error classification
	// used when the nested where group failed.
	QueryNestedScope Class
)

func registerQueryBuilder() {
	MnrQueryBuilder = MjrQuery.MustRegisterMinor("Builder", "query builder issues")

	QueryInvalidOperator = MnrQueryBuilder.MustRegisterIndex("Invalid Operator", "unknown query operator").Class()
	QueryInvalidSortOrder = MnrQueryBuilder.MustRegisterIndex("Invalid Sort Order", "unknown sort order").Class()
	QueryInvalidValue = MnrQueryBuilder.MustRegisterIndex("Invalid Value", "value doesn't match the operator").Class()
	QueryNestedScope = MnrQueryBuilder.MustRegisterIndex("Nested Scope", "nested where group failed").Class()
}
