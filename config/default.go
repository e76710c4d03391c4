package config

// DefaultJoin returns default join compiler configuration.
func DefaultJoin() *Join {
	return &Join{
		LeftJoin:                true,
		SingletonOrderDirection: "desc",
		SoftDeleteColumn:        "deleted_at",
		NamingConvention:        "snake",
		LogLevel:                "info",
	}
}
