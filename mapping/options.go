package mapping

// MapOptions are the options for the model map.
type MapOptions struct {
	NamingConvention NamingConvention
	SoftDeleteColumn string
}

// MapOption is a function that sets the map options.
type MapOption func(o *MapOptions)

// WithNamingConvention sets the 'convention' as the naming convention for the model map.
func WithNamingConvention(convention NamingConvention) MapOption {
	return func(o *MapOptions) {
		o.NamingConvention = convention
	}
}

// WithSoftDeleteColumn sets the column name that marks the model as soft deletable.
// The models with a field mapped to this column get the SoftDeleteScope.
func WithSoftDeleteColumn(column string) MapOption {
	return func(o *MapOptions) {
		o.SoftDeleteColumn = column
	}
}

func defaultMapOptions() *MapOptions {
	return &MapOptions{
		NamingConvention: SnakeCase,
		SoftDeleteColumn: "deleted_at",
	}
}
