package mapping

// AnnotationNeuron is the root struct field annotation tag.
const AnnotationNeuron = "neuron"

// Separators used within the neuron struct field tag.
const (
	// AnnotationTagSeparator separates the tag options.
	AnnotationTagSeparator = ";"
	// AnnotationValueSeparator separates the option values.
	AnnotationValueSeparator = ","
	// AnnotationTagEqual separates the option key from its values.
	AnnotationTagEqual = "="
)

// Model field type annotation tags.
const (
	// AnnotationFieldType is the key for the field type.
	AnnotationFieldType = "type"

	AnnotationPrimary      = "primary"
	AnnotationPrimaryShort = "pk"
	AnnotationAttribute    = "attr"
	AnnotationForeignKey   = "foreign"
	AnnotationRelation     = "relation"
)

// Model field option annotation tags.
const (
	// AnnotationName sets the field's column or relation name.
	AnnotationName = "name"
	// AnnotationMany2Many sets the slice relation as a many to many relationship.
	AnnotationMany2Many = "many2many"
	// AnnotationSoftDelete marks the time field as the soft delete column.
	AnnotationSoftDelete = "soft_delete"
	// AnnotationIgnore omits the field from the mapping.
	AnnotationIgnore = "-"
)
