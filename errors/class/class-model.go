package class

// MjrModel is the major classification for the model mapping and the schema errors.
var MjrModel Major

/**

Model Mapping

*/

var (
	// MnrModelMapping is the 'MjrModel' minor classification for the model mapping issues.
	MnrModelMapping Minor

	// ModelMappingInvalidType is the 'MjrModel', 'MnrModelMapping' error classification
	// used when provided model is not a struct.
	ModelMappingInvalidType Class

	// ModelMappingNoPrimary is the 'MjrModel', 'MnrModelMapping' error classification
	// used when the model has no primary key defined.
	ModelMappingNoPrimary Class

	// ModelAlreadyRegistered is the 'MjrModel', 'MnrModelMapping' error classification
	// used when the model is registered more than once.
	ModelAlreadyRegistered Class

	// ModelNotMapped is the 'MjrModel', 'MnrModelMapping' error classification
	// used when the model is not found within the model map.
	ModelNotMapped Class
)

/**

Model Relationship

*/

var (
	// MnrModelRelationship is the 'MjrModel' minor classification for the relationship issues.
	MnrModelRelationship Minor

	// ModelForeignKeyNotFound is the 'MjrModel', 'MnrModelRelationship' error classification
	// used when the relationship foreign key couldn't be resolved.
	ModelForeignKeyNotFound Class

	// ModelRelationshipInvalid is the 'MjrModel', 'MnrModelRelationship' error classification
	// used when the relationship definition is not valid.
	ModelRelationshipInvalid Class
)

/**

Model Schema

*/

var (
	// MnrModelSchema is the 'MjrModel' minor classification for the schema definition issues.
	MnrModelSchema Minor

	// ModelSchemaInvalid is the 'MjrModel', 'MnrModelSchema' error classification
	// used when the schema document is not valid.
	ModelSchemaInvalid Class
)

func registerModelClasses() {
	MjrModel = MustRegisterMajor("Model", "model mapping related errors")

	MnrModelMapping = MjrModel.MustRegisterMinor("Mapping", "mapping the models issues")
	ModelMappingInvalidType = MnrModelMapping.MustRegisterIndex("Invalid Type", "model is not a struct").Class()
	ModelMappingNoPrimary = MnrModelMapping.MustRegisterIndex("No Primary", "model has no primary key").Class()
	ModelAlreadyRegistered = MnrModelMapping.MustRegisterIndex("Already Registered", "model already registered").Class()
	ModelNotMapped = MnrModelMapping.MustRegisterIndex("Not Mapped", "model not found in the model map").Class()

	MnrModelRelationship = MjrModel.MustRegisterMinor("Relationship", "model relationship issues")
	ModelForeignKeyNotFound = MnrModelRelationship.MustRegisterIndex("Foreign Key Not Found", "relationship foreign key not found").Class()
	ModelRelationshipInvalid = MnrModelRelationship.MustRegisterIndex("Invalid", "invalid relationship definition").Class()

	MnrModelSchema = MjrModel.MustRegisterMinor("Schema", "schema document issues")
	ModelSchemaInvalid = MnrModelSchema.MustRegisterIndex("Invalid", "invalid schema document").Class()
}
