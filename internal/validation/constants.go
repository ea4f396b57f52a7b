package validation

// Error messages
const (
	ErrMsgReadData      = "failed to read data file"
	ErrMsgLoadSchema    = "failed to load schema"
	ErrMsgParseData     = "failed to parse data"
	ErrMsgSchemaFailed  = "schema validation failed"
	ErrMsgSchemaMissing = "schema file not found"
)

// rootMarker identifies the module root when resolving relative schema paths
const rootMarker = "go.mod"
