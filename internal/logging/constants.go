package logging

// Standardized field names for structured logging.
const (
	FieldCategory   = "category"
	FieldStrategy   = "strategy"
	FieldModel      = "model"
	FieldProvider   = "provider"
	FieldReason     = "reason"
	FieldOperation  = "operation"
	FieldStatus     = "status"
	FieldError      = "error"
	FieldErrorKind  = "error_kind"
	FieldDuration   = "duration_ms"
	FieldCount      = "count"
	FieldMatches    = "matches"
	FieldTextSize   = "text_size"
	FieldRequestID  = "request_id"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
)
