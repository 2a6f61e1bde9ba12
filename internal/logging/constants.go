package logging

// Standardized field names for structured logging.
// These constants keep log output consistent across the pipeline,
// making logs easier to parse, filter, and analyze.
const (
	FieldFile          = "file_path"
	FieldDigest        = "file_digest"
	FieldFragment      = "fragment"
	FieldFormatHint    = "format_hint"
	FieldTransactionID = "transaction_id"
	FieldMerchant      = "merchant"
	FieldKeyword       = "keyword"
	FieldCategory      = "category"
	FieldMethod        = "payment_method"
	FieldReason        = "reason"
	FieldOperation     = "operation"
	FieldCount         = "count"
	FieldDuration      = "duration_ms"
	FieldError         = "error"
)
