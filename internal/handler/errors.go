package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidIndex          = "Recipe index must be a non-negative integer"
	ErrMsgInvalidBoolParam      = "Invalid %s query parameter, expected true or false"
)

// Success messages for API responses
const (
	MsgLineDeletedSuccess  = "Production line deleted"
	MsgLinesImportedFormat = "Imported %d production lines"
)

// Log messages
const (
	LogMsgEncodeResponseFailed = "Failed to encode JSON response"
	LogMsgWriteResponseFailed  = "Failed to write response buffer"
	LogMsgDecodeRequestFailed  = "Failed to decode request"
	LogMsgRequestRejected      = "Request failed validation"
	LogMsgServiceCallFailed    = "Service call failed"
	LogMsgReadinessFailed      = "Readiness check failed"
)

// Health statuses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	HealthMsgStorageFailed  = "storage backend unreachable"
)
