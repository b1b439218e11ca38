package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Production Lines
const (
	ErrMsgFailedToListLines      = "failed to list production lines"
	ErrMsgFailedToGetLine        = "failed to get production line"
	ErrMsgFailedToInsertLine     = "failed to insert production line"
	ErrMsgFailedToUpdateLine     = "failed to update production line"
	ErrMsgFailedToDeleteLine     = "failed to delete production line"
	ErrMsgFailedToLoadInstances  = "failed to load recipe instances"
	ErrMsgFailedToSaveInstances  = "failed to save recipe instances"
	ErrMsgFailedToEncodeRecipe   = "failed to encode recipe"
	ErrMsgFailedToDecodeRecipe   = "failed to decode recipe"
	ErrMsgFailedToClearLines     = "failed to clear production lines"
	ErrMsgFailedToCheckSlugInUse = "failed to check slug"
)

// Log Messages
const (
	LogMsgFailedToRollback = "Failed to rollback transaction"
	LogMsgLinesReplaced    = "Replaced all production lines"
)
