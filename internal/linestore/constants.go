package linestore

// File permissions for the store
const (
	FileMode = 0o644
	DirMode  = 0o755
)

const tempFilePattern = ".production_lines-*.tmp"

// Error messages
const (
	ErrMsgReadFailed   = "failed to read production lines file"
	ErrMsgDecodeFailed = "failed to decode production lines file"
	ErrMsgEncodeFailed = "failed to encode production lines"
	ErrMsgWriteFailed  = "failed to write production lines file"
)

// Log messages
const (
	LogMsgFileMissing  = "Production lines file not found, starting empty"
	LogMsgLinesWritten = "Production lines written"
	LogMsgTempCleanup  = "Failed to remove temporary file"
)
