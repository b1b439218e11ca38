package bootstrap

import "time"

// ShutdownTimeout bounds the graceful shutdown of the HTTP server
const ShutdownTimeout = 10 * time.Second

// Log messages for startup
const (
	LogMsgLoggingInitialized = "Logging initialized"
	LogMsgStarting           = "Starting factory planner"
	LogMsgConfigWarning      = "Configuration warning"
	LogMsgCatalogLoaded      = "Catalog loaded"
	LogMsgStorageReady       = "Storage backend ready"
	LogMsgMigrationsApplied  = "Database migrations applied"
)

// Startup error messages
const (
	ErrMsgFailedLoadCatalog     = "failed to load catalog"
	ErrMsgFailedRunMigrations   = "failed to run database migrations"
	ErrMsgFailedConnectDB       = "failed to connect to database"
	ErrMsgUnknownStorageBackend = "unknown storage backend"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgStorageClosed        = "Storage closed"
)
