package database

import "time"

// Database Connection Pool Constants
const (
	// DefaultMinConnections keeps a couple of warm connections so the first
	// stake after an idle stretch does not pay the connect cost
	DefaultMinConnections = 2

	// startupPingTimeout bounds the readiness ping in NewPool
	startupPingTimeout = 5 * time.Second
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString  = "failed to parse connection string"
	ErrMsgFailedToCreatePool       = "failed to create connection pool"
	ErrMsgFailedToPingDatabase     = "failed to ping database"
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
	ErrMsgFailedToRunMigrations    = "failed to run migrations"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgMigrationsApplied               = "Database migrations applied"
)
