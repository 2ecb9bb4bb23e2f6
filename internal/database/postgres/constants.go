package postgres

// PostgreSQL error codes
const (
	// pgUniqueViolation is the SQLSTATE code for unique constraint violations
	pgUniqueViolation = "23505"
)
