package eventlog

// JSON payload field keys
const (
	PayloadKeyParticipantID = "participant_id"
	PayloadKeyCreatorID     = "creator_id"
)

// Metadata field keys
const (
	MetadataKeySchemaVersion = "schema_version"
)

// Log messages - service events
const (
	LogMsgPayloadNotLoggable = "Event payload not loggable, skipping"
	LogMsgLogEventFailed     = "Failed to log event to database"
	LogMsgEventLogged        = "Event logged to database"
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobStarting  = "Starting event log cleanup job"
	LogMsgCleanupJobFailed    = "Event log cleanup failed"
	LogMsgCleanupJobCompleted = "Event log cleanup completed"
)

// DefaultRetentionDays is how long logged events are kept before cleanup
const DefaultRetentionDays = 90
