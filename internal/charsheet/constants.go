package charsheet

// Log operation identifiers
const (
	LogMsgCreateSheetCalled  = "CreateSheet called"
	LogMsgUpdateScoresCalled = "UpdateScores called"
	LogMsgDeleteSheetCalled  = "DeleteSheet called"
)

// Error context messages for wrapped errors
const (
	ErrContextFailedToGetSheet     = "failed to get sheet"
	ErrContextFailedToCreateSheet  = "failed to create sheet"
	ErrContextFailedToAppendScores = "failed to append scores"
	ErrContextFailedToGetHistory   = "failed to get score history"
	ErrContextFailedToDeleteSheet  = "failed to delete sheet"
)
