package betpool

// ============================================================================
// Round Cache
// ============================================================================

// DefaultRoundCacheSize bounds the in-memory cache of resolved rounds.
// Terminal rounds are immutable, so the cache only trades memory for reads.
const DefaultRoundCacheSize = 1024

// ============================================================================
// Log Messages
// ============================================================================

// Log operation identifiers
const (
	LogMsgCreateRoundCalled = "CreateRound called"
	LogMsgPlaceStakeCalled  = "PlaceStake called"
	LogMsgResolveCalled     = "Resolve called"
	LogMsgClaimWinCalled    = "ClaimWin called"
	LogMsgProofClaimCalled  = "ClaimWinWithProof called"
)

// Warning/Info messages
const (
	LogMsgRoundResolved      = "Round resolved"
	LogMsgPayoutCredited     = "Payout credited"
	LogMsgEventPublishFailed = "Failed to publish event"
)

// ============================================================================
// Error Messages (local to betpool service)
// ============================================================================

// Error context messages for wrapped errors
const (
	ErrContextFailedToCreateRound   = "failed to create round"
	ErrContextFailedToGetRound      = "failed to get round"
	ErrContextFailedToCountRounds   = "failed to count rounds"
	ErrContextFailedToGetStakes     = "failed to get stakes"
	ErrContextFailedToCheckClaim    = "failed to check claim"
	ErrContextFailedToBeginTx       = "failed to begin transaction"
	ErrContextFailedToCommitTx      = "failed to commit transaction"
	ErrContextFailedToDebitAccount  = "failed to debit account"
	ErrContextFailedToRecordStake   = "failed to record stake"
	ErrContextFailedToResolveRound  = "failed to resolve round"
	ErrContextFailedToMarkClaimed   = "failed to mark claim"
	ErrContextFailedToCreditAccount = "failed to credit account"
)
