package wallet

// Log operation identifiers
const (
	LogMsgCreateAccountCalled = "CreateAccount called"
	LogMsgDepositCalled       = "Deposit called"
	LogMsgWithdrawCalled      = "Withdraw called"
)

// Error context messages for wrapped errors
const (
	ErrContextFailedToGetAccount    = "failed to get account"
	ErrContextFailedToCreateAccount = "failed to create account"
	ErrContextFailedToCredit        = "failed to credit account"
	ErrContextFailedToDebit         = "failed to debit account"
)
