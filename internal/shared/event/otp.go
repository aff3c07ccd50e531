package event

const OTPDispatchedDestination string = "identity_otp_dispatched"
const OTPSpamLockedDestination string = "identity_otp_spam_locked"

// OTPDispatchedMessage never carries the code itself.
type OTPDispatchedMessage struct {
	Email       string `json:"email"`
	AccountType string `json:"account_type"`
	ExpiresAt   int64  `json:"expires_at"`
}

type OTPSpamLockedMessage struct {
	Email       string `json:"email"`
	LockedUntil int64  `json:"locked_until"`
}
