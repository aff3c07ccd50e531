package entity

// Values stored under the throttle keys. Only presence is ever checked.
const (
	OTPLockedValue   = "locked"
	OTPCooldownValue = "true"
)

// OTPKeys names every store key kept for one normalized email.
type OTPKeys struct {
	Lock          string
	SpamLock      string
	Cooldown      string
	RequestsCount string
	Code          string
}

// NewOTPKeys builds the keys for email. The email must already be normalized.
func NewOTPKeys(email string) OTPKeys {
	return OTPKeys{
		Lock:          "otp_lock:" + email,
		SpamLock:      "otp_spam_lock:" + email,
		Cooldown:      "otp_cooldown:" + email,
		RequestsCount: "otp_requests_count:" + email,
		Code:          "otp:" + email,
	}
}
