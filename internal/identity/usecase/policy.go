package usecase

import (
	"time"

	"github.com/shandysiswandi/otpgate/internal/pkg/config"
)

const (
	defaultOTPTTL        = 5 * time.Minute
	defaultCooldown      = 60 * time.Second
	defaultRequestWindow = 10 * time.Minute
	defaultMaxRequests   = 2
	defaultSpamLock      = 30 * time.Minute
	defaultSubject       = "Verify Your Email"
)

// Policy holds the OTP throttle settings. Zero config values fall back to the defaults.
type Policy struct {
	OTPTTL        time.Duration
	Cooldown      time.Duration
	RequestWindow time.Duration
	MaxRequests   int64
	SpamLock      time.Duration
	Subject       string
	// DebugLog writes generated codes to the log. Never enable outside development.
	DebugLog bool
}

// NewPolicy reads modules.identity.otp.* from cfg. A nil cfg yields the defaults.
func NewPolicy(cfg config.Config) Policy {
	p := Policy{
		OTPTTL:        defaultOTPTTL,
		Cooldown:      defaultCooldown,
		RequestWindow: defaultRequestWindow,
		MaxRequests:   defaultMaxRequests,
		SpamLock:      defaultSpamLock,
		Subject:       defaultSubject,
	}
	if cfg == nil {
		return p
	}

	if v := cfg.GetSecond("modules.identity.otp.ttl_seconds"); v > 0 {
		p.OTPTTL = v
	}
	if v := cfg.GetSecond("modules.identity.otp.cooldown_seconds"); v > 0 {
		p.Cooldown = v
	}
	if v := cfg.GetMinute("modules.identity.otp.request_window_minutes"); v > 0 {
		p.RequestWindow = v
	}
	if v := cfg.GetInt64("modules.identity.otp.max_requests"); v > 0 {
		p.MaxRequests = v
	}
	if v := cfg.GetMinute("modules.identity.otp.spam_lock_minutes"); v > 0 {
		p.SpamLock = v
	}
	if v := cfg.GetString("modules.identity.otp.subject"); v != "" {
		p.Subject = v
	}
	p.DebugLog = cfg.GetBool("modules.identity.otp.debug_log")

	return p
}
