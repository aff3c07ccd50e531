package entity

import (
	"errors"

	"github.com/shandysiswandi/otpgate/internal/pkg/goerror"
)

// Rejections returned unchanged to the caller. Compare with errors.Is.
var (
	ErrAccountLocked    = goerror.NewRestricted("Account locked due to multiple failed attempts! Try again 30 minutes later.")
	ErrSpamLocked       = goerror.NewRestricted("Too many OTP requests! Please try again after some time.")
	ErrCooldownActive   = goerror.NewRestricted("OTP request cooldown active! Please wait before requesting another OTP.")
	ErrTooManyRequests  = goerror.NewRestricted("Too many OTP requests! Please try again after some time.")
	ErrDuplicateAccount = goerror.NewBusiness("User with this email already exists", goerror.CodeConflict)
)

// Causes wrapped inside server errors.
var (
	ErrDeliveryFailed   = errors.New("identity: otp email delivery failed")
	ErrStoreUnavailable = errors.New("identity: otp store unavailable")
)
