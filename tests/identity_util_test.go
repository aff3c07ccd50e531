package tests

import (
	"fmt"
	"time"
)

const otpSentMessage = "OTP sent to your email. Please verify your account to proceed."

func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%d@example.com", prefix, time.Now().UnixNano())
}

func userPayload(email string) map[string]string {
	return map[string]string{
		"name":     "Test User",
		"email":    email,
		"password": "Secret123!",
	}
}
