package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"io"
	"log/slog"
	"math/big"
	"strconv"

	"github.com/shandysiswandi/otpgate/internal/identity/entity"
	"github.com/shandysiswandi/otpgate/internal/pkg/goerror"
)

const (
	otpMin = 1000
	otpMax = 9999
)

var otpSpan = big.NewInt(otpMax - otpMin + 1)

// generateOTP returns a uniformly distributed 4-digit code in [1000, 9999].
func generateOTP(random io.Reader) (string, error) {
	n, err := rand.Int(random, otpSpan)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+otpMin, 10), nil
}

// sendOTP generates a code, emails it and only then records the code and the
// cooldown. A failed delivery leaves the store untouched.
func (s *Usecase) sendOTP(ctx context.Context, name, email string, account entity.AccountType) error {
	ctx, span := s.startSpan(ctx, "sendOTP")
	defer span.End()

	code, err := generateOTP(s.random)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate otp", "error", err)
		return goerror.NewServer(err)
	}

	if s.policy.DebugLog {
		slog.InfoContext(ctx, "otp generated", "email", email, "otp", code)
	}

	templateID := account.ActivationTemplate()
	if err := s.repoEmail.SendTemplate(ctx, email, s.policy.Subject, templateID, map[string]any{
		"name": name,
		"otp":  code,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to repo email send template", "email", email, "template", templateID, "error", err)
		s.countRejected(ctx, "delivery_failed")
		return goerror.NewServer(errors.Join(entity.ErrDeliveryFailed, err))
	}

	keys := entity.NewOTPKeys(email)
	if err := s.repoCache.Set(ctx, keys.Code, code, s.policy.OTPTTL); err != nil {
		slog.ErrorContext(ctx, "failed to repo cache set otp", "key", keys.Code, "error", err)
		return goerror.NewServer(errors.Join(entity.ErrStoreUnavailable, err))
	}
	if err := s.repoCache.Set(ctx, keys.Cooldown, entity.OTPCooldownValue, s.policy.Cooldown); err != nil {
		slog.ErrorContext(ctx, "failed to repo cache set cooldown", "key", keys.Cooldown, "error", err)
		return goerror.NewServer(errors.Join(entity.ErrStoreUnavailable, err))
	}

	if s.issued != nil {
		s.issued.Add(ctx, 1)
	}

	ev := OTPDispatchedEvent{Email: email, AccountType: account, ExpiresAt: s.clock.Now().Add(s.policy.OTPTTL)}
	s.publish(ctx, "otp dispatched", func(ctx context.Context) error {
		return s.repoMessaging.PublishOTPDispatched(ctx, ev)
	})

	return nil
}
