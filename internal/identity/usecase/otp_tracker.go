package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/otpgate/internal/identity/entity"
	"github.com/shandysiswandi/otpgate/internal/pkg/goerror"
)

// trackOTPRequest counts one OTP request for email inside the rolling window.
// Once the window already holds MaxRequests, the spam lock is set and the
// counter is left as is.
func (s *Usecase) trackOTPRequest(ctx context.Context, email string) error {
	ctx, span := s.startSpan(ctx, "trackOTPRequest")
	defer span.End()

	keys := entity.NewOTPKeys(email)

	count, ok, err := s.repoCache.IncrementBelow(ctx, keys.RequestsCount, s.policy.MaxRequests, s.policy.RequestWindow)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo cache increment", "key", keys.RequestsCount, "error", err)
		return goerror.NewServer(errors.Join(entity.ErrStoreUnavailable, err))
	}
	if ok {
		return nil
	}

	if err := s.repoCache.Set(ctx, keys.SpamLock, entity.OTPLockedValue, s.policy.SpamLock); err != nil {
		slog.ErrorContext(ctx, "failed to repo cache set spam lock", "key", keys.SpamLock, "error", err)
		return goerror.NewServer(errors.Join(entity.ErrStoreUnavailable, err))
	}

	slog.WarnContext(ctx, "otp request limit reached, spam lock set", "email", email, "count", count)
	s.countRejected(ctx, "too_many_requests")

	ev := OTPSpamLockedEvent{Email: email, LockedUntil: s.clock.Now().Add(s.policy.SpamLock)}
	s.publish(ctx, "otp spam locked", func(ctx context.Context) error {
		return s.repoMessaging.PublishOTPSpamLocked(ctx, ev)
	})

	return entity.ErrTooManyRequests
}
