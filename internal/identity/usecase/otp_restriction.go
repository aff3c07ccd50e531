package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/otpgate/internal/identity/entity"
	"github.com/shandysiswandi/otpgate/internal/pkg/goerror"
)

// checkOTPRestrictions reports the most severe active restriction for email:
// hard lock, then spam lock, then cooldown. It never writes.
func (s *Usecase) checkOTPRestrictions(ctx context.Context, email string) error {
	ctx, span := s.startSpan(ctx, "checkOTPRestrictions")
	defer span.End()

	keys := entity.NewOTPKeys(email)
	checks := []struct {
		key    string
		err    error
		reason string
	}{
		{keys.Lock, entity.ErrAccountLocked, "account_locked"},
		{keys.SpamLock, entity.ErrSpamLocked, "spam_locked"},
		{keys.Cooldown, entity.ErrCooldownActive, "cooldown_active"},
	}

	for _, c := range checks {
		_, found, err := s.repoCache.Get(ctx, c.key)
		if err != nil {
			slog.ErrorContext(ctx, "failed to repo cache get", "key", c.key, "error", err)
			return goerror.NewServer(errors.Join(entity.ErrStoreUnavailable, err))
		}
		if found {
			slog.WarnContext(ctx, "otp request restricted", "email", email, "reason", c.reason)
			s.countRejected(ctx, c.reason)
			return c.err
		}
	}

	return nil
}
