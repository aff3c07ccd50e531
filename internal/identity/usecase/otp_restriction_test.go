package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shandysiswandi/otpgate/internal/identity/entity"
	"github.com/shandysiswandi/otpgate/internal/pkg/clock"
	"github.com/shandysiswandi/otpgate/internal/pkg/goroutine"
	"github.com/shandysiswandi/otpgate/internal/pkg/instrument"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCheckOTPRestrictions(t *testing.T) {
	keys := entity.NewOTPKeys("a@x.com")

	tests := []struct {
		name    string
		present map[string]bool
		wantErr error
	}{
		{"none", map[string]bool{}, nil},
		{"cooldown only", map[string]bool{keys.Cooldown: true}, entity.ErrCooldownActive},
		{"spam lock beats cooldown", map[string]bool{keys.SpamLock: true, keys.Cooldown: true}, entity.ErrSpamLocked},
		{"lock beats everything", map[string]bool{keys.Lock: true, keys.SpamLock: true, keys.Cooldown: true}, entity.ErrAccountLocked},
		{"spam lock only", map[string]bool{keys.SpamLock: true}, entity.ErrSpamLocked},
		{"lock only", map[string]bool{keys.Lock: true}, entity.ErrAccountLocked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			cache := new(mockCache)
			for _, k := range []string{keys.Lock, keys.SpamLock, keys.Cooldown} {
				cache.On("Get", mock.Anything, k).Return("x", tt.present[k], nil).Maybe()
			}
			uc := New(Dependency{
				RepoCache:  cache,
				Clock:      clock.Fixed(testNow),
				Instrument: instrument.NewNoop(),
				Goroutine:  goroutine.NewManager(1),
			})

			// Act
			first := uc.checkOTPRestrictions(context.Background(), "a@x.com")
			second := uc.checkOTPRestrictions(context.Background(), "a@x.com")

			// Assert
			assert.Equal(t, tt.wantErr, first)
			assert.Equal(t, first, second)
			cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			cache.AssertNotCalled(t, "IncrementBelow", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCheckOTPRestrictions_StoreFailure(t *testing.T) {
	cache := new(mockCache)
	cache.On("Get", mock.Anything, "otp_lock:a@x.com").Return("", false, errors.New("dial tcp: refused")).Once()
	uc := New(Dependency{
		RepoCache:  cache,
		Clock:      clock.Fixed(testNow),
		Instrument: instrument.NewNoop(),
	})

	err := uc.checkOTPRestrictions(context.Background(), "a@x.com")

	assert.ErrorIs(t, err, entity.ErrStoreUnavailable)
	assertServerError(t, err)
	cache.AssertExpectations(t)
}
