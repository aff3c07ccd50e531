package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shandysiswandi/otpgate/internal/identity/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTrackOTPRequest_Threshold(t *testing.T) {
	// Arrange
	h := newHarness(t)
	h.msg.On("PublishOTPSpamLocked", mock.Anything, OTPSpamLockedEvent{
		Email:       "a@x.com",
		LockedUntil: testNow.Add(30 * time.Minute),
	}).Return(nil).Once()
	ctx := context.Background()

	// Act & Assert
	require.NoError(t, h.uc.trackOTPRequest(ctx, "a@x.com"))
	require.NoError(t, h.uc.trackOTPRequest(ctx, "a@x.com"))
	assert.False(t, h.mr.Exists("otp_spam_lock:a@x.com"))

	err := h.uc.trackOTPRequest(ctx, "a@x.com")
	h.drain(t)

	assert.Equal(t, entity.ErrTooManyRequests, err)
	lock, getErr := h.mr.Get("otp_spam_lock:a@x.com")
	require.NoError(t, getErr)
	assert.Equal(t, "locked", lock)
	assert.Equal(t, 30*time.Minute, h.mr.TTL("otp_spam_lock:a@x.com"))

	count, getErr := h.mr.Get("otp_requests_count:a@x.com")
	require.NoError(t, getErr)
	assert.Equal(t, "2", count, "the rejected request is not counted")
	h.msg.AssertExpectations(t)
}

func TestTrackOTPRequest_WindowResetsOnEachRequest(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	require.NoError(t, h.uc.trackOTPRequest(ctx, "a@x.com"))
	h.mr.FastForward(9 * time.Minute)
	require.NoError(t, h.uc.trackOTPRequest(ctx, "a@x.com"))

	assert.Equal(t, 10*time.Minute, h.mr.TTL("otp_requests_count:a@x.com"))
}

func TestTrackOTPRequest_StoreFailure(t *testing.T) {
	tests := []struct {
		name  string
		setup func(c *mockCache)
	}{
		{
			name: "increment",
			setup: func(c *mockCache) {
				c.On("IncrementBelow", mock.Anything, "otp_requests_count:a@x.com", int64(2), 10*time.Minute).
					Return(int64(0), false, errors.New("timeout")).Once()
			},
		},
		{
			name: "spam lock write",
			setup: func(c *mockCache) {
				c.On("IncrementBelow", mock.Anything, "otp_requests_count:a@x.com", int64(2), 10*time.Minute).
					Return(int64(2), false, nil).Once()
				c.On("Set", mock.Anything, "otp_spam_lock:a@x.com", "locked", 30*time.Minute).
					Return(errors.New("timeout")).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := new(mockCache)
			tt.setup(cache)
			uc := newMockedUsecase(cache)

			err := uc.trackOTPRequest(context.Background(), "a@x.com")

			assert.ErrorIs(t, err, entity.ErrStoreUnavailable)
			assertServerError(t, err)
			cache.AssertExpectations(t)
		})
	}
}
