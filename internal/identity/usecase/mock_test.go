package usecase

import (
	"context"
	"time"

	"github.com/shandysiswandi/otpgate/internal/identity/entity"
	"github.com/stretchr/testify/mock"
)

type mockDB struct{ mock.Mock }

func (m *mockDB) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if u, _ := args.Get(0).(*entity.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockCache struct{ mock.Mock }

func (m *mockCache) Get(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *mockCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}

func (m *mockCache) IncrementBelow(ctx context.Context, key string, limit int64, ttl time.Duration) (int64, bool, error) {
	args := m.Called(ctx, key, limit, ttl)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

type mockEmail struct{ mock.Mock }

func (m *mockEmail) SendTemplate(ctx context.Context, to, subject, templateID string, data map[string]any) error {
	return m.Called(ctx, to, subject, templateID, data).Error(0)
}

type mockMessaging struct{ mock.Mock }

func (m *mockMessaging) PublishOTPDispatched(ctx context.Context, msg OTPDispatchedEvent) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *mockMessaging) PublishOTPSpamLocked(ctx context.Context, msg OTPSpamLockedEvent) error {
	return m.Called(ctx, msg).Error(0)
}
