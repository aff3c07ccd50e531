package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/otpgate/internal/identity/outbound/cache"
	"github.com/shandysiswandi/otpgate/internal/pkg/clock"
	"github.com/shandysiswandi/otpgate/internal/pkg/goerror"
	"github.com/shandysiswandi/otpgate/internal/pkg/goroutine"
	"github.com/shandysiswandi/otpgate/internal/pkg/instrument"
	"github.com/shandysiswandi/otpgate/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

// harness wires the usecase to a real cache adapter on miniredis and mocks
// everything else.
type harness struct {
	uc    *Usecase
	mr    *miniredis.Miniredis
	db    *mockDB
	email *mockEmail
	msg   *mockMessaging
	mgr   *goroutine.Manager
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	h := &harness{
		mr:    mr,
		db:    new(mockDB),
		email: new(mockEmail),
		msg:   new(mockMessaging),
		mgr:   goroutine.NewManager(10),
	}
	h.uc = New(Dependency{
		RepoDB:        h.db,
		RepoCache:     cache.NewCache(client, instrument.NewNoop()),
		RepoEmail:     h.email,
		RepoMessaging: h.msg,
		Validator:     v,
		Clock:         clock.Fixed(testNow),
		Instrument:    instrument.NewNoop(),
		Goroutine:     h.mgr,
	})

	return h
}

// drain waits for background publishes. The harness accepts no work afterwards.
func (h *harness) drain(t *testing.T) {
	t.Helper()
	require.NoError(t, h.mgr.Wait())
}

func newMockedUsecase(c *mockCache) *Usecase {
	return New(Dependency{
		RepoCache:     c,
		RepoMessaging: new(mockMessaging),
		Clock:         clock.Fixed(testNow),
		Instrument:    instrument.NewNoop(),
		Goroutine:     goroutine.NewManager(1),
	})
}

func assertServerError(t *testing.T, err error) {
	t.Helper()

	var gerr *goerror.Error
	if assert.True(t, errors.As(err, &gerr)) {
		assert.Equal(t, goerror.TypeServer, gerr.Type())
	}
}
