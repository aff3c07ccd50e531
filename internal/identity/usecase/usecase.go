package usecase

import (
	"context"
	"crypto/rand"
	"io"
	"log/slog"
	"time"

	"github.com/shandysiswandi/otpgate/internal/identity/entity"
	"github.com/shandysiswandi/otpgate/internal/pkg/clock"
	"github.com/shandysiswandi/otpgate/internal/pkg/config"
	"github.com/shandysiswandi/otpgate/internal/pkg/goroutine"
	"github.com/shandysiswandi/otpgate/internal/pkg/instrument"
	"github.com/shandysiswandi/otpgate/internal/pkg/validator"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

type OTPDispatchedEvent struct {
	Email       string
	AccountType entity.AccountType
	ExpiresAt   time.Time
}

type OTPSpamLockedEvent struct {
	Email       string
	LockedUntil time.Time
}

type repoMessaging interface {
	PublishOTPDispatched(ctx context.Context, msg OTPDispatchedEvent) error
	PublishOTPSpamLocked(ctx context.Context, msg OTPSpamLockedEvent) error
}

type repoDB interface {
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
}

// repoCache is the TTL key-value store holding every throttle key.
type repoCache interface {
	// Get reports whether key exists and returns its value.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set overwrites key and resets its expiry.
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	// IncrementBelow increments the integer at key and resets its expiry only
	// when the current value is below limit. A missing or non-numeric value
	// counts as zero. ok is false when the limit was already reached; the key
	// is then left untouched and count is the current value.
	IncrementBelow(ctx context.Context, key string, limit int64, ttl time.Duration) (count int64, ok bool, err error)
}

type repoEmail interface {
	SendTemplate(ctx context.Context, to, subject, templateID string, data map[string]any) error
}

type Usecase struct {
	repoDB        repoDB
	repoCache     repoCache
	repoEmail     repoEmail
	repoMessaging repoMessaging
	validator     validator.Validator
	policy        Policy
	clock         clock.Clocker
	ins           instrument.Instrumentation
	goroutine     *goroutine.Manager
	random        io.Reader

	issued   metric.Int64Counter
	rejected metric.Int64Counter
}

type Dependency struct {
	RepoDB        repoDB
	RepoCache     repoCache
	RepoEmail     repoEmail
	RepoMessaging repoMessaging
	Validator     validator.Validator
	Config        config.Config
	Clock         clock.Clocker
	Instrument    instrument.Instrumentation
	Goroutine     *goroutine.Manager

	// Random overrides the OTP entropy source. Defaults to crypto/rand.Reader.
	Random io.Reader
}

func New(dep Dependency) *Usecase {
	random := dep.Random
	if random == nil {
		random = rand.Reader
	}

	uc := &Usecase{
		repoDB:        dep.RepoDB,
		repoCache:     dep.RepoCache,
		repoEmail:     dep.RepoEmail,
		repoMessaging: dep.RepoMessaging,
		validator:     dep.Validator,
		policy:        NewPolicy(dep.Config),
		clock:         dep.Clock,
		ins:           dep.Instrument,
		goroutine:     dep.Goroutine,
		random:        random,
	}

	meter := dep.Instrument.Meter("identity.usecase")

	var err error
	uc.issued, err = meter.Int64Counter("identity.otp.issued", metric.WithDescription("Number of OTP codes delivered"))
	if err != nil {
		slog.Error("failed to create otp issued counter", "error", err)
	}

	uc.rejected, err = meter.Int64Counter("identity.otp.rejected", metric.WithDescription("Number of OTP requests rejected, by reason"))
	if err != nil {
		slog.Error("failed to create otp rejected counter", "error", err)
	}

	return uc
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("identity.usecase").Start(ctx, name)
}

func (s *Usecase) countRejected(ctx context.Context, reason string) {
	if s.rejected != nil {
		s.rejected.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
	}
}

// publish runs fn after the request returns. Events are best effort: failures
// are logged and never reach the caller.
func (s *Usecase) publish(ctx context.Context, name string, fn func(ctx context.Context) error) {
	s.goroutine.Go(context.WithoutCancel(ctx), func(ctx context.Context) error {
		if err := fn(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to publish "+name, "error", err)
		}
		return nil
	})
}
