package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/otpgate/internal/pkg/instrument"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// incrementBelow increments KEYS[1] with a fresh PX expiry of ARGV[2] only when
// its current value is below ARGV[1]. Returns {count, applied}.
var incrementBelow = redis.NewScript(`
local current = tonumber(redis.call('GET', KEYS[1]) or '0') or 0
if current >= tonumber(ARGV[1]) then
  return {current, 0}
end
redis.call('SET', KEYS[1], current + 1, 'PX', ARGV[2])
return {current + 1, 1}
`)

var errUnexpectedReply = errors.New("cache: unexpected script reply")

type Cache struct {
	client redis.UniversalClient
	ins    instrument.Instrumentation
}

func NewCache(client redis.UniversalClient, ins instrument.Instrumentation) *Cache {
	return &Cache{client: client, ins: ins}
}

func (c *Cache) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return c.ins.Tracer("identity.outbound.cache").Start(ctx, name)
}

func (c *Cache) endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (c *Cache) Get(ctx context.Context, key string) (value string, found bool, err error) {
	ctx, span := c.startSpan(ctx, "Get")
	defer func() { c.endSpan(span, err) }()

	value, err = c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	return value, true, nil
}

func (c *Cache) Set(ctx context.Context, key, value string, ttl time.Duration) (err error) {
	ctx, span := c.startSpan(ctx, "Set")
	defer func() { c.endSpan(span, err) }()

	err = c.client.Set(ctx, key, value, ttl).Err()
	return err
}

func (c *Cache) IncrementBelow(ctx context.Context, key string, limit int64, ttl time.Duration) (count int64, ok bool, err error) {
	ctx, span := c.startSpan(ctx, "IncrementBelow")
	defer func() { c.endSpan(span, err) }()

	reply, err := incrementBelow.Run(ctx, c.client, []string{key}, limit, ttl.Milliseconds()).Int64Slice()
	if err != nil {
		return 0, false, err
	}
	if len(reply) != 2 {
		err = fmt.Errorf("%w: %v", errUnexpectedReply, reply)
		return 0, false, err
	}

	return reply[0], reply[1] == 1, nil
}
