package inflight

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/xid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/totegamma/longrest/core"
)

var tracer = otel.Tracer("inflight")

const defaultTTL = 10 * time.Second

// releaseScript deletes the lock only while it still holds our token
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type guard struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewGuard creates a redis backed in-flight guard
func NewGuard(rdb *redis.Client, config core.Config) core.InFlightGuard {
	ttl := config.InFlightTTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &guard{rdb: rdb, ttl: ttl}
}

// Acquire claims scope until release is called or the ttl passes.
// It fails with ErrorInFlight while another holder has the scope.
func (g *guard) Acquire(ctx context.Context, scope string) (func(), error) {
	ctx, span := tracer.Start(ctx, "InFlight.Guard.Acquire")
	defer span.End()

	span.SetAttributes(attribute.String("scope", scope))

	key := "inflight:" + scope
	token := xid.New().String()

	ok, err := g.rdb.SetNX(ctx, key, token, g.ttl).Result()
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "failed to acquire in-flight lock")
	}
	if !ok {
		return nil, core.NewErrorInFlight(scope)
	}

	release := func() {
		// the request may already be cancelled when we get here
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
		defer cancel()

		err := releaseScript.Run(ctx, g.rdb, []string{key}, token).Err()
		if err != nil {
			slog.ErrorContext(
				ctx, "failed to release in-flight lock",
				slog.String("error", err.Error()),
				slog.String("scope", scope),
				slog.String("module", "inflight"),
			)
		}
	}

	return release, nil
}
