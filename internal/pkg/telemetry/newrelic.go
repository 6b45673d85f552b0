package telemetry

import (
	"context"
	"net/http"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/trip-aggregator/internal/config"
)

// NewApplication стартует агент New Relic. Без ключа лицензии возвращает nil:
// все хелперы этого пакета корректно работают с nil-приложением.
func NewApplication(cfg config.NewRelicConfig, logger *zap.Logger) (*newrelic.Application, error) {
	if !cfg.Enabled() {
		logger.Info("New Relic disabled: no license key")
		return nil, nil
	}

	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.AppName),
		newrelic.ConfigLicense(cfg.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(true),
		newrelic.ConfigAppLogForwardingEnabled(true),
	)
	if err != nil {
		return nil, err
	}

	logger.Info("New Relic enabled", zap.String("app", cfg.AppName))
	return app, nil
}

// Transport wraps base with external segments for the transaction found in the request context.
func Transport(base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return newrelic.NewRoundTripper(base)
}

// InstrumentRedis adds datastore segments to redis commands when app is not nil.
func InstrumentRedis(client *redis.Client, app *newrelic.Application) {
	if app == nil {
		return
	}
	client.AddHook(redisHook{})
}

type redisHook struct{}

func (redisHook) DialHook(next redis.DialHook) redis.DialHook {
	return next
}

func (redisHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		defer startSegment(ctx, cmd.Name()).End()
		return next(ctx, cmd)
	}
}

func (redisHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		defer startSegment(ctx, "pipeline").End()
		return next(ctx, cmds)
	}
}

func startSegment(ctx context.Context, operation string) *newrelic.DatastoreSegment {
	txn := newrelic.FromContext(ctx)
	return &newrelic.DatastoreSegment{
		StartTime:  txn.StartSegmentNow(),
		Product:    newrelic.DatastoreRedis,
		Operation:  operation,
		Collection: "redis",
	}
}
