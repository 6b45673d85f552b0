package middleware

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"github.com/trip-aggregator/internal/domain/repository"
)

// OriginAllowlist - разрешённые origin: из конфигурации и из таблицы cors_origins.
// Снимок заменяется целиком, чтение без блокировок.
type OriginAllowlist struct {
	static   []string
	repo     repository.CORSOriginRepository
	snapshot atomic.Pointer[map[string]struct{}]
	logger   *zap.Logger
}

// NewOriginAllowlist создаёт allowlist только со статическими origin; repo может быть nil
func NewOriginAllowlist(static []string, repo repository.CORSOriginRepository, logger *zap.Logger) *OriginAllowlist {
	a := &OriginAllowlist{
		static: normalizeOrigins(static),
		repo:   repo,
		logger: logger,
	}
	a.store(nil)
	return a
}

// Refresh перечитывает origin из БД. При ошибке остаётся предыдущий снимок.
func (a *OriginAllowlist) Refresh(ctx context.Context) error {
	if a.repo == nil {
		return nil
	}

	origins, err := a.repo.ListOrigins(ctx)
	if err != nil {
		a.logger.Warn("Failed to refresh CORS origins, keeping previous allowlist", zap.Error(err))
		return err
	}

	a.store(normalizeOrigins(origins))
	a.logger.Debug("CORS allowlist refreshed", zap.Int("db_origins", len(origins)))
	return nil
}

// Run обновляет allowlist с заданным интервалом до отмены ctx
func (a *OriginAllowlist) Run(ctx context.Context, interval time.Duration) {
	if a.repo == nil || interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			refreshCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			_ = a.Refresh(refreshCtx)
			cancel()
		}
	}
}

// Allowed reports whether origin is in the current snapshot.
func (a *OriginAllowlist) Allowed(origin string) bool {
	set := *a.snapshot.Load()
	_, ok := set[strings.TrimRight(strings.ToLower(origin), "/")]
	return ok
}

// Static returns the configured origins.
func (a *OriginAllowlist) Static() []string {
	return a.static
}

func (a *OriginAllowlist) store(dynamic []string) {
	set := make(map[string]struct{}, len(a.static)+len(dynamic))
	for _, o := range a.static {
		set[o] = struct{}{}
	}
	for _, o := range dynamic {
		set[o] = struct{}{}
	}
	a.snapshot.Store(&set)
}

func normalizeOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, o := range origins {
		o = strings.TrimRight(strings.ToLower(strings.TrimSpace(o)), "/")
		if o != "" {
			out = append(out, o)
		}
	}
	return out
}

// CORS - middleware для настройки Cross-Origin Resource Sharing
func CORS(allowlist *OriginAllowlist) fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:     strings.Join(allowlist.Static(), ","),
		AllowOriginsFunc: allowlist.Allowed,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Content-Type,Accept,Accept-Language,Authorization,X-Request-ID",
		AllowCredentials: true,
	})
}
