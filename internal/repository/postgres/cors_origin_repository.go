package postgres

import (
	"context"

	"github.com/trip-aggregator/internal/domain"
	"github.com/trip-aggregator/internal/domain/repository"
)

type corsOriginRepository struct {
	db *DB
}

// NewCORSOriginRepository создает репозиторий разрешённых CORS origin
func NewCORSOriginRepository(db *DB) repository.CORSOriginRepository {
	return &corsOriginRepository{db: db}
}

func (r *corsOriginRepository) ListOrigins(ctx context.Context) ([]string, error) {
	origins := []string{}
	if err := r.db.SelectContext(ctx, &origins, `SELECT origin FROM cors_origins ORDER BY id`); err != nil {
		return nil, &domain.PersistenceError{Operation: "list_cors_origins", Err: err}
	}
	return origins, nil
}
