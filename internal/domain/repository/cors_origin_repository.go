package repository

import "context"

// CORSOriginRepository reads the persisted CORS allowlist.
type CORSOriginRepository interface {
	ListOrigins(ctx context.Context) ([]string, error)
}
