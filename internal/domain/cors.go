package domain

import "time"

// CORSOrigin - разрешённый origin из таблицы cors_origins
type CORSOrigin struct {
	ID        int64     `db:"id"`
	Origin    string    `db:"origin"`
	CreatedAt time.Time `db:"created_at"`
}
