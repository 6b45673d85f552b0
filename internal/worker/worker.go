package worker

import (
	"context"
)

// Worker интерфейс для всех воркеров
type Worker interface {
	// Start блокирует до остановки воркера или отмены ctx
	Start(ctx context.Context) error

	// Stop сигнализирует воркеру завершиться после текущей пачки
	Stop() error

	Name() string
}
