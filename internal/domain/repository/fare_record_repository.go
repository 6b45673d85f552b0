package repository

import (
	"context"

	"github.com/trip-aggregator/internal/domain"
)

// FareRecordRepository определяет методы для работы с сохранёнными тарифами
type FareRecordRepository interface {
	// Create сохраняет запись и заполняет ID и временные метки
	Create(ctx context.Context, record *domain.FareRecord) error

	// GetByID возвращает domain.ErrFareRecordNotFound если записи нет
	GetByID(ctx context.Context, id int64) (*domain.FareRecord, error)

	// List возвращает записи, новые первыми
	List(ctx context.Context, limit, offset int) ([]*domain.FareRecord, int, error)

	// Update применяет только заданные поля
	Update(ctx context.Context, id int64, update domain.FareRecordUpdate) (*domain.FareRecord, error)

	// Delete возвращает false если записи не было
	Delete(ctx context.Context, id int64) (bool, error)
}
