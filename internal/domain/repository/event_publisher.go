package repository

import (
	"context"

	"github.com/trip-aggregator/internal/domain"
)

// FareEventPublisher публикует события изменения записей тарифов
type FareEventPublisher interface {
	PublishFareEvent(ctx context.Context, event domain.FareRecordEvent) error
	Close() error
}
