package trip

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/trip-aggregator/internal/config"
	"github.com/trip-aggregator/internal/domain"
	"github.com/trip-aggregator/internal/domain/repository"
	apperrors "github.com/trip-aggregator/internal/pkg/errors"
	"github.com/trip-aggregator/internal/worker"
)

const (
	emptyQueueSleep = 100 * time.Millisecond // пауза если очередь пуста
	errorSleep      = time.Second
)

// TripComputer - то, что воркер вызывает на каждое событие (*usecase.TripAggregator)
type TripComputer interface {
	ComputeTripDetails(
		ctx context.Context,
		originAddress, destinationAddress string,
		vehicleType domain.VehicleType,
		placesQuery string,
	) (*domain.TripDetails, error)
}

// ComputeWorker читает stream:trip:compute, считает поездку и публикует результат в stream:trip:done
type ComputeWorker struct {
	*worker.BaseWorker
	streamRepo  repository.StreamRepository
	trips       TripComputer
	batchSize   int
	concurrency int
}

func NewComputeWorker(
	streamRepo repository.StreamRepository,
	trips TripComputer,
	cfg config.WorkerConfig,
	logger *zap.Logger,
) *ComputeWorker {
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = 10
	}
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	return &ComputeWorker{
		BaseWorker:  worker.NewBaseWorker("trip-compute", cfg.ConsumerGroup, logger),
		streamRepo:  streamRepo,
		trips:       trips,
		batchSize:   batchSize,
		concurrency: concurrency,
	}
}

// Start запускает воркер
func (w *ComputeWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting trip compute worker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.ConsumerName()),
		zap.Int("batch_size", w.batchSize),
		zap.Int("concurrency", w.concurrency))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamTripCompute, w.ConsumerGroup()); err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil
		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()
		default:
		}

		processed, err := w.ProcessBatch(ctx)
		if err != nil {
			logger.Error("Failed to process batch", zap.Error(err))
			w.Pause(ctx, errorSleep)
			continue
		}
		if processed == 0 {
			w.Pause(ctx, emptyQueueSleep)
		}
	}
}

// ProcessBatch читает одну пачку и обрабатывает её. Возвращает число прочитанных сообщений.
// Битые сообщения подтверждаются и пропускаются.
func (w *ComputeWorker) ProcessBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamTripCompute,
		w.ConsumerGroup(),
		w.ConsumerName(),
		w.batchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}
	if len(messages) == 0 {
		return 0, nil
	}

	logger.Debug("Processing batch", zap.Int("message_count", len(messages)))

	var (
		mu     sync.Mutex
		ackIDs = make([]string, 0, len(messages))
	)
	ack := func(id string) {
		mu.Lock()
		ackIDs = append(ackIDs, id)
		mu.Unlock()
	}

	g := new(errgroup.Group)
	g.SetLimit(w.concurrency)

	for _, msg := range messages {
		msg := msg
		event, err := parseMessage(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			ack(msg.ID)
			continue
		}

		g.Go(func() error {
			if w.handle(ctx, event) {
				ack(msg.ID)
			}
			return nil
		})
	}
	_ = g.Wait()

	if err := w.streamRepo.AckMessages(ctx, domain.StreamTripCompute, w.ConsumerGroup(), ackIDs); err != nil {
		// не критично, сообщения останутся в pending
		logger.Error("Failed to ack messages", zap.Error(err))
	}

	return len(messages), nil
}

// handle считает одну поездку и публикует результат; false если результат не удалось опубликовать
func (w *ComputeWorker) handle(ctx context.Context, event domain.TripComputeEvent) bool {
	logger := w.Logger().With(zap.String("request_id", event.RequestID.String()))

	done := domain.TripDoneEvent{RequestID: event.RequestID}

	trip, err := w.computeTrip(ctx, event)
	if err != nil {
		appErr := apperrors.FromError(err)
		done.Error = appErr.Message
		done.ErrorCode = appErr.Code
		logger.Warn("Trip computation failed",
			zap.String("origin", event.OriginAddress),
			zap.String("destination", event.DestinationAddress),
			zap.String("error_code", appErr.Code),
			zap.Error(err))
	} else {
		done.Trip = trip
	}

	if err := w.streamRepo.PublishToStream(ctx, domain.StreamTripDone, done); err != nil {
		logger.Error("Failed to publish done event", zap.Error(err))
		return false
	}
	return true
}

func (w *ComputeWorker) computeTrip(ctx context.Context, event domain.TripComputeEvent) (*domain.TripDetails, error) {
	if err := event.Validate(); err != nil {
		return nil, err
	}
	return w.trips.ComputeTripDetails(
		ctx,
		event.OriginAddress,
		event.DestinationAddress,
		domain.VehicleType(event.VehicleType),
		event.Query,
	)
}

// parseMessage - событие без request_id некуда вернуть, оно считается битым
func parseMessage(msg domain.StreamMessage) (domain.TripComputeEvent, error) {
	var event domain.TripComputeEvent
	if msg.Data == "" {
		return event, fmt.Errorf("missing or invalid 'data' field")
	}
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return event, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if event.RequestID == uuid.Nil {
		return event, fmt.Errorf("event has no request_id")
	}
	return event, nil
}
