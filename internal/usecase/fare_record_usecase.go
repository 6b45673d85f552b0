package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/trip-aggregator/internal/domain"
	"github.com/trip-aggregator/internal/domain/repository"
	"github.com/trip-aggregator/internal/pkg/validator"
	"github.com/trip-aggregator/internal/usecase/dto"
)

const (
	DefaultFareRecordLimit = 20
	MaxFareRecordLimit     = 100
)

// FareRecordUseCase - CRUD сохранённых тарифов с публикацией событий
type FareRecordUseCase struct {
	repo      repository.FareRecordRepository
	publisher repository.FareEventPublisher
	logger    *zap.Logger
}

// NewFareRecordUseCase создает FareRecordUseCase
func NewFareRecordUseCase(
	repo repository.FareRecordRepository,
	publisher repository.FareEventPublisher,
	logger *zap.Logger,
) *FareRecordUseCase {
	return &FareRecordUseCase{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// Create сохраняет запись; все поля обязательны
func (uc *FareRecordUseCase) Create(ctx context.Context, req dto.CreateFareRecordRequest) (*domain.FareRecord, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	vehicleType, _ := domain.ParseVehicleType(req.VehicleType)
	record := &domain.FareRecord{
		OriginAddress:      req.OriginAddress,
		DestinationAddress: req.DestinationAddress,
		VehicleType:        vehicleType,
		DistanceKm:         *req.DistanceKm,
		TravelTimeMinutes:  *req.TravelTimeMinutes,
		ExpectedFare:       *req.ExpectedFare,
		BaseFare:           *req.BaseFare,
		DistanceRatePerKm:  *req.DistanceRatePerKm,
	}

	if err := uc.repo.Create(ctx, record); err != nil {
		uc.logger.Error("Failed to create fare record", zap.Error(err))
		return nil, err
	}

	uc.logger.Info("Fare record created", zap.Int64("id", record.ID))
	uc.publish(ctx, domain.FareRecordCreated, record.ID, record)
	return record, nil
}

// Get возвращает запись по идентификатору
func (uc *FareRecordUseCase) Get(ctx context.Context, id int64) (*domain.FareRecord, error) {
	if id <= 0 {
		return nil, domain.NewInvalidInput("id", "must be a positive integer")
	}
	return uc.repo.GetByID(ctx, id)
}

// List возвращает страницу записей и общее количество
func (uc *FareRecordUseCase) List(ctx context.Context, req dto.ListFareRecordsRequest) (*dto.FareRecordListResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	limit := req.Limit
	if limit <= 0 {
		limit = DefaultFareRecordLimit
	}
	if limit > MaxFareRecordLimit {
		limit = MaxFareRecordLimit
	}

	records, total, err := uc.repo.List(ctx, limit, req.Offset)
	if err != nil {
		uc.logger.Error("Failed to list fare records", zap.Error(err))
		return nil, err
	}
	if records == nil {
		records = []*domain.FareRecord{}
	}

	return &dto.FareRecordListResponse{Records: records, Total: total}, nil
}

// Update применяет только переданные поля
func (uc *FareRecordUseCase) Update(ctx context.Context, id int64, req dto.UpdateFareRecordRequest) (*domain.FareRecord, error) {
	if id <= 0 {
		return nil, domain.NewInvalidInput("id", "must be a positive integer")
	}
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	update := domain.FareRecordUpdate{
		OriginAddress:      req.OriginAddress,
		DestinationAddress: req.DestinationAddress,
		DistanceKm:         req.DistanceKm,
		TravelTimeMinutes:  req.TravelTimeMinutes,
		ExpectedFare:       req.ExpectedFare,
		BaseFare:           req.BaseFare,
		DistanceRatePerKm:  req.DistanceRatePerKm,
	}
	if req.VehicleType != nil {
		vt, _ := domain.ParseVehicleType(*req.VehicleType)
		update.VehicleType = &vt
	}
	if update.IsEmpty() {
		return nil, domain.NewInvalidInput("body", "at least one field must be provided")
	}

	record, err := uc.repo.Update(ctx, id, update)
	if err != nil {
		uc.logger.Error("Failed to update fare record", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	uc.logger.Info("Fare record updated", zap.Int64("id", id))
	uc.publish(ctx, domain.FareRecordUpdated, id, record)
	return record, nil
}

// Delete возвращает false, если записи не было
func (uc *FareRecordUseCase) Delete(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, domain.NewInvalidInput("id", "must be a positive integer")
	}

	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to delete fare record", zap.Int64("id", id), zap.Error(err))
		return false, err
	}

	if deleted {
		uc.logger.Info("Fare record deleted", zap.Int64("id", id))
		uc.publish(ctx, domain.FareRecordDeleted, id, nil)
	}
	return deleted, nil
}

// publish: сбой публикации логируется и не влияет на результат операции
func (uc *FareRecordUseCase) publish(ctx context.Context, eventType string, id int64, record *domain.FareRecord) {
	event := domain.FareRecordEvent{
		Type:       eventType,
		RecordID:   id,
		Record:     record,
		OccurredAt: time.Now().UTC(),
	}
	if err := uc.publisher.PublishFareEvent(ctx, event); err != nil {
		uc.logger.Warn("Failed to publish fare event",
			zap.String("type", eventType),
			zap.Int64("record_id", id),
			zap.Error(err))
	}
}
