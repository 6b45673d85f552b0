package trip_test

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/trip-aggregator/internal/config"
	"github.com/trip-aggregator/internal/domain"
	"github.com/trip-aggregator/internal/worker/trip"
)

type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	return m.Called(ctx, stream, group).Error(0)
}

func (m *MockStreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, maxCount int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, maxCount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessages(ctx context.Context, stream, group string, messageIDs []string) error {
	return m.Called(ctx, stream, group, messageIDs).Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	return m.Called(ctx, stream, data).Error(0)
}

type MockTripComputer struct {
	mock.Mock
}

func (m *MockTripComputer) ComputeTripDetails(ctx context.Context, origin, destination string, vehicleType domain.VehicleType, placesQuery string) (*domain.TripDetails, error) {
	args := m.Called(ctx, origin, destination, vehicleType, placesQuery)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TripDetails), args.Error(1)
}

func workerConfig() config.WorkerConfig {
	return config.WorkerConfig{ConsumerGroup: "test-group", BatchSize: 10, Concurrency: 2}
}

func message(t *testing.T, id string, event domain.TripComputeEvent) domain.StreamMessage {
	t.Helper()
	data, err := json.Marshal(event)
	require.NoError(t, err)
	return domain.StreamMessage{ID: id, Data: string(data)}
}

func doneFor(requestID uuid.UUID, check func(domain.TripDoneEvent) bool) interface{} {
	return mock.MatchedBy(func(data interface{}) bool {
		done, ok := data.(domain.TripDoneEvent)
		return ok && done.RequestID == requestID && check(done)
	})
}

func idsMatch(want ...string) interface{} {
	sorted := slices.Clone(want)
	slices.Sort(sorted)
	return mock.MatchedBy(func(got []string) bool {
		got = slices.Clone(got)
		slices.Sort(got)
		return slices.Equal(sorted, got)
	})
}

func TestComputeWorker_Name(t *testing.T) {
	w := trip.NewComputeWorker(&MockStreamRepository{}, &MockTripComputer{}, workerConfig(), zap.NewNop())
	assert.Equal(t, "trip-compute", w.Name())
	assert.Equal(t, "test-group", w.ConsumerGroup())
}

func TestComputeWorker_ProcessBatch(t *testing.T) {
	streams := &MockStreamRepository{}
	trips := &MockTripComputer{}
	w := trip.NewComputeWorker(streams, trips, workerConfig(), zap.NewNop())
	ctx := context.Background()

	okID := uuid.New()
	failedID := uuid.New()
	invalidID := uuid.New()

	messages := []domain.StreamMessage{
		message(t, "1-0", domain.TripComputeEvent{
			RequestID: okID, OriginAddress: "Divisoria, CDO", DestinationAddress: "Gingoog City", VehicleType: "bus",
		}),
		message(t, "2-0", domain.TripComputeEvent{
			RequestID: failedID, OriginAddress: "Carmen", DestinationAddress: "Atlantis",
		}),
		message(t, "3-0", domain.TripComputeEvent{RequestID: invalidID, OriginAddress: "Carmen"}),
		{ID: "4-0", Data: "{not json"},
		{ID: "5-0"},
		message(t, "6-0", domain.TripComputeEvent{OriginAddress: "Carmen", DestinationAddress: "Agora"}),
	}

	streams.On("ConsumeBatch", mock.Anything, domain.StreamTripCompute, "test-group", mock.Anything, 10).
		Return(messages, nil).Once()

	trips.On("ComputeTripDetails", mock.Anything, "Divisoria, CDO", "Gingoog City", domain.VehicleBus, "").
		Return(&domain.TripDetails{Origin: "Divisoria, CDO", Destination: "Gingoog City", TravelTimeMinutes: 91}, nil).Once()
	trips.On("ComputeTripDetails", mock.Anything, "Carmen", "Atlantis", domain.VehicleType(""), "").
		Return(nil, &domain.GeocodeFailure{Role: "destination", Address: "Atlantis", Err: domain.ErrNotFound}).Once()

	streams.On("PublishToStream", mock.Anything, domain.StreamTripDone, doneFor(okID, func(d domain.TripDoneEvent) bool {
		return d.Trip != nil && d.Trip.TravelTimeMinutes == 91 && d.Error == ""
	})).Return(nil).Once()
	streams.On("PublishToStream", mock.Anything, domain.StreamTripDone, doneFor(failedID, func(d domain.TripDoneEvent) bool {
		return d.Trip == nil && d.ErrorCode == "GEOCODE_NOT_FOUND"
	})).Return(nil).Once()
	streams.On("PublishToStream", mock.Anything, domain.StreamTripDone, doneFor(invalidID, func(d domain.TripDoneEvent) bool {
		return d.ErrorCode == "INVALID_INPUT"
	})).Return(nil).Once()

	streams.On("AckMessages", mock.Anything, domain.StreamTripCompute, "test-group",
		idsMatch("1-0", "2-0", "3-0", "4-0", "5-0", "6-0")).Return(nil).Once()

	processed, err := w.ProcessBatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, processed)

	streams.AssertExpectations(t)
	trips.AssertExpectations(t)
}

func TestComputeWorker_PublishFailureIsNotAcked(t *testing.T) {
	streams := &MockStreamRepository{}
	trips := &MockTripComputer{}
	w := trip.NewComputeWorker(streams, trips, workerConfig(), zap.NewNop())

	requestID := uuid.New()
	streams.On("ConsumeBatch", mock.Anything, domain.StreamTripCompute, "test-group", mock.Anything, 10).
		Return([]domain.StreamMessage{message(t, "1-0", domain.TripComputeEvent{
			RequestID: requestID, OriginAddress: "Carmen", DestinationAddress: "Agora",
		})}, nil).Once()
	trips.On("ComputeTripDetails", mock.Anything, "Carmen", "Agora", domain.VehicleType(""), "").
		Return(&domain.TripDetails{}, nil).Once()
	streams.On("PublishToStream", mock.Anything, domain.StreamTripDone, mock.Anything).
		Return(errors.New("redis down")).Once()
	streams.On("AckMessages", mock.Anything, domain.StreamTripCompute, "test-group", []string{}).
		Return(nil).Once()

	processed, err := w.ProcessBatch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, processed)
	streams.AssertExpectations(t)
}

func TestComputeWorker_CancelledTripReportsCancellation(t *testing.T) {
	streams := &MockStreamRepository{}
	trips := &MockTripComputer{}
	w := trip.NewComputeWorker(streams, trips, workerConfig(), zap.NewNop())

	requestID := uuid.New()
	streams.On("ConsumeBatch", mock.Anything, domain.StreamTripCompute, "test-group", mock.Anything, 10).
		Return([]domain.StreamMessage{message(t, "1-0", domain.TripComputeEvent{
			RequestID: requestID, OriginAddress: "Carmen", DestinationAddress: "Agora",
		})}, nil).Once()
	trips.On("ComputeTripDetails", mock.Anything, "Carmen", "Agora", domain.VehicleType(""), "").
		Return(nil, context.Canceled).Once()
	streams.On("PublishToStream", mock.Anything, domain.StreamTripDone, doneFor(requestID, func(d domain.TripDoneEvent) bool {
		return d.Trip == nil && d.ErrorCode == "REQUEST_CANCELLED"
	})).Return(nil).Once()
	streams.On("AckMessages", mock.Anything, domain.StreamTripCompute, "test-group", []string{"1-0"}).
		Return(nil).Once()

	_, err := w.ProcessBatch(context.Background())
	require.NoError(t, err)
	streams.AssertExpectations(t)
}

func TestComputeWorker_EmptyBatch(t *testing.T) {
	streams := &MockStreamRepository{}
	w := trip.NewComputeWorker(streams, &MockTripComputer{}, workerConfig(), zap.NewNop())

	streams.On("ConsumeBatch", mock.Anything, domain.StreamTripCompute, "test-group", mock.Anything, 10).
		Return(nil, nil).Once()

	processed, err := w.ProcessBatch(context.Background())
	require.NoError(t, err)
	assert.Zero(t, processed)
	streams.AssertNotCalled(t, "AckMessages", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestComputeWorker_ConsumeError(t *testing.T) {
	streams := &MockStreamRepository{}
	w := trip.NewComputeWorker(streams, &MockTripComputer{}, workerConfig(), zap.NewNop())

	streams.On("ConsumeBatch", mock.Anything, domain.StreamTripCompute, "test-group", mock.Anything, 10).
		Return(nil, errors.New("connection refused")).Once()

	_, err := w.ProcessBatch(context.Background())
	assert.Error(t, err)
}

func TestComputeWorker_StartStop(t *testing.T) {
	streams := &MockStreamRepository{}
	w := trip.NewComputeWorker(streams, &MockTripComputer{}, workerConfig(), zap.NewNop())

	streams.On("CreateConsumerGroup", mock.Anything, domain.StreamTripCompute, "test-group").Return(nil).Once()
	streams.On("ConsumeBatch", mock.Anything, domain.StreamTripCompute, "test-group", mock.Anything, 10).
		Return(nil, nil).Maybe()

	done := make(chan error, 1)
	go func() { done <- w.Start(context.Background()) }()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
	assert.True(t, w.IsStopped())

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestComputeWorker_StartFailsWithoutGroup(t *testing.T) {
	streams := &MockStreamRepository{}
	w := trip.NewComputeWorker(streams, &MockTripComputer{}, workerConfig(), zap.NewNop())

	streams.On("CreateConsumerGroup", mock.Anything, domain.StreamTripCompute, "test-group").
		Return(errors.New("NOAUTH")).Once()

	assert.Error(t, w.Start(context.Background()))
}
