package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/trip-aggregator/internal/domain"
	"github.com/trip-aggregator/internal/usecase/dto"
)

type mockTripService struct{ mock.Mock }

func (m *mockTripService) ComputeTripDetails(ctx context.Context, origin, destination string, vehicleType domain.VehicleType, placesQuery string) (*domain.TripDetails, error) {
	args := m.Called(ctx, origin, destination, vehicleType, placesQuery)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TripDetails), args.Error(1)
}

func (m *mockTripService) ComputeFare(ctx context.Context, origin, destination string, vehicleType domain.VehicleType) (*dto.FareEstimateResponse, error) {
	args := m.Called(ctx, origin, destination, vehicleType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.FareEstimateResponse), args.Error(1)
}

type mockFareRecordService struct{ mock.Mock }

func (m *mockFareRecordService) Create(ctx context.Context, req dto.CreateFareRecordRequest) (*domain.FareRecord, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FareRecord), args.Error(1)
}

func (m *mockFareRecordService) Get(ctx context.Context, id int64) (*domain.FareRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FareRecord), args.Error(1)
}

func (m *mockFareRecordService) List(ctx context.Context, req dto.ListFareRecordsRequest) (*dto.FareRecordListResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.FareRecordListResponse), args.Error(1)
}

func (m *mockFareRecordService) Update(ctx context.Context, id int64, req dto.UpdateFareRecordRequest) (*domain.FareRecord, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FareRecord), args.Error(1)
}

func (m *mockFareRecordService) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockLookupService struct{ mock.Mock }

func (m *mockLookupService) Geocode(ctx context.Context, address string) (*dto.GeocodeResponse, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.GeocodeResponse), args.Error(1)
}

func (m *mockLookupService) Weather(ctx context.Context, city string) domain.WeatherReport {
	return m.Called(ctx, city).Get(0).(domain.WeatherReport)
}

func (m *mockLookupService) News(ctx context.Context, query string) domain.NewsFeed {
	return m.Called(ctx, query).Get(0).(domain.NewsFeed)
}

func (m *mockLookupService) Places(ctx context.Context, req dto.PlacesRequest) (domain.NearbyPlaces, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.NearbyPlaces), args.Error(1)
}

type stubHealth struct{ err error }

func (s stubHealth) Health(ctx context.Context) error { return s.err }

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Meta  map[string]any  `json:"meta"`
	Error *struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func doRequest(t *testing.T, app *fiber.App, method, target, body string) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	return resp.StatusCode, env
}

func newTripApp(svc TripService) *fiber.App {
	h := NewTripHandler(svc, zap.NewNop())
	app := fiber.New()
	app.Get("/trip", h.GetTrip)
	app.Post("/trip", h.PostTrip)
	app.Get("/fare", h.GetFare)
	return app
}

func TestTripHandler_GetTrip(t *testing.T) {
	svc := new(mockTripService)
	trip := &domain.TripDetails{
		Origin:            "Divisoria CDO",
		Destination:       "Gingoog City",
		DistanceKm:        75,
		TravelTimeMinutes: 91,
		Fare:              domain.FareQuote{Amount: 237, Currency: "PHP", VehicleType: domain.VehicleBus},
	}
	svc.On("ComputeTripDetails", mock.Anything, "Divisoria CDO", "Gingoog City", domain.VehicleBus, "").
		Return(trip, nil).Once()

	status, env := doRequest(t, newTripApp(svc), http.MethodGet,
		"/trip?origin_address=Divisoria%20CDO&destination_address=Gingoog%20City&vehicle_type=bus", "")

	assert.Equal(t, http.StatusOK, status)
	var got domain.TripDetails
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, 91, got.TravelTimeMinutes)
	assert.Equal(t, 237.0, got.Fare.Amount)
	svc.AssertExpectations(t)
}

func TestTripHandler_PostTrip(t *testing.T) {
	svc := new(mockTripService)
	svc.On("ComputeTripDetails", mock.Anything, "Carmen", "Agora", domain.VehicleType(""), "cafe").
		Return(&domain.TripDetails{Origin: "Carmen", Destination: "Agora"}, nil).Once()

	status, _ := doRequest(t, newTripApp(svc), http.MethodPost, "/trip",
		`{"origin_address":"Carmen","destination_address":"Agora","query":"cafe"}`)

	assert.Equal(t, http.StatusOK, status)
	svc.AssertExpectations(t)
}

func TestTripHandler_MissingAddress(t *testing.T) {
	svc := new(mockTripService)

	status, env := doRequest(t, newTripApp(svc), http.MethodGet, "/trip?origin_address=Carmen", "")

	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	assert.Contains(t, env.Error.Details, "destination_address")
	svc.AssertNotCalled(t, "ComputeTripDetails")
}

func TestTripHandler_InvalidBody(t *testing.T) {
	status, env := doRequest(t, newTripApp(new(mockTripService)), http.MethodPost, "/trip", `{"origin_address":`)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
}

func TestTripHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "geocode not found",
			err:        &domain.GeocodeFailure{Role: "destination", Address: "Atlantis", Err: domain.ErrNotFound},
			wantStatus: http.StatusNotFound,
			wantCode:   "GEOCODE_NOT_FOUND",
		},
		{
			name:       "route unavailable",
			err:        &domain.RouteUnavailableError{Primary: errors.New("a"), Fallback: errors.New("b")},
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "ROUTE_UNAVAILABLE",
		},
		{
			name:       "geocoder provider down",
			err:        &domain.GeocodeFailure{Role: "origin", Address: "Carmen", Err: &domain.ProviderError{Provider: "locationiq", StatusCode: 500}},
			wantStatus: http.StatusBadGateway,
			wantCode:   "GEOCODE_PROVIDER_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockTripService)
			svc.On("ComputeTripDetails", mock.Anything, "Carmen", "Atlantis", domain.VehicleType(""), "").
				Return(nil, tt.err).Once()

			status, env := doRequest(t, newTripApp(svc), http.MethodGet,
				"/trip?origin_address=Carmen&destination_address=Atlantis", "")

			assert.Equal(t, tt.wantStatus, status)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
		})
	}
}

func TestTripHandler_GetFare(t *testing.T) {
	svc := new(mockTripService)
	svc.On("ComputeFare", mock.Anything, "Carmen", "Lapasan", domain.VehicleTaxi).
		Return(&dto.FareEstimateResponse{
			Origin: "Carmen", Destination: "Lapasan", DistanceKm: 12, TravelTimeMinutes: 26,
			ExpectedFare: 202, VehicleType: domain.VehicleTaxi, Currency: "PHP",
		}, nil).Once()

	status, env := doRequest(t, newTripApp(svc), http.MethodGet,
		"/fare?origin_address=Carmen&destination_address=Lapasan&vehicle_type=taxi", "")

	assert.Equal(t, http.StatusOK, status)
	var got dto.FareEstimateResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, 202.0, got.ExpectedFare)
	assert.Equal(t, "PHP", got.Currency)
}

func newFareRecordApp(svc FareRecordService) *fiber.App {
	h := NewFareRecordHandler(svc, zap.NewNop())
	app := fiber.New()
	app.Post("/fares", h.Create)
	app.Get("/fares", h.List)
	app.Get("/fares/:id", h.Get)
	app.Put("/fares/:id", h.Update)
	app.Delete("/fares/:id", h.Delete)
	return app
}

func TestFareRecordHandler_Create(t *testing.T) {
	svc := new(mockFareRecordService)
	svc.On("Create", mock.Anything, mock.MatchedBy(func(req dto.CreateFareRecordRequest) bool {
		return req.VehicleType == "jeepney" && *req.DistanceKm == 5
	})).Return(&domain.FareRecord{ID: 7, VehicleType: domain.VehicleJeepney}, nil).Once()

	status, env := doRequest(t, newFareRecordApp(svc), http.MethodPost, "/fares", `{
		"origin_address":"Carmen","destination_address":"Agora","vehicle_type":"jeepney",
		"distance_km":5,"travel_time_minutes":12,"expected_fare":30,"base_fare":15,"distance_rate_per_km":1.5}`)

	assert.Equal(t, http.StatusCreated, status)
	var got domain.FareRecord
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, int64(7), got.ID)
	svc.AssertExpectations(t)
}

func TestFareRecordHandler_CreateMissingFields(t *testing.T) {
	svc := new(mockFareRecordService)

	status, env := doRequest(t, newFareRecordApp(svc), http.MethodPost, "/fares",
		`{"origin_address":"Carmen","destination_address":"Agora","vehicle_type":"hoverboard"}`)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, env.Error.Details, "vehicle_type")
	assert.Contains(t, env.Error.Details, "distance_km")
	svc.AssertNotCalled(t, "Create")
}

func TestFareRecordHandler_GetNotFound(t *testing.T) {
	svc := new(mockFareRecordService)
	svc.On("Get", mock.Anything, int64(99)).Return(nil, domain.ErrFareRecordNotFound).Once()

	status, env := doRequest(t, newFareRecordApp(svc), http.MethodGet, "/fares/99", "")

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "FARE_RECORD_NOT_FOUND", env.Error.Code)
}

func TestFareRecordHandler_BadID(t *testing.T) {
	status, env := doRequest(t, newFareRecordApp(new(mockFareRecordService)), http.MethodGet, "/fares/abc", "")

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, env.Error.Details, "id")
}

func TestFareRecordHandler_List(t *testing.T) {
	svc := new(mockFareRecordService)
	svc.On("List", mock.Anything, dto.ListFareRecordsRequest{Limit: 0, Offset: 10}).
		Return(&dto.FareRecordListResponse{Records: []*domain.FareRecord{}, Total: 12}, nil).Once()

	status, env := doRequest(t, newFareRecordApp(svc), http.MethodGet, "/fares?offset=10", "")

	assert.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 12, env.Meta["total"])
	assert.EqualValues(t, 20, env.Meta["limit"])
	assert.EqualValues(t, 10, env.Meta["offset"])
}

func TestFareRecordHandler_ListLimitTooLarge(t *testing.T) {
	status, _ := doRequest(t, newFareRecordApp(new(mockFareRecordService)), http.MethodGet, "/fares?limit=500", "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestFareRecordHandler_Update(t *testing.T) {
	svc := new(mockFareRecordService)
	svc.On("Update", mock.Anything, int64(3), mock.MatchedBy(func(req dto.UpdateFareRecordRequest) bool {
		return req.ExpectedFare != nil && *req.ExpectedFare == 45 && req.OriginAddress == nil
	})).Return(&domain.FareRecord{ID: 3, ExpectedFare: 45}, nil).Once()

	status, _ := doRequest(t, newFareRecordApp(svc), http.MethodPut, "/fares/3", `{"expected_fare":45}`)

	assert.Equal(t, http.StatusOK, status)
	svc.AssertExpectations(t)
}

func TestFareRecordHandler_Delete(t *testing.T) {
	svc := new(mockFareRecordService)
	svc.On("Delete", mock.Anything, int64(5)).Return(false, nil).Once()

	status, env := doRequest(t, newFareRecordApp(svc), http.MethodDelete, "/fares/5", "")

	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"deleted":false}`, string(env.Data))
}

func newLookupApp(svc LookupService) *fiber.App {
	h := NewLookupHandler(svc, zap.NewNop())
	app := fiber.New()
	app.Get("/geocode", h.Geocode)
	app.Post("/geocode", h.Geocode)
	app.Get("/geocode/:address", h.GeocodeByPath)
	app.Get("/weather", h.Weather)
	app.Get("/news", h.News)
	app.Get("/places", h.Places)
	return app
}

func TestLookupHandler_Geocode(t *testing.T) {
	svc := new(mockLookupService)
	svc.On("Geocode", mock.Anything, "Gingoog City").
		Return(&dto.GeocodeResponse{Address: "Gingoog City", Lat: 8.82, Lon: 125.1}, nil).Twice()
	app := newLookupApp(svc)

	status, _ := doRequest(t, app, http.MethodGet, "/geocode?address=Gingoog%20City", "")
	assert.Equal(t, http.StatusOK, status)

	status, _ = doRequest(t, app, http.MethodPost, "/geocode", `{"address":"Gingoog City"}`)
	assert.Equal(t, http.StatusOK, status)
	svc.AssertExpectations(t)
}

func TestLookupHandler_GeocodeByPathNotFound(t *testing.T) {
	svc := new(mockLookupService)
	svc.On("Geocode", mock.Anything, "Atlantis Lost").
		Return(nil, &domain.GeocodeFailure{Role: "requested", Address: "Atlantis Lost", Err: domain.ErrNotFound}).Once()

	status, env := doRequest(t, newLookupApp(svc), http.MethodGet, "/geocode/Atlantis%20Lost", "")

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "GEOCODE_NOT_FOUND", env.Error.Code)
	assert.Equal(t, "Atlantis Lost", env.Error.Details["address"])
}

func TestLookupHandler_WeatherUnavailableIsNotAnError(t *testing.T) {
	svc := new(mockLookupService)
	svc.On("Weather", mock.Anything, "Gingoog").
		Return(domain.UnavailableWeather("openweather: status 503")).Once()

	status, env := doRequest(t, newLookupApp(svc), http.MethodGet, "/weather?city=Gingoog", "")

	assert.Equal(t, http.StatusOK, status)
	var got domain.WeatherReport
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, domain.EnrichmentUnavailable, got.Status)
}

func TestLookupHandler_NewsRequiresQuery(t *testing.T) {
	svc := new(mockLookupService)

	status, _ := doRequest(t, newLookupApp(svc), http.MethodGet, "/news", "")

	assert.Equal(t, http.StatusBadRequest, status)
	svc.AssertNotCalled(t, "News")
}

func TestLookupHandler_Places(t *testing.T) {
	svc := new(mockLookupService)
	svc.On("Places", mock.Anything, mock.MatchedBy(func(req dto.PlacesRequest) bool {
		return req.Lat != nil && *req.Lat == 8.5 && *req.Lon == 124.6 && req.Radius == 800
	})).Return(domain.NearbyPlaces{
		Status: domain.EnrichmentOK,
		Places: []domain.Place{{Name: "Cafe"}},
	}, nil).Once()

	status, env := doRequest(t, newLookupApp(svc), http.MethodGet, "/places?lat=8.5&lon=124.6&radius=800", "")

	assert.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, env.Meta["total"])
	svc.AssertExpectations(t)
}

func TestLookupHandler_PlacesMissingCoordinates(t *testing.T) {
	status, env := doRequest(t, newLookupApp(new(mockLookupService)), http.MethodGet, "/places?lat=8.5", "")

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, env.Error.Details, "lon")
}

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name       string
		checks     map[string]HealthChecker
		wantStatus int
	}{
		{"all up", map[string]HealthChecker{"postgres": stubHealth{}, "redis": stubHealth{}}, http.StatusOK},
		{"redis down", map[string]HealthChecker{"postgres": stubHealth{}, "redis": stubHealth{err: errors.New("refused")}}, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/health", NewHealthHandler(tt.checks, zap.NewNop()).Health)

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
