package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/trip-aggregator/internal/domain"
	"github.com/trip-aggregator/internal/domain/repository"
	"github.com/trip-aggregator/internal/usecase/dto"
)

const (
	DefaultPlacesQuery  = "restaurant"
	DefaultPlacesRadius = 1500 // meters
	DefaultPlacesLimit  = 5
)

const (
	roleOrigin      = "origin"
	roleDestination = "destination"
)

var errEmptyRoute = errors.New("provider returned an empty route")

// TripSettings - параметры агрегации, приходят из config.TripConfig
type TripSettings struct {
	Timeout      time.Duration
	PlacesQuery  string
	PlacesRadius int
	PlacesLimit  int
}

func (s TripSettings) withDefaults() TripSettings {
	if s.PlacesQuery == "" {
		s.PlacesQuery = DefaultPlacesQuery
	}
	if s.PlacesRadius <= 0 {
		s.PlacesRadius = DefaultPlacesRadius
	}
	if s.PlacesLimit <= 0 {
		s.PlacesLimit = DefaultPlacesLimit
	}
	return s
}

// TripAggregator - usecase расчёта поездки: геокодирование, маршрут, тариф, обогащение
type TripAggregator struct {
	geocoder repository.GeocodingRepository
	router   repository.RoutingRepository
	weather  repository.WeatherRepository
	news     repository.NewsRepository
	places   repository.PlacesRepository
	fares    *FareEstimator
	settings TripSettings
	logger   *zap.Logger
}

// NewTripAggregator создает TripAggregator
func NewTripAggregator(
	geocoder repository.GeocodingRepository,
	router repository.RoutingRepository,
	weather repository.WeatherRepository,
	news repository.NewsRepository,
	places repository.PlacesRepository,
	fares *FareEstimator,
	settings TripSettings,
	logger *zap.Logger,
) *TripAggregator {
	return &TripAggregator{
		geocoder: geocoder,
		router:   router,
		weather:  weather,
		news:     news,
		places:   places,
		fares:    fares,
		settings: settings.withDefaults(),
		logger:   logger,
	}
}

// ComputeTripDetails собирает TripDetails.
//
// Политика ошибок:
//   - ошибка геокодирования любого адреса прерывает операцию (GeocodeFailure)
//   - ошибка или пустой ответ основного маршрутизатора переключает на резервный (directions геокодера);
//     если оба не ответили - RouteUnavailableError
//   - погода, новости и места не прерывают операцию, вместо них подставляется маркер "unavailable"
//
// При отмене ctx частичный результат отбрасывается.
func (uc *TripAggregator) ComputeTripDetails(
	ctx context.Context,
	originAddress, destinationAddress string,
	vehicleType domain.VehicleType,
	placesQuery string,
) (*domain.TripDetails, error) {
	originAddress, destinationAddress, err := normalizeAddresses(originAddress, destinationAddress)
	if err != nil {
		return nil, err
	}

	tripCtx, cancel := uc.withTimeout(ctx)
	defer cancel()

	origin, destination, err := uc.geocodePair(tripCtx, originAddress, destinationAddress)
	if err != nil {
		return nil, err
	}

	route, err := uc.resolveRoute(tripCtx, origin.Coordinate, destination.Coordinate)
	if err != nil {
		return nil, err
	}

	distanceKm := route.DistanceKm()
	fare := uc.fares.EstimateFare(originAddress, destinationAddress, distanceKm, normalizeVehicle(vehicleType))

	if strings.TrimSpace(placesQuery) == "" {
		placesQuery = uc.settings.PlacesQuery
	}

	var (
		wg      sync.WaitGroup
		weather domain.WeatherReport
		news    domain.NewsFeed
		places  domain.NearbyPlaces
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		weather = uc.weather.CurrentWeather(tripCtx, destinationAddress)
	}()
	go func() {
		defer wg.Done()
		news = uc.news.SearchNews(tripCtx, destinationAddress)
	}()
	go func() {
		defer wg.Done()
		places = uc.places.NearbyPlaces(tripCtx, domain.PlacesQuery{
			Center:  destination.Coordinate,
			Query:   placesQuery,
			RadiusM: uc.settings.PlacesRadius,
			Limit:   uc.settings.PlacesLimit,
		})
	}()
	wg.Wait()

	// истёкший TRIP_TIMEOUT на этапе обогащения оставляет маркеры unavailable,
	// результат отбрасывается только при отмене вызывающей стороной
	if err := ctx.Err(); err != nil {
		uc.logger.Warn("Trip computation cancelled, discarding partial result",
			zap.String("origin", originAddress),
			zap.String("destination", destinationAddress),
			zap.Error(err))
		return nil, err
	}

	uc.logUnavailable("weather", weather.Status, weather.Reason, destinationAddress)
	uc.logUnavailable("news", news.Status, news.Reason, destinationAddress)
	uc.logUnavailable("places", places.Status, places.Reason, destinationAddress)

	uc.logger.Info("Trip computed",
		zap.String("origin", originAddress),
		zap.String("destination", destinationAddress),
		zap.String("vehicle_type", string(fare.VehicleType)),
		zap.Float64("distance_km", distanceKm),
		zap.String("route_source", route.Source),
		zap.Float64("fare", fare.Amount))

	return &domain.TripDetails{
		Origin:                originAddress,
		Destination:           destinationAddress,
		OriginCoordinate:      origin.Coordinate,
		DestinationCoordinate: destination.Coordinate,
		Route:                 route,
		DistanceKm:            distanceKm,
		TravelTimeMinutes:     travelMinutes(route.TravelTimeSeconds),
		Fare:                  fare,
		Weather:               weather,
		News:                  news,
		NearbyPlaces:          places,
	}, nil
}

// ComputeFare - геокодирование, маршрут и тариф без обогащения
func (uc *TripAggregator) ComputeFare(
	ctx context.Context,
	originAddress, destinationAddress string,
	vehicleType domain.VehicleType,
) (*dto.FareEstimateResponse, error) {
	originAddress, destinationAddress, err := normalizeAddresses(originAddress, destinationAddress)
	if err != nil {
		return nil, err
	}

	ctx, cancel := uc.withTimeout(ctx)
	defer cancel()

	origin, destination, err := uc.geocodePair(ctx, originAddress, destinationAddress)
	if err != nil {
		return nil, err
	}

	route, err := uc.resolveRoute(ctx, origin.Coordinate, destination.Coordinate)
	if err != nil {
		return nil, err
	}

	fare := uc.fares.EstimateFare(originAddress, destinationAddress, route.DistanceKm(), normalizeVehicle(vehicleType))

	return &dto.FareEstimateResponse{
		Origin:            originAddress,
		Destination:       destinationAddress,
		DistanceKm:        route.DistanceKm(),
		TravelTimeMinutes: travelMinutes(route.TravelTimeSeconds),
		ExpectedFare:      fare.Amount,
		VehicleType:       fare.VehicleType,
		Currency:          fare.Currency,
		Provincial:        fare.Provincial,
		RouteSource:       route.Source,
	}, nil
}

// geocodePair геокодирует оба адреса параллельно; первая ошибка отменяет второй запрос
func (uc *TripAggregator) geocodePair(
	ctx context.Context,
	originAddress, destinationAddress string,
) (domain.GeocodeResult, domain.GeocodeResult, error) {
	var origin, destination domain.GeocodeResult

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		origin, err = uc.geocode(gctx, roleOrigin, originAddress)
		return err
	})
	g.Go(func() error {
		var err error
		destination, err = uc.geocode(gctx, roleDestination, destinationAddress)
		return err
	})

	if err := g.Wait(); err != nil {
		return domain.GeocodeResult{}, domain.GeocodeResult{}, err
	}
	return origin, destination, nil
}

func (uc *TripAggregator) geocode(ctx context.Context, role, address string) (domain.GeocodeResult, error) {
	result, err := uc.geocoder.Geocode(ctx, address)
	if err != nil {
		uc.logger.Error("Geocoding failed",
			zap.String("role", role),
			zap.String("address", address),
			zap.Error(err))
		return domain.GeocodeResult{}, &domain.GeocodeFailure{Role: role, Address: address, Err: err}
	}
	return result, nil
}

// resolveRoute: основной маршрутизатор, затем резервный. Повторов внутри одного источника нет.
func (uc *TripAggregator) resolveRoute(ctx context.Context, origin, destination domain.Coordinate) (domain.RouteSummary, error) {
	route, primaryErr := uc.router.CalculateRoute(ctx, origin, destination, domain.DefaultRouteOptions())
	if primaryErr == nil && !route.IsEmpty() {
		return route, nil
	}
	if primaryErr == nil {
		primaryErr = errEmptyRoute
	}

	// отмена запроса - не повод спрашивать резервный источник
	if ctx.Err() != nil {
		return domain.RouteSummary{}, &domain.RouteUnavailableError{Primary: primaryErr, Fallback: ctx.Err()}
	}

	uc.logger.Warn("Primary routing failed, falling back to geocoder directions",
		zap.String("origin", origin.String()),
		zap.String("destination", destination.String()),
		zap.Error(primaryErr))

	route, fallbackErr := uc.geocoder.GetDirections(ctx, origin, destination)
	if fallbackErr == nil && !route.IsEmpty() {
		return route, nil
	}
	if fallbackErr == nil {
		fallbackErr = errEmptyRoute
	}

	uc.logger.Error("No route source available",
		zap.String("origin", origin.String()),
		zap.String("destination", destination.String()),
		zap.NamedError("primary_error", primaryErr),
		zap.NamedError("fallback_error", fallbackErr))

	return domain.RouteSummary{}, &domain.RouteUnavailableError{Primary: primaryErr, Fallback: fallbackErr}
}

func (uc *TripAggregator) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if uc.settings.Timeout > 0 {
		return context.WithTimeout(ctx, uc.settings.Timeout)
	}
	return context.WithCancel(ctx)
}

func (uc *TripAggregator) logUnavailable(kind string, status domain.EnrichmentStatus, reason, destination string) {
	if status == domain.EnrichmentOK {
		return
	}
	uc.logger.Warn("Enrichment unavailable",
		zap.String("kind", kind),
		zap.String("destination", destination),
		zap.String("reason", reason))
}

func normalizeAddresses(origin, destination string) (string, string, error) {
	origin = strings.TrimSpace(origin)
	destination = strings.TrimSpace(destination)
	if origin == "" {
		return "", "", domain.NewInvalidInput("origin_address", "is required")
	}
	if destination == "" {
		return "", "", domain.NewInvalidInput("destination_address", "is required")
	}
	return origin, destination, nil
}

// normalizeVehicle maps free-form input onto a known type; unknown values pass through
// so the estimator applies its fallback.
func normalizeVehicle(v domain.VehicleType) domain.VehicleType {
	if strings.TrimSpace(string(v)) == "" {
		return domain.DefaultVehicleType
	}
	parsed, _ := domain.ParseVehicleType(string(v))
	return parsed
}

func travelMinutes(seconds float64) int {
	return int(math.Round(seconds / 60))
}
