package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Log         LogConfig
	Worker      WorkerConfig
	CORS        CORSConfig
	Trip        TripConfig
	Fare        FareConfig
	NewRelic    NewRelicConfig
	Kafka       KafkaConfig
	Geocoder    string
	LocationIQ  ProviderConfig
	GoogleMaps  ProviderConfig
	TomTom      ProviderConfig
	OpenWeather ProviderConfig
	GNews       ProviderConfig
	Foursquare  ProviderConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	MigrationsPath  string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled       bool
	ConsumerGroup string
	BatchSize     int
	Concurrency   int
}

type CORSConfig struct {
	AllowedOrigins  []string
	RefreshInterval time.Duration
}

// TripConfig - параметры агрегации поездки
type TripConfig struct {
	Timeout      time.Duration
	PlacesQuery  string
	PlacesRadius int
	PlacesLimit  int
}

// FareConfig - таблица тарифов (PHP)
type FareConfig struct {
	Currency               string
	JeepneyBaseFare        float64
	JeepneyPerKmRate       float64
	ProvincialMultiplier   float64
	MinProvincialFare      float64
	ProvincialBusPerKmRate float64
	LocalHubLegFare        float64
	LocalBusBaseFare       float64
	LocalBusPerKmRate      float64
	TaxiFlagDown           float64
	TaxiPerKmRate          float64
	PrivateCarFlagDown     float64
	PrivateCarPerKmRate    float64
	ProvincialDistanceKm   float64
	ProvincialKeywords     []string
	LocalHubKeywords       []string
}

type NewRelicConfig struct {
	AppName    string
	LicenseKey string
}

// Enabled reports whether a license key was provided.
func (c NewRelicConfig) Enabled() bool {
	return c.LicenseKey != ""
}

type KafkaConfig struct {
	Brokers   []string
	FareTopic string
}

// Enabled reports whether at least one broker was provided.
func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

// ProviderConfig - ключ и адрес внешнего API
type ProviderConfig struct {
	Name    string
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

const (
	GeocoderLocationIQ = "locationiq"
	GeocoderGoogle     = "google"
)

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// .env is optional; plain environment variables are enough
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return FromViper(viper.GetViper()), nil
}

// FromViper builds the config from an already populated viper instance.
func FromViper(v *viper.Viper) *Config {
	setFareDefaults(v)
	providerTimeout := time.Duration(v.GetInt("PROVIDER_TIMEOUT_SECONDS")) * time.Second

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("API_HOST"),
			Port: v.GetInt("API_PORT"),
			Env:  v.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
			MigrationsPath:  v.GetString("DB_MIGRATIONS_PATH"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:       v.GetBool("WORKER_ENABLED"),
			ConsumerGroup: v.GetString("WORKER_CONSUMER_GROUP"),
			BatchSize:     v.GetInt("WORKER_BATCH_SIZE"),
			Concurrency:   v.GetInt("WORKER_CONCURRENCY"),
		},
		CORS: CORSConfig{
			AllowedOrigins:  parseList(v.GetString("CORS_ALLOWED_ORIGINS")),
			RefreshInterval: time.Duration(v.GetInt("CORS_REFRESH_INTERVAL_SECONDS")) * time.Second,
		},
		Trip: TripConfig{
			Timeout:      time.Duration(v.GetInt("TRIP_TIMEOUT_SECONDS")) * time.Second,
			PlacesQuery:  v.GetString("TRIP_PLACES_QUERY"),
			PlacesRadius: v.GetInt("TRIP_PLACES_RADIUS"),
			PlacesLimit:  v.GetInt("TRIP_PLACES_LIMIT"),
		},
		Fare: FareConfig{
			Currency:               v.GetString("FARE_CURRENCY"),
			JeepneyBaseFare:        v.GetFloat64("FARE_JEEPNEY_BASE"),
			JeepneyPerKmRate:       v.GetFloat64("FARE_JEEPNEY_PER_KM"),
			ProvincialMultiplier:   v.GetFloat64("FARE_PROVINCIAL_MULTIPLIER"),
			MinProvincialFare:      v.GetFloat64("FARE_MIN_PROVINCIAL"),
			ProvincialBusPerKmRate: v.GetFloat64("FARE_PROVINCIAL_BUS_PER_KM"),
			LocalHubLegFare:        v.GetFloat64("FARE_LOCAL_HUB_LEG"),
			LocalBusBaseFare:       v.GetFloat64("FARE_LOCAL_BUS_BASE"),
			LocalBusPerKmRate:      v.GetFloat64("FARE_LOCAL_BUS_PER_KM"),
			TaxiFlagDown:           v.GetFloat64("FARE_TAXI_FLAG_DOWN"),
			TaxiPerKmRate:          v.GetFloat64("FARE_TAXI_PER_KM"),
			PrivateCarFlagDown:     v.GetFloat64("FARE_PRIVATE_CAR_FLAG_DOWN"),
			PrivateCarPerKmRate:    v.GetFloat64("FARE_PRIVATE_CAR_PER_KM"),
			ProvincialDistanceKm:   v.GetFloat64("FARE_PROVINCIAL_DISTANCE_KM"),
			ProvincialKeywords:     parseList(v.GetString("FARE_PROVINCIAL_KEYWORDS")),
			LocalHubKeywords:       parseList(v.GetString("FARE_LOCAL_HUB_KEYWORDS")),
		},
		NewRelic: NewRelicConfig{
			AppName:    v.GetString("NEW_RELIC_APP_NAME"),
			LicenseKey: v.GetString("NEW_RELIC_LICENSE_KEY"),
		},
		Kafka: KafkaConfig{
			Brokers:   parseList(v.GetString("KAFKA_BROKERS")),
			FareTopic: v.GetString("KAFKA_FARE_TOPIC"),
		},
		Geocoder: strings.ToLower(v.GetString("GEOCODER_PROVIDER")),
		LocationIQ: ProviderConfig{
			Name:    "locationiq",
			APIKey:  v.GetString("LOCATIONIQ_API_KEY"),
			BaseURL: v.GetString("LOCATIONIQ_BASE_URL"),
			Timeout: providerTimeout,
		},
		GoogleMaps: ProviderConfig{
			Name:    "googlemaps",
			APIKey:  v.GetString("GOOGLE_MAPS_API_KEY"),
			BaseURL: v.GetString("GOOGLE_MAPS_BASE_URL"),
			Timeout: providerTimeout,
		},
		TomTom: ProviderConfig{
			Name:    "tomtom",
			APIKey:  v.GetString("TOMTOM_API_KEY"),
			BaseURL: v.GetString("TOMTOM_BASE_URL"),
			Timeout: providerTimeout,
		},
		OpenWeather: ProviderConfig{
			Name:    "openweather",
			APIKey:  v.GetString("OPENWEATHER_API_KEY"),
			BaseURL: v.GetString("OPENWEATHER_API_URL"),
			Timeout: providerTimeout,
		},
		GNews: ProviderConfig{
			Name:    "gnews",
			APIKey:  v.GetString("GNEWS_API_KEY"),
			BaseURL: v.GetString("GNEWS_API_URL"),
			Timeout: providerTimeout,
		},
		Foursquare: ProviderConfig{
			Name:    "foursquare",
			APIKey:  v.GetString("FSQ_API_KEY"),
			BaseURL: v.GetString("FSQ_BASE_URL"),
			Timeout: providerTimeout,
		},
	}

	cfg.applyDefaults()
	return cfg
}

// Set default values if not provided
func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Env == "" {
		c.Server.Env = "development"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MigrationsPath == "" {
		c.Database.MigrationsPath = "migrations"
	}
	if c.Worker.ConsumerGroup == "" {
		c.Worker.ConsumerGroup = "trip-compute-workers"
	}
	if c.Worker.BatchSize == 0 {
		c.Worker.BatchSize = 10
	}
	if c.Worker.Concurrency == 0 {
		c.Worker.Concurrency = 4
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}
	if c.CORS.RefreshInterval == 0 {
		c.CORS.RefreshInterval = 5 * time.Minute
	}
	if c.Trip.Timeout == 0 {
		c.Trip.Timeout = 15 * time.Second
	}
	if c.Trip.PlacesQuery == "" {
		c.Trip.PlacesQuery = "restaurant"
	}
	if c.Trip.PlacesRadius == 0 {
		c.Trip.PlacesRadius = 1500
	}
	if c.Trip.PlacesLimit == 0 {
		c.Trip.PlacesLimit = 5
	}
	if c.NewRelic.AppName == "" {
		c.NewRelic.AppName = "trip-aggregator"
	}
	if c.Kafka.FareTopic == "" {
		c.Kafka.FareTopic = "fare.events"
	}
	if c.Geocoder == "" {
		c.Geocoder = GeocoderLocationIQ
	}

	c.Fare.applyDefaults()

	defaultProvider(&c.LocationIQ, "https://us1.locationiq.com/v1")
	defaultProvider(&c.GoogleMaps, "")
	defaultProvider(&c.TomTom, "https://api.tomtom.com")
	defaultProvider(&c.OpenWeather, "https://api.openweathermap.org/data/2.5/weather")
	defaultProvider(&c.GNews, "https://gnews.io/api/v4/search")
	defaultProvider(&c.Foursquare, "https://api.foursquare.com/v3/places")
}

// fareDefaults - таблица тарифов по умолчанию; ноль в env задаёт нулевой тариф
var fareDefaults = map[string]float64{
	"FARE_JEEPNEY_BASE":           15,
	"FARE_JEEPNEY_PER_KM":         1.5,
	"FARE_PROVINCIAL_MULTIPLIER":  1.5,
	"FARE_MIN_PROVINCIAL":         80,
	"FARE_PROVINCIAL_BUS_PER_KM":  3,
	"FARE_LOCAL_HUB_LEG":          15,
	"FARE_LOCAL_BUS_BASE":         15,
	"FARE_LOCAL_BUS_PER_KM":       0.5,
	"FARE_TAXI_FLAG_DOWN":         40,
	"FARE_TAXI_PER_KM":            13.5,
	"FARE_PRIVATE_CAR_FLAG_DOWN":  40,
	"FARE_PRIVATE_CAR_PER_KM":     13.5,
	"FARE_PROVINCIAL_DISTANCE_KM": 30,
}

func setFareDefaults(v *viper.Viper) {
	for key, value := range fareDefaults {
		v.SetDefault(key, value)
	}
}

func (f *FareConfig) applyDefaults() {
	if f.Currency == "" {
		f.Currency = "PHP"
	}
	if len(f.ProvincialKeywords) == 0 {
		f.ProvincialKeywords = []string{"balingasag", "gingoog", "claveria"}
	}
	if len(f.LocalHubKeywords) == 0 {
		f.LocalHubKeywords = []string{"cagayan de oro", "cdo", "divisoria", "carmen", "agora", "lapasan"}
	}
}

func defaultProvider(p *ProviderConfig, baseURL string) {
	if p.BaseURL == "" {
		p.BaseURL = baseURL
	}
	p.BaseURL = strings.TrimRight(p.BaseURL, "/")
	if p.Timeout == 0 {
		p.Timeout = 5 * time.Second
	}
}

// Validate проверяет ключи провайдеров, без которых клиенты не могут быть созданы.
// Отсутствие ключа - фатальная ошибка старта, а не ошибка запроса.
func (c *Config) Validate() error {
	var missing []string

	switch c.Geocoder {
	case GeocoderLocationIQ:
		if c.LocationIQ.APIKey == "" {
			missing = append(missing, "LOCATIONIQ_API_KEY")
		}
	case GeocoderGoogle:
		if c.GoogleMaps.APIKey == "" {
			missing = append(missing, "GOOGLE_MAPS_API_KEY")
		}
	default:
		return fmt.Errorf("unknown GEOCODER_PROVIDER %q", c.Geocoder)
	}

	required := map[string]string{
		"TOMTOM_API_KEY":      c.TomTom.APIKey,
		"OPENWEATHER_API_KEY": c.OpenWeather.APIKey,
		"GNEWS_API_KEY":       c.GNews.APIKey,
		"FSQ_API_KEY":         c.Foursquare.APIKey,
	}
	for _, key := range []string{"TOMTOM_API_KEY", "OPENWEATHER_API_KEY", "GNEWS_API_KEY", "FSQ_API_KEY"} {
		if required[key] == "" {
			missing = append(missing, key)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required provider configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

func parseList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

// GetDatabaseURL returns the URL form golang-migrate expects.
func (c *Config) GetDatabaseURL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
