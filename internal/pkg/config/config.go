package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type (
	Tasks struct {
		OrderReconcileInterval    time.Duration
		CarrierStatusSyncInterval time.Duration
		StatisticsRefreshInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // таймаут запроса по умолчанию
		RateLimiterQPS   int           // скорость пополнения корзины, токенов в секунду
		RateLimiterBurst int           // ёмкость корзины
		PprofEnabled     bool
		PprofPort        string
		GRPCHealthPort   string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Carrier struct {
		BaseURL        string
		Token          string
		ClientSource   string
		RequestTimeout time.Duration
	}

	DeliveryEstimate struct {
		TransitDays  int
		DeliveryHour int
		Location     *time.Location
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Producer        Producer
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	Producer struct {
		Topic      string
		Idempotent bool
		RetryMax   int
	}

	KafkaHandlers struct {
		CarrierStatusChanged CarrierStatusChanged
	}

	CarrierStatusChanged struct {
		ProcessTimeout time.Duration
	}

	Log struct {
		Level string
	}

	Config struct {
		Tasks            Tasks
		Server           HTTPServer
		Database         Database
		Carrier          Carrier
		DeliveryEstimate DeliveryEstimate
		Kafka            Kafka
		Log              Log
	}
)

const (
	defaultTransitDays   = 3
	defaultDeliveryHour  = 18
	defaultLocation      = "Asia/Ho_Chi_Minh"
	defaultProducerRetry = 3
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	reconcileInterval, err := osGetEnvDuration("BACKGROUND_ORDER_RECONCILE_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	syncInterval, err := osGetEnvDuration("BACKGROUND_CARRIER_STATUS_SYNC_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	statisticsInterval, err := osGetEnvDuration("BACKGROUND_STATISTICS_REFRESH_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	producerIdempotent, err := osGetBool("KAFKA_PRODUCER_IDEMPOTENT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	producerRetryMax, err := osGetInt("KAFKA_PRODUCER_RETRY_MAX")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if producerRetryMax == 0 {
		producerRetryMax = defaultProducerRetry
	}

	carrierStatusTimeout, err := osGetEnvDuration("KAFKA_HANDLER_CARRIER_STATUS_CHANGED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	carrierTimeout, err := osGetEnvDuration("CARRIER_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	estimate, err := loadDeliveryEstimate()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			OrderReconcileInterval:    reconcileInterval,
			CarrierStatusSyncInterval: syncInterval,
			StatisticsRefreshInterval: statisticsInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
			GRPCHealthPort:   os.Getenv("GRPC_HEALTH_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		Carrier: Carrier{
			BaseURL:        os.Getenv("GHTK_BASE_URL"),
			Token:          os.Getenv("GHTK_TOKEN"),
			ClientSource:   os.Getenv("GHTK_CLIENT_SOURCE"),
			RequestTimeout: carrierTimeout,
		},
		DeliveryEstimate: estimate,
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Producer: Producer{
				Topic:      os.Getenv("KAFKA_PRODUCER_TOPIC"),
				Idempotent: producerIdempotent,
				RetryMax:   producerRetryMax,
			},
			Handlers: KafkaHandlers{
				CarrierStatusChanged: CarrierStatusChanged{
					ProcessTimeout: carrierStatusTimeout,
				},
			},
		},
		Log: Log{
			Level: os.Getenv("LOG_LEVEL"),
		},
	}, nil
}

// loadDeliveryEstimate параметры расчёта даты доставки, у всех есть значения по умолчанию.
func loadDeliveryEstimate() (DeliveryEstimate, error) {
	days, err := osGetInt("DELIVERY_ESTIMATE_TRANSIT_DAYS")
	if err != nil {
		return DeliveryEstimate{}, err
	}
	if days == 0 {
		days = defaultTransitDays
	}

	hour, err := osGetInt("DELIVERY_ESTIMATE_HOUR")
	if err != nil {
		return DeliveryEstimate{}, err
	}
	if hour == 0 {
		hour = defaultDeliveryHour
	}

	name := os.Getenv("DELIVERY_ESTIMATE_TIMEZONE")
	if name == "" {
		name = defaultLocation
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return DeliveryEstimate{}, fmt.Errorf("invalid timezone DELIVERY_ESTIMATE_TIMEZONE=%q: %w", name, err)
	}

	return DeliveryEstimate{
		TransitDays:  days,
		DeliveryHour: hour,
		Location:     loc,
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}
	if cfg.Server.GRPCHealthPort == "" {
		return errors.New("GRPC_HEALTH_PORT is required")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Tasks.OrderReconcileInterval == time.Duration(0) {
		return errors.New("BACKGROUND_ORDER_RECONCILE_INTERVAL is required")
	}
	if cfg.Tasks.CarrierStatusSyncInterval == time.Duration(0) {
		return errors.New("BACKGROUND_CARRIER_STATUS_SYNC_INTERVAL is required")
	}
	if cfg.Tasks.StatisticsRefreshInterval == time.Duration(0) {
		return errors.New("BACKGROUND_STATISTICS_REFRESH_INTERVAL is required")
	}

	if cfg.Carrier.BaseURL == "" {
		return errors.New("GHTK_BASE_URL is required")
	}
	if cfg.Carrier.Token == "" {
		return errors.New("GHTK_TOKEN is required")
	}
	if cfg.Carrier.RequestTimeout == time.Duration(0) {
		return errors.New("CARRIER_REQUEST_TIMEOUT is required")
	}

	if cfg.DeliveryEstimate.TransitDays < 0 {
		return errors.New("DELIVERY_ESTIMATE_TRANSIT_DAYS must not be negative")
	}
	if cfg.DeliveryEstimate.DeliveryHour < 0 || cfg.DeliveryEstimate.DeliveryHour > 23 {
		return errors.New("DELIVERY_ESTIMATE_HOUR must be within 0..23")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	if cfg.Kafka.Producer.Topic == "" {
		return errors.New("KAFKA_PRODUCER_TOPIC is required")
	}

	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if cfg.Kafka.Handlers.CarrierStatusChanged.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_CARRIER_STATUS_CHANGED_PROCESS_TIMEOUT is required")
	}

	return nil
}

// BrokerList делит KAFKA_BROKERS по запятым.
func (k Kafka) BrokerList() []string {
	return splitTrim(k.Brokers)
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
