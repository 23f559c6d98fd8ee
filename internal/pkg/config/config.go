package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, limits, etc.), standard settings
// -----------------------------------------------------------------------------

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	DB      DBConfig
	Redis   RedisConfig
	CORS    CORSConfig
	Log     LogConfig
	Payment PaymentConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// MemoryUsers seeds the user directory when Driver is "memory".
type StorageConfig struct {
	Driver      string  `envconfig:"STORAGE_DRIVER" default:"postgres"`
	MemoryUsers []int64 `envconfig:"STORAGE_MEMORY_USERS"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

// An empty Addr disables the user directory cache.
type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR"`
	Password string        `envconfig:"REDIS_PASSWORD"`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	UserTTL  time.Duration `envconfig:"REDIS_USER_TTL" default:"5m"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// PaymentConfig holds the creation policy. LimitWindowMode is "rolling" or "fixed".
type PaymentConfig struct {
	MinValue        decimal.Decimal `envconfig:"PAYMENT_MIN_VALUE" default:"1"`
	MaxValue        decimal.Decimal `envconfig:"PAYMENT_MAX_VALUE" default:"10000"`
	MaxPerWindow    int             `envconfig:"PAYMENT_MAX_PER_WINDOW" default:"5"`
	LimitWindow     time.Duration   `envconfig:"PAYMENT_LIMIT_WINDOW" default:"24h"`
	LimitWindowMode string          `envconfig:"PAYMENT_LIMIT_WINDOW_MODE" default:"rolling"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Storage.Driver {
	case StorageDriverPostgres:
		if c.DB.User == "" || c.DB.DBName == "" {
			return fmt.Errorf("DB_USER and DB_NAME are required when STORAGE_DRIVER=%s", StorageDriverPostgres)
		}
	case StorageDriverMemory:
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.Storage.Driver)
	}
	if !c.Payment.MinValue.IsPositive() {
		return fmt.Errorf("PAYMENT_MIN_VALUE must be positive, got %s", c.Payment.MinValue)
	}
	if c.Payment.MinValue.GreaterThan(c.Payment.MaxValue) {
		return fmt.Errorf("PAYMENT_MIN_VALUE %s exceeds PAYMENT_MAX_VALUE %s", c.Payment.MinValue, c.Payment.MaxValue)
	}
	if c.Payment.MaxPerWindow < 1 {
		return fmt.Errorf("PAYMENT_MAX_PER_WINDOW must be positive, got %d", c.Payment.MaxPerWindow)
	}
	switch c.Payment.LimitWindowMode {
	case "rolling", "fixed":
	default:
		return fmt.Errorf("unsupported PAYMENT_LIMIT_WINDOW_MODE %q", c.Payment.LimitWindowMode)
	}
	if c.Payment.LimitWindow <= 0 {
		return fmt.Errorf("PAYMENT_LIMIT_WINDOW must be positive, got %s", c.Payment.LimitWindow)
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Storage: StorageConfig{
			Driver: StorageDriverMemory,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Payment: PaymentConfig{
			MinValue:        decimal.NewFromInt(1),
			MaxValue:        decimal.NewFromInt(10000),
			MaxPerWindow:    5,
			LimitWindow:     24 * time.Hour,
			LimitWindowMode: "rolling",
		},
	}
}
