package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is read from the environment. Connection targets and secrets are
// required; everything else has a default that works for local development.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	Tx     TxConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
	Redis  RedisConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	// Calendar dates are stored as DATE, so the session zone only affects timestamps.
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`

	// Zero keeps the pgxpool default.
	MaxConns        int32         `envconfig:"DB_MAX_CONNS" default:"20"`
	MinConns        int32         `envconfig:"DB_MIN_CONNS" default:"2"`
	MaxConnLifetime time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"1h"`
}

// TxConfig controls how write transactions aborted by serialization
// failures or deadlocks are replayed.
type TxConfig struct {
	MaxRetries     int           `envconfig:"TX_MAX_RETRIES" default:"3"`
	RetryBaseDelay time.Duration `envconfig:"TX_RETRY_BASE_DELAY" default:"100ms"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	Format         string `envconfig:"LOG_FORMAT" default:"json"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02T15:04:05.000Z07:00"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"` // seconds east of UTC
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

// RedisConfig backs the calendar cache. An empty Addr disables caching.
type RedisConfig struct {
	Addr        string        `envconfig:"REDIS_ADDR" default:""`
	Password    string        `envconfig:"REDIS_PASSWORD" default:""`
	DB          int           `envconfig:"REDIS_DB" default:"0"`
	CalendarTTL time.Duration `envconfig:"CALENDAR_CACHE_TTL" default:"10m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Tx.MaxRetries < 0 {
		return Config{}, fmt.Errorf("TX_MAX_RETRIES must not be negative, got %d", cfg.Tx.MaxRetries)
	}
	if cfg.Redis.Enabled() && cfg.Redis.CalendarTTL <= 0 {
		return Config{}, fmt.Errorf("CALENDAR_CACHE_TTL must be positive when REDIS_ADDR is set")
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
		Tx: TxConfig{
			MaxRetries:     3,
			RetryBaseDelay: 10 * time.Millisecond,
		},
		Log: LogConfig{
			Level:      "error",
			Format:     "text",
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02T15:04:05.000Z07:00",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
		},
		Redis: RedisConfig{
			CalendarTTL: time.Minute,
		},
	}
}
