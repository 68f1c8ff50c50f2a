package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/spf13/viper"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
	Worker   WorkerConfig
	Matching MatchingConfig
	Store    StoreConfig
}

type ServerConfig struct {
	Host        string
	Port        int
	Env         string
	CORSOrigins string
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
	QueryTimeout    time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	SearchCacheTTL time.Duration
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled         bool
	ConsumerGroup   string
	ConsumerName    string
	BatchSize       int
	EmptyQueueSleep time.Duration
	MaxRetries      int
	// ClaimIdle - через сколько неподтверждённое сообщение забирается повторно, 0 - никогда
	ClaimIdle time.Duration
}

// MatchingConfig - параметры подбора кандидатов
type MatchingConfig struct {
	DefaultRadiusKm float64
	MaxResults      int
}

// StoreConfig выбирает источник кандидатов: postgres или memory
type StoreConfig struct {
	Driver string
}

// Load reads .env from the working directory plus the process environment.
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile reads configuration from path (dotenv format) and the environment.
// Environment variables win over the file; a missing file is not an error.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("API_HOST"),
			Port: v.GetInt("API_PORT"),
			Env:  v.GetString("API_ENV"),
			// список через запятую, "*" - любые origin без credentials
			CORSOrigins: v.GetString("API_CORS_ORIGINS"),
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
			QueryTimeout:    time.Duration(v.GetInt("DB_QUERY_TIMEOUT")) * time.Millisecond,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			SearchCacheTTL: time.Duration(v.GetInt("SEARCH_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:         v.GetBool("WORKER_ENABLED"),
			ConsumerGroup:   v.GetString("WORKER_CONSUMER_GROUP"),
			ConsumerName:    v.GetString("WORKER_CONSUMER_NAME"),
			BatchSize:       v.GetInt("WORKER_BATCH_SIZE"),
			EmptyQueueSleep: time.Duration(v.GetInt("WORKER_EMPTY_QUEUE_SLEEP")) * time.Millisecond,
			MaxRetries:      v.GetInt("WORKER_MAX_RETRIES"),
			ClaimIdle:       v.GetDuration("WORKER_CLAIM_IDLE"),
		},
		Matching: MatchingConfig{
			DefaultRadiusKm: v.GetFloat64("MATCH_DEFAULT_RADIUS_KM"),
			MaxResults:      v.GetInt("MATCH_MAX_RESULTS"),
		},
		Store: StoreConfig{
			Driver: v.GetString("STORE_DRIVER"),
		},
	}

	if cfg.Worker.ConsumerName == "" {
		hostname, _ := os.Hostname()
		cfg.Worker.ConsumerName = "matcher-" + hostname
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("API_CORS_ORIGINS", "*")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "donors")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 300)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", 60)
	v.SetDefault("DB_QUERY_TIMEOUT", 3000)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("SEARCH_CACHE_TTL", 60)
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("WORKER_ENABLED", true)
	v.SetDefault("WORKER_CONSUMER_GROUP", "blood-request-matchers")
	v.SetDefault("WORKER_BATCH_SIZE", 20)
	v.SetDefault("WORKER_EMPTY_QUEUE_SLEEP", 100)
	v.SetDefault("WORKER_MAX_RETRIES", 3)
	v.SetDefault("WORKER_CLAIM_IDLE", "1m")

	v.SetDefault("MATCH_DEFAULT_RADIUS_KM", 10.0)
	v.SetDefault("MATCH_MAX_RESULTS", 100)

	v.SetDefault("STORE_DRIVER", StoreDriverPostgres)
}

// Validate checks values that have no sensible fallback.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreDriverPostgres, StoreDriverMemory:
	default:
		return fmt.Errorf("invalid STORE_DRIVER %q: want %s or %s", c.Store.Driver, StoreDriverPostgres, StoreDriverMemory)
	}
	if c.Matching.DefaultRadiusKm <= 0 {
		return fmt.Errorf("invalid MATCH_DEFAULT_RADIUS_KM %v: must be positive", c.Matching.DefaultRadiusKm)
	}
	if c.Matching.MaxResults <= 0 {
		return fmt.Errorf("invalid MATCH_MAX_RESULTS %d: must be positive", c.Matching.MaxResults)
	}
	if c.Worker.BatchSize <= 0 {
		return fmt.Errorf("invalid WORKER_BATCH_SIZE %d: must be positive", c.Worker.BatchSize)
	}
	return nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return c.Database.DSN()
}

// DSN собирает строку подключения для pgx
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// IsDevelopment reports whether the service runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}
