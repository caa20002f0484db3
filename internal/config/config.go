package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server       ServerConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	RedisStreams RedisStreamsConfig
	Stats        StatsConfig
	Log          LogConfig
	Worker       WorkerConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	Env          string
	AllowOrigins string
	BatchLimit   int
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
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// RedisStreamsConfig - отдельный Redis для стримов; по умолчанию тот же, что и основной
type RedisStreamsConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type StatsConfig struct {
	Enabled     bool
	KeyPrefix   string
	TopIDsLimit int
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled       bool
	ConsumerGroup string
	BatchSize     int
	MaxRetries    int
}

// Load читает .env из текущей директории и переменные окружения
func Load() (*Config, error) {
	return LoadFrom(".env")
}

// LoadFrom читает конфигурацию из указанного .env файла.
// Отсутствие файла не ошибка: значения берутся из окружения и умолчаний.
func LoadFrom(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	setDefaults(v)

	cfg := &Config{
		Server: ServerConfig{
			Host:         v.GetString("API_HOST"),
			Port:         v.GetInt("API_PORT"),
			Env:          v.GetString("API_ENV"),
			AllowOrigins: v.GetString("API_ALLOW_ORIGINS"),
			BatchLimit:   v.GetInt("API_BATCH_LIMIT"),
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
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		RedisStreams: RedisStreamsConfig{
			Host:     v.GetString("REDIS_STREAMS_HOST"),
			Port:     v.GetInt("REDIS_STREAMS_PORT"),
			Password: v.GetString("REDIS_STREAMS_PASSWORD"),
			DB:       v.GetInt("REDIS_STREAMS_DB"),
		},
		Stats: StatsConfig{
			Enabled:     v.GetBool("STATS_ENABLED"),
			KeyPrefix:   v.GetString("STATS_KEY_PREFIX"),
			TopIDsLimit: v.GetInt("STATS_TOP_IDS_LIMIT"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:       v.GetBool("WORKER_ENABLED"),
			ConsumerGroup: v.GetString("WORKER_CONSUMER_GROUP"),
			BatchSize:     v.GetInt("WORKER_BATCH_SIZE"),
			MaxRetries:    v.GetInt("WORKER_MAX_RETRIES"),
		},
	}

	// Стримы по умолчанию живут в основном Redis
	if cfg.RedisStreams.Host == "" {
		cfg.RedisStreams.Host = cfg.Redis.Host
		cfg.RedisStreams.Port = cfg.Redis.Port
		cfg.RedisStreams.Password = cfg.Redis.Password
		cfg.RedisStreams.DB = cfg.Redis.DB
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("API_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:5173")
	v.SetDefault("API_BATCH_LIMIT", 100)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 300)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", 60)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)

	v.SetDefault("STATS_ENABLED", true)
	v.SetDefault("STATS_KEY_PREFIX", "geoid:stats")
	v.SetDefault("STATS_TOP_IDS_LIMIT", 10)

	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("WORKER_CONSUMER_GROUP", "geo-resolve-workers")
	v.SetDefault("WORKER_BATCH_SIZE", 20)
	v.SetDefault("WORKER_MAX_RETRIES", 3)
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

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
