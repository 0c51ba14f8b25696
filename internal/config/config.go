package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Progress  ProgressConfig  `mapstructure:"progress"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Ads       AdsConfig       `mapstructure:"ads"`
	Playback  PlaybackConfig  `mapstructure:"playback"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`

	// 运行时字段，不来自配置文件
	ConfigFile string `mapstructure:"-"`
}

type ServerConfig struct {
	Port string
	Mode string
}

type DatabaseConfig struct {
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	Charset   string
	ParseTime bool
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	ExpireTime time.Duration `mapstructure:"expire_hours"`
}

// ProgressConfig selects the substrate the progress document is persisted in.
type ProgressConfig struct {
	Driver     string        `mapstructure:"driver"` // memory, gorm, redis
	StorageKey string        `mapstructure:"storage_key"`
	RedisTTL   time.Duration `mapstructure:"redis_ttl"`
}

type CatalogConfig struct {
	Source         string `mapstructure:"source"` // local, minio
	LocalPath      string `mapstructure:"local_path"`
	MinioEndpoint  string `mapstructure:"minio_endpoint"`
	MinioAccessID  string `mapstructure:"minio_access_key"`
	MinioSecret    string `mapstructure:"minio_secret_key"`
	MinioBucket    string `mapstructure:"minio_bucket"`
	MinioPrefix    string `mapstructure:"minio_prefix"`
	MinioUseSSL    bool   `mapstructure:"minio_use_ssl"`
	ProbeDurations bool   `mapstructure:"probe_durations"`
}

type AdsConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	LoadTimeout time.Duration `mapstructure:"load_timeout"`
	SkipDelay   int           `mapstructure:"skip_delay"`
}

type PlaybackConfig struct {
	SessionIdleTimeout time.Duration `mapstructure:"session_idle_timeout"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")

	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.charset", "utf8mb4")
	v.SetDefault("database.parsetime", true)

	v.SetDefault("redis.host", "127.0.0.1")
	v.SetDefault("redis.port", 6379)

	v.SetDefault("jwt.expire_hours", 72)

	v.SetDefault("progress.driver", "memory")
	v.SetDefault("progress.storage_key", "course_progress")
	v.SetDefault("progress.redis_ttl", 0)

	v.SetDefault("catalog.source", "local")
	v.SetDefault("catalog.local_path", "data")

	v.SetDefault("ads.enabled", true)
	v.SetDefault("ads.load_timeout", 10*time.Second)
	v.SetDefault("ads.skip_delay", 5)

	v.SetDefault("playback.session_idle_timeout", 2*time.Hour)

	v.SetDefault("rate_limit.max_requests", 6000)
	v.SetDefault("rate_limit.window_minutes", 1)
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("CERT")
	v.AutomaticEnv()

	setDefaults(v)

	// Database
	v.BindEnv("database.host", "DATABASE_HOST")
	v.BindEnv("database.port", "DATABASE_PORT")
	v.BindEnv("database.user", "DATABASE_USER")
	v.BindEnv("database.password", "DATABASE_PASSWORD")
	v.BindEnv("database.dbname", "DATABASE_NAME")

	// Redis
	v.BindEnv("redis.host", "REDIS_HOST")
	v.BindEnv("redis.port", "REDIS_PORT")
	v.BindEnv("redis.password", "REDIS_PASSWORD")

	// JWT
	v.BindEnv("jwt.secret", "JWT_SECRET")

	// Server
	v.BindEnv("server.mode", "SERVER_MODE")
	v.BindEnv("server.port", "SERVER_PORT")

	// Progress
	v.BindEnv("progress.driver", "PROGRESS_DRIVER")

	// Catalog
	v.BindEnv("catalog.source", "CATALOG_SOURCE")
	v.BindEnv("catalog.local_path", "CATALOG_LOCAL_PATH")
	v.BindEnv("catalog.minio_endpoint", "MINIO_ENDPOINT")
	v.BindEnv("catalog.minio_access_key", "MINIO_ACCESS_KEY")
	v.BindEnv("catalog.minio_secret_key", "MINIO_SECRET_KEY")
	v.BindEnv("catalog.minio_bucket", "MINIO_BUCKET")

	// Tracing
	v.BindEnv("tracing.enabled", "TRACING_ENABLED")
	v.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.ConfigFile = v.ConfigFileUsed()

	cfg.JWT.ExpireTime = cfg.JWT.ExpireTime * time.Hour

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Catalog.Source == "local" {
		if _, err := os.Stat(cfg.Catalog.LocalPath); os.IsNotExist(err) {
			os.MkdirAll(filepath.Join(cfg.Catalog.LocalPath, "courses"), 0755)
		}
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("unknown server mode %q", c.Server.Mode)
	}

	switch c.Progress.Driver {
	case "memory", "gorm", "redis":
	default:
		return fmt.Errorf("unknown progress driver %q", c.Progress.Driver)
	}

	switch c.Catalog.Source {
	case "local", "minio":
	default:
		return fmt.Errorf("unknown catalog source %q", c.Catalog.Source)
	}

	if c.Progress.StorageKey == "" {
		return errors.New("progress storage key must not be empty")
	}

	// 生产环境校验 JWT Secret 强度
	if c.Server.Mode == "release" && len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT secret is too short (%d chars), must be at least 32 characters in release mode", len(c.JWT.Secret))
	}

	return nil
}
