package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"ordermanager/internal/app/dsn"
)

type Config struct {
	ServiceHost string
	ServicePort int
	Log         LogConfig
	CORS        CORSConfig
	JWT         JWTConfig   `mapstructure:"-"`
	Redis       RedisConfig `mapstructure:"-"`
	MinIO       MinIOConfig `mapstructure:"-"`
	DSN         string      `mapstructure:"-"`
}

type LogConfig struct {
	Level  string
	Format string // text или json
}

type CORSConfig struct {
	AllowOrigins []string
}

type JWTConfig struct {
	Token         string
	ExpiresIn     time.Duration
	SigningMethod jwt.SigningMethod
}

// Validate не дает запустить сервер без секрета подписи токенов
func (c JWTConfig) Validate() error {
	if c.Token == "" {
		return fmt.Errorf("%s is empty, tokens cannot be signed", envJWTSecret)
	}
	return nil
}

type RedisConfig struct {
	Host        string
	Password    string
	Port        int
	User        string
	DialTimeout time.Duration
	ReadTimeout time.Duration
}

// Enabled сообщает, задан ли Redis в окружении
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Enabled сообщает, задано ли хранилище изображений
func (c MinIOConfig) Enabled() bool {
	return c.Endpoint != ""
}

const (
	envConfigName   = "CONFIG_NAME"
	envJWTSecret    = "JWT_SECRET"
	envJWTExpiresIn = "JWT_EXPIRES_IN"
	envRedisHost    = "REDIS_HOST"
	envRedisPort    = "REDIS_PORT"
	envRedisUser    = "REDIS_USER"
	envRedisPass    = "REDIS_PASSWORD"
	envMinIOHost    = "MINIO_ENDPOINT"
	envMinIOAccess  = "MINIO_ACCESS_KEY"
	envMinIOSecret  = "MINIO_SECRET_KEY"
	envMinIOBucket  = "MINIO_BUCKET"
	envMinIOSSL     = "MINIO_USE_SSL"

	defaultJWTExpiresIn = 24 * time.Hour
	defaultMinIOBucket  = "services"
)

// NewConfig читает config/config.toml (или ./config.toml) и секреты из окружения
func NewConfig() (*Config, error) {
	return NewConfigFrom("config", ".")
}

// NewConfigFrom ищет файл конфигурации в указанных каталогах
func NewConfigFrom(paths ...string) (*Config, error) {
	var err error

	configName := "config"
	_ = godotenv.Load()
	if os.Getenv(envConfigName) != "" {
		configName = os.Getenv(envConfigName)
	}

	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("toml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	v.SetDefault("ServiceHost", "0.0.0.0")
	v.SetDefault("ServicePort", 8080)
	v.SetDefault("Log.Level", "info")
	v.SetDefault("Log.Format", "text")
	v.SetDefault("CORS.AllowOrigins", []string{"*"})

	err = v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		log.Warnf("config file %q not found, using defaults", configName)
	}

	cfg := &Config{}
	err = v.Unmarshal(cfg)
	if err != nil {
		return nil, err
	}

	// JWT из окружения
	cfg.JWT = JWTConfig{
		Token:         os.Getenv(envJWTSecret),
		ExpiresIn:     defaultJWTExpiresIn,
		SigningMethod: jwt.SigningMethodHS256,
	}
	if raw := os.Getenv(envJWTExpiresIn); raw != "" {
		cfg.JWT.ExpiresIn, err = time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("jwt expiration must be a duration: %w", err)
		}
	}

	// Redis из окружения
	cfg.Redis.Host = os.Getenv(envRedisHost)
	cfg.Redis.Port = 6379
	if raw := os.Getenv(envRedisPort); raw != "" {
		cfg.Redis.Port, err = strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("redis port must be int value: %w", err)
		}
	}
	cfg.Redis.Password = os.Getenv(envRedisPass)
	cfg.Redis.User = os.Getenv(envRedisUser)
	cfg.Redis.DialTimeout = 10 * time.Second
	cfg.Redis.ReadTimeout = 10 * time.Second

	// MinIO из окружения
	cfg.MinIO = MinIOConfig{
		Endpoint:  os.Getenv(envMinIOHost),
		AccessKey: os.Getenv(envMinIOAccess),
		SecretKey: os.Getenv(envMinIOSecret),
		Bucket:    os.Getenv(envMinIOBucket),
	}
	if cfg.MinIO.Bucket == "" {
		cfg.MinIO.Bucket = defaultMinIOBucket
	}
	if raw := os.Getenv(envMinIOSSL); raw != "" {
		cfg.MinIO.UseSSL, err = strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("minio ssl flag must be bool value: %w", err)
		}
	}

	cfg.DSN = dsn.FromEnv()

	log.Info("config parsed")

	return cfg, nil
}

// SetupLogging настраивает глобальный logrus
func SetupLogging(c LogConfig) error {
	level, err := log.ParseLevel(c.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Level, err)
	}
	log.SetLevel(level)

	switch c.Format {
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	case "", "text":
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("unknown log format %q", c.Format)
	}
	return nil
}
