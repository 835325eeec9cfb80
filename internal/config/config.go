package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath = ".env"

	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	// используется только в local, если JWT_SECRET не задан
	localSecret = "local-dev-secret"
)

type Config struct {
	Env    string
	DB     DB
	Server Server
	Logger Logger
	Auth   Auth
}

type DB struct {
	Driver      string
	DatabaseURI string
}

type Server struct {
	RunAddress      string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type Logger struct {
	LogLevel string
}

type Auth struct {
	Secret   string
	TokenTTL time.Duration
	// FallbackSecret - JWT_SECRET не задан, подставлен встроенный localSecret
	FallbackSecret bool
}

// Load читает .env (если есть) и переменные окружения.
func Load() (*Config, error) {
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("load %s: %w", envPath, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", EnvLocal)
	v.SetDefault("RUN_ADDRESS", ":8080")
	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("LOG_LEVEL", "")
	v.SetDefault("TOKEN_TTL", 24*time.Hour)
	v.SetDefault("READ_TIMEOUT", 10*time.Second)
	v.SetDefault("WRITE_TIMEOUT", 10*time.Second)
	v.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)

	cfg := &Config{
		Env: v.GetString("APP_ENV"),
		DB: DB{
			Driver:      v.GetString("DB_DRIVER"),
			DatabaseURI: v.GetString("DATABASE_URI"),
		},
		Server: Server{
			RunAddress:      v.GetString("RUN_ADDRESS"),
			ReadTimeout:     v.GetDuration("READ_TIMEOUT"),
			WriteTimeout:    v.GetDuration("WRITE_TIMEOUT"),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		},
		Logger: Logger{LogLevel: v.GetString("LOG_LEVEL")},
		Auth: Auth{
			Secret:   v.GetString("JWT_SECRET"),
			TokenTTL: v.GetDuration("TOKEN_TTL"),
		},
	}

	if cfg.Auth.Secret == "" && cfg.Env == EnvLocal {
		cfg.Auth.Secret = localSecret
		cfg.Auth.FallbackSecret = true
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// MustLoad как Load, но завершает процесс при ошибке.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return cfg
}

func (c *Config) validate() error {
	switch c.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return fmt.Errorf("unknown APP_ENV %q", c.Env)
	}

	switch c.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unknown DB_DRIVER %q", c.DB.Driver)
	}

	if c.DB.DatabaseURI == "" {
		return errors.New("DATABASE_URI is required")
	}
	if c.Auth.Secret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be positive")
	}

	return nil
}
