package config

import (
	"errors"
	"os"
	"time"

	env "github.com/caarlos0/env/v7"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort         int    `env:"HTTP_PORT"          envDefault:"5000"`
	PostgresDSN      string `env:"POSTGRES_DSN"`
	PostgresMaxConns int32  `env:"POSTGRES_MAX_CONNS" envDefault:"4"`
	DatabaseName     string `env:"DATABASE_NAME"      envDefault:"GestionEau"`
	LogLevel         string `env:"LOG_LEVEL"          envDefault:"info"`

	Login LoginConfig

	// Optional security-event publishing; disabled when no brokers are set.
	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaTopic   string   `env:"KAFKA_SECURITY_TOPIC" envDefault:"gestion-eau.security"`

	// Optional TLS; the server listens in plain HTTP when unset (the API is an
	// internal tool usually fronted by the operator's reverse proxy).
	ServerCert string `env:"TLS_SERVER_CERT"`
	ServerKey  string `env:"TLS_SERVER_KEY"`
}

type LoginConfig struct {
	MaxAttempts     int           `env:"LOGIN_MAX_ATTEMPTS"     envDefault:"3"`
	BlockDuration   time.Duration `env:"LOGIN_BLOCK_DURATION"   envDefault:"15m"`
	CleanupInterval time.Duration `env:"LOGIN_CLEANUP_INTERVAL" envDefault:"5m"`
}

func New(envPath string) (Config, error) {
	var c Config

	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	err = env.Parse(&c)
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
