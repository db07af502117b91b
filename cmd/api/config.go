package main

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/rescuegrid/highscore/src/infra/logging"
)

const envPrefix = "HIGHSCORE_"

type Config struct {
	HTTPAddress     string          `yaml:"http_address" env:"HTTP_ADDR"`
	ReadTimeout     time.Duration   `yaml:"read_timeout" env:"READ_TIMEOUT"`
	WriteTimeout    time.Duration   `yaml:"write_timeout" env:"WRITE_TIMEOUT"`
	IdleTimeout     time.Duration   `yaml:"idle_timeout" env:"IDLE_TIMEOUT"`
	ShutdownTimeout time.Duration   `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT"`
	Log             logging.Config  `yaml:"log" envPrefix:"LOG_"`
	Telemetry       TelemetryConfig `yaml:"telemetry" envPrefix:"OTEL_"`
}

type TelemetryConfig struct {
	ServiceName string `yaml:"service_name" env:"SERVICE_NAME"`
	Endpoint    string `yaml:"endpoint" env:"ENDPOINT"`
}

func defaultConfig() Config {
	return Config{
		HTTPAddress:     ":5000",
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    15 * time.Second,
		IdleTimeout:     60 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		Log:             logging.DefaultConfig(),
		Telemetry: TelemetryConfig{
			ServiceName: "highscore-api",
		},
	}
}

// loadConfig layers defaults, then the YAML file at path (if any), then
// HIGHSCORE_* variables from environ.
func loadConfig(path string, environ map[string]string) (Config, error) {
	cfg := defaultConfig()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{
		Prefix:      envPrefix,
		Environment: environ,
	}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
