package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const DefaultPath = "config.yaml"

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

func (c HTTPClient) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

type Valet struct {
	BaseURL string `mapstructure:"base_url"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

type Average struct {
	DefaultWeeks int      `mapstructure:"default_weeks"`
	Pairs        []string `mapstructure:"pairs"`
}

type Scheduler struct {
	JobDurationSec int `mapstructure:"job_duration_sec"`
}

type Cache struct {
	MaxItems   int64 `mapstructure:"max_items"`
	TTLSeconds int   `mapstructure:"ttl_seconds"`
}

func (c Cache) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

type AppConfig struct {
	HTTPServer HTTPServer `mapstructure:"http_server"`
	HTTPClient HTTPClient `mapstructure:"http_client"`
	Valet      Valet      `mapstructure:"valet"`
	Logging    Logging    `mapstructure:"logging"`
	Average    Average    `mapstructure:"average"`
	Scheduler  Scheduler  `mapstructure:"scheduler"`
	Cache      Cache      `mapstructure:"cache"`
}

// Load reads an optional .env file and an optional yaml file at path, then applies
// defaults and environment overrides. Missing files are not an error.
func Load(path string) (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetDefault("http_server.port", "8080")
	v.SetDefault("http_client.timeout_seconds", 10)
	v.SetDefault("valet.base_url", "https://www.bankofcanada.ca")
	v.SetDefault("logging.level", "info")
	v.SetDefault("average.default_weeks", 10)
	v.SetDefault("average.pairs", []string{"CAD/AUD", "USD/CAD", "USD/EUR"})
	v.SetDefault("scheduler.job_duration_sec", 3600)
	v.SetDefault("cache.max_items", 1024)
	v.SetDefault("cache.ttl_seconds", 900)

	_ = v.BindEnv("http_server.port", "HTTP_PORT")
	_ = v.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")
	_ = v.BindEnv("valet.base_url", "VALET_BASE_URL")
	_ = v.BindEnv("logging.level", "LOG_LEVEL")
	_ = v.BindEnv("average.default_weeks", "AVERAGE_DEFAULT_WEEKS")
	_ = v.BindEnv("average.pairs", "AVERAGE_PAIRS")
	_ = v.BindEnv("scheduler.job_duration_sec", "SCHEDULER_JOB_DURATION_SEC")

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	return &cfg, nil
}
