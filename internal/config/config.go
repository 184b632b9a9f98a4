// Package config contains utilities for loading configs.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
)

const (
	EnvProd = "PROD"
	EnvDev  = "DEV"
)

const defaultConfigPath = "/data/budgetbites.yaml"

type Server struct {
	Port uint16 `yaml:"port" validate:"required"`
	Host string `yaml:"host" validate:"omitempty,hostname_rfc1123|ip"`
}

type Storage struct {
	// Path of the SQLite file backing the local key-value store.
	Path string `yaml:"path" validate:"required"`
	// QuotaBytes caps a single persisted value; zero keeps the default.
	QuotaBytes int64 `yaml:"quota_bytes" validate:"gte=0"`
}

type ImageCache struct {
	MaxSizeBytes int64 `yaml:"max_size_bytes" validate:"gte=0"`
}

type Connectivity struct {
	ProbeURL        string `yaml:"probe_url" validate:"omitempty,url"`
	IntervalSeconds int    `yaml:"interval_seconds" validate:"gte=0"`
}

type Config struct {
	Env          string       `yaml:"env" validate:"omitempty,oneof=DEV PROD"`
	BaseURL      string       `yaml:"base_url" validate:"omitempty,url"`
	Server       Server       `yaml:"server"`
	Storage      Storage      `yaml:"storage"`
	ImageCache   ImageCache   `yaml:"image_cache"`
	Connectivity Connectivity `yaml:"connectivity"`
}

func loadWithDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func loadConfigFromEnv() (Config, error) {
	port, err := strconv.ParseUint(loadWithDefault("PORT", "8080"), 10, 16)
	if err != nil {
		return Config{}, fmt.Errorf("parsing PORT: %w", err)
	}

	quota, err := strconv.ParseInt(loadWithDefault("STORAGE_QUOTA_BYTES", "0"), 10, 64)
	if err != nil {
		return Config{}, fmt.Errorf("parsing STORAGE_QUOTA_BYTES: %w", err)
	}

	cacheSize, err := strconv.ParseInt(loadWithDefault("IMAGE_CACHE_MAX_SIZE_BYTES", "0"), 10, 64)
	if err != nil {
		return Config{}, fmt.Errorf("parsing IMAGE_CACHE_MAX_SIZE_BYTES: %w", err)
	}

	probeInterval, err := strconv.Atoi(loadWithDefault("CONNECTIVITY_INTERVAL_SECONDS", "0"))
	if err != nil {
		return Config{}, fmt.Errorf("parsing CONNECTIVITY_INTERVAL_SECONDS: %w", err)
	}

	return Config{
		Env:     loadWithDefault("ENV", EnvDev),
		BaseURL: loadWithDefault("BASE_URL", "http://localhost:8080"),
		Server: Server{
			Port: uint16(port),
			Host: loadWithDefault("HOST", "0.0.0.0"),
		},
		Storage: Storage{
			Path:       loadWithDefault("STORAGE_PATH", "/data/budgetbites.db"),
			QuotaBytes: quota,
		},
		ImageCache: ImageCache{
			MaxSizeBytes: cacheSize,
		},
		Connectivity: Connectivity{
			ProbeURL:        loadWithDefault("CONNECTIVITY_PROBE_URL", ""),
			IntervalSeconds: probeInterval,
		},
	}, nil
}

// LoadConfig loads the YAML config file when present, otherwise falls back
// to environment variables with defaults. The file path itself can be
// overridden with CONFIG_PATH.
func LoadConfig() (*Config, error) {
	path := loadWithDefault("CONFIG_PATH", defaultConfigPath)

	var conf Config
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		conf, err = loadConfigFromEnv()
		if err != nil {
			return nil, err
		}
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, &conf); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
		applyDefaults(&conf)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(conf); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &conf, nil
}

func applyDefaults(conf *Config) {
	if conf.Env == "" {
		conf.Env = EnvDev
	}
	if conf.BaseURL == "" {
		conf.BaseURL = "http://localhost:8080"
	}
	if conf.Server.Port == 0 {
		conf.Server.Port = 8080
	}
	if conf.Server.Host == "" {
		conf.Server.Host = "0.0.0.0"
	}
	if conf.Storage.Path == "" {
		conf.Storage.Path = "/data/budgetbites.db"
	}
}
