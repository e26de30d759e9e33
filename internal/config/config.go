package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultServerPort      = "8000"
	defaultSearchURL       = "https://world.openfoodfacts.org/cgi/search.pl"
	defaultProductURL      = "https://world.openfoodfacts.org/api/v2/product"
	defaultAppName         = "FoodRelay/1.0"
	defaultUpstreamTimeout = 30 * time.Second
)

type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	DB       DBConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// UpstreamConfig describes the food-product API the relays talk to.
type UpstreamConfig struct {
	SearchURL  string
	ProductURL string
	AppName    string
	Timeout    time.Duration
}

type DBConfig struct {
	Host    string
	Port    int
	User    string
	Pass    string
	Name    string
	SSLMode string
	DSN     string
}

// Enabled reports whether a database was configured. Without one the relay
// history is not recorded.
func (c DBConfig) Enabled() bool {
	return c.Host != ""
}

func LoadConfig() (*Config, error) {
	upstreamConfig := UpstreamConfig{
		SearchURL:  getEnv("OFF_SEARCH_URL", defaultSearchURL),
		ProductURL: getEnv("OFF_PRODUCT_URL", defaultProductURL),
		AppName:    getEnv("OFF_APP_NAME", defaultAppName),
		Timeout:    defaultUpstreamTimeout,
	}
	if raw := os.Getenv("UPSTREAM_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT: %w", err)
		}
		if timeout <= 0 {
			return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT: must be positive, got %s", raw)
		}
		upstreamConfig.Timeout = timeout
	}

	dBConfig := DBConfig{
		Host:    os.Getenv("DB_HOST"),
		User:    os.Getenv("DB_USER"),
		Pass:    os.Getenv("DB_PASS"),
		Name:    os.Getenv("DB_NAME"),
		SSLMode: getEnv("DB_SSLMODE", "disable"),
	}
	if dBConfig.Enabled() {
		dbPort, err := strconv.Atoi(os.Getenv("DB_PORT"))
		if err != nil {
			return nil, fmt.Errorf("invalid DB_PORT: %w", err)
		}
		dBConfig.Port = dbPort
		dBConfig.DSN = fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			dBConfig.Host, dBConfig.Port, dBConfig.User, dBConfig.Pass, dBConfig.Name, dBConfig.SSLMode,
		)
	}

	serverConfig := ServerConfig{
		Port:         getEnv("SERVER_PORT", defaultServerPort),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: upstreamConfig.Timeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Config{
		Server:   serverConfig,
		Upstream: upstreamConfig,
		DB:       dBConfig,
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
