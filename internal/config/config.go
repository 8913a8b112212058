package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/dharmasatrya/flightfinder/internal/providers"
)

// Config holds all configuration for the application
type Config struct {
	Port string

	AmadeusAPIKey    string
	AmadeusAPISecret string
	AmadeusAuthURL   string
	AmadeusFlightURL string
	UpstreamTimeout  time.Duration

	CacheEnabled  bool
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisTTL      time.Duration

	AirportsSource string

	LogLevel  string
	LogFormat string
}

// Load reads configuration from an optional .env file and the environment.
// Missing API credentials are not fatal; searches fail with an
// authentication error until they are set.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		AmadeusAPIKey:    os.Getenv("AMADEUS_API_KEY"),
		AmadeusAPISecret: os.Getenv("AMADEUS_API_SECRET"),
		AmadeusAuthURL:   getEnv("AMADEUS_AUTH_URL", providers.DefaultAmadeusAuthURL),
		AmadeusFlightURL: getEnv("AMADEUS_FLIGHT_URL", providers.DefaultAmadeusFlightURL),
		UpstreamTimeout:  getEnvDuration("UPSTREAM_TIMEOUT", 30*time.Second),
		CacheEnabled:     getEnvBool("CACHE_ENABLED", false),
		RedisHost:        getEnv("REDIS_HOST", "localhost"),
		RedisPort:        getEnv("REDIS_PORT", "6379"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		RedisTTL:         getEnvDuration("REDIS_TTL", 5*time.Minute),
		AirportsSource:   os.Getenv("AIRPORTS_SOURCE"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "text"),
	}

	return cfg
}

// HasCredentials reports whether both Amadeus secrets are configured.
func (c *Config) HasCredentials() bool {
	return c.AmadeusAPIKey != "" && c.AmadeusAPISecret != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := strings.ToLower(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		logrus.WithField("key", key).Warnf("Invalid duration %q, using %v", value, defaultValue)
		return defaultValue
	}
	return duration
}
