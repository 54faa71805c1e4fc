package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// HTTP
	Port    string `envconfig:"PORT" default:"8080"`
	GinMode string `envconfig:"GIN_MODE" default:"debug"`
	// Session tokens
	JWTSecret string        `envconfig:"JWT_SECRET"`
	TokenTTL  time.Duration `envconfig:"TOKEN_TTL" default:"24h"`
	// CORS, comma separated
	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000,http://127.0.0.1:5500"`
	// Store
	Timezone       string `envconfig:"CAFE_TIMEZONE" default:"Local"`
	SeedSampleData bool   `envconfig:"SEED_SAMPLE_DATA" default:"true"`
	// Order tracking simulator
	TrackingSimulation bool          `envconfig:"TRACKING_SIMULATION" default:"false"`
	TrackingInterval   time.Duration `envconfig:"TRACKING_INTERVAL" default:"5s"`
	// Rate limit per client IP
	RateLimitRPS   float64 `envconfig:"RATE_LIMIT_RPS" default:"20"`
	RateLimitBurst int     `envconfig:"RATE_LIMIT_BURST" default:"40"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads .env when present, then the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return c, err
	}
	if _, err := c.Location(); err != nil {
		return c, err
	}
	return c, nil
}

// Location resolves CAFE_TIMEZONE; "Local" and "" use the host zone.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" || strings.EqualFold(c.Timezone, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("CAFE_TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}
