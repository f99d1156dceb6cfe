package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Datastore backends.
const (
	DatastoreFirestore = "firestore"
	DatastoreMongo     = "mongo"
	DatastoreMemory    = "memory"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Backend selection and credentials.
	Datastore               string `mapstructure:"DATASTORE"`
	FirebaseProjectID       string `mapstructure:"FIREBASE_PROJECT_ID"`
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
	DatabaseURL             string `mapstructure:"DATABASE_URL"`
	DatabaseName            string `mapstructure:"DATABASE_NAME"`

	// Dashboard read model.
	BookingsCollection string        `mapstructure:"BOOKINGS_COLLECTION"`
	ProductsCollection string        `mapstructure:"PRODUCTS_COLLECTION"`
	PageSize           int           `mapstructure:"PAGE_SIZE"`
	StatsCacheCapacity int           `mapstructure:"STATS_CACHE_CAPACITY"`
	StatsTTL           time.Duration `mapstructure:"STATS_TTL"`
	Timezone           string        `mapstructure:"TIMEZONE"`

	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`
}

// Load reads config.yaml from . or ./config when present, then environment
// variables, over the defaults below.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	v.SetDefault("DATASTORE", DatastoreFirestore)
	v.SetDefault("FIREBASE_PROJECT_ID", "")
	v.SetDefault("FIREBASE_CREDENTIALS_FILE", "")
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "rmadmin")
	v.SetDefault("BOOKINGS_COLLECTION", "reservas")
	v.SetDefault("PRODUCTS_COLLECTION", "productos")
	v.SetDefault("PAGE_SIZE", 20)
	v.SetDefault("STATS_CACHE_CAPACITY", 10)
	v.SetDefault("STATS_TTL", "5m")
	v.SetDefault("TIMEZONE", "Local")
	v.SetDefault("ALLOWED_ORIGINS", []string{"*"})

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Datastore = strings.ToLower(strings.TrimSpace(cfg.Datastore))
	return &cfg, cfg.Validate()
}

// Validate rejects settings the dashboard cannot start with.
func (c *Config) Validate() error {
	switch c.Datastore {
	case DatastoreFirestore, DatastoreMongo, DatastoreMemory:
	default:
		return fmt.Errorf("unknown DATASTORE %q", c.Datastore)
	}
	if c.StatsCacheCapacity <= 0 {
		return fmt.Errorf("STATS_CACHE_CAPACITY must be positive, got %d", c.StatsCacheCapacity)
	}
	if c.PageSize < 0 {
		return fmt.Errorf("PAGE_SIZE must not be negative, got %d", c.PageSize)
	}
	if c.MaxRequestsPerMin <= 0 {
		return fmt.Errorf("MAX_REQUESTS_PER_MIN must be positive, got %d", c.MaxRequestsPerMin)
	}
	if c.BookingsCollection == "" || c.ProductsCollection == "" {
		return errors.New("collection names must not be empty")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves TIMEZONE. "Local" and "" mean the process zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || strings.EqualFold(c.Timezone, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
