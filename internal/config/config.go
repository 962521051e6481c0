// Package config loads dashboard settings from the environment. Values are
// resolved once at startup in priority order:
//
//	OS environment (highest) -> .env file -> struct defaults (lowest)
//
// The result is validated before use and never modified afterwards.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// DefaultDataPath is where the upstream pipeline writes its output table,
// relative to the working directory.
const DefaultDataPath = "outputs/probabilitas_dan_prediksi_magnitudo_per_pulau.csv"

// Config holds all service settings.
type Config struct {
	DataPath        string        `envconfig:"DATA_PATH" default:"outputs/probabilitas_dan_prediksi_magnitudo_per_pulau.csv" validate:"required"`
	HTTPAddr        string        `envconfig:"HTTP_ADDR" default:":8080" validate:"required"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	LogFormat       string        `envconfig:"LOG_FORMAT" default:"json" validate:"oneof=json text"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s" validate:"gt=0"`

	// Map base layer. Any XYZ tile service works; only the URL template and
	// its attribution are needed.
	TileURL         string `envconfig:"TILE_URL" default:"https://{s}.basemaps.cartocdn.com/light_all/{z}/{x}/{y}{r}.png" validate:"required"`
	TileAttribution string `envconfig:"TILE_ATTRIBUTION" default:"&copy; OpenStreetMap contributors &copy; CARTO" validate:"required"`
	// TileSubdomains fills {s} in TILE_URL, one letter per host. Set it to
	// match the tile service; empty uses Leaflet's default "abc".
	TileSubdomains string `envconfig:"TILE_SUBDOMAINS" default:"abcd" validate:"omitempty,alphanum"`

	ChartCacheSize int    `envconfig:"CHART_CACHE_SIZE" default:"64" validate:"min=1,max=4096"`
	PageAuthor     string `envconfig:"PAGE_AUTHOR" default:"Dibuat oleh: Delastrada Dian Puspita - 2025"`
}

var validate = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report env var names rather than Go field names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("envconfig"); name != "" {
			return name
		}
		return f.Name
	})
	return v
}()

// Load reads configuration from a .env file (if present) and the process
// environment, applying defaults where unset.
func Load() (*Config, error) {
	// A missing .env is normal outside local development. Existing variables
	// are never overridden.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	if err := validate.Struct(&cfg); err != nil {
		return nil, describe(err)
	}
	return &cfg, nil
}

// describe flattens validator errors into one message naming each offending
// variable.
func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: invalid value %v (%s)", fe.Field(), fe.Value(), fe.ActualTag()))
	}
	return fmt.Errorf("config: %s", strings.Join(msgs, "; "))
}
