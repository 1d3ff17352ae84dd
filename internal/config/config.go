package config

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"route-optimization-service/internal/domain"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort               = "8080"
	defaultRoutingTimeout     = 8 * time.Second
	defaultMaxAttempts        = 1
	defaultFuelPricePerGallon = 3.50
)

// Config is the process configuration read from the environment.
// Zero-valued per-class overrides mean "use the built-in table".
type Config struct {
	Port string

	RoutingAPIKey      string
	RoutingBaseURL     string
	RoutingTimeout     time.Duration
	RoutingMaxAttempts int

	FuelPricePerGallon float64
	SpeedMph           map[domain.VehicleClass]float64
	MPG                map[domain.VehicleClass]float64
}

// HasRoutingKey reports whether the external provider can be used.
func (c Config) HasRoutingKey() bool { return c.RoutingAPIKey != "" }

// LoadDotEnv loads .env into the process environment when the file exists.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}
}

// Get returns the trimmed value of key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Load reads every setting and reports all malformed values together.
func Load() (Config, error) {
	var errs []error

	cfg := Config{
		Port:           Get("PORT", defaultPort),
		RoutingAPIKey:  Get("ROUTING_API_KEY", ""),
		RoutingBaseURL: Get("ROUTING_BASE_URL", ""),
		SpeedMph:       map[domain.VehicleClass]float64{},
		MPG:            map[domain.VehicleClass]float64{},
	}

	var err error
	if cfg.RoutingTimeout, err = duration("ROUTING_TIMEOUT", defaultRoutingTimeout); err != nil {
		errs = append(errs, err)
	}
	if cfg.RoutingMaxAttempts, err = positiveInt("ROUTING_MAX_ATTEMPTS", defaultMaxAttempts); err != nil {
		errs = append(errs, err)
	}
	if cfg.FuelPricePerGallon, err = positiveFloat("FUEL_PRICE_PER_GALLON", defaultFuelPricePerGallon); err != nil {
		errs = append(errs, err)
	}

	for _, vc := range []domain.VehicleClass{domain.VehicleTruck, domain.VehicleVan, domain.VehicleCar} {
		suffix := strings.ToUpper(string(vc))

		speed, err := positiveFloat("SPEED_MPH_"+suffix, 0)
		if err != nil {
			errs = append(errs, err)
		} else if speed > 0 {
			cfg.SpeedMph[vc] = speed
		}

		mpg, err := positiveFloat("MPG_"+suffix, 0)
		if err != nil {
			errs = append(errs, err)
		} else if mpg > 0 {
			cfg.MPG[vc] = mpg
		}
	}

	if err := errors.Join(errs...); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

func duration(key string, fallback time.Duration) (time.Duration, error) {
	raw := Get(key, "")
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%s: invalid duration %q", key, raw)
	}
	return d, nil
}

func positiveInt(key string, fallback int) (int, error) {
	raw := Get(key, "")
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%s: must be a positive integer, got %q", key, raw)
	}
	return n, nil
}

func positiveFloat(key string, fallback float64) (float64, error) {
	raw := Get(key, "")
	if raw == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0, fmt.Errorf("%s: must be a positive number, got %q", key, raw)
	}
	return f, nil
}
