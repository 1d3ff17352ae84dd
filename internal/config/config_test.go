package config

import (
	"route-optimization-service/internal/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"PORT", "ROUTING_API_KEY", "ROUTING_BASE_URL", "ROUTING_TIMEOUT", "ROUTING_MAX_ATTEMPTS",
	"FUEL_PRICE_PER_GALLON",
	"SPEED_MPH_TRUCK", "SPEED_MPH_VAN", "SPEED_MPH_CAR",
	"MPG_TRUCK", "MPG_VAN", "MPG_CAR",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.HasRoutingKey())
	assert.Empty(t, cfg.RoutingBaseURL)
	assert.Equal(t, 8*time.Second, cfg.RoutingTimeout)
	assert.Equal(t, 1, cfg.RoutingMaxAttempts)
	assert.Equal(t, 3.50, cfg.FuelPricePerGallon)
	assert.Empty(t, cfg.SpeedMph)
	assert.Empty(t, cfg.MPG)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("ROUTING_API_KEY", "  secret ")
	t.Setenv("ROUTING_BASE_URL", "http://localhost:9999")
	t.Setenv("ROUTING_TIMEOUT", "2500ms")
	t.Setenv("ROUTING_MAX_ATTEMPTS", "3")
	t.Setenv("FUEL_PRICE_PER_GALLON", "4.19")
	t.Setenv("SPEED_MPH_VAN", "52.5")
	t.Setenv("MPG_TRUCK", "7")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "secret", cfg.RoutingAPIKey)
	assert.True(t, cfg.HasRoutingKey())
	assert.Equal(t, "http://localhost:9999", cfg.RoutingBaseURL)
	assert.Equal(t, 2500*time.Millisecond, cfg.RoutingTimeout)
	assert.Equal(t, 3, cfg.RoutingMaxAttempts)
	assert.Equal(t, 4.19, cfg.FuelPricePerGallon)
	assert.Equal(t, map[domain.VehicleClass]float64{domain.VehicleVan: 52.5}, cfg.SpeedMph)
	assert.Equal(t, map[domain.VehicleClass]float64{domain.VehicleTruck: 7}, cfg.MPG)
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("ROUTING_TIMEOUT", "soon")
	t.Setenv("ROUTING_MAX_ATTEMPTS", "0")
	t.Setenv("FUEL_PRICE_PER_GALLON", "-1")
	t.Setenv("MPG_CAR", "lots")

	_, err := Load()
	require.Error(t, err)

	for _, key := range []string{"ROUTING_TIMEOUT", "ROUTING_MAX_ATTEMPTS", "FUEL_PRICE_PER_GALLON", "MPG_CAR"} {
		assert.Contains(t, err.Error(), key)
	}
}

func TestGet(t *testing.T) {
	t.Setenv("ROUTECTL_TEST_VALUE", "")
	assert.Equal(t, "fallback", Get("ROUTECTL_TEST_VALUE", "fallback"))

	t.Setenv("ROUTECTL_TEST_VALUE", "   ")
	assert.Equal(t, "fallback", Get("ROUTECTL_TEST_VALUE", "fallback"))

	t.Setenv("ROUTECTL_TEST_VALUE", "set")
	assert.Equal(t, "set", Get("ROUTECTL_TEST_VALUE", "fallback"))
}
