package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ENV", "prod") // skip .env loading
	t.Setenv("SERVER_PORT", "")
	t.Setenv("BASE_URL", "")
	t.Setenv("DEFAULT_SHIPPING_CHARGE", "")

	cfg := LoadConfig()

	assert.Equal(t, ":8080", cfg.ServerPort)
	assert.Equal(t, 50.0, cfg.DefaultShippingCharge)
	assert.Equal(t, "587", cfg.SMTPPort)

	// a wildcard default origin would make the CORS middleware panic at boot
	assert.Equal(t, "http://localhost:3000", cfg.BaseURL)
	assert.NotEqual(t, "*", cfg.BaseURL)
}

func TestLoadConfigRejectsBadShippingCharge(t *testing.T) {
	t.Setenv("ENV", "prod")
	t.Setenv("DEFAULT_SHIPPING_CHARGE", "banana")

	cfg := LoadConfig()
	assert.Equal(t, 50.0, cfg.DefaultShippingCharge)

	t.Setenv("DEFAULT_SHIPPING_CHARGE", "-3")
	cfg = LoadConfig()
	assert.Equal(t, 50.0, cfg.DefaultShippingCharge)
}
