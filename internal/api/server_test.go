package api

import (
	"testing"

	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cors.New panics when AllowCredentials is combined with a wildcard origin,
// so the wildcard case must drop credentials to keep startup alive.
func TestCorsConfigWildcardOrigin(t *testing.T) {
	cfg := corsConfig("*")
	assert.False(t, cfg.AllowCredentials)
	assert.Equal(t, "*", cfg.AllowOrigins)

	require.NotPanics(t, func() { cors.New(cfg) })
}

func TestCorsConfigConcreteOrigin(t *testing.T) {
	cfg := corsConfig("http://localhost:3000")
	assert.True(t, cfg.AllowCredentials)
	assert.Equal(t, "http://localhost:3000", cfg.AllowOrigins)

	require.NotPanics(t, func() { cors.New(cfg) })
}
