package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/murkotick/menswear-storefront/internal/pkg/kvstore"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "Sastrería Norte", cfg.Brand)
	assert.Equal(t, kvstore.DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, int64(999), cfg.FreeShippingThreshold)
	assert.Equal(t, int64(149), cfg.ShippingFee)
	assert.False(t, cfg.PersistTheme)
	assert.Equal(t, kvstore.DefaultNamespace, cfg.Namespace)
	assert.Equal(t, []string{"http://localhost:8080"}, cfg.AllowedOrigins)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("STOREFRONT_BRAND", "Casa Gris")
	t.Setenv("STORAGE_DRIVER", "redis")
	t.Setenv("REDIS_URL", "cache:6379")
	t.Setenv("STOREFRONT_FREE_SHIPPING_THRESHOLD", "1500")
	t.Setenv("STOREFRONT_SHIPPING_FEE", "gratis")
	t.Setenv("STOREFRONT_PERSIST_THEME", "true")
	t.Setenv("STOREFRONT_TOAST_TTL", "500ms")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	cfg := Load()

	assert.Equal(t, "Casa Gris", cfg.Brand)
	assert.Equal(t, "redis", cfg.Storage.Driver)
	assert.Equal(t, "cache:6379", cfg.Storage.RedisAddr)
	assert.Equal(t, int64(1500), cfg.FreeShippingThreshold)
	assert.Equal(t, int64(149), cfg.ShippingFee, "unparsable values fall back")
	assert.True(t, cfg.PersistTheme)
	assert.Equal(t, 500*time.Millisecond, cfg.ToastTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}
