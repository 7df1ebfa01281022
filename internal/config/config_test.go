// internal/config/config_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "ar", cfg.I18n.DefaultLocale)
	assert.Equal(t, "201227278084", cfg.WhatsApp.Phone)
	assert.Equal(t, 6, cfg.Site.FeaturedLimit)
	assert.Equal(t, 4, cfg.Site.RelatedLimit)
	assert.NotEmpty(t, cfg.CORS.AllowedOrigins)
}

func TestValidateRejectsBadPhone(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	cfg.WhatsApp.Phone = "+20 122 727"
	assert.Error(t, cfg.Validate())

	cfg.WhatsApp.Phone = ""
	assert.Error(t, cfg.Validate())

	cfg.WhatsApp.Phone = "201227278084"
	assert.NoError(t, cfg.Validate())
}

func TestProductURL(t *testing.T) {
	site := SiteConfig{BaseURL: "https://store.example.com/"}
	assert.Equal(t, "https://store.example.com/products/huion-hs611", site.ProductURL("huion-hs611"))

	site.BaseURL = "http://localhost:3000"
	assert.Equal(t, "http://localhost:3000/products/x", site.ProductURL("x"))
}
