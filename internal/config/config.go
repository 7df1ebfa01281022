// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Site        SiteConfig
	WhatsApp    WhatsAppConfig
	CORS        CORSConfig
	I18n        I18nConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type I18nConfig struct {
	DefaultLocale string
	LocalesPath   string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Site: SiteConfig{
			Name:        getEnv("SITE_NAME", "عرض الأجهزة الرسومية"),
			Description: getEnv("SITE_DESCRIPTION", "متجر متخصص في عرض أجهزة الرسم الجرافيكي والأدوات التعليمية"),
			BaseURL:     getEnv("SITE_BASE_URL", "http://localhost:3000"),
			FeaturedLimit: getEnvAsInt("SITE_FEATURED_LIMIT", 6),
			RelatedLimit:  getEnvAsInt("SITE_RELATED_LIMIT", 4),
		},
		WhatsApp: WhatsAppConfig{
			Phone:          getEnv("WHATSAPP_PHONE", "201227278084"),
			PhoneFormatted: getEnv("WHATSAPP_PHONE_FORMATTED", "+201227278084"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		},
		I18n: I18nConfig{
			DefaultLocale: getEnv("DEFAULT_LOCALE", "ar"),
			LocalesPath:   getEnv("LOCALES_PATH", "./internal/i18n/locales"),
		},
	}

	return config, config.Validate()
}

var phonePattern = regexp.MustCompile(`^[0-9]{8,15}$`)

func (c *Config) Validate() error {
	if !phonePattern.MatchString(c.WhatsApp.Phone) {
		return fmt.Errorf("WHATSAPP_PHONE must be digits in international format, got %q", c.WhatsApp.Phone)
	}

	if c.Site.FeaturedLimit <= 0 || c.Site.RelatedLimit <= 0 {
		return fmt.Errorf("featured and related limits must be positive")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return defaultValue
}
