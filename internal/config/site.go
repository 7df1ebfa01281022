// internal/config/site.go
package config

import (
	"fmt"
	"strings"
)

type SiteConfig struct {
	Name          string
	Description   string
	BaseURL       string
	FeaturedLimit int
	RelatedLimit  int
}

type WhatsAppConfig struct {
	Phone          string
	PhoneFormatted string
}

// ProductURL builds the canonical storefront URL for a product id.
func (s *SiteConfig) ProductURL(id string) string {
	return fmt.Sprintf("%s/products/%s", strings.TrimRight(s.BaseURL, "/"), id)
}
