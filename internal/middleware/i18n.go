// internal/middleware/i18n.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// I18nMiddleware resolves the response language from Accept-Language.
// The storefront is Arabic-first, so anything that is not recognizably
// English falls back to "ar".
func I18nMiddleware(defaultLocale string) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := defaultLocale

		header := c.GetHeader("Accept-Language")
		if header != "" {
			// Handle cases like "ar-EG,ar;q=0.9,en;q=0.8"
			langs := strings.Split(header, ",")
			if len(langs) > 0 {
				first := strings.TrimSpace(strings.Split(langs[0], ";")[0])
				switch {
				case strings.HasPrefix(first, "ar"):
					lang = "ar"
				case strings.HasPrefix(first, "en"):
					lang = "en"
				}
			}
		}

		c.Set("lang", lang)
		c.Next()
	}
}
