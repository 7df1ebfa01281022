// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Products
	KeyProductNotFound    = "product.not_found"
	KeyProductUnavailable = "product.unavailable"

	// Catalog
	KeyCategoryEmpty         = "category.empty"
	KeyBrandEmpty            = "brand.empty"
	KeyCategoryDisplayPrefix = "category.name." // + category id

	// Search
	KeySearchNoResults  = "search.no_results"
	KeySearchEmptyQuery = "search.empty_query"

	// Validation
	KeyValidationRequired = "validation.required"
	KeyValidationInvalid  = "validation.invalid"

	// Rate limiting
	KeyRateLimitExceeded = "rate_limit.exceeded"
)
