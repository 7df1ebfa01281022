// Package backend is the API for a bilingual (Arabic-first) storefront
// selling graphics tablets and study tools. It serves a fixed, validated
// in-memory catalog over a read-only HTTP surface; purchases happen over
// WhatsApp via pre-filled deep links, not a checkout flow.
//
// Layout:
//
//	cmd/server          entry point, graceful shutdown
//	internal/config     env-based configuration (godotenv)
//	internal/models     product schema and validation tags
//	internal/catalog    immutable seeded product store
//	internal/services   query/filter/sort engine over the store
//	internal/handlers   HTTP facade (soft-fail collection lookups,
//	                    hard-fail single-item lookups)
//	internal/router     gin wiring and middleware chain
//	internal/middleware logging, CORS, i18n, rate limit, metrics
//	internal/i18n       ar/en locale catalog
//	internal/storefront WhatsApp links and Arabic price formatting
package backend
