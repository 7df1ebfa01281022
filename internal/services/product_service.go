// internal/services/product_service.go
package services

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/rasmstore/backend/internal/catalog"
	"github.com/rasmstore/backend/internal/models"
)

// ErrEmptySearchQuery marks malformed search input, as opposed to a
// query that simply matches nothing.
var ErrEmptySearchQuery = errors.New("search query must not be empty")

// ErrUnknownSortKey marks an unsupported listing order.
var ErrUnknownSortKey = errors.New("unknown sort key")

// NotFoundError is the distinct failure for single-item lookups. The
// handler layer turns it into a 404; collection lookups never produce
// it, they return empty results instead.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Product with ID %s not found", e.ID)
}

// ProductStats is the aggregate view served on the stats endpoint.
type ProductStats struct {
	TotalProducts int        `json:"totalProducts"`
	InStock       int        `json:"inStock"`
	Brands        []string   `json:"brands"`
	Categories    []string   `json:"categories"`
	PriceRange    PriceRange `json:"priceRange"`
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	Avg float64 `json:"avg"`
}

// ProductService answers every catalog query as a pure derivation over
// the store snapshot. It holds no state of its own and is safe for
// concurrent use.
type ProductService struct {
	store *catalog.Store
}

func NewProductService(store *catalog.Store) *ProductService {
	return &ProductService{store: store}
}

// GetAll returns the whole catalog in insertion order.
func (s *ProductService) GetAll() []models.Product {
	return s.store.All()
}

// GetByID returns the product with the given id, or a *NotFoundError.
func (s *ProductService) GetByID(id string) (models.Product, error) {
	product, ok := s.store.ByID(id)
	if !ok {
		return models.Product{}, &NotFoundError{ID: id}
	}
	return product, nil
}

// ByCategory returns all products in the category, in store order. No
// matches is an empty slice, not an error.
func (s *ProductService) ByCategory(category string) []models.Product {
	var out []models.Product
	for _, p := range s.store.All() {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// ByBrand returns all products from the brand, in store order.
func (s *ProductService) ByBrand(brand string) []models.Product {
	var out []models.Product
	for _, p := range s.store.All() {
		if p.Brand == brand {
			out = append(out, p)
		}
	}
	return out
}

// ByPriceRange returns products with min ≤ price ≤ max. A nil bound is
// unbounded on that side; an inverted range yields an empty result.
func (s *ProductService) ByPriceRange(min, max *float64) []models.Product {
	var out []models.Product
	for _, p := range s.store.All() {
		if min != nil && p.Price < *min {
			continue
		}
		if max != nil && p.Price > *max {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Search matches the query case-insensitively as a substring of name,
// description or brand. An empty query is an input error.
func (s *ProductService) Search(query string) ([]models.Product, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptySearchQuery
	}

	q := strings.ToLower(query)
	var out []models.Product
	for _, p := range s.store.All() {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Brand), q) {
			out = append(out, p)
		}
	}
	return out, nil
}

// Filter ANDs the set criteria together; unset criteria constrain
// nothing. The result keeps store order.
func (s *ProductService) Filter(f models.ProductFilter) []models.Product {
	var out []models.Product
	for _, p := range s.store.All() {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Brand != "" && p.Brand != f.Brand {
			continue
		}
		if f.MinPrice != nil && p.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		if f.InStock != nil && p.InStock != *f.InStock {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Sort returns a newly ordered copy; the input slice is never mutated
// and equal keys keep their prior relative order. Name ordering uses
// Arabic collation: raw code-point comparison puts hamza and madda
// forms of alef in visually wrong positions.
func (s *ProductService) Sort(products []models.Product, key models.SortKey) ([]models.Product, error) {
	out := make([]models.Product, len(products))
	copy(out, products)

	switch key {
	case models.SortByName:
		col := collate.New(language.Arabic)
		sort.SliceStable(out, func(i, j int) bool {
			return col.CompareString(out[i].Name, out[j].Name) < 0
		})
	case models.SortByPriceAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price < out[j].Price
		})
	case models.SortByPriceDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price > out[j].Price
		})
	default:
		return nil, ErrUnknownSortKey
	}

	return out, nil
}

// Related returns other products in the same category, in store order,
// truncated to limit. Used for the cross-sell strip on detail pages.
func (s *ProductService) Related(product models.Product, limit int) []models.Product {
	if limit <= 0 {
		return nil
	}

	var out []models.Product
	for _, p := range s.store.All() {
		if p.Category != product.Category || p.ID == product.ID {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out
}

// Featured returns up to limit in-stock products in store order, for
// the homepage grid.
func (s *ProductService) Featured(limit int) []models.Product {
	if limit <= 0 {
		return nil
	}

	var out []models.Product
	for _, p := range s.store.All() {
		if !p.InStock {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out
}

// Stats aggregates the catalog. Brands and categories are deduplicated
// in insertion order. The store is non-empty by construction, so the
// average never divides by zero.
func (s *ProductService) Stats() ProductStats {
	products := s.store.All()

	stats := ProductStats{
		TotalProducts: len(products),
		Brands:        []string{},
		Categories:    []string{},
	}

	seenBrand := make(map[string]bool)
	seenCategory := make(map[string]bool)

	var sum float64
	for i, p := range products {
		if p.InStock {
			stats.InStock++
		}
		if !seenBrand[p.Brand] {
			seenBrand[p.Brand] = true
			stats.Brands = append(stats.Brands, p.Brand)
		}
		if !seenCategory[p.Category] {
			seenCategory[p.Category] = true
			stats.Categories = append(stats.Categories, p.Category)
		}

		sum += p.Price
		if i == 0 || p.Price < stats.PriceRange.Min {
			stats.PriceRange.Min = p.Price
		}
		if i == 0 || p.Price > stats.PriceRange.Max {
			stats.PriceRange.Max = p.Price
		}
	}

	stats.PriceRange.Avg = math.Round(sum / float64(len(products)))

	return stats
}
