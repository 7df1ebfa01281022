// internal/models/filter.go
package models

// ProductFilter holds the optional listing criteria. Nil / empty fields
// mean "no constraint on that dimension"; set fields are ANDed together.
type ProductFilter struct {
	Category string   `json:"category,omitempty"`
	Brand    string   `json:"brand,omitempty"`
	MinPrice *float64 `json:"minPrice,omitempty" validate:"omitempty,gte=0"`
	MaxPrice *float64 `json:"maxPrice,omitempty" validate:"omitempty,gt=0"`
	InStock  *bool    `json:"inStock,omitempty"`
}

// SortKey selects the listing order.
type SortKey string

const (
	SortByName      SortKey = "name"
	SortByPriceAsc  SortKey = "price-asc"
	SortByPriceDesc SortKey = "price-desc"
)

// Valid reports whether the key is one of the supported listing orders.
func (k SortKey) Valid() bool {
	switch k {
	case SortByName, SortByPriceAsc, SortByPriceDesc:
		return true
	}
	return false
}
