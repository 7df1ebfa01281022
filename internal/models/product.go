// internal/models/product.go
package models

import (
	"math"
	"time"
)

// ProductSpec is a single technical attribute shown in the spec table,
// e.g. label "مستويات الضغط" with value "8192 مستوى".
type ProductSpec struct {
	Label string `json:"label" validate:"required"`
	Value string `json:"value" validate:"required"`
}

// ProductImage points at a product photo. Order is an optional display
// hint; images without one are shown in list order.
type ProductImage struct {
	URL   string `json:"url" validate:"required"`
	Alt   string `json:"alt" validate:"required"`
	Order *int   `json:"order,omitempty" validate:"omitempty,gt=0"`
}

// ComputerSupport describes desktop platform compatibility.
type ComputerSupport struct {
	Windows string `json:"windows" validate:"required"`
	Mac     string `json:"mac" validate:"required"`
	Linux   string `json:"linux,omitempty"`
}

// MobileSupport describes tablet or phone compatibility.
type MobileSupport struct {
	Android string `json:"android" validate:"required"`
	IOS     string `json:"ios" validate:"required"`
}

// DeviceCompatibility groups per-device compatibility notes. A nil
// sub-group means the vendor does not advertise support for that device
// class, not that the product is incompatible with it.
type DeviceCompatibility struct {
	Computers *ComputerSupport `json:"computers,omitempty" validate:"omitempty"`
	Tablets   *MobileSupport   `json:"tablets,omitempty" validate:"omitempty"`
	Phones    *MobileSupport   `json:"phones,omitempty" validate:"omitempty"`
}

// Product is a single catalog entry. Records are validated when the
// catalog store is built and are immutable afterwards. JSON field names
// follow the storefront wire contract (camelCase).
type Product struct {
	ID                  string               `json:"id" validate:"required"`
	Name                string               `json:"name" validate:"required"`
	Brand               string               `json:"brand" validate:"required"`
	Category            string               `json:"category" validate:"required"`
	Price               float64              `json:"price" validate:"required,gt=0"`
	OriginalPrice       *float64             `json:"originalPrice,omitempty" validate:"omitempty,gt=0"`
	Description         string               `json:"description" validate:"required,min=10"`
	ShortDescription    string               `json:"shortDescription" validate:"required,min=5"`
	Images              []ProductImage       `json:"images" validate:"min=1,dive"`
	Specifications      []ProductSpec        `json:"specifications" validate:"min=3,dive"`
	KeyFeatures         []string             `json:"keyFeatures" validate:"min=2,dive,required"`
	FreeDelivery        bool                 `json:"freeDelivery"`
	DeviceCompatibility *DeviceCompatibility `json:"deviceCompatibility,omitempty" validate:"omitempty"`
	UsageScenarios      []string             `json:"usageScenarios,omitempty"`
	TeacherFriendly     bool                 `json:"teacherFriendly"`
	InStock             bool                 `json:"inStock"`
	CreatedAt           *time.Time           `json:"createdAt,omitempty"`
}

// DiscountPercent returns the displayed discount badge value, or 0 when
// there is no original price or it is not higher than the current one.
func (p *Product) DiscountPercent() int {
	if p.OriginalPrice == nil || *p.OriginalPrice <= p.Price {
		return 0
	}
	return int(math.Round((*p.OriginalPrice - p.Price) / *p.OriginalPrice * 100))
}

// PrimaryImage returns the image with the lowest explicit order, falling
// back to the first image in list order.
func (p *Product) PrimaryImage() ProductImage {
	primary := p.Images[0]
	for _, img := range p.Images[1:] {
		if img.Order != nil && (primary.Order == nil || *img.Order < *primary.Order) {
			primary = img
		}
	}
	return primary
}
