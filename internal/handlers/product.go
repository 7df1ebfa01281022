// internal/handlers/product.go
package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rasmstore/backend/internal/config"
	"github.com/rasmstore/backend/internal/i18n"
	"github.com/rasmstore/backend/internal/middleware"
	"github.com/rasmstore/backend/internal/models"
	"github.com/rasmstore/backend/internal/services"
	"github.com/rasmstore/backend/internal/storefront"
	"github.com/rasmstore/backend/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
	cfg            *config.Config
}

func NewProductHandler(productService *services.ProductService, cfg *config.Config) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		cfg:            cfg,
	}
}

// GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	products := h.productService.GetAll()

	if sortKey := c.Query("sort"); sortKey != "" {
		sorted, err := h.productService.Sort(products, models.SortKey(sortKey))
		if err != nil {
			utils.ValidationErrorResponse(c, []utils.ValidationError{{
				Field:   "sort",
				Tag:     "oneof",
				Message: "sort must be one of: name, price-asc, price-desc",
			}})
			return
		}
		products = sorted
	}

	utils.SuccessResponse(c, gin.H{
		"products": products,
	})
}

// GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id := c.Param("id")

	product, err := h.productService.GetByID(id)
	if err != nil {
		var notFound *services.NotFoundError
		if errors.As(err, &notFound) {
			middleware.RecordCatalogOperation("get_by_id", false)
			utils.NotFoundResponse(c, notFound.Error())
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	middleware.RecordCatalogOperation("get_by_id", true)
	utils.SuccessResponse(c, gin.H{
		"product":         product,
		"formattedPrice":  storefront.FormatPrice(product.Price),
		"discountPercent": product.DiscountPercent(),
		"whatsappLink":    storefront.WhatsAppLink(h.cfg.WhatsApp.Phone, product.Name, product.Price),
	})
}

// GET /products/:id/whatsapp-link
func (h *ProductHandler) GetWhatsAppLink(c *gin.Context) {
	id := c.Param("id")

	product, err := h.productService.GetByID(id)
	if err != nil {
		var notFound *services.NotFoundError
		if errors.As(err, &notFound) {
			utils.NotFoundResponse(c, notFound.Error())
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"link":    storefront.WhatsAppLink(h.cfg.WhatsApp.Phone, product.Name, product.Price),
		"phone":   h.cfg.WhatsApp.PhoneFormatted,
		"message": storefront.InquiryMessage(product.Name, product.Price),
	})
}

// GET /products/:id/related
func (h *ProductHandler) GetRelatedProducts(c *gin.Context) {
	id := c.Param("id")

	product, err := h.productService.GetByID(id)
	if err != nil {
		var notFound *services.NotFoundError
		if errors.As(err, &notFound) {
			utils.NotFoundResponse(c, notFound.Error())
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	limit := h.cfg.Site.RelatedLimit
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			utils.ValidationErrorResponse(c, []utils.ValidationError{{
				Field:   "limit",
				Tag:     "gt",
				Message: "limit must be a positive integer",
			}})
			return
		}
		limit = parsed
	}

	utils.SuccessResponse(c, gin.H{
		"products": h.productService.Related(product, limit),
	})
}

// GET /products/featured
func (h *ProductHandler) GetFeaturedProducts(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"products": h.productService.Featured(h.cfg.Site.FeaturedLimit),
	})
}

// GET /products/stats
func (h *ProductHandler) GetStats(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"stats": h.productService.Stats(),
	})
}

// GET /products/search?q=
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	query := c.Query("q")

	products, err := h.productService.Search(query)
	if err != nil {
		middleware.RecordCatalogOperation("search", false)
		lang := utils.GetLangFromContext(c)
		utils.ValidationErrorResponse(c, []utils.ValidationError{{
			Field:   "q",
			Tag:     "required",
			Message: i18n.T(lang, i18n.KeySearchEmptyQuery),
		}})
		return
	}

	middleware.RecordCatalogOperation("search", true)
	utils.SuccessResponseWithMeta(c, gin.H{
		"products": products,
	}, gin.H{
		"query": query,
		"total": len(products),
	})
}

// GET /products/filter?category=&brand=&min_price=&max_price=&in_stock=&sort=
func (h *ProductHandler) FilterProducts(c *gin.Context) {
	filter, fieldErrors := parseProductFilter(c)
	if len(fieldErrors) > 0 {
		utils.ValidationErrorResponse(c, fieldErrors)
		return
	}

	if err := utils.ValidateStruct(&filter); err != nil {
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
		return
	}

	products := h.productService.Filter(filter)

	if sortKey := c.Query("sort"); sortKey != "" {
		sorted, err := h.productService.Sort(products, models.SortKey(sortKey))
		if err != nil {
			utils.ValidationErrorResponse(c, []utils.ValidationError{{
				Field:   "sort",
				Tag:     "oneof",
				Message: "sort must be one of: name, price-asc, price-desc",
			}})
			return
		}
		products = sorted
	}

	utils.SuccessResponse(c, gin.H{
		"products": products,
	})
}

// GET /categories/:category/products
//
// Collection lookups soft-fail: an unknown or empty category answers
// 200 with the documented {error, data: []} shape so the listing page
// renders its localized empty state. Only the single-item lookup above
// answers 404. The storefront depends on this asymmetry.
func (h *ProductHandler) GetProductsByCategory(c *gin.Context) {
	category := c.Param("category")

	products := h.productService.ByCategory(category)
	if len(products) == 0 {
		middleware.RecordCatalogOperation("by_category", false)
		utils.SoftFailResponse(c, fmt.Sprintf("No products found in category: %s", category))
		return
	}

	middleware.RecordCatalogOperation("by_category", true)
	utils.SuccessResponse(c, gin.H{
		"products": products,
	})
}

// GET /brands/:brand/products
func (h *ProductHandler) GetProductsByBrand(c *gin.Context) {
	brand := c.Param("brand")

	products := h.productService.ByBrand(brand)
	if len(products) == 0 {
		middleware.RecordCatalogOperation("by_brand", false)
		utils.SoftFailResponse(c, fmt.Sprintf("No products found from brand: %s", brand))
		return
	}

	middleware.RecordCatalogOperation("by_brand", true)
	utils.SuccessResponse(c, gin.H{
		"products": products,
	})
}

func parseProductFilter(c *gin.Context) (models.ProductFilter, []utils.ValidationError) {
	var filter models.ProductFilter
	var fieldErrors []utils.ValidationError

	filter.Category = c.Query("category")
	filter.Brand = c.Query("brand")

	if minStr := c.Query("min_price"); minStr != "" {
		if min, err := strconv.ParseFloat(minStr, 64); err == nil {
			filter.MinPrice = &min
		} else {
			fieldErrors = append(fieldErrors, utils.ValidationError{
				Field: "min_price", Tag: "numeric", Message: "min_price must be a number",
			})
		}
	}

	if maxStr := c.Query("max_price"); maxStr != "" {
		if max, err := strconv.ParseFloat(maxStr, 64); err == nil {
			filter.MaxPrice = &max
		} else {
			fieldErrors = append(fieldErrors, utils.ValidationError{
				Field: "max_price", Tag: "numeric", Message: "max_price must be a number",
			})
		}
	}

	if inStockStr := c.Query("in_stock"); inStockStr != "" {
		if inStock, err := strconv.ParseBool(inStockStr); err == nil {
			filter.InStock = &inStock
		} else {
			fieldErrors = append(fieldErrors, utils.ValidationError{
				Field: "in_stock", Tag: "boolean", Message: "in_stock must be true or false",
			})
		}
	}

	return filter, fieldErrors
}
