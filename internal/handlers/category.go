// internal/handlers/category.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/rasmstore/backend/internal/catalog"
	"github.com/rasmstore/backend/internal/i18n"
	"github.com/rasmstore/backend/internal/utils"
)

type CategoryHandler struct{}

func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// GET /categories
//
// The filter sidebar renders these; names are localized, Arabic first.
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	categories := make([]gin.H, 0, len(catalog.Categories()))
	for _, id := range catalog.Categories() {
		categories = append(categories, gin.H{
			"id":   id,
			"name": i18n.T(lang, i18n.KeyCategoryDisplayPrefix+id),
		})
	}

	utils.SuccessResponse(c, gin.H{
		"categories": categories,
	})
}
