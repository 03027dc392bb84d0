// internal/handlers/catalog.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shopsphere/commerce-backend/internal/services"
	"github.com/shopsphere/commerce-backend/internal/utils"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// GET /api/v1/products
//
// Query params: page, search, category_id, min_price, max_price, min_rating.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	filters := services.ProductFilters{
		Search: c.Query("search"),
	}

	if raw := c.Query("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			utils.BadRequestResponse(c, "Invalid category_id", nil)
			return
		}
		filters.CategoryID = &id
	}
	if v, ok := parseFloatQuery(c, "min_price"); ok {
		filters.MinPrice = v
	} else {
		return
	}
	if v, ok := parseFloatQuery(c, "max_price"); ok {
		filters.MaxPrice = v
	} else {
		return
	}
	if v, ok := parseFloatQuery(c, "min_rating"); ok {
		filters.MinRating = v
	} else {
		return
	}

	page := utils.GetPageParam(c)
	products, total, err := h.catalogService.ListProducts(filters, page)
	if err != nil {
		handleServiceError(c, err, "Product")
		return
	}

	utils.SuccessResponse(c, utils.NewPage(c, products, total, page))
}

// GET /api/v1/categories/:id/products
func (h *CatalogHandler) ListByCategory(c *gin.Context) {
	categoryID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	products, err := h.catalogService.ListByCategory(categoryID)
	if err != nil {
		handleServiceError(c, err, "Category")
		return
	}

	utils.SuccessResponse(c, products)
}

// GET /api/v1/products/top-rated
func (h *CatalogHandler) TopRated(c *gin.Context) {
	products, err := h.catalogService.TopRated(5)
	if err != nil {
		handleServiceError(c, err, "Product")
		return
	}

	utils.SuccessResponse(c, products)
}

// GET /api/v1/products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	productID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	product, err := h.catalogService.GetProduct(productID)
	if err != nil {
		handleServiceError(c, err, "Product")
		return
	}

	utils.SuccessResponse(c, product)
}

// GET /api/v1/categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories()
	if err != nil {
		handleServiceError(c, err, "Category")
		return
	}

	utils.SuccessResponse(c, categories)
}

// GET /api/v1/search/suggestions?q=
func (h *CatalogHandler) Suggestions(c *gin.Context) {
	suggestions, err := h.catalogService.SearchSuggestions(c.Query("q"))
	if err != nil {
		handleServiceError(c, err, "Suggestion")
		return
	}

	utils.SuccessResponse(c, suggestions)
}

// parseFloatQuery reads an optional float query param. On garbage it
// responds 400 and returns ok=false.
func parseFloatQuery(c *gin.Context, name string) (*float64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid "+name, nil)
		return nil, false
	}
	return &v, true
}
