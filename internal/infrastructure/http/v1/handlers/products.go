package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"agent360/internal/domain/products"
	"agent360/internal/infrastructure/http/v1/dto"
)

// ProductsHandler serves product catalog endpoints.
type ProductsHandler struct {
	*BaseHandler
	service *products.Service
}

func NewProductsHandler(base *BaseHandler, service *products.Service) *ProductsHandler {
	return &ProductsHandler{BaseHandler: base, service: service}
}

// List handles GET /api/products/.
func (h *ProductsHandler) List(c *gin.Context) {
	filter := products.ListFilter{
		Family:   c.Query("family"),
		Search:   c.Query("search"),
		Page:     h.ParseIntQuery(c, "page", 1),
		PageSize: h.ParseIntQuery(c, "page_size", 20),
	}.Normalize()

	if raw := c.Query("active"); raw != "" {
		if active, err := strconv.ParseBool(raw); err == nil {
			filter.Active = &active
		}
	}

	items, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	pagination := dto.NewPagination(filter.Page, filter.PageSize, total)
	h.OKPaginated(c, "Products retrieved successfully", dto.FromProducts(items), pagination)
}

// Families handles GET /api/products/families/.
func (h *ProductsHandler) Families(c *gin.Context) {
	families, err := h.service.Families(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, "Product families retrieved successfully", families)
}

// Get handles GET /api/products/:id/.
func (h *ProductsHandler) Get(c *gin.Context) {
	item, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, "Product retrieved successfully", dto.FromProduct(item))
}
