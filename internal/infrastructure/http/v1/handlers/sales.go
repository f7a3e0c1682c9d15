package handlers

import (
	"github.com/gin-gonic/gin"

	"agent360/internal/domain/sales"
	"agent360/internal/infrastructure/http/v1/dto"
)

// SalesHandler serves the order-based sales analytics endpoints.
// List responses are paginated in memory over the computed result set.
type SalesHandler struct {
	*BaseHandler
	service *sales.Service
}

func NewSalesHandler(base *BaseHandler, service *sales.Service) *SalesHandler {
	return &SalesHandler{BaseHandler: base, service: service}
}

// Family handles GET /api/sales/family/.
func (h *SalesHandler) Family(c *gin.Context) {
	rows, err := h.service.FamilySales(c.Request.Context(),
		c.Query("accountId"), c.Query("from"), c.Query("to"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	page := h.ParseIntQuery(c, "page", 1)
	pageSize := h.ParseIntQuery(c, "page_size", 20)
	items, pagination := paginate(dto.FromFamilyRows(rows), page, pageSize)

	h.OKPaginated(c, "Family sales retrieved successfully", items, pagination)
}

// Product handles GET /api/sales/product/.
func (h *SalesHandler) Product(c *gin.Context) {
	rows, err := h.service.ProductSales(c.Request.Context(),
		c.Query("accountId"), c.Query("family"), c.Query("from"), c.Query("to"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	page := h.ParseIntQuery(c, "page", 1)
	pageSize := h.ParseIntQuery(c, "page_size", 20)
	items, pagination := paginate(dto.FromProductRows(rows), page, pageSize)

	h.OKPaginated(c, "Product sales retrieved successfully", items, pagination)
}

// Orders handles GET /api/sales/orders/.
func (h *SalesHandler) Orders(c *gin.Context) {
	rows, err := h.service.OrderContributions(c.Request.Context(),
		c.Query("accountId"), c.Query("productId"), c.Query("from"), c.Query("to"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, "Order contributions retrieved successfully", dto.FromOrderContributions(rows))
}

// OrderDetails handles GET /api/sales/order-details/.
func (h *SalesHandler) OrderDetails(c *gin.Context) {
	rows, err := h.service.OrderDetails(c.Request.Context(),
		c.Query("accountId"), c.Query("orderId"), c.Query("from"), c.Query("to"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, "Order details retrieved successfully", dto.FromOrderLineDetails(rows))
}

// Performance handles GET /api/products/performance/.
func (h *SalesHandler) Performance(c *gin.Context) {
	perf, err := h.service.ProductPerformance(c.Request.Context(),
		c.Query("account_id"), c.Query("from"), c.Query("to"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, "Product performance retrieved successfully", dto.FromPerformance(perf))
}
