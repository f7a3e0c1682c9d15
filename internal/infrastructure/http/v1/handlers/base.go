package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"agent360/internal/infrastructure/http/v1/dto"
)

// BaseHandler provides common handler utilities.
type BaseHandler struct{}

// NewBaseHandler creates a new base handler.
func NewBaseHandler() *BaseHandler {
	return &BaseHandler{}
}

// HandleError registers error on Gin context and aborts request.
// Actual JSON response is produced by middleware.ErrorHandler (single source of truth).
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// OK sends 200 with the success envelope.
func (h *BaseHandler) OK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, dto.NewResponse(message, data))
}

// OKPaginated sends 200 with the success envelope plus pagination metadata.
func (h *BaseHandler) OKPaginated(c *gin.Context, message string, data any, p dto.Pagination) {
	c.JSON(http.StatusOK, dto.NewPaginatedResponse(message, data, p))
}

// ParseIntQuery parses integer query parameter with default value.
func (h *BaseHandler) ParseIntQuery(c *gin.Context, key string, defaultVal int) int {
	val := c.Query(key)
	if val == "" {
		return defaultVal
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return parsed
}

// paginate slices an in-memory result set to the requested page and
// builds the matching metadata. Page numbers past the end yield an
// empty page.
func paginate[T any](items []T, page, pageSize int) ([]T, dto.Pagination) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	total := len(items)
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return items[start:end], dto.NewPagination(page, pageSize, total)
}
