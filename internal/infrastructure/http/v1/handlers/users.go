package handlers

import (
	"github.com/gin-gonic/gin"

	"agent360/internal/domain/users"
	"agent360/internal/infrastructure/http/v1/dto"
)

// UsersHandler serves user endpoints.
type UsersHandler struct {
	*BaseHandler
	service *users.Service
}

func NewUsersHandler(base *BaseHandler, service *users.Service) *UsersHandler {
	return &UsersHandler{BaseHandler: base, service: service}
}

// List handles GET /api/users/.
func (h *UsersHandler) List(c *gin.Context) {
	filter := users.ListFilter{
		Page:     h.ParseIntQuery(c, "page", 1),
		PageSize: h.ParseIntQuery(c, "page_size", 20),
	}.Normalize()

	items, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	pagination := dto.NewPagination(filter.Page, filter.PageSize, total)
	h.OKPaginated(c, "Users retrieved successfully", dto.FromUsers(items), pagination)
}
