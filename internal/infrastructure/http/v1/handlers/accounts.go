package handlers

import (
	"github.com/gin-gonic/gin"

	"agent360/internal/domain/accounts"
	"agent360/internal/infrastructure/http/v1/dto"
)

// AccountsHandler serves account endpoints.
type AccountsHandler struct {
	*BaseHandler
	service *accounts.Service
}

func NewAccountsHandler(base *BaseHandler, service *accounts.Service) *AccountsHandler {
	return &AccountsHandler{BaseHandler: base, service: service}
}

// List handles GET /api/accounts/ and GET /api/accounts/user/:user_id/.
// The by-user route narrows the list to accounts owned by that user.
func (h *AccountsHandler) List(c *gin.Context) {
	filter := accounts.ListFilter{
		Search:   c.Query("search"),
		OwnerID:  c.Param("user_id"),
		Page:     h.ParseIntQuery(c, "page", 1),
		PageSize: h.ParseIntQuery(c, "page_size", 20),
	}.Normalize()

	items, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	pagination := dto.NewPagination(filter.Page, filter.PageSize, total)
	h.OKPaginated(c, "Accounts retrieved successfully", dto.FromAccounts(items), pagination)
}

// Get handles GET /api/accounts/:id/.
func (h *AccountsHandler) Get(c *gin.Context) {
	item, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, "Account retrieved successfully", dto.FromAccount(item))
}
