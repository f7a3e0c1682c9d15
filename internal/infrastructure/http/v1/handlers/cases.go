package handlers

import (
	"github.com/gin-gonic/gin"

	"agent360/internal/domain/cases"
	"agent360/internal/infrastructure/http/v1/dto"
)

// CasesHandler serves complaint case endpoints.
type CasesHandler struct {
	*BaseHandler
	service *cases.Service
}

func NewCasesHandler(base *BaseHandler, service *cases.Service) *CasesHandler {
	return &CasesHandler{BaseHandler: base, service: service}
}

// Summary handles GET /api/complaints-cases/summary/.
func (h *CasesHandler) Summary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context(),
		c.Query("account_id"), c.Query("opened_from"), c.Query("opened_to"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, "Case summary retrieved successfully", dto.FromCaseSummary(summary))
}

// List handles GET /api/complaints-cases/.
func (h *CasesHandler) List(c *gin.Context) {
	filter := cases.ListFilter{
		AccountID: c.Query("account_id"),
		Status:    c.Query("status"),
		Ordering:  c.Query("ordering"),
		Page:      h.ParseIntQuery(c, "page", 1),
		PageSize:  h.ParseIntQuery(c, "page_size", 20),
	}.Normalize()

	items, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	pagination := dto.NewPagination(filter.Page, filter.PageSize, total)
	h.OKPaginated(c, "Cases retrieved successfully", dto.FromCases(items), pagination)
}

// Get handles GET /api/complaints-cases/:id/.
func (h *CasesHandler) Get(c *gin.Context) {
	item, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, "Case retrieved successfully", dto.FromCase(item))
}

// Comments handles GET /api/complaints-cases/:id/comments/.
func (h *CasesHandler) Comments(c *gin.Context) {
	items, err := h.service.Comments(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, "Case comments retrieved successfully", dto.FromCaseComments(items))
}

// Timeline handles GET /api/complaints-cases/:id/timeline/.
func (h *CasesHandler) Timeline(c *gin.Context) {
	items, err := h.service.Timeline(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, "Case timeline retrieved successfully", dto.FromCaseTimeline(items))
}
