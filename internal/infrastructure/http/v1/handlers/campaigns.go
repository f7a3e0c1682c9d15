package handlers

import (
	"github.com/gin-gonic/gin"

	"agent360/internal/domain/campaigns"
	"agent360/internal/infrastructure/http/v1/dto"
)

// CampaignsHandler serves campaign and task endpoints.
type CampaignsHandler struct {
	*BaseHandler
	service *campaigns.Service
}

func NewCampaignsHandler(base *BaseHandler, service *campaigns.Service) *CampaignsHandler {
	return &CampaignsHandler{BaseHandler: base, service: service}
}

// List handles GET /api/campaigns/.
func (h *CampaignsHandler) List(c *gin.Context) {
	filter := campaigns.ListFilter{
		AccountID: c.Query("account_id"),
		UserID:    c.Query("user_id"),
		Type:      c.Query("type"),
		Page:      h.ParseIntQuery(c, "page", 1),
		PageSize:  h.ParseIntQuery(c, "page_size", 20),
	}.Normalize()

	items, total, err := h.service.ListWithTasks(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	pagination := dto.NewPagination(filter.Page, filter.PageSize, total)
	h.OKPaginated(c, "Campaigns retrieved successfully", dto.FromCampaignsWithTasks(items), pagination)
}

// Tasks handles GET /api/campaigns/tasks/.
func (h *CampaignsHandler) Tasks(c *gin.Context) {
	filter := campaigns.TasksFilter{
		CampaignID: c.Query("campaign_id"),
		Page:       h.ParseIntQuery(c, "page", 1),
		PageSize:   h.ParseIntQuery(c, "page_size", 20),
	}.Normalize()

	items, total, err := h.service.TasksByCampaign(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	pagination := dto.NewPagination(filter.Page, filter.PageSize, total)
	h.OKPaginated(c, "Tasks retrieved successfully", dto.FromTasks(items), pagination)
}
