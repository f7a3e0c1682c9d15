package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"agent360/internal/core/apperror"
	"agent360/internal/domain/analytics"
	"agent360/internal/infrastructure/http/v1/dto"
)

// AnalyticsHandler serves the invoice-based analytics endpoint.
type AnalyticsHandler struct {
	*BaseHandler
	service *analytics.Service
}

func NewAnalyticsHandler(base *BaseHandler, service *analytics.Service) *AnalyticsHandler {
	return &AnalyticsHandler{BaseHandler: base, service: service}
}

// Get handles GET /api/analytics/.
func (h *AnalyticsHandler) Get(c *gin.Context) {
	q := analytics.Query{
		Level:      analytics.Level(c.Query("level")),
		StartMonth: c.Query("start_month"),
		EndMonth:   c.Query("end_month"),
		ParentID:   c.Query("parent_id"),
		Ordering:   c.Query("ordering"),
	}

	if raw := c.Query("top_n"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			h.HandleError(c, apperror.NewValidation("top_n must be a non-negative integer").
				WithField("top_n", "Expected a non-negative integer."))
			return
		}
		q.TopN = n
	}

	report, err := h.service.Get(c.Request.Context(), q)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, "Analytics data retrieved successfully", dto.FromAnalyticsReport(report))
}
