package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/isowyrm/isowyrm/internal/service"
	"github.com/isowyrm/isowyrm/pkg/response"
)

// ChartHandler handles HTTP requests for rendered charts.
type ChartHandler struct {
	chartService *service.ChartService
}

// NewChartHandler creates a new chart handler.
func NewChartHandler(chartService *service.ChartService) *ChartHandler {
	return &ChartHandler{chartService: chartService}
}

// GetChart handles GET /chart/:user
// Query: period (half-year|full-year, default full-year), seed (int64).
func (h *ChartHandler) GetChart(c *gin.Context) {
	user := c.Param("user")
	period := c.DefaultQuery("period", "full-year")

	seed, err := strconv.ParseInt(c.DefaultQuery("seed", "1"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid seed parameter")
		return
	}

	svg, err := h.chartService.Render(c.Request.Context(), user, period, seed)
	if err != nil {
		if errors.Is(err, service.ErrUnknownPeriod) {
			response.BadRequest(c, err.Error())
			return
		}
		// Anything past parameter validation is an upstream or storage
		// failure; the pipeline itself does not error.
		response.BadGateway(c, err.Error())
		return
	}

	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(200, "image/svg+xml", svg)
}
