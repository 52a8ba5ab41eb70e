package handlers

import (
	"budgetboard/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
	logger           *zap.Logger
}

func NewDashboardHandler(dashboardService *service.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// GetDashboard godoc
// @Summary Get the dashboard view
// @Description Convert, filter, and aggregate the dataset for the requested selection
// @Tags dashboard
// @Produce json
// @Param currency query string false "Display currency code" default(USD)
// @Param departments query []string false "Departments to keep" collectionFormat(multi)
// @Param vendors query []string false "Vendors to keep" collectionFormat(multi)
// @Param search query string false "Case-insensitive substring to match against whole rows"
// @Success 200 {object} dto.DashboardResponse
// @Router /api/v1/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	filter := service.Filter{
		Departments: queryAll(c, "departments"),
		Vendors:     queryAll(c, "vendors"),
		Search:      c.Query("search"),
		Currency:    c.Query("currency"),
	}
	return c.JSON(h.dashboardService.View(filter))
}

// GetFilters godoc
// @Summary Get filter options
// @Description Distinct departments and vendors plus the available currencies
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.FiltersResponse
// @Router /api/v1/dashboard/filters [get]
func (h *DashboardHandler) GetFilters(c *fiber.Ctx) error {
	return c.JSON(h.dashboardService.Filters())
}

// queryAll collects every value of a repeated query parameter. An absent
// parameter yields an empty slice, which the filter treats as selecting
// nothing.
func queryAll(c *fiber.Ctx, key string) []string {
	values := c.Context().QueryArgs().PeekMulti(key)
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
