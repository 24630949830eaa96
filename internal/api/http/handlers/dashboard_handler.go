package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/admin-dashboard/internal/service"
)

// DashboardHandler exposes the aggregation endpoints.
type DashboardHandler struct {
	stats *service.StatsService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(stats *service.StatsService) *DashboardHandler {
	return &DashboardHandler{stats: stats}
}

// Stats handles GET /api/dashboard/stats.
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.stats.Dashboard(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": stats})
}

// Analytics handles GET /api/dashboard/analytics.
func (h *DashboardHandler) Analytics(c *fiber.Ctx) error {
	report, err := h.stats.Analytics(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": report})
}
