package handlers

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"jobinsights/internal/insights"
)

// Pinger is a dependency the readiness probe checks.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	insights *insights.Context
	db       Pinger // nil unless ads come from Postgres
}

// NewProbeHandler creates a new probe handler.
func NewProbeHandler(ic *insights.Context, database Pinger) *ProbeHandler {
	return &ProbeHandler{insights: ic, db: database}
}

// Liveness handles the /healthz endpoint for Kubernetes liveness probes.
// Returns 200 OK if the application is running.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles the /readyz endpoint for Kubernetes readiness probes.
// Returns 200 OK once the dataset is loaded and the database, if any, is
// reachable.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	if h.insights == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "error",
			"error":  "dataset not loaded",
		})
	}

	if h.db != nil {
		if err := h.db.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "error",
				"error":  "database unavailable",
			})
		}
	}

	return c.JSON(fiber.Map{
		"status":  "ok",
		"job_ads": h.insights.Len(),
	})
}
