package api

import (
	"github.com/gofiber/fiber/v3"

	"jobinsights/internal/insights"
)

// ReportHandler serves keyword reports as JSON.
type ReportHandler struct {
	insights *insights.Context
}

// NewReportHandler creates a new API report handler.
func NewReportHandler(ic *insights.Context) *ReportHandler {
	return &ReportHandler{insights: ic}
}

// Report handles GET /api/v1/report. An empty selection is not an error: the
// report comes back with empty set and a message.
func (h *ReportHandler) Report(c fiber.Ctx) error {
	f, err := ParseFilter(c, h.insights)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	return jsonSuccess(c, h.insights.Run(f))
}

// Filters handles GET /api/v1/filters.
func (h *ReportHandler) Filters(c fiber.Ctx) error {
	return jsonSuccess(c, fiber.Map{
		"options": h.insights.Options(),
		"default": h.insights.DefaultFilter(),
		"top_n":   h.insights.TopN(),
	})
}
