package handlers

import (
	"github.com/gofiber/fiber/v3"

	"jobinsights/internal/config"
	"jobinsights/internal/handlers/api"
	"jobinsights/internal/insights"
	"jobinsights/internal/middleware"
)

// DashboardHandler renders the job market report pages.
type DashboardHandler struct {
	insights *insights.Context
	cfg      *config.Config
	layout   *config.YAMLConfig
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(ic *insights.Context, cfg *config.Config, layout *config.YAMLConfig) *DashboardHandler {
	return &DashboardHandler{insights: ic, cfg: cfg, layout: layout}
}

// CategoryBar is one row of the category distribution chart.
type CategoryBar struct {
	Category string
	Total    int
	Width    int // percent of the largest category total
}

// Index renders the full dashboard for the selection in the query string.
// HTMX requests from the filter form get only the report section.
func (h *DashboardHandler) Index(c fiber.Ctx) error {
	if c.Get("HX-Request") == "true" {
		return h.Report(c)
	}

	f, err := api.ParseFilter(c, h.insights)
	if err != nil {
		if isBadFilter(err) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return err
	}

	return c.Render("index", h.viewData(c, h.insights.Run(f)))
}

// Report renders only the report section.
func (h *DashboardHandler) Report(c fiber.Ctx) error {
	f, err := api.ParseFilter(c, h.insights)
	if err != nil {
		if isBadFilter(err) {
			return htmxError(c, err.Error())
		}
		return err
	}

	return c.Render("partials/report", h.viewData(c, h.insights.Run(f)), "")
}

func (h *DashboardHandler) viewData(c fiber.Ctx, r *insights.Report) fiber.Map {
	selected := make(map[string]bool, len(r.Filter.ExperienceLevels))
	for _, l := range r.Filter.ExperienceLevels {
		selected[l] = true
	}

	return MergeBranding(fiber.Map{
		"Title":          r.Heading(),
		"Report":         r,
		"Options":        h.insights.Options(),
		"SelectedLevels": selected,
		"CategoryBars":   categoryBars(r),
		"Heading":        h.layout.Dashboard.Heading,
		"Subheading":     h.layout.Dashboard.Subheading,
		"Facts":          h.layout.Dashboard.Facts,
		"User":           middleware.CurrentUser(c),
	}, h.cfg)
}

func categoryBars(r *insights.Report) []CategoryBar {
	highest := r.MaxCategoryTotal()
	bars := make([]CategoryBar, len(r.CategoryTotals))
	for i, ct := range r.CategoryTotals {
		bars[i] = CategoryBar{Category: ct.Category, Total: ct.Total}
		if highest > 0 {
			bars[i].Width = ct.Total * 100 / highest
		}
	}
	return bars
}
