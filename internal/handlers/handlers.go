package handlers

import (
	"errors"
	"html"

	"github.com/gofiber/fiber/v3"

	"jobinsights/internal/handlers/api"
	"jobinsights/internal/insights"
)

// htmxError returns an error message as HTML that HTMX will display.
// Uses 200 status so HTMX processes the swap (HTMX ignores non-2xx by default).
func htmxError(c fiber.Ctx, message string) error {
	return c.SendString(
		`<div class="p-3 rounded-lg bg-red-50 dark:bg-red-900/30 text-red-700 dark:text-red-300 text-sm">` + html.EscapeString(message) + `</div>`,
	)
}

// isBadFilter reports whether err comes from an invalid filter selection.
func isBadFilter(err error) bool {
	return errors.Is(err, api.ErrInvalidFilter) ||
		errors.Is(err, insights.ErrUnknownTitle) ||
		errors.Is(err, insights.ErrUnknownExperience)
}
