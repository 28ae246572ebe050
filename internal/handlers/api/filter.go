package api

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"

	"jobinsights/internal/insights"
	"jobinsights/internal/validation"
)

// Query parameter names for a filter selection.
const (
	ParamTitle      = "title"
	ParamExperience = "experience"
)

// ErrInvalidFilter is returned for filter values that fail validation.
var ErrInvalidFilter = errors.New("invalid filter")

// ParseFilter reads ?title=&experience= from the request and resolves it
// against the loaded data. experience may repeat or be comma-separated. A
// missing parameter selects the default; an empty one selects no levels.
func ParseFilter(c fiber.Ctx, ic *insights.Context) (insights.Filter, error) {
	title := c.Query(ParamTitle)
	if ok, msg := validation.ValidateFilterValue(title); !ok {
		return insights.Filter{}, fmt.Errorf("%w: title: %s", ErrInvalidFilter, msg)
	}

	var raw []string
	args := c.RequestCtx().QueryArgs()
	if args.Has(ParamExperience) {
		raw = []string{}
		for _, v := range args.PeekMulti(ParamExperience) {
			raw = append(raw, string(v))
		}
	}

	levels := validation.ParseList(raw)
	for _, l := range levels {
		if ok, msg := validation.ValidateFilterValue(l); !ok {
			return insights.Filter{}, fmt.Errorf("%w: experience: %s", ErrInvalidFilter, msg)
		}
	}

	return ic.ResolveFilter(title, levels)
}
