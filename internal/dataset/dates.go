package dataset

import (
	"errors"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var errNoDate = errors.New("no date")

// ParseDate parses a posting date in any common layout. Empty values and
// values that cannot be parsed yield an error and no date; callers treat
// both as a missing date rather than failing the load.
func ParseDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "nan") || strings.EqualFold(raw, "null") {
		return nil, errNoDate
	}

	t, err := dateparse.ParseIn(raw, time.UTC)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
