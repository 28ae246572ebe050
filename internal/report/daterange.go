package report

import (
	"fmt"
	"time"

	"jobinsights/internal/models"
)

// NoDateRange is shown when none of the selected ads has a usable date.
const NoDateRange = "n/a"

// DateBounds returns the earliest and latest dates among ads. Ads without a
// date are skipped; both results are nil when no ad has one.
func DateBounds(ads []models.JobAd) (minDate, maxDate *time.Time) {
	for i := range ads {
		if !ads[i].HasDate() {
			continue
		}
		d := ads[i].Date
		if minDate == nil || d.Before(*minDate) {
			minDate = d
		}
		if maxDate == nil || d.After(*maxDate) {
			maxDate = d
		}
	}
	return minDate, maxDate
}

// DateRange formats the posting period, e.g. "January-March, 2024" within one
// year or "November, 2023 - February, 2024" across years.
func DateRange(minDate, maxDate *time.Time) string {
	if minDate == nil || maxDate == nil {
		return NoDateRange
	}

	if minDate.Year() == maxDate.Year() {
		return fmt.Sprintf("%s-%s, %d", minDate.Month(), maxDate.Month(), minDate.Year())
	}
	return fmt.Sprintf("%s, %d - %s, %d", minDate.Month(), minDate.Year(), maxDate.Month(), maxDate.Year())
}
