package report

import (
	"testing"
	"time"

	"jobinsights/internal/models"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestDateRange(t *testing.T) {
	tests := []struct {
		name string
		min  *time.Time
		max  *time.Time
		want string
	}{
		{"same year", date(2024, time.January, 3), date(2024, time.March, 30), "January-March, 2024"},
		{"same month", date(2024, time.May, 1), date(2024, time.May, 9), "May-May, 2024"},
		{"single day", date(2024, time.March, 14), date(2024, time.March, 14), "March-March, 2024"},
		{"across years", date(2023, time.November, 2), date(2024, time.February, 1), "November, 2023 - February, 2024"},
		{"no dates", nil, nil, NoDateRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DateRange(tt.min, tt.max); got != tt.want {
				t.Errorf("DateRange() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDateBounds(t *testing.T) {
	ads := []models.JobAd{
		{Date: date(2024, time.March, 1)},
		{Date: nil},
		{Date: date(2023, time.December, 24)},
		{Date: date(2024, time.June, 2)},
	}

	minDate, maxDate := DateBounds(ads)
	if minDate == nil || !minDate.Equal(*date(2023, time.December, 24)) {
		t.Errorf("min = %v, want 2023-12-24", minDate)
	}
	if maxDate == nil || !maxDate.Equal(*date(2024, time.June, 2)) {
		t.Errorf("max = %v, want 2024-06-02", maxDate)
	}

	minDate, maxDate = DateBounds([]models.JobAd{{Date: nil}})
	if minDate != nil || maxDate != nil {
		t.Errorf("DateBounds() without dates = %v, %v, want nil", minDate, maxDate)
	}
}
