package finance

import (
	"errors"
	"strings"
	"time"
)

const (
	// DateLayout is the day format used by date inputs.
	DateLayout = "2006-01-02"
	// LocalDateTimeLayout is the zone-less date-time the API expects.
	LocalDateTimeLayout = "2006-01-02T15:04:05"
)

// ToLocalDateTime turns a day into midnight of that day in LocalDateTimeLayout.
func ToLocalDateTime(day string) (string, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(day))
	if err != nil {
		return "", errors.Join(ErrInvalidDate, err)
	}
	return t.Format(LocalDateTimeLayout), nil
}

// DayOf drops the time part of an ISO date-time.
func DayOf(iso string) string {
	day, _, _ := strings.Cut(strings.TrimSpace(iso), "T")
	return day
}

// Today formats now as a UTC day.
func Today(now time.Time) string {
	return now.UTC().Format(DateLayout)
}
