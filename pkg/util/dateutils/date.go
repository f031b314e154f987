package dateutils

import (
	"fmt"
	"time"
)

// ISODateLayout is the zero-padded calendar date format used by the dataset.
const ISODateLayout = "2006-01-02"

// Parse converts a YYYY-MM-DD string into a UTC time at midnight.
// It returns an error if the string is not a valid calendar date in that layout.
func Parse(date string) (time.Time, error) {
	t, err := time.ParseInLocation(ISODateLayout, date, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid ISO date %q: %w", date, err)
	}
	return t, nil
}

// Format renders t as a YYYY-MM-DD string.
func Format(t time.Time) string {
	return t.Format(ISODateLayout)
}

// IsISODate checks if the given string is a valid YYYY-MM-DD calendar date.
func IsISODate(date string) bool {
	_, err := Parse(date)
	return err == nil
}

// MinusDays subtracts an exact number of days from a YYYY-MM-DD date and
// returns the result in the same format. Leap days count as ordinary days,
// so MinusDays("2016-03-01", 365) is "2015-03-02".
func MinusDays(date string, days int) (string, error) {
	t, err := Parse(date)
	if err != nil {
		return "", err
	}
	return Format(t.AddDate(0, 0, -days)), nil
}
