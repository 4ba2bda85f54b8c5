package aeattypes

import (
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
)

const (
	isoDateLayout  = "2006-01-02"
	aeatDateLayout = "02-01-2006"
)

// ChangeDateFormat converts a date given as YYYY-MM-DD into the DD-MM-YYYY
// format used in AEAT payloads.
func ChangeDateFormat(date string) (string, error) {
	t, err := time.Parse(isoDateLayout, date)
	if err != nil {
		return "", errors.Wrapf(err, "invalid date %q", date)
	}
	return t.Format(aeatDateLayout), nil
}

// A Dater is a value with a calendar year and month, such as time.Time or
// dates.Date.
type Dater interface {
	Year() int
	Month() time.Month
}

// FiscalYear returns the fiscal year of the given date
func FiscalYear(date Dater) int {
	return date.Year()
}

// FiscalPeriod returns the month of the given date as a two digits string
func FiscalPeriod(date Dater) string {
	return fmt.Sprintf("%02d", int(date.Month()))
}
