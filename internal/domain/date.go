package domain

import (
	"fmt"
	"regexp"
	"time"
)

// DateLayout is the canonical YYYY-MM-DD form used for every insight date.
const DateLayout = "2006-01-02"

// Calendar bounds accepted for month queries.
const (
	MinYear = 2020
	MaxYear = 2100
)

// KST is the fixed UTC+9 zone that defines the daily boundary.
var KST = time.FixedZone("KST", 9*60*60)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateDate reports whether s has the YYYY-MM-DD shape.
// Only the shape is checked; "2026-02-31" passes.
func ValidateDate(s string) error {
	if !datePattern.MatchString(s) {
		return NewValidationError("date", "must be YYYY-MM-DD")
	}
	return nil
}

// ValidateYearMonth checks the month query bounds.
func ValidateYearMonth(year, month int) error {
	var errs []FieldError
	if year < MinYear || year > MaxYear {
		errs = append(errs, FieldError{Field: "year", Message: fmt.Sprintf("must be between %d and %d", MinYear, MaxYear)})
	}
	if month < 1 || month > 12 {
		errs = append(errs, FieldError{Field: "month", Message: "must be between 1 and 12"})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// DateIn formats t as a calendar date in KST.
func DateIn(t time.Time) string {
	return t.In(KST).Format(DateLayout)
}

// Today returns the current KST date.
func Today(now time.Time) string {
	return DateIn(now)
}

// DaysBefore returns the KST date n days before now.
func DaysBefore(now time.Time, n int) string {
	return now.In(KST).AddDate(0, 0, -n).Format(DateLayout)
}

// MonthRange returns the first and last calendar date of the month.
func MonthRange(year, month int) (string, string) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first.Format(DateLayout), last.Format(DateLayout)
}
