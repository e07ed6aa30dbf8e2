package insight

import (
	"fmt"
	"time"

	"github.com/heartmarshall/insight-calendar/internal/domain"
)

const (
	DefaultRecentLimit = 7
	MaxRecentLimit     = 31

	DefaultSeedDays = 7
	MaxSeedDays     = 366
)

// SeedInput selects which dates to seed. A non-empty Date seeds only that
// date; otherwise Days dates ending today are seeded.
type SeedInput struct {
	Days int
	Date string
}

func (i SeedInput) Validate() error {
	var errs []domain.FieldError

	if i.Date != "" {
		if err := validateCalendarDate(i.Date); err != nil {
			errs = append(errs, domain.FieldError{Field: "date", Message: "must be a valid YYYY-MM-DD date"})
		}
	} else if i.Days < 1 || i.Days > MaxSeedDays {
		errs = append(errs, domain.FieldError{Field: "days", Message: fmt.Sprintf("must be between 1 and %d", MaxSeedDays)})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ImportItem is one insight read from an import file.
type ImportItem struct {
	Date                    string `yaml:"date" json:"date"`
	domain.GeneratedInsight `yaml:",inline"`
}

func validateImport(items []ImportItem) error {
	var errs []domain.FieldError
	seen := make(map[string]struct{}, len(items))

	if len(items) == 0 {
		errs = append(errs, domain.FieldError{Field: "items", Message: "must not be empty"})
	}
	for i, it := range items {
		field := fmt.Sprintf("items[%d]", i)
		if err := validateCalendarDate(it.Date); err != nil {
			errs = append(errs, domain.FieldError{Field: field + ".date", Message: "must be a valid YYYY-MM-DD date"})
		} else if _, dup := seen[it.Date]; dup {
			errs = append(errs, domain.FieldError{Field: field + ".date", Message: "duplicate date"})
		}
		seen[it.Date] = struct{}{}

		if err := it.GeneratedInsight.Validate(); err != nil {
			errs = append(errs, domain.FieldError{Field: field, Message: err.Error()})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// validateCalendarDate checks the shape and that the date exists.
func validateCalendarDate(date string) error {
	if err := domain.ValidateDate(date); err != nil {
		return err
	}
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return domain.NewValidationError("date", "not a calendar date")
	}
	return nil
}
