package engine

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tartampluch/go-age/internal/config"
)

var (
	// ErrInvalidDate is returned when an input does not parse to a real calendar day.
	ErrInvalidDate = errors.New(config.ErrInvalidDate)

	// ErrFutureBirthDate is returned when the birth date is after the reference date.
	ErrFutureBirthDate = errors.New(config.ErrFutureBirthDate)
)

// AgeResult is the elapsed calendar time between a birth date and a reference date.
type AgeResult struct {
	Years  int
	Months int // 0-11
	Days   int // 0-30
}

// IsZero reports whether birth and reference fall on the same day.
func (r AgeResult) IsZero() bool {
	return r == AgeResult{}
}

// String renders the English summary, e.g. "23 years, 11 months, 26 days".
// Zero components are omitted.
func (r AgeResult) String() string {
	var parts []string
	if r.Years != 0 {
		parts = append(parts, plural(r.Years, config.FallbackYear, config.FallbackYears))
	}
	if r.Months != 0 {
		parts = append(parts, plural(r.Months, config.FallbackMonth, config.FallbackMonths))
	}
	if r.Days != 0 {
		parts = append(parts, plural(r.Days, config.FallbackDay, config.FallbackDays))
	}
	if len(parts) == 0 {
		return config.FallbackLessThanDay
	}
	return strings.Join(parts, config.FallbackSeparator)
}

func plural(n int, one, other string) string {
	if n == 1 {
		return fmt.Sprintf(one, n)
	}
	return fmt.Sprintf(other, n)
}

// Calculate parses both YYYY-MM-DD strings and computes the age at reference.
func Calculate(reference, birth string) (AgeResult, error) {
	ref, err := ParseDate(reference)
	if err != nil {
		return AgeResult{}, err
	}
	dob, err := ParseDate(birth)
	if err != nil {
		return AgeResult{}, err
	}
	return ComputeAge(ref, dob)
}

// ComputeAge subtracts birth from reference field by field, borrowing days and months.
//
// A day borrow adds the length of the month preceding the reference month (in the
// reference year), not the length of the birth month. When that month is February and
// the birth day is 29-31, one borrow is not enough and the month before it is borrowed too.
func ComputeAge(reference, birth CalendarDate) (AgeResult, error) {
	if birth.After(reference) {
		return AgeResult{}, ErrFutureBirthDate
	}

	years := reference.Year - birth.Year
	months := int(reference.Month) - int(birth.Month)
	days := reference.Day - birth.Day

	for back := 1; days < 0; back++ {
		months--
		days += daysInMonth(reference.Year, reference.Month-time.Month(back))
	}

	if months < 0 {
		years--
		months += config.MonthsPerYear
	}

	return AgeResult{Years: years, Months: months, Days: days}, nil
}
