package ui

import (
	"errors"

	"github.com/tartampluch/go-age/internal/config"
	"github.com/tartampluch/go-age/internal/engine"
)

// ErrMissingBirthDate is reported when Calculate is requested with an empty birth date.
var ErrMissingBirthDate = errors.New(config.ErrMissingBirth)

// Calculator holds the form values and the outcome of the last calculation.
// It is owned by the UI goroutine.
type Calculator struct {
	ReferenceDate string
	BirthDate     string

	// Result is nil until a calculation succeeds and after any failure or reset.
	Result *engine.AgeResult
	Err    error
}

// NewCalculator starts with today's date as reference and an empty birth date.
func NewCalculator(clock engine.Clock) *Calculator {
	return &Calculator{ReferenceDate: engine.Today(clock).String()}
}

// Calculate computes the age for the current inputs.
// On failure the previous result is discarded and the error is kept in Err.
func (c *Calculator) Calculate() error {
	if c.BirthDate == "" {
		return c.fail(ErrMissingBirthDate)
	}

	res, err := engine.Calculate(c.ReferenceDate, c.BirthDate)
	if err != nil {
		return c.fail(err)
	}

	c.Result = &res
	c.Err = nil
	return nil
}

func (c *Calculator) fail(err error) error {
	c.Result = nil
	c.Err = err
	return err
}

// Reset clears the birth date and any outcome. The reference date is kept.
func (c *Calculator) Reset() {
	c.BirthDate = ""
	c.Result = nil
	c.Err = nil
}

// CanCalculate reports whether the Calculate action is available.
func (c *Calculator) CanCalculate() bool {
	return c.BirthDate != ""
}

// CanReset reports whether there is anything to reset.
func (c *Calculator) CanReset() bool {
	return c.BirthDate != "" || c.Result != nil
}
