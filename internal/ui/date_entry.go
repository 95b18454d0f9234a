package ui

import (
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-age/internal/config"
	"github.com/tartampluch/go-age/internal/engine"
)

// DateEntry is an Entry restricted to YYYY-MM-DD input.
// It embeds widget.Entry to inherit all standard behavior.
type DateEntry struct {
	widget.Entry
}

// NewDateEntry creates a DateEntry validating its content with engine.ParseDate.
func NewDateEntry() *DateEntry {
	entry := &DateEntry{}
	entry.ExtendBaseWidget(entry)
	entry.PlaceHolder = config.DateFormatISO
	entry.Validator = func(s string) error {
		_, err := engine.ParseDate(s)
		return err
	}
	return entry
}

// TypedRune accepts digits and '-' up to the length of a full date.
// Pasted text bypasses this filter; the Validator covers that case.
func (e *DateEntry) TypedRune(r rune) {
	if len(e.Text) >= config.DateEntryMaxLen {
		return
	}
	if (r >= '0' && r <= '9') || r == '-' {
		e.Entry.TypedRune(r)
	}
}

// Keyboard shows a numeric keypad on mobile devices.
func (e *DateEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}
