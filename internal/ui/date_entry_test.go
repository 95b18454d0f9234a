package ui_test

import (
	"testing"

	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-age/internal/engine"
	"github.com/tartampluch/go-age/internal/ui"
)

func TestDateEntry_TypedRune(t *testing.T) {
	entry := ui.NewDateEntry()
	window := test.NewWindow(entry)
	defer window.Close()

	tests := []struct {
		name     string
		input    rune
		accepted bool
	}{
		{"Digit 0", '0', true},
		{"Digit 9", '9', true},
		{"Dash", '-', true},
		{"Letter a", 'a', false},
		{"Slash", '/', false},
		{"Space", ' ', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry.SetText("")
			entry.TypedRune(tt.input)

			if tt.accepted {
				assert.Equal(t, string(tt.input), entry.Text)
			} else {
				assert.Empty(t, entry.Text)
			}
		})
	}
}

func TestDateEntry_TypeFullDate(t *testing.T) {
	entry := ui.NewDateEntry()
	window := test.NewWindow(entry)
	defer window.Close()

	test.Type(entry, "2000/01/20 extra")
	assert.Equal(t, "20000120", entry.Text, "Separators other than '-' are dropped")

	entry.SetText("")
	test.Type(entry, "2000-01-20-99")
	assert.Equal(t, "2000-01-20", entry.Text, "Input stops at the length of a full date")
}

func TestDateEntry_Validator(t *testing.T) {
	entry := ui.NewDateEntry()

	assert.NoError(t, entry.Validator("2024-02-29"))
	assert.ErrorIs(t, entry.Validator("2023-02-29"), engine.ErrInvalidDate)
	assert.ErrorIs(t, entry.Validator(""), engine.ErrInvalidDate)
}

func TestDateEntry_Keyboard(t *testing.T) {
	entry := ui.NewDateEntry()
	assert.Equal(t, mobile.NumberKeyboard, entry.Keyboard())
}
