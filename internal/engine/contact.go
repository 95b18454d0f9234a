package engine

import (
	"crypto/sha256"
	"fmt"

	"github.com/tartampluch/go-age/internal/config"
)

// Contact is the part of a vCard the calculator cares about.
type Contact struct {
	// Name is the display name (Formatted Name or Structured Name).
	Name string

	// BirthDate is the full date of birth. Cards without a year never become a Contact.
	BirthDate CalendarDate
}

// UID returns a deterministic identifier, stable across recalculations.
func (c Contact) UID() string {
	input := fmt.Sprintf(config.FormatHashInput, c.Name, c.BirthDate, config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf("%x", hash[:config.UIDHashLength])
}
