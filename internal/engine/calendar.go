package engine

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-age/internal/config"
)

// CalendarGenerator renders a contact's birthdays as an iCalendar feed.
type CalendarGenerator struct {
	Clock Clock // Stamps DTSTAMP.

	// FormatSummary allows the UI to inject localized strings into the logic layer.
	// age is 0 for the day of birth itself.
	FormatSummary func(age int) string
}

// Generate emits one all-day event per birthday in the year before, the year of and
// the year after reference. Years before the birth year are skipped.
func (g *CalendarGenerator) Generate(c Contact, reference CalendarDate) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	refreshProp := ical.NewProp(config.PropRefresh)
	refreshProp.SetDuration(config.DefaultICalRefresh)
	cal.Props.Set(refreshProp)

	now := g.Clock.Now()
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	uidBase := c.UID()
	birth := c.BirthDate
	loc := now.Location()

	for _, y := range []int{reference.Year - 1, reference.Year, reference.Year + 1} {
		if y < birth.Year {
			continue
		}
		age := y - birth.Year

		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, uidBase, y, config.ICalDomain))
		event.Props.SetText(config.PropSummary, g.summary(age))

		// time.Date moves Feb 29 to Mar 1 in common years.
		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(CalendarDate{Year: y, Month: birth.Month, Day: birth.Day}.Time(loc))
		event.Props.Set(dtStartProp)
		event.Props.Set(dtStampProp)

		cal.Children = append(cal.Children, event.Component)
	}

	if len(cal.Children) == 0 {
		return []byte(config.StubVCalendar), nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	slog.Debug(config.MsgCalendarBuilt,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyEvents, len(cal.Children),
		config.LogKeySizeBytes, buf.Len())
	return buf.Bytes(), nil
}

func (g *CalendarGenerator) summary(age int) string {
	if g.FormatSummary != nil {
		return g.FormatSummary(age)
	}
	if age == 0 {
		return config.FallbackSummaryBirth
	}
	return fmt.Sprintf(config.FallbackSummaryAge, age)
}
