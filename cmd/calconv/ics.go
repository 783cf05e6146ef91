package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/emersion/go-ical"

	"github.com/rabitt1ove/worldcal"
)

const (
	icsProductID = "-//worldcal//calconv//EN"
	icsVersion   = "2.0"
	icsDomain    = "worldcal"
)

// writeICS writes the converted rows as a single all-day event on the
// Gregorian date of at. Rows outside their calendar's range are left out of
// the description.
func writeICS(w io.Writer, at worldcal.TimePoint, rows []row, tr *translator, now time.Time) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, icsVersion)
	cal.Props.SetText(ical.PropProductID, icsProductID)
	cal.Props.SetText(ical.PropCalendarScale, "GREGORIAN")

	day := at.Time()
	var lines []string
	for _, r := range rows {
		if !r.ok {
			continue
		}
		line := fmt.Sprintf("%s: %s %s", r.id, r.era, r.date)
		if r.notes != "" {
			line += " (" + r.notes + ")"
		}
		lines = append(lines, line)
	}

	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, fmt.Sprintf("%s@%s", day.Format("20060102"), icsDomain))
	event.Props.SetDateTime(ical.PropDateTimeStamp, now.UTC())
	event.Props.SetDate(ical.PropDateTimeStart, day)
	event.Props.SetText(ical.PropSummary, tr.msg(msgEventSummary, map[string]any{
		"Date":  day.Format(time.DateOnly),
		"Count": len(lines),
	}))
	event.Props.SetText(ical.PropDescription, strings.Join(lines, "\n"))
	cal.Children = append(cal.Children, event.Component)

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("encoding iCalendar: %w", err)
	}
	return nil
}

func writeICSFile(path string, at worldcal.TimePoint, rows []row, tr *translator, now time.Time) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()
	return writeICS(f, at, rows, tr, now)
}
