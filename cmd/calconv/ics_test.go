package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/emersion/go-ical"

	"github.com/rabitt1ove/worldcal"
)

func decodeEvent(t *testing.T, r io.Reader) ical.Event {
	t.Helper()
	cal, err := ical.NewDecoder(r).Decode()
	if err != nil {
		t.Fatalf("decoding iCalendar: %v", err)
	}
	events := cal.Events()
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	return events[0]
}

func eventText(t *testing.T, ev ical.Event, name string) string {
	t.Helper()
	s, err := ev.Props.Text(name)
	if err != nil {
		t.Fatalf("%s: %v", name, err)
	}
	return s
}

func TestWriteICS(t *testing.T) {
	t.Parallel()

	tr, err := newTranslator("en", slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatal(err)
	}
	at, err := worldcal.FromTime(time.Date(2024, time.October, 3, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	rows := []row{
		{id: worldcal.Hebrew, era: "1", date: "5785-01-01", notes: "first", ok: true},
		{id: worldcal.UmAlQura, notes: "outside"},
		{id: worldcal.Gregorian, era: "A.D.", date: "2024-10-03", ok: true},
	}
	now := time.Date(2024, time.October, 1, 9, 30, 0, 0, time.FixedZone("JST", 9*60*60))

	var buf bytes.Buffer
	if err := writeICS(&buf, at, rows, tr, now); err != nil {
		t.Fatal(err)
	}
	ev := decodeEvent(t, &buf)

	if got := eventText(t, ev, ical.PropUID); got != "20241003@worldcal" {
		t.Errorf("UID = %q", got)
	}
	if got := eventText(t, ev, ical.PropSummary); got != "2024-10-03 in 2 calendars" {
		t.Errorf("SUMMARY = %q", got)
	}
	want := "hebrew: 1 5785-01-01 (first)\ngregorian: A.D. 2024-10-03"
	if got := eventText(t, ev, ical.PropDescription); got != want {
		t.Errorf("DESCRIPTION = %q, want %q", got, want)
	}
	start, err := ev.DateTimeStart(time.UTC)
	if err != nil {
		t.Fatal(err)
	}
	if !start.Equal(time.Date(2024, time.October, 3, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("DTSTART = %v", start)
	}
	if p := ev.Props.Get(ical.PropDateTimeStamp); p == nil || p.Value != "20241001T003000Z" {
		t.Errorf("DTSTAMP = %v", p)
	}
}

func TestRun_ICS(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.ics")
	runCommand(t, "-date", "2024-10-03", "-calendar", "hebrew,gregorian", "-ics", path)

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	desc := eventText(t, decodeEvent(t, f), ical.PropDescription)

	for _, want := range []string{`hebrew: 1 5785-01-01 (א' תשפ"ה)`, "gregorian: A.D. 2024-10-03 (leap year)"} {
		if !strings.Contains(desc, want) {
			t.Errorf("description %q lacks %q", desc, want)
		}
	}
}

func TestRun_ICSUnwritable(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "out.ics")
	var stdout, stderr bytes.Buffer
	err := run([]string{"-date", "2024-10-03", "-ics", path}, &stdout, &stderr)
	if err == nil || !strings.Contains(err.Error(), "creating") {
		t.Errorf("error = %v, want a create failure", err)
	}
}
