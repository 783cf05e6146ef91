package worldcal

import (
	"errors"
	"testing"
	"time"
)

func defaultCalendar(t *testing.T, id CalendarID) Calendar {
	t.Helper()
	cal, err := Default(id)
	if err != nil {
		t.Fatalf("Default(%v): %v", id, err)
	}
	return cal
}

func TestWeekOfYear(t *testing.T) {
	t.Parallel()

	greg := defaultCalendar(t, Gregorian)
	tests := []struct {
		name     string
		at       TimePoint
		rule     WeekRule
		firstDay time.Weekday
		want     int
	}{
		{"ISO: Friday January 1 belongs to week 53", tp(2021, time.January, 1), FirstFourDayWeek, time.Monday, 53},
		{"ISO: Monday January 1", tp(2024, time.January, 1), FirstFourDayWeek, time.Monday, 1},
		{"ISO: December 31 stays in its year", tp(2024, time.December, 31), FirstFourDayWeek, time.Monday, 53},
		{"full week: partial days fall back", tp(2024, time.January, 1), FirstFullWeek, time.Sunday, 53},
		{"full week: first Sunday", tp(2024, time.January, 7), FirstFullWeek, time.Sunday, 1},
		{"first day: short week", tp(2024, time.January, 6), FirstDay, time.Sunday, 1},
		{"first day: second week", tp(2024, time.January, 7), FirstDay, time.Sunday, 2},
		{"first day: year end", tp(2024, time.December, 31), FirstDay, time.Sunday, 53},
		{"first supported day, full week", MinTimePoint, FirstFullWeek, time.Sunday, 53},
		{"first supported day, four days", MinTimePoint, FirstFourDayWeek, time.Monday, 1},
		{"first supported day, first day", MinTimePoint, FirstDay, time.Sunday, 1},
		{"last supported day", MaxTimePoint, FirstFourDayWeek, time.Monday, 52},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WeekOfYear(greg, tt.at, tt.rule, tt.firstDay)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("WeekOfYear = %d, want %d", got, tt.want)
			}
		})
	}
}

// For a Monday start and the four-day rule the Gregorian result matches ISO
// 8601, except in the last days of December, which stay in their year.
func TestWeekOfYear_MatchesISOWeek(t *testing.T) {
	t.Parallel()

	greg := defaultCalendar(t, Gregorian)
	for d := time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC); d.Year() < 2040; d = d.AddDate(0, 0, 1) {
		isoYear, isoWeek := d.ISOWeek()
		if isoYear > d.Year() {
			continue
		}
		at, err := FromTime(d)
		if err != nil {
			t.Fatal(err)
		}
		got, err := WeekOfYear(greg, at, FirstFourDayWeek, time.Monday)
		if err != nil {
			t.Fatal(err)
		}
		if got != isoWeek {
			t.Fatalf("WeekOfYear(%s) = %d, ISO week %d", d.Format(time.DateOnly), got, isoWeek)
		}
	}
}

func TestWeekOfYear_OtherCalendars(t *testing.T) {
	t.Parallel()

	hebrew := defaultCalendar(t, Hebrew)
	tests := []struct {
		name string
		at   TimePoint
		rule WeekRule
		want int
	}{
		// 1 Tishrei 5785 (2024-10-03) is a Thursday.
		{"new year", tp(2024, time.October, 3), FirstDay, 1},
		{"first Sunday", tp(2024, time.October, 6), FirstDay, 2},
		// The first days of 5785 belong to the last week of 5784.
		{"partial first week", tp(2024, time.October, 3), FirstFullWeek, 55},
	}
	for _, tt := range tests {
		got, err := WeekOfYear(hebrew, tt.at, tt.rule, time.Sunday)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("%s: WeekOfYear = %d, want %d", tt.name, got, tt.want)
		}
	}

	_, err := WeekOfYear(defaultCalendar(t, UmAlQura), tp(1800, time.January, 1), FirstDay, time.Sunday)
	if !errors.Is(err, ErrDomainRange) {
		t.Errorf("WeekOfYear before the table error = %v, want ErrDomainRange", err)
	}
}

func TestWeekOfYear_FirstSupportedDayOfEveryCalendar(t *testing.T) {
	t.Parallel()

	for _, cal := range allCalendars(t) {
		for _, rule := range []WeekRule{FirstDay, FirstFullWeek, FirstFourDayWeek} {
			for day := time.Sunday; day <= time.Saturday; day++ {
				got, err := WeekOfYear(cal, cal.MinSupported(), rule, day)
				if err != nil {
					t.Fatalf("%s rule %d day %s: %v", cal.ID(), rule, day, err)
				}
				if got < 1 || got > 56 {
					t.Errorf("%s rule %d day %s: week %d", cal.ID(), rule, day, got)
				}
			}
		}
	}
}

func TestWeekOfYear_InvalidArguments(t *testing.T) {
	t.Parallel()

	greg := defaultCalendar(t, Gregorian)
	at := tp(2024, time.June, 15)

	tests := []struct {
		rule     WeekRule
		firstDay time.Weekday
	}{
		{FirstDay, time.Weekday(7)},
		{FirstDay, time.Weekday(-1)},
		{WeekRule(5), time.Sunday},
	}
	for _, tt := range tests {
		if _, err := WeekOfYear(greg, at, tt.rule, tt.firstDay); !errors.Is(err, ErrDomainRange) {
			t.Errorf("WeekOfYear(rule %d, day %d) error = %v, want ErrDomainRange", tt.rule, tt.firstDay, err)
		}
	}
}
