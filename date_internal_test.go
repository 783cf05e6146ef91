package worldcal

import (
	"testing"
	"time"
)

// tp returns the TimePoint of midnight on a proleptic Gregorian date.
func tp(year int, month time.Month, day int) TimePoint {
	return date{year, month, day}.timePoint()
}

func TestDateBefore_EqualDates(t *testing.T) {
	t.Parallel()

	d1 := date{year: 2026, month: time.January, day: 1}
	if d1.before(d1) {
		t.Error("equal dates: d.before(d) should be false")
	}
}

func TestDateBefore_SameYearSameMonth(t *testing.T) {
	t.Parallel()

	d1 := date{year: 2026, month: time.January, day: 1}
	d2 := date{year: 2026, month: time.January, day: 15}
	if !d1.before(d2) {
		t.Error("Jan 1 should be before Jan 15")
	}
	if d2.before(d1) {
		t.Error("Jan 15 should not be before Jan 1")
	}
}

func TestDateBefore_DifferentYear(t *testing.T) {
	t.Parallel()

	d1 := date{year: 2025, month: time.December, day: 31}
	d2 := date{year: 2026, month: time.January, day: 1}
	if !d1.before(d2) {
		t.Error("2025-12-31 should be before 2026-01-01")
	}
}

func TestGregorianDays(t *testing.T) {
	t.Parallel()

	tests := []struct {
		d    date
		want int64
	}{
		{date{1, time.January, 1}, 0},
		{date{1, time.December, 31}, 364},
		{date{2, time.January, 1}, 365},
		{date{1970, time.January, 1}, 719162},
		{date{2000, time.March, 1}, 730179},
		{date{9999, time.December, 31}, daysTo10000 - 1},
	}
	for _, tt := range tests {
		if got := tt.d.days(); got != tt.want {
			t.Errorf("%s.days() = %d, want %d", tt.d, got, tt.want)
		}
	}
}

func TestGregorianFromDays_MatchesTime(t *testing.T) {
	t.Parallel()

	epoch := time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
	for days := int64(0); days < daysTo10000; days += 997 {
		y, m, d, doy := gregorianFromDays(days)
		want := epoch.AddDate(0, 0, int(days))
		if y != want.Year() || time.Month(m) != want.Month() || d != want.Day() || doy != want.YearDay() {
			t.Fatalf("gregorianFromDays(%d) = %04d-%02d-%02d (day %d), want %s (day %d)",
				days, y, m, d, doy, want.Format("2006-01-02"), want.YearDay())
		}
		if back := gregorianDays(y, m, d); back != days {
			t.Fatalf("gregorianDays(%04d-%02d-%02d) = %d, want %d", y, m, d, back, days)
		}
	}
}

func TestGregorianFromDays_YearEnds(t *testing.T) {
	t.Parallel()

	for _, year := range []int{1, 4, 100, 400, 1900, 2000, 2023, 2024, 9999} {
		days := date{year, time.December, 31}.days()
		y, m, d, doy := gregorianFromDays(days)
		wantDOY := 365
		if isGregorianLeapYear(year) {
			wantDOY = 366
		}
		if y != year || m != 12 || d != 31 || doy != wantDOY {
			t.Errorf("gregorianFromDays(Dec 31 %d) = %d-%02d-%02d (day %d)", year, y, m, d, doy)
		}
	}
}

func TestDayOfWeek(t *testing.T) {
	t.Parallel()

	tests := []struct {
		d    date
		want time.Weekday
	}{
		{date{1, time.January, 1}, time.Monday},
		{date{1970, time.January, 1}, time.Thursday},
		{date{2024, time.February, 29}, time.Thursday},
		{date{9999, time.December, 31}, time.Friday},
	}
	for _, tt := range tests {
		if got := dayOfWeek(tt.d.days()); got != tt.want {
			t.Errorf("dayOfWeek(%s) = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestDateString(t *testing.T) {
	t.Parallel()

	if got := (date{622, time.July, 18}).String(); got != "0622-07-18" {
		t.Errorf("String() = %q, want %q", got, "0622-07-18")
	}
}
