package worldcal

import (
	"errors"
	"testing"
	"time"
)

func TestPersian_Dates(t *testing.T) {
	t.Parallel()

	cal := NewPersianCalendar()
	tests := []struct {
		name             string
		at               TimePoint
		year, month, day int
	}{
		{"epoch", tp(622, time.March, 22), 1, 1, 1},
		{"last day of 1402", tp(2024, time.March, 19), 1402, 12, 29},
		{"Nowruz 1403", tp(2024, time.March, 20), 1403, 1, 1},
		{"30 Esfand 1403", tp(2025, time.March, 20), 1403, 12, 30},
		{"Nowruz 1404", tp(2025, time.March, 21), 1404, 1, 1},
		{"last supported day", tp(9999, time.December, 31), 9378, 10, 13},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, m, d := decompose(t, cal, tt.at)
			if y != tt.year || m != tt.month || d != tt.day {
				t.Fatalf("Decompose(%v) = %d-%02d-%02d, want %d-%02d-%02d", tt.at, y, m, d, tt.year, tt.month, tt.day)
			}
			back, err := cal.ToTimePoint(y, m, d, 0, 0, 0, 0, CurrentEra)
			if err != nil {
				t.Fatal(err)
			}
			if back != tt.at {
				t.Errorf("ToTimePoint(%d, %d, %d) = %v, want %v", y, m, d, back, tt.at)
			}
		})
	}
}

func TestPersian_LeapYears(t *testing.T) {
	t.Parallel()

	cal := NewPersianCalendar()
	for year, want := range map[int]bool{
		1395: true,
		1399: true,
		1402: false,
		1403: true,
		1404: false,
		1408: true,
	} {
		got, err := cal.IsLeapYear(year, CurrentEra)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", year, got, want)
		}
		days, _ := cal.DaysInYear(year, CurrentEra)
		if want && days != 366 || !want && days != 365 {
			t.Errorf("DaysInYear(%d) = %d", year, days)
		}
	}

	if ok, err := cal.IsLeapDay(1403, 12, 30, CurrentEra); err != nil || !ok {
		t.Errorf("IsLeapDay(1403, 12, 30) = %v, %v; want true", ok, err)
	}
	if _, err := cal.IsLeapDay(1402, 12, 30, CurrentEra); !errors.Is(err, ErrDomainRange) {
		t.Errorf("IsLeapDay(1402, 12, 30) error = %v, want ErrDomainRange", err)
	}
}

func TestPersian_MonthLengths(t *testing.T) {
	t.Parallel()

	cal := NewPersianCalendar()
	want := []int{31, 31, 31, 31, 31, 31, 30, 30, 30, 30, 30, 29}
	for m, n := range want {
		got, err := cal.DaysInMonth(1402, m+1, CurrentEra)
		if err != nil {
			t.Fatal(err)
		}
		if got != n {
			t.Errorf("DaysInMonth(1402, %d) = %d, want %d", m+1, got, n)
		}
	}
}

func TestPersian_FinalYear(t *testing.T) {
	t.Parallel()

	cal := NewPersianCalendar()
	if n, _ := cal.DaysInYear(9378, CurrentEra); n != 289 {
		t.Errorf("DaysInYear(9378) = %d, want 289", n)
	}
	if n, _ := cal.MonthsInYear(9378, CurrentEra); n != 10 {
		t.Errorf("MonthsInYear(9378) = %d, want 10", n)
	}
	if n, _ := cal.DaysInMonth(9378, 10, CurrentEra); n != 13 {
		t.Errorf("DaysInMonth(9378, 10) = %d, want 13", n)
	}

	for _, tt := range []struct{ month, day int }{{11, 1}, {10, 14}} {
		if _, err := cal.ToTimePoint(9378, tt.month, tt.day, 0, 0, 0, 0, CurrentEra); !errors.Is(err, ErrDomainRange) {
			t.Errorf("ToTimePoint(9378, %d, %d) error = %v, want ErrDomainRange", tt.month, tt.day, err)
		}
	}
	if _, err := cal.AddMonths(MaxTimePoint, 1); !errors.Is(err, ErrResultOutOfRange) {
		t.Errorf("AddMonths(MaxTimePoint, 1) error = %v, want ErrResultOutOfRange", err)
	}
	if _, err := cal.AddYears(tp(622, time.June, 1), -1); !errors.Is(err, ErrResultOutOfRange) {
		t.Errorf("AddYears before year 1 error = %v, want ErrResultOutOfRange", err)
	}
}

func TestPersian_Arithmetic(t *testing.T) {
	t.Parallel()

	cal := NewPersianCalendar()
	at := func(y, m, d int) TimePoint {
		t.Helper()
		r, err := cal.ToTimePoint(y, m, d, 18, 0, 0, 0, CurrentEra)
		if err != nil {
			t.Fatal(err)
		}
		return r
	}

	tests := []struct {
		name string
		op   func(TimePoint) (TimePoint, error)
		from TimePoint
		want TimePoint
	}{
		{
			"31 Shahrivar to Mehr",
			func(t TimePoint) (TimePoint, error) { return cal.AddMonths(t, 1) },
			at(1403, 6, 31), at(1403, 7, 30),
		},
		{
			"back across Nowruz",
			func(t TimePoint) (TimePoint, error) { return cal.AddMonths(t, -1) },
			at(1403, 1, 1), at(1402, 12, 1),
		},
		{
			"back a full year",
			func(t TimePoint) (TimePoint, error) { return cal.AddMonths(t, -12) },
			at(1403, 1, 15), at(1402, 1, 15),
		},
		{
			"leap day to a common year",
			func(t TimePoint) (TimePoint, error) { return cal.AddYears(t, 1) },
			at(1403, 12, 30), at(1404, 12, 29),
		},
		{
			"leap day to the previous year",
			func(t TimePoint) (TimePoint, error) { return cal.AddYears(t, -1) },
			at(1403, 12, 30), at(1402, 12, 29),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.op(tt.from)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
