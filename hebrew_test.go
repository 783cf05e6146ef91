package worldcal

import (
	"errors"
	"testing"
	"time"
)

func TestHebrew_Dates(t *testing.T) {
	t.Parallel()

	cal := NewHebrewCalendar()
	tests := []struct {
		name             string
		at               TimePoint
		year, month, day int
	}{
		{"first supported day", tp(1583, time.January, 1), 5343, 4, 7},
		{"Rosh Hashanah 5784", tp(2023, time.September, 16), 5784, 1, 1},
		{"20 Tevet 5784", tp(2024, time.January, 1), 5784, 4, 20},
		{"Purim 5784", tp(2024, time.March, 24), 5784, 7, 14},
		{"Passover 5784", tp(2024, time.April, 23), 5784, 8, 15},
		{"last day of 5784", tp(2024, time.October, 2), 5784, 13, 29},
		{"Rosh Hashanah 5785", tp(2024, time.October, 3), 5785, 1, 1},
		{"Rosh Hashanah 5786", tp(2025, time.September, 23), 5786, 1, 1},
		{"last supported day", tp(2239, time.September, 29), 5999, 13, 29},
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

func TestHebrew_YearShapes(t *testing.T) {
	t.Parallel()

	cal := NewHebrewCalendar()
	tests := []struct {
		year      int
		leap      bool
		days      int
		months    int
		leapMonth int
	}{
		{5784, true, 383, 13, 7},
		{5785, false, 355, 12, 0},
	}
	for _, tt := range tests {
		leap, err := cal.IsLeapYear(tt.year, CurrentEra)
		if err != nil {
			t.Fatal(err)
		}
		days, _ := cal.DaysInYear(tt.year, CurrentEra)
		months, _ := cal.MonthsInYear(tt.year, CurrentEra)
		leapMonth, _ := cal.LeapMonth(tt.year, CurrentEra)
		if leap != tt.leap || days != tt.days || months != tt.months || leapMonth != tt.leapMonth {
			t.Errorf("year %d: leap %v, %d days, %d months, leap month %d; want %v, %d, %d, %d",
				tt.year, leap, days, months, leapMonth, tt.leap, tt.days, tt.months, tt.leapMonth)
		}
	}

	// Every year length is one of the six year types.
	for y := hebrewFirstYear; y <= hebrewLastYear; y++ {
		days, err := cal.DaysInYear(y, CurrentEra)
		if err != nil {
			t.Fatal(err)
		}
		leap, _ := cal.IsLeapYear(y, CurrentEra)
		if leap && (days < 383 || days > 385) || !leap && (days < 353 || days > 355) {
			t.Errorf("year %d (leap %v) has %d days", y, leap, days)
		}
	}
}

func TestHebrew_LeapMonthsAndDays(t *testing.T) {
	t.Parallel()

	cal := NewHebrewCalendar()
	tests := []struct {
		year, month, day int
		leapMonth        bool
		leapDay          bool
	}{
		{5784, 6, 30, false, true}, // 30 Adar I
		{5784, 7, 1, true, true},   // Adar II
		{5784, 8, 1, false, false},
		{5785, 6, 29, false, false},
		{5785, 7, 1, false, false},
	}
	for _, tt := range tests {
		lm, err := cal.IsLeapMonth(tt.year, tt.month, CurrentEra)
		if err != nil {
			t.Fatal(err)
		}
		ld, err := cal.IsLeapDay(tt.year, tt.month, tt.day, CurrentEra)
		if err != nil {
			t.Fatal(err)
		}
		if lm != tt.leapMonth || ld != tt.leapDay {
			t.Errorf("%d-%02d-%02d: leap month %v, leap day %v; want %v, %v",
				tt.year, tt.month, tt.day, lm, ld, tt.leapMonth, tt.leapDay)
		}
	}

	if _, err := cal.IsLeapMonth(5785, 13, CurrentEra); !errors.Is(err, ErrDomainRange) {
		t.Errorf("month 13 of a common year error = %v, want ErrDomainRange", err)
	}
	if _, err := cal.DaysInMonth(5785, 6, CurrentEra); err != nil {
		t.Error(err)
	}
}

func TestHebrew_AddMonths(t *testing.T) {
	t.Parallel()

	cal := NewHebrewCalendar()
	at := func(y, m, d int) TimePoint {
		t.Helper()
		r, err := cal.ToTimePoint(y, m, d, 8, 30, 0, 0, CurrentEra)
		if err != nil {
			t.Fatal(err)
		}
		return r
	}

	tests := []struct {
		name   string
		from   TimePoint
		months int
		want   TimePoint
	}{
		{"into Adar II", at(5784, 5, 10), 2, at(5784, 7, 10)},
		{"across the new year", at(5784, 13, 1), 1, at(5785, 1, 1)},
		{"back to Elul", at(5785, 1, 1), -1, at(5784, 13, 1)},
		{"back a full leap year", at(5785, 1, 1), -13, at(5784, 1, 1)},
		{"back from Heshvan", at(5785, 2, 1), -14, at(5784, 1, 1)},
		{"clamps Adar I", at(5784, 6, 30), 13, at(5785, 6, 29)},
		{"nineteen years", at(5784, 1, 1), 235, at(5803, 1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cal.AddMonths(tt.from, tt.months)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				gy, gm, gd := decompose(t, cal, got)
				t.Errorf("AddMonths(%v, %d) = %d-%02d-%02d", tt.from, tt.months, gy, gm, gd)
			}
		})
	}

	if _, err := cal.AddMonths(at(5999, 13, 1), 1); !errors.Is(err, ErrResultOutOfRange) {
		t.Errorf("AddMonths past 5999 error = %v, want ErrResultOutOfRange", err)
	}
	if _, err := cal.AddMonths(at(5343, 5, 1), -2); !errors.Is(err, ErrResultOutOfRange) {
		t.Errorf("AddMonths before the first supported day error = %v, want ErrResultOutOfRange", err)
	}
	if _, err := cal.AddMonths(at(5784, 1, 1), maxMonthOffset+1); !errors.Is(err, ErrDomainRange) {
		t.Errorf("AddMonths with a huge offset error = %v, want ErrDomainRange", err)
	}
}

func TestHebrew_AddYears(t *testing.T) {
	t.Parallel()

	cal := NewHebrewCalendar()
	from, err := cal.ToTimePoint(5784, 13, 29, 0, 0, 0, 0, CurrentEra)
	if err != nil {
		t.Fatal(err)
	}
	got, err := cal.AddYears(from, 1)
	if err != nil {
		t.Fatal(err)
	}
	// Month 13 does not exist in 5785 and is clamped to Elul.
	if want := tp(2025, time.September, 22); got != want {
		t.Errorf("AddYears(5784-13-29, 1) = %v, want %v", got, want)
	}

	if _, err := cal.AddYears(from, 5999-5784+1); !errors.Is(err, ErrResultOutOfRange) {
		t.Errorf("AddYears past 5999 error = %v, want ErrResultOutOfRange", err)
	}
	if _, err := cal.AddYears(tp(1583, time.January, 1), -1); !errors.Is(err, ErrResultOutOfRange) {
		t.Errorf("AddYears before 5343 error = %v, want ErrResultOutOfRange", err)
	}
}

func TestHebrew_Bounds(t *testing.T) {
	t.Parallel()

	cal := NewHebrewCalendar()
	tests := []struct {
		name             string
		year, month, day int
		want             error
	}{
		{"before the first supported day", 5343, 4, 6, ErrResultOutOfRange},
		{"year 5342", 5342, 1, 1, ErrDomainRange},
		{"year 6000", 6000, 1, 1, ErrDomainRange},
		{"30 Elul", 5784, 13, 30, ErrDomainRange},
		{"month 0", 5784, 0, 1, ErrDomainRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cal.ToTimePoint(tt.year, tt.month, tt.day, 0, 0, 0, 0, CurrentEra)
			if !errors.Is(err, tt.want) {
				t.Errorf("ToTimePoint(%d, %d, %d) error = %v, want %v", tt.year, tt.month, tt.day, err, tt.want)
			}
		})
	}

	if got := cal.MaxSupported(); got != tp(2239, time.September, 30)-1 {
		t.Errorf("MaxSupported = %v", got)
	}
}

func TestFormatHebrewNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int
		want string
	}{
		{1, `א'`},
		{10, `י'`},
		{11, `י"א`},
		{15, `ט"ו`},
		{16, `ט"ז`},
		{17, `י"ז`},
		{30, `ל'`},
		{115, `קט"ו`},
		{400, `ת'`},
		{800, `ת"ת`},
		{999, `תתקצ"ט`},
		{5784, `תשפ"ד`},
		{5785, `תשפ"ה`},
	}
	for _, tt := range tests {
		got, err := FormatHebrewNumber(tt.n)
		if err != nil {
			t.Errorf("FormatHebrewNumber(%d): %v", tt.n, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FormatHebrewNumber(%d) = %s, want %s", tt.n, got, tt.want)
		}
	}

	for _, n := range []int{-1, 0, 1000, 5000, 6000} {
		if _, err := FormatHebrewNumber(n); !errors.Is(err, ErrDomainRange) {
			t.Errorf("FormatHebrewNumber(%d) error = %v, want ErrDomainRange", n, err)
		}
	}
}

func TestParseHebrewNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		s    string
		want int
	}{
		{`תשפ"ד`, 784},
		{"תשפ״ד", 784},
		{"תשפד", 784},
		{`ט"ו`, 15},
		{"ך", 20},
		{"תתק", 900},
		{`א'`, 1},
		{"א׳", 1},
	}
	for _, tt := range tests {
		got, err := ParseHebrewNumber(tt.s)
		if err != nil {
			t.Errorf("ParseHebrewNumber(%s): %v", tt.s, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHebrewNumber(%s) = %d, want %d", tt.s, got, tt.want)
		}
	}

	for _, s := range []string{"", `"`, "abc", "אב", "ככ", "יה", "יו", "תתתת"} {
		if _, err := ParseHebrewNumber(s); !errors.Is(err, ErrDomainRange) {
			t.Errorf("ParseHebrewNumber(%q) error = %v, want ErrDomainRange", s, err)
		}
	}
}

func TestHebrewNumber_FormatThenParse(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 999; n++ {
		s, err := FormatHebrewNumber(n)
		if err != nil {
			t.Fatalf("FormatHebrewNumber(%d): %v", n, err)
		}
		got, err := ParseHebrewNumber(s)
		if err != nil {
			t.Fatalf("ParseHebrewNumber(%s): %v", s, err)
		}
		if got != n {
			t.Errorf("ParseHebrewNumber(FormatHebrewNumber(%d)) = %d", n, got)
		}
	}
}
