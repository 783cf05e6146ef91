package main

import (
	"fmt"
	"math"
	"strings"
	"time"

	lunar "github.com/6tail/lunar-go/calendar"

	"github.com/rabitt1ove/worldcal"
	"github.com/rabitt1ove/worldcal/internal/astro"
)

// lunisolarYear is a computed Chinese lunar year.
type lunisolarYear struct {
	year     int
	leapHost int // month repeated by the leap month, 0 when none
	newYear  int64
	months   []int // month lengths in slot order
}

// monthLabel names a lunation: its month number and whether it is the leap
// month repeating that number.
type monthLabel struct {
	month int
	leap  bool
	set   bool
}

var firstMonth = monthLabel{month: 1, set: true}

// beijingZone is the offset in hours of the civil day the published tables
// use for every year, including those before China adopted UTC+8.
const beijingZone = 8

func beijingDay(moment float64) int64 {
	return int64(math.Floor(moment + beijingZone/24.0))
}

// libraryLunisolar reads the lunar years beginning in first through last from
// the lunar-go calendar.
func libraryLunisolar(first, last int) ([]lunisolarYear, error) {
	years := make([]lunisolarYear, 0, last-first+1)
	for y := first; y <= last; y++ {
		ly := lunisolarYear{year: y}
		for e := lunar.NewLunarYear(y).GetMonthsInYear().Front(); e != nil; e = e.Next() {
			m := e.Value.(*lunar.LunarMonth)
			if len(ly.months) == 0 {
				if m.GetMonth() != 1 {
					return nil, fmt.Errorf("year %d starts with month %d", y, m.GetMonth())
				}
				s := lunar.NewSolarFromJulianDay(m.GetFirstJulianDay())
				ly.newYear = astro.DayNumber(s.GetYear(), time.Month(s.GetMonth()), s.GetDay())
			}
			if m.IsLeap() {
				ly.leapHost = -m.GetMonth()
			}
			ly.months = append(ly.months, m.GetDayCount())
		}
		if err := checkLunisolarYear(ly); err != nil {
			return nil, err
		}
		if n := len(years); n > 0 {
			prev := years[n-1]
			if end := prev.newYear + int64(sum(prev.months)); end != ly.newYear {
				return nil, fmt.Errorf("year %d starts %d days after year %d ends", y, ly.newYear-end, y-1)
			}
		}
		years = append(years, ly)
	}
	return years, nil
}

func sum(ns []int) int {
	total := 0
	for _, n := range ns {
		total += n
	}
	return total
}

type solarTerm struct {
	day       int64
	longitude float64
}

// majorTerms returns the days of the major solar terms (multiples of 30
// degrees of solar longitude) from start to end.
func majorTerms(start, end float64) []solarTerm {
	var terms []solarTerm
	lon := astro.SolarLongitude(start)
	target := math.Mod((math.Floor(lon/30)+1)*30, 360)
	approx := start + math.Mod(target-lon+360, 360)*astro.MeanTropicalYear/360
	for {
		m := astro.SolarTermMoment(target, approx)
		if m > end {
			return terms
		}
		terms = append(terms, solarTerm{beijingDay(m), target})
		target = math.Mod(target+30, 360)
		approx = m + astro.MeanTropicalYear/12
	}
}

// buildLunisolar computes the lunar years beginning in first through last.
// Months are numbered from the winter solstice: the lunation holding it is
// month 11, and when thirteen lunations separate two solstice months the
// first without a major term repeats the month before it.
func buildLunisolar(first, last int) ([]lunisolarYear, error) {
	start := float64(astro.DayNumber(first-2, time.November, 1))
	end := float64(astro.DayNumber(last+2, time.March, 1))

	var moons []int64
	for _, m := range astro.NewMoonsBetween(start, end) {
		moons = append(moons, beijingDay(m))
	}
	terms := majorTerms(float64(astro.DayNumber(first-2, time.October, 1)), end)

	solstices := make(map[int]int64)
	var solsticeYears []int
	for _, t := range terms {
		if t.longitude == 270 {
			y, _, _ := astro.DateOf(t.day)
			solstices[y] = t.day
			solsticeYears = append(solsticeYears, y)
		}
	}

	hasTerm := make([]bool, len(moons)-1)
	for i := range hasTerm {
		for _, t := range terms {
			if moons[i] <= t.day && t.day < moons[i+1] {
				hasTerm[i] = true
				break
			}
		}
	}

	lunationOf := func(day int64) int {
		i := -1
		for j, m := range moons {
			if m <= day {
				i = j
			}
		}
		return i
	}

	labels := make([]monthLabel, len(moons))
	for _, y := range solsticeYears[1:] {
		i11, j11 := lunationOf(solstices[y-1]), lunationOf(solstices[y])
		if i11 < 0 {
			return nil, fmt.Errorf("no new moon before the %d solstice", y-1)
		}
		if j11 >= len(hasTerm) {
			break
		}
		leap := j11-i11 == 13
		if !labels[i11].set {
			labels[i11] = monthLabel{month: 11, set: true}
		}
		m, leapUsed := 11, false
		for i := i11 + 1; i < j11; i++ {
			if leap && !leapUsed && !hasTerm[i] {
				labels[i] = monthLabel{month: m, leap: true, set: true}
				leapUsed = true
				continue
			}
			m = m%12 + 1
			labels[i] = monthLabel{month: m, set: true}
		}
		if m != 10 {
			return nil, fmt.Errorf("solstice year %d ends on month %d, want 10", y, m)
		}
		labels[j11] = monthLabel{month: 11, set: true}
	}

	years := make([]lunisolarYear, 0, last-first+1)
	for y := first; y <= last; y++ {
		i := -1
		for j, l := range labels {
			if g, _, _ := astro.DateOf(moons[j]); l == firstMonth && g == y {
				if i >= 0 {
					return nil, fmt.Errorf("year %d has two first months", y)
				}
				i = j
			}
		}
		if i < 0 {
			return nil, fmt.Errorf("year %d has no first month", y)
		}

		ly := lunisolarYear{year: y, newYear: moons[i]}
		for j := i; ; {
			ly.months = append(ly.months, int(moons[j+1]-moons[j]))
			if labels[j].leap {
				ly.leapHost = labels[j].month
			}
			j++
			if labels[j] == firstMonth {
				break
			}
			if j+1 >= len(moons) {
				return nil, fmt.Errorf("year %d runs past the computed lunations", y)
			}
		}
		if err := checkLunisolarYear(ly); err != nil {
			return nil, err
		}
		years = append(years, ly)
	}
	return years, nil
}

func checkLunisolarYear(ly lunisolarYear) error {
	want := 12
	if ly.leapHost != 0 {
		want = 13
	}
	if len(ly.months) != want {
		return fmt.Errorf("year %d has %d months, want %d", ly.year, len(ly.months), want)
	}
	for slot, n := range ly.months {
		if n != 29 && n != 30 {
			return fmt.Errorf("year %d month slot %d has %d days", ly.year, slot+1, n)
		}
	}
	return nil
}

// monthBits packs month lengths as bit 0x8000>>(slot-1), set for 30 days.
func monthBits(months []int) uint16 {
	var bits uint16
	for i, n := range months {
		if n == 30 {
			bits |= 0x8000 >> i
		}
	}
	return bits
}

func generateLunisolar() ([]byte, error) {
	years, err := libraryLunisolar(lunisolarFirstYear, lunisolarLastYear)
	if err != nil {
		return nil, err
	}
	return renderLunisolar(years)
}

// checkLunisolar compares the compiled Chinese calendar with the lunar years
// computed from the new moons and solar terms. Years whose new moon falls
// within a minute of midnight may legitimately differ.
func checkLunisolar() ([]string, error) {
	years, err := buildLunisolar(chineseFirstYear, chineseLastYear)
	if err != nil {
		return nil, err
	}
	return compareLunisolar(worldcal.NewChineseLunisolarCalendar(), years), nil
}

// compareLunisolar describes every year whose start, leap month or month
// lengths differ between cal and the computed years.
func compareLunisolar(cal worldcal.Calendar, years []lunisolarYear) []string {
	var diffs []string
	for _, ly := range years {
		got, err := readLunisolarYear(cal, ly.year)
		if err != nil {
			diffs = append(diffs, fmt.Sprintf("%d: %v", ly.year, err))
			continue
		}
		if got.newYear != ly.newYear || got.leapHost != ly.leapHost || monthBits(got.months) != monthBits(ly.months) {
			gy, gm, gd := astro.DateOf(got.newYear)
			cy, cm, cd := astro.DateOf(ly.newYear)
			diffs = append(diffs, fmt.Sprintf("%d: table {%d, %04d-%02d-%02d, %#04x}, computed {%d, %04d-%02d-%02d, %#04x}",
				ly.year, got.leapHost, gy, gm, gd, monthBits(got.months),
				ly.leapHost, cy, cm, cd, monthBits(ly.months)))
		}
	}
	return diffs
}

// readLunisolarYear rebuilds a table row through the calendar's public API.
func readLunisolarYear(cal worldcal.Calendar, year int) (lunisolarYear, error) {
	era := worldcal.CurrentEra
	start, err := cal.ToTimePoint(year, 1, 1, 0, 0, 0, 0, era)
	if err != nil {
		return lunisolarYear{}, err
	}
	leap, err := cal.LeapMonth(year, era)
	if err != nil {
		return lunisolarYear{}, err
	}
	n, err := cal.MonthsInYear(year, era)
	if err != nil {
		return lunisolarYear{}, err
	}
	ly := lunisolarYear{year: year, newYear: start.Days()}
	if leap != 0 {
		ly.leapHost = leap - 1
	}
	for m := 1; m <= n; m++ {
		days, err := cal.DaysInMonth(year, m, era)
		if err != nil {
			return lunisolarYear{}, err
		}
		ly.months = append(ly.months, days)
	}
	return ly, nil
}

func renderLunisolar(years []lunisolarYear) ([]byte, error) {
	var b strings.Builder
	header(&b, true)
	fmt.Fprintf(&b, "// lunisolarFirstYear is the Gregorian year described by lunisolarYears[0].\n")
	fmt.Fprintf(&b, "const lunisolarFirstYear = %d\n\n", years[0].year)
	b.WriteString("// lunisolarYears holds one row per lunar year: the month repeated by the leap\n")
	b.WriteString("// month (0 when none), the Gregorian date of the first day of the first\n")
	b.WriteString("// month, and the month lengths as bits 0x8000>>(slot-1), set for 30 days.\n")
	b.WriteString("var lunisolarYears = [...]lunisolarYear{\n")
	for _, ly := range years {
		if ly.year%10 == 0 {
			fmt.Fprintf(&b, "\t// %d\n", ly.year)
		}
		y, m, d := astro.DateOf(ly.newYear)
		fmt.Fprintf(&b, "\t{%d, %s, 0x%04x},\n", ly.leapHost, dateLiteral(y, m, d), monthBits(ly.months))
	}
	b.WriteString("}\n")
	return formatSource(&b)
}
