package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/rabitt1ove/worldcal/internal/astro"
)

const (
	// hebrewEpoch is the day number of 1 Tishrei AM 1, minus one.
	hebrewEpoch     = -1373427
	hebrewYearOf1AD = 3760
)

// hebrewYearTypes maps year lengths to the year type codes 1-6.
var hebrewYearTypes = map[int]int{353: 1, 354: 2, 355: 3, 383: 4, 384: 5, 385: 6}

var hebrewMonthLengths = [7][13]int{
	1: {30, 29, 29, 29, 30, 29, 30, 29, 30, 29, 30, 29, 0},
	2: {30, 29, 30, 29, 30, 29, 30, 29, 30, 29, 30, 29, 0},
	3: {30, 30, 30, 29, 30, 29, 30, 29, 30, 29, 30, 29, 0},
	4: {30, 29, 29, 29, 30, 30, 29, 30, 29, 30, 29, 30, 29},
	5: {30, 29, 30, 29, 30, 30, 29, 30, 29, 30, 29, 30, 29},
	6: {30, 30, 30, 29, 30, 30, 29, 30, 29, 30, 29, 30, 29},
}

// hebrewElapsedDays returns the days from the epoch to the molad of Tishrei
// of the year, postponed by a day when the molad falls on Sunday, Wednesday
// or Friday.
func hebrewElapsedDays(year int) int64 {
	months := (235*int64(year) - 234) / 19
	parts := 12084 + 13753*months
	days := 29*months + parts/25920
	if (3*(days+1))%7 < 3 {
		return days + 1
	}
	return days
}

// hebrewYearLengthCorrection keeps year lengths within the allowed values.
func hebrewYearLengthCorrection(year int) int64 {
	prev, cur, next := hebrewElapsedDays(year-1), hebrewElapsedDays(year), hebrewElapsedDays(year+1)
	switch {
	case next-cur == 356:
		return 2
	case cur-prev == 382:
		return 1
	}
	return 0
}

// hebrewNewYear returns the day number of 1 Tishrei of the year.
func hebrewNewYear(year int) int64 {
	return hebrewEpoch + hebrewElapsedDays(year) + hebrewYearLengthCorrection(year) - 1
}

func hebrewYearLength(year int) int {
	return int(hebrewNewYear(year+1) - hebrewNewYear(year))
}

func hebrewIsLeap(year int) bool {
	return (7*year+1)%19 < 7
}

func hebrewYearType(year int) (int, error) {
	n := hebrewYearLength(year)
	t, ok := hebrewYearTypes[n]
	if !ok {
		return 0, fmt.Errorf("year %d has %d days", year, n)
	}
	if (t >= 4) != hebrewIsLeap(year) {
		return 0, fmt.Errorf("year %d has %d days but leap is %t", year, n, hebrewIsLeap(year))
	}
	return t, nil
}

// hebrewJan1 is the Hebrew date of January 1 of a Gregorian year.
type hebrewJan1 struct {
	gregorianYear int
	month, day    int
	yearType      int
}

func hebrewDateOfJan1(g int) (hebrewJan1, error) {
	h := g + hebrewYearOf1AD
	off := astro.DayNumber(g, time.January, 1) - hebrewNewYear(h)
	if off < 0 {
		return hebrewJan1{}, fmt.Errorf("January 1, %d precedes 1 Tishrei %d", g, h)
	}
	t, err := hebrewYearType(h)
	if err != nil {
		return hebrewJan1{}, err
	}
	m := 1
	for off >= int64(hebrewMonthLengths[t][m-1]) {
		off -= int64(hebrewMonthLengths[t][m-1])
		m++
	}
	return hebrewJan1{g, m, int(off) + 1, t}, nil
}

func generateHebrew() ([]byte, error) {
	rows := make([]hebrewJan1, 0, hebrewLastGregorianYear-hebrewFirstGregorianYear+1)
	for g := hebrewFirstGregorianYear; g <= hebrewLastGregorianYear; g++ {
		row, err := hebrewDateOfJan1(g)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	before := hebrewYearLength(hebrewFirstGregorianYear + hebrewYearOf1AD - 1)
	return renderHebrew(rows, before)
}

func renderHebrew(rows []hebrewJan1, daysBeforeFirst int) ([]byte, error) {
	var b strings.Builder
	header(&b, false)
	b.WriteString("// hebrewFirstGregorianYear is the Gregorian year described by hebrewYears[0].\n")
	fmt.Fprintf(&b, "const hebrewFirstGregorianYear = %d\n\n", rows[0].gregorianYear)
	b.WriteString("// hebrewDaysInYearBeforeFirst is the length of the Hebrew year preceding the\n")
	b.WriteString("// first supported year.\n")
	fmt.Fprintf(&b, "const hebrewDaysInYearBeforeFirst = %d\n\n", daysBeforeFirst)
	b.WriteString("// hebrewYears holds one row per Gregorian year: the Hebrew month and day that\n")
	b.WriteString("// fall on January 1 and the type of the Hebrew year in progress on that day.\n")
	b.WriteString("var hebrewYears = [...]hebrewYear{\n")
	for i := 0; i < len(rows); i += 10 {
		line := rows[i:min(i+10, len(rows))]
		fmt.Fprintf(&b, "\t// %d\n\t", line[0].gregorianYear)
		cells := make([]string, len(line))
		for j, r := range line {
			cells[j] = fmt.Sprintf("{%d, %d, %d}", r.month, r.day, r.yearType)
		}
		b.WriteString(strings.Join(cells, ", "))
		b.WriteString(",\n")
	}
	b.WriteString("}\n")
	return formatSource(&b)
}
