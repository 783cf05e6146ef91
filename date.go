package worldcal

import (
	"fmt"
	"time"
)

const (
	daysPerYear      = 365
	daysPer4Years    = daysPerYear*4 + 1
	daysPer100Years  = daysPer4Years*25 - 1
	daysPer400Years  = daysPer100Years*4 + 1
	firstDayOfWeekAD = time.Monday
)

// Cumulative day counts before each month of a common and a leap year.
var (
	daysToMonth365 = [13]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334, 365}
	daysToMonth366 = [13]int{0, 31, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335, 366}
)

// date is a proleptic Gregorian calendar date. The generated tables anchor
// their rows on it.
type date struct {
	year  int
	month time.Month
	day   int
}

// dateOfDays returns the proleptic Gregorian date of an absolute day number.
func dateOfDays(days int64) date {
	y, m, d, _ := gregorianFromDays(days)
	return date{year: y, month: time.Month(m), day: d}
}

func (d date) days() int64 {
	return gregorianDays(d.year, int(d.month), d.day)
}

func (d date) timePoint() TimePoint {
	return TimePoint(d.days() * TicksPerDay)
}

func (d date) toTime() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

func (d date) before(other date) bool {
	if d.year != other.year {
		return d.year < other.year
	}
	if d.month != other.month {
		return d.month < other.month
	}
	return d.day < other.day
}

func (d date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

func isGregorianLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func gregorianMonthDays(year int) *[13]int {
	if isGregorianLeapYear(year) {
		return &daysToMonth366
	}
	return &daysToMonth365
}

// gregorianDays returns the absolute day number of a valid proleptic
// Gregorian date.
func gregorianDays(year, month, day int) int64 {
	y := int64(year - 1)
	return y*daysPerYear + y/4 - y/100 + y/400 + int64(gregorianMonthDays(year)[month-1]+day-1)
}

// gregorianFromDays decomposes an absolute day number into year, month, day
// and day of year by 400, 100, 4 and 1 year blocks.
func gregorianFromDays(days int64) (year, month, day, dayOfYear int) {
	n := days
	y400 := n / daysPer400Years
	n -= y400 * daysPer400Years
	y100 := n / daysPer100Years
	if y100 == 4 {
		y100 = 3 // last day of a 400 year block
	}
	n -= y100 * daysPer100Years
	y4 := n / daysPer4Years
	n -= y4 * daysPer4Years
	y1 := n / daysPerYear
	if y1 == 4 {
		y1 = 3 // last day of a leap year
	}
	n -= y1 * daysPerYear

	year = int(y400*400 + y100*100 + y4*4 + y1 + 1)
	dayOfYear = int(n) + 1
	table := &daysToMonth365
	if y1 == 3 && (y4 != 24 || y100 == 3) {
		table = &daysToMonth366
	}
	month = int(n>>5) + 1
	for int(n) >= table[month] {
		month++
	}
	day = int(n) - table[month-1] + 1
	return year, month, day, dayOfYear
}

// dayOfWeek returns the weekday of an absolute day number.
func dayOfWeek(days int64) time.Weekday {
	return time.Weekday((days + int64(firstDayOfWeekAD)) % 7)
}
