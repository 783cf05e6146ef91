package worldcal

import (
	"math"
	"time"

	"github.com/rabitt1ove/worldcal/internal/astro"
)

const (
	persianMaxYear  = 9378
	persianMaxMonth = 10
	persianMaxDay   = 13

	// Days from a year's start estimate to the middle of that year.
	persianHalfYear = 180
)

var persianDaysToMonth = [13]int{0, 31, 62, 93, 124, 155, 186, 216, 246, 276, 306, 336, 366}

var (
	persianEpochDate    = date{622, time.March, 22}
	persianEpoch        = persianEpochDate.days()
	persianMinSupported = persianEpochDate.timePoint()
)

// PersianCalendar is the Solar Hijri calendar. A year begins on the day of
// the March equinox as observed at noon in Tehran; the first six months have
// 31 days, the next five 30 and the last 29 or 30.
type PersianCalendar struct {
	calendarBase
}

// NewPersianCalendar returns a writable Persian calendar.
func NewPersianCalendar() *PersianCalendar {
	return &PersianCalendar{calendarBase{
		name:            Persian.String(),
		twoDigitYearMax: 1410,
		maxYear:         persianMaxYear,
		daysBeforeMin:   365,
	}}
}

// ID returns [Persian].
func (c *PersianCalendar) ID() CalendarID { return Persian }

// AlgorithmType returns [SolarCalendar].
func (c *PersianCalendar) AlgorithmType() AlgorithmType { return SolarCalendar }

// MinSupported returns 622-03-22, 1 Farvardin 1.
func (c *PersianCalendar) MinSupported() TimePoint { return persianMinSupported }

// MaxSupported returns [MaxTimePoint], 13 Dey 9378.
func (c *PersianCalendar) MaxSupported() TimePoint { return MaxTimePoint }

// Eras returns the single era 1 (AP).
func (c *PersianCalendar) Eras() []int { return []int{1} }

// Clone returns a writable copy.
func (c *PersianCalendar) Clone() Calendar {
	cp := *c
	cp.readOnly = false
	return &cp
}

// persianNewYear returns the day number of 1 Farvardin of the year.
func persianNewYear(year int) int64 {
	estimate := int64(astro.MeanTropicalYear * float64(year-1))
	return astro.PersianNewYearOnOrBefore(persianEpoch + estimate + persianHalfYear)
}

func isPersianLeapYear(year int) bool {
	if year == persianMaxYear {
		return false
	}
	return persianNewYear(year+1)-persianNewYear(year) == 366
}

func persianDaysInMonth(year, month int) int {
	if year == persianMaxYear && month == persianMaxMonth {
		return persianMaxDay
	}
	n := persianDaysToMonth[month] - persianDaysToMonth[month-1]
	if month == 12 && !isPersianLeapYear(year) {
		n--
	}
	return n
}

func (c *PersianCalendar) fields(name string, t TimePoint) (year, month, day, dayOfYear int, err error) {
	if err := checkRange(c.op(name), t, persianMinSupported, MaxTimePoint); err != nil {
		return 0, 0, 0, 0, err
	}
	days := t.Days()
	start := astro.PersianNewYearOnOrBefore(days)
	year = int(math.Floor(float64(start-persianEpoch)/astro.MeanTropicalYear+0.5)) + 1
	dayOfYear = int(days-start) + 1

	month = 1
	for dayOfYear > persianDaysToMonth[month] {
		month++
	}
	return year, month, dayOfYear - persianDaysToMonth[month-1], dayOfYear, nil
}

func (c *PersianCalendar) checkYear(op string, year int, era Era) error {
	if id := era.resolve(1); id != 1 {
		return newEraError(op, id)
	}
	if year < 1 || year > persianMaxYear {
		return newDomainError(op, "year", "year %d is outside 1-%d", year, persianMaxYear)
	}
	return nil
}

func (c *PersianCalendar) checkMonth(op string, year, month int, era Era) error {
	if err := c.checkYear(op, year, era); err != nil {
		return err
	}
	if year == persianMaxYear && month > persianMaxMonth {
		return newDomainError(op, "month", "month %d is outside 1-%d in year %d", month, persianMaxMonth, year)
	}
	return checkGregorianMonth(op, month)
}

func (c *PersianCalendar) checkDate(op string, year, month, day int, era Era) error {
	if err := c.checkMonth(op, year, month, era); err != nil {
		return err
	}
	if n := persianDaysInMonth(year, month); day < 1 || day > n {
		return newDomainError(op, "day", "day %d is outside 1-%d", day, n)
	}
	return nil
}

// AddMonths returns t shifted by the given number of months, clamping the
// day to the length of the resulting month.
func (c *PersianCalendar) AddMonths(t TimePoint, months int) (TimePoint, error) {
	op := c.op("AddMonths")
	if months < -maxMonthOffset || months > maxMonthOffset {
		return 0, newDomainError(op, "months", "offset %d is outside ±%d", months, maxMonthOffset)
	}
	y, m, d, _, err := c.fields("AddMonths", t)
	if err != nil {
		return 0, err
	}
	i := m - 1 + months
	if i >= 0 {
		m = i%12 + 1
		y += i / 12
	} else {
		m = 12 + (i+1)%12
		y += (i - 11) / 12
	}
	if y < 1 || y > persianMaxYear || (y == persianMaxYear && m > persianMaxMonth) {
		return 0, newRangeError(op, "adding %d months leaves the supported range", months)
	}
	d = min(d, persianDaysInMonth(y, m))
	r := TimePoint((persianNewYear(y)+int64(persianDaysToMonth[m-1]+d-1))*TicksPerDay + t.timeOfDay())
	if err := checkResult(op, r, persianMinSupported, MaxTimePoint); err != nil {
		return 0, err
	}
	return r, nil
}

// AddYears returns t shifted by years*12 months.
func (c *PersianCalendar) AddYears(t TimePoint, years int) (TimePoint, error) {
	if years < -maxMonthOffset/12 || years > maxMonthOffset/12 {
		return 0, newDomainError(c.op("AddYears"), "years", "offset %d is outside ±%d", years, maxMonthOffset/12)
	}
	return c.AddMonths(t, years*12)
}

// Year returns the Persian year of t.
func (c *PersianCalendar) Year(t TimePoint) (int, error) {
	y, _, _, _, err := c.fields("Year", t)
	return y, err
}

// Month returns the Persian month of t.
func (c *PersianCalendar) Month(t TimePoint) (int, error) {
	_, m, _, _, err := c.fields("Month", t)
	return m, err
}

// DayOfMonth returns the Persian day of the month of t.
func (c *PersianCalendar) DayOfMonth(t TimePoint) (int, error) {
	_, _, d, _, err := c.fields("DayOfMonth", t)
	return d, err
}

// DayOfYear returns the day of the Persian year of t.
func (c *PersianCalendar) DayOfYear(t TimePoint) (int, error) {
	_, _, _, doy, err := c.fields("DayOfYear", t)
	return doy, err
}

// DayOfWeek returns the weekday of t.
func (c *PersianCalendar) DayOfWeek(t TimePoint) (time.Weekday, error) {
	if err := checkRange(c.op("DayOfWeek"), t, persianMinSupported, MaxTimePoint); err != nil {
		return 0, err
	}
	return dayOfWeek(t.Days()), nil
}

// Era returns 1.
func (c *PersianCalendar) Era(t TimePoint) (int, error) {
	if err := checkRange(c.op("Era"), t, persianMinSupported, MaxTimePoint); err != nil {
		return 0, err
	}
	return 1, nil
}

// DaysInMonth returns the length of the month; Esfand has 30 days in leap
// years.
func (c *PersianCalendar) DaysInMonth(year, month int, era Era) (int, error) {
	if err := c.checkMonth(c.op("DaysInMonth"), year, month, era); err != nil {
		return 0, err
	}
	return persianDaysInMonth(year, month), nil
}

// DaysInYear returns 365 or 366. The truncated final year has 289 days.
func (c *PersianCalendar) DaysInYear(year int, era Era) (int, error) {
	if err := c.checkYear(c.op("DaysInYear"), year, era); err != nil {
		return 0, err
	}
	switch {
	case year == persianMaxYear:
		return persianDaysToMonth[persianMaxMonth-1] + persianMaxDay, nil
	case isPersianLeapYear(year):
		return 366, nil
	}
	return 365, nil
}

// MonthsInYear returns 12, or 10 for the truncated final year.
func (c *PersianCalendar) MonthsInYear(year int, era Era) (int, error) {
	if err := c.checkYear(c.op("MonthsInYear"), year, era); err != nil {
		return 0, err
	}
	if year == persianMaxYear {
		return persianMaxMonth, nil
	}
	return 12, nil
}

// IsLeapYear reports whether the next new year is 366 days away.
func (c *PersianCalendar) IsLeapYear(year int, era Era) (bool, error) {
	if err := c.checkYear(c.op("IsLeapYear"), year, era); err != nil {
		return false, err
	}
	return isPersianLeapYear(year), nil
}

// IsLeapMonth reports false for every valid month.
func (c *PersianCalendar) IsLeapMonth(year, month int, era Era) (bool, error) {
	return false, c.checkMonth(c.op("IsLeapMonth"), year, month, era)
}

// IsLeapDay reports whether the date is 30 Esfand.
func (c *PersianCalendar) IsLeapDay(year, month, day int, era Era) (bool, error) {
	if err := c.checkDate(c.op("IsLeapDay"), year, month, day, era); err != nil {
		return false, err
	}
	return month == 12 && day == 30, nil
}

// LeapMonth returns 0.
func (c *PersianCalendar) LeapMonth(year int, era Era) (int, error) {
	if err := c.checkYear(c.op("LeapMonth"), year, era); err != nil {
		return 0, err
	}
	return 0, nil
}

// ToTimePoint returns the instant of the given Persian date and time of day.
func (c *PersianCalendar) ToTimePoint(year, month, day, hour, minute, second, millisecond int, era Era) (TimePoint, error) {
	op := c.op("ToTimePoint")
	if err := c.checkDate(op, year, month, day, era); err != nil {
		return 0, err
	}
	tod, err := timeToTicks(op, hour, minute, second, millisecond)
	if err != nil {
		return 0, err
	}
	days := persianNewYear(year) + int64(persianDaysToMonth[month-1]+day-1)
	return TimePoint(days*TicksPerDay + tod), nil
}

// ToFourDigitYear expands a two-digit year using the two-digit year window.
func (c *PersianCalendar) ToFourDigitYear(year int) (int, error) {
	return toFourDigitYear(c.op("ToFourDigitYear"), year, c.twoDigitYearMax, 1, persianMaxYear)
}
