package worldcal

import (
	"math/bits"
	"time"
)

// umalquraYear is one row of the generated Umm al-Qura table.
type umalquraYear struct {
	flags   uint16 // bit m-1 set when month m has 30 days
	newYear date   // Gregorian date of 1 Muharram
}

const umalquraLastYear = umalquraFirstYear + len(umalquraYears) - 2

var (
	umalquraMinSupported = umalquraYears[0].newYear.timePoint()
	umalquraMaxSupported = umalquraYears[len(umalquraYears)-1].newYear.timePoint() - 1
)

// UmAlQuraCalendar is the Umm al-Qura calendar of Saudi Arabia, read from a
// table covering 1318-1500 AH (1900-04-30 to 2077-11-16).
type UmAlQuraCalendar struct {
	calendarBase
}

// NewUmAlQuraCalendar returns a writable Umm al-Qura calendar.
func NewUmAlQuraCalendar() *UmAlQuraCalendar {
	return &UmAlQuraCalendar{calendarBase{
		name:            UmAlQura.String(),
		twoDigitYearMax: 1451,
		maxYear:         umalquraLastYear,
		daysBeforeMin:   355,
	}}
}

// ID returns [UmAlQura].
func (c *UmAlQuraCalendar) ID() CalendarID { return UmAlQura }

// AlgorithmType returns [LunarCalendar].
func (c *UmAlQuraCalendar) AlgorithmType() AlgorithmType { return LunarCalendar }

// MinSupported returns 1900-04-30, 1 Muharram 1318 AH.
func (c *UmAlQuraCalendar) MinSupported() TimePoint { return umalquraMinSupported }

// MaxSupported returns the last instant of 2077-11-16, 30 Dhu al-Hijjah 1500 AH.
func (c *UmAlQuraCalendar) MaxSupported() TimePoint { return umalquraMaxSupported }

// Eras returns the single era 1 (AH).
func (c *UmAlQuraCalendar) Eras() []int { return []int{1} }

// Clone returns a writable copy.
func (c *UmAlQuraCalendar) Clone() Calendar {
	cp := *c
	cp.readOnly = false
	return &cp
}

func umalquraRow(year int) *umalquraYear {
	return &umalquraYears[year-umalquraFirstYear]
}

func umalquraDaysInMonth(year, month int) int {
	if umalquraRow(year).flags&(1<<(month-1)) != 0 {
		return 30
	}
	return 29
}

func umalquraDaysInYear(year int) int {
	return 29*12 + bits.OnesCount16(umalquraRow(year).flags&0xfff)
}

// umalquraDays returns the day number of a valid Umm al-Qura date.
func umalquraDays(year, month, day int) int64 {
	row := umalquraRow(year)
	n := day - 1
	flags := row.flags
	for m := 1; m < month; m++ {
		n += 29 + int(flags&1)
		flags >>= 1
	}
	return row.newYear.days() + int64(n)
}

func (c *UmAlQuraCalendar) fields(name string, t TimePoint) (year, month, day, dayOfYear int, err error) {
	if err := checkRange(c.op(name), t, umalquraMinSupported, umalquraMaxSupported); err != nil {
		return 0, 0, 0, 0, err
	}
	days := t.Days()

	// A year has at least 354 days, so the estimate never overshoots.
	i := int((days - umalquraYears[0].newYear.days()) / 355)
	for days >= umalquraYears[i+1].newYear.days() {
		i++
	}

	row := &umalquraYears[i]
	n := int(days - row.newYear.days())
	dayOfYear = n + 1
	month = 1
	flags := row.flags
	for length := 29 + int(flags&1); n >= length; length = 29 + int(flags&1) {
		n -= length
		flags >>= 1
		month++
	}
	return umalquraFirstYear + i, month, n + 1, dayOfYear, nil
}

func (c *UmAlQuraCalendar) checkYear(op string, year int, era Era) error {
	if id := era.resolve(1); id != 1 {
		return newEraError(op, id)
	}
	if year < umalquraFirstYear || year > umalquraLastYear {
		return newDomainError(op, "year", "year %d is outside %d-%d", year, umalquraFirstYear, umalquraLastYear)
	}
	return nil
}

func (c *UmAlQuraCalendar) checkMonth(op string, year, month int, era Era) error {
	if err := c.checkYear(op, year, era); err != nil {
		return err
	}
	return checkGregorianMonth(op, month)
}

func (c *UmAlQuraCalendar) checkDate(op string, year, month, day int, era Era) error {
	if err := c.checkMonth(op, year, month, era); err != nil {
		return err
	}
	if n := umalquraDaysInMonth(year, month); day < 1 || day > n {
		return newDomainError(op, "day", "day %d is outside 1-%d", day, n)
	}
	return nil
}

func (c *UmAlQuraCalendar) shift(op string, t TimePoint, y, m, d int) (TimePoint, error) {
	if y < umalquraFirstYear || y > umalquraLastYear {
		return 0, newRangeError(op, "year %d is outside %d-%d", y, umalquraFirstYear, umalquraLastYear)
	}
	d = min(d, umalquraDaysInMonth(y, m))
	r := TimePoint(umalquraDays(y, m, d)*TicksPerDay + t.timeOfDay())
	if err := checkResult(op, r, umalquraMinSupported, umalquraMaxSupported); err != nil {
		return 0, err
	}
	return r, nil
}

// AddMonths returns t shifted by the given number of months, clamping the
// day to the length of the resulting month.
func (c *UmAlQuraCalendar) AddMonths(t TimePoint, months int) (TimePoint, error) {
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
	return c.shift(op, t, y, m, d)
}

// AddYears returns t shifted by the given number of years, clamping the day
// to the length of the month in the resulting year.
func (c *UmAlQuraCalendar) AddYears(t TimePoint, years int) (TimePoint, error) {
	op := c.op("AddYears")
	y, m, d, _, err := c.fields("AddYears", t)
	if err != nil {
		return 0, err
	}
	if years == 0 {
		return t, nil
	}
	if years < -maxMonthOffset/12 || years > maxMonthOffset/12 {
		return 0, newRangeError(op, "offset %d is too large", years)
	}
	return c.shift(op, t, y+years, m, d)
}

// Year returns the Hijri year of t.
func (c *UmAlQuraCalendar) Year(t TimePoint) (int, error) {
	y, _, _, _, err := c.fields("Year", t)
	return y, err
}

// Month returns the Hijri month of t.
func (c *UmAlQuraCalendar) Month(t TimePoint) (int, error) {
	_, m, _, _, err := c.fields("Month", t)
	return m, err
}

// DayOfMonth returns the Hijri day of the month of t.
func (c *UmAlQuraCalendar) DayOfMonth(t TimePoint) (int, error) {
	_, _, d, _, err := c.fields("DayOfMonth", t)
	return d, err
}

// DayOfYear returns the Hijri day of the year of t.
func (c *UmAlQuraCalendar) DayOfYear(t TimePoint) (int, error) {
	_, _, _, doy, err := c.fields("DayOfYear", t)
	return doy, err
}

// DayOfWeek returns the weekday of t.
func (c *UmAlQuraCalendar) DayOfWeek(t TimePoint) (time.Weekday, error) {
	if err := checkRange(c.op("DayOfWeek"), t, umalquraMinSupported, umalquraMaxSupported); err != nil {
		return 0, err
	}
	return dayOfWeek(t.Days()), nil
}

// Era returns 1.
func (c *UmAlQuraCalendar) Era(t TimePoint) (int, error) {
	if err := checkRange(c.op("Era"), t, umalquraMinSupported, umalquraMaxSupported); err != nil {
		return 0, err
	}
	return 1, nil
}

// DaysInMonth returns 29 or 30, as observed.
func (c *UmAlQuraCalendar) DaysInMonth(year, month int, era Era) (int, error) {
	if err := c.checkMonth(c.op("DaysInMonth"), year, month, era); err != nil {
		return 0, err
	}
	return umalquraDaysInMonth(year, month), nil
}

// DaysInYear returns the length of the year, between 353 and 355 days.
func (c *UmAlQuraCalendar) DaysInYear(year int, era Era) (int, error) {
	if err := c.checkYear(c.op("DaysInYear"), year, era); err != nil {
		return 0, err
	}
	return umalquraDaysInYear(year), nil
}

// MonthsInYear returns 12.
func (c *UmAlQuraCalendar) MonthsInYear(year int, era Era) (int, error) {
	if err := c.checkYear(c.op("MonthsInYear"), year, era); err != nil {
		return 0, err
	}
	return 12, nil
}

// IsLeapYear reports whether the year has 355 days.
func (c *UmAlQuraCalendar) IsLeapYear(year int, era Era) (bool, error) {
	if err := c.checkYear(c.op("IsLeapYear"), year, era); err != nil {
		return false, err
	}
	return umalquraDaysInYear(year) == 355, nil
}

// IsLeapMonth reports false for every valid month.
func (c *UmAlQuraCalendar) IsLeapMonth(year, month int, era Era) (bool, error) {
	return false, c.checkMonth(c.op("IsLeapMonth"), year, month, era)
}

// IsLeapDay reports false for every valid date: no single day is added in
// long years.
func (c *UmAlQuraCalendar) IsLeapDay(year, month, day int, era Era) (bool, error) {
	return false, c.checkDate(c.op("IsLeapDay"), year, month, day, era)
}

// LeapMonth returns 0.
func (c *UmAlQuraCalendar) LeapMonth(year int, era Era) (int, error) {
	return scanLeapMonth(12, func(m int) (bool, error) { return c.IsLeapMonth(year, m, era) })
}

// ToTimePoint returns the instant of the given Hijri date and time of day.
func (c *UmAlQuraCalendar) ToTimePoint(year, month, day, hour, minute, second, millisecond int, era Era) (TimePoint, error) {
	op := c.op("ToTimePoint")
	if err := c.checkDate(op, year, month, day, era); err != nil {
		return 0, err
	}
	tod, err := timeToTicks(op, hour, minute, second, millisecond)
	if err != nil {
		return 0, err
	}
	return TimePoint(umalquraDays(year, month, day)*TicksPerDay + tod), nil
}

// ToFourDigitYear expands a two-digit year using the two-digit year window.
func (c *UmAlQuraCalendar) ToFourDigitYear(year int) (int, error) {
	return toFourDigitYear(c.op("ToFourDigitYear"), year, c.twoDigitYearMax, umalquraFirstYear, umalquraLastYear)
}
