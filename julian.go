package worldcal

import "time"

const (
	julianMaxYear = 9999

	// julianEpochShift is the number of days Julian 0001-01-01 precedes
	// Gregorian 0001-01-01.
	julianEpochShift = 2
)

// JulianCalendar is the Julian calendar: every fourth year is a leap year.
// Gregorian 0001-01-01 is Julian 0001-01-03; the calendar ends at the end of
// the TimePoint range, Julian 9999-10-19.
type JulianCalendar struct {
	calendarBase
}

// NewJulianCalendar returns a writable Julian calendar.
func NewJulianCalendar() *JulianCalendar {
	return &JulianCalendar{calendarBase{
		name:            Julian.String(),
		twoDigitYearMax: 2029,
		maxYear:         julianMaxYear,
		daysBeforeMin:   daysPerYear,
	}}
}

// ID returns [Julian].
func (c *JulianCalendar) ID() CalendarID { return Julian }

// AlgorithmType returns [SolarCalendar].
func (c *JulianCalendar) AlgorithmType() AlgorithmType { return SolarCalendar }

// MinSupported returns [MinTimePoint].
func (c *JulianCalendar) MinSupported() TimePoint { return MinTimePoint }

// MaxSupported returns [MaxTimePoint].
func (c *JulianCalendar) MaxSupported() TimePoint { return MaxTimePoint }

// Eras returns the single era 1.
func (c *JulianCalendar) Eras() []int { return []int{1} }

// Clone returns a writable copy.
func (c *JulianCalendar) Clone() Calendar {
	cp := *c
	cp.readOnly = false
	return &cp
}

func julianMonthDays(year int) *[13]int {
	if year%4 == 0 {
		return &daysToMonth366
	}
	return &daysToMonth365
}

func julianFromDays(days int64) (year, month, day, dayOfYear int) {
	n := days + julianEpochShift
	y4 := n / daysPer4Years
	n -= y4 * daysPer4Years
	y1 := n / daysPerYear
	if y1 == 4 {
		y1 = 3
	}
	n -= y1 * daysPerYear
	year = int(y4*4 + y1 + 1)
	dayOfYear = int(n) + 1
	table := julianMonthDays(year)
	month = int(n>>5) + 1
	for int(n) >= table[month] {
		month++
	}
	day = int(n) - table[month-1] + 1
	return year, month, day, dayOfYear
}

func julianDays(year, month, day int) int64 {
	y := int64(year - 1)
	return y*daysPerYear + y/4 + int64(julianMonthDays(year)[month-1]+day-1) - julianEpochShift
}

func (c *JulianCalendar) checkEra(op string, era Era) error {
	if id := era.resolve(1); id != 1 {
		return newEraError(op, id)
	}
	return nil
}

func (c *JulianCalendar) checkYear(op string, year int, era Era) error {
	if err := c.checkEra(op, era); err != nil {
		return err
	}
	if year < 1 || year > julianMaxYear {
		return newDomainError(op, "year", "year %d is outside 1-%d", year, julianMaxYear)
	}
	return nil
}

func (c *JulianCalendar) checkDate(op string, year, month, day int, era Era) error {
	if err := c.checkYear(op, year, era); err != nil {
		return err
	}
	if err := checkGregorianMonth(op, month); err != nil {
		return err
	}
	table := julianMonthDays(year)
	if n := table[month] - table[month-1]; day < 1 || day > n {
		return newDomainError(op, "day", "day %d is outside 1-%d", day, n)
	}
	return nil
}

func (c *JulianCalendar) fields(name string, t TimePoint) (year, month, day, dayOfYear int, err error) {
	if err := checkRange(c.op(name), t, MinTimePoint, MaxTimePoint); err != nil {
		return 0, 0, 0, 0, err
	}
	year, month, day, dayOfYear = julianFromDays(t.Days())
	return year, month, day, dayOfYear, nil
}

// AddMonths returns t shifted by the given number of months, clamping the
// day to the length of the resulting month.
func (c *JulianCalendar) AddMonths(t TimePoint, months int) (TimePoint, error) {
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
	if y < 1 || y > julianMaxYear {
		return 0, newRangeError(op, "year %d is outside 1-%d", y, julianMaxYear)
	}
	table := julianMonthDays(y)
	d = min(d, table[m]-table[m-1])
	r := TimePoint(julianDays(y, m, d)*TicksPerDay + t.timeOfDay())
	if err := checkResult(op, r, MinTimePoint, MaxTimePoint); err != nil {
		return 0, err
	}
	return r, nil
}

// AddYears returns t shifted by the given number of years.
func (c *JulianCalendar) AddYears(t TimePoint, years int) (TimePoint, error) {
	if years < -maxMonthOffset/12 || years > maxMonthOffset/12 {
		return 0, newDomainError(c.op("AddYears"), "years", "offset %d is outside ±%d", years, maxMonthOffset/12)
	}
	return c.AddMonths(t, years*12)
}

// Year returns the Julian year of t.
func (c *JulianCalendar) Year(t TimePoint) (int, error) {
	y, _, _, _, err := c.fields("Year", t)
	return y, err
}

// Month returns the Julian month of t.
func (c *JulianCalendar) Month(t TimePoint) (int, error) {
	_, m, _, _, err := c.fields("Month", t)
	return m, err
}

// DayOfMonth returns the Julian day of the month of t.
func (c *JulianCalendar) DayOfMonth(t TimePoint) (int, error) {
	_, _, d, _, err := c.fields("DayOfMonth", t)
	return d, err
}

// DayOfYear returns the Julian day of the year of t.
func (c *JulianCalendar) DayOfYear(t TimePoint) (int, error) {
	_, _, _, doy, err := c.fields("DayOfYear", t)
	return doy, err
}

// DayOfWeek returns the weekday of t.
func (c *JulianCalendar) DayOfWeek(t TimePoint) (time.Weekday, error) {
	if err := checkRange(c.op("DayOfWeek"), t, MinTimePoint, MaxTimePoint); err != nil {
		return 0, err
	}
	return dayOfWeek(t.Days()), nil
}

// Era returns 1.
func (c *JulianCalendar) Era(t TimePoint) (int, error) {
	if err := checkRange(c.op("Era"), t, MinTimePoint, MaxTimePoint); err != nil {
		return 0, err
	}
	return 1, nil
}

// DaysInMonth returns the number of days in the month.
func (c *JulianCalendar) DaysInMonth(year, month int, era Era) (int, error) {
	op := c.op("DaysInMonth")
	if err := c.checkYear(op, year, era); err != nil {
		return 0, err
	}
	if err := checkGregorianMonth(op, month); err != nil {
		return 0, err
	}
	table := julianMonthDays(year)
	return table[month] - table[month-1], nil
}

// DaysInYear returns 366 in leap years and 365 otherwise.
func (c *JulianCalendar) DaysInYear(year int, era Era) (int, error) {
	if err := c.checkYear(c.op("DaysInYear"), year, era); err != nil {
		return 0, err
	}
	return julianMonthDays(year)[12], nil
}

// MonthsInYear returns 12.
func (c *JulianCalendar) MonthsInYear(year int, era Era) (int, error) {
	if err := c.checkYear(c.op("MonthsInYear"), year, era); err != nil {
		return 0, err
	}
	return 12, nil
}

// IsLeapYear reports whether the year is divisible by 4.
func (c *JulianCalendar) IsLeapYear(year int, era Era) (bool, error) {
	if err := c.checkYear(c.op("IsLeapYear"), year, era); err != nil {
		return false, err
	}
	return year%4 == 0, nil
}

// IsLeapMonth reports false for every valid month.
func (c *JulianCalendar) IsLeapMonth(year, month int, era Era) (bool, error) {
	op := c.op("IsLeapMonth")
	if err := c.checkYear(op, year, era); err != nil {
		return false, err
	}
	return false, checkGregorianMonth(op, month)
}

// IsLeapDay reports whether the date is February 29.
func (c *JulianCalendar) IsLeapDay(year, month, day int, era Era) (bool, error) {
	if err := c.checkDate(c.op("IsLeapDay"), year, month, day, era); err != nil {
		return false, err
	}
	return year%4 == 0 && month == 2 && day == 29, nil
}

// LeapMonth returns 0.
func (c *JulianCalendar) LeapMonth(year int, era Era) (int, error) {
	return scanLeapMonth(12, func(m int) (bool, error) { return c.IsLeapMonth(year, m, era) })
}

// ToTimePoint returns the instant of the given Julian date and time of day.
// Julian 0001-01-01 and 0001-01-02 precede the TimePoint range.
func (c *JulianCalendar) ToTimePoint(year, month, day, hour, minute, second, millisecond int, era Era) (TimePoint, error) {
	op := c.op("ToTimePoint")
	if err := c.checkDate(op, year, month, day, era); err != nil {
		return 0, err
	}
	tod, err := timeToTicks(op, hour, minute, second, millisecond)
	if err != nil {
		return 0, err
	}
	t := TimePoint(julianDays(year, month, day)*TicksPerDay + tod)
	if err := checkResult(op, t, MinTimePoint, MaxTimePoint); err != nil {
		return 0, err
	}
	return t, nil
}

// ToFourDigitYear expands a two-digit year using the two-digit year window.
func (c *JulianCalendar) ToFourDigitYear(year int) (int, error) {
	return toFourDigitYear(c.op("ToFourDigitYear"), year, c.twoDigitYearMax, 1, julianMaxYear)
}
