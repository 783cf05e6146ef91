package worldcal

import (
	"math/bits"
	"time"
)

// lunisolarYear is one row of the generated lunisolar table.
type lunisolarYear struct {
	leapHost  uint8  // month repeated by the leap month, 0 when none
	newYear   date   // Gregorian date of month 1 day 1
	monthBits uint16 // bit 0x8000>>(slot-1) set when the slot has 30 days
}

func lunisolarRow(year int) *lunisolarYear {
	return &lunisolarYears[year-lunisolarFirstYear]
}

func (r *lunisolarYear) monthsInYear() int {
	if r.leapHost != 0 {
		return 13
	}
	return 12
}

func (r *lunisolarYear) daysInMonth(month int) int {
	if r.monthBits&(0x8000>>(month-1)) != 0 {
		return 30
	}
	return 29
}

func (r *lunisolarYear) daysInYear() int {
	n := r.monthsInYear()
	mask := uint16(0xffff) << (16 - n)
	return 29*n + bits.OnesCount16(r.monthBits&mask)
}

// daysBefore returns the days from the new year to the start of month.
func (r *lunisolarYear) daysBefore(month int) int {
	n := 0
	for m := 1; m < month; m++ {
		n += r.daysInMonth(m)
	}
	return n
}

// lunisolarCalendar is the table-driven core of the Chinese and Taiwan
// lunisolar calendars. Internally years are numbered like the Gregorian
// year in which they begin; yearOffset is subtracted for display.
type lunisolarCalendar struct {
	calendarBase
	id                  CalendarID
	firstYear, lastYear int
	yearOffset          int
	minSupported        TimePoint
	maxSupported        TimePoint
}

func newLunisolarCalendar(id CalendarID, firstYear, lastYear, yearOffset, twoDigitYearMax int) lunisolarCalendar {
	return lunisolarCalendar{
		calendarBase: calendarBase{
			name:            id.String(),
			twoDigitYearMax: twoDigitYearMax,
			maxYear:         lastYear - yearOffset,
			daysBeforeMin:   lunisolarRow(firstYear - 1).daysInYear(),
		},
		id:           id,
		firstYear:    firstYear,
		lastYear:     lastYear,
		yearOffset:   yearOffset,
		minSupported: lunisolarRow(firstYear).newYear.timePoint(),
		maxSupported: lunisolarRow(lastYear+1).newYear.timePoint() - 1,
	}
}

// ID returns the calendar identifier.
func (c *lunisolarCalendar) ID() CalendarID { return c.id }

// AlgorithmType returns [LunisolarCalendar].
func (c *lunisolarCalendar) AlgorithmType() AlgorithmType { return LunisolarCalendar }

// MinSupported returns the first day of the first year of the table window.
func (c *lunisolarCalendar) MinSupported() TimePoint { return c.minSupported }

// MaxSupported returns the last instant of the last year of the table window.
func (c *lunisolarCalendar) MaxSupported() TimePoint { return c.maxSupported }

// Eras returns the single era 1.
func (c *lunisolarCalendar) Eras() []int { return []int{1} }

// lunar decomposes t into a lunar year (Gregorian numbered), month slot and
// day. The row is found by comparing t against the new year of the
// Gregorian year it falls in.
func (c *lunisolarCalendar) lunar(name string, t TimePoint) (year, month, day int, err error) {
	if err := checkRange(c.op(name), t, c.minSupported, c.maxSupported); err != nil {
		return 0, 0, 0, err
	}
	days := t.Days()
	year, _, _, _ = gregorianFromDays(days)
	if days < lunisolarRow(year).newYear.days() {
		year--
	}

	row := lunisolarRow(year)
	n := int(days-row.newYear.days()) + 1
	month = 1
	for n > row.daysInMonth(month) {
		n -= row.daysInMonth(month)
		month++
	}
	return year, month, n, nil
}

func (c *lunisolarCalendar) checkYear(op string, year int, era Era) error {
	if id := era.resolve(1); id != 1 {
		return newEraError(op, id)
	}
	if first, last := c.firstYear-c.yearOffset, c.lastYear-c.yearOffset; year < first || year > last {
		return newDomainError(op, "year", "year %d is outside %d-%d", year, first, last)
	}
	return nil
}

func (c *lunisolarCalendar) checkMonth(op string, year, month int, era Era) error {
	if err := c.checkYear(op, year, era); err != nil {
		return err
	}
	if n := lunisolarRow(year + c.yearOffset).monthsInYear(); month < 1 || month > n {
		return newDomainError(op, "month", "month %d is outside 1-%d", month, n)
	}
	return nil
}

func (c *lunisolarCalendar) checkDate(op string, year, month, day int, era Era) error {
	if err := c.checkMonth(op, year, month, era); err != nil {
		return err
	}
	if n := lunisolarRow(year + c.yearOffset).daysInMonth(month); day < 1 || day > n {
		return newDomainError(op, "day", "day %d is outside 1-%d", day, n)
	}
	return nil
}

func (c *lunisolarCalendar) compose(op string, lunarYear, month, day int, tod int64) (TimePoint, error) {
	row := lunisolarRow(lunarYear)
	days := row.newYear.days() + int64(row.daysBefore(month)+day-1)
	t := TimePoint(days*TicksPerDay + tod)
	if err := checkResult(op, t, c.minSupported, c.maxSupported); err != nil {
		return 0, err
	}
	return t, nil
}

// AddMonths returns t shifted by the given number of month slots, leap
// months included, clamping the day to the length of the resulting month.
func (c *lunisolarCalendar) AddMonths(t TimePoint, months int) (TimePoint, error) {
	op := c.op("AddMonths")
	if months < -maxMonthOffset || months > maxMonthOffset {
		return 0, newDomainError(op, "months", "offset %d is outside ±%d", months, maxMonthOffset)
	}
	y, m, d, err := c.lunar("AddMonths", t)
	if err != nil {
		return 0, err
	}
	outOfRange := func() error {
		return newRangeError(op, "adding %d months leaves years %d-%d", months,
			c.firstYear-c.yearOffset, c.lastYear-c.yearOffset)
	}

	i := m + months
	if i > 0 {
		for n := lunisolarRow(y).monthsInYear(); i > n; n = lunisolarRow(y).monthsInYear() {
			i -= n
			y++
			if y > c.lastYear {
				return 0, outOfRange()
			}
		}
	} else {
		for i <= 0 {
			if y-1 < c.firstYear {
				return 0, outOfRange()
			}
			y--
			i += lunisolarRow(y).monthsInYear()
		}
	}
	d = min(d, lunisolarRow(y).daysInMonth(i))
	return c.compose(op, y, i, d, t.timeOfDay())
}

// AddYears returns t shifted by the given number of years. A date in month
// 13 moves to the last day of month 12 when the resulting year has no leap
// month; otherwise the day is clamped to the month.
func (c *lunisolarCalendar) AddYears(t TimePoint, years int) (TimePoint, error) {
	op := c.op("AddYears")
	y, m, d, err := c.lunar("AddYears", t)
	if err != nil {
		return 0, err
	}
	if years < c.firstYear-y || years > c.lastYear-y {
		return 0, newRangeError(op, "adding %d years leaves years %d-%d", years,
			c.firstYear-c.yearOffset, c.lastYear-c.yearOffset)
	}
	y += years
	row := lunisolarRow(y)
	if m == 13 && row.leapHost == 0 {
		m = 12
		d = row.daysInMonth(m)
	}
	d = min(d, row.daysInMonth(m))
	return c.compose(op, y, m, d, t.timeOfDay())
}

// Year returns the year of t.
func (c *lunisolarCalendar) Year(t TimePoint) (int, error) {
	y, _, _, err := c.lunar("Year", t)
	if err != nil {
		return 0, err
	}
	return y - c.yearOffset, nil
}

// Month returns the month slot of t, from 1 to 13.
func (c *lunisolarCalendar) Month(t TimePoint) (int, error) {
	_, m, _, err := c.lunar("Month", t)
	return m, err
}

// DayOfMonth returns the day of the month of t.
func (c *lunisolarCalendar) DayOfMonth(t TimePoint) (int, error) {
	_, _, d, err := c.lunar("DayOfMonth", t)
	return d, err
}

// DayOfYear returns the day of the lunar year of t.
func (c *lunisolarCalendar) DayOfYear(t TimePoint) (int, error) {
	y, m, d, err := c.lunar("DayOfYear", t)
	if err != nil {
		return 0, err
	}
	return lunisolarRow(y).daysBefore(m) + d, nil
}

// DayOfWeek returns the weekday of t.
func (c *lunisolarCalendar) DayOfWeek(t TimePoint) (time.Weekday, error) {
	if err := checkRange(c.op("DayOfWeek"), t, c.minSupported, c.maxSupported); err != nil {
		return 0, err
	}
	return dayOfWeek(t.Days()), nil
}

// Era returns 1.
func (c *lunisolarCalendar) Era(t TimePoint) (int, error) {
	if err := checkRange(c.op("Era"), t, c.minSupported, c.maxSupported); err != nil {
		return 0, err
	}
	return 1, nil
}

// DaysInMonth returns 29 or 30.
func (c *lunisolarCalendar) DaysInMonth(year, month int, era Era) (int, error) {
	if err := c.checkMonth(c.op("DaysInMonth"), year, month, era); err != nil {
		return 0, err
	}
	return lunisolarRow(year + c.yearOffset).daysInMonth(month), nil
}

// DaysInYear returns the sum of the month lengths of the year.
func (c *lunisolarCalendar) DaysInYear(year int, era Era) (int, error) {
	if err := c.checkYear(c.op("DaysInYear"), year, era); err != nil {
		return 0, err
	}
	return lunisolarRow(year + c.yearOffset).daysInYear(), nil
}

// MonthsInYear returns 13 when the year has a leap month and 12 otherwise.
func (c *lunisolarCalendar) MonthsInYear(year int, era Era) (int, error) {
	if err := c.checkYear(c.op("MonthsInYear"), year, era); err != nil {
		return 0, err
	}
	return lunisolarRow(year + c.yearOffset).monthsInYear(), nil
}

// IsLeapYear reports whether the year has a leap month.
func (c *lunisolarCalendar) IsLeapYear(year int, era Era) (bool, error) {
	if err := c.checkYear(c.op("IsLeapYear"), year, era); err != nil {
		return false, err
	}
	return lunisolarRow(year+c.yearOffset).leapHost != 0, nil
}

// IsLeapMonth reports whether the month slot holds the leap month.
func (c *lunisolarCalendar) IsLeapMonth(year, month int, era Era) (bool, error) {
	if err := c.checkMonth(c.op("IsLeapMonth"), year, month, era); err != nil {
		return false, err
	}
	host := int(lunisolarRow(year + c.yearOffset).leapHost)
	return host != 0 && month == host+1, nil
}

// IsLeapDay reports whether the date falls in the leap month.
func (c *lunisolarCalendar) IsLeapDay(year, month, day int, era Era) (bool, error) {
	if err := c.checkDate(c.op("IsLeapDay"), year, month, day, era); err != nil {
		return false, err
	}
	host := int(lunisolarRow(year + c.yearOffset).leapHost)
	return host != 0 && month == host+1, nil
}

// LeapMonth returns the slot of the leap month, one past the month it
// repeats, or 0. A year with a leap fourth month returns 5.
func (c *lunisolarCalendar) LeapMonth(year int, era Era) (int, error) {
	if err := c.checkYear(c.op("LeapMonth"), year, era); err != nil {
		return 0, err
	}
	if host := int(lunisolarRow(year + c.yearOffset).leapHost); host != 0 {
		return host + 1, nil
	}
	return 0, nil
}

// ToTimePoint returns the instant of the given lunar date and time of day.
func (c *lunisolarCalendar) ToTimePoint(year, month, day, hour, minute, second, millisecond int, era Era) (TimePoint, error) {
	op := c.op("ToTimePoint")
	if err := c.checkDate(op, year, month, day, era); err != nil {
		return 0, err
	}
	tod, err := timeToTicks(op, hour, minute, second, millisecond)
	if err != nil {
		return 0, err
	}
	return c.compose(op, year+c.yearOffset, month, day, tod)
}

// ToFourDigitYear expands a two-digit year using the two-digit year window
// and checks the result against the table window.
func (c *lunisolarCalendar) ToFourDigitYear(year int) (int, error) {
	op := c.op("ToFourDigitYear")
	first, last := c.firstYear-c.yearOffset, c.lastYear-c.yearOffset
	y, err := toFourDigitYear(op, year, c.twoDigitYearMax, first, last)
	if err != nil {
		return 0, err
	}
	if y < first || y > last {
		return 0, newDomainError(op, "year", "year %d is outside %d-%d", y, first, last)
	}
	return y, nil
}

// SexagenaryYear returns the position of the year of t in the 60-year
// cycle, from 1 (jiazi) to 60.
func (c *lunisolarCalendar) SexagenaryYear(t TimePoint) (int, error) {
	y, _, _, err := c.lunar("SexagenaryYear", t)
	if err != nil {
		return 0, err
	}
	return (y-4)%60 + 1, nil
}

// CelestialStem returns the heavenly stem, 1-10, of a sexagenary year.
func (c *lunisolarCalendar) CelestialStem(sexagenaryYear int) (int, error) {
	if sexagenaryYear < 1 || sexagenaryYear > 60 {
		return 0, newDomainError(c.op("CelestialStem"), "sexagenaryYear", "%d is outside 1-60", sexagenaryYear)
	}
	return (sexagenaryYear-1)%10 + 1, nil
}

// TerrestrialBranch returns the earthly branch, 1-12, of a sexagenary year.
func (c *lunisolarCalendar) TerrestrialBranch(sexagenaryYear int) (int, error) {
	if sexagenaryYear < 1 || sexagenaryYear > 60 {
		return 0, newDomainError(c.op("TerrestrialBranch"), "sexagenaryYear", "%d is outside 1-60", sexagenaryYear)
	}
	return (sexagenaryYear-1)%12 + 1, nil
}
