package worldcal

import "time"

// hebrewYear is one row of the generated Hebrew table, for one Gregorian
// year.
type hebrewYear struct {
	jan1Month uint8 // Hebrew month of January 1
	jan1Day   uint8 // Hebrew day of January 1
	yearType  uint8 // type of the Hebrew year in progress on January 1
}

const (
	// hebrewYearOf1AD is the Hebrew year in progress on January 1, 1 AD.
	hebrewYearOf1AD = 3760

	hebrewFirstYear = hebrewFirstGregorianYear + hebrewYearOf1AD
	hebrewLastYear  = hebrewFirstGregorianYear + len(hebrewYears) - 1 + hebrewYearOf1AD

	// hebrewLeapMonth is Adar II, the month repeated in leap years.
	hebrewLeapMonth = 7
)

// hebrewMonthLengths holds the month lengths for year types 1-6: deficient,
// regular and complete common years (353-355 days), then deficient, regular
// and complete leap years (383-385 days). Common years have no 13th month.
var hebrewMonthLengths = [6][13]uint8{
	{30, 29, 29, 29, 30, 29, 30, 29, 30, 29, 30, 29, 0},
	{30, 29, 30, 29, 30, 29, 30, 29, 30, 29, 30, 29, 0},
	{30, 30, 30, 29, 30, 29, 30, 29, 30, 29, 30, 29, 0},
	{30, 29, 29, 29, 30, 30, 29, 30, 29, 30, 29, 30, 29},
	{30, 29, 30, 29, 30, 30, 29, 30, 29, 30, 29, 30, 29},
	{30, 30, 30, 29, 30, 30, 29, 30, 29, 30, 29, 30, 29},
}

var hebrewYearLengths = [6]int{353, 354, 355, 383, 384, 385}

var (
	hebrewMinSupported = date{hebrewFirstGregorianYear, time.January, 1}.timePoint()
	hebrewMaxSupported = TimePoint((hebrewNewYearDays(hebrewLastYear)+int64(hebrewYearLengths[hebrewYearType(hebrewLastYear)-1]))*TicksPerDay) - 1
)

// HebrewCalendar is the Hebrew (Jewish) calendar, read from a table covering
// 1583-01-01 to 2239-09-29 (5343-5999). Months are numbered from Tishrei; in
// leap years month 6 is Adar I and month 7 is Adar II.
type HebrewCalendar struct {
	calendarBase
}

// NewHebrewCalendar returns a writable Hebrew calendar.
func NewHebrewCalendar() *HebrewCalendar {
	return &HebrewCalendar{calendarBase{
		name:            Hebrew.String(),
		twoDigitYearMax: 5790,
		maxYear:         hebrewLastYear,
		daysBeforeMin:   hebrewDaysInYearBeforeFirst,
	}}
}

// ID returns [Hebrew].
func (c *HebrewCalendar) ID() CalendarID { return Hebrew }

// AlgorithmType returns [LunisolarCalendar].
func (c *HebrewCalendar) AlgorithmType() AlgorithmType { return LunisolarCalendar }

// MinSupported returns 1583-01-01, 7 Tevet 5343.
func (c *HebrewCalendar) MinSupported() TimePoint { return hebrewMinSupported }

// MaxSupported returns the last instant of 2239-09-29, 29 Elul 5999.
func (c *HebrewCalendar) MaxSupported() TimePoint { return hebrewMaxSupported }

// Eras returns the single era 1 (AM).
func (c *HebrewCalendar) Eras() []int { return []int{1} }

// Clone returns a writable copy.
func (c *HebrewCalendar) Clone() Calendar {
	cp := *c
	cp.readOnly = false
	return &cp
}

func hebrewRow(gregorianYear int) *hebrewYear {
	return &hebrewYears[gregorianYear-hebrewFirstGregorianYear]
}

func hebrewMonthLength(yearType, month int) int {
	return int(hebrewMonthLengths[yearType-1][month-1])
}

func hebrewYearType(year int) int {
	return int(hebrewRow(year - hebrewYearOf1AD).yearType)
}

func isHebrewLeapYear(year int) bool {
	return (7*year+1)%19 < 7
}

func hebrewMonthsInYear(year int) int {
	if isHebrewLeapYear(year) {
		return 13
	}
	return 12
}

// hebrewDaysBeforeMonth returns the number of days from the start of a year
// of the given type to the start of month.
func hebrewDaysBeforeMonth(yearType, month int) int {
	n := 0
	for m := 1; m < month; m++ {
		n += hebrewMonthLength(yearType, m)
	}
	return n
}

// hebrewNewYearDays returns the day number of 1 Tishrei of the year, counted
// back from the January 1 that falls inside it.
func hebrewNewYearDays(year int) int64 {
	g := year - hebrewYearOf1AD
	row := hebrewRow(g)
	offset := hebrewDaysBeforeMonth(int(row.yearType), int(row.jan1Month)) + int(row.jan1Day) - 1
	return gregorianDays(g, 1, 1) - int64(offset)
}

// hebrewFromDays converts a day number to a Hebrew date. It starts at the
// Hebrew date of the preceding January 1 and walks forward month by month,
// moving to the next Hebrew year (and the next row's year type) when the
// current year runs out of months.
func hebrewFromDays(days int64) (year, month, day int) {
	g, gm, gd, _ := gregorianFromDays(days)
	row := hebrewRow(g)
	year = g + hebrewYearOf1AD
	month = int(row.jan1Month)
	day = int(row.jan1Day)
	yearType := int(row.yearType)
	if gm == 1 && gd == 1 {
		return year, month, day
	}

	n := int(days - gregorianDays(g, 1, 1))
	length := hebrewMonthLength(yearType, month)
	if n+day <= length {
		return year, month, day + n
	}

	// January 1 never falls in the last month of a year.
	n -= length - day
	month++
	day = 1
	for n > hebrewMonthLength(yearType, month) {
		n -= hebrewMonthLength(yearType, month)
		month++
		if month > 13 || hebrewMonthLength(yearType, month) == 0 {
			year++
			yearType = int(hebrewRow(g + 1).yearType)
			month = 1
		}
	}
	return year, month, day + n - 1
}

func (c *HebrewCalendar) fields(name string, t TimePoint) (year, month, day, dayOfYear int, err error) {
	if err := checkRange(c.op(name), t, hebrewMinSupported, hebrewMaxSupported); err != nil {
		return 0, 0, 0, 0, err
	}
	year, month, day = hebrewFromDays(t.Days())
	dayOfYear = int(t.Days()-hebrewNewYearDays(year)) + 1
	return year, month, day, dayOfYear, nil
}

func (c *HebrewCalendar) checkYear(op string, year int, era Era) error {
	if id := era.resolve(1); id != 1 {
		return newEraError(op, id)
	}
	if year < hebrewFirstYear || year > hebrewLastYear {
		return newDomainError(op, "year", "year %d is outside %d-%d", year, hebrewFirstYear, hebrewLastYear)
	}
	return nil
}

func (c *HebrewCalendar) checkMonth(op string, year, month int, era Era) error {
	if err := c.checkYear(op, year, era); err != nil {
		return err
	}
	if n := hebrewMonthsInYear(year); month < 1 || month > n {
		return newDomainError(op, "month", "month %d is outside 1-%d", month, n)
	}
	return nil
}

func (c *HebrewCalendar) checkDate(op string, year, month, day int, era Era) error {
	if err := c.checkMonth(op, year, month, era); err != nil {
		return err
	}
	if n := hebrewMonthLength(hebrewYearType(year), month); day < 1 || day > n {
		return newDomainError(op, "day", "day %d is outside 1-%d", day, n)
	}
	return nil
}

// compose returns the instant of a valid Hebrew date with the time of day
// of tod, failing when it lies outside the supported range.
func (c *HebrewCalendar) compose(op string, year, month, day int, tod int64) (TimePoint, error) {
	days := hebrewNewYearDays(year) + int64(hebrewDaysBeforeMonth(hebrewYearType(year), month)+day-1)
	t := TimePoint(days*TicksPerDay + tod)
	if err := checkResult(op, t, hebrewMinSupported, hebrewMaxSupported); err != nil {
		return 0, err
	}
	return t, nil
}

// AddMonths returns t shifted by the given number of months, clamping the
// day to the length of the resulting month. Years are walked one at a time
// since they have 12 or 13 months.
func (c *HebrewCalendar) AddMonths(t TimePoint, months int) (TimePoint, error) {
	op := c.op("AddMonths")
	if months < -maxMonthOffset || months > maxMonthOffset {
		return 0, newDomainError(op, "months", "offset %d is outside ±%d", months, maxMonthOffset)
	}
	y, m, d, _, err := c.fields("AddMonths", t)
	if err != nil {
		return 0, err
	}
	outOfRange := func() error {
		return newRangeError(op, "adding %d months leaves years %d-%d", months, hebrewFirstYear, hebrewLastYear)
	}

	i := m + months
	switch {
	case months >= 0:
		for {
			n := hebrewMonthsInYear(y)
			if i <= n {
				break
			}
			y++
			i -= n
			if y > hebrewLastYear {
				return 0, outOfRange()
			}
		}
	case i <= 0:
		left := -months - m
		y--
		for y >= hebrewFirstYear && left >= hebrewMonthsInYear(y) {
			left -= hebrewMonthsInYear(y)
			y--
		}
		if y < hebrewFirstYear {
			return 0, outOfRange()
		}
		i = hebrewMonthsInYear(y) - left
	}

	d = min(d, hebrewMonthLength(hebrewYearType(y), i))
	return c.compose(op, y, i, d, t.timeOfDay())
}

// AddYears returns t shifted by the given number of years. The month is
// clamped to the months of the resulting year, then the day to the month.
func (c *HebrewCalendar) AddYears(t TimePoint, years int) (TimePoint, error) {
	op := c.op("AddYears")
	y, m, d, _, err := c.fields("AddYears", t)
	if err != nil {
		return 0, err
	}
	if years < hebrewFirstYear-y || years > hebrewLastYear-y {
		return 0, newRangeError(op, "adding %d years leaves years %d-%d", years, hebrewFirstYear, hebrewLastYear)
	}
	y += years
	m = min(m, hebrewMonthsInYear(y))
	d = min(d, hebrewMonthLength(hebrewYearType(y), m))
	return c.compose(op, y, m, d, t.timeOfDay())
}

// Year returns the Hebrew year of t.
func (c *HebrewCalendar) Year(t TimePoint) (int, error) {
	y, _, _, _, err := c.fields("Year", t)
	return y, err
}

// Month returns the Hebrew month of t.
func (c *HebrewCalendar) Month(t TimePoint) (int, error) {
	_, m, _, _, err := c.fields("Month", t)
	return m, err
}

// DayOfMonth returns the Hebrew day of the month of t.
func (c *HebrewCalendar) DayOfMonth(t TimePoint) (int, error) {
	_, _, d, _, err := c.fields("DayOfMonth", t)
	return d, err
}

// DayOfYear returns the day of the Hebrew year of t, counted from 1 Tishrei.
func (c *HebrewCalendar) DayOfYear(t TimePoint) (int, error) {
	_, _, _, doy, err := c.fields("DayOfYear", t)
	return doy, err
}

// DayOfWeek returns the weekday of t.
func (c *HebrewCalendar) DayOfWeek(t TimePoint) (time.Weekday, error) {
	if err := checkRange(c.op("DayOfWeek"), t, hebrewMinSupported, hebrewMaxSupported); err != nil {
		return 0, err
	}
	return dayOfWeek(t.Days()), nil
}

// Era returns 1.
func (c *HebrewCalendar) Era(t TimePoint) (int, error) {
	if err := checkRange(c.op("Era"), t, hebrewMinSupported, hebrewMaxSupported); err != nil {
		return 0, err
	}
	return 1, nil
}

// DaysInMonth returns the length of the month in the given year.
func (c *HebrewCalendar) DaysInMonth(year, month int, era Era) (int, error) {
	if err := c.checkMonth(c.op("DaysInMonth"), year, month, era); err != nil {
		return 0, err
	}
	return hebrewMonthLength(hebrewYearType(year), month), nil
}

// DaysInYear returns 353, 354 or 355 for common years and 383, 384 or 385
// for leap years.
func (c *HebrewCalendar) DaysInYear(year int, era Era) (int, error) {
	if err := c.checkYear(c.op("DaysInYear"), year, era); err != nil {
		return 0, err
	}
	return hebrewYearLengths[hebrewYearType(year)-1], nil
}

// MonthsInYear returns 13 in leap years and 12 otherwise.
func (c *HebrewCalendar) MonthsInYear(year int, era Era) (int, error) {
	if err := c.checkYear(c.op("MonthsInYear"), year, era); err != nil {
		return 0, err
	}
	return hebrewMonthsInYear(year), nil
}

// IsLeapYear reports whether (7*year + 1) mod 19 is below 7.
func (c *HebrewCalendar) IsLeapYear(year int, era Era) (bool, error) {
	if err := c.checkYear(c.op("IsLeapYear"), year, era); err != nil {
		return false, err
	}
	return isHebrewLeapYear(year), nil
}

// IsLeapMonth reports whether month is Adar II of a leap year.
func (c *HebrewCalendar) IsLeapMonth(year, month int, era Era) (bool, error) {
	if err := c.checkMonth(c.op("IsLeapMonth"), year, month, era); err != nil {
		return false, err
	}
	return isHebrewLeapYear(year) && month == hebrewLeapMonth, nil
}

// IsLeapDay reports whether the date is in Adar II or is the 30th of Adar I.
func (c *HebrewCalendar) IsLeapDay(year, month, day int, era Era) (bool, error) {
	if err := c.checkDate(c.op("IsLeapDay"), year, month, day, era); err != nil {
		return false, err
	}
	if !isHebrewLeapYear(year) {
		return false, nil
	}
	return month == hebrewLeapMonth || (month == hebrewLeapMonth-1 && day == 30), nil
}

// LeapMonth returns 7 in leap years and 0 otherwise.
func (c *HebrewCalendar) LeapMonth(year int, era Era) (int, error) {
	if err := c.checkYear(c.op("LeapMonth"), year, era); err != nil {
		return 0, err
	}
	if isHebrewLeapYear(year) {
		return hebrewLeapMonth, nil
	}
	return 0, nil
}

// ToTimePoint returns the instant of the given Hebrew date and time of day.
func (c *HebrewCalendar) ToTimePoint(year, month, day, hour, minute, second, millisecond int, era Era) (TimePoint, error) {
	op := c.op("ToTimePoint")
	if err := c.checkDate(op, year, month, day, era); err != nil {
		return 0, err
	}
	tod, err := timeToTicks(op, hour, minute, second, millisecond)
	if err != nil {
		return 0, err
	}
	return c.compose(op, year, month, day, tod)
}

// ToFourDigitYear expands a two-digit year using the two-digit year window.
func (c *HebrewCalendar) ToFourDigitYear(year int) (int, error) {
	return toFourDigitYear(c.op("ToFourDigitYear"), year, c.twoDigitYearMax, hebrewFirstYear, hebrewLastYear)
}
