package worldcal

import (
	"log/slog"
	"time"
)

const (
	hijriMaxYear  = 9666
	hijriMaxMonth = 4 // last month of hijriMaxYear in range

	// hijriEpochDays is the day number before 1 Muharram 1 AH (0622-07-18)
	// in the 1-based day count the year table uses.
	hijriEpochDays = 227013

	// Days in a 30-year cycle.
	hijriDaysPerCycle = 10631

	minHijriAdjustment = -2
	maxHijriAdjustment = 2
)

// hijriMonthDays holds the cumulative day counts before each month of a
// common Hijri year.
var hijriMonthDays = [13]int{0, 30, 59, 89, 118, 148, 177, 207, 236, 266, 295, 325, 355}

var hijriMinSupported = date{622, time.July, 18}.timePoint()

// HijriAdjustmentSource supplies the number of days, in [-2, 2], added to
// Hijri dates to follow local moon sightings.
type HijriAdjustmentSource interface {
	HijriAdjustment() (int, error)
}

// StaticHijriAdjustment is a fixed [HijriAdjustmentSource].
type StaticHijriAdjustment int

// HijriAdjustment returns the fixed adjustment.
func (a StaticHijriAdjustment) HijriAdjustment() (int, error) {
	return int(a), nil
}

// HijriCalendar is the arithmetic (tabular) Islamic calendar: 11 leap years
// in every 30-year cycle, months alternating 30 and 29 days.
type HijriCalendar struct {
	calendarBase
	adjustment int
}

// NewHijriCalendar returns a writable Hijri calendar. The adjustment is read
// once from the source given with [WithHijriAdjustmentSource]; a failing
// source or an out-of-range value leaves it at 0.
func NewHijriCalendar(opts ...Option) *HijriCalendar {
	o := newOptions(opts)
	return &HijriCalendar{
		calendarBase: calendarBase{
			name:            Hijri.String(),
			twoDigitYearMax: 1451,
			maxYear:         hijriMaxYear,
			daysBeforeMin:   354,
		},
		adjustment: readHijriAdjustment(o.hijriAdjustments, o.logger),
	}
}

func readHijriAdjustment(src HijriAdjustmentSource, logger *slog.Logger) int {
	if src == nil {
		return 0
	}
	v, err := src.HijriAdjustment()
	if err != nil {
		logger.Warn("hijri adjustment source failed", logKeyComponent, compHijri, logKeyReason, err)
		return 0
	}
	if v < minHijriAdjustment || v > maxHijriAdjustment {
		logger.Warn("hijri adjustment out of range", logKeyComponent, compHijri, logKeyValue, v)
		return 0
	}
	return v
}

// HijriAdjustment returns the number of days added to Hijri dates.
func (c *HijriCalendar) HijriAdjustment() int {
	return c.adjustment
}

// SetHijriAdjustment changes the number of days added to Hijri dates.
func (c *HijriCalendar) SetHijriAdjustment(days int) error {
	op := c.op("SetHijriAdjustment")
	if days < minHijriAdjustment || days > maxHijriAdjustment {
		return newDomainError(op, "days", "adjustment %d is outside %d-%d", days, minHijriAdjustment, maxHijriAdjustment)
	}
	if err := c.checkWritable("SetHijriAdjustment"); err != nil {
		return err
	}
	c.adjustment = days
	return nil
}

// ID returns [Hijri].
func (c *HijriCalendar) ID() CalendarID { return Hijri }

// AlgorithmType returns [LunarCalendar].
func (c *HijriCalendar) AlgorithmType() AlgorithmType { return LunarCalendar }

// MinSupported returns 0622-07-18, the Gregorian date of 1 Muharram 1 AH. A
// negative adjustment moves it later so that it still falls in year 1.
func (c *HijriCalendar) MinSupported() TimePoint {
	if c.adjustment < 0 {
		return hijriMinSupported - TimePoint(int64(c.adjustment)*TicksPerDay)
	}
	return hijriMinSupported
}

// MaxSupported returns [MaxTimePoint], 3 Rabi' al-thani 9666 AH.
func (c *HijriCalendar) MaxSupported() TimePoint { return MaxTimePoint }

// Eras returns the single era 1 (AH).
func (c *HijriCalendar) Eras() []int { return []int{1} }

// Clone returns a writable copy.
func (c *HijriCalendar) Clone() Calendar {
	cp := *c
	cp.readOnly = false
	return &cp
}

func isHijriLeapYear(year int) bool {
	return (year*11+14)%30 < 11
}

func hijriDaysInYear(year int) int {
	if isHijriLeapYear(year) {
		return 355
	}
	return 354
}

func hijriDaysInMonth(year, month int) int {
	if month == 12 {
		if isHijriLeapYear(year) {
			return 30
		}
		return 29
	}
	if month%2 == 1 {
		return 30
	}
	return 29
}

// hijriDaysUpToYear returns the 1-based day number of the day before
// 1 Muharram of the year.
func hijriDaysUpToYear(year int) int64 {
	cycles := ((year - 1) / 30) * 30
	days := int64(cycles)*hijriDaysPerCycle/30 + hijriEpochDays
	for left := year - cycles - 1; left > 0; left-- {
		days += int64(hijriDaysInYear(left))
	}
	return days
}

// days returns the day number of a Hijri date.
func (c *HijriCalendar) days(year, month, day int) int64 {
	return hijriDaysUpToYear(year) + int64(hijriMonthDays[month-1]+day-1-c.adjustment)
}

func (c *HijriCalendar) fields(name string, t TimePoint) (year, month, day, dayOfYear int, err error) {
	if err := checkRange(c.op(name), t, c.MinSupported(), MaxTimePoint); err != nil {
		return 0, 0, 0, 0, err
	}
	n := t.Days() + 1 + int64(c.adjustment)

	year = int((n-hijriEpochDays)*30/hijriDaysPerCycle) + 1
	start := hijriDaysUpToYear(year)
	length := int64(hijriDaysInYear(year))
	switch {
	case n <= start:
		year--
		start -= int64(hijriDaysInYear(year))
	case n > start+length:
		start += length
		year++
	}

	dayOfYear = int(n - start)
	month = 1
	for month <= 12 && dayOfYear > hijriMonthDays[month-1] {
		month++
	}
	month--
	day = dayOfYear - hijriMonthDays[month-1]
	return year, month, day, dayOfYear, nil
}

func (c *HijriCalendar) checkYear(op string, year int, era Era) error {
	if id := era.resolve(1); id != 1 {
		return newEraError(op, id)
	}
	if year < 1 || year > hijriMaxYear {
		return newDomainError(op, "year", "year %d is outside 1-%d", year, hijriMaxYear)
	}
	return nil
}

func (c *HijriCalendar) checkMonth(op string, year, month int, era Era) error {
	if err := c.checkYear(op, year, era); err != nil {
		return err
	}
	if year == hijriMaxYear && month > hijriMaxMonth {
		return newDomainError(op, "month", "month %d is past the end of year %d", month, year)
	}
	return checkGregorianMonth(op, month)
}

func (c *HijriCalendar) checkDate(op string, year, month, day int, era Era) error {
	if err := c.checkMonth(op, year, month, era); err != nil {
		return err
	}
	if n := hijriDaysInMonth(year, month); day < 1 || day > n {
		return newDomainError(op, "day", "day %d is outside 1-%d", day, n)
	}
	return nil
}

// AddMonths returns t shifted by the given number of months, clamping the
// day to the length of the resulting month.
func (c *HijriCalendar) AddMonths(t TimePoint, months int) (TimePoint, error) {
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
	if y < 1 || y > hijriMaxYear {
		return 0, newRangeError(op, "year %d is outside 1-%d", y, hijriMaxYear)
	}
	d = min(d, hijriDaysInMonth(y, m))
	r := TimePoint(c.days(y, m, d)*TicksPerDay + t.timeOfDay())
	if err := checkResult(op, r, c.MinSupported(), MaxTimePoint); err != nil {
		return 0, err
	}
	return r, nil
}

// AddYears returns t shifted by the given number of years.
func (c *HijriCalendar) AddYears(t TimePoint, years int) (TimePoint, error) {
	if years < -maxMonthOffset/12 || years > maxMonthOffset/12 {
		return 0, newDomainError(c.op("AddYears"), "years", "offset %d is outside ±%d", years, maxMonthOffset/12)
	}
	return c.AddMonths(t, years*12)
}

// Year returns the Hijri year of t.
func (c *HijriCalendar) Year(t TimePoint) (int, error) {
	y, _, _, _, err := c.fields("Year", t)
	return y, err
}

// Month returns the Hijri month of t.
func (c *HijriCalendar) Month(t TimePoint) (int, error) {
	_, m, _, _, err := c.fields("Month", t)
	return m, err
}

// DayOfMonth returns the Hijri day of the month of t.
func (c *HijriCalendar) DayOfMonth(t TimePoint) (int, error) {
	_, _, d, _, err := c.fields("DayOfMonth", t)
	return d, err
}

// DayOfYear returns the Hijri day of the year of t.
func (c *HijriCalendar) DayOfYear(t TimePoint) (int, error) {
	_, _, _, doy, err := c.fields("DayOfYear", t)
	return doy, err
}

// DayOfWeek returns the weekday of t.
func (c *HijriCalendar) DayOfWeek(t TimePoint) (time.Weekday, error) {
	if err := checkRange(c.op("DayOfWeek"), t, c.MinSupported(), MaxTimePoint); err != nil {
		return 0, err
	}
	return dayOfWeek(t.Days()), nil
}

// Era returns 1.
func (c *HijriCalendar) Era(t TimePoint) (int, error) {
	if err := checkRange(c.op("Era"), t, c.MinSupported(), MaxTimePoint); err != nil {
		return 0, err
	}
	return 1, nil
}

// DaysInMonth returns 30 for odd months, 29 for even months and 30 for the
// twelfth month of a leap year.
func (c *HijriCalendar) DaysInMonth(year, month int, era Era) (int, error) {
	if err := c.checkMonth(c.op("DaysInMonth"), year, month, era); err != nil {
		return 0, err
	}
	return hijriDaysInMonth(year, month), nil
}

// DaysInYear returns 355 in leap years and 354 otherwise.
func (c *HijriCalendar) DaysInYear(year int, era Era) (int, error) {
	if err := c.checkYear(c.op("DaysInYear"), year, era); err != nil {
		return 0, err
	}
	return hijriDaysInYear(year), nil
}

// MonthsInYear returns 12.
func (c *HijriCalendar) MonthsInYear(year int, era Era) (int, error) {
	if err := c.checkYear(c.op("MonthsInYear"), year, era); err != nil {
		return 0, err
	}
	return 12, nil
}

// IsLeapYear reports whether (11*year + 14) mod 30 is below 11.
func (c *HijriCalendar) IsLeapYear(year int, era Era) (bool, error) {
	if err := c.checkYear(c.op("IsLeapYear"), year, era); err != nil {
		return false, err
	}
	return isHijriLeapYear(year), nil
}

// IsLeapMonth reports false for every valid month.
func (c *HijriCalendar) IsLeapMonth(year, month int, era Era) (bool, error) {
	return false, c.checkMonth(c.op("IsLeapMonth"), year, month, era)
}

// IsLeapDay reports whether the date is the 30th day of the twelfth month.
func (c *HijriCalendar) IsLeapDay(year, month, day int, era Era) (bool, error) {
	if err := c.checkDate(c.op("IsLeapDay"), year, month, day, era); err != nil {
		return false, err
	}
	return isHijriLeapYear(year) && month == 12 && day == 30, nil
}

// LeapMonth returns 0.
func (c *HijriCalendar) LeapMonth(year int, era Era) (int, error) {
	months := 12
	if year == hijriMaxYear {
		months = hijriMaxMonth
	}
	return scanLeapMonth(months, func(m int) (bool, error) { return c.IsLeapMonth(year, m, era) })
}

// ToTimePoint returns the instant of the given Hijri date and time of day.
func (c *HijriCalendar) ToTimePoint(year, month, day, hour, minute, second, millisecond int, era Era) (TimePoint, error) {
	op := c.op("ToTimePoint")
	if err := c.checkDate(op, year, month, day, era); err != nil {
		return 0, err
	}
	tod, err := timeToTicks(op, hour, minute, second, millisecond)
	if err != nil {
		return 0, err
	}
	days := c.days(year, month, day)
	if days < 0 || days >= daysTo10000 {
		return 0, newRangeError(op, "%04d-%02d-%02d AH is outside the TimePoint range", year, month, day)
	}
	t := TimePoint(days*TicksPerDay + tod)
	if err := checkResult(op, t, c.MinSupported(), MaxTimePoint); err != nil {
		return 0, err
	}
	return t, nil
}

// ToFourDigitYear expands a two-digit year using the two-digit year window.
func (c *HijriCalendar) ToFourDigitYear(year int) (int, error) {
	return toFourDigitYear(c.op("ToFourDigitYear"), year, c.twoDigitYearMax, 1, hijriMaxYear)
}
