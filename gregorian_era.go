package worldcal

import "time"

// maxMonthOffset bounds the month offsets accepted by AddMonths.
const maxMonthOffset = 120000

// gregorianEraHelper implements a proleptic Gregorian calendar whose years
// are renumbered by an era table.
type gregorianEraHelper struct {
	eras         []EraInfo // most recent first
	minYear      int       // first year of the current era
	maxYear      int       // last year of the current era
	minSupported TimePoint
}

func newGregorianEraHelper(eras []EraInfo, minSupported TimePoint) *gregorianEraHelper {
	return &gregorianEraHelper{
		eras:         eras,
		minYear:      eras[0].MinEraYear,
		maxYear:      eras[0].MaxEraYear,
		minSupported: minSupported,
	}
}

func (h *gregorianEraHelper) currentEra() int {
	return h.eras[0].ID
}

// gregorianYear converts an era year to a Gregorian year.
func (h *gregorianEraHelper) gregorianYear(op string, year int, era Era) (int, error) {
	if year < 0 {
		return 0, newDomainError(op, "year", "year %d is negative", year)
	}
	id := era.resolve(h.currentEra())
	for _, e := range h.eras {
		if e.ID != id {
			continue
		}
		if year < e.MinEraYear || year > e.MaxEraYear {
			return 0, newDomainError(op, "year", "year %d is outside %d-%d for era %d", year, e.MinEraYear, e.MaxEraYear, id)
		}
		return year + e.YearOffset, nil
	}
	return 0, newEraError(op, id)
}

// eraOf returns the era containing t, scanning the most recent first.
func (h *gregorianEraHelper) eraOf(t TimePoint) *EraInfo {
	for i := range h.eras {
		if t >= h.eras[i].Start {
			return &h.eras[i]
		}
	}
	return &h.eras[len(h.eras)-1]
}

func (h *gregorianEraHelper) checkRange(op string, t TimePoint) error {
	return checkRange(op, t, h.minSupported, MaxTimePoint)
}

func checkGregorianMonth(op string, month int) error {
	if month < 1 || month > 12 {
		return newDomainError(op, "month", "month %d is outside 1-12", month)
	}
	return nil
}

func gregorianDaysInMonth(year, month int) int {
	table := gregorianMonthDays(year)
	return table[month] - table[month-1]
}

// dateToDays validates a Gregorian date and returns its day number.
func dateToDays(op string, year, month, day int) (int64, error) {
	if year < 1 || year > 9999 {
		return 0, newDomainError(op, "year", "year %d is outside 1-9999", year)
	}
	if err := checkGregorianMonth(op, month); err != nil {
		return 0, err
	}
	if n := gregorianDaysInMonth(year, month); day < 1 || day > n {
		return 0, newDomainError(op, "day", "day %d is outside 1-%d", day, n)
	}
	return gregorianDays(year, month, day), nil
}

func (h *gregorianEraHelper) toTimePoint(op string, year, month, day, hour, minute, second, millisecond int, era Era) (TimePoint, error) {
	y, err := h.gregorianYear(op, year, era)
	if err != nil {
		return 0, err
	}
	days, err := dateToDays(op, y, month, day)
	if err != nil {
		return 0, err
	}
	tod, err := timeToTicks(op, hour, minute, second, millisecond)
	if err != nil {
		return 0, err
	}
	t := TimePoint(days*TicksPerDay + tod)
	if err := checkResult(op, t, h.minSupported, MaxTimePoint); err != nil {
		return 0, err
	}
	return t, nil
}

// addMonths shifts t by a number of months, clamping the day to the length
// of the resulting month.
func (h *gregorianEraHelper) addMonths(op string, t TimePoint, months int) (TimePoint, error) {
	if months < -maxMonthOffset || months > maxMonthOffset {
		return 0, newDomainError(op, "months", "offset %d is outside ±%d", months, maxMonthOffset)
	}
	if err := h.checkRange(op, t); err != nil {
		return 0, err
	}
	y, m, d, _ := gregorianFromDays(t.Days())
	i := m - 1 + months
	if i >= 0 {
		m = i%12 + 1
		y += i / 12
	} else {
		m = 12 + (i+1)%12
		y += (i - 11) / 12
	}
	if y < 1 || y > 9999 {
		return 0, newRangeError(op, "year %d is outside 1-9999", y)
	}
	d = min(d, gregorianDaysInMonth(y, m))
	r := TimePoint(gregorianDays(y, m, d)*TicksPerDay + t.timeOfDay())
	if err := checkResult(op, r, h.minSupported, MaxTimePoint); err != nil {
		return 0, err
	}
	return r, nil
}

func (h *gregorianEraHelper) addYears(op string, t TimePoint, years int) (TimePoint, error) {
	if years < -maxMonthOffset/12 || years > maxMonthOffset/12 {
		return 0, newDomainError(op, "years", "offset %d is outside ±%d", years, maxMonthOffset/12)
	}
	return h.addMonths(op, t, years*12)
}

// eraCalendar is a Gregorian calendar renumbered by an era table. The
// Japanese, Korean, Taiwan and Thai Buddhist calendars are built on it.
type eraCalendar struct {
	calendarBase
	id     CalendarID
	helper *gregorianEraHelper
}

func newEraCalendar(id CalendarID, eras []EraInfo, minSupported TimePoint, twoDigitYearMax int) eraCalendar {
	h := newGregorianEraHelper(eras, minSupported)
	return eraCalendar{
		calendarBase: calendarBase{
			name:            id.String(),
			twoDigitYearMax: twoDigitYearMax,
			maxYear:         h.maxYear,
			daysBeforeMin:   daysPerYear,
		},
		id:     id,
		helper: h,
	}
}

// ID returns the calendar identifier.
func (c *eraCalendar) ID() CalendarID { return c.id }

// AlgorithmType returns [SolarCalendar].
func (c *eraCalendar) AlgorithmType() AlgorithmType { return SolarCalendar }

// MinSupported returns the first supported instant.
func (c *eraCalendar) MinSupported() TimePoint { return c.helper.minSupported }

// MaxSupported returns the last supported instant.
func (c *eraCalendar) MaxSupported() TimePoint { return MaxTimePoint }

// Eras returns the era identifiers, most recent first.
func (c *eraCalendar) Eras() []int {
	ids := make([]int, len(c.helper.eras))
	for i, e := range c.helper.eras {
		ids[i] = e.ID
	}
	return ids
}

// EraInfos returns a copy of the era table, most recent first.
func (c *eraCalendar) EraInfos() []EraInfo {
	return append([]EraInfo(nil), c.helper.eras...)
}

// AddMonths returns t shifted by the given number of months.
func (c *eraCalendar) AddMonths(t TimePoint, months int) (TimePoint, error) {
	return c.helper.addMonths(c.op("AddMonths"), t, months)
}

// AddYears returns t shifted by the given number of years.
func (c *eraCalendar) AddYears(t TimePoint, years int) (TimePoint, error) {
	return c.helper.addYears(c.op("AddYears"), t, years)
}

func (c *eraCalendar) fields(name string, t TimePoint) (year, month, day, dayOfYear int, err error) {
	if err := c.helper.checkRange(c.op(name), t); err != nil {
		return 0, 0, 0, 0, err
	}
	year, month, day, dayOfYear = gregorianFromDays(t.Days())
	return year, month, day, dayOfYear, nil
}

// Year returns the era year of t.
func (c *eraCalendar) Year(t TimePoint) (int, error) {
	y, _, _, _, err := c.fields("Year", t)
	if err != nil {
		return 0, err
	}
	return y - c.helper.eraOf(t).YearOffset, nil
}

// Month returns the month of t.
func (c *eraCalendar) Month(t TimePoint) (int, error) {
	_, m, _, _, err := c.fields("Month", t)
	return m, err
}

// DayOfMonth returns the day of the month of t.
func (c *eraCalendar) DayOfMonth(t TimePoint) (int, error) {
	_, _, d, _, err := c.fields("DayOfMonth", t)
	return d, err
}

// DayOfYear returns the day of the year of t.
func (c *eraCalendar) DayOfYear(t TimePoint) (int, error) {
	_, _, _, doy, err := c.fields("DayOfYear", t)
	return doy, err
}

// DayOfWeek returns the weekday of t.
func (c *eraCalendar) DayOfWeek(t TimePoint) (time.Weekday, error) {
	if err := c.helper.checkRange(c.op("DayOfWeek"), t); err != nil {
		return 0, err
	}
	return dayOfWeek(t.Days()), nil
}

// Era returns the era of t.
func (c *eraCalendar) Era(t TimePoint) (int, error) {
	if err := c.helper.checkRange(c.op("Era"), t); err != nil {
		return 0, err
	}
	return c.helper.eraOf(t).ID, nil
}

// DaysInMonth returns the number of days in the month.
func (c *eraCalendar) DaysInMonth(year, month int, era Era) (int, error) {
	op := c.op("DaysInMonth")
	y, err := c.helper.gregorianYear(op, year, era)
	if err != nil {
		return 0, err
	}
	if err := checkGregorianMonth(op, month); err != nil {
		return 0, err
	}
	return gregorianDaysInMonth(y, month), nil
}

// DaysInYear returns 366 in leap years and 365 otherwise.
func (c *eraCalendar) DaysInYear(year int, era Era) (int, error) {
	y, err := c.helper.gregorianYear(c.op("DaysInYear"), year, era)
	if err != nil {
		return 0, err
	}
	if isGregorianLeapYear(y) {
		return 366, nil
	}
	return 365, nil
}

// MonthsInYear returns 12.
func (c *eraCalendar) MonthsInYear(year int, era Era) (int, error) {
	if _, err := c.helper.gregorianYear(c.op("MonthsInYear"), year, era); err != nil {
		return 0, err
	}
	return 12, nil
}

// IsLeapYear reports whether the year has 366 days.
func (c *eraCalendar) IsLeapYear(year int, era Era) (bool, error) {
	y, err := c.helper.gregorianYear(c.op("IsLeapYear"), year, era)
	if err != nil {
		return false, err
	}
	return isGregorianLeapYear(y), nil
}

// IsLeapMonth reports false for every valid month.
func (c *eraCalendar) IsLeapMonth(year, month int, era Era) (bool, error) {
	op := c.op("IsLeapMonth")
	if _, err := c.helper.gregorianYear(op, year, era); err != nil {
		return false, err
	}
	if err := checkGregorianMonth(op, month); err != nil {
		return false, err
	}
	return false, nil
}

// IsLeapDay reports whether the date is February 29.
func (c *eraCalendar) IsLeapDay(year, month, day int, era Era) (bool, error) {
	op := c.op("IsLeapDay")
	y, err := c.helper.gregorianYear(op, year, era)
	if err != nil {
		return false, err
	}
	if _, err := dateToDays(op, y, month, day); err != nil {
		return false, err
	}
	return isGregorianLeapYear(y) && month == 2 && day == 29, nil
}

// LeapMonth returns 0: these calendars have no leap months.
func (c *eraCalendar) LeapMonth(year int, era Era) (int, error) {
	return scanLeapMonth(12, func(m int) (bool, error) { return c.IsLeapMonth(year, m, era) })
}

// ToTimePoint returns the instant of the given era date and time of day.
func (c *eraCalendar) ToTimePoint(year, month, day, hour, minute, second, millisecond int, era Era) (TimePoint, error) {
	return c.helper.toTimePoint(c.op("ToTimePoint"), year, month, day, hour, minute, second, millisecond, era)
}

// ToFourDigitYear expands a two-digit year using the two-digit year window.
func (c *eraCalendar) ToFourDigitYear(year int) (int, error) {
	return toFourDigitYear(c.op("ToFourDigitYear"), year, c.twoDigitYearMax, c.helper.minYear, c.helper.maxYear)
}

// clone returns a writable copy sharing the immutable era table.
func (c *eraCalendar) clone() eraCalendar {
	cp := *c
	cp.readOnly = false
	return cp
}
