// Package worldcal converts between a universal time value and the dates of
// twelve calendar systems.
//
// A [TimePoint] counts 100-nanosecond ticks since 0001-01-01 on the
// proleptic Gregorian calendar. Every [Calendar] maps a TimePoint to an
// (era, year, month, day) tuple and back: Gregorian and its era-based
// variants (Japanese, Korean, Taiwan, Thai Buddhist), Julian, the arithmetic
// Hijri and tabular Umm al-Qura lunar calendars, the Hebrew calendar, the
// astronomical Persian calendar and the Chinese and Taiwan lunisolar
// calendars.
//
// Table-driven calendars read compiled-in data generated by cmd/gentables,
// so no runtime parsing or I/O takes place.
//
// Basic usage:
//
//	cal, _ := worldcal.Default(worldcal.Hebrew)
//	t, _ := worldcal.FromTime(time.Date(2024, 10, 3, 0, 0, 0, 0, time.UTC))
//	y, _ := cal.Year(t)  // 5785
//
// Instances returned by [New] are writable; [ReadOnly] returns a frozen copy.
// Calendars are safe for concurrent reads. Mutators ([Calendar.SetTwoDigitYearMax],
// [HijriCalendar.SetHijriAdjustment]) need external synchronization, or a
// [Calendar.Clone] per goroutine.
package worldcal

import (
	"fmt"
	"time"
)

// CalendarID identifies a calendar system.
type CalendarID int

// Calendar identifiers.
const (
	Gregorian        CalendarID = 1
	Japanese         CalendarID = 3
	Taiwan           CalendarID = 4
	Korean           CalendarID = 5
	Hijri            CalendarID = 6
	ThaiBuddhist     CalendarID = 7
	Hebrew           CalendarID = 8
	Julian           CalendarID = 13
	ChineseLunisolar CalendarID = 15
	TaiwanLunisolar  CalendarID = 21
	Persian          CalendarID = 22
	UmAlQura         CalendarID = 23
)

var calendarNames = map[CalendarID]string{
	Gregorian:        "gregorian",
	Japanese:         "japanese",
	Taiwan:           "taiwan",
	Korean:           "korean",
	Hijri:            "hijri",
	ThaiBuddhist:     "thai",
	Hebrew:           "hebrew",
	Julian:           "julian",
	ChineseLunisolar: "chinese",
	TaiwanLunisolar:  "taiwan-lunisolar",
	Persian:          "persian",
	UmAlQura:         "umalqura",
}

// CalendarIDs returns every supported calendar identifier in ascending order.
func CalendarIDs() []CalendarID {
	return []CalendarID{
		Gregorian, Japanese, Taiwan, Korean, Hijri, ThaiBuddhist,
		Hebrew, Julian, ChineseLunisolar, TaiwanLunisolar, Persian, UmAlQura,
	}
}

// String returns the short lowercase name of the calendar (e.g., "hebrew").
func (id CalendarID) String() string {
	if name, ok := calendarNames[id]; ok {
		return name
	}
	return fmt.Sprintf("CalendarID(%d)", int(id))
}

// ParseCalendarID returns the identifier whose String form is name.
func ParseCalendarID(name string) (CalendarID, error) {
	for id, n := range calendarNames {
		if n == name {
			return id, nil
		}
	}
	return 0, newDomainError("ParseCalendarID", "name", "unknown calendar %q", name)
}

// AlgorithmType tells whether a calendar follows the sun, the moon or both.
type AlgorithmType int

// Algorithm types.
const (
	SolarCalendar AlgorithmType = iota + 1
	LunarCalendar
	LunisolarCalendar
)

func (a AlgorithmType) String() string {
	switch a {
	case SolarCalendar:
		return "solar"
	case LunarCalendar:
		return "lunar"
	case LunisolarCalendar:
		return "lunisolar"
	}
	return fmt.Sprintf("AlgorithmType(%d)", int(a))
}

// Calendar is the capability set shared by every calendar system.
//
// Months are numbered from 1. In lunisolar calendars a leap month takes the
// slot right after the month it repeats, so month numbers run to 13 in leap
// years. Accessors taking a TimePoint fail with [ErrDomainRange] when the
// value lies outside [MinSupported, MaxSupported].
type Calendar interface {
	ID() CalendarID
	AlgorithmType() AlgorithmType
	MinSupported() TimePoint
	MaxSupported() TimePoint

	// Eras returns the era identifiers, most recent first.
	Eras() []int

	AddMonths(t TimePoint, months int) (TimePoint, error)
	AddYears(t TimePoint, years int) (TimePoint, error)

	Year(t TimePoint) (int, error)
	Month(t TimePoint) (int, error)
	DayOfMonth(t TimePoint) (int, error)
	DayOfYear(t TimePoint) (int, error)
	DayOfWeek(t TimePoint) (time.Weekday, error)
	Era(t TimePoint) (int, error)

	DaysInMonth(year, month int, era Era) (int, error)
	DaysInYear(year int, era Era) (int, error)
	MonthsInYear(year int, era Era) (int, error)
	IsLeapYear(year int, era Era) (bool, error)
	IsLeapMonth(year, month int, era Era) (bool, error)
	IsLeapDay(year, month, day int, era Era) (bool, error)

	// LeapMonth returns the month slot of the leap month, or 0 when the year
	// has none.
	LeapMonth(year int, era Era) (int, error)

	ToTimePoint(year, month, day, hour, minute, second, millisecond int, era Era) (TimePoint, error)
	ToFourDigitYear(year int) (int, error)

	TwoDigitYearMax() int
	SetTwoDigitYearMax(year int) error
	IsReadOnly() bool

	// Clone returns a writable copy.
	Clone() Calendar

	base() *calendarBase
}

// calendarBase holds the per-instance mutable state every calendar carries.
type calendarBase struct {
	name            string
	twoDigitYearMax int
	maxYear         int // upper bound for the two-digit year window
	readOnly        bool

	// daysBeforeMin is the length of the calendar year preceding the first
	// supported year, used by WeekOfYear near the lower bound.
	daysBeforeMin int
}

func (b *calendarBase) base() *calendarBase { return b }

func (b *calendarBase) op(name string) string {
	return b.name + "." + name
}

// TwoDigitYearMax returns the last year of the 100-year window used to
// interpret two-digit years.
func (b *calendarBase) TwoDigitYearMax() int {
	return b.twoDigitYearMax
}

// SetTwoDigitYearMax sets the last year of the two-digit year window.
func (b *calendarBase) SetTwoDigitYearMax(year int) error {
	if b.readOnly {
		return newFrozenError(b.op("SetTwoDigitYearMax"))
	}
	if year < 99 || year > b.maxYear {
		return newDomainError(b.op("SetTwoDigitYearMax"), "year", "year %d is outside 99-%d", year, b.maxYear)
	}
	b.twoDigitYearMax = year
	return nil
}

// IsReadOnly reports whether the calendar is frozen.
func (b *calendarBase) IsReadOnly() bool {
	return b.readOnly
}

func (b *calendarBase) checkWritable(name string) error {
	if b.readOnly {
		return newFrozenError(b.op(name))
	}
	return nil
}

// toFourDigitYear maps a year below 100 into the window ending at
// twoDigitYearMax and checks larger years against [minYear, maxYear].
func toFourDigitYear(op string, year, twoDigitYearMax, minYear, maxYear int) (int, error) {
	if year < 0 {
		return 0, newDomainError(op, "year", "year %d is negative", year)
	}
	if year < 100 {
		century := twoDigitYearMax / 100
		if year > twoDigitYearMax%100 {
			century--
		}
		return century*100 + year, nil
	}
	if year < minYear || year > maxYear {
		return 0, newDomainError(op, "year", "year %d is outside %d-%d", year, minYear, maxYear)
	}
	return year, nil
}

// scanLeapMonth returns the first month for which isLeap reports true, or 0.
func scanLeapMonth(monthsInYear int, isLeap func(month int) (bool, error)) (int, error) {
	for m := 1; m <= monthsInYear; m++ {
		leap, err := isLeap(m)
		if err != nil {
			return 0, err
		}
		if leap {
			return m, nil
		}
	}
	return 0, nil
}

// ReadOnly returns a frozen copy of cal, or cal itself when it is already
// frozen.
func ReadOnly(cal Calendar) Calendar {
	if cal.IsReadOnly() {
		return cal
	}
	c := cal.Clone()
	c.base().readOnly = true
	return c
}

// CalendarDate is the decomposition of a TimePoint in one calendar.
type CalendarDate struct {
	Era         int
	Year        int
	Month       int
	Day         int
	Hour        int
	Minute      int
	Second      int
	Millisecond int
}

// Decompose returns the calendar date of t.
func Decompose(cal Calendar, t TimePoint) (CalendarDate, error) {
	era, err := cal.Era(t)
	if err != nil {
		return CalendarDate{}, err
	}
	year, err := cal.Year(t)
	if err != nil {
		return CalendarDate{}, err
	}
	month, err := cal.Month(t)
	if err != nil {
		return CalendarDate{}, err
	}
	day, err := cal.DayOfMonth(t)
	if err != nil {
		return CalendarDate{}, err
	}
	return CalendarDate{
		Era:         era,
		Year:        year,
		Month:       month,
		Day:         day,
		Hour:        t.Hour(),
		Minute:      t.Minute(),
		Second:      t.Second(),
		Millisecond: t.Millisecond(),
	}, nil
}

// Compose is the inverse of [Decompose].
func Compose(cal Calendar, d CalendarDate) (TimePoint, error) {
	return cal.ToTimePoint(d.Year, d.Month, d.Day, d.Hour, d.Minute, d.Second, d.Millisecond, SpecificEra(d.Era))
}

// add offsets t by value units of scale milliseconds.
func add(cal Calendar, op string, t TimePoint, value int, scale int64) (TimePoint, error) {
	v := int64(value)
	if v >= maxMillis/scale || v <= -maxMillis/scale {
		return 0, newRangeError(op, "offset %d is too large", value)
	}
	ticks := int64(t) + v*scale*TicksPerMillisecond
	r := TimePoint(ticks)
	if err := checkResult(op, r, cal.MinSupported(), cal.MaxSupported()); err != nil {
		return 0, err
	}
	return r, nil
}

// AddMilliseconds returns t shifted by the given number of milliseconds.
func AddMilliseconds(cal Calendar, t TimePoint, milliseconds int) (TimePoint, error) {
	return add(cal, "AddMilliseconds", t, milliseconds, 1)
}

// AddSeconds returns t shifted by the given number of seconds.
func AddSeconds(cal Calendar, t TimePoint, seconds int) (TimePoint, error) {
	return add(cal, "AddSeconds", t, seconds, millisPerSecond)
}

// AddMinutes returns t shifted by the given number of minutes.
func AddMinutes(cal Calendar, t TimePoint, minutes int) (TimePoint, error) {
	return add(cal, "AddMinutes", t, minutes, millisPerMinute)
}

// AddHours returns t shifted by the given number of hours.
func AddHours(cal Calendar, t TimePoint, hours int) (TimePoint, error) {
	return add(cal, "AddHours", t, hours, millisPerHour)
}

// AddDays returns t shifted by the given number of days.
func AddDays(cal Calendar, t TimePoint, days int) (TimePoint, error) {
	return add(cal, "AddDays", t, days, millisPerDay)
}

// AddWeeks returns t shifted by the given number of weeks.
func AddWeeks(cal Calendar, t TimePoint, weeks int) (TimePoint, error) {
	return add(cal, "AddWeeks", t, weeks, 7*millisPerDay)
}

// New creates a writable calendar of the given kind. Options that do not
// apply to the calendar are ignored.
func New(id CalendarID, opts ...Option) (Calendar, error) {
	switch id {
	case Gregorian:
		return NewGregorianCalendar(), nil
	case Japanese:
		return NewJapaneseCalendar(opts...), nil
	case Taiwan:
		return NewTaiwanCalendar(), nil
	case Korean:
		return NewKoreanCalendar(), nil
	case Hijri:
		return NewHijriCalendar(opts...), nil
	case ThaiBuddhist:
		return NewThaiBuddhistCalendar(), nil
	case Hebrew:
		return NewHebrewCalendar(), nil
	case Julian:
		return NewJulianCalendar(), nil
	case ChineseLunisolar:
		return NewChineseLunisolarCalendar(), nil
	case TaiwanLunisolar:
		return NewTaiwanLunisolarCalendar(), nil
	case Persian:
		return NewPersianCalendar(), nil
	case UmAlQura:
		return NewUmAlQuraCalendar(), nil
	}
	return nil, newDomainError("New", "id", "unknown calendar %d", int(id))
}

// defaultCalendars holds one frozen instance per calendar, built with the
// compiled-in defaults.
var defaultCalendars = func() map[CalendarID]Calendar {
	m := make(map[CalendarID]Calendar)
	for _, id := range CalendarIDs() {
		cal, _ := New(id)
		m[id] = ReadOnly(cal)
	}
	return m
}()

// Default returns the shared read-only instance of the given calendar.
func Default(id CalendarID) (Calendar, error) {
	if cal, ok := defaultCalendars[id]; ok {
		return cal, nil
	}
	return nil, newDomainError("Default", "id", "unknown calendar %d", int(id))
}
