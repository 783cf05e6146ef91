package worldcal

import "time"

// WeekRule defines how the first week of a year is chosen.
type WeekRule int

// Week rules.
const (
	// FirstDay starts week 1 on the first day of the year; it may be short.
	FirstDay WeekRule = iota

	// FirstFullWeek starts week 1 on the first occurrence of the first day
	// of the week.
	FirstFullWeek

	// FirstFourDayWeek makes week 1 the first week with at least four days
	// in the new year (ISO 8601 when the week starts on Monday).
	FirstFourDayWeek
)

// WeekOfYear returns the 1-based week of the year that contains t.
// Days before the first week of a year belong to the last week of the
// previous year.
func WeekOfYear(cal Calendar, t TimePoint, rule WeekRule, firstDay time.Weekday) (int, error) {
	const op = "WeekOfYear"
	if firstDay < time.Sunday || firstDay > time.Saturday {
		return 0, newDomainError(op, "firstDay", "weekday %d is outside 0-6", int(firstDay))
	}
	switch rule {
	case FirstDay:
		return firstDayWeekOfYear(cal, t, int(firstDay))
	case FirstFullWeek:
		return fullDaysWeekOfYear(cal, t, int(firstDay), 7)
	case FirstFourDayWeek:
		return fullDaysWeekOfYear(cal, t, int(firstDay), 4)
	}
	return 0, newDomainError(op, "rule", "unknown week rule %d", int(rule))
}

// startOfYearWeekday returns the 0-based day of year of t and the weekday of
// the first day of its year, which may be negative.
func startOfYearWeekday(cal Calendar, t TimePoint) (dayOfYear, jan1 int, err error) {
	doy, err := cal.DayOfYear(t)
	if err != nil {
		return 0, 0, err
	}
	dow, err := cal.DayOfWeek(t)
	if err != nil {
		return 0, 0, err
	}
	dayOfYear = doy - 1
	return dayOfYear, int(dow) - dayOfYear%7, nil
}

func firstDayWeekOfYear(cal Calendar, t TimePoint, firstDay int) (int, error) {
	dayOfYear, jan1, err := startOfYearWeekday(cal, t)
	if err != nil {
		return 0, err
	}
	offset := (jan1 - firstDay + 14) % 7
	return (dayOfYear+offset)/7 + 1, nil
}

func fullDaysWeekOfYear(cal Calendar, t TimePoint, firstDay, fullDays int) (int, error) {
	// At most one step back: the last day of a year is always past its
	// first week.
	for {
		dayOfYear, jan1, err := startOfYearWeekday(cal, t)
		if err != nil {
			return 0, err
		}
		offset := (firstDay - jan1 + 14) % 7
		if offset != 0 && offset >= fullDays {
			offset -= 7
		}
		if day := dayOfYear - offset; day >= 0 {
			return day/7 + 1, nil
		}
		startOfYear := int64(t) - int64(dayOfYear)*TicksPerDay
		if startOfYear <= int64(cal.MinSupported()) {
			return weekOfYearOfMinSupported(cal, firstDay, fullDays)
		}
		t = TimePoint(startOfYear - TicksPerDay)
	}
}

// weekOfYearOfMinSupported returns the week of the first supported day, whose
// previous year lies outside the calendar's range.
func weekOfYearOfMinSupported(cal Calendar, firstDay, minDaysInFirstWeek int) (int, error) {
	_, jan1, err := startOfYearWeekday(cal, cal.MinSupported())
	if err != nil {
		return 0, err
	}
	offset := (firstDay + 7 - jan1) % 7
	if offset == 0 || offset >= minDaysInFirstWeek {
		return 1, nil
	}

	daysBefore := cal.base().daysBeforeMin - 1
	prevJan1 := jan1 - 1 - daysBefore%7
	partial := (firstDay - prevJan1 + 14) % 7
	day := daysBefore - partial
	if partial >= minDaysInFirstWeek {
		day += 7
	}
	return day/7 + 1, nil
}
