package worldcal

import (
	"fmt"
	"time"
)

// TimePoint is a count of 100-nanosecond ticks since 0001-01-01T00:00:00 on
// the proleptic Gregorian calendar. It carries no time zone.
type TimePoint int64

// Tick counts of common time units.
const (
	TicksPerMillisecond int64 = 10_000
	TicksPerSecond            = TicksPerMillisecond * 1000
	TicksPerMinute            = TicksPerSecond * 60
	TicksPerHour              = TicksPerMinute * 60
	TicksPerDay               = TicksPerHour * 24
)

const (
	millisPerSecond = 1000
	millisPerMinute = millisPerSecond * 60
	millisPerHour   = millisPerMinute * 60
	millisPerDay    = millisPerHour * 24

	// daysTo10000 is the number of days from 0001-01-01 to 10000-01-01.
	daysTo10000 = 3652059

	// maxMillis bounds the offset accepted by the Add functions.
	maxMillis = daysTo10000 * millisPerDay
)

// Global bounds of a TimePoint. Each calendar narrows them with its
// MinSupported and MaxSupported methods.
const (
	MinTimePoint TimePoint = 0
	MaxTimePoint TimePoint = daysTo10000*TimePoint(TicksPerDay) - 1
)

// FromTime returns the TimePoint of the wall clock reading of t in its own
// location. Years outside 1-9999 are rejected.
func FromTime(t time.Time) (TimePoint, error) {
	y, m, d := t.Date()
	if y < 1 || y > 9999 {
		return 0, newDomainError("FromTime", "year", "year %d is outside 1-9999", y)
	}
	h, mi, s := t.Clock()
	ticks := gregorianDays(y, int(m), d)*TicksPerDay +
		int64(h)*TicksPerHour + int64(mi)*TicksPerMinute + int64(s)*TicksPerSecond +
		int64(t.Nanosecond()/100)
	return TimePoint(ticks), nil
}

// Time returns t as a UTC time.Time.
func (t TimePoint) Time() time.Time {
	return dateOfDays(t.Days()).toTime().Add(time.Duration(t.timeOfDay() * 100))
}

// Days returns the number of whole days since 0001-01-01.
func (t TimePoint) Days() int64 {
	return int64(t) / TicksPerDay
}

func (t TimePoint) timeOfDay() int64 {
	return int64(t) % TicksPerDay
}

// Hour returns the hour of the day, in [0, 23].
func (t TimePoint) Hour() int {
	return int(t.timeOfDay() / TicksPerHour)
}

// Minute returns the minute of the hour, in [0, 59].
func (t TimePoint) Minute() int {
	return int(t.timeOfDay() / TicksPerMinute % 60)
}

// Second returns the second of the minute, in [0, 59].
func (t TimePoint) Second() int {
	return int(t.timeOfDay() / TicksPerSecond % 60)
}

// Millisecond returns the millisecond of the second, in [0, 999].
func (t TimePoint) Millisecond() int {
	return int(t.timeOfDay() / TicksPerMillisecond % 1000)
}

// String formats t as a proleptic Gregorian timestamp.
func (t TimePoint) String() string {
	if t < MinTimePoint || t > MaxTimePoint {
		return fmt.Sprintf("TimePoint(%d)", int64(t))
	}
	return t.Time().Format("2006-01-02T15:04:05.0000000")
}

// timeToTicks converts a time of day to ticks.
func timeToTicks(op string, hour, minute, second, millisecond int) (int64, error) {
	switch {
	case hour < 0 || hour > 23:
		return 0, newDomainError(op, "hour", "hour %d is outside 0-23", hour)
	case minute < 0 || minute > 59:
		return 0, newDomainError(op, "minute", "minute %d is outside 0-59", minute)
	case second < 0 || second > 59:
		return 0, newDomainError(op, "second", "second %d is outside 0-59", second)
	case millisecond < 0 || millisecond >= millisPerSecond:
		return 0, newDomainError(op, "millisecond", "millisecond %d is outside 0-999", millisecond)
	}
	return int64(hour)*TicksPerHour + int64(minute)*TicksPerMinute +
		int64(second)*TicksPerSecond + int64(millisecond)*TicksPerMillisecond, nil
}

// checkRange reports a DomainRange error when t lies outside [lo, hi].
func checkRange(op string, t, lo, hi TimePoint) error {
	if t < lo || t > hi {
		return newDomainError(op, "time", "%s is outside the supported range %s to %s", t, lo, hi)
	}
	return nil
}

// checkResult reports a ResultOutOfRange error when t lies outside [lo, hi].
func checkResult(op string, t, lo, hi TimePoint) error {
	if t < lo || t > hi {
		return newRangeError(op, "result %s is outside the supported range %s to %s", t, lo, hi)
	}
	return nil
}
