package worldcal

// ChineseLunisolarCalendar is the Chinese calendar for the lunar years 1901
// to 2100 (1901-02-19 to 2101-01-28). Years are numbered like the Gregorian
// year in which they begin.
type ChineseLunisolarCalendar struct {
	lunisolarCalendar
}

// NewChineseLunisolarCalendar returns a writable Chinese lunisolar calendar.
func NewChineseLunisolarCalendar() *ChineseLunisolarCalendar {
	return &ChineseLunisolarCalendar{newLunisolarCalendar(ChineseLunisolar, 1901, 2100, 0, 2049)}
}

// Clone returns a writable copy.
func (c *ChineseLunisolarCalendar) Clone() Calendar {
	cp := *c
	cp.readOnly = false
	return &cp
}
