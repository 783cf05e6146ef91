package worldcal

// taiwanLunisolarOffset converts lunar years to Republic of China years.
const taiwanLunisolarOffset = 1911

// TaiwanLunisolarCalendar is the Chinese lunisolar calendar with years
// counted from the founding of the Republic of China: lunar year 1912 is
// year 1. It covers years 1 to 200.
type TaiwanLunisolarCalendar struct {
	lunisolarCalendar
}

// NewTaiwanLunisolarCalendar returns a writable Taiwan lunisolar calendar.
func NewTaiwanLunisolarCalendar() *TaiwanLunisolarCalendar {
	first := 1 + taiwanLunisolarOffset
	return &TaiwanLunisolarCalendar{newLunisolarCalendar(TaiwanLunisolar, first, first+199, taiwanLunisolarOffset, 99)}
}

// Clone returns a writable copy.
func (c *TaiwanLunisolarCalendar) Clone() Calendar {
	cp := *c
	cp.readOnly = false
	return &cp
}
