package worldcal

import "time"

// TaiwanCalendar numbers Gregorian years from the founding of the Republic
// of China in 1912 (Minguo). It starts on 1912-01-01.
type TaiwanCalendar struct {
	eraCalendar
}

var taiwanStart = date{1912, time.January, 1}.timePoint()

var taiwanEras = []EraInfo{
	{
		ID: 1, Start: taiwanStart, YearOffset: 1911, MinEraYear: 1, MaxEraYear: 8088,
		Name: "中華民國", Abbreviation: "民國", EnglishName: "Republic of China", EnglishAbbreviation: "ROC",
	},
}

// NewTaiwanCalendar returns a writable Taiwan calendar.
func NewTaiwanCalendar() *TaiwanCalendar {
	return &TaiwanCalendar{newEraCalendar(Taiwan, taiwanEras, taiwanStart, 99)}
}

// ToFourDigitYear returns year unchanged: Minguo years are not abbreviated.
func (c *TaiwanCalendar) ToFourDigitYear(year int) (int, error) {
	return eraYearAsIs(c.op("ToFourDigitYear"), year, c.helper.maxYear)
}

// Clone returns a writable copy.
func (c *TaiwanCalendar) Clone() Calendar {
	return &TaiwanCalendar{c.clone()}
}

// eraYearAsIs validates a year of a calendar whose years are short enough to
// be written in full.
func eraYearAsIs(op string, year, maxYear int) (int, error) {
	if year <= 0 || year > maxYear {
		return 0, newDomainError(op, "year", "year %d is outside 1-%d", year, maxYear)
	}
	return year, nil
}
