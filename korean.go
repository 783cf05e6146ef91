package worldcal

// KoreanCalendar numbers Gregorian years from the legendary founding of
// Gojoseon in 2333 BC (Dangi). Year 1 AD is Dangi 2334.
type KoreanCalendar struct {
	eraCalendar
}

var koreanEras = []EraInfo{
	{
		ID: 1, Start: MinTimePoint, YearOffset: -2333, MinEraYear: 2334, MaxEraYear: 12332,
		Name: "단기", Abbreviation: "단기", EnglishName: "Dangi", EnglishAbbreviation: "D",
	},
}

// NewKoreanCalendar returns a writable Korean calendar.
func NewKoreanCalendar() *KoreanCalendar {
	return &KoreanCalendar{newEraCalendar(Korean, koreanEras, MinTimePoint, 4362)}
}

// Clone returns a writable copy.
func (c *KoreanCalendar) Clone() Calendar {
	return &KoreanCalendar{c.clone()}
}
