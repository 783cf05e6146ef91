package worldcal

// JapaneseCalendar numbers Gregorian years by imperial era. The compiled-in
// table holds Meiji, Taisho, Showa and Heisei; later eras are supplied with
// [WithEraSource]. The calendar starts on 1868-09-08.
type JapaneseCalendar struct {
	eraCalendar
}

// NewJapaneseCalendar returns a writable Japanese calendar. It honours
// [WithEraSource] and [WithLogger].
func NewJapaneseCalendar(opts ...Option) *JapaneseCalendar {
	o := newOptions(opts)
	eras := japaneseEras(o.eraSource, o.logger)
	return &JapaneseCalendar{newEraCalendar(Japanese, eras, japaneseMinDate.timePoint(), 99)}
}

// ToFourDigitYear returns year unchanged: era years are not abbreviated.
func (c *JapaneseCalendar) ToFourDigitYear(year int) (int, error) {
	return eraYearAsIs(c.op("ToFourDigitYear"), year, c.helper.maxYear)
}

// Clone returns a writable copy.
func (c *JapaneseCalendar) Clone() Calendar {
	return &JapaneseCalendar{c.clone()}
}
