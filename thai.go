package worldcal

// ThaiBuddhistCalendar numbers Gregorian years from the death of the Buddha
// in 543 BC. Year 1 AD is BE 544.
type ThaiBuddhistCalendar struct {
	eraCalendar
}

var thaiBuddhistEras = []EraInfo{
	{
		ID: 1, Start: MinTimePoint, YearOffset: -543, MinEraYear: 544, MaxEraYear: 10542,
		Name: "พุทธศักราช", Abbreviation: "พ.ศ.", EnglishName: "Buddhist Era", EnglishAbbreviation: "BE",
	},
}

// NewThaiBuddhistCalendar returns a writable Thai Buddhist calendar.
func NewThaiBuddhistCalendar() *ThaiBuddhistCalendar {
	return &ThaiBuddhistCalendar{newEraCalendar(ThaiBuddhist, thaiBuddhistEras, MinTimePoint, 2572)}
}

// Clone returns a writable copy.
func (c *ThaiBuddhistCalendar) Clone() Calendar {
	return &ThaiBuddhistCalendar{c.clone()}
}
