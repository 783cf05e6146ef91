package worldcal

import "fmt"

// GregorianType tags the localized flavour of a Gregorian calendar. It
// affects only era and month names rendered by a formatting layer; date
// arithmetic is identical for every type.
type GregorianType int

// Gregorian calendar types.
const (
	GregorianLocalized             GregorianType = 1
	GregorianUSEnglish             GregorianType = 2
	GregorianMiddleEastFrench      GregorianType = 9
	GregorianArabic                GregorianType = 10
	GregorianTransliteratedEnglish GregorianType = 11
	GregorianTransliteratedFrench  GregorianType = 12
)

func (t GregorianType) valid() bool {
	switch t {
	case GregorianLocalized, GregorianUSEnglish, GregorianMiddleEastFrench,
		GregorianArabic, GregorianTransliteratedEnglish, GregorianTransliteratedFrench:
		return true
	}
	return false
}

func (t GregorianType) String() string {
	switch t {
	case GregorianLocalized:
		return "localized"
	case GregorianUSEnglish:
		return "us-english"
	case GregorianMiddleEastFrench:
		return "middle-east-french"
	case GregorianArabic:
		return "arabic"
	case GregorianTransliteratedEnglish:
		return "transliterated-english"
	case GregorianTransliteratedFrench:
		return "transliterated-french"
	}
	return fmt.Sprintf("GregorianType(%d)", int(t))
}

// GregorianCalendar is the proleptic Gregorian calendar with a single era
// (AD) covering the full TimePoint range.
type GregorianCalendar struct {
	eraCalendar
	typ GregorianType
}

var gregorianEras = []EraInfo{
	{
		ID: 1, Start: MinTimePoint, YearOffset: 0, MinEraYear: 1, MaxEraYear: 9999,
		Name: "A.D.", Abbreviation: "AD", EnglishName: "A.D.", EnglishAbbreviation: "AD",
	},
}

// NewGregorianCalendar returns a writable localized Gregorian calendar.
func NewGregorianCalendar() *GregorianCalendar {
	return &GregorianCalendar{
		eraCalendar: newEraCalendar(Gregorian, gregorianEras, MinTimePoint, 2049),
		typ:         GregorianLocalized,
	}
}

// NewGregorianCalendarOfType returns a writable Gregorian calendar of the
// given type.
func NewGregorianCalendarOfType(typ GregorianType) (*GregorianCalendar, error) {
	c := NewGregorianCalendar()
	if err := c.SetType(typ); err != nil {
		return nil, err
	}
	return c, nil
}

// Type returns the calendar type.
func (c *GregorianCalendar) Type() GregorianType {
	return c.typ
}

// SetType changes the calendar type.
func (c *GregorianCalendar) SetType(typ GregorianType) error {
	if err := c.checkWritable("SetType"); err != nil {
		return err
	}
	if !typ.valid() {
		return newDomainError(c.op("SetType"), "type", "unknown Gregorian type %d", int(typ))
	}
	c.typ = typ
	return nil
}

// Clone returns a writable copy.
func (c *GregorianCalendar) Clone() Calendar {
	return &GregorianCalendar{eraCalendar: c.clone(), typ: c.typ}
}
