package worldcal

import "fmt"

// Era selects the era an operation works in. The zero value is [CurrentEra].
type Era struct {
	id       int
	specific bool
}

// CurrentEra selects the calendar's current era.
var CurrentEra = Era{}

// SpecificEra selects the era with the given identifier.
func SpecificEra(id int) Era {
	return Era{id: id, specific: true}
}

// IsCurrent reports whether e selects the current era.
func (e Era) IsCurrent() bool {
	return !e.specific
}

// resolve returns the concrete era identifier, substituting current for
// the current era.
func (e Era) resolve(current int) int {
	if e.specific {
		return e.id
	}
	return current
}

func (e Era) String() string {
	if !e.specific {
		return "current"
	}
	return fmt.Sprintf("%d", e.id)
}

// EraInfo describes one era of an era-based calendar.
type EraInfo struct {
	ID         int       // Era identifier, increasing with time.
	Start      TimePoint // First instant of the era.
	YearOffset int       // Gregorian year = era year + YearOffset.
	MinEraYear int       // First valid year number within the era.
	MaxEraYear int       // Last valid year number within the era.

	Name                string // Native name (e.g., "平成").
	Abbreviation        string // Native abbreviation (e.g., "平").
	EnglishName         string // English name (e.g., "Heisei").
	EnglishAbbreviation string // English abbreviation (e.g., "H").
}

// validateEras checks that eras are ordered most recent first with strictly
// descending starts.
func validateEras(eras []EraInfo) error {
	if len(eras) == 0 {
		return fmt.Errorf("no eras")
	}
	for i := 1; i < len(eras); i++ {
		if eras[i].Start >= eras[i-1].Start {
			return fmt.Errorf("era %d starts at or after era %d", eras[i].ID, eras[i-1].ID)
		}
	}
	return nil
}
