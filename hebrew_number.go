package worldcal

import (
	"strings"
	"unicode/utf8"
)

const (
	geresh    = '\''
	gershayim = '"'
	tav       = 'ת' // 400
	alef      = 'א' // 1
	yod       = 'י' // 10
	tet       = 'ט' // 9
	he        = 'ה' // 5
	vav       = 'ו' // 6
	zayin     = 'ז' // 7
)

var hebrewTens = [10]rune{0, 'י', 'כ', 'ל', 'מ', 'נ', 'ס', 'ע', 'פ', 'צ'}

// hebrewLetterValues maps every letter, final forms included, to its value.
var hebrewLetterValues = map[rune]int{
	'א': 1, 'ב': 2, 'ג': 3, 'ד': 4, 'ה': 5,
	'ו': 6, 'ז': 7, 'ח': 8, 'ט': 9,
	'י': 10, 'כ': 20, 'ך': 20, 'ל': 30, 'מ': 40, 'ם': 40,
	'נ': 50, 'ן': 50, 'ס': 60, 'ע': 70, 'פ': 80, 'ף': 80,
	'צ': 90, 'ץ': 90,
	'ק': 100, 'ר': 200, 'ש': 300, 'ת': 400,
}

// FormatHebrewNumber writes n in Hebrew numerals, as used for day and year
// numbers. Thousands are omitted for years above 5000, so 5784 is written
// as תשפ"ד. Fifteen and sixteen are written ט"ו and ט"ז. A gershayim goes
// before the last letter of a multi-letter number; a single letter is
// followed by a geresh.
func FormatHebrewNumber(n int) (string, error) {
	if n > 5000 {
		n -= 5000
	}
	if n < 1 || n > 999 {
		return "", newDomainError("FormatHebrewNumber", "n", "%d has no Hebrew numeral form", n)
	}

	var b strings.Builder
	if hundreds := n / 100; hundreds > 0 {
		for range hundreds / 4 {
			b.WriteRune(tav)
		}
		if rem := hundreds % 4; rem > 0 {
			b.WriteRune('צ' + rune(rem))
		}
		n %= 100
	}

	tens, units := hebrewTens[n/10], rune(0)
	if n%10 > 0 {
		units = alef + rune(n%10) - 1
	}
	switch {
	case tens == yod && units == he:
		tens, units = tet, vav
	case tens == yod && units == vav:
		tens, units = tet, zayin
	}
	if tens != 0 {
		b.WriteRune(tens)
	}
	if units != 0 {
		b.WriteRune(units)
	}

	s := b.String()
	if utf8.RuneCountInString(s) == 1 {
		return s + string(geresh), nil
	}
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size] + string(gershayim) + s[len(s)-size:], nil
}

// ParseHebrewNumber reads a Hebrew numeral written by [FormatHebrewNumber]
// or in the common variants: final letter forms, the typographic geresh
// and gershayim (U+05F3, U+05F4) and omitted punctuation are accepted. The
// result is in 1-999; callers add the omitted thousands themselves.
func ParseHebrewNumber(s string) (int, error) {
	const op = "ParseHebrewNumber"
	fail := func(reason string) (int, error) {
		return 0, newDomainError(op, "s", "%q is not a Hebrew numeral: %s", s, reason)
	}

	letters := make([]int, 0, len(s))
	for _, r := range s {
		switch r {
		case geresh, gershayim, '׳', '״':
			continue
		}
		v, ok := hebrewLetterValues[r]
		if !ok {
			return fail("unexpected character")
		}
		letters = append(letters, v)
	}
	if len(letters) == 0 {
		return fail("no letters")
	}

	sum := 0
	for i, v := range letters {
		if i > 0 {
			prev := letters[i-1]
			// Letters are written largest first; only tav repeats.
			if v > prev || (v == prev && v != 400) {
				return fail("letters out of order")
			}
		}
		sum += v
	}
	if n := len(letters); n >= 2 && letters[n-2] == 10 && (letters[n-1] == 5 || letters[n-1] == 6) {
		return fail("15 and 16 are written with tet")
	}
	if sum > 999 {
		return fail("value above 999")
	}
	return sum, nil
}
