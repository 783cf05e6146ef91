package worldcal

import (
	"bufio"
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// EraSource supplies Japanese era overrides, typically read from the
// operating system. Keys are era start dates written "yyyy mm dd" with any
// single-character separators; values are "native_abbrev_english_englishAbbrev".
type EraSource interface {
	JapaneseEras() (map[string]string, error)
}

// StaticEraSource is an [EraSource] backed by a fixed map.
type StaticEraSource map[string]string

// JapaneseEras returns a copy of the map.
func (s StaticEraSource) JapaneseEras() (map[string]string, error) {
	m := make(map[string]string, len(s))
	for k, v := range s {
		m[k] = v
	}
	return m, nil
}

// minJapaneseEras is the number of valid override entries required before
// the compiled-in table is replaced.
const minJapaneseEras = 4

// japaneseMinDate is the first supported day, 1868-09-08 (Meiji 1-09-08).
var japaneseMinDate = date{1868, time.September, 8}

var defaultJapaneseEras = []EraInfo{
	{
		ID: 4, Start: date{1989, time.January, 8}.timePoint(), YearOffset: 1988, MinEraYear: 1, MaxEraYear: 9999 - 1988,
		Name: "平成", Abbreviation: "平", EnglishName: "Heisei", EnglishAbbreviation: "H",
	},
	{
		ID: 3, Start: date{1926, time.December, 25}.timePoint(), YearOffset: 1925, MinEraYear: 1, MaxEraYear: 1989 - 1926 + 1,
		Name: "昭和", Abbreviation: "昭", EnglishName: "Showa", EnglishAbbreviation: "S",
	},
	{
		ID: 2, Start: date{1912, time.July, 30}.timePoint(), YearOffset: 1911, MinEraYear: 1, MaxEraYear: 1926 - 1912 + 1,
		Name: "大正", Abbreviation: "大", EnglishName: "Taisho", EnglishAbbreviation: "T",
	},
	{
		ID: 1, Start: date{1868, time.January, 1}.timePoint(), YearOffset: 1867, MinEraYear: 1, MaxEraYear: 1912 - 1868 + 1,
		Name: "明治", Abbreviation: "明", EnglishName: "Meiji", EnglishAbbreviation: "M",
	},
}

// japaneseEras returns the era table described by src, or the compiled-in
// table when src is nil or its data is unusable.
func japaneseEras(src EraSource, logger *slog.Logger) []EraInfo {
	if src == nil {
		return defaultJapaneseEras
	}
	log := logger.With(logKeyComponent, compJapaneseEras)

	entries, err := src.JapaneseEras()
	if err != nil {
		log.Warn("era source failed, using built-in eras", logKeyReason, err)
		return defaultJapaneseEras
	}

	starts := make([]date, 0, len(entries))
	eras := make([]EraInfo, 0, len(entries))
	for key, value := range entries {
		start, era, err := parseEraEntry(key, value)
		if err != nil {
			log.Warn("skipping malformed era entry", logKeyEntry, key, logKeyReason, err)
			continue
		}
		starts = append(starts, start)
		eras = append(eras, era)
	}

	if err := finishEras(starts, eras); err != nil {
		log.Warn("era overrides rejected, using built-in eras", logKeyCount, len(eras), logKeyReason, err)
		return defaultJapaneseEras
	}
	slices.SortFunc(eras, func(a, b EraInfo) int { return cmp.Compare(b.Start, a.Start) })
	if err := validateEras(eras); err != nil {
		log.Warn("era overrides rejected, using built-in eras", logKeyCount, len(eras), logKeyReason, err)
		return defaultJapaneseEras
	}
	return eras
}

// parseEraEntry parses one override entry. The key must be ten characters
// with the year, month and day at fixed positions.
func parseEraEntry(key, value string) (date, EraInfo, error) {
	if len(key) != 10 {
		return date{}, EraInfo{}, fmt.Errorf("key %q is not a yyyy mm dd date", key)
	}
	year, err1 := strconv.Atoi(key[0:4])
	month, err2 := strconv.Atoi(key[5:7])
	day, err3 := strconv.Atoi(key[8:10])
	if err := errors.Join(err1, err2, err3); err != nil {
		return date{}, EraInfo{}, fmt.Errorf("key %q: %w", key, err)
	}
	if _, err := dateToDays("japaneseEras", year, month, day); err != nil {
		return date{}, EraInfo{}, err
	}

	names := strings.Split(value, "_")
	if len(names) != 4 {
		return date{}, EraInfo{}, fmt.Errorf("value %q has %d fields, want 4", value, len(names))
	}
	if slices.Contains(names, "") {
		return date{}, EraInfo{}, fmt.Errorf("value %q has an empty field", value)
	}

	start := date{year, time.Month(month), day}
	return start, EraInfo{
		Start:               start.timePoint(),
		YearOffset:          year - 1,
		MinEraYear:          1,
		Name:                names[0],
		Abbreviation:        names[1],
		EnglishName:         names[2],
		EnglishAbbreviation: names[3],
	}, nil
}

// finishEras checks the count and first start of the parsed overrides and
// fills in the era ids and year limits, numbering from 1 for the oldest era.
func finishEras(starts []date, eras []EraInfo) error {
	if len(eras) < minJapaneseEras {
		return fmt.Errorf("found %d valid eras, want at least %d", len(eras), minJapaneseEras)
	}
	order := make([]int, len(eras))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int { return cmp.Compare(eras[a].Start, eras[b].Start) })

	if first := starts[order[0]]; japaneseMinDate.before(first) {
		return fmt.Errorf("first era starts on %s, after %s", first, japaneseMinDate)
	}
	for n, i := range order {
		eras[i].ID = n + 1
		if n+1 == len(order) {
			eras[i].MaxEraYear = 9999 - eras[i].YearOffset
			continue
		}
		next := order[n+1]
		eras[i].MaxEraYear = starts[next].year - starts[i].year + 1
	}
	return nil
}

// japaneseErasKey is the registry key holding the era table.
const japaneseErasKey = `\Nls\Calendars\Japanese\Eras`

// ReadRegistryExport reads a Windows registry export (.reg file) and returns
// the values of the Japanese era key. UTF-16 exports (regedit 5) and
// Shift-JIS exports (REGEDIT4 on Japanese systems) are both accepted.
func ReadRegistryExport(r io.Reader) (StaticEraSource, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read registry export: %w", err)
	}

	// Without a byte order mark, text that is not UTF-8 is Shift-JIS.
	var fallback transform.Transformer = transform.Nop
	if !utf8.Valid(raw) {
		fallback = japanese.ShiftJIS.NewDecoder()
	}
	text, _, err := transform.Bytes(unicode.BOMOverride(fallback), raw)
	if err != nil {
		return nil, fmt.Errorf("decode registry export: %w", err)
	}

	src := make(StaticEraSource)
	found := false
	inKey := false
	scanner := bufio.NewScanner(bytes.NewReader(text))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "" || strings.HasPrefix(line, ";"):
			continue
		case strings.HasPrefix(line, "["):
			inKey = strings.HasSuffix(strings.ToLower(line), strings.ToLower(japaneseErasKey)+"]")
			found = found || inKey
			continue
		case !inKey:
			continue
		}
		name, value, ok := parseRegistryValue(line)
		if !ok {
			continue
		}
		src[name] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan registry export: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("registry export has no %s key", japaneseErasKey)
	}
	return src, nil
}

// parseRegistryValue parses a `"name"="value"` line. Values of other types
// (dword:, hex:) are ignored.
func parseRegistryValue(line string) (name, value string, ok bool) {
	name, rest, ok := readRegistryString(line)
	if !ok || !strings.HasPrefix(rest, "=") {
		return "", "", false
	}
	value, rest, ok = readRegistryString(rest[1:])
	if !ok || strings.TrimSpace(rest) != "" {
		return "", "", false
	}
	return name, value, true
}

// readRegistryString reads a double-quoted string with backslash escapes
// from the start of s and returns the remainder.
func readRegistryString(s string) (string, string, bool) {
	if !strings.HasPrefix(s, `"`) {
		return "", "", false
	}
	var b strings.Builder
	for i := 1; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			if i+1 == len(s) {
				return "", "", false
			}
			i++
			b.WriteByte(s[i])
		case '"':
			return b.String(), s[i+1:], true
		default:
			b.WriteByte(c)
		}
	}
	return "", "", false
}
