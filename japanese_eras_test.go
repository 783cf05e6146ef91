package worldcal

import (
	"bytes"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"testing"
	"time"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
)

var reiwaEras = StaticEraSource{
	"1868 01 01": "明治_明_Meiji_M",
	"1912 07 30": "大正_大_Taisho_T",
	"1926 12 25": "昭和_昭_Showa_S",
	"1989 01 08": "平成_平_Heisei_H",
	"2019 05 01": "令和_令_Reiwa_R",
}

type failingEraSource struct{}

func (failingEraSource) JapaneseEras() (map[string]string, error) {
	return nil, errors.New("registry unavailable")
}

// capture returns a logger writing text records to the returned buffer.
func capture() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func TestJapaneseEras_Override(t *testing.T) {
	t.Parallel()

	logger, logs := capture()
	cal := NewJapaneseCalendar(WithEraSource(reiwaEras), WithLogger(logger))

	if got := cal.Eras(); !slices.Equal(got, []int{5, 4, 3, 2, 1}) {
		t.Errorf("Eras() = %v", got)
	}
	if logs.Len() != 0 {
		t.Errorf("unexpected log output: %s", logs)
	}

	tests := []struct {
		at   TimePoint
		era  int
		year int
	}{
		{tp(2019, time.April, 30), 4, 31},
		{tp(2019, time.May, 1), 5, 1},
		{tp(2024, time.June, 15), 5, 6},
	}
	for _, tt := range tests {
		era, err := cal.Era(tt.at)
		if err != nil {
			t.Fatal(err)
		}
		year, err := cal.Year(tt.at)
		if err != nil {
			t.Fatal(err)
		}
		if era != tt.era || year != tt.year {
			t.Errorf("Era, Year(%v) = %d, %d, want %d, %d", tt.at, era, year, tt.era, tt.year)
		}
	}

	infos := cal.EraInfos()
	if infos[0].EnglishName != "Reiwa" || infos[0].Abbreviation != "令" || infos[0].YearOffset != 2018 {
		t.Errorf("newest era = %+v", infos[0])
	}
	if infos[1].MaxEraYear != 31 {
		t.Errorf("Heisei MaxEraYear = %d, want 31", infos[1].MaxEraYear)
	}

	if _, err := cal.ToTimePoint(32, 1, 1, 0, 0, 0, 0, SpecificEra(4)); !errors.Is(err, ErrDomainRange) {
		t.Errorf("ToTimePoint(Heisei 32) error = %v, want ErrDomainRange", err)
	}
}

func TestJapaneseEras_SkipsMalformedEntries(t *testing.T) {
	t.Parallel()

	src := StaticEraSource{}
	for k, v := range reiwaEras {
		src[k] = v
	}
	// A short key, a day that does not exist, three fields and an empty field.
	src["2019/5/1"] = "x_x_x_x"
	src["2030 02 30"] = "x_x_x_x"
	src["2040 01 01"] = "未来_未_Future"
	src["2050 01 01"] = "未来__Future_F"

	logger, logs := capture()
	cal := NewJapaneseCalendar(WithEraSource(src), WithLogger(logger))

	if got := cal.Eras(); !slices.Equal(got, []int{5, 4, 3, 2, 1}) {
		t.Errorf("Eras() = %v", got)
	}
	if n := strings.Count(logs.String(), "skipping malformed era entry"); n != 4 {
		t.Errorf("logged %d skipped entries, want 4", n)
	}
	if !strings.Contains(logs.String(), "component=japanese_eras") {
		t.Errorf("log lacks the component: %s", logs)
	}
}

func TestJapaneseEras_Fallback(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     EraSource
		message string
	}{
		{
			"source error",
			failingEraSource{},
			"era source failed",
		},
		{
			"too few eras",
			StaticEraSource{
				"1868 01 01": "明治_明_Meiji_M",
				"1912 07 30": "大正_大_Taisho_T",
				"1926 12 25": "昭和_昭_Showa_S",
			},
			"era overrides rejected",
		},
		{
			"first era after the first supported day",
			StaticEraSource{
				"1912 07 30": "大正_大_Taisho_T",
				"1926 12 25": "昭和_昭_Showa_S",
				"1989 01 08": "平成_平_Heisei_H",
				"2019 05 01": "令和_令_Reiwa_R",
			},
			"era overrides rejected",
		},
		{
			"duplicate start",
			StaticEraSource{
				"1868 01 01": "明治_明_Meiji_M",
				"1912 07 30": "大正_大_Taisho_T",
				"1926 12 25": "昭和_昭_Showa_S",
				"1989 01 08": "平成_平_Heisei_H",
				"1989-01-08": "平成_平_Heisei_H",
			},
			"era overrides rejected",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			logger, logs := capture()
			cal := NewJapaneseCalendar(WithEraSource(tt.src), WithLogger(logger))

			if got := cal.Eras(); !slices.Equal(got, []int{4, 3, 2, 1}) {
				t.Errorf("Eras() = %v", got)
			}
			if !slices.Equal(cal.EraInfos(), defaultJapaneseEras) {
				t.Errorf("EraInfos() = %+v", cal.EraInfos())
			}
			for _, want := range []string{tt.message, "level=WARN"} {
				if !strings.Contains(logs.String(), want) {
					t.Errorf("log lacks %q: %s", want, logs)
				}
			}
		})
	}
}

func TestNew_PassesEraSource(t *testing.T) {
	t.Parallel()

	logger, _ := capture()
	cal, err := New(Japanese, WithEraSource(reiwaEras), WithLogger(logger))
	if err != nil {
		t.Fatal(err)
	}
	if got := cal.Eras(); !slices.Equal(got, []int{5, 4, 3, 2, 1}) {
		t.Errorf("Eras() = %v", got)
	}

	// Options that do not apply are ignored.
	greg, err := New(Gregorian, WithEraSource(reiwaEras))
	if err != nil {
		t.Fatal(err)
	}
	if got := greg.Eras(); !slices.Equal(got, []int{1}) {
		t.Errorf("Gregorian Eras() = %v", got)
	}
}

func TestValidateEras(t *testing.T) {
	t.Parallel()

	if err := validateEras(defaultJapaneseEras); err != nil {
		t.Fatalf("default eras: %v", err)
	}
	if validateEras(nil) == nil {
		t.Error("an empty list should be rejected")
	}

	swapped := []EraInfo{defaultJapaneseEras[1], defaultJapaneseEras[0]}
	if validateEras(swapped) == nil {
		t.Error("eras out of order should be rejected")
	}
}

// --- Registry exports ---

const registryExport = `Windows Registry Editor Version 5.00

; exported on a test machine
[HKEY_LOCAL_MACHINE\SYSTEM\CurrentControlSet\Control\Nls\Calendars]

[HKEY_LOCAL_MACHINE\SYSTEM\CurrentControlSet\Control\Nls\Calendars\Japanese\Eras]
"1868 01 01"="明治_明_Meiji_M"
"1912 07 30"="大正_大_Taisho_T"
"1926 12 25"="昭和_昭_Showa_S"
"1989 01 08"="平成_平_Heisei_H"
"2019 05 01"="令和_令_Reiwa_R"
"Flags"=dword:00000001

[HKEY_LOCAL_MACHINE\SYSTEM\CurrentControlSet\Control\Nls\Calendars\Japanese\Eras\Other]
"2100 01 01"="x_x_x_x"
`

func TestReadRegistryExport(t *testing.T) {
	t.Parallel()

	utf16, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().String(registryExport)
	if err != nil {
		t.Fatal(err)
	}
	sjis, err := japanese.ShiftJIS.NewEncoder().String(strings.Replace(registryExport, "Windows Registry Editor Version 5.00", "REGEDIT4", 1))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		data string
	}{
		{"utf-8", registryExport},
		{"utf-16 with byte order mark", utf16},
		{"shift-jis", sjis},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src, err := ReadRegistryExport(strings.NewReader(tt.data))
			if err != nil {
				t.Fatal(err)
			}
			if len(src) != 5 {
				t.Errorf("read %d values, want 5: %v", len(src), src)
			}
			if got := src["2019 05 01"]; got != "令和_令_Reiwa_R" {
				t.Errorf("2019 05 01 = %q", got)
			}
			if got := src["1868 01 01"]; got != "明治_明_Meiji_M" {
				t.Errorf("1868 01 01 = %q", got)
			}

			cal := NewJapaneseCalendar(WithEraSource(src))
			if got := cal.Eras(); !slices.Equal(got, []int{5, 4, 3, 2, 1}) {
				t.Errorf("Eras() = %v", got)
			}
		})
	}
}

func TestReadRegistryExport_MissingKey(t *testing.T) {
	t.Parallel()

	_, err := ReadRegistryExport(strings.NewReader("REGEDIT4\n\n[HKEY_CURRENT_USER\\Software]\n\"a\"=\"b\"\n"))
	if err == nil || !strings.Contains(err.Error(), japaneseErasKey) {
		t.Errorf("error = %v, want one naming %s", err, japaneseErasKey)
	}
}

func TestParseRegistryValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line        string
		name, value string
		ok          bool
	}{
		{`"1989 01 08"="平成_平_Heisei_H"`, "1989 01 08", "平成_平_Heisei_H", true},
		{`"a\"b"="c\\d"`, `a"b`, `c\d`, true},
		{`"Flags"=dword:00000001`, "", "", false},
		{`"unterminated="x"`, "", "", false},
		{`"a"="b" trailing`, "", "", false},
		{`@="default"`, "", "", false},
	}
	for _, tt := range tests {
		name, value, ok := parseRegistryValue(tt.line)
		if ok != tt.ok || name != tt.name || value != tt.value {
			t.Errorf("parseRegistryValue(%s) = %q, %q, %v, want %q, %q, %v", tt.line, name, value, ok, tt.name, tt.value, tt.ok)
		}
	}
}
