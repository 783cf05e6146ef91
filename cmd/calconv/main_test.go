package main

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const erasExport = `Windows Registry Editor Version 5.00

[HKEY_LOCAL_MACHINE\SYSTEM\CurrentControlSet\Control\Nls\Calendars\Japanese\Eras]
"1868 01 01"="明治_明_Meiji_M"
"1912 07 30"="大正_大_Taisho_T"
"1926 12 25"="昭和_昭_Showa_S"
"1989 01 08"="平成_平_Heisei_H"
"2019 05 01"="令和_令_Reiwa_R"
`

// runCommand runs calconv and returns the cells of each output row keyed by
// calendar name, along with stderr. Cells are cut at the header's column
// positions since era names may contain spaces.
func runCommand(t *testing.T, args ...string) (map[string][]string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	if err := run(args, &stdout, &stderr); err != nil {
		t.Fatalf("run(%q) failed: %v\nstderr: %s", args, err, stderr.String())
	}

	lines := strings.Split(strings.TrimRight(stdout.String(), "\n"), "\n")
	header := []rune(lines[0])
	var starts []int
	for i, r := range header {
		if r != ' ' && (i == 0 || header[i-1] == ' ') {
			starts = append(starts, i)
		}
	}
	if len(starts) != 6 || !strings.HasPrefix(lines[0], "CALENDAR") {
		t.Fatalf("unexpected header: %q", lines[0])
	}

	rows := make(map[string][]string)
	for _, line := range lines[1:] {
		r := []rune(line)
		cells := make([]string, len(starts))
		for i, start := range starts {
			end := len(r)
			if i+1 < len(starts) {
				end = min(starts[i+1], len(r))
			}
			if start < end {
				cells[i] = strings.TrimSpace(string(r[start:end]))
			}
		}
		rows[cells[0]] = cells
	}
	return rows, stderr.String()
}

func TestRun_AllCalendars(t *testing.T) {
	t.Parallel()

	rows, stderr := runCommand(t, "-date", "2024-06-15")
	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if len(rows) != 12 {
		t.Fatalf("got %d rows, want 12", len(rows))
	}

	tests := []struct {
		calendar string
		era      string
		date     string
	}{
		{"gregorian", "A.D.", "2024-06-15"},
		{"japanese", "Heisei", "36-06-15"},
		{"taiwan", "Republic of China", "113-06-15"},
		{"korean", "Dangi", "4357-06-15"},
		{"thai", "Buddhist Era", "2567-06-15"},
		{"julian", "1", "2024-06-02"},
		{"hebrew", "1", "5784-10-09"},
		{"chinese", "1", "2024-05-10"},
		{"taiwan-lunisolar", "1", "113-05-10"},
		{"persian", "1", "1403-03-26"},
	}
	for _, tt := range tests {
		row, ok := rows[tt.calendar]
		if !ok {
			t.Errorf("no row for %s", tt.calendar)
			continue
		}
		if row[1] != tt.era || row[2] != tt.date {
			t.Errorf("%s: era %s, date %s; want %s, %s", tt.calendar, row[1], row[2], tt.era, tt.date)
		}
		if row[4] != "Saturday" {
			t.Errorf("%s: weekday %s", tt.calendar, row[4])
		}
	}
}

func TestRun_Notes(t *testing.T) {
	t.Parallel()

	rows, _ := runCommand(t, "-date", "2024-06-15T18:30:05", "-calendar", "hebrew, chinese")
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	hebrew := rows["hebrew"]
	if hebrew[3] != "18:30:05" {
		t.Errorf("hebrew time = %s, want 18:30:05", hebrew[3])
	}
	if want := `leap year, ט' תשפ"ד`; hebrew[5] != want {
		t.Errorf("hebrew notes = %s, want %s", hebrew[5], want)
	}
	if got := rows["chinese"][5]; got != "jiachen (41)" {
		t.Errorf("chinese notes = %s, want jiachen (41)", got)
	}
}

func TestRun_Japanese(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "eras.reg")
	if err := os.WriteFile(path, []byte(erasExport), 0o644); err != nil {
		t.Fatal(err)
	}

	rows, _ := runCommand(t, "-date", "2024-06-15", "-calendar", "japanese,chinese", "-era-file", path, "-lang", "ja-JP")
	if got := rows["japanese"]; got[1] != "令和" || got[2] != "6-06-15" {
		t.Errorf("japanese = %v, want era 令和, date 6-06-15", got)
	}
	if got := rows["chinese"][5]; got != "甲辰" {
		t.Errorf("chinese cycle = %s, want 甲辰", got)
	}
}

func TestRun_HijriAdjustment(t *testing.T) {
	t.Parallel()

	rows, _ := runCommand(t, "-date", "2024-03-10", "-calendar", "hijri")
	if got := rows["hijri"][2]; got != "1445-09-01" {
		t.Errorf("hijri = %s, want 1445-09-01", got)
	}

	rows, _ = runCommand(t, "-date", "2024-03-10", "-calendar", "hijri", "-hijri-adjust", "1")
	if got := rows["hijri"]; got[2] != "1445-09-02" || got[5] != "leap year, adjusted +1" {
		t.Errorf("adjusted hijri row = %v", got)
	}

	_, stderr := runCommand(t, "-date", "2024-03-10", "-calendar", "hijri", "-hijri-adjust", "5")
	if !strings.Contains(stderr, "hijri adjustment out of range") {
		t.Errorf("stderr = %q, want an out-of-range warning", stderr)
	}
}

func TestRun_OutsideRange(t *testing.T) {
	t.Parallel()

	rows, stderr := runCommand(t, "-date", "1800-01-01", "-calendar", "umalqura,gregorian", "-debug")
	if got := rows["umalqura"][5]; !strings.HasPrefix(got, "outside 1900-04-30") {
		t.Errorf("umalqura notes = %s", got)
	}
	if got := rows["gregorian"][2]; got != "1800-01-01" {
		t.Errorf("gregorian = %s", got)
	}
	if !strings.Contains(stderr, "skipping calendar") || !strings.Contains(stderr, "calendar=umalqura") {
		t.Errorf("debug log = %q", stderr)
	}
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing.reg")
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad date", []string{"-date", "15/06/2024"}, "invalid -date"},
		{"unknown calendar", []string{"-calendar", "mayan"}, "invalid -calendar"},
		{"empty calendar list", []string{"-calendar", " , "}, "no calendars selected"},
		{"missing era file", []string{"-era-file", missing}, "opening era file"},
		{"positional arguments", []string{"2024-06-15"}, "unexpected arguments"},
		{"unknown flag", []string{"-year", "2024"}, "flag provided but not defined"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := run(tt.args, &stdout, &stderr)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want it to contain %q", err, tt.want)
			}
		})
	}

	var stdout, stderr bytes.Buffer
	if err := run([]string{"-h"}, &stdout, &stderr); !errors.Is(err, flag.ErrHelp) {
		t.Errorf("-h error = %v, want flag.ErrHelp", err)
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.June, 15, 22, 10, 0, 0, time.FixedZone("JST", 9*60*60))
	got, err := parseDate("", now)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Time().Equal(time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("parseDate(\"\") = %v, want the date of now", got)
	}

	got, err = parseDate("2024-06-15T08:09:10.250", now)
	if err != nil {
		t.Fatal(err)
	}
	if got.Millisecond() != 250 || got.Second() != 10 {
		t.Errorf("parseDate kept %v", got)
	}
}

func TestMatchJapanese(t *testing.T) {
	t.Parallel()

	for lang, want := range map[string]bool{
		"ja":    true,
		"ja-JP": true,
		"en":    false,
		"fr":    false,
		"!!":    false,
	} {
		if got := matchJapanese(lang); got != want {
			t.Errorf("matchJapanese(%q) = %v, want %v", lang, got, want)
		}
	}
}
