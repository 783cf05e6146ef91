// Command calconv prints a Gregorian date in every calendar worldcal
// supports.
//
// Usage:
//
//	go run ./cmd/calconv -date 2024-06-15
//	go run ./cmd/calconv -date 2024-06-15T18:30:00 -calendar hebrew,chinese
//	go run ./cmd/calconv -era-file eras.reg -lang ja
//	go run ./cmd/calconv -date 2024-10-03 -ics rosh-hashanah.ics
//
// The -era-file flag reads Japanese era overrides from a Windows registry
// export of HKLM\SYSTEM\CurrentControlSet\Control\Nls\Calendars\Japanese\Eras.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/rabitt1ove/worldcal"
)

var dateLayouts = []string{time.DateOnly, "2006-01-02T15:04:05", "2006-01-02T15:04:05.000"}

// config holds the parsed command line.
type config struct {
	date        string
	calendars   string
	eraFile     string
	hijriAdjust int
	lang        string
	icsFile     string
	debug       bool
}

// row is one calendar's rendering of the date. ok is false when the date
// lies outside the calendar's range; notes then holds that range.
type row struct {
	id      worldcal.CalendarID
	era     string
	date    string
	time    string
	weekday string
	notes   string
	ok      bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "calconv: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("calconv", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.date, "date", "", "Gregorian date as YYYY-MM-DD or YYYY-MM-DDThh:mm:ss (default today)")
	fs.StringVar(&cfg.calendars, "calendar", "all", "comma-separated calendars to print, or all")
	fs.StringVar(&cfg.eraFile, "era-file", "", "registry export (.reg) with Japanese era overrides")
	fs.IntVar(&cfg.hijriAdjust, "hijri-adjust", 0, "days added to Hijri dates, -2 to 2")
	fs.StringVar(&cfg.lang, "lang", "en", "language of era names and notes (BCP 47)")
	fs.StringVar(&cfg.icsFile, "ics", "", "also write the conversions as an iCalendar event to this file")
	fs.BoolVar(&cfg.debug, "debug", false, "log debug output to stderr")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() > 0 {
		return config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return cfg, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cfg.debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	at, err := parseDate(cfg.date, time.Now())
	if err != nil {
		return err
	}
	ids, err := selectCalendars(cfg.calendars)
	if err != nil {
		return err
	}

	opts := []worldcal.Option{worldcal.WithLogger(logger)}
	if cfg.eraFile != "" {
		src, err := readEraFile(cfg.eraFile)
		if err != nil {
			return err
		}
		logger.Debug("loaded era overrides", "file", cfg.eraFile, "count", len(src))
		opts = append(opts, worldcal.WithEraSource(src))
	}
	if cfg.hijriAdjust != 0 {
		opts = append(opts, worldcal.WithHijriAdjustmentSource(worldcal.StaticHijriAdjustment(cfg.hijriAdjust)))
	}

	tr, err := newTranslator(cfg.lang, logger)
	if err != nil {
		return err
	}
	logger.Debug("converting", "time", at, "calendars", len(ids), "japanese_names", tr.japanese)

	rows := make([]row, 0, len(ids))
	for _, id := range ids {
		cal, err := worldcal.New(id, opts...)
		if err != nil {
			return fmt.Errorf("creating %s calendar: %w", id, err)
		}
		r, err := describe(cal, at, tr)
		if err != nil {
			logger.Debug("skipping calendar", "calendar", id.String(), "err", err)
			r = row{id: id, era: "-", date: "-", time: "-", weekday: "-", notes: tr.msg(msgOutsideRange, map[string]any{
				"Min": cal.MinSupported(),
				"Max": cal.MaxSupported(),
			})}
		}
		rows = append(rows, r)
	}

	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CALENDAR\tERA\tDATE\tTIME\tWEEKDAY\tNOTES")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", r.id, r.era, r.date, r.time, r.weekday, r.notes)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if cfg.icsFile != "" {
		if err := writeICSFile(cfg.icsFile, at, rows, tr, time.Now()); err != nil {
			return err
		}
		logger.Debug("wrote iCalendar", "file", cfg.icsFile)
	}
	return nil
}

// parseDate reads the -date flag; an empty value means the date of now.
func parseDate(s string, now time.Time) (worldcal.TimePoint, error) {
	if s == "" {
		return worldcal.FromTime(time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC))
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return worldcal.FromTime(t)
		}
	}
	return 0, fmt.Errorf("invalid -date %q: want YYYY-MM-DD or YYYY-MM-DDThh:mm:ss", s)
}

// selectCalendars returns the calendars named in a comma-separated list.
func selectCalendars(list string) ([]worldcal.CalendarID, error) {
	if strings.TrimSpace(list) == "all" {
		return worldcal.CalendarIDs(), nil
	}
	var ids []worldcal.CalendarID
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		id, err := worldcal.ParseCalendarID(name)
		if err != nil {
			return nil, fmt.Errorf("invalid -calendar: %w", err)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, errors.New("no calendars selected")
	}
	return ids, nil
}

func readEraFile(path string) (worldcal.StaticEraSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening era file: %w", err)
	}
	defer f.Close()

	src, err := worldcal.ReadRegistryExport(f)
	if err != nil {
		return nil, fmt.Errorf("reading era file %s: %w", path, err)
	}
	return src, nil
}

// describe renders the date in one calendar.
func describe(cal worldcal.Calendar, at worldcal.TimePoint, tr *translator) (row, error) {
	d, err := worldcal.Decompose(cal, at)
	if err != nil {
		return row{}, err
	}
	weekday, err := cal.DayOfWeek(at)
	if err != nil {
		return row{}, err
	}

	era := fmt.Sprint(d.Era)
	if infos, ok := cal.(interface{ EraInfos() []worldcal.EraInfo }); ok {
		for _, info := range infos.EraInfos() {
			if info.ID == d.Era {
				era = info.EnglishName
				if tr.japanese {
					era = info.Name
				}
				break
			}
		}
	}

	extra, err := notes(cal, at, d, tr)
	if err != nil {
		return row{}, err
	}
	return row{
		id:      cal.ID(),
		era:     era,
		date:    fmt.Sprintf("%d-%02d-%02d", d.Year, d.Month, d.Day),
		time:    fmt.Sprintf("%02d:%02d:%02d", d.Hour, d.Minute, d.Second),
		weekday: weekday.String(),
		notes:   strings.Join(extra, ", "),
		ok:      true,
	}, nil
}

type sexagenary interface {
	SexagenaryYear(t worldcal.TimePoint) (int, error)
	CelestialStem(sexagenaryYear int) (int, error)
	TerrestrialBranch(sexagenaryYear int) (int, error)
}

// notes lists calendar-specific facts about the date.
func notes(cal worldcal.Calendar, at worldcal.TimePoint, d worldcal.CalendarDate, tr *translator) ([]string, error) {
	var out []string
	era := worldcal.SpecificEra(d.Era)

	if leap, err := cal.IsLeapYear(d.Year, era); err != nil {
		return nil, err
	} else if leap {
		out = append(out, tr.msg(msgLeapYear, nil))
	}
	if leap, err := cal.IsLeapMonth(d.Year, d.Month, era); err != nil {
		return nil, err
	} else if leap {
		out = append(out, tr.msg(msgLeapMonth, nil))
	}

	switch c := cal.(type) {
	case *worldcal.HebrewCalendar:
		year, err := worldcal.FormatHebrewNumber(d.Year)
		if err != nil {
			return nil, err
		}
		day, err := worldcal.FormatHebrewNumber(d.Day)
		if err != nil {
			return nil, err
		}
		out = append(out, day+" "+year)
	case *worldcal.HijriCalendar:
		if adj := c.HijriAdjustment(); adj != 0 {
			out = append(out, tr.msg(msgHijriAdjusted, map[string]any{"Days": fmt.Sprintf("%+d", adj)}))
		}
	case sexagenary:
		n, err := c.SexagenaryYear(at)
		if err != nil {
			return nil, err
		}
		stem, err := c.CelestialStem(n)
		if err != nil {
			return nil, err
		}
		branch, err := c.TerrestrialBranch(n)
		if err != nil {
			return nil, err
		}
		out = append(out, tr.sexagenary(n, stem, branch))
	}
	return out, nil
}
