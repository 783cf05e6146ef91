package main

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// supportedLanguages lists the languages with a message file; the first is
// the fallback.
var supportedLanguages = []language.Tag{language.English, language.Japanese}

var languageMatcher = language.NewMatcher(supportedLanguages)

// Message ids.
const (
	msgLeapYear      = "LeapYear"
	msgLeapMonth     = "LeapMonth"
	msgHijriAdjusted = "HijriAdjusted"
	msgOutsideRange  = "OutsideRange"
	msgSexagenary    = "Sexagenary"
	msgEventSummary  = "EventSummary"
)

// translator renders the notes column and the event summary.
type translator struct {
	localizer *i18n.Localizer
	japanese  bool
	logger    *slog.Logger
}

func newTranslator(lang string, logger *slog.Logger) (*translator, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("reading locales: %w", err)
	}
	for _, entry := range entries {
		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+entry.Name()); err != nil {
			return nil, fmt.Errorf("loading %s: %w", entry.Name(), err)
		}
	}

	return &translator{
		localizer: i18n.NewLocalizer(bundle, lang),
		japanese:  matchJapanese(lang),
		logger:    logger,
	}, nil
}

// matchJapanese reports whether the requested language resolves to
// Japanese. Unparseable tags fall back to English.
func matchJapanese(lang string) bool {
	tag, err := language.Parse(lang)
	if err != nil {
		return false
	}
	_, i, _ := languageMatcher.Match(tag)
	return supportedLanguages[i] == language.Japanese
}

// msg localizes a message, returning its id when it is missing.
func (t *translator) msg(id string, data map[string]any) string {
	s, err := t.localizer.Localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})
	if err != nil {
		t.logger.Debug("missing translation", "id", id, "err", err)
		return id
	}
	return s
}

// sexagenary names a year of the 60-year cycle from its stem and branch.
func (t *translator) sexagenary(year, stem, branch int) string {
	return t.msg(msgSexagenary, map[string]any{
		"Stem":   t.msg(fmt.Sprintf("Stem%d", stem), nil),
		"Branch": t.msg(fmt.Sprintf("Branch%d", branch), nil),
		"Year":   year,
	})
}
