package main

import (
	"log/slog"
	"testing"
)

func TestTranslator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		lang     string
		japanese bool
		leapYear string
		cycle    string
	}{
		{"en", false, "leap year", "jiachen (41)"},
		{"ja-JP", true, "閏年", "甲辰"},
		{"fr", false, "leap year", "jiachen (41)"},
		{"!!", false, "leap year", "jiachen (41)"},
	}
	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			t.Parallel()

			tr, err := newTranslator(tt.lang, slog.New(slog.DiscardHandler))
			if err != nil {
				t.Fatal(err)
			}
			if tr.japanese != tt.japanese {
				t.Errorf("japanese = %v, want %v", tr.japanese, tt.japanese)
			}
			if got := tr.msg(msgLeapYear, nil); got != tt.leapYear {
				t.Errorf("leap year = %q, want %q", got, tt.leapYear)
			}
			if got := tr.sexagenary(41, 1, 5); got != tt.cycle {
				t.Errorf("sexagenary = %q, want %q", got, tt.cycle)
			}
		})
	}
}

func TestTranslator_MissingMessage(t *testing.T) {
	t.Parallel()

	tr, err := newTranslator("en", slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatal(err)
	}
	if got := tr.msg("NoSuchMessage", nil); got != "NoSuchMessage" {
		t.Errorf("msg = %q, want the id", got)
	}
}
