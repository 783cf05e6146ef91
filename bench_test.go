package worldcal

import (
	"testing"
	"time"
)

func benchmarkDecompose(b *testing.B, cal Calendar) {
	t := tp(2024, time.June, 15)
	for b.Loop() {
		Decompose(cal, t)
	}
}

func BenchmarkDecompose_Gregorian(b *testing.B) { benchmarkDecompose(b, NewGregorianCalendar()) }
func BenchmarkDecompose_Japanese(b *testing.B)  { benchmarkDecompose(b, NewJapaneseCalendar()) }
func BenchmarkDecompose_Hijri(b *testing.B)     { benchmarkDecompose(b, NewHijriCalendar()) }
func BenchmarkDecompose_UmAlQura(b *testing.B)  { benchmarkDecompose(b, NewUmAlQuraCalendar()) }
func BenchmarkDecompose_Hebrew(b *testing.B)    { benchmarkDecompose(b, NewHebrewCalendar()) }
func BenchmarkDecompose_Persian(b *testing.B)   { benchmarkDecompose(b, NewPersianCalendar()) }
func BenchmarkDecompose_Chinese(b *testing.B)   { benchmarkDecompose(b, NewChineseLunisolarCalendar()) }

func BenchmarkToTimePoint_Hebrew(b *testing.B) {
	cal := NewHebrewCalendar()
	for b.Loop() {
		cal.ToTimePoint(5784, 13, 29, 12, 0, 0, 0, CurrentEra)
	}
}

func BenchmarkToTimePoint_Persian(b *testing.B) {
	cal := NewPersianCalendar()
	for b.Loop() {
		cal.ToTimePoint(1403, 12, 30, 12, 0, 0, 0, CurrentEra)
	}
}

func BenchmarkAddMonths_Hebrew(b *testing.B) {
	cal := NewHebrewCalendar()
	t := tp(2024, time.June, 15)
	for b.Loop() {
		cal.AddMonths(t, -235)
	}
}

func BenchmarkAddMonths_Chinese(b *testing.B) {
	cal := NewChineseLunisolarCalendar()
	t := tp(2024, time.June, 15)
	for b.Loop() {
		cal.AddMonths(t, 125)
	}
}

func BenchmarkWeekOfYear_FirstFourDayWeek(b *testing.B) {
	cal := NewGregorianCalendar()
	t := tp(2021, time.January, 1) // falls back to 2020
	for b.Loop() {
		WeekOfYear(cal, t, FirstFourDayWeek, time.Monday)
	}
}

func BenchmarkFormatHebrewNumber(b *testing.B) {
	for b.Loop() {
		FormatHebrewNumber(5784)
	}
}
