// Package astro implements the solar and lunar position algorithms used to
// place calendar boundaries.
//
// Moments are fractional day numbers counted from 0001-01-01T00:00 universal
// time on the proleptic Gregorian calendar, so the integer part of a moment is
// the same absolute day number the calendars use.
package astro

import (
	"math"
	"time"
)

const (
	// MeanTropicalYear is the mean length of the tropical year in days.
	MeanTropicalYear = 365.242189

	// noon2000 is the moment of 2000-01-01T12:00.
	noon2000 = 730119.5

	daysPerCentury = 36525.0
	secondsPerDay  = 86400.0
	fullCircle     = 360.0

	// meanSpeedOfSun is the number of days the sun needs to travel one degree.
	meanSpeedOfSun = MeanTropicalYear / fullCircle
)

var epochUnix = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC).Unix()

// lastDay is the day number of 9999-12-31.
var lastDay = DayNumber(9999, time.December, 31)

// DayNumber returns the absolute day number of a proleptic Gregorian date.
func DayNumber(year int, month time.Month, day int) int64 {
	return (time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Unix() - epochUnix) / secondsPerDay
}

// DateOf returns the proleptic Gregorian date of an absolute day number.
func DateOf(day int64) (int, time.Month, int) {
	return time.Unix(epochUnix+day*secondsPerDay, 0).UTC().Date()
}

func yearOfMoment(moment float64) int {
	day := int64(math.Floor(moment))
	if day < 0 {
		day = 0
	}
	if day > lastDay {
		day = lastDay
	}
	y, _, _ := DateOf(day)
	return y
}

var (
	startOf1810 = float64(DayNumber(1810, time.January, 1))
	startOf1900 = float64(DayNumber(1900, time.January, 1))

	coefficients1900to1987 = []float64{-0.00002, 0.000297, 0.025184, -0.181133, 0.553040, -0.861938, 0.677066, -0.212591}
	coefficients1800to1899 = []float64{-0.000009, 0.003844, 0.083563, 0.865736, 4.867575, 15.845535, 31.332267, 38.291999, 28.316289, 11.636204, 2.043794}
	coefficients1700to1799 = []float64{8.118780842, -0.005092142, 0.003336121, -0.0000266484}
	coefficients1620to1699 = []float64{196.58333, -4.0675, 0.0219167}
)

// polynomial evaluates sum(c[i] * x^i).
func polynomial(c []float64, x float64) float64 {
	sum := 0.0
	for i := len(c) - 1; i >= 0; i-- {
		sum = sum*x + c[i]
	}
	return sum
}

// EphemerisCorrection returns the difference between dynamical time and
// universal time at the given moment, in days.
func EphemerisCorrection(moment float64) float64 {
	year := yearOfMoment(moment)
	switch {
	case year >= 2020 || year < 1620:
		x := 0.5 + float64(DayNumber(year, time.January, 1)) - startOf1810
		return (x*x/41048480 - 15) / secondsPerDay
	case year >= 1988:
		return float64(year-1933) / secondsPerDay
	case year >= 1800:
		c := (float64(DayNumber(year, time.July, 1)) - startOf1900) / daysPerCentury
		if year >= 1900 {
			return polynomial(coefficients1900to1987, c)
		}
		return polynomial(coefficients1800to1899, c)
	case year >= 1700:
		return polynomial(coefficients1700to1799, float64(year-1700)) / secondsPerDay
	default:
		return polynomial(coefficients1620to1699, float64(year-1600)) / secondsPerDay
	}
}

// JulianCenturies returns the dynamical time elapsed since J2000 in Julian
// centuries.
func JulianCenturies(moment float64) float64 {
	return (moment + EphemerisCorrection(moment) - noon2000) / daysPerCentury
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }

// normalize returns an angle in [0, 360).
func normalize(deg float64) float64 {
	deg = math.Mod(deg, fullCircle)
	if deg < 0 {
		deg += fullCircle
	}
	return deg
}

// signed returns an angle in [-180, 180).
func signed(deg float64) float64 {
	return normalize(deg+180) - 180
}

// Periodic terms of the solar longitude series.
var (
	solarCoefficients = [...]float64{
		403406, 195207, 119433, 112392, 3891, 2819, 1721, 660, 350, 334,
		314, 268, 242, 234, 158, 132, 129, 114, 99, 93,
		86, 78, 72, 68, 64, 46, 38, 37, 32, 29,
		28, 27, 27, 25, 24, 21, 21, 20, 18, 17,
		14, 13, 13, 13, 12, 10, 10, 10, 10,
	}
	solarAddends = [...]float64{
		270.54861, 340.19128, 63.91854, 331.26220, 317.843, 86.631, 240.052, 310.26, 247.23, 260.87,
		297.82, 343.14, 166.79, 81.53, 3.50, 132.75, 182.95, 162.03, 29.8, 266.4,
		249.2, 157.6, 257.8, 185.1, 69.9, 8.0, 197.1, 250.4, 65.3, 162.7,
		341.5, 291.6, 98.5, 146.7, 110.0, 5.2, 342.6, 230.9, 256.1, 45.3,
		242.9, 115.2, 151.8, 285.3, 53.3, 126.6, 205.7, 85.9, 146.1,
	}
	solarMultipliers = [...]float64{
		0.9287892, 35999.1376958, 35999.4089666, 35998.7287385, 71998.20261, 71998.4403, 36000.35726, 71997.4812, 32964.4678, -19.4410,
		445267.1117, 45036.8840, 3.1008, 22518.4434, -19.9739, 65928.9345, 9038.0293, 3034.7684, 33718.148, 3034.448,
		-2280.773, 29929.992, 31556.493, 149.588, 9037.750, 107997.405, -4444.176, 151.771, 67555.316, 31556.080,
		-4561.540, 107996.706, 1221.655, 62894.167, 31437.369, 14578.298, -31931.757, 34777.243, 1221.999, 62894.511,
		-4442.039, 107997.909, 119.066, 16859.071, -4.578, 26895.292, -39.127, 12297.536, 90073.778,
	}
)

func aberration(c float64) float64 {
	return 0.0000974*math.Cos(radians(177.63+35999.01848*c)) - 0.005575
}

func nutation(c float64) float64 {
	a := 124.90 - 1934.134*c + 0.002063*c*c
	b := 201.11 + 72001.5377*c + 0.00057*c*c
	return -0.004778*math.Sin(radians(a)) - 0.0003667*math.Sin(radians(b))
}

// SolarLongitude returns the apparent geocentric longitude of the sun in
// degrees, in [0, 360).
func SolarLongitude(moment float64) float64 {
	c := JulianCenturies(moment)
	sum := 0.0
	for i := range solarCoefficients {
		sum += solarCoefficients[i] * math.Sin(radians(solarAddends[i]+solarMultipliers[i]*c))
	}
	lambda := 282.7771834 + 36000.76953744*c + 0.000005729577951308232*sum
	return normalize(lambda + aberration(c) + nutation(c))
}

// obliquity returns the mean obliquity of the ecliptic in degrees.
func obliquity(c float64) float64 {
	return 23 + 26.0/60 + 21.448/3600 + polynomial([]float64{0, -46.8150, -0.00059, 0.001813}, c)/3600
}

// EquationOfTime returns the difference between apparent and mean solar time
// as a fraction of a day, clamped to half a day.
func EquationOfTime(moment float64) float64 {
	c := JulianCenturies(moment)
	lambda := polynomial([]float64{280.46645, 36000.76983, 0.0003032}, c)
	anomaly := polynomial([]float64{357.52910, 35999.05030, -0.0001559, -0.00000048}, c)
	eccentricity := polynomial([]float64{0.016708617, -0.000042037, -0.0000001236}, c)
	y := math.Pow(math.Tan(radians(obliquity(c)/2)), 2)

	equation := (1 / (2 * math.Pi)) * (y*math.Sin(radians(2*lambda)) -
		2*eccentricity*math.Sin(radians(anomaly)) +
		4*eccentricity*y*math.Sin(radians(anomaly))*math.Cos(radians(2*lambda)) -
		0.5*y*y*math.Sin(radians(4*lambda)) -
		1.25*eccentricity*eccentricity*math.Sin(radians(2*anomaly)))
	return math.Copysign(math.Min(math.Abs(equation), 0.5), equation)
}

// Midday returns the universal moment of apparent noon on the given day at
// the given east longitude.
func Midday(day float64, longitude float64) float64 {
	offset := longitude / fullCircle
	apparent := day + 0.5
	local := apparent - EquationOfTime(apparent-offset)
	return local - offset
}

// EstimatePrior estimates the last moment before the given one at which the
// sun stood at the given longitude.
func EstimatePrior(longitude, moment float64) float64 {
	last := moment - meanSpeedOfSun*normalize(SolarLongitude(moment)-longitude)
	delta := signed(SolarLongitude(last) - longitude)
	return math.Min(moment, last-meanSpeedOfSun*delta)
}

// SolarTermMoment returns the moment near approx at which the sun reaches the
// given longitude.
func SolarTermMoment(longitude, approx float64) float64 {
	t := approx
	for range 50 {
		d := signed(longitude - SolarLongitude(t))
		t += d * meanSpeedOfSun
		if math.Abs(d) < 1e-7 {
			break
		}
	}
	return t
}

// tehranLongitude is the meridian of Iran Standard Time (UTC+3:30).
const tehranLongitude = 52.5

// PersianNewYearOnOrBefore returns the day number of the Persian new year
// (the first day whose apparent noon at 52.5 E falls on or after the vernal
// equinox) that is on or before the given day.
func PersianNewYearOnOrBefore(day int64) int64 {
	approx := EstimatePrior(0, Midday(float64(day), tehranLongitude))
	d := int64(math.Floor(approx)) - 1
	// The estimate is within a day of the boundary.
	for last := d + 2; d < last; d++ {
		if SolarLongitude(Midday(float64(d), tehranLongitude)) <= 2 {
			break
		}
	}
	return d
}
