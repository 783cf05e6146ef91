package astro

import (
	"math"
	"time"
)

// julianDayOfEpoch is the Julian day number of 0001-01-01T00:00.
const julianDayOfEpoch = 1721425.5

const meanSynodicMonth = 29.530588861

var (
	planetaryWeights = [...]float64{
		0.000325, 0.000165, 0.000164, 0.000126, 0.000110, 0.000062, 0.000060,
		0.000056, 0.000047, 0.000042, 0.000040, 0.000037, 0.000035, 0.000023,
	}
	planetaryAddends = [...]float64{
		299.77, 251.88, 251.83, 349.42, 84.66, 141.74, 207.14,
		154.84, 34.52, 207.19, 291.34, 161.72, 239.56, 331.55,
	}
	planetaryRates = [...]float64{
		0.107408, 0.016321, 26.651886, 36.412478, 18.206239, 53.303771, 2.453732,
		7.306860, 27.261239, 0.121824, 1.844379, 24.198154, 25.513099, 3.592518,
	}
)

// NewMoon returns the universal moment of the k-th new moon counted from the
// one of 2000-01-06.
func NewMoon(k float64) float64 {
	t := k / 1236.85
	jde := 2451550.09766 + meanSynodicMonth*k + 0.00015437*t*t - 0.000000150*t*t*t + 0.00000000073*t*t*t*t
	e := 1 - 0.002516*t - 0.0000074*t*t
	m := radians(2.5534 + 29.10535670*k - 0.0000014*t*t - 0.00000011*t*t*t)
	mp := radians(201.5643 + 385.81693528*k + 0.0107582*t*t + 0.00001238*t*t*t - 0.000000058*t*t*t*t)
	f := radians(160.7108 + 390.67050284*k - 0.0016118*t*t - 0.00000227*t*t*t + 0.000000011*t*t*t*t)
	omega := radians(124.7746 - 1.56375588*k + 0.0020672*t*t + 0.00000215*t*t*t)

	c := -0.40720*math.Sin(mp) +
		0.17241*e*math.Sin(m) +
		0.01608*math.Sin(2*mp) +
		0.01039*math.Sin(2*f) +
		0.00739*e*math.Sin(mp-m) -
		0.00514*e*math.Sin(mp+m) +
		0.00208*e*e*math.Sin(2*m) -
		0.00111*math.Sin(mp-2*f) -
		0.00057*math.Sin(mp+2*f) +
		0.00056*e*math.Sin(2*mp+m) -
		0.00042*math.Sin(3*mp) +
		0.00042*e*math.Sin(m+2*f) +
		0.00038*e*math.Sin(m-2*f) -
		0.00024*e*math.Sin(2*mp-m) -
		0.00017*math.Sin(omega) -
		0.00007*math.Sin(mp+2*m) +
		0.00004*math.Sin(2*mp-2*f) +
		0.00004*math.Sin(3*m) +
		0.00003*math.Sin(mp+m-2*f) +
		0.00003*math.Sin(2*mp+2*f) -
		0.00003*math.Sin(mp+m+2*f) +
		0.00003*math.Sin(mp-m+2*f) -
		0.00002*math.Sin(mp-m-2*f) -
		0.00002*math.Sin(3*mp+m) +
		0.00002*math.Sin(4*mp)

	for i := range planetaryWeights {
		a := planetaryAddends[i] + planetaryRates[i]*k
		if i == 0 {
			a -= 0.009173 * t * t
		}
		c += planetaryWeights[i] * math.Sin(radians(a))
	}

	moment := jde + c - julianDayOfEpoch
	return moment - EphemerisCorrection(moment)
}

// NewMoonsBetween returns the universal moments of the new moons in
// [from, to), in increasing order.
func NewMoonsBetween(from, to float64) []float64 {
	day := int64(math.Floor(from))
	year, _, _ := DateOf(day)
	fraction := float64(year) + (from-float64(DayNumber(year, time.January, 1)))/365.25
	k := math.Floor((fraction-2000)*12.3685) - 2

	var moons []float64
	for ; ; k++ {
		t := NewMoon(k)
		if t >= to {
			return moons
		}
		if t >= from {
			moons = append(moons, t)
		}
	}
}

// lunarTerm is one periodic term of the lunar theory: multiples of the mean
// elongation, solar anomaly, lunar anomaly and argument of latitude, and the
// coefficient.
type lunarTerm struct {
	d, m, mp, f float64
	coefficient float64
}

var longitudeTerms = []lunarTerm{
	{0, 0, 1, 0, 6288774}, {2, 0, -1, 0, 1274027}, {2, 0, 0, 0, 658314},
	{0, 0, 2, 0, 213618}, {0, 1, 0, 0, -185116}, {0, 0, 0, 2, -114332},
	{2, 0, -2, 0, 58793}, {2, -1, -1, 0, 57066}, {2, 0, 1, 0, 53322},
	{2, -1, 0, 0, 45758}, {0, 1, -1, 0, -40923}, {1, 0, 0, 0, -34720},
	{0, 1, 1, 0, -30383}, {2, 0, 0, -2, 15327}, {0, 0, 1, 2, -12528},
	{0, 0, 1, -2, 10980}, {4, 0, -1, 0, 10675}, {0, 0, 3, 0, 10034},
	{4, 0, -2, 0, 8548}, {2, 1, -1, 0, -7888}, {2, 1, 0, 0, -6766},
	{1, 0, -1, 0, -5163}, {1, 1, 0, 0, 4987}, {2, -1, 1, 0, 4036},
	{2, 0, 2, 0, 3994},
}

var distanceTerms = []lunarTerm{
	{0, 0, 1, 0, -20905355}, {2, 0, -1, 0, -3699111}, {2, 0, 0, 0, -2955968},
	{0, 0, 2, 0, -569925}, {0, 1, 0, 0, 48888}, {0, 0, 0, 2, -3149},
	{2, 0, -2, 0, 246158}, {2, -1, -1, 0, -152138}, {2, 0, 1, 0, -170733},
	{2, -1, 0, 0, -204586}, {0, 1, -1, 0, -129620}, {1, 0, 0, 0, 108743},
	{0, 1, 1, 0, 104755},
}

var latitudeTerms = []lunarTerm{
	{0, 0, 0, 1, 5128122}, {0, 0, 1, 1, 280602}, {0, 0, 1, -1, 277693},
	{2, 0, 0, -1, 173237}, {2, 0, -1, 1, 55413}, {2, 0, -1, -1, 46271},
	{2, 0, 0, 1, 32573}, {0, 0, 2, 1, 17198}, {2, 0, 1, -1, 9266},
	{0, 0, 2, -1, 8822}, {2, -1, 0, -1, 8216}, {2, 0, -2, -1, 4324},
	{2, 0, 1, 1, 4200},
}

// MoonPosition returns the geocentric ecliptic longitude and latitude of the
// moon in degrees and its distance in kilometres.
func MoonPosition(moment float64) (longitude, latitude, distance float64) {
	c := JulianCenturies(moment)
	meanLongitude := 218.3164477 + 481267.88123421*c - 0.0015786*c*c + c*c*c/538841 - c*c*c*c/65194000
	elongation := 297.8501921 + 445267.1114034*c - 0.0018819*c*c + c*c*c/545868 - c*c*c*c/113065000
	solarAnomaly := 357.5291092 + 35999.0502909*c - 0.0001536*c*c + c*c*c/24490000
	lunarAnomaly := 134.9633964 + 477198.8675055*c + 0.0087414*c*c + c*c*c/69699 - c*c*c*c/14712000
	argument := 93.2720950 + 483202.0175233*c - 0.0036539*c*c - c*c*c/3526000 + c*c*c*c/863310000
	e := 1 - 0.002516*c - 0.0000074*c*c

	sum := func(terms []lunarTerm, fn func(float64) float64) float64 {
		total := 0.0
		for _, term := range terms {
			arg := radians(term.d*elongation + term.m*solarAnomaly + term.mp*lunarAnomaly + term.f*argument)
			total += term.coefficient * math.Pow(e, math.Abs(term.m)) * fn(arg)
		}
		return total
	}

	longitude = normalize(meanLongitude + sum(longitudeTerms, math.Sin)/1e6)
	latitude = sum(latitudeTerms, math.Sin) / 1e6
	distance = 385000.56 + sum(distanceTerms, math.Cos)/1000
	return longitude, latitude, distance
}
