package astro

import "math"

// Location is a place on the earth.
type Location struct {
	Latitude  float64 // degrees north
	Longitude float64 // degrees east
	Zone      float64 // standard time offset from UTC in hours
}

// Mecca is the reference location of the Umm al-Qura calendar.
var Mecca = Location{Latitude: 21.4225, Longitude: 39.8262, Zone: 3}

// sunsetAltitude is the altitude of the sun's centre at sunset, allowing for
// refraction and the solar semidiameter.
const sunsetAltitude = -0.8333

func lowObliquity(c float64) float64 {
	return 23.4392911 - 0.0130042*c
}

// equatorial converts ecliptic coordinates to right ascension and
// declination.
func equatorial(longitude, latitude, c float64) (ra, dec float64) {
	eps := radians(lowObliquity(c))
	l := radians(longitude)
	b := radians(latitude)
	ra = math.Atan2(math.Sin(l)*math.Cos(eps)-math.Tan(b)*math.Sin(eps), math.Cos(l))
	dec = math.Asin(math.Sin(b)*math.Cos(eps) + math.Cos(b)*math.Sin(eps)*math.Sin(l))
	return normalize(degrees(ra)), degrees(dec)
}

// siderealTime returns the Greenwich mean sidereal time in degrees.
func siderealTime(moment float64) float64 {
	jd := moment + julianDayOfEpoch
	c := (jd - 2451545.0) / daysPerCentury
	return normalize(280.46061837 + 360.98564736629*(jd-2451545.0) + 0.000387933*c*c - c*c*c/38710000)
}

func altitude(ra, dec, moment float64, loc Location) float64 {
	hour := radians(siderealTime(moment) + loc.Longitude - ra)
	phi := radians(loc.Latitude)
	delta := radians(dec)
	return degrees(math.Asin(math.Sin(phi)*math.Sin(delta) + math.Cos(phi)*math.Cos(delta)*math.Cos(hour)))
}

// SunAltitude returns the altitude of the sun in degrees.
func SunAltitude(moment float64, loc Location) float64 {
	ra, dec := equatorial(SolarLongitude(moment), 0, JulianCenturies(moment))
	return altitude(ra, dec, moment, loc)
}

// MoonAltitude returns the geocentric altitude of the moon in degrees and
// its distance in kilometres.
func MoonAltitude(moment float64, loc Location) (float64, float64) {
	longitude, latitude, distance := MoonPosition(moment)
	ra, dec := equatorial(longitude, latitude, JulianCenturies(moment))
	return altitude(ra, dec, moment, loc), distance
}

// MoonsetAltitude returns the geocentric altitude of the moon's centre at
// moonset for the given distance.
func MoonsetAltitude(distance float64) float64 {
	parallax := degrees(math.Asin(6378.14 / distance))
	return 0.7275*parallax - 0.5667
}

// Sunset returns the universal moment of sunset on the given local day.
func Sunset(day int64, loc Location) float64 {
	lo := float64(day) + 12.0/24 - loc.Zone/24
	hi := float64(day) + 23.0/24 - loc.Zone/24
	for range 60 {
		mid := (lo + hi) / 2
		if SunAltitude(mid, loc) > sunsetAltitude {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}
