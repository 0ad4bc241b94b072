package astro

import "time"

// JulianDay converts a timezone-aware instant to its Julian day number
// (§4.2.2). The input is normalised to UTC first so callers never need to
// reason about the offset themselves.
func JulianDay(t time.Time) float64 {
	u := t.UTC()
	year, month, day := u.Date()
	hour, min, sec := u.Clock()
	dayFrac := float64(day) + (float64(hour)+float64(min)/60+float64(sec)/3600)/24

	y, m := year, int(month)
	if m <= 2 {
		y--
		m += 12
	}
	a := y / 100
	b := 2 - a + a/4

	jd := float64(int(365.25*float64(y+4716))) +
		float64(int(30.6001*float64(m+1))) +
		dayFrac + float64(b) - 1524.5

	return jd
}

// AddSolarDegrees returns the Julian day at which the Sun's tropical
// longitude has moved back by degrees from its position at jd, used by the
// Human Design "design time" search (§4.2.4). A negative degrees value
// walks forward instead.
//
// This is a coarse linear estimate (~0.9856°/day mean solar motion); the
// 88°-offset search in humandesign_gate.go refines it with the ephemeris facade.
func AddSolarDegrees(jd float64, degrees float64) float64 {
	const meanDailyMotion = 0.9856002585 // degrees/day
	return jd - degrees/meanDailyMotion
}
