package astro

// nakshatraSpanDeg is 360/27: each lunar mansion spans 13.333...° of the
// sidereal zodiac.
const nakshatraSpanDeg = 360.0 / 27.0

// padaSpanDeg is 360/108: each of the 4 padas within a nakshatra spans
// 3.333...°, i.e. a ninth of a zodiac sign.
const padaSpanDeg = nakshatraSpanDeg / 4.0

// nakshatraNames (the 27 lunar mansions in zodiacal order starting at
// sidereal 0° Aries) and nakshatraLords (the 9-planet dasha-entry sequence
// of §4.2.6, repeating 3 times across the 27 names) are loaded from
// data/nakshatra.json by data.go's init.

// NakshatraAt resolves the nakshatra and pada for a sidereal longitude
// (degrees, 0-360).
func NakshatraAt(siderealLongitude float64) Nakshatra {
	lon := normalizeDegrees(siderealLongitude)
	index := int(lon / nakshatraSpanDeg)
	if index > 26 {
		index = 26
	}
	offsetWithinNakshatra := lon - float64(index)*nakshatraSpanDeg
	pada := int(offsetWithinNakshatra/padaSpanDeg) + 1
	if pada > 4 {
		pada = 4
	}
	return Nakshatra{
		Index:              index,
		Name:               nakshatraNames[index],
		Pada:               pada,
		LordOf:             nakshatraLords[index%9],
		DegreesInNakshatra: offsetWithinNakshatra,
	}
}
