package astro

import (
	"fmt"
	"math"
)

// Ephemeris is the explicit facade over a third-party astronomical library
// (Design Note §9): every caller goes through this interface rather than
// importing the underlying package directly, so the production adapter
// (SwissEphemeris, swisseph.go) and the deterministic StubEphemeris used in
// tests and no-data-path deployments are interchangeable.
type Ephemeris interface {
	// Positions returns the tropical ecliptic position of each requested
	// body at the given Julian day.
	Positions(jd float64, bodies []Body) (map[Body]PlanetaryPosition, error)

	// Ayanamsa returns the Lahiri sidereal correction, in degrees, to
	// subtract from a tropical longitude to obtain the sidereal longitude
	// at the given Julian day.
	Ayanamsa(jd float64) (float64, error)
}

// Sidereal subtracts the Lahiri ayanamsa from a tropical longitude and
// normalises the result to [0, 360).
func Sidereal(eph Ephemeris, jd, tropicalLongitude float64) (float64, error) {
	ayanamsa, err := eph.Ayanamsa(jd)
	if err != nil {
		return 0, fmt.Errorf("astro: ayanamsa lookup failed: %w", err)
	}
	return normalizeDegrees(tropicalLongitude - ayanamsa), nil
}

func normalizeDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// StubEphemeris is a deterministic, data-file-free implementation used when
// no ephemeris data path is configured and in unit tests (§6: the service
// must fail fast on a missing data path for the real adapter, but a stub
// is acceptable where explicitly selected, never silently substituted in
// production). Positions are a smooth, reproducible function of Julian day
// and body index — not astronomically accurate, but stable and ordered,
// which is all downstream gate/nakshatra math requires for its own tests.
type StubEphemeris struct{}

// NewStubEphemeris returns a deterministic Ephemeris with no external
// dependency.
func NewStubEphemeris() *StubEphemeris { return &StubEphemeris{} }

func (StubEphemeris) Positions(jd float64, bodies []Body) (map[Body]PlanetaryPosition, error) {
	out := make(map[Body]PlanetaryPosition, len(bodies))
	for _, b := range bodies {
		// Distinct, monotonic-in-jd synthetic rates per body so that two
		// different bodies never collide on the same longitude.
		rate := 0.5 + float64(b)*0.37
		lon := normalizeDegrees(jd*rate + float64(b)*17)
		out[b] = PlanetaryPosition{
			Body:           b,
			LongitudeDeg:   lon,
			LatitudeDeg:    0,
			SpeedDegPerDay: rate,
		}
	}
	return out, nil
}

func (StubEphemeris) Ayanamsa(jd float64) (float64, error) {
	// Lahiri ayanamsa drifts roughly linearly near +24° across the modern
	// era; this reproduces that order of magnitude without a lookup table.
	const j2000 = 2451545.0
	const ayanamsaAtJ2000 = 23.85
	const precessionPerCentury = 1.397
	centuries := (jd - j2000) / 36525.0
	return ayanamsaAtJ2000 + precessionPerCentury*centuries, nil
}
