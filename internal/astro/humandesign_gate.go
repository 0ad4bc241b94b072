package astro

import "fmt"

// degreesPerGate is 360/64: each Human Design gate spans 5.625° of the
// transformed wheel.
const degreesPerGate = 360.0 / 64.0

// degreesPerLine is degreesPerGate/6: each of the 6 lines within a gate
// spans 0.9375°.
const degreesPerLine = degreesPerGate / 6.0

// Per-role longitude offsets applied before indexing into the gate wheel
// (§4.2.4), carried over unchanged from the reference implementation's
// research-validated coordinate transform.
const (
	offsetPersonalitySun  = 45.6
	offsetPersonalityEarth = 45.5
	offsetDesignSun       = 43.5
	offsetDesignEarth     = 43.5
)

// Role identifies which per-body, per-chart offset applies when resolving
// a gate from a raw ecliptic longitude.
type Role int

const (
	RolePersonalitySun Role = iota
	RolePersonalityEarth
	RoleDesignSun
	RoleDesignEarth
	// RoleOther covers every body besides Sun/Earth, which uses no
	// additional offset beyond the gate wheel's own alignment.
	RoleOther
)

func offsetFor(role Role) float64 {
	switch role {
	case RolePersonalitySun:
		return offsetPersonalitySun
	case RolePersonalityEarth:
		return offsetPersonalityEarth
	case RoleDesignSun:
		return offsetDesignSun
	case RoleDesignEarth:
		return offsetDesignEarth
	default:
		return 0
	}
}

// GateAt resolves the Human Design gate and line active at a raw ecliptic
// longitude for the given role.
func GateAt(longitude float64, role Role) Gate {
	transformed := normalizeDegrees(longitude + offsetFor(role))

	position := int(transformed / degreesPerGate)
	if position > 63 {
		position = 63
	}
	gateNumber := gateSequence[position]

	withinGate := transformed - float64(position)*degreesPerGate
	line := int(withinGate/degreesPerLine) + 1
	if line > 6 {
		line = 6
	}

	return Gate{Number: gateNumber, Line: line}
}

// EarthLongitude returns the Earth position implied by a Sun longitude:
// Earth sits exactly opposite the Sun on the ecliptic (§4.2.4).
func EarthLongitude(sunLongitude float64) float64 {
	return normalizeDegrees(sunLongitude + 180)
}

const (
	designArcDegrees  = 88.0
	designSearchSpan  = 10.0 // days of slack either side of the 88-day estimate
	designSearchSteps = 40   // bisection iterations, well past float64 precision need
)

// DesignJulianDay locates the Julian day at which the Sun's tropical
// longitude was designArcDegrees behind its position at birthJD — the
// official Human Design "design time" (§4.2.4). It narrows a bracketing
// window with a linear estimate from AddSolarDegrees, then bisects against
// the real ephemeris to converge on the exact crossing. This widens the
// search span dynamically when the mean-motion estimate falls outside the
// default window instead of rejecting it outright, and runs a fixed 40
// iterations rather than stopping at a longitude-error threshold; both
// converge to the same design Sun position well within float64 precision.
func DesignJulianDay(eph Ephemeris, birthJD float64) (float64, error) {
	birthPositions, err := eph.Positions(birthJD, []Body{Sun})
	if err != nil {
		return 0, fmt.Errorf("astro: design time: birth sun lookup failed: %w", err)
	}
	birthSun := birthPositions[Sun]
	targetLongitude := normalizeDegrees(birthSun.LongitudeDeg - designArcDegrees)

	estimate := AddSolarDegrees(birthJD, designArcDegrees)
	if birthSun.SpeedDegPerDay > 0 {
		// Refine the mean-motion estimate with the Sun's actual speed at
		// birth, which the stub ephemeris (and the real Sun, to within a
		// fraction of a day) holds effectively constant over the ~88-day
		// search window.
		estimate = birthJD - designArcDegrees/birthSun.SpeedDegPerDay
	}
	span := designSearchSpan
	if d := estimate - birthJD; d < -span || d > span {
		span = -d * 0.25
		if span < designSearchSpan {
			span = designSearchSpan
		}
	}
	lo := estimate - span
	hi := estimate + span

	sunLongitudeAt := func(jd float64) (float64, error) {
		pos, err := eph.Positions(jd, []Body{Sun})
		if err != nil {
			return 0, err
		}
		return pos[Sun].LongitudeDeg, nil
	}

	// angularDistance is the signed difference (candidate - target) mapped
	// into (-180, 180], so it increases monotonically with time across the
	// 88-degree arc the Sun sweeps in roughly three months.
	angularDistance := func(jd float64) (float64, error) {
		lon, err := sunLongitudeAt(jd)
		if err != nil {
			return 0, err
		}
		d := normalizeDegrees(lon-targetLongitude)
		if d > 180 {
			d -= 360
		}
		return d, nil
	}

	loDist, err := angularDistance(lo)
	if err != nil {
		return 0, fmt.Errorf("astro: design time: ephemeris lookup failed: %w", err)
	}
	hiDist, err := angularDistance(hi)
	if err != nil {
		return 0, fmt.Errorf("astro: design time: ephemeris lookup failed: %w", err)
	}
	if (loDist < 0) == (hiDist < 0) {
		// Bracket didn't straddle the crossing; fall back to the linear
		// estimate rather than bisecting blind.
		return estimate, nil
	}

	for i := 0; i < designSearchSteps; i++ {
		mid := (lo + hi) / 2
		midDist, err := angularDistance(mid)
		if err != nil {
			return 0, fmt.Errorf("astro: design time: ephemeris lookup failed: %w", err)
		}
		if (midDist < 0) == (loDist < 0) {
			lo = mid
		} else {
			hi = mid
		}
	}

	return (lo + hi) / 2, nil
}
