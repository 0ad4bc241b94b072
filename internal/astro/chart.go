package astro

import "fmt"

// trackedBodies is the set of bodies every chart computation requests from
// the ephemeris facade.
var trackedBodies = []Body{
	Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto, MeanNode,
}

// ComputeChart resolves the personality (birth-moment) and design
// (88-solar-degree) planetary positions for a birth, ready for Human
// Design and Vedic-facing engines to read gates/nakshatras off.
func ComputeChart(eph Ephemeris, birth BirthData) (*Chart, error) {
	personalityJD := JulianDay(birth.Moment)

	personality, err := eph.Positions(personalityJD, trackedBodies)
	if err != nil {
		return nil, fmt.Errorf("astro: personality positions failed: %w", err)
	}

	designJD, err := DesignJulianDay(eph, personalityJD)
	if err != nil {
		return nil, fmt.Errorf("astro: design time resolution failed: %w", err)
	}

	design, err := eph.Positions(designJD, trackedBodies)
	if err != nil {
		return nil, fmt.Errorf("astro: design positions failed: %w", err)
	}

	return &Chart{
		PersonalityJD: personalityJD,
		DesignJD:      designJD,
		Personality:   personality,
		Design:        design,
	}, nil
}

// PersonalitySunGate returns the conscious (personality) Sun gate and line.
func (c *Chart) PersonalitySunGate() Gate {
	return GateAt(c.Personality[Sun].LongitudeDeg, RolePersonalitySun)
}

// PersonalityEarthGate returns the conscious (personality) Earth gate and line.
func (c *Chart) PersonalityEarthGate() Gate {
	return GateAt(EarthLongitude(c.Personality[Sun].LongitudeDeg), RolePersonalityEarth)
}

// DesignSunGate returns the unconscious (design) Sun gate and line.
func (c *Chart) DesignSunGate() Gate {
	return GateAt(c.Design[Sun].LongitudeDeg, RoleDesignSun)
}

// DesignEarthGate returns the unconscious (design) Earth gate and line.
func (c *Chart) DesignEarthGate() Gate {
	return GateAt(EarthLongitude(c.Design[Sun].LongitudeDeg), RoleDesignEarth)
}

// PersonalityGate returns the conscious gate/line for any non-Sun/Earth body.
func (c *Chart) PersonalityGate(b Body) Gate {
	return GateAt(c.Personality[b].LongitudeDeg, RoleOther)
}

// DesignGate returns the unconscious gate/line for any non-Sun/Earth body.
func (c *Chart) DesignGate(b Body) Gate {
	return GateAt(c.Design[b].LongitudeDeg, RoleOther)
}

// MoonNakshatra resolves the sidereal nakshatra of the personality Moon,
// the entry point into the Vimshottari dasha cycle (§4.2.6).
func (c *Chart) MoonNakshatra(eph Ephemeris) (Nakshatra, error) {
	sidereal, err := Sidereal(eph, c.PersonalityJD, c.Personality[Moon].LongitudeDeg)
	if err != nil {
		return Nakshatra{}, fmt.Errorf("astro: moon nakshatra: %w", err)
	}
	return NakshatraAt(sidereal), nil
}
