// Package astro is the astronomical/astrological primitives layer of §4.2:
// Julian day conversion, planetary longitudes via an explicit ephemeris
// facade, sidereal (Lahiri) correction, nakshatra mapping, and the Human
// Design gate/line wheel. It has no knowledge of any engine's input/output
// shape — engines call into astro and reshape the result themselves.
package astro

import "time"

// BirthData is the minimal set of facts astro needs to compute a chart:
// a timezone-aware instant and a geographic position. Engines build this
// from their own input and hand it to astro rather than astro knowing
// anything about HTTP-facing schemas.
type BirthData struct {
	Moment    time.Time // timezone-aware local birth moment
	Latitude  float64   // degrees, north positive
	Longitude float64   // degrees, east positive
}

// Body identifies a celestial body or calculated point recognised by the
// ephemeris facade. Values follow the Swiss Ephemeris planet numbering;
// swisseph.go still maps each one explicitly through bodyToSE.
type Body int

const (
	Sun Body = iota
	Moon
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
	MeanNode // North Node (Rahu); South Node (Ketu) is MeanNode + 180°
)

// PlanetaryPosition is the result of one ephemeris query for one body at
// one instant.
type PlanetaryPosition struct {
	Body           Body
	LongitudeDeg   float64 // ecliptic longitude, tropical, 0-360
	LatitudeDeg    float64 // ecliptic latitude
	SpeedDegPerDay float64 // signed; negative means retrograde
}

// Nakshatra describes one of the 27 lunar mansions at a given longitude.
type Nakshatra struct {
	Index              int    // 0-26
	Name               string
	Pada               int     // 1-4, quarter within the nakshatra
	LordOf             string  // ruling planet name, for vimshottari dasha lookups
	DegreesInNakshatra float64 // 0-13.333..., offset into the nakshatra's own span
}

// Gate is one of the 64 Human Design gates with its active line.
type Gate struct {
	Number int // 1-64
	Line   int // 1-6
}

// Chart bundles everything a Human Design or Vedic-facing engine typically
// needs from a single natal computation: personality (birth-moment) and
// design (88 solar degrees prior) positions for every tracked body.
type Chart struct {
	PersonalityJD float64
	DesignJD      float64
	Personality   map[Body]PlanetaryPosition
	Design        map[Body]PlanetaryPosition
}
