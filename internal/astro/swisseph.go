package astro

import (
	"fmt"
	"sync"

	se "github.com/tejzpr/go-swisseph"
)

// bodyToSE maps our Body enum onto the swisseph planet constants so the
// rest of the package never imports the swisseph package directly.
var bodyToSE = map[Body]int{
	Sun:      se.Sun,
	Moon:     se.Moon,
	Mercury:  se.Mercury,
	Venus:    se.Venus,
	Mars:     se.Mars,
	Jupiter:  se.Jupiter,
	Saturn:   se.Saturn,
	Uranus:   se.Uranus,
	Neptune:  se.Neptune,
	Pluto:    se.Pluto,
	MeanNode: se.MeanNode,
}

// SwissEphemeris is the production Ephemeris adapter wrapping the
// tejzpr/go-swisseph bindings. It owns the ephemeris data-file path and
// serialises access: the underlying library keeps global calculation
// state (current sidereal mode, loaded files), so concurrent callers must
// not interleave calls that depend on that state.
type SwissEphemeris struct {
	mu       sync.Mutex
	dataPath string
}

// NewSwissEphemeris configures the Swiss Ephemeris data path. dataPath must
// point at a directory containing the .se1 ephemeris files; an empty path
// falls back to the library's built-in Moshier approximation. Per §6, the
// caller is expected to verify dataPath exists before wiring this adapter
// in production — this constructor does not itself touch the filesystem.
func NewSwissEphemeris(dataPath string) *SwissEphemeris {
	if dataPath != "" {
		se.SetEphePath(dataPath)
	}
	return &SwissEphemeris{dataPath: dataPath}
}

func (s *SwissEphemeris) Positions(jd float64, bodies []Body) (map[Body]PlanetaryPosition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[Body]PlanetaryPosition, len(bodies))
	for _, b := range bodies {
		planet, ok := bodyToSE[b]
		if !ok {
			return nil, fmt.Errorf("astro: body %d has no swisseph mapping", b)
		}
		xx, serr, err := se.CalcUT(jd, planet, se.FlagSwieph|se.FlagSpeed)
		if err != nil {
			return nil, fmt.Errorf("astro: swisseph CalcUT(%d) failed: %w", planet, err)
		}
		if serr != "" {
			return nil, fmt.Errorf("astro: swisseph CalcUT(%d): %s", planet, serr)
		}
		out[b] = PlanetaryPosition{
			Body:           b,
			LongitudeDeg:   normalizeDegrees(xx[0]),
			LatitudeDeg:    xx[1],
			SpeedDegPerDay: xx[3],
		}
	}
	return out, nil
}

func (s *SwissEphemeris) Ayanamsa(jd float64) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	se.SetSidMode(se.SidmLahiri, 0, 0)
	ayanamsa, err := se.GetAyanamsaUT(jd)
	if err != nil {
		return 0, fmt.Errorf("astro: swisseph GetAyanamsaUT failed: %w", err)
	}
	return ayanamsa, nil
}

// Close releases any ephemeris files the underlying library has opened.
// Safe to call on process shutdown; a zero value is a no-op.
func (s *SwissEphemeris) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	se.Close()
}
