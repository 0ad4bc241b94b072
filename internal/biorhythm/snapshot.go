package biorhythm

import "time"

// corePeriods are the three cycles every snapshot always includes.
var corePeriods = []Period{Physical, Emotional, Intellectual}

// extendedPeriods are included only when a caller opts in.
var extendedPeriods = []Period{Intuitive, Aesthetic, Spiritual}

// Trend summarises whether a snapshot's cycles are broadly rising, falling,
// mixed, or holding steady.
type Trend string

const (
	TrendAscending  Trend = "ascending"
	TrendDescending Trend = "descending"
	TrendMixed      Trend = "mixed"
	TrendStable     Trend = "stable"
)

// Snapshot is a complete biorhythm reading for one target date.
type Snapshot struct {
	TargetDate     time.Time
	DaysAlive      int
	Cycles         map[Period]Cycle
	OverallEnergy  float64
	CriticalDay    bool
	Trend          Trend
}

// ComputeSnapshot reads every active cycle (core, plus extended when
// requested) at target relative to birth.
func ComputeSnapshot(birth, target time.Time, includeExtended bool) Snapshot {
	daysAlive := DaysAlive(birth, target)

	periods := corePeriods
	if includeExtended {
		periods = append(append([]Period{}, corePeriods...), extendedPeriods...)
	}

	cycles := make(map[Period]Cycle, len(periods))
	total := 0.0
	criticalCount := 0
	risingCount := 0
	fallingCount := 0
	for _, p := range periods {
		c := ComputeCycle(p, daysAlive)
		cycles[p] = c
		total += c.Percentage
		if c.Phase == PhaseCritical {
			criticalCount++
		}
		if c.Phase == PhaseRising || c.Phase == PhasePeak {
			risingCount++
		}
		if c.Phase == PhaseFalling || c.Phase == PhaseValley {
			fallingCount++
		}
	}

	overallEnergy := total / float64(len(periods))

	var trend Trend
	switch {
	case risingCount == len(periods):
		trend = TrendAscending
	case fallingCount == len(periods):
		trend = TrendDescending
	case risingCount > 0 && fallingCount > 0:
		trend = TrendMixed
	default:
		trend = TrendStable
	}

	return Snapshot{
		TargetDate:    target,
		DaysAlive:     daysAlive,
		Cycles:        cycles,
		OverallEnergy: overallEnergy,
		CriticalDay:   criticalCount >= 2,
		Trend:         trend,
	}
}

// Forecast computes one snapshot per day, starting at target, for
// forecastDays consecutive days.
func Forecast(birth, target time.Time, forecastDays int, includeExtended bool) []Snapshot {
	out := make([]Snapshot, 0, forecastDays)
	for i := 0; i < forecastDays; i++ {
		day := target.AddDate(0, 0, i)
		out = append(out, ComputeSnapshot(birth, day, includeExtended))
	}
	return out
}

// CriticalDays filters a forecast down to the dates flagged as critical.
func CriticalDays(forecast []Snapshot) []time.Time {
	var out []time.Time
	for _, s := range forecast {
		if s.CriticalDay {
			out = append(out, s.TargetDate)
		}
	}
	return out
}

// BestAndChallengingDays splits a forecast into high-energy days
// (> 50% overall) and challenging days (< -25% or critical).
func BestAndChallengingDays(forecast []Snapshot) (best, challenging []time.Time) {
	for _, s := range forecast {
		switch {
		case s.OverallEnergy > 50:
			best = append(best, s.TargetDate)
		case s.OverallEnergy < -25 || s.CriticalDay:
			challenging = append(challenging, s.TargetDate)
		}
	}
	return best, challenging
}
