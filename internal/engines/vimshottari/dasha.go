// Package vimshottari wires internal/astro's Moon nakshatra resolution
// into the 120-year Vimshottari dasha timeline (§4.2.6, §4.3).
package vimshottari

import "time"

// daysPerYear is the Julian-year approximation the reference
// implementation uses to turn dasha years into calendar days.
const daysPerYear = 365.25

// dashaSequence is the fixed 9-planet, 120-year Vimshottari cycle.
var dashaSequence = []string{"Ketu", "Venus", "Sun", "Moon", "Mars", "Rahu", "Jupiter", "Saturn", "Mercury"}

// dashaYears gives each planet's Mahadasha length; the nine values sum to 120.
var dashaYears = map[string]float64{
	"Ketu": 7, "Venus": 20, "Sun": 6, "Moon": 10, "Mars": 7,
	"Rahu": 18, "Jupiter": 16, "Saturn": 19, "Mercury": 17,
}

const totalCycleYears = 120.0

// Period is one Mahadasha, Antardasha, or Pratyantardasha span.
type Period struct {
	Planet        string    `json:"planet"`
	PeriodType    string    `json:"period_type"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	DurationYears float64   `json:"duration_years"`
	IsCurrent     bool      `json:"is_current"`
}

func addYears(t time.Time, years float64) time.Time {
	return t.Add(time.Duration(years * daysPerYear * 24 * float64(time.Hour)))
}

func sequenceFrom(planet string) []string {
	start := 0
	for i, p := range dashaSequence {
		if p == planet {
			start = i
			break
		}
	}
	return append(append([]string{}, dashaSequence[start:]...), dashaSequence[:start]...)
}

// BuildTimeline computes the full Mahadasha timeline starting from the
// birth nakshatra's ruling planet, with the balance of that period
// remaining at birth given by completedFraction (§4.2.6).
func BuildTimeline(birth time.Time, firstPlanet string, completedFraction float64) []Period {
	var timeline []Period

	firstYears := dashaYears[firstPlanet]
	remaining := firstYears * (1 - completedFraction)

	start := birth
	end := addYears(start, remaining)
	timeline = append(timeline, Period{
		Planet: firstPlanet, PeriodType: "Mahadasha",
		StartDate: start, EndDate: end, DurationYears: remaining,
	})

	start = end
	seq := sequenceFrom(firstPlanet)
	idx := 1 // seq[0] is firstPlanet, already appended
	yearsCalculated := remaining
	for yearsCalculated < totalCycleYears {
		planet := seq[idx%len(seq)]
		years := dashaYears[planet]
		end = addYears(start, years)
		timeline = append(timeline, Period{
			Planet: planet, PeriodType: "Mahadasha",
			StartDate: start, EndDate: end, DurationYears: years,
		})
		start = end
		yearsCalculated += years
		idx++
	}

	return timeline
}

// FindCurrentMahadasha returns the timeline entry whose span contains at.
func FindCurrentMahadasha(timeline []Period, at time.Time) (Period, bool) {
	for _, p := range timeline {
		if !at.Before(p.StartDate) && !at.After(p.EndDate) {
			p.IsCurrent = true
			return p, true
		}
	}
	return Period{}, false
}

// nestedPeriod computes the sub-period of kind within parent that contains
// at, by proportionally dividing parent's duration across seq in order
// starting from parent's own planet.
func nestedPeriod(parent Period, kind string, at time.Time) (Period, bool) {
	seq := sequenceFrom(parent.Planet)
	total := 0.0
	for _, p := range seq {
		total += dashaYears[p]
	}

	start := parent.StartDate
	for _, planet := range seq {
		proportion := dashaYears[planet] / total
		duration := parent.DurationYears * proportion
		end := addYears(start, duration)
		if !at.Before(start) && !at.After(end) {
			return Period{
				Planet: planet, PeriodType: kind,
				StartDate: start, EndDate: end, DurationYears: duration, IsCurrent: true,
			}, true
		}
		start = end
	}
	return Period{}, false
}

// FindCurrentAntardasha locates the current sub-period within mahadasha.
func FindCurrentAntardasha(mahadasha Period, at time.Time) (Period, bool) {
	return nestedPeriod(mahadasha, "Antardasha", at)
}

// FindCurrentPratyantardasha locates the current sub-sub-period within antardasha.
func FindCurrentPratyantardasha(antardasha Period, at time.Time) (Period, bool) {
	return nestedPeriod(antardasha, "Pratyantardasha", at)
}

// UpcomingMahadashas returns every Mahadasha-level entry in timeline whose
// start falls within [at, at+forecastYears].
func UpcomingMahadashas(timeline []Period, at time.Time, forecastYears int) []Period {
	horizon := addYears(at, float64(forecastYears))
	var out []Period
	for _, p := range timeline {
		if !p.StartDate.Before(at) && !p.StartDate.After(horizon) {
			out = append(out, p)
		}
	}
	return out
}
