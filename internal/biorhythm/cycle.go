// Package biorhythm is the cyclical-rhythm primitives layer of §4.2.3:
// sine-wave percentage calculation over fixed-period cycles, phase
// classification, and critical-day detection. It has no knowledge of any
// engine's request/response shape.
package biorhythm

import (
	"math"
	"time"
)

// Period is the day-length of a named biorhythm cycle.
type Period int

const (
	Physical     Period = 23
	Emotional    Period = 28
	Intellectual Period = 33
	Intuitive    Period = 38
	Aesthetic    Period = 43
	Spiritual    Period = 53
)

// Phase is the qualitative reading of a cycle's current value and trend.
type Phase string

const (
	PhaseCritical Phase = "critical"
	PhaseRising   Phase = "rising"
	PhasePeak     Phase = "peak"
	PhaseFalling  Phase = "falling"
	PhaseValley   Phase = "valley"
)

// criticalThreshold is the |value| below which a cycle is considered to be
// crossing zero (§4.2.3).
const criticalThreshold = 5.0

// Cycle is one named cycle's reading at a specific day count.
type Cycle struct {
	Period     Period
	DaysAlive  int
	Percentage float64
	Phase      Phase
}

// Percentage computes sin(2π·d/p)·100 for a cycle period p at day count d.
func Percentage(period Period, daysAlive int) float64 {
	return math.Sin(2*math.Pi*float64(daysAlive)/float64(period)) * 100
}

// derivative returns cos(2π·d/p), which is proportional to
// d/dt[sin(2π·d/p)] at daysAlive; callers only use its sign.
func derivative(period Period, daysAlive int) float64 {
	return math.Cos(2 * math.Pi * float64(daysAlive) / float64(period))
}

// ClassifyPhase derives a cycle's phase from its value and the sign of its
// first derivative (§4.2.3).
func ClassifyPhase(value, deriv float64) Phase {
	if math.Abs(value) < criticalThreshold {
		return PhaseCritical
	}
	if value > 0 {
		if deriv > 0 {
			return PhaseRising
		}
		return PhasePeak
	}
	// value < 0
	if deriv < 0 {
		return PhaseFalling
	}
	return PhaseValley
}

// ComputeCycle returns the full reading for one period at one day count.
func ComputeCycle(period Period, daysAlive int) Cycle {
	value := Percentage(period, daysAlive)
	deriv := derivative(period, daysAlive)
	return Cycle{
		Period:     period,
		DaysAlive:  daysAlive,
		Percentage: value,
		Phase:      ClassifyPhase(value, deriv),
	}
}

// DaysAlive returns the whole number of calendar days between birth and
// target, truncating any partial day.
func DaysAlive(birth, target time.Time) int {
	return int(target.Sub(birth).Hours() / 24)
}
