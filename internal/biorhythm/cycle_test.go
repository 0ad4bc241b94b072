package biorhythm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentage_ZeroAtBirth(t *testing.T) {
	assert.InDelta(t, 0, Percentage(Physical, 0), 0.0001)
	assert.InDelta(t, 0, Percentage(Emotional, 0), 0.0001)
	assert.InDelta(t, 0, Percentage(Intellectual, 0), 0.0001)
}

func TestPercentage_BoundedRange(t *testing.T) {
	for d := 0; d < 1000; d++ {
		v := Percentage(Physical, d)
		assert.GreaterOrEqual(t, v, -100.0)
		assert.LessOrEqual(t, v, 100.0)
	}
}

func TestPercentage_SymmetryOverFullPeriod(t *testing.T) {
	// Sum of the percentage series over 2p consecutive days is
	// approximately zero (sine symmetry).
	var sum float64
	for d := 0; d < 2*int(Physical); d++ {
		sum += Percentage(Physical, d)
	}
	assert.InDelta(t, 0, sum, 0.01)
}

func TestClassifyPhase_CriticalNearZero(t *testing.T) {
	assert.Equal(t, PhaseCritical, ClassifyPhase(2, 1))
	assert.Equal(t, PhaseCritical, ClassifyPhase(-4.9, -1))
}

func TestClassifyPhase_RisingAndPeak(t *testing.T) {
	assert.Equal(t, PhaseRising, ClassifyPhase(50, 1))
	assert.Equal(t, PhasePeak, ClassifyPhase(50, -1))
}

func TestClassifyPhase_FallingAndValley(t *testing.T) {
	assert.Equal(t, PhaseFalling, ClassifyPhase(-50, -1))
	assert.Equal(t, PhaseValley, ClassifyPhase(-50, 1))
}
