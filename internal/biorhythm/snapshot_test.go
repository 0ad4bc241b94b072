package biorhythm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeSnapshot_ZeroBoundaryAtBirth(t *testing.T) {
	birth := time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC)
	snap := ComputeSnapshot(birth, birth, true)

	assert.Equal(t, 0, snap.DaysAlive)
	for _, c := range snap.Cycles {
		assert.InDelta(t, 0, c.Percentage, 0.0001)
	}
}

func TestComputeSnapshot_KnownDaysAlive(t *testing.T) {
	birth := time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC)
	target := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	snap := ComputeSnapshot(birth, target, false)

	assert.Equal(t, 12298, snap.DaysAlive)
	for _, c := range snap.Cycles {
		assert.GreaterOrEqual(t, c.Percentage, -100.0)
		assert.LessOrEqual(t, c.Percentage, 100.0)
	}
}

func TestComputeSnapshot_CriticalDayRequiresTwoCycles(t *testing.T) {
	birth := time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC)
	target := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	snap := ComputeSnapshot(birth, target, false)

	criticalCount := 0
	for _, c := range snap.Cycles {
		if c.Phase == PhaseCritical {
			criticalCount++
		}
	}
	assert.Equal(t, criticalCount >= 2, snap.CriticalDay)
}

func TestComputeSnapshot_ExtendedCyclesIncluded(t *testing.T) {
	birth := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	snap := ComputeSnapshot(birth, birth.AddDate(0, 1, 0), true)

	assert.Len(t, snap.Cycles, 6)
	assert.Contains(t, snap.Cycles, Intuitive)
	assert.Contains(t, snap.Cycles, Aesthetic)
	assert.Contains(t, snap.Cycles, Spiritual)
}

func TestComputeSnapshot_CoreOnlyExcludesExtended(t *testing.T) {
	birth := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	snap := ComputeSnapshot(birth, birth.AddDate(0, 1, 0), false)

	assert.Len(t, snap.Cycles, 3)
	assert.NotContains(t, snap.Cycles, Intuitive)
}

func TestForecast_LengthMatchesRequest(t *testing.T) {
	birth := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	target := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	forecast := Forecast(birth, target, 7, false)
	assert.Len(t, forecast, 7)
	assert.Equal(t, target, forecast[0].TargetDate)
}

func TestCriticalDays_SubsetOfForecast(t *testing.T) {
	birth := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	target := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	forecast := Forecast(birth, target, 90, false)
	critical := CriticalDays(forecast)
	assert.LessOrEqual(t, len(critical), len(forecast))
}

func TestBestAndChallengingDays_Disjoint(t *testing.T) {
	birth := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	target := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	forecast := Forecast(birth, target, 90, false)
	best, challenging := BestAndChallengingDays(forecast)

	bestSet := map[time.Time]bool{}
	for _, d := range best {
		bestSet[d] = true
	}
	for _, d := range challenging {
		assert.False(t, bestSet[d])
	}
}
