package astro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateAt_FirstPositionIsGate13(t *testing.T) {
	// Position 0 of the wheel with zero offset resolves to the first
	// entry of the official sequence.
	g := GateAt(0, RoleOther)
	assert.Equal(t, 13, g.Number)
	assert.Equal(t, 1, g.Line)
}

func TestGateAt_LineIncrementsWithinGate(t *testing.T) {
	base := 10 * degreesPerGate
	for line := 1; line <= 6; line++ {
		lon := base + float64(line-1)*degreesPerLine + 0.01
		g := GateAt(lon, RoleOther)
		assert.Equal(t, line, g.Line, "longitude %f", lon)
	}
}

func TestGateAt_NeverExceedsSequenceBounds(t *testing.T) {
	for deg := 0.0; deg < 360; deg += 1.5 {
		g := GateAt(deg, RoleOther)
		assert.GreaterOrEqual(t, g.Number, 1)
		assert.LessOrEqual(t, g.Number, 64)
		assert.GreaterOrEqual(t, g.Line, 1)
		assert.LessOrEqual(t, g.Line, 6)
	}
}

func TestEarthLongitude_IsOppositeSun(t *testing.T) {
	assert.InDelta(t, 180, EarthLongitude(0), 0.0001)
	assert.InDelta(t, 0, EarthLongitude(180), 0.0001)
	assert.InDelta(t, 90, EarthLongitude(270), 0.0001)
}

func TestDesignJulianDay_IsRoughly88DaysBeforeBirth(t *testing.T) {
	eph := NewStubEphemeris()
	birthJD := 2460000.0

	designJD, err := DesignJulianDay(eph, birthJD)
	require.NoError(t, err)

	// The stub's Sun rate is deterministic (body index 0 => rate 0.5
	// deg/day), so 88 degrees back is exactly 176 days earlier.
	assert.InDelta(t, birthJD-176, designJD, 1.0)
}
