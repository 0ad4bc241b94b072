package astro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeChart_StubEphemeris(t *testing.T) {
	eph := NewStubEphemeris()
	birth := BirthData{
		Moment:    time.Date(1990, 6, 15, 14, 30, 0, 0, time.UTC),
		Latitude:  40.7128,
		Longitude: -74.0060,
	}

	chart, err := ComputeChart(eph, birth)
	require.NoError(t, err)

	assert.Less(t, chart.DesignJD, chart.PersonalityJD)
	assert.Contains(t, chart.Personality, Sun)
	assert.Contains(t, chart.Design, Sun)

	sunGate := chart.PersonalitySunGate()
	assert.GreaterOrEqual(t, sunGate.Number, 1)
	assert.LessOrEqual(t, sunGate.Number, 64)

	earthGate := chart.PersonalityEarthGate()
	assert.GreaterOrEqual(t, earthGate.Number, 1)
	assert.LessOrEqual(t, earthGate.Number, 64)
}

func TestChart_MoonNakshatra(t *testing.T) {
	eph := NewStubEphemeris()
	birth := BirthData{Moment: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)}

	chart, err := ComputeChart(eph, birth)
	require.NoError(t, err)

	n, err := chart.MoonNakshatra(eph)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n.Index, 0)
	assert.LessOrEqual(t, n.Index, 26)
	assert.NotEmpty(t, n.Name)
}
