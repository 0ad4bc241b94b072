package vimshottari

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/witnessos/engine-core/internal/astro"
)

func TestBuildTimeline_SumsToFullCycle(t *testing.T) {
	birth := time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC)
	timeline := BuildTimeline(birth, "Moon", 0.5)
	require.NotEmpty(t, timeline)

	total := 0.0
	for _, p := range timeline {
		total += p.DurationYears
	}
	// Whole Mahadashas are appended until 120 years are covered: the 5-year
	// Moon balance, the next eight periods (110 years), then Moon again (10).
	assert.InDelta(t, 125.0, total, 0.01)
}

func TestBuildTimeline_FirstPeriodReflectsBalance(t *testing.T) {
	birth := time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC)
	timeline := BuildTimeline(birth, "Moon", 0.5)
	assert.Equal(t, "Moon", timeline[0].Planet)
	assert.InDelta(t, 5.0, timeline[0].DurationYears, 0.01) // 10 years * (1-0.5)
}

func TestFindCurrentMahadasha_FindsContainingPeriod(t *testing.T) {
	birth := time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC)
	timeline := BuildTimeline(birth, "Ketu", 0)
	found, ok := FindCurrentMahadasha(timeline, birth)
	require.True(t, ok)
	assert.Equal(t, "Ketu", found.Planet)
	assert.True(t, found.IsCurrent)
}

func TestFindCurrentAntardasha_FallsWithinMahadasha(t *testing.T) {
	birth := time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC)
	timeline := BuildTimeline(birth, "Ketu", 0)
	maha := timeline[1] // a full, non-balance-shortened Mahadasha

	midpoint := maha.StartDate.Add(maha.EndDate.Sub(maha.StartDate) / 2)
	antar, ok := FindCurrentAntardasha(maha, midpoint)
	require.True(t, ok)
	assert.False(t, antar.StartDate.Before(maha.StartDate))
	assert.False(t, antar.EndDate.After(maha.EndDate))
	assert.Less(t, antar.DurationYears, maha.DurationYears)
}

func TestEngine_Calculate_ProducesNakshatraAndTimeline(t *testing.T) {
	e := New(astro.NewStubEphemeris())
	in, err := e.DecodeInput(json.RawMessage(`{"birth_date":"1990-05-15","birth_time":"14:30","timezone":"UTC","latitude":40.7,"longitude":-74.0,"current_date":"2024-01-15"}`))
	require.NoError(t, err)

	raw, err := e.Calculate(in)
	require.NoError(t, err)

	out := raw.(*Output)
	assert.NotEmpty(t, out.Nakshatra.Name)
	assert.NotEmpty(t, out.Timeline)
	assert.NotEmpty(t, out.CurrentMahadasha.Planet)
}

func TestEngine_Interpret_MentionsNakshatra(t *testing.T) {
	e := New(astro.NewStubEphemeris())
	in, err := e.DecodeInput(json.RawMessage(`{"birth_date":"1990-05-15","birth_time":"14:30","timezone":"UTC","latitude":40.7,"longitude":-74.0}`))
	require.NoError(t, err)

	raw, err := e.Calculate(in)
	require.NoError(t, err)

	summary, err := e.Interpret(raw, in)
	require.NoError(t, err)
	assert.Contains(t, summary.(string), "Moon nakshatra")
}
