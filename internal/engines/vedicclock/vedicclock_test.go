package vedicclock

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/witnessos/engine-core/internal/astro"
)

func TestOrganStateAt_CoversFullDay(t *testing.T) {
	seen := map[string]bool{}
	for hour := 0; hour < 24; hour++ {
		organ, element, direction := organStateAt(hour, 0)
		assert.NotEmpty(t, organ)
		assert.NotEmpty(t, element)
		// Windows start on odd hours, so even hours are the window's second hour.
		want := "ascending"
		if hour%2 == 0 {
			want = "peak"
		}
		assert.Equal(t, want, direction, "hour %d", hour)
		seen[organ] = true
	}
	assert.Len(t, seen, 12)
}

func TestOrganStateAt_PeakAfterFirstHour(t *testing.T) {
	_, _, direction := organStateAt(2, 30)
	assert.Equal(t, "peak", direction)
}

func TestKaranaName_CoversAllSixty(t *testing.T) {
	names := map[string]bool{}
	for i := 0; i < 60; i++ {
		names[karanaName(i)] = true
	}
	assert.Len(t, names, 11)
}

func TestSynthesizeElements_KnownPairIsPerfectHarmony(t *testing.T) {
	s := synthesizeElements("Fire", "Fire")
	assert.Equal(t, 1.0, s.HarmonyLevel)
	assert.Equal(t, "Perfect Harmony", s.SynthesisQuality)
}

func TestSynthesizeElements_UnknownPairFallsBackNeutral(t *testing.T) {
	s := synthesizeElements("Air", "Wood")
	assert.Equal(t, 0.6, s.HarmonyLevel)
	assert.Equal(t, "Neutral Balance", s.SynthesisQuality)
}

func TestEngine_DecodeInput_RejectsBadTimezone(t *testing.T) {
	e := New(astro.NewStubEphemeris())
	_, err := e.DecodeInput(json.RawMessage(`{"birth_date":"1990-01-01","birth_time":"12:00","timezone":"Not/AZone","latitude":0,"longitude":0}`))
	require.Error(t, err)
}

func TestEngine_Calculate_ProducesFullReading(t *testing.T) {
	e := New(astro.NewStubEphemeris())
	in, err := e.DecodeInput(json.RawMessage(`{
		"birth_date":"1990-06-15","birth_time":"08:30","timezone":"UTC","latitude":28.6,"longitude":77.2,
		"target_date":"2026-07-30","target_time":"14:00"
	}`))
	require.NoError(t, err)

	raw, err := e.Calculate(in)
	require.NoError(t, err)
	out := raw.(*Output)

	assert.NotEmpty(t, out.VimshottariContext.MahadashaLord)
	assert.NotEmpty(t, out.Panchanga.Tithi)
	assert.NotEmpty(t, out.TCMOrganState.PrimaryOrgan)
	assert.GreaterOrEqual(t, out.PersonalResonanceScore, 0.0)
	assert.LessOrEqual(t, out.PersonalResonanceScore, 1.0)
}

func TestEngine_Calculate_IncludePredictionsProducesWindows(t *testing.T) {
	e := New(astro.NewStubEphemeris())
	in, err := e.DecodeInput(json.RawMessage(`{
		"birth_date":"1990-06-15","birth_time":"08:30","timezone":"UTC","latitude":28.6,"longitude":77.2,
		"target_date":"2026-07-30","target_time":"14:00","include_predictions":true,"prediction_hours":24
	}`))
	require.NoError(t, err)

	raw, err := e.Calculate(in)
	require.NoError(t, err)
	out := raw.(*Output)

	for _, w := range out.UpcomingWindows {
		assert.Greater(t, w.PotencyScore, 0.6)
	}
	assert.LessOrEqual(t, len(out.UpcomingWindows), 5)
}

func TestEngine_Interpret_MentionsMahadasha(t *testing.T) {
	e := New(astro.NewStubEphemeris())
	in, err := e.DecodeInput(json.RawMessage(`{
		"birth_date":"1990-06-15","birth_time":"08:30","timezone":"UTC","latitude":28.6,"longitude":77.2
	}`))
	require.NoError(t, err)

	raw, err := e.Calculate(in)
	require.NoError(t, err)

	summary, err := e.Interpret(raw, in)
	require.NoError(t, err)
	assert.Contains(t, summary.(string), "Mahadasha")
}
