package biorhythm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_DecodeInput_RejectsMissingBirthDate(t *testing.T) {
	e := New()
	_, err := e.DecodeInput(json.RawMessage(`{}`))
	require.Error(t, err)
}

func TestEngine_DecodeInput_RejectsForecastDaysOutOfRange(t *testing.T) {
	e := New()
	_, err := e.DecodeInput(json.RawMessage(`{"birth_date":"1990-05-15","forecast_days":91}`))
	require.Error(t, err)

	_, err = e.DecodeInput(json.RawMessage(`{"birth_date":"1990-05-15","forecast_days":0}`))
	require.Error(t, err)
}

func TestEngine_DecodeInput_DefaultsForecastDaysToSeven(t *testing.T) {
	e := New()
	in, err := e.DecodeInput(json.RawMessage(`{"birth_date":"1990-05-15"}`))
	require.NoError(t, err)
	assert.Equal(t, 7, in.(*Input).ForecastDays)
}

func TestEngine_Calculate_KnownDaysAlive(t *testing.T) {
	e := New()
	in, err := e.DecodeInput(json.RawMessage(`{"birth_date":"1990-05-15","target_date":"2024-01-15"}`))
	require.NoError(t, err)

	raw, err := e.Calculate(in)
	require.NoError(t, err)

	out := raw.(*Output)
	assert.Equal(t, 12298, out.Snapshot.DaysAlive)
	assert.Len(t, out.Forecast, 7)
}

func TestEngine_Interpret_MentionsTrend(t *testing.T) {
	e := New()
	in, err := e.DecodeInput(json.RawMessage(`{"birth_date":"1990-05-15","target_date":"2024-01-15"}`))
	require.NoError(t, err)

	raw, err := e.Calculate(in)
	require.NoError(t, err)

	summary, err := e.Interpret(raw, in)
	require.NoError(t, err)
	assert.Contains(t, summary.(string), "trend")
}

func TestEngine_RequiresConsentFalse(t *testing.T) {
	e := New()
	assert.False(t, e.RequiresConsent())
}
