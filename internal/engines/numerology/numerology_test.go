package numerology

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_DecodeInput_RejectsMissingFullName(t *testing.T) {
	e := New()
	_, err := e.DecodeInput(json.RawMessage(`{"birth_date":"1990-05-15"}`))
	require.Error(t, err)
}

func TestEngine_DecodeInput_RejectsBadDate(t *testing.T) {
	e := New()
	_, err := e.DecodeInput(json.RawMessage(`{"full_name":"Jane Doe","birth_date":"not-a-date"}`))
	require.Error(t, err)
}

func TestEngine_DecodeInput_RejectsUnknownSystem(t *testing.T) {
	e := New()
	_, err := e.DecodeInput(json.RawMessage(`{"full_name":"Jane Doe","birth_date":"1990-05-15","system":"roman"}`))
	require.Error(t, err)
}

func TestEngine_DecodeInput_RejectsUnknownFields(t *testing.T) {
	e := New()
	_, err := e.DecodeInput(json.RawMessage(`{"full_name":"Jane Doe","birth_date":"1990-05-15","nonsense":1}`))
	require.Error(t, err)
}

func TestEngine_DecodeInput_DefaultsToPythagorean(t *testing.T) {
	e := New()
	in, err := e.DecodeInput(json.RawMessage(`{"full_name":"Jane Doe","birth_date":"1990-05-15"}`))
	require.NoError(t, err)
	assert.Equal(t, "pythagorean", in.(*Input).System)
}

func TestEngine_CalculateAndInterpret(t *testing.T) {
	e := New()
	in, err := e.DecodeInput(json.RawMessage(`{"full_name":"John Adrian Smith","birth_date":"1990-11-22","current_year":2024}`))
	require.NoError(t, err)

	raw, err := e.Calculate(in)
	require.NoError(t, err)
	out := raw.(*Output)
	assert.Equal(t, 7, out.Profile.Core.LifePath)

	summary, err := e.Interpret(raw, in)
	require.NoError(t, err)
	assert.Contains(t, summary.(string), "Life Path 7")
}

func TestEngine_Name_RequiresConsent(t *testing.T) {
	e := New()
	assert.Equal(t, "numerology", e.Name())
	assert.False(t, e.RequiresConsent())
}
