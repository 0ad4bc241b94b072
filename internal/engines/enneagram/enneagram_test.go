package enneagram

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByNumber_AllTypesResolve(t *testing.T) {
	for n := 1; n <= 9; n++ {
		typ, ok := ByNumber(n)
		require.True(t, ok)
		assert.Equal(t, n, typ.Number)
		assert.NotEmpty(t, typ.Name)
		assert.NotEmpty(t, typ.Center)
	}
}

func TestByNumber_OutOfRangeFails(t *testing.T) {
	_, ok := ByNumber(0)
	assert.False(t, ok)
	_, ok = ByNumber(10)
	assert.False(t, ok)
}

func TestEngine_DecodeInput_RejectsUnknownMethod(t *testing.T) {
	e := New()
	_, err := e.DecodeInput(json.RawMessage(`{"identification_method":"bogus"}`))
	require.Error(t, err)
}

func TestEngine_DecodeInput_SelfSelectRequiresValidType(t *testing.T) {
	e := New()
	_, err := e.DecodeInput(json.RawMessage(`{"identification_method":"self_select","selected_type":99}`))
	require.Error(t, err)
}

func TestEngine_DecodeInput_AssessmentRequiresResponses(t *testing.T) {
	e := New()
	_, err := e.DecodeInput(json.RawMessage(`{"identification_method":"assessment"}`))
	require.Error(t, err)
}

func TestEngine_Calculate_SelfSelectUsesChosenType(t *testing.T) {
	e := New()
	in, err := e.DecodeInput(json.RawMessage(`{"identification_method":"self_select","selected_type":8,"include_wings":true,"include_arrows":true,"include_instincts":true}`))
	require.NoError(t, err)

	raw, err := e.Calculate(in)
	require.NoError(t, err)
	out := raw.(*Output)

	assert.Equal(t, 8, out.Profile.PrimaryType.Number)
	assert.InDelta(t, 0.9, out.Profile.AssessmentConfidence, 0.001)
	require.NotNil(t, out.Profile.Wing)
	require.NotNil(t, out.Profile.IntegrationDirection)
	require.NotNil(t, out.Profile.DisintegrationDirection)
	require.NotNil(t, out.Profile.InstinctualVariant)
}

func TestEngine_Calculate_AssessmentPicksMostFrequentType(t *testing.T) {
	e := New()
	in, err := e.DecodeInput(json.RawMessage(`{"identification_method":"assessment","assessment_responses":{"q1":"5","q2":"5","q3":"1"}}`))
	require.NoError(t, err)

	raw, err := e.Calculate(in)
	require.NoError(t, err)
	out := raw.(*Output)

	assert.Equal(t, 5, out.Profile.PrimaryType.Number)
	assert.InDelta(t, 2.0/3.0, out.Profile.AssessmentConfidence, 0.001)
}

func TestEngine_Calculate_IntuitiveMatchesKeywords(t *testing.T) {
	e := New()
	in, err := e.DecodeInput(json.RawMessage(`{"identification_method":"intuitive","behavioral_description":"I am spontaneous, versatile, and always planning the next fun adventure"}`))
	require.NoError(t, err)

	raw, err := e.Calculate(in)
	require.NoError(t, err)
	out := raw.(*Output)

	assert.Equal(t, 7, out.Profile.PrimaryType.Number)
}

func TestEngine_Interpret_MentionsCoreType(t *testing.T) {
	e := New()
	in, err := e.DecodeInput(json.RawMessage(`{"identification_method":"self_select","selected_type":1}`))
	require.NoError(t, err)

	raw, err := e.Calculate(in)
	require.NoError(t, err)

	summary, err := e.Interpret(raw, in)
	require.NoError(t, err)
	assert.Contains(t, summary.(string), "The Reformer")
}
