package biofield

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_RequiresConsent(t *testing.T) {
	e := New()
	assert.True(t, e.RequiresConsent())
}

func TestEngine_DecodeInput_RequiresImageRef(t *testing.T) {
	e := New()
	_, err := e.DecodeInput(json.RawMessage(`{"data_processing_consent":true}`))
	require.Error(t, err)
}

func TestEngine_Calculate_ScoresAreWithinUnitRange(t *testing.T) {
	e := New()
	in, err := e.DecodeInput(json.RawMessage(`{"image_ref":"ref-1","data_processing_consent":true}`))
	require.NoError(t, err)

	raw, err := e.Calculate(in)
	require.NoError(t, err)
	out := raw.(*Output)

	s := out.CompositeScores
	for _, v := range []float64{s.EnergyScore, s.SymmetryBalanceScore, s.CoherenceScore, s.ComplexityScore, s.RegulationScore, s.ColorVitalityScore, s.ColorCoherenceScore} {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestEngine_Calculate_DeterministicForSameImageRef(t *testing.T) {
	e := New()
	in, err := e.DecodeInput(json.RawMessage(`{"image_ref":"same-ref","data_processing_consent":true}`))
	require.NoError(t, err)

	raw1, err := e.Calculate(in)
	require.NoError(t, err)
	raw2, err := e.Calculate(in)
	require.NoError(t, err)

	out1, out2 := raw1.(*Output), raw2.(*Output)
	assert.Equal(t, out1.FieldSignature, out2.FieldSignature)
	assert.InDelta(t, out1.CompositeScores.EnergyScore, out2.CompositeScores.EnergyScore, 1e-9)
}

func TestEngine_Calculate_DiffersAcrossImageRefs(t *testing.T) {
	e := New()
	in1, err := e.DecodeInput(json.RawMessage(`{"image_ref":"alpha","data_processing_consent":true}`))
	require.NoError(t, err)
	in2, err := e.DecodeInput(json.RawMessage(`{"image_ref":"bravo","data_processing_consent":true}`))
	require.NoError(t, err)

	raw1, err := e.Calculate(in1)
	require.NoError(t, err)
	raw2, err := e.Calculate(in2)
	require.NoError(t, err)

	out1, out2 := raw1.(*Output), raw2.(*Output)
	assert.NotEqual(t, out1.CompositeScores.EnergyScore, out2.CompositeScores.EnergyScore)
}

func TestEngine_Calculate_IntegrationConsistencyIsMeanOfTwoAlignments(t *testing.T) {
	e := New()
	in, err := e.DecodeInput(json.RawMessage(`{"image_ref":"ref-2","data_processing_consent":true}`))
	require.NoError(t, err)

	raw, err := e.Calculate(in)
	require.NoError(t, err)
	out := raw.(*Output)

	expected := (out.Integration.CosmicTimingAlignment + out.Integration.ElementalHarmony) / 2
	assert.InDelta(t, expected, out.Integration.MultiModalConsistency, 1e-9)
}

func TestEngine_Interpret_MentionsEnergyScore(t *testing.T) {
	e := New()
	in, err := e.DecodeInput(json.RawMessage(`{"image_ref":"ref-3","data_processing_consent":true}`))
	require.NoError(t, err)

	raw, err := e.Calculate(in)
	require.NoError(t, err)

	summary, err := e.Interpret(raw, in)
	require.NoError(t, err)
	assert.Contains(t, summary.(string), "Energy Score")
}

func TestEngine_Recommendations_NeverEmpty(t *testing.T) {
	e := New()
	in, err := e.DecodeInput(json.RawMessage(`{"image_ref":"ref-4","data_processing_consent":true}`))
	require.NoError(t, err)

	raw, err := e.Calculate(in)
	require.NoError(t, err)
	assert.NotEmpty(t, e.Recommendations(raw, in))
}
