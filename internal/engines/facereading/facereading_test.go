package facereading

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

func TestEngine_DecodeInput_RejectsUnknownFields(t *testing.T) {
	e := New()
	_, err := e.DecodeInput(json.RawMessage(`{"image_ref":"ref-1","bogus":true}`))
	require.Error(t, err)
}

func TestEngine_Calculate_ProducesAllTwelveHouses(t *testing.T) {
	e := New()
	in, err := e.DecodeInput(json.RawMessage(`{"image_ref":"ref-1","data_processing_consent":true}`))
	require.NoError(t, err)

	raw, err := e.Calculate(in)
	require.NoError(t, err)
	out := raw.(*Output)

	assert.Len(t, out.TwelveHouses, 12)
	for _, h := range out.TwelveHouses {
		assert.GreaterOrEqual(t, h.Strength, 0.5)
		assert.Less(t, h.Strength, 0.9)
		assert.NotEmpty(t, h.Interpretation)
	}
}

func TestEngine_Calculate_ElementPercentagesSumToHundred(t *testing.T) {
	e := New()
	in, err := e.DecodeInput(json.RawMessage(`{"image_ref":"ref-2","data_processing_consent":true}`))
	require.NoError(t, err)

	raw, err := e.Calculate(in)
	require.NoError(t, err)
	out := raw.(*Output)

	sum := 0.0
	for _, el := range allElements {
		pct, ok := out.FiveElementPercentages[el]
		require.True(t, ok)
		sum += pct
	}
	assert.InDelta(t, 100.0, sum, 0.001)
	assert.NotEqual(t, out.DominantElement, out.SecondaryElement)
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
	assert.Equal(t, out1.DominantElement, out2.DominantElement)
	assert.Equal(t, out1.ConstitutionalType, out2.ConstitutionalType)
	assert.InDelta(t, out1.OverallHarmony, out2.OverallHarmony, 1e-9)
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
	assert.NotEqual(t, out1.TwelveHouses[0].Strength, out2.TwelveHouses[0].Strength)
}

func TestEngine_Interpret_MentionsConstitutionalType(t *testing.T) {
	e := New()
	in, err := e.DecodeInput(json.RawMessage(`{"image_ref":"ref-3","data_processing_consent":true}`))
	require.NoError(t, err)

	raw, err := e.Calculate(in)
	require.NoError(t, err)

	summary, err := e.Interpret(raw, in)
	require.NoError(t, err)
	out := raw.(*Output)
	assert.Contains(t, summary.(string), out.ConstitutionalType)
}

func TestConstitutionalType_CoversAllOrderedPairs(t *testing.T) {
	for _, d := range allElements {
		for _, s := range allElements {
			if d == s {
				continue
			}
			name := constitutionalType(d, s)
			assert.NotEmpty(t, name)
		}
	}
}
