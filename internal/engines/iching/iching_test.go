package iching

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByNumber_AllHexagramsResolve(t *testing.T) {
	for n := 1; n <= 64; n++ {
		h, ok := ByNumber(n)
		require.True(t, ok, "hexagram %d should resolve", n)
		assert.Equal(t, n, h.Number)
		assert.NotEmpty(t, h.Name)
		assert.Len(t, h.ChangingLines, 6)
	}
}

func TestByNumber_OutOfRangeFails(t *testing.T) {
	_, ok := ByNumber(0)
	assert.False(t, ok)
	_, ok = ByNumber(65)
	assert.False(t, ok)
}

func TestCastHexagram_DeterministicForSameQuestionAndSeed(t *testing.T) {
	a, ok := CastHexagram("Should I take the job?", 0)
	require.True(t, ok)
	b, ok := CastHexagram("Should I take the job?", 0)
	require.True(t, ok)
	assert.Equal(t, a, b)
}

func TestCastHexagram_DifferentSeedsTypicallyDiffer(t *testing.T) {
	a, ok := CastHexagram("Should I take the job?", 0)
	require.True(t, ok)
	b, ok := CastHexagram("Should I take the job?", 1)
	require.True(t, ok)
	assert.NotEqual(t, a.Primary.Number, b.Primary.Number)
}

func TestCastHexagram_RelatingOnlyWhenChanging(t *testing.T) {
	cast, ok := CastHexagram("test question for relating hexagram", 42)
	require.True(t, ok)
	if len(cast.ChangingLineNums) == 0 {
		assert.Nil(t, cast.Relating)
	} else {
		assert.NotNil(t, cast.Relating)
		assert.NotEqual(t, cast.Primary.Number, cast.Relating.Number)
	}
}

func TestCastHexagram_LineValuesAreTraditional(t *testing.T) {
	cast, ok := CastHexagram("test", 7)
	require.True(t, ok)
	for _, line := range cast.Lines {
		assert.Contains(t, []int{6, 7, 8, 9}, line.Value)
		assert.Equal(t, line.Value == 7 || line.Value == 9, line.Yang)
		assert.Equal(t, line.Value == 6 || line.Value == 9, line.Changing)
	}
}

func TestEngine_DecodeInput_RejectsMissingQuestion(t *testing.T) {
	e := New()
	_, err := e.DecodeInput(json.RawMessage(`{}`))
	require.Error(t, err)
}

func TestEngine_DecodeInput_RejectsUnknownFields(t *testing.T) {
	e := New()
	_, err := e.DecodeInput(json.RawMessage(`{"question":"test","bogus":1}`))
	require.Error(t, err)
}

func TestEngine_Calculate_ProducesPrimaryHexagram(t *testing.T) {
	e := New()
	in, err := e.DecodeInput(json.RawMessage(`{"question":"What should I focus on?","seed":3}`))
	require.NoError(t, err)

	raw, err := e.Calculate(in)
	require.NoError(t, err)
	out := raw.(*Output)
	assert.NotEmpty(t, out.Cast.Primary.Name)
}

func TestEngine_Interpret_MentionsQuestion(t *testing.T) {
	e := New()
	in, err := e.DecodeInput(json.RawMessage(`{"question":"What should I focus on?"}`))
	require.NoError(t, err)

	raw, err := e.Calculate(in)
	require.NoError(t, err)

	summary, err := e.Interpret(raw, in)
	require.NoError(t, err)
	assert.Contains(t, summary.(string), "What should I focus on?")
}

func TestEngine_Name_NoConsentRequired(t *testing.T) {
	e := New()
	assert.False(t, e.RequiresConsent())
}
