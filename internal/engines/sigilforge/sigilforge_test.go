package sigilforge

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/witnessos/engine-core/internal/geometry"
)

func TestEngine_DecodeInput_RejectsMissingIntention(t *testing.T) {
	e := New()
	_, err := e.DecodeInput(json.RawMessage(`{}`))
	require.Error(t, err)
}

func TestEngine_DecodeInput_RejectsUnknownPlacementMethod(t *testing.T) {
	e := New()
	_, err := e.DecodeInput(json.RawMessage(`{"intention":"Financial Freedom","placement_method":"bogus"}`))
	require.Error(t, err)
}

func TestEngine_DecodeInput_DefaultsToRadialSequential(t *testing.T) {
	e := New()
	in, err := e.DecodeInput(json.RawMessage(`{"intention":"Financial Freedom"}`))
	require.NoError(t, err)
	i := in.(*Input)
	assert.Equal(t, geometry.PlacementRadial, i.PlacementMethod)
	assert.Equal(t, geometry.ConnectSequential, i.ConnectionMethod)
}

func TestEngine_Calculate_ReducesLetters(t *testing.T) {
	e := New()
	in, err := e.DecodeInput(json.RawMessage(`{"intention":"mississippi"}`))
	require.NoError(t, err)

	raw, err := e.Calculate(in)
	require.NoError(t, err)
	out := raw.(*Output)
	assert.Equal(t, "MISP", out.ReducedLetters)
	assert.Equal(t, []int{13, 9, 19, 16}, out.Numbers)
}

func TestEngine_Calculate_AlwaysHasCenterDecoration(t *testing.T) {
	e := New()
	in, err := e.DecodeInput(json.RawMessage(`{"intention":"Creative flow"}`))
	require.NoError(t, err)

	raw, err := e.Calculate(in)
	require.NoError(t, err)
	out := raw.(*Output)
	assert.NotEmpty(t, out.Sigil.DecorationCircles)
	assert.Equal(t, out.Sigil.Center, out.Sigil.DecorationCircles[0].Center)
}

func TestEngine_Interpret_MentionsIntention(t *testing.T) {
	e := New()
	in, err := e.DecodeInput(json.RawMessage(`{"intention":"Creative flow"}`))
	require.NoError(t, err)

	raw, err := e.Calculate(in)
	require.NoError(t, err)

	summary, err := e.Interpret(raw, in)
	require.NoError(t, err)
	assert.Contains(t, summary.(string), "Creative flow")
}
