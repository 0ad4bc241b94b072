package genekeys

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/witnessos/engine-core/internal/astro"
)

func TestByNumber_AllGeneKeysResolve(t *testing.T) {
	for n := 1; n <= 64; n++ {
		gk := ByNumber(n)
		assert.Equal(t, n, gk.Number)
		assert.NotEmpty(t, gk.Shadow)
		assert.NotEmpty(t, gk.Gift)
		assert.NotEmpty(t, gk.Siddhi)
	}
}

func TestByNumber_ProgrammingPartnersAreSymmetric(t *testing.T) {
	for n := 1; n <= 64; n++ {
		partner := ByNumber(n).ProgrammingPartner
		assert.NotEqual(t, n, partner)
		assert.Equal(t, n, ByNumber(partner).ProgrammingPartner)
	}
}

func testInput() string {
	return `{"birth_date":"1990-05-15","birth_time":"14:30","timezone":"UTC","latitude":40.7,"longitude":-74.0}`
}

func TestEngine_DecodeInput_RejectsBadTimezone(t *testing.T) {
	e := New(astro.NewStubEphemeris())
	_, err := e.DecodeInput(json.RawMessage(`{"birth_date":"1990-05-15","birth_time":"14:30","timezone":"Not/AZone","latitude":1,"longitude":1}`))
	require.Error(t, err)
}

func TestEngine_DecodeInput_RejectsUnknownFocusSequence(t *testing.T) {
	e := New(astro.NewStubEphemeris())
	_, err := e.DecodeInput(json.RawMessage(`{"birth_date":"1990-05-15","birth_time":"14:30","timezone":"UTC","latitude":1,"longitude":1,"focus_sequence":"bogus"}`))
	require.Error(t, err)
}

func TestEngine_DecodeInput_DefaultsFocusToAll(t *testing.T) {
	e := New(astro.NewStubEphemeris())
	in, err := e.DecodeInput(json.RawMessage(testInput()))
	require.NoError(t, err)
	assert.Equal(t, "all", in.(*Input).FocusSequence)
}

func TestEngine_Calculate_ProducesAllThreeSequences(t *testing.T) {
	e := New(astro.NewStubEphemeris())
	in, err := e.DecodeInput(json.RawMessage(testInput()))
	require.NoError(t, err)

	raw, err := e.Calculate(in)
	require.NoError(t, err)
	out := raw.(*Output)

	assert.Len(t, out.Activation.Gates, 4)
	assert.Len(t, out.Venus.Gates, 2)
	assert.Len(t, out.Pearl.Gates, 3)
	assert.Equal(t, out.Activation.Gates[0].GeneKey.Number, out.PrimaryGeneKey.Number)
}

func TestEngine_Interpret_MentionsLifesWork(t *testing.T) {
	e := New(astro.NewStubEphemeris())
	in, err := e.DecodeInput(json.RawMessage(testInput()))
	require.NoError(t, err)

	raw, err := e.Calculate(in)
	require.NoError(t, err)

	summary, err := e.Interpret(raw, in)
	require.NoError(t, err)
	assert.Contains(t, summary.(string), "Life's Work")
}
