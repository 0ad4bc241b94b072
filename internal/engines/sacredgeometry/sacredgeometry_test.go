package sacredgeometry

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_DecodeInput_RejectsMissingIntention(t *testing.T) {
	e := New()
	_, err := e.DecodeInput(json.RawMessage(`{}`))
	require.Error(t, err)
}

func TestEngine_DecodeInput_RejectsUnknownPatternType(t *testing.T) {
	e := New()
	_, err := e.DecodeInput(json.RawMessage(`{"intention":"clarity","pattern_type":"nonsense"}`))
	require.Error(t, err)
}

func TestEngine_DecodeInput_DefaultsToMandala(t *testing.T) {
	e := New()
	in, err := e.DecodeInput(json.RawMessage(`{"intention":"clarity"}`))
	require.NoError(t, err)
	assert.Equal(t, PatternMandala, in.(*Input).PatternType)
}

func TestEngine_Calculate_MandalaProducesRings(t *testing.T) {
	e := New()
	in, err := e.DecodeInput(json.RawMessage(`{"intention":"clarity","pattern_type":"mandala","petal_count":6,"layer_count":2}`))
	require.NoError(t, err)

	raw, err := e.Calculate(in)
	require.NoError(t, err)
	out := raw.(*Output)
	assert.Len(t, out.Circles, 6*2)
	assert.Len(t, out.Polygons, 2)
}

func TestEngine_Calculate_UnknownSolidTypeErrors(t *testing.T) {
	e := New()
	in, err := e.DecodeInput(json.RawMessage(`{"intention":"clarity","pattern_type":"platonic_solid","solid_type":"blob"}`))
	require.NoError(t, err)

	_, err = e.Calculate(in)
	require.Error(t, err)
}

func TestEngine_Calculate_PlatonicSolidDefaultsToDodecahedron(t *testing.T) {
	e := New()
	in, err := e.DecodeInput(json.RawMessage(`{"intention":"clarity","pattern_type":"platonic_solid"}`))
	require.NoError(t, err)

	raw, err := e.Calculate(in)
	require.NoError(t, err)
	out := raw.(*Output)
	assert.Len(t, out.Vertices, 20)
}

func TestEngine_ArchetypalThemes_MatchTemplateForPattern(t *testing.T) {
	e := New()
	in, err := e.DecodeInput(json.RawMessage(`{"intention":"clarity","pattern_type":"vesica_piscis"}`))
	require.NoError(t, err)

	raw, err := e.Calculate(in)
	require.NoError(t, err)

	assert.Equal(t, templates[PatternVesicaPiscis].ArchetypalThemes, e.ArchetypalThemes(raw, in))
	assert.Equal(t, templates[PatternVesicaPiscis].Recommendations, e.Recommendations(raw, in))
}

func TestEngine_Interpret_MentionsIntention(t *testing.T) {
	e := New()
	in, err := e.DecodeInput(json.RawMessage(`{"intention":"clarity","pattern_type":"golden_spiral"}`))
	require.NoError(t, err)

	raw, err := e.Calculate(in)
	require.NoError(t, err)

	summary, err := e.Interpret(raw, in)
	require.NoError(t, err)
	assert.Contains(t, summary.(string), "clarity")
}
