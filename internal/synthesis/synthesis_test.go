package synthesis

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/witnessos/engine-core/internal/engine"
)

func envelope(t *testing.T, confidence float64, formatted string, raw any) *engine.StorageEnvelope {
	t.Helper()
	rawJSON, err := json.Marshal(raw)
	require.NoError(t, err)
	return &engine.StorageEnvelope{
		BaseOutput: engine.BaseOutput{
			ConfidenceScore: confidence,
			RawData:         rawJSON,
			FormattedOutput: formatted,
		},
	}
}

func TestAnalyze_NumericalPatternRequiresTwoSources(t *testing.T) {
	outputs := map[string]*engine.StorageEnvelope{
		"numerology": envelope(t, 0.9, "life path is strong", map[string]any{"life_path": 11}),
		"biorhythm":  envelope(t, 0.8, "physical cycle steady", map[string]any{"day_count": 11}),
		"tarot":      envelope(t, 0.7, "a lone card", map[string]any{"card_number": 5}),
	}
	doc, err := Analyze(outputs)
	require.NoError(t, err)

	var found bool
	for _, p := range doc.NumericalPatterns {
		if p.Number == 11 {
			found = true
			assert.Equal(t, 2, p.Frequency)
			assert.Contains(t, p.Significance, "leadership")
		}
		assert.NotEqual(t, 5.0, p.Number, "single-source number must not appear")
	}
	assert.True(t, found)
}

func TestAnalyze_ArchetypalResonanceNeedsTwoEngines(t *testing.T) {
	outputs := map[string]*engine.StorageEnvelope{
		"human_design": envelope(t, 0.8, "you are a Manifestor", nil),
		"tarot":        envelope(t, 0.8, "The Emperor appears reversed", nil),
		"iching":       envelope(t, 0.8, "a quiet hexagram", nil),
	}
	doc, err := Analyze(outputs)
	require.NoError(t, err)

	require.NotEmpty(t, doc.ArchetypalResonances)
	assert.Equal(t, "leadership", doc.ArchetypalResonances[0].Archetype)
	assert.Equal(t, 2, doc.ArchetypalResonances[0].Strength)
}

func TestAnalyze_UnifiedThemesCaptureExcerpts(t *testing.T) {
	outputs := map[string]*engine.StorageEnvelope{
		"numerology": envelope(t, 0.8, "your career path favors steady growth", nil),
	}
	doc, err := Analyze(outputs)
	require.NoError(t, err)

	var careerFound bool
	for _, theme := range doc.UnifiedThemes {
		if theme.Theme == "career" {
			careerFound = true
			assert.Contains(t, theme.Excerpts, "numerology")
		}
	}
	assert.True(t, careerFound)
}

func TestAnalyze_FieldCoherenceIsMeanConfidence(t *testing.T) {
	outputs := map[string]*engine.StorageEnvelope{
		"a": envelope(t, 0.8, "", nil),
		"b": envelope(t, 0.4, "", nil),
	}
	doc, err := Analyze(outputs)
	require.NoError(t, err)
	assert.InDelta(t, 0.6, doc.FieldSignature.FieldCoherence, 1e-9)
}

func TestAnalyze_RealityPatchesAlwaysIncludeEvolutionAcceleration(t *testing.T) {
	outputs := map[string]*engine.StorageEnvelope{
		"a": envelope(t, 0.95, "", nil),
		"b": envelope(t, 0.95, "", nil),
	}
	doc, err := Analyze(outputs)
	require.NoError(t, err)
	require.NotEmpty(t, doc.RealityPatches)
	assert.Contains(t, doc.RealityPatches[0], "Evolution acceleration")
}

func TestAnalyze_LowCoherenceTriggersCoherencePatches(t *testing.T) {
	outputs := map[string]*engine.StorageEnvelope{
		"a": envelope(t, 0.1, "", nil),
		"b": envelope(t, 0.2, "", nil),
	}
	doc, err := Analyze(outputs)
	require.NoError(t, err)

	var hasCoherencePatch bool
	for _, p := range doc.RealityPatches {
		if strings.Contains(p, "Coherence enhancement") {
			hasCoherencePatch = true
		}
	}
	assert.True(t, hasCoherencePatch)
}
