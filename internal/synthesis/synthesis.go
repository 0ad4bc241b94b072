// Package synthesis implements the cross-engine field analyser of §4.5: a
// pure function over a batch of already-computed engine outputs. It never
// calls an engine, a cache, or a store — every input it needs is already in
// the StorageEnvelope map handed to Analyze.
package synthesis

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/witnessos/engine-core/internal/engine"
)

// NumericalPattern is one numeric value that recurred across two or more
// engines' raw_data.
type NumericalPattern struct {
	Number       float64  `json:"number"`
	Frequency    int      `json:"frequency"`
	SourceEngines []string `json:"source_engines"`
	Significance string   `json:"significance"`
}

// ArchetypalResonance is one archetype whose keyword bag intersected two or
// more engines' stringified raw_data.
type ArchetypalResonance struct {
	Archetype       string   `json:"archetype"`
	Strength        int      `json:"strength"`
	MatchingEngines []string `json:"matching_engines"`
}

// ThemeMatch is one unified theme tagged by at least one engine.
type ThemeMatch struct {
	Theme    string            `json:"theme"`
	Engines  []string          `json:"engines"`
	Excerpts map[string]string `json:"excerpts"`
}

// EvolutionVector summarises the aggregate trend across engines.
type EvolutionVector struct {
	Direction string  `json:"direction"`
	Velocity  float64 `json:"velocity"`
}

// FieldSignature is the aggregate coherence/frequency/trend summary of §4.5.
type FieldSignature struct {
	FieldCoherence    float64         `json:"field_coherence"`
	DominantFrequency float64         `json:"dominant_frequency"`
	EvolutionVector   EvolutionVector `json:"evolution_vector"`
}

// Document is the full synthesis result for one batch of engine outputs.
type Document struct {
	NumericalPatterns    []NumericalPattern     `json:"numerical_patterns"`
	ArchetypalResonances []ArchetypalResonance  `json:"archetypal_resonances"`
	TemporalCorrelations map[string]any         `json:"temporal_correlations"`
	UnifiedThemes        []ThemeMatch           `json:"unified_themes"`
	FieldSignature       FieldSignature         `json:"field_signature"`
	RealityPatches       []string               `json:"reality_patches"`
}

// archetypeKeywords is the static archetype-to-keyword-bag mapping of §4.5.
var archetypeKeywords = map[string][]string{
	"leadership":    {"manifestor", "emperor", "line_1", "mars", "sun", "leader"},
	"nurturing":     {"reflector", "empress", "moon", "cancer", "caregiver"},
	"wisdom":        {"projector", "hierophant", "jupiter", "sage", "teacher"},
	"transformation": {"generator", "death", "pluto", "scorpio", "phoenix"},
	"innovation":    {"rahu", "the_fool", "uranus", "aquarius", "rebel"},
	"completion":    {"ketu", "the_world", "saturn", "capricorn", "elder"},
}

// themeKeywords is the fixed theme-to-keyword-bag mapping of §4.5.
var themeKeywords = map[string][]string{
	"purpose":       {"purpose", "destiny", "calling", "mission", "meaning"},
	"relationships": {"relationship", "partnership", "compatibility", "connection", "bond"},
	"career":        {"career", "work", "vocation", "profession", "achievement"},
	"growth":        {"growth", "expansion", "development", "evolution", "learning"},
	"challenges":    {"challenge", "obstacle", "shadow", "resistance", "difficulty"},
	"gifts":         {"gift", "talent", "strength", "potential", "genius"},
}

// significanceFor maps a repeated number to its fixed interpretive string.
func significanceFor(n float64) string {
	switch n {
	case 1, 11, 111:
		return "New beginnings, leadership, manifestation"
	case 2, 22, 222:
		return "Partnership, cooperation, balance"
	case 3, 33, 333:
		return "Creativity, communication, expression"
	default:
		return fmt.Sprintf("Numerical resonance: %v", trimFloat(n))
	}
}

func trimFloat(n float64) string {
	if n == math.Trunc(n) {
		return fmt.Sprintf("%d", int64(n))
	}
	return fmt.Sprintf("%g", n)
}

// Analyze is the pure entry point of §4.5.
func Analyze(outputs map[string]*engine.StorageEnvelope) (*Document, error) {
	numberSources := collectNumbers(outputs)
	patterns := buildNumericalPatterns(numberSources)
	resonances := buildArchetypalResonances(outputs)
	themes := buildUnifiedThemes(outputs)
	temporal := collectTemporalCorrelations(outputs)

	coherence := meanConfidence(outputs)
	dominantFreq := dominantFrequency(patterns)
	vector := evolutionVector(outputs)
	stability := stabilityScore(outputs)

	doc := &Document{
		NumericalPatterns:    patterns,
		ArchetypalResonances: resonances,
		TemporalCorrelations: temporal,
		UnifiedThemes:        themes,
		FieldSignature: FieldSignature{
			FieldCoherence:    coherence,
			DominantFrequency: dominantFreq,
			EvolutionVector:   vector,
		},
		RealityPatches: realityPatches(coherence, stability),
	}
	return doc, nil
}

// collectNumbers recursively walks every output's raw_data, returning the
// set of source engine names per distinct numeric leaf.
func collectNumbers(outputs map[string]*engine.StorageEnvelope) map[float64]map[string]bool {
	sources := make(map[float64]map[string]bool)
	for name, env := range outputs {
		if env == nil || len(env.RawData) == 0 {
			continue
		}
		var v any
		if err := json.Unmarshal(env.RawData, &v); err != nil {
			continue
		}
		walkNumbers(v, func(n float64) {
			if sources[n] == nil {
				sources[n] = make(map[string]bool)
			}
			sources[n][name] = true
		})
	}
	return sources
}

func walkNumbers(v any, visit func(float64)) {
	switch t := v.(type) {
	case float64:
		visit(t)
	case map[string]any:
		for _, child := range t {
			walkNumbers(child, visit)
		}
	case []any:
		for _, child := range t {
			walkNumbers(child, visit)
		}
	}
}

func buildNumericalPatterns(sources map[float64]map[string]bool) []NumericalPattern {
	var patterns []NumericalPattern
	for n, engines := range sources {
		if len(engines) < 2 {
			continue
		}
		names := make([]string, 0, len(engines))
		for name := range engines {
			names = append(names, name)
		}
		sort.Strings(names)
		patterns = append(patterns, NumericalPattern{
			Number:        n,
			Frequency:     len(names),
			SourceEngines: names,
			Significance:  significanceFor(n),
		})
	}
	sort.Slice(patterns, func(i, j int) bool {
		if patterns[i].Frequency != patterns[j].Frequency {
			return patterns[i].Frequency > patterns[j].Frequency
		}
		return patterns[i].Number < patterns[j].Number
	})
	return patterns
}

func stringify(env *engine.StorageEnvelope) string {
	if env == nil {
		return ""
	}
	var b strings.Builder
	b.Write(env.RawData)
	if s, ok := env.FormattedOutput.(string); ok {
		b.WriteString(" ")
		b.WriteString(s)
	}
	return strings.ToLower(b.String())
}

func buildArchetypalResonances(outputs map[string]*engine.StorageEnvelope) []ArchetypalResonance {
	names := sortedNames(outputs)
	blobs := make(map[string]string, len(outputs))
	for _, n := range names {
		blobs[n] = stringify(outputs[n])
	}

	var resonances []ArchetypalResonance
	for archetype, keywords := range archetypeKeywords {
		var matching []string
		for _, name := range names {
			if containsAnyKeyword(blobs[name], keywords) {
				matching = append(matching, name)
			}
		}
		if len(matching) >= 2 {
			resonances = append(resonances, ArchetypalResonance{
				Archetype:       archetype,
				Strength:        len(matching),
				MatchingEngines: matching,
			})
		}
	}
	sort.Slice(resonances, func(i, j int) bool {
		if resonances[i].Strength != resonances[j].Strength {
			return resonances[i].Strength > resonances[j].Strength
		}
		return resonances[i].Archetype < resonances[j].Archetype
	})
	return resonances
}

func containsAnyKeyword(blob string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(blob, kw) {
			return true
		}
	}
	return false
}

func buildUnifiedThemes(outputs map[string]*engine.StorageEnvelope) []ThemeMatch {
	names := sortedNames(outputs)
	var themes []ThemeMatch
	for _, theme := range []string{"purpose", "relationships", "career", "growth", "challenges", "gifts"} {
		keywords := themeKeywords[theme]
		match := ThemeMatch{Theme: theme, Excerpts: map[string]string{}}
		for _, name := range names {
			blob := stringify(outputs[name])
			if containsAnyKeyword(blob, keywords) {
				match.Engines = append(match.Engines, name)
				match.Excerpts[name] = excerpt(outputs[name])
			}
		}
		if len(match.Engines) > 0 {
			themes = append(themes, match)
		}
	}
	return themes
}

func excerpt(env *engine.StorageEnvelope) string {
	if env == nil {
		return ""
	}
	if s, ok := env.FormattedOutput.(string); ok {
		if len(s) > 160 {
			return s[:160]
		}
		return s
	}
	return ""
}

// collectTemporalCorrelations copies the whole decoded raw_data of the
// biorhythm, vimshottari, human_design and numerology engines when they
// appear in the batch, per §4.5; no individual field is picked out. It reaches
// only into raw_data already produced by the orchestrator, never the
// engines themselves.
func collectTemporalCorrelations(outputs map[string]*engine.StorageEnvelope) map[string]any {
	correlations := map[string]any{}
	for _, engineName := range []string{"biorhythm", "vimshottari", "human_design", "numerology"} {
		env, ok := outputs[engineName]
		if !ok || env == nil || len(env.RawData) == 0 {
			continue
		}
		var v any
		if err := json.Unmarshal(env.RawData, &v); err != nil {
			continue
		}
		correlations[engineName] = v
	}
	return correlations
}

func meanConfidence(outputs map[string]*engine.StorageEnvelope) float64 {
	if len(outputs) == 0 {
		return 0
	}
	var sum float64
	var n int
	for _, env := range outputs {
		if env == nil {
			continue
		}
		sum += env.ConfidenceScore
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// stabilityScore is one minus the population standard deviation of
// per-engine confidence scores: a batch whose engines agree closely on
// confidence is "stable", one with wide disagreement is not.
func stabilityScore(outputs map[string]*engine.StorageEnvelope) float64 {
	mean := meanConfidence(outputs)
	if len(outputs) == 0 {
		return 1.0
	}
	var variance float64
	var n int
	for _, env := range outputs {
		if env == nil {
			continue
		}
		d := env.ConfidenceScore - mean
		variance += d * d
		n++
	}
	if n == 0 {
		return 1.0
	}
	stddev := math.Sqrt(variance / float64(n))
	stability := 1 - stddev
	if stability < 0 {
		stability = 0
	}
	return stability
}

func dominantFrequency(patterns []NumericalPattern) float64 {
	if len(patterns) == 0 {
		return 0
	}
	return patterns[0].Number
}

func evolutionVector(outputs map[string]*engine.StorageEnvelope) EvolutionVector {
	mean := meanConfidence(outputs)
	direction := "stable"
	switch {
	case mean >= 0.7:
		direction = "ascending"
	case mean < 0.4:
		direction = "descending"
	}
	return EvolutionVector{Direction: direction, Velocity: mean}
}

// realityPatches emits the deterministic recommendations of §4.5. An
// evolution-acceleration patch is always present, independent of scores.
func realityPatches(coherence, stability float64) []string {
	patches := []string{
		"Evolution acceleration: integrate today's readings into a single daily practice.",
	}
	if coherence < 0.6 {
		patches = append(patches,
			"Coherence enhancement: revisit the lowest-confidence engine result and re-run it with fuller input.",
			"Coherence enhancement: cross-reference conflicting themes before acting on them.",
		)
	}
	if stability < 0.6 {
		patches = append(patches,
			"Stability enhancement: ground today's insights with a physical practice before making decisions.",
			"Stability enhancement: revisit this synthesis again in 24 hours to confirm the pattern holds.",
		)
	}
	return patches
}

func sortedNames(outputs map[string]*engine.StorageEnvelope) []string {
	names := make([]string, 0, len(outputs))
	for name := range outputs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
