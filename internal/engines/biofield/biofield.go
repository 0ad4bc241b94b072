package biofield

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/witnessos/engine-core/internal/engine"
)

// Input is the biofield engine's request shape (§4.3): an opaque
// stored-image reference, never raw bytes (§4.6 biometric constraint).
type Input struct {
	engine.BaseInput

	ImageRef string `json:"image_ref"`
}

// Output is the raw result of Calculate.
type Output struct {
	Metrics              Metrics         `json:"biofield_metrics"`
	ColorAnalysis        ColorAnalysis   `json:"color_analysis"`
	CompositeScores      CompositeScores `json:"composite_scores"`
	Integration          Integration     `json:"multi_modal_integration"`
	FieldSignature        string          `json:"field_signature"`
	ImageQualityScore     float64         `json:"image_quality_score"`
	BiofieldOptimization  []string        `json:"biofield_optimization"`
	PracticeSuggestions   []string        `json:"practice_suggestions"`
}

// Engine implements engine.Engine and engine.HelperEngine.
type Engine struct{}

// New returns a biofield Engine.
func New() *Engine { return &Engine{} }

func (e *Engine) Name() string { return "biofield" }
func (e *Engine) Description() string {
	return "Poly-Contrast Interference Photography style energy field analysis with multi-modal consciousness integration"
}
func (e *Engine) RequiresConsent() bool { return true }

func (e *Engine) InputSchema() engine.Schema {
	return engine.Schema{
		Name: "biofield_input",
		Fields: append(append([]engine.SchemaField{}, engine.BaseInputFields...),
			engine.SchemaField{Name: "image_ref", Type: "string", Required: true, Description: "opaque stored-image reference, not raw bytes"},
		),
	}
}

func (e *Engine) OutputSchema() engine.Schema {
	return engine.Schema{Name: "biofield_output", Fields: engine.BaseOutputFields}
}

func (e *Engine) DecodeInput(raw json.RawMessage) (engine.ValidatedInput, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var in Input
	if err := dec.Decode(&in); err != nil {
		return nil, engine.NewInvalidInput("body", err)
	}
	if in.ImageRef == "" {
		return nil, engine.NewInvalidInput("image_ref", fmt.Errorf("image_ref is required"))
	}
	return &in, nil
}

func (e *Engine) BaseInputOf(input engine.ValidatedInput) engine.BaseInput {
	return input.(*Input).BaseInput
}

func fieldSignature(s CompositeScores) string {
	energy := "medium"
	switch {
	case s.EnergyScore > 0.7:
		energy = "high"
	case s.EnergyScore < 0.4:
		energy = "low"
	}
	coherence := "medium"
	switch {
	case s.CoherenceScore > 0.7:
		coherence = "high"
	case s.CoherenceScore < 0.4:
		coherence = "low"
	}
	return fmt.Sprintf("biofield_%s_energy_%s_coherence", energy, coherence)
}

func biofieldOptimization(s CompositeScores) []string {
	var recs []string
	if s.EnergyScore < 0.5 {
		recs = append(recs,
			"Practice energizing breathwork (Kapalabhati, Bhastrika)",
			"Engage in dynamic movement or exercise",
			"Spend time in natural sunlight",
		)
	}
	if s.CoherenceScore < 0.5 {
		recs = append(recs,
			"Practice heart coherence breathing (5 seconds in, 5 seconds out)",
			"Practice focused meditation",
			"Maintain consistent daily rhythms",
		)
	}
	if s.SymmetryBalanceScore < 0.5 {
		recs = append(recs,
			"Practice bilateral movement exercises",
			"Use alternate nostril breathing (Nadi Shodhana)",
		)
	}
	if s.RegulationScore < 0.5 {
		recs = append(recs,
			"Establish consistent sleep-wake cycles",
			"Use grounding techniques",
		)
	}
	if len(recs) == 0 {
		return []string{"Continue current practices - biofield well-optimized"}
	}
	return recs
}

func practiceSuggestions(s CompositeScores, integ Integration) []string {
	var suggestions []string

	switch {
	case integ.MultiModalConsistency > 0.8:
		suggestions = append(suggestions, "All systems aligned - excellent time for advanced spiritual practices")
	case integ.MultiModalConsistency < 0.4:
		suggestions = append(suggestions, "Focus on foundational practices to align all consciousness systems")
	}

	switch dominantKey(integ.FiveElementsAlignment) {
	case "wood_alignment":
		suggestions = append(suggestions, "Wood element dominant - practice dynamic meditation and goal-setting")
	case "fire_alignment":
		suggestions = append(suggestions, "Fire element dominant - practice heart-opening and creative expression")
	case "earth_alignment":
		suggestions = append(suggestions, "Earth element dominant - practice grounding and stability exercises")
	case "metal_alignment":
		suggestions = append(suggestions, "Metal element dominant - practice precision breathing and mental clarity")
	case "water_alignment":
		suggestions = append(suggestions, "Water element dominant - practice flowing movement and deep contemplation")
	}

	if integ.CosmicTimingAlignment > 0.7 {
		suggestions = append(suggestions, "Cosmic timing favorable - optimal for manifestation and intention setting")
	}
	return suggestions
}

func (e *Engine) Calculate(input engine.ValidatedInput) (engine.RawResult, error) {
	in := input.(*Input)

	metrics := deriveMetrics(in.ImageRef)
	colors := deriveColorAnalysis(in.ImageRef)
	scores := calculateCompositeScores(metrics, colors)
	integ := buildIntegration(metrics, scores)

	return &Output{
		Metrics:              metrics,
		ColorAnalysis:        colors,
		CompositeScores:      scores,
		Integration:          integ,
		FieldSignature:       fieldSignature(scores),
		ImageQualityScore:    0.8,
		BiofieldOptimization: biofieldOptimization(scores),
		PracticeSuggestions:  practiceSuggestions(scores, integ),
	}, nil
}

func (e *Engine) Interpret(raw engine.RawResult, input engine.ValidatedInput) (any, error) {
	out := raw.(*Output)
	s := out.CompositeScores

	var b strings.Builder
	b.WriteString("Biofield Analysis Summary:\n\n")
	fmt.Fprintf(&b, "Energy Score: %.2f - %s\n", s.EnergyScore, energyLabel(s.EnergyScore))
	fmt.Fprintf(&b, "Coherence Score: %.2f - %s\n", s.CoherenceScore, coherenceLabel(s.CoherenceScore))
	fmt.Fprintf(&b, "Symmetry/Balance: %.2f\n", s.SymmetryBalanceScore)
	fmt.Fprintf(&b, "Multi-Modal Consistency: %.2f\n\n", out.Integration.MultiModalConsistency)
	b.WriteString("This biofield analysis combines PIP-style metrics with traditional consciousness systems ")
	b.WriteString("to provide an energetic assessment and optimization guidance.")
	return b.String(), nil
}

func energyLabel(v float64) string {
	switch {
	case v > 0.7:
		return "High vitality"
	case v < 0.4:
		return "Low energy"
	default:
		return "Moderate energy"
	}
}

func coherenceLabel(v float64) string {
	switch {
	case v > 0.7:
		return "Highly coherent"
	case v < 0.4:
		return "Low coherence"
	default:
		return "Moderate coherence"
	}
}

func (e *Engine) Recommendations(raw engine.RawResult, input engine.ValidatedInput) []string {
	out := raw.(*Output)
	recs := append([]string{}, out.BiofieldOptimization...)
	recs = append(recs, out.PracticeSuggestions...)
	recs = append(recs, unifiedRecommendations(out.CompositeScores, out.Integration.MultiModalConsistency)...)
	return recs
}

func (e *Engine) RealityPatches(raw engine.RawResult, input engine.ValidatedInput) []string {
	return nil
}

func (e *Engine) ArchetypalThemes(raw engine.RawResult, input engine.ValidatedInput) []string {
	out := raw.(*Output)
	return []string{out.FieldSignature}
}

func (e *Engine) Confidence(raw engine.RawResult, input engine.ValidatedInput) float64 {
	out := raw.(*Output)
	return out.ImageQualityScore
}
