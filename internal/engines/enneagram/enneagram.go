package enneagram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/witnessos/engine-core/internal/engine"
)

// Input is the Enneagram engine's request shape (§4.3): one of three
// identification methods, plus which optional layers to resolve.
type Input struct {
	engine.BaseInput

	IdentificationMethod string            `json:"identification_method"` // assessment|self_select|intuitive
	AssessmentResponses  map[string]string `json:"assessment_responses,omitempty"`
	SelectedType         int               `json:"selected_type,omitempty"`
	BehavioralDescription string           `json:"behavioral_description,omitempty"`
	FocusArea            string            `json:"focus_area,omitempty"` // relationships|career|spirituality
	IncludeWings         bool              `json:"include_wings,omitempty"`
	IncludeInstincts     bool              `json:"include_instincts,omitempty"`
	IncludeArrows        bool              `json:"include_arrows,omitempty"`
}

// Profile is the resolved Enneagram reading.
type Profile struct {
	PrimaryType           Type                `json:"primary_type"`
	Center                Center              `json:"center"`
	Wing                  *Wing               `json:"wing,omitempty"`
	InstinctualVariant    *InstinctualVariant `json:"instinctual_variant,omitempty"`
	IntegrationDirection  *Arrow              `json:"integration_direction,omitempty"`
	DisintegrationDirection *Arrow            `json:"disintegration_direction,omitempty"`
	AssessmentConfidence  float64             `json:"assessment_confidence"`
}

// Output is the raw result of Calculate.
type Output struct {
	IdentificationMethod string  `json:"identification_method"`
	Profile              Profile `json:"profile"`
}

// Engine implements engine.Engine and engine.HelperEngine.
type Engine struct{}

// New returns an Enneagram Engine.
func New() *Engine { return &Engine{} }

func (e *Engine) Name() string        { return "enneagram" }
func (e *Engine) Description() string {
	return "Enneagram personality analysis: type, wing, arrows, instinctual variant, and growth guidance"
}
func (e *Engine) RequiresConsent() bool { return false }

func (e *Engine) InputSchema() engine.Schema {
	return engine.Schema{
		Name: "enneagram_input",
		Fields: append(append([]engine.SchemaField{}, engine.BaseInputFields...),
			engine.SchemaField{Name: "identification_method", Type: "string", Required: true, Description: "assessment|self_select|intuitive"},
			engine.SchemaField{Name: "assessment_responses", Type: "object", Description: "question_id -> type number string, for assessment method"},
			engine.SchemaField{Name: "selected_type", Type: "number", Description: "1-9, for self_select method"},
			engine.SchemaField{Name: "behavioral_description", Type: "string", Description: "free text, for intuitive method"},
			engine.SchemaField{Name: "focus_area", Type: "string", Description: "relationships|career|spirituality"},
			engine.SchemaField{Name: "include_wings", Type: "bool"},
			engine.SchemaField{Name: "include_instincts", Type: "bool"},
			engine.SchemaField{Name: "include_arrows", Type: "bool"},
		),
	}
}

func (e *Engine) OutputSchema() engine.Schema {
	return engine.Schema{Name: "enneagram_output", Fields: engine.BaseOutputFields}
}

func (e *Engine) DecodeInput(raw json.RawMessage) (engine.ValidatedInput, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var in Input
	if err := dec.Decode(&in); err != nil {
		return nil, engine.NewInvalidInput("body", err)
	}

	switch in.IdentificationMethod {
	case "assessment":
		if len(in.AssessmentResponses) == 0 {
			return nil, engine.NewInvalidInput("assessment_responses", fmt.Errorf("assessment_responses is required for the assessment method"))
		}
	case "self_select":
		if _, ok := ByNumber(in.SelectedType); !ok {
			return nil, engine.NewInvalidInput("selected_type", fmt.Errorf("selected_type must be 1-9"))
		}
	case "intuitive":
		if in.BehavioralDescription == "" {
			return nil, engine.NewInvalidInput("behavioral_description", fmt.Errorf("behavioral_description is required for the intuitive method"))
		}
	default:
		return nil, engine.NewInvalidInput("identification_method", fmt.Errorf("unrecognized identification_method %q", in.IdentificationMethod))
	}
	return &in, nil
}

func (e *Engine) BaseInputOf(input engine.ValidatedInput) engine.BaseInput {
	return input.(*Input).BaseInput
}

// identifyFromAssessment counts how many responses named each type number
// and returns the most-voted type with its share of all valid responses.
func identifyFromAssessment(responses map[string]string) (int, float64) {
	scores := make(map[int]int)
	total := 0
	for _, response := range responses {
		n, err := strconv.Atoi(response)
		if err != nil || n < 1 || n > 9 {
			continue
		}
		scores[n]++
		total++
	}
	if total == 0 {
		return 9, 0.1
	}
	best, bestScore := 9, 0
	for n := 1; n <= 9; n++ {
		if scores[n] > bestScore {
			best, bestScore = n, scores[n]
		}
	}
	return best, float64(bestScore) / float64(total)
}

// identifyFromDescription keyword-matches a free-text description against
// each type's keywords and core motivation/fear/desire, scoring the
// strongest match.
func identifyFromDescription(description string) (int, float64) {
	lower := strings.ToLower(description)
	scores := make(map[int]int)
	total := 0
	for n := 1; n <= 9; n++ {
		t, _ := ByNumber(n)
		score := 0
		for _, kw := range t.Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				score += 2
			}
		}
		for _, phrase := range []string{t.CoreMotivation, t.CoreFear, t.CoreDesire} {
			for _, word := range strings.Fields(strings.ToLower(phrase)) {
				if len(word) > 3 && strings.Contains(lower, word) {
					score += 3
					break
				}
			}
		}
		scores[n] = score
		total += score
	}
	if total == 0 {
		return 9, 0.1
	}
	best, bestScore := 9, 0
	for n := 1; n <= 9; n++ {
		if scores[n] > bestScore {
			best, bestScore = n, scores[n]
		}
	}
	confidence := float64(bestScore) / float64(total)
	if confidence > 0.8 {
		confidence = 0.8
	}
	return best, confidence
}

func (e *Engine) Calculate(input engine.ValidatedInput) (engine.RawResult, error) {
	in := input.(*Input)

	var typeNum int
	var confidence float64
	switch in.IdentificationMethod {
	case "assessment":
		typeNum, confidence = identifyFromAssessment(in.AssessmentResponses)
	case "self_select":
		typeNum, confidence = in.SelectedType, 0.9
	case "intuitive":
		typeNum, confidence = identifyFromDescription(in.BehavioralDescription)
	}

	primary, ok := ByNumber(typeNum)
	if !ok {
		return nil, engine.NewInvalidInput("selected_type", fmt.Errorf("resolved type %d is out of range", typeNum))
	}
	center, _ := CenterByName(primary.Center)

	profile := Profile{PrimaryType: primary, Center: center, AssessmentConfidence: confidence}

	if in.IncludeWings && len(primary.Wings) > 0 {
		w := primary.Wings[lowestWingKey(primary.Wings)]
		profile.Wing = &w
	}
	if in.IncludeInstincts {
		if v, ok := InstinctualVariantByName(firstInstinctKey()); ok {
			profile.InstinctualVariant = &v
		}
	}
	if in.IncludeArrows {
		if a, ok := primary.Arrows["integration"]; ok {
			profile.IntegrationDirection = &a
		}
		if a, ok := primary.Arrows["disintegration"]; ok {
			profile.DisintegrationDirection = &a
		}
	}

	return &Output{IdentificationMethod: in.IdentificationMethod, Profile: profile}, nil
}

func (e *Engine) Interpret(raw engine.RawResult, input engine.ValidatedInput) (any, error) {
	out := raw.(*Output)
	p := out.Profile
	t := p.PrimaryType

	var b strings.Builder
	fmt.Fprintf(&b, "Core Type: %d - %s\n", t.Number, t.Name)
	fmt.Fprintf(&b, "Center: %s (focus: %s)\n", p.Center.Name, p.Center.Focus)
	fmt.Fprintf(&b, "Core Motivation: %s\n", t.CoreMotivation)
	fmt.Fprintf(&b, "Core Fear: %s\n", t.CoreFear)
	fmt.Fprintf(&b, "Core Desire: %s\n\n", t.CoreDesire)
	fmt.Fprintf(&b, "Vice: %s | Virtue: %s\n", t.Vice, t.Virtue)
	fmt.Fprintf(&b, "Passion: %s | Holy Idea: %s\n\n", t.Passion, t.HolyIdea)

	if p.Wing != nil {
		fmt.Fprintf(&b, "Wing: %s (adds %s)\n\n", p.Wing.Name, strings.Join(p.Wing.Traits, ", "))
	}
	if p.InstinctualVariant != nil {
		fmt.Fprintf(&b, "Instinctual Variant: %s — %s\n\n", p.InstinctualVariant.Name, p.InstinctualVariant.Description)
	}
	if p.IntegrationDirection != nil {
		fmt.Fprintf(&b, "Integration (growth): move toward Type %d, developing %s\n", p.IntegrationDirection.Direction, strings.Join(p.IntegrationDirection.Traits, ", "))
	}
	if p.DisintegrationDirection != nil {
		fmt.Fprintf(&b, "Disintegration (stress): watch for Type %d patterns, avoiding %s\n", p.DisintegrationDirection.Direction, strings.Join(p.DisintegrationDirection.Traits, ", "))
	}

	fmt.Fprintf(&b, "\nAs a Type %d %s, focus on transforming %s into %s.", t.Number, t.Name, t.Vice, t.Virtue)
	return b.String(), nil
}

func (e *Engine) Recommendations(raw engine.RawResult, input engine.ValidatedInput) []string {
	out := raw.(*Output)
	t := out.Profile.PrimaryType
	recs := append([]string{}, t.GrowthRecommendations...)
	if len(recs) > 3 {
		recs = recs[:3]
	}
	if out.Profile.Wing != nil && len(out.Profile.Wing.Traits) > 0 {
		recs = append(recs, fmt.Sprintf("Integrate your %s wing by embracing %s", out.Profile.Wing.Name, strings.Join(out.Profile.Wing.Traits, ", ")))
	}
	return recs
}

func (e *Engine) RealityPatches(raw engine.RawResult, input engine.ValidatedInput) []string {
	return nil
}

func (e *Engine) ArchetypalThemes(raw engine.RawResult, input engine.ValidatedInput) []string {
	out := raw.(*Output)
	return []string{fmt.Sprintf("enneagram_type_%d", out.Profile.PrimaryType.Number)}
}

func (e *Engine) Confidence(raw engine.RawResult, input engine.ValidatedInput) float64 {
	out := raw.(*Output)
	return out.Profile.AssessmentConfidence
}
