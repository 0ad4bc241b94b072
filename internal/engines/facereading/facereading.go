package facereading

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/witnessos/engine-core/internal/engine"
)

// Input is the face reading engine's request shape (§4.3): an opaque
// stored-image reference, never raw bytes (§4.6 biometric constraint).
type Input struct {
	engine.BaseInput

	ImageRef string `json:"image_ref"`
}

// Output is the raw result of Calculate.
type Output struct {
	TwelveHouses           []HouseReading     `json:"twelve_houses"`
	OverallHarmony         float64            `json:"overall_harmony"`
	DominantHouses         []string           `json:"dominant_houses"`
	FiveElementPercentages map[Element]float64 `json:"five_element_percentages"`
	DominantElement        Element            `json:"dominant_element"`
	SecondaryElement       Element            `json:"secondary_element"`
	ConstitutionalType     string             `json:"constitutional_type"`
	ConsciousnessAlignment float64            `json:"consciousness_alignment"`
}

// Engine implements engine.Engine and engine.HelperEngine.
type Engine struct{}

// New returns a face reading Engine.
func New() *Engine { return &Engine{} }

func (e *Engine) Name() string        { return "face_reading" }
func (e *Engine) Description() string {
	return "Traditional Chinese Physiognomy: Twelve Houses and Five Elements constitutional analysis"
}
func (e *Engine) RequiresConsent() bool { return true }

func (e *Engine) InputSchema() engine.Schema {
	return engine.Schema{
		Name: "face_reading_input",
		Fields: append(append([]engine.SchemaField{}, engine.BaseInputFields...),
			engine.SchemaField{Name: "image_ref", Type: "string", Required: true, Description: "opaque stored-image reference, not raw bytes"},
		),
	}
}

func (e *Engine) OutputSchema() engine.Schema {
	return engine.Schema{Name: "face_reading_output", Fields: engine.BaseOutputFields}
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

func (e *Engine) Calculate(input engine.ValidatedInput) (engine.RawResult, error) {
	in := input.(*Input)

	houses := make([]HouseReading, 0, len(houseOrder))
	harmonySum := 0.0
	var dominantHouses []string
	for _, h := range houseOrder {
		reading := deriveHouseReading(in.ImageRef, h)
		houses = append(houses, reading)
		harmonySum += reading.HarmonyScore
		if reading.Strength > 0.8 {
			dominantHouses = append(dominantHouses, reading.Key)
		}
	}

	raw := make(map[Element]float64, len(allElements))
	total := 0.0
	for _, el := range allElements {
		v := deriveElementRaw(in.ImageRef, el)
		raw[el] = v
		total += v
	}
	percentages := make(map[Element]float64, len(allElements))
	for _, el := range allElements {
		percentages[el] = raw[el] / total * 100
	}

	ranked := append([]Element{}, allElements...)
	sort.Slice(ranked, func(i, j int) bool { return percentages[ranked[i]] > percentages[ranked[j]] })
	dominant, secondary := ranked[0], ranked[1]

	alignment := 1.0
	for _, el := range allElements {
		deviation := percentages[el]/100 - 0.2 // even distribution would be 20% each
		alignment -= deviation * deviation
	}
	if alignment < 0 {
		alignment = 0
	}

	return &Output{
		TwelveHouses:           houses,
		OverallHarmony:         harmonySum / float64(len(houses)),
		DominantHouses:         dominantHouses,
		FiveElementPercentages: percentages,
		DominantElement:        dominant,
		SecondaryElement:       secondary,
		ConstitutionalType:     constitutionalType(dominant, secondary),
		ConsciousnessAlignment: alignment,
	}, nil
}

func (e *Engine) Interpret(raw engine.RawResult, input engine.ValidatedInput) (any, error) {
	out := raw.(*Output)

	var b strings.Builder
	fmt.Fprintf(&b, "Constitutional Type: %s\n", out.ConstitutionalType)
	fmt.Fprintf(&b, "Dominant Element: %s (%.1f%%) | Secondary: %s (%.1f%%)\n",
		out.DominantElement, out.FiveElementPercentages[out.DominantElement],
		out.SecondaryElement, out.FiveElementPercentages[out.SecondaryElement])
	fmt.Fprintf(&b, "Overall Facial Harmony: %.0f%%\n", out.OverallHarmony*100)
	if len(out.DominantHouses) > 0 {
		fmt.Fprintf(&b, "Dominant Houses: %s\n", strings.Join(out.DominantHouses, ", "))
	}
	fmt.Fprintf(&b, "Consciousness Alignment: %.0f%%\n", out.ConsciousnessAlignment*100)
	return b.String(), nil
}

func (e *Engine) Recommendations(raw engine.RawResult, input engine.ValidatedInput) []string {
	out := raw.(*Output)
	return []string{
		fmt.Sprintf("Your constitution leans %s; favor practices that balance excess %s with its controlling element", out.DominantElement, out.DominantElement),
		"Revisit this reading periodically, as facial expression and vitality shift with season and health",
	}
}

func (e *Engine) RealityPatches(raw engine.RawResult, input engine.ValidatedInput) []string {
	return nil
}

func (e *Engine) ArchetypalThemes(raw engine.RawResult, input engine.ValidatedInput) []string {
	out := raw.(*Output)
	return []string{out.ConstitutionalType}
}

func (e *Engine) Confidence(raw engine.RawResult, input engine.ValidatedInput) float64 {
	out := raw.(*Output)
	return out.ConsciousnessAlignment
}
