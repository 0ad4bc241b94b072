package genekeys

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/witnessos/engine-core/internal/astro"
	"github.com/witnessos/engine-core/internal/engine"
)

// Input is the Gene Keys engine's request shape (§4.3): full birth data
// plus which sequence(s) to focus the reading on.
type Input struct {
	engine.BaseInput

	BirthDate    string  `json:"birth_date"` // YYYY-MM-DD
	BirthTime    string  `json:"birth_time"` // HH:MM, local civil time
	Timezone     string  `json:"timezone"`   // IANA zone
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	FocusSequence string `json:"focus_sequence,omitempty"` // activation|venus|pearl|all, default all
}

// SequenceGate is one named position within a sequence and its resolved Gene Key.
type SequenceGate struct {
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	GeneKey           GeneKey `json:"gene_key"`
	CalculationMethod string  `json:"calculation_method"`
}

// Sequence is a named, ordered group of gates.
type Sequence struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Gates       []SequenceGate `json:"gates"`
}

// Output is the raw result of Calculate.
type Output struct {
	FocusSequence       string   `json:"focus_sequence"`
	Activation          Sequence `json:"activation_sequence"`
	Venus               Sequence `json:"venus_sequence"`
	Pearl                Sequence `json:"pearl_sequence"`
	PrimaryGeneKey      GeneKey  `json:"primary_gene_key"`
	ProgrammingPartner  GeneKey  `json:"programming_partner"`
}

// Engine implements engine.Engine and engine.HelperEngine.
type Engine struct {
	Ephemeris astro.Ephemeris
}

// New returns a Gene Keys Engine backed by eph.
func New(eph astro.Ephemeris) *Engine {
	return &Engine{Ephemeris: eph}
}

func (e *Engine) Name() string        { return "gene_keys" }
func (e *Engine) Description() string {
	return "Gene Keys archetypal compass: Activation, Venus, and Pearl sequences with pathworking guidance"
}
func (e *Engine) RequiresConsent() bool { return false }

func (e *Engine) InputSchema() engine.Schema {
	return engine.Schema{
		Name: "gene_keys_input",
		Fields: append(append([]engine.SchemaField{}, engine.BaseInputFields...),
			engine.SchemaField{Name: "birth_date", Type: "date", Required: true},
			engine.SchemaField{Name: "birth_time", Type: "string", Required: true, Description: "HH:MM local civil time"},
			engine.SchemaField{Name: "timezone", Type: "string", Required: true, Description: "IANA zone name"},
			engine.SchemaField{Name: "latitude", Type: "number", Required: true},
			engine.SchemaField{Name: "longitude", Type: "number", Required: true},
			engine.SchemaField{Name: "focus_sequence", Type: "string", Description: "activation|venus|pearl|all, default all"},
		),
	}
}

func (e *Engine) OutputSchema() engine.Schema {
	return engine.Schema{Name: "gene_keys_output", Fields: engine.BaseOutputFields}
}

var validFocus = map[string]bool{"activation": true, "venus": true, "pearl": true, "all": true}

func (e *Engine) DecodeInput(raw json.RawMessage) (engine.ValidatedInput, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var in Input
	if err := dec.Decode(&in); err != nil {
		return nil, engine.NewInvalidInput("body", err)
	}
	if in.BirthDate == "" {
		return nil, engine.NewInvalidInput("birth_date", fmt.Errorf("birth_date is required"))
	}
	if in.BirthTime == "" {
		return nil, engine.NewInvalidInput("birth_time", fmt.Errorf("birth_time is required"))
	}
	loc, err := time.LoadLocation(in.Timezone)
	if err != nil {
		return nil, engine.NewInvalidInput("timezone", fmt.Errorf("unrecognized timezone %q: %w", in.Timezone, err))
	}
	if _, err := time.ParseInLocation("2006-01-02 15:04", in.BirthDate+" "+in.BirthTime, loc); err != nil {
		return nil, engine.NewInvalidInput("birth_time", fmt.Errorf("birth_date/birth_time must parse as YYYY-MM-DD HH:MM: %w", err))
	}
	if in.FocusSequence == "" {
		in.FocusSequence = "all"
	}
	if !validFocus[in.FocusSequence] {
		return nil, engine.NewInvalidInput("focus_sequence", fmt.Errorf("unrecognized focus_sequence %q", in.FocusSequence))
	}
	return &in, nil
}

func (e *Engine) BaseInputOf(input engine.ValidatedInput) engine.BaseInput {
	return input.(*Input).BaseInput
}

func (e *Engine) birthData(in *Input) (astro.BirthData, error) {
	loc, err := time.LoadLocation(in.Timezone)
	if err != nil {
		return astro.BirthData{}, err
	}
	moment, err := time.ParseInLocation("2006-01-02 15:04", in.BirthDate+" "+in.BirthTime, loc)
	if err != nil {
		return astro.BirthData{}, err
	}
	return astro.BirthData{Moment: moment, Latitude: in.Latitude, Longitude: in.Longitude}, nil
}

func (e *Engine) Calculate(input engine.ValidatedInput) (engine.RawResult, error) {
	in := input.(*Input)

	birth, err := e.birthData(in)
	if err != nil {
		return nil, engine.NewInvalidInput("birth_time", err)
	}

	chart, err := astro.ComputeChart(e.Ephemeris, birth)
	if err != nil {
		return nil, engine.NewDependencyUnavailable("ephemeris", err)
	}

	activation := Sequence{
		Name:        "Activation Sequence",
		Description: "The four primary gates that form your core genetic blueprint",
		Gates: []SequenceGate{
			{Name: "Life's Work", Description: "Your core life purpose and creative expression",
				GeneKey: ByNumber(chart.PersonalitySunGate().Number), CalculationMethod: "Sun position at birth"},
			{Name: "Evolution", Description: "Your path of personal development and growth",
				GeneKey: ByNumber(chart.PersonalityEarthGate().Number), CalculationMethod: "Earth position at birth"},
			{Name: "Radiance", Description: "Your gift to humanity and how you shine",
				GeneKey: ByNumber(chart.DesignSunGate().Number), CalculationMethod: "Sun position 88 days before birth"},
			{Name: "Purpose", Description: "Your deepest calling and spiritual mission",
				GeneKey: ByNumber(chart.DesignEarthGate().Number), CalculationMethod: "Earth position 88 days before birth"},
		},
	}

	venus := Sequence{
		Name:        "Venus Sequence",
		Description: "The pathway of love and relationships",
		Gates: []SequenceGate{
			{Name: "Attraction", Description: "What draws you to others and others to you",
				GeneKey: ByNumber(chart.PersonalityGate(astro.Venus).Number), CalculationMethod: "Venus position at birth"},
			{Name: "Magnetism", Description: "Your natural charisma and appeal",
				GeneKey: ByNumber(chart.DesignGate(astro.Venus).Number), CalculationMethod: "Venus position 88 days before birth"},
		},
	}

	pearl := Sequence{
		Name:        "Pearl Sequence",
		Description: "The pathway of prosperity and material manifestation",
		Gates: []SequenceGate{
			{Name: "Vocation", Description: "Your natural career path and work style",
				GeneKey: ByNumber(chart.PersonalityGate(astro.Jupiter).Number), CalculationMethod: "Jupiter position at birth"},
			{Name: "Culture", Description: "Your contribution to collective evolution",
				GeneKey: ByNumber(chart.PersonalityGate(astro.Saturn).Number), CalculationMethod: "Saturn position at birth"},
			{Name: "Brand", Description: "Your unique signature in the world",
				GeneKey: ByNumber(chart.PersonalityGate(astro.Uranus).Number), CalculationMethod: "Uranus position at birth"},
		},
	}

	primary := activation.Gates[0].GeneKey
	partner := ByNumber(primary.ProgrammingPartner)

	return &Output{
		FocusSequence:      in.FocusSequence,
		Activation:         activation,
		Venus:              venus,
		Pearl:              pearl,
		PrimaryGeneKey:     primary,
		ProgrammingPartner: partner,
	}, nil
}

func (e *Engine) Interpret(raw engine.RawResult, input engine.ValidatedInput) (any, error) {
	out := raw.(*Output)

	var b strings.Builder
	fmt.Fprintf(&b, "Life's Work: Gene Key %d — %s\n", out.PrimaryGeneKey.Number, out.PrimaryGeneKey.Name)
	fmt.Fprintf(&b, "Shadow: %s | Gift: %s | Siddhi: %s\n", out.PrimaryGeneKey.Shadow, out.PrimaryGeneKey.Gift, out.PrimaryGeneKey.Siddhi)
	fmt.Fprintf(&b, "Programming partner: Gene Key %d — %s\n\n", out.ProgrammingPartner.Number, out.ProgrammingPartner.Name)

	writeSequence := func(seq Sequence) {
		fmt.Fprintf(&b, "%s:\n", seq.Name)
		for _, g := range seq.Gates {
			fmt.Fprintf(&b, "  %s: Gene Key %d — %s\n", g.Name, g.GeneKey.Number, g.GeneKey.Name)
		}
		b.WriteString("\n")
	}

	if out.FocusSequence == "activation" || out.FocusSequence == "all" {
		writeSequence(out.Activation)
	}
	if out.FocusSequence == "venus" || out.FocusSequence == "all" {
		writeSequence(out.Venus)
	}
	if out.FocusSequence == "pearl" || out.FocusSequence == "all" {
		writeSequence(out.Pearl)
	}

	fmt.Fprintf(&b, "Transform %s into %s, in time realizing %s.", out.PrimaryGeneKey.Shadow, out.PrimaryGeneKey.Gift, out.PrimaryGeneKey.Siddhi)
	return b.String(), nil
}

func (e *Engine) Recommendations(raw engine.RawResult, input engine.ValidatedInput) []string {
	out := raw.(*Output)
	return []string{
		fmt.Sprintf("Contemplate your Life's Work Gene Key %d: %s", out.PrimaryGeneKey.Number, out.PrimaryGeneKey.Name),
		fmt.Sprintf("Notice when you operate from the Shadow of %s and practice shifting to the Gift of %s", out.PrimaryGeneKey.Shadow, out.PrimaryGeneKey.Gift),
		fmt.Sprintf("Study Gene Key %d alongside your programming partner %d for balance", out.PrimaryGeneKey.Number, out.ProgrammingPartner.Number),
		"Practice the art of frequency shifting: awareness of Shadow, embodiment of Gift, surrender to Siddhi",
	}
}

func (e *Engine) RealityPatches(raw engine.RawResult, input engine.ValidatedInput) []string {
	return nil
}

func (e *Engine) ArchetypalThemes(raw engine.RawResult, input engine.ValidatedInput) []string {
	out := raw.(*Output)
	themes := []string{out.PrimaryGeneKey.Name}
	for _, g := range out.Activation.Gates {
		themes = append(themes, g.GeneKey.Name)
	}
	return themes
}

func (e *Engine) Confidence(raw engine.RawResult, input engine.ValidatedInput) float64 {
	return 1.0
}
