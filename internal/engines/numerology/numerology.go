// Package numerology implements the numerology engine of §4.3: given a
// full birth name, birth date, and letter system, it derives the Life
// Path/Expression/Soul Urge/Personality/Maturity/Personal Year family of
// numbers via internal/numerology.
package numerology

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/witnessos/engine-core/internal/engine"
	"github.com/witnessos/engine-core/internal/numerology"
)

// Input is the numerology engine's request shape (§4.3).
type Input struct {
	engine.BaseInput

	FullName      string `json:"full_name"`
	BirthDate     string `json:"birth_date"` // YYYY-MM-DD
	PreferredName string `json:"preferred_name,omitempty"`
	System        string `json:"system,omitempty"` // pythagorean|chaldean, default pythagorean
	CurrentYear   int    `json:"current_year,omitempty"`
}

// Output is the raw result of Calculate: the full numerology profile.
type Output struct {
	Profile numerology.Profile `json:"profile"`
}

// Engine implements engine.Engine and engine.HelperEngine.
type Engine struct {
	engine.DefaultHelpers
}

// New returns a numerology Engine.
func New() *Engine { return &Engine{} }

func (e *Engine) Name() string        { return "numerology" }
func (e *Engine) Description() string { return "Name and birth-date derived numerology profile" }
func (e *Engine) RequiresConsent() bool { return false }

func (e *Engine) InputSchema() engine.Schema {
	return engine.Schema{
		Name: "numerology_input",
		Fields: append(append([]engine.SchemaField{}, engine.BaseInputFields...),
			engine.SchemaField{Name: "full_name", Type: "string", Required: true},
			engine.SchemaField{Name: "birth_date", Type: "date", Required: true},
			engine.SchemaField{Name: "preferred_name", Type: "string"},
			engine.SchemaField{Name: "system", Type: "string", Description: "pythagorean|chaldean"},
			engine.SchemaField{Name: "current_year", Type: "number"},
		),
	}
}

func (e *Engine) OutputSchema() engine.Schema {
	return engine.Schema{
		Name:   "numerology_output",
		Fields: engine.BaseOutputFields,
	}
}

func (e *Engine) DecodeInput(raw json.RawMessage) (engine.ValidatedInput, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var in Input
	if err := dec.Decode(&in); err != nil {
		return nil, engine.NewInvalidInput("body", err)
	}
	if in.FullName == "" {
		return nil, engine.NewInvalidInput("full_name", fmt.Errorf("full_name is required"))
	}
	if _, err := time.Parse("2006-01-02", in.BirthDate); err != nil {
		return nil, engine.NewInvalidInput("birth_date", fmt.Errorf("birth_date must be YYYY-MM-DD: %w", err))
	}
	switch in.System {
	case "", "pythagorean":
		in.System = string(numerology.Pythagorean)
	case "chaldean":
		// already valid
	default:
		return nil, engine.NewInvalidInput("system", fmt.Errorf("system must be pythagorean or chaldean"))
	}
	return &in, nil
}

func (e *Engine) BaseInputOf(input engine.ValidatedInput) engine.BaseInput {
	return input.(*Input).BaseInput
}

func (e *Engine) Calculate(input engine.ValidatedInput) (engine.RawResult, error) {
	in := input.(*Input)

	birthDate, err := time.Parse("2006-01-02", in.BirthDate)
	if err != nil {
		return nil, engine.NewInvalidInput("birth_date", err)
	}

	year := in.CurrentYear
	if year == 0 {
		year = time.Now().Year()
	}

	profile := numerology.CalculateProfile(numerology.System(in.System), in.FullName, birthDate, year)
	return &Output{Profile: profile}, nil
}

func (e *Engine) Interpret(raw engine.RawResult, input engine.ValidatedInput) (any, error) {
	out := raw.(*Output)
	p := out.Profile

	summary := fmt.Sprintf(
		"Life Path %d shapes your core journey; Expression %d is how you act it out in the world. "+
			"Soul Urge %d names your inner desire, Personality %d the face you show others. "+
			"By %d you grow into Maturity %d. Personal Year %d colours %d.",
		p.Core.LifePath, p.Core.Expression, p.Core.SoulUrge, p.Core.Personality,
		p.CalculationYear, p.Maturity, p.PersonalYear, p.CalculationYear,
	)
	if len(p.MasterNumbers) > 0 {
		summary += fmt.Sprintf(" Master numbers present: %v.", p.MasterNumbers)
	}
	if len(p.KarmicDebt) > 0 {
		summary += fmt.Sprintf(" Karmic debt numbers present: %v.", p.KarmicDebt)
	}
	return summary, nil
}

func (e *Engine) Recommendations(raw engine.RawResult, input engine.ValidatedInput) []string {
	out := raw.(*Output)
	recs := []string{
		"Reflect on how your Life Path number shows up in today's decisions",
		"Notice where Expression and Soul Urge agree or pull apart this week",
	}
	if len(out.Profile.KarmicDebt) > 0 {
		recs = append(recs, "Karmic debt numbers present — journal on the repeating pattern they describe")
	}
	return recs
}

func (e *Engine) ArchetypalThemes(raw engine.RawResult, input engine.ValidatedInput) []string {
	out := raw.(*Output)
	themes := []string{fmt.Sprintf("life_path_%d", out.Profile.Core.LifePath)}
	for _, m := range out.Profile.MasterNumbers {
		themes = append(themes, fmt.Sprintf("master_number_%d", m))
	}
	return themes
}
