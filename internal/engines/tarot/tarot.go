package tarot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/witnessos/engine-core/internal/engine"
)

// Input is the tarot engine's request shape (§4.3): question-based.
type Input struct {
	engine.BaseInput

	Question        string `json:"question"`
	SpreadType      string `json:"spread_type,omitempty"` // default single_card
	IncludeReversed bool   `json:"include_reversed,omitempty"`
	Seed            int64  `json:"seed,omitempty"`
}

// Output is the raw result of Calculate.
type Output struct {
	Question   string      `json:"question"`
	Spread     Spread      `json:"spread"`
	DrawnCards []DrawnCard `json:"drawn_cards"`
}

// Engine implements engine.Engine and engine.HelperEngine.
type Engine struct{}

// New returns a tarot Engine.
func New() *Engine { return &Engine{} }

func (e *Engine) Name() string          { return "tarot" }
func (e *Engine) Description() string   { return "Tarot card readings using traditional spreads" }
func (e *Engine) RequiresConsent() bool { return false }

func (e *Engine) InputSchema() engine.Schema {
	return engine.Schema{
		Name: "tarot_input",
		Fields: append(append([]engine.SchemaField{}, engine.BaseInputFields...),
			engine.SchemaField{Name: "question", Type: "string", Required: true},
			engine.SchemaField{Name: "spread_type", Type: "string", Description: "single_card|three_card|celtic_cross, default single_card"},
			engine.SchemaField{Name: "include_reversed", Type: "bool"},
			engine.SchemaField{Name: "seed", Type: "number"},
		),
	}
}

func (e *Engine) OutputSchema() engine.Schema {
	return engine.Schema{Name: "tarot_output", Fields: engine.BaseOutputFields}
}

func (e *Engine) DecodeInput(raw json.RawMessage) (engine.ValidatedInput, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var in Input
	if err := dec.Decode(&in); err != nil {
		return nil, engine.NewInvalidInput("body", err)
	}
	if in.Question == "" {
		return nil, engine.NewInvalidInput("question", fmt.Errorf("question is required"))
	}
	if in.SpreadType == "" {
		in.SpreadType = "single_card"
	}
	if _, ok := SpreadByName(in.SpreadType); !ok {
		return nil, engine.NewInvalidInput("spread_type", fmt.Errorf("unrecognized spread_type %q", in.SpreadType))
	}
	return &in, nil
}

func (e *Engine) BaseInputOf(input engine.ValidatedInput) engine.BaseInput {
	return input.(*Input).BaseInput
}

func (e *Engine) Calculate(input engine.ValidatedInput) (engine.RawResult, error) {
	in := input.(*Input)

	spread, ok := SpreadByName(in.SpreadType)
	if !ok {
		return nil, engine.NewInvalidInput("spread_type", fmt.Errorf("unrecognized spread_type %q", in.SpreadType))
	}

	drawn := Draw(in.Question, in.Seed, spread.Positions, in.IncludeReversed)
	return &Output{Question: in.Question, Spread: spread, DrawnCards: drawn}, nil
}

func (e *Engine) Interpret(raw engine.RawResult, input engine.ValidatedInput) (any, error) {
	out := raw.(*Output)

	var b strings.Builder
	fmt.Fprintf(&b, "🔮 %s 🔮\n\nQuestion: %s\n\n", out.Spread.Name, out.Question)
	for _, d := range out.DrawnCards {
		orientation := "upright"
		meaning := d.Card.UprightMeaning
		if d.Reversed {
			orientation = "reversed"
			meaning = d.Card.ReversedMeaning
		}
		fmt.Fprintf(&b, "%s: %s (%s) — %s\n", d.Position, d.Card.Name, orientation, meaning)
	}
	return b.String(), nil
}

func (e *Engine) Recommendations(raw engine.RawResult, input engine.ValidatedInput) []string {
	out := raw.(*Output)
	var recs []string
	for _, d := range out.DrawnCards {
		if len(d.Card.Keywords) > 0 {
			recs = append(recs, fmt.Sprintf("Sit with the theme of %s this week", d.Card.Keywords[0]))
		}
	}
	return recs
}

func (e *Engine) RealityPatches(raw engine.RawResult, input engine.ValidatedInput) []string {
	return nil
}

func (e *Engine) ArchetypalThemes(raw engine.RawResult, input engine.ValidatedInput) []string {
	out := raw.(*Output)
	themes := make([]string, 0, len(out.DrawnCards))
	for _, d := range out.DrawnCards {
		themes = append(themes, d.Card.Name)
	}
	return themes
}

func (e *Engine) Confidence(raw engine.RawResult, input engine.ValidatedInput) float64 {
	return 1.0
}
