package iching

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/witnessos/engine-core/internal/engine"
)

// Input is the I-Ching engine's request shape (§4.3): question-based, with
// an optional seed for reproducible casting.
type Input struct {
	engine.BaseInput

	Question string `json:"question"`
	Seed     int64  `json:"seed,omitempty"`
}

// Output is the raw result of Calculate.
type Output struct {
	Question string `json:"question"`
	Cast     Cast   `json:"cast"`
}

// Engine implements engine.Engine and engine.HelperEngine.
type Engine struct{}

// New returns an I-Ching Engine.
func New() *Engine { return &Engine{} }

func (e *Engine) Name() string          { return "iching" }
func (e *Engine) Description() string   { return "I-Ching hexagram casting and interpretation" }
func (e *Engine) RequiresConsent() bool { return false }

func (e *Engine) InputSchema() engine.Schema {
	return engine.Schema{
		Name: "iching_input",
		Fields: append(append([]engine.SchemaField{}, engine.BaseInputFields...),
			engine.SchemaField{Name: "question", Type: "string", Required: true},
			engine.SchemaField{Name: "seed", Type: "number"},
		),
	}
}

func (e *Engine) OutputSchema() engine.Schema {
	return engine.Schema{Name: "iching_output", Fields: engine.BaseOutputFields}
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
	return &in, nil
}

func (e *Engine) BaseInputOf(input engine.ValidatedInput) engine.BaseInput {
	return input.(*Input).BaseInput
}

func (e *Engine) Calculate(input engine.ValidatedInput) (engine.RawResult, error) {
	in := input.(*Input)

	cast, ok := CastHexagram(in.Question, in.Seed)
	if !ok {
		return nil, engine.NewInternalError("iching", "", fmt.Errorf("cast hexagram pattern not found in dataset"))
	}
	return &Output{Question: in.Question, Cast: cast}, nil
}

func (e *Engine) Interpret(raw engine.RawResult, input engine.ValidatedInput) (any, error) {
	out := raw.(*Output)
	cast := out.Cast

	var b strings.Builder
	fmt.Fprintf(&b, "☯ HEXAGRAM %d: %s (%s) ☯\n\n", cast.Primary.Number, cast.Primary.Name, cast.Primary.Chinese)
	fmt.Fprintf(&b, "Question: %s\n\n", out.Question)
	fmt.Fprintf(&b, "Judgment: %s\n", cast.Primary.Judgment)
	fmt.Fprintf(&b, "Image: %s\n", cast.Primary.Image)
	fmt.Fprintf(&b, "%s\n", cast.Primary.Meaning)
	fmt.Fprintf(&b, "\nDivination: %s\n", cast.Primary.Divination)

	if len(cast.ChangingLineNums) > 0 {
		b.WriteString("\nChanging lines:\n")
		byLine := map[int]string{}
		for _, cl := range cast.Primary.ChangingLines {
			byLine[cl.Line] = cl.Text
		}
		for _, n := range cast.ChangingLineNums {
			fmt.Fprintf(&b, "  %d. %s\n", n, byLine[n])
		}
		if cast.Relating != nil {
			fmt.Fprintf(&b, "\nThis transforms into Hexagram %d: %s (%s) — %s\n",
				cast.Relating.Number, cast.Relating.Name, cast.Relating.Chinese, cast.Relating.Meaning)
		}
	}

	return b.String(), nil
}

func (e *Engine) Recommendations(raw engine.RawResult, input engine.ValidatedInput) []string {
	out := raw.(*Output)
	var recs []string
	for _, k := range out.Cast.Primary.Keywords {
		recs = append(recs, fmt.Sprintf("Reflect on %s as it relates to your question", k))
	}
	return recs
}

func (e *Engine) RealityPatches(raw engine.RawResult, input engine.ValidatedInput) []string {
	return nil
}

func (e *Engine) ArchetypalThemes(raw engine.RawResult, input engine.ValidatedInput) []string {
	out := raw.(*Output)
	themes := []string{out.Cast.Primary.Name}
	if out.Cast.Relating != nil {
		themes = append(themes, out.Cast.Relating.Name)
	}
	return themes
}

func (e *Engine) Confidence(raw engine.RawResult, input engine.ValidatedInput) float64 {
	return 1.0
}
