// Package sigilforge wires internal/geometry's sigil pipeline into the
// engine.Engine contract (§4.2.4, §4.3): given an intention, it eliminates
// duplicate letters, maps them to geometry, and connects them into a
// traditional sigil.
package sigilforge

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/witnessos/engine-core/internal/engine"
	"github.com/witnessos/engine-core/internal/geometry"
)

// Input is the sigil-forge engine's request shape (§4.3).
type Input struct {
	engine.BaseInput

	Intention        string                    `json:"intention"`
	PlacementMethod  geometry.PlacementMethod  `json:"placement_method,omitempty"`
	ConnectionMethod geometry.ConnectionMethod `json:"connection_method,omitempty"`
}

// Output is the raw result of Calculate.
type Output struct {
	Intention       string                   `json:"intention"`
	ReducedLetters  string                   `json:"reduced_letters"`
	Numbers         []int                    `json:"numbers"`
	Sigil           geometry.Sigil           `json:"sigil"`
	PlacementMethod geometry.PlacementMethod `json:"placement_method"`
}

// Engine implements engine.Engine and engine.HelperEngine.
type Engine struct{}

// New returns a sigil-forge Engine.
func New() *Engine { return &Engine{} }

func (e *Engine) Name() string          { return "sigil_forge" }
func (e *Engine) Description() string   { return "Transmutes an intention into a traditional letter sigil" }
func (e *Engine) RequiresConsent() bool { return false }

func (e *Engine) InputSchema() engine.Schema {
	return engine.Schema{
		Name: "sigil_forge_input",
		Fields: append(append([]engine.SchemaField{}, engine.BaseInputFields...),
			engine.SchemaField{Name: "intention", Type: "string", Required: true},
			engine.SchemaField{Name: "placement_method", Type: "string", Description: "radial|spiral|grid"},
			engine.SchemaField{Name: "connection_method", Type: "string", Description: "sequential|star|web"},
		),
	}
}

func (e *Engine) OutputSchema() engine.Schema {
	return engine.Schema{Name: "sigil_forge_output", Fields: engine.BaseOutputFields}
}

func (e *Engine) DecodeInput(raw json.RawMessage) (engine.ValidatedInput, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var in Input
	if err := dec.Decode(&in); err != nil {
		return nil, engine.NewInvalidInput("body", err)
	}
	if in.Intention == "" {
		return nil, engine.NewInvalidInput("intention", fmt.Errorf("intention is required"))
	}
	switch in.PlacementMethod {
	case "":
		in.PlacementMethod = geometry.PlacementRadial
	case geometry.PlacementRadial, geometry.PlacementSpiral, geometry.PlacementGrid:
		// valid
	default:
		return nil, engine.NewInvalidInput("placement_method", fmt.Errorf("unrecognized placement_method %q", in.PlacementMethod))
	}
	switch in.ConnectionMethod {
	case "":
		in.ConnectionMethod = geometry.ConnectSequential
	case geometry.ConnectSequential, geometry.ConnectStar, geometry.ConnectWeb:
		// valid
	default:
		return nil, engine.NewInvalidInput("connection_method", fmt.Errorf("unrecognized connection_method %q", in.ConnectionMethod))
	}
	return &in, nil
}

func (e *Engine) BaseInputOf(input engine.ValidatedInput) engine.BaseInput {
	return input.(*Input).BaseInput
}

func (e *Engine) Calculate(input engine.ValidatedInput) (engine.RawResult, error) {
	in := input.(*Input)

	letters := geometry.EliminateDuplicateLetters(in.Intention)
	numbers := geometry.LettersToNumbers(letters)
	points := geometry.NumbersToGeometry(numbers, in.PlacementMethod)
	lines := geometry.ConnectPoints(points, in.ConnectionMethod)

	center := geometry.Point{X: 0.5, Y: 0.5}
	decorations := []geometry.Circle{{Center: center, Radius: 0.05}}
	for i, l := range lines {
		if i%2 == 0 {
			decorations = append(decorations, geometry.Circle{Center: l.End, Radius: 0.02})
		}
	}

	return &Output{
		Intention:      in.Intention,
		ReducedLetters: letters,
		Numbers:        numbers,
		Sigil: geometry.Sigil{
			Lines:             lines,
			DecorationCircles: decorations,
			Center:            center,
		},
		PlacementMethod: in.PlacementMethod,
	}, nil
}

func (e *Engine) Interpret(raw engine.RawResult, input engine.ValidatedInput) (any, error) {
	out := raw.(*Output)
	return fmt.Sprintf(
		"✨ SIGIL FORGED ✨\n\nIntention: %s\nReduced to %d unique letters: %s\nRendered as %d connecting lines around a %s placement.",
		out.Intention, len(out.ReducedLetters), out.ReducedLetters, len(out.Sigil.Lines), out.PlacementMethod,
	), nil
}

func (e *Engine) Recommendations(raw engine.RawResult, input engine.ValidatedInput) []string {
	return []string{
		"Charge the sigil through a moment of heightened focus, then release it from conscious thought",
		"Revisit the sigil only once the intention has had time to work beneath awareness",
	}
}

func (e *Engine) RealityPatches(raw engine.RawResult, input engine.ValidatedInput) []string {
	return nil
}

func (e *Engine) ArchetypalThemes(raw engine.RawResult, input engine.ValidatedInput) []string {
	return []string{"manifestation", "will"}
}

func (e *Engine) Confidence(raw engine.RawResult, input engine.ValidatedInput) float64 {
	return 1.0
}
