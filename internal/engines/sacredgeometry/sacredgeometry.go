// Package sacredgeometry wires internal/geometry's pattern generators into
// the engine.Engine contract (§4.2.4, §4.3): given an intention and a
// pattern type, it produces the requested geometric construction plus a
// mathematical summary.
package sacredgeometry

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/witnessos/engine-core/internal/engine"
	"github.com/witnessos/engine-core/internal/geometry"
)

// PatternType is the closed set of patterns this engine can generate.
type PatternType string

const (
	PatternMandala      PatternType = "mandala"
	PatternFlowerOfLife PatternType = "flower_of_life"
	PatternSriYantra    PatternType = "sri_yantra"
	PatternGoldenSpiral PatternType = "golden_spiral"
	PatternPlatonicSolid PatternType = "platonic_solid"
	PatternVesicaPiscis PatternType = "vesica_piscis"
)

// Input is the sacred-geometry engine's request shape (§4.3).
type Input struct {
	engine.BaseInput

	Intention   string      `json:"intention"`
	PatternType PatternType `json:"pattern_type,omitempty"`
	PetalCount  int         `json:"petal_count,omitempty"`
	LayerCount  int         `json:"layer_count,omitempty"`
	SpiralTurns int         `json:"spiral_turns,omitempty"`
	SolidType   string      `json:"solid_type,omitempty"`
}

// Output is the raw result of Calculate.
type Output struct {
	PatternType PatternType         `json:"pattern_type"`
	Intention   string              `json:"intention"`
	Circles     []geometry.Circle   `json:"circles,omitempty"`
	Polygons    []geometry.Polygon  `json:"polygons,omitempty"`
	Points      []geometry.Point    `json:"points,omitempty"`
	Vertices    []geometry.Vertex3D `json:"vertices,omitempty"`
}

// Engine implements engine.Engine and engine.HelperEngine.
type Engine struct{}

// New returns a sacred-geometry Engine.
func New() *Engine { return &Engine{} }

func (e *Engine) Name() string          { return "sacred_geometry" }
func (e *Engine) Description() string   { return "Generates consciousness-resonant sacred geometric patterns" }
func (e *Engine) RequiresConsent() bool { return false }

func (e *Engine) InputSchema() engine.Schema {
	return engine.Schema{
		Name: "sacred_geometry_input",
		Fields: append(append([]engine.SchemaField{}, engine.BaseInputFields...),
			engine.SchemaField{Name: "intention", Type: "string", Required: true},
			engine.SchemaField{Name: "pattern_type", Type: "string", Description: "mandala|flower_of_life|sri_yantra|golden_spiral|platonic_solid|vesica_piscis"},
			engine.SchemaField{Name: "petal_count", Type: "number"},
			engine.SchemaField{Name: "layer_count", Type: "number"},
			engine.SchemaField{Name: "spiral_turns", Type: "number"},
			engine.SchemaField{Name: "solid_type", Type: "string"},
		),
	}
}

func (e *Engine) OutputSchema() engine.Schema {
	return engine.Schema{Name: "sacred_geometry_output", Fields: engine.BaseOutputFields}
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
	switch in.PatternType {
	case "":
		in.PatternType = PatternMandala
	case PatternMandala, PatternFlowerOfLife, PatternSriYantra, PatternGoldenSpiral, PatternPlatonicSolid, PatternVesicaPiscis:
		// valid
	default:
		return nil, engine.NewInvalidInput("pattern_type", fmt.Errorf("unrecognized pattern_type %q", in.PatternType))
	}
	return &in, nil
}

func (e *Engine) BaseInputOf(input engine.ValidatedInput) engine.BaseInput {
	return input.(*Input).BaseInput
}

func (e *Engine) Calculate(input engine.ValidatedInput) (engine.RawResult, error) {
	in := input.(*Input)
	center := geometry.Point{X: 0, Y: 0}
	radius := 100.0

	out := &Output{PatternType: in.PatternType, Intention: in.Intention}

	switch in.PatternType {
	case PatternMandala:
		petals := in.PetalCount
		if petals == 0 {
			petals = 8
		}
		layers := in.LayerCount
		if layers == 0 {
			layers = 3
		}
		m := geometry.MandalaPattern(center, radius, petals, layers)
		out.Circles = m.Circles
		out.Polygons = m.Polygons
	case PatternFlowerOfLife:
		layers := in.LayerCount
		if layers == 0 {
			layers = 2
		}
		out.Circles = geometry.FlowerOfLifeCircles(center, radius/3, layers)
	case PatternSriYantra:
		out.Polygons = geometry.SriYantraTriangles(center, radius)
	case PatternGoldenSpiral:
		turns := in.SpiralTurns
		if turns == 0 {
			turns = 4
		}
		out.Points = geometry.GoldenSpiralPoints(turns)
	case PatternPlatonicSolid:
		solid := in.SolidType
		if solid == "" {
			solid = "dodecahedron"
		}
		out.Vertices = geometry.PlatonicSolidVertices(solid)
		if out.Vertices == nil {
			return nil, engine.NewInvalidInput("solid_type", fmt.Errorf("unrecognized solid_type %q", solid))
		}
	case PatternVesicaPiscis:
		center2 := geometry.Point{X: radius, Y: 0}
		circles, points := geometry.VesicaPiscis(center, center2, radius)
		out.Circles = circles
		out.Points = points
	}

	return out, nil
}

func (e *Engine) Interpret(raw engine.RawResult, input engine.ValidatedInput) (any, error) {
	out := raw.(*Output)
	tmpl := templateFor(out.PatternType)
	return fmt.Sprintf(
		"🔺 SACRED GEOMETRY MANIFESTATION — %s 🔺\n\nIntention: %s\n\nThis pattern is %s.",
		titleCase(string(out.PatternType)), out.Intention, tmpl.SymbolicMeaning,
	), nil
}

func titleCase(s string) string {
	return spacedTitle(s)
}

func spacedLower(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '_' {
			out = append(out, ' ')
			continue
		}
		out = append(out, r)
	}
	return string(out)
}

func spacedTitle(s string) string {
	words := []rune(spacedLower(s))
	result := make([]rune, 0, len(words))
	newWord := true
	for _, r := range words {
		if r == ' ' {
			newWord = true
			result = append(result, r)
			continue
		}
		if newWord && r >= 'a' && r <= 'z' {
			result = append(result, r-('a'-'A'))
			newWord = false
			continue
		}
		newWord = false
		result = append(result, r)
	}
	return string(result)
}

func (e *Engine) Recommendations(raw engine.RawResult, input engine.ValidatedInput) []string {
	out := raw.(*Output)
	return templateFor(out.PatternType).Recommendations
}

func (e *Engine) RealityPatches(raw engine.RawResult, input engine.ValidatedInput) []string {
	return nil
}

func (e *Engine) ArchetypalThemes(raw engine.RawResult, input engine.ValidatedInput) []string {
	out := raw.(*Output)
	return templateFor(out.PatternType).ArchetypalThemes
}

func (e *Engine) Confidence(raw engine.RawResult, input engine.ValidatedInput) float64 {
	return 1.0
}
