// Package humandesign wires internal/astro's chart computation into the
// engine.Engine contract (§4.3): given full birth data, it resolves
// personality/design gates for every tracked body, derives type,
// strategy, authority, profile, and incarnation cross.
package humandesign

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/witnessos/engine-core/internal/astro"
	"github.com/witnessos/engine-core/internal/engine"
)

// Input is the Human Design engine's request shape (§4.3): full birth data.
type Input struct {
	engine.BaseInput

	BirthDate string  `json:"birth_date"` // YYYY-MM-DD
	BirthTime string  `json:"birth_time"` // HH:MM, local civil time
	Timezone  string  `json:"timezone"`   // IANA zone, e.g. "America/New_York"
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// GateReading is a gate/line with the body it belongs to.
type GateReading struct {
	Body astro.Body `json:"body"`
	Gate int        `json:"gate"`
	Line int        `json:"line"`
}

// Output is the raw result of Calculate.
type Output struct {
	PersonalityGates  []GateReading     `json:"personality_gates"`
	DesignGates       []GateReading     `json:"design_gates"`
	DefinedCenters    []Center          `json:"defined_centers"`
	Type              TypeInfo          `json:"type"`
	Profile           Profile           `json:"profile"`
	IncarnationCross  IncarnationCross  `json:"incarnation_cross"`
}

// Engine implements engine.Engine and engine.HelperEngine.
type Engine struct {
	Ephemeris astro.Ephemeris
}

// New returns a Human Design Engine backed by eph. Pass
// astro.NewStubEphemeris() when no real ephemeris data is configured.
func New(eph astro.Ephemeris) *Engine {
	return &Engine{Ephemeris: eph}
}

func (e *Engine) Name() string          { return "human_design" }
func (e *Engine) Description() string   { return "Natal Human Design chart: type, strategy, authority, profile" }
func (e *Engine) RequiresConsent() bool { return false }

func (e *Engine) InputSchema() engine.Schema {
	return engine.Schema{
		Name: "human_design_input",
		Fields: append(append([]engine.SchemaField{}, engine.BaseInputFields...),
			engine.SchemaField{Name: "birth_date", Type: "date", Required: true},
			engine.SchemaField{Name: "birth_time", Type: "string", Required: true, Description: "HH:MM local civil time"},
			engine.SchemaField{Name: "timezone", Type: "string", Required: true, Description: "IANA zone name"},
			engine.SchemaField{Name: "latitude", Type: "number", Required: true},
			engine.SchemaField{Name: "longitude", Type: "number", Required: true},
		),
	}
}

func (e *Engine) OutputSchema() engine.Schema {
	return engine.Schema{Name: "human_design_output", Fields: engine.BaseOutputFields}
}

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

// trackedOtherBodies are every tracked body besides the Sun. Earth has no
// body of its own: its gate is derived from the point opposite the Sun.
var trackedOtherBodies = []astro.Body{
	astro.Moon, astro.Mercury, astro.Venus, astro.Mars, astro.Jupiter,
	astro.Saturn, astro.Uranus, astro.Neptune, astro.Pluto, astro.MeanNode,
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

	personalityGates := []GateReading{
		{Body: astro.Sun, Gate: chart.PersonalitySunGate().Number, Line: chart.PersonalitySunGate().Line},
		{Body: -1, Gate: chart.PersonalityEarthGate().Number, Line: chart.PersonalityEarthGate().Line}, // Earth has no astro.Body constant
	}
	designGates := []GateReading{
		{Body: astro.Sun, Gate: chart.DesignSunGate().Number, Line: chart.DesignSunGate().Line},
		{Body: -1, Gate: chart.DesignEarthGate().Number, Line: chart.DesignEarthGate().Line},
	}
	for _, b := range trackedOtherBodies {
		pg := chart.PersonalityGate(b)
		dg := chart.DesignGate(b)
		personalityGates = append(personalityGates, GateReading{Body: b, Gate: pg.Number, Line: pg.Line})
		designGates = append(designGates, GateReading{Body: b, Gate: dg.Number, Line: dg.Line})
	}

	defined := make(map[int]bool)
	for _, g := range personalityGates {
		defined[g.Gate] = true
	}
	for _, g := range designGates {
		defined[g.Gate] = true
	}

	typeInfo := DetermineType(defined)
	profile := ComputeProfile(chart.PersonalitySunGate().Line, chart.DesignSunGate().Line)
	cross := ComputeIncarnationCross(
		chart.PersonalitySunGate().Number, chart.PersonalityEarthGate().Number,
		chart.DesignSunGate().Number, chart.DesignEarthGate().Number,
	)

	return &Output{
		PersonalityGates: personalityGates,
		DesignGates:      designGates,
		DefinedCenters:   DefinedCenters(defined),
		Type:             typeInfo,
		Profile:          profile,
		IncarnationCross: cross,
	}, nil
}

func (e *Engine) Interpret(raw engine.RawResult, input engine.ValidatedInput) (any, error) {
	out := raw.(*Output)
	return fmt.Sprintf(
		"You are a %s. Strategy: %s. Authority: %s.\nProfile %d/%d — %s.\n%s\n\n%s",
		out.Type.Name, out.Type.Strategy, out.Type.Authority,
		out.Profile.PersonalityLine, out.Profile.DesignLine, out.Profile.Name,
		out.IncarnationCross.Name, out.Type.Description,
	), nil
}

func (e *Engine) Recommendations(raw engine.RawResult, input engine.ValidatedInput) []string {
	out := raw.(*Output)
	return []string{
		fmt.Sprintf("Follow your %s strategy: %s", out.Type.Name, out.Type.Strategy),
		fmt.Sprintf("Trust your %s when making decisions", out.Type.Authority),
	}
}

func (e *Engine) RealityPatches(raw engine.RawResult, input engine.ValidatedInput) []string {
	out := raw.(*Output)
	return []string{
		fmt.Sprintf("PATCH_HD_STRATEGY: Implementation of %s decision-making protocol", out.Type.Strategy),
		fmt.Sprintf("PATCH_HD_AUTHORITY: Activation of %s guidance system", out.Type.Authority),
	}
}

func (e *Engine) ArchetypalThemes(raw engine.RawResult, input engine.ValidatedInput) []string {
	out := raw.(*Output)
	return []string{fmt.Sprintf("hd_type_%s", out.Type.Name)}
}

func (e *Engine) Confidence(raw engine.RawResult, input engine.ValidatedInput) float64 {
	return 1.0
}
