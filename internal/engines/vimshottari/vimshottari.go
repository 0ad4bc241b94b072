package vimshottari

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/witnessos/engine-core/internal/astro"
	"github.com/witnessos/engine-core/internal/engine"
)

// Input is the Vimshottari engine's request shape (§4.3): full birth data
// plus an optional target date and forecast window.
type Input struct {
	engine.BaseInput

	BirthDate     string `json:"birth_date"`
	BirthTime     string `json:"birth_time"`
	Timezone      string `json:"timezone"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	CurrentDate   string `json:"current_date,omitempty"`
	YearsForecast int    `json:"years_forecast,omitempty"`
}

// Output is the raw result of Calculate.
type Output struct {
	Nakshatra        astro.Nakshatra `json:"nakshatra"`
	Timeline         []Period        `json:"timeline"`
	CurrentMahadasha Period          `json:"current_mahadasha"`
	CurrentAntardasha Period         `json:"current_antardasha"`
	CurrentPratyantardasha Period    `json:"current_pratyantardasha"`
	Upcoming         []Period        `json:"upcoming"`
}

// Engine implements engine.Engine and engine.HelperEngine.
type Engine struct {
	Ephemeris astro.Ephemeris
}

// New returns a Vimshottari Engine backed by eph.
func New(eph astro.Ephemeris) *Engine { return &Engine{Ephemeris: eph} }

func (e *Engine) Name() string          { return "vimshottari" }
func (e *Engine) Description() string   { return "120-year Vimshottari dasha timeline from the Moon's nakshatra" }
func (e *Engine) RequiresConsent() bool { return false }

func (e *Engine) InputSchema() engine.Schema {
	return engine.Schema{
		Name: "vimshottari_input",
		Fields: append(append([]engine.SchemaField{}, engine.BaseInputFields...),
			engine.SchemaField{Name: "birth_date", Type: "date", Required: true},
			engine.SchemaField{Name: "birth_time", Type: "string", Required: true},
			engine.SchemaField{Name: "timezone", Type: "string", Required: true},
			engine.SchemaField{Name: "latitude", Type: "number", Required: true},
			engine.SchemaField{Name: "longitude", Type: "number", Required: true},
			engine.SchemaField{Name: "current_date", Type: "date", Description: "defaults to today"},
			engine.SchemaField{Name: "years_forecast", Type: "number", Description: "default 10"},
		),
	}
}

func (e *Engine) OutputSchema() engine.Schema {
	return engine.Schema{Name: "vimshottari_output", Fields: engine.BaseOutputFields}
}

func (e *Engine) DecodeInput(raw json.RawMessage) (engine.ValidatedInput, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var in Input
	if err := dec.Decode(&in); err != nil {
		return nil, engine.NewInvalidInput("body", err)
	}
	loc, err := time.LoadLocation(in.Timezone)
	if err != nil {
		return nil, engine.NewInvalidInput("timezone", fmt.Errorf("unrecognized timezone %q: %w", in.Timezone, err))
	}
	if _, err := time.ParseInLocation("2006-01-02 15:04", in.BirthDate+" "+in.BirthTime, loc); err != nil {
		return nil, engine.NewInvalidInput("birth_time", fmt.Errorf("birth_date/birth_time must parse as YYYY-MM-DD HH:MM: %w", err))
	}
	if in.CurrentDate != "" {
		if _, err := time.Parse("2006-01-02", in.CurrentDate); err != nil {
			return nil, engine.NewInvalidInput("current_date", fmt.Errorf("current_date must be YYYY-MM-DD: %w", err))
		}
	}
	if in.YearsForecast == 0 {
		in.YearsForecast = 10
	}
	return &in, nil
}

func (e *Engine) BaseInputOf(input engine.ValidatedInput) engine.BaseInput {
	return input.(*Input).BaseInput
}

func (e *Engine) Calculate(input engine.ValidatedInput) (engine.RawResult, error) {
	in := input.(*Input)

	loc, err := time.LoadLocation(in.Timezone)
	if err != nil {
		return nil, engine.NewInvalidInput("timezone", err)
	}
	birthMoment, err := time.ParseInLocation("2006-01-02 15:04", in.BirthDate+" "+in.BirthTime, loc)
	if err != nil {
		return nil, engine.NewInvalidInput("birth_time", err)
	}

	currentDate := time.Now().UTC()
	if in.CurrentDate != "" {
		currentDate, err = time.Parse("2006-01-02", in.CurrentDate)
		if err != nil {
			return nil, engine.NewInvalidInput("current_date", err)
		}
	}

	birth := astro.BirthData{Moment: birthMoment, Latitude: in.Latitude, Longitude: in.Longitude}
	chart, err := astro.ComputeChart(e.Ephemeris, birth)
	if err != nil {
		return nil, engine.NewDependencyUnavailable("ephemeris", err)
	}

	nakshatra, err := chart.MoonNakshatra(e.Ephemeris)
	if err != nil {
		return nil, engine.NewDependencyUnavailable("ephemeris", err)
	}

	completedFraction := nakshatra.DegreesInNakshatra / (360.0 / 27.0)
	timeline := BuildTimeline(birthMoment, nakshatra.LordOf, completedFraction)

	out := &Output{Nakshatra: nakshatra, Timeline: timeline}

	if maha, ok := FindCurrentMahadasha(timeline, currentDate); ok {
		out.CurrentMahadasha = maha
		if antar, ok := FindCurrentAntardasha(maha, currentDate); ok {
			out.CurrentAntardasha = antar
			if praty, ok := FindCurrentPratyantardasha(antar, currentDate); ok {
				out.CurrentPratyantardasha = praty
			}
		}
	}
	out.Upcoming = UpcomingMahadashas(timeline, currentDate, in.YearsForecast)

	return out, nil
}

func (e *Engine) Interpret(raw engine.RawResult, input engine.ValidatedInput) (any, error) {
	out := raw.(*Output)
	return fmt.Sprintf(
		"Moon nakshatra: %s (pada %d), ruled by %s.\nCurrent Mahadasha: %s (until %s).\nCurrent Antardasha: %s.\nCurrent Pratyantardasha: %s.",
		out.Nakshatra.Name, out.Nakshatra.Pada, out.Nakshatra.LordOf,
		out.CurrentMahadasha.Planet, out.CurrentMahadasha.EndDate.Format("2006-01-02"),
		out.CurrentAntardasha.Planet, out.CurrentPratyantardasha.Planet,
	), nil
}

func (e *Engine) Recommendations(raw engine.RawResult, input engine.ValidatedInput) []string {
	out := raw.(*Output)
	return []string{
		fmt.Sprintf("Align major decisions with the themes of your %s Mahadasha", out.CurrentMahadasha.Planet),
	}
}

func (e *Engine) RealityPatches(raw engine.RawResult, input engine.ValidatedInput) []string {
	return nil
}

func (e *Engine) ArchetypalThemes(raw engine.RawResult, input engine.ValidatedInput) []string {
	out := raw.(*Output)
	return []string{fmt.Sprintf("dasha_%s", out.CurrentMahadasha.Planet)}
}

func (e *Engine) Confidence(raw engine.RawResult, input engine.ValidatedInput) float64 {
	return 1.0
}
