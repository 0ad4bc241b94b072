// Package biorhythm wires internal/biorhythm's cycle math into the
// engine.Engine contract (§4.3): given a birth date and an optional
// target date/forecast window, it returns a snapshot, a forecast, and the
// forecast's critical days.
package biorhythm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/witnessos/engine-core/internal/biorhythm"
	"github.com/witnessos/engine-core/internal/engine"
)

// Input is the biorhythm engine's request shape (§4.3).
type Input struct {
	engine.BaseInput

	BirthDate             string `json:"birth_date"`
	TargetDate            string `json:"target_date,omitempty"`
	IncludeExtendedCycles bool   `json:"include_extended_cycles,omitempty"`
	ForecastDays          int    `json:"forecast_days,omitempty"`
}

// Output is the raw result of Calculate.
type Output struct {
	Snapshot     biorhythm.Snapshot   `json:"snapshot"`
	Forecast     []biorhythm.Snapshot `json:"forecast"`
	CriticalDays []time.Time          `json:"critical_days"`
}

// Engine implements engine.Engine and engine.HelperEngine.
type Engine struct{}

// New returns a biorhythm Engine.
func New() *Engine { return &Engine{} }

func (e *Engine) Name() string          { return "biorhythm" }
func (e *Engine) Description() string   { return "Physical, emotional, and intellectual cycle forecasting" }
func (e *Engine) RequiresConsent() bool { return false }

func (e *Engine) InputSchema() engine.Schema {
	return engine.Schema{
		Name: "biorhythm_input",
		Fields: append(append([]engine.SchemaField{}, engine.BaseInputFields...),
			engine.SchemaField{Name: "birth_date", Type: "date", Required: true},
			engine.SchemaField{Name: "target_date", Type: "date", Description: "defaults to today"},
			engine.SchemaField{Name: "include_extended_cycles", Type: "bool", Description: "default false"},
			engine.SchemaField{Name: "forecast_days", Type: "number", Description: "1-90, default 7"},
		),
	}
}

func (e *Engine) OutputSchema() engine.Schema {
	return engine.Schema{Name: "biorhythm_output", Fields: engine.BaseOutputFields}
}

func (e *Engine) DecodeInput(raw json.RawMessage) (engine.ValidatedInput, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var in Input
	if err := dec.Decode(&in); err != nil {
		return nil, engine.NewInvalidInput("body", err)
	}
	if _, err := time.Parse("2006-01-02", in.BirthDate); err != nil {
		return nil, engine.NewInvalidInput("birth_date", fmt.Errorf("birth_date must be YYYY-MM-DD: %w", err))
	}
	if in.TargetDate != "" {
		if _, err := time.Parse("2006-01-02", in.TargetDate); err != nil {
			return nil, engine.NewInvalidInput("target_date", fmt.Errorf("target_date must be YYYY-MM-DD: %w", err))
		}
	}
	var present map[string]json.RawMessage
	if err := json.Unmarshal(raw, &present); err == nil {
		if _, given := present["forecast_days"]; !given {
			in.ForecastDays = 7
		}
	}
	if in.ForecastDays < 1 || in.ForecastDays > 90 {
		return nil, engine.NewInvalidInput("forecast_days", fmt.Errorf("forecast_days must be in [1, 90]"))
	}
	return &in, nil
}

func (e *Engine) BaseInputOf(input engine.ValidatedInput) engine.BaseInput {
	return input.(*Input).BaseInput
}

func (e *Engine) Calculate(input engine.ValidatedInput) (engine.RawResult, error) {
	in := input.(*Input)

	birth, err := time.Parse("2006-01-02", in.BirthDate)
	if err != nil {
		return nil, engine.NewInvalidInput("birth_date", err)
	}

	target := time.Now().UTC().Truncate(24 * time.Hour)
	if in.TargetDate != "" {
		target, err = time.Parse("2006-01-02", in.TargetDate)
		if err != nil {
			return nil, engine.NewInvalidInput("target_date", err)
		}
	}

	snapshot := biorhythm.ComputeSnapshot(birth, target, in.IncludeExtendedCycles)
	forecast := biorhythm.Forecast(birth, target, in.ForecastDays, in.IncludeExtendedCycles)
	critical := biorhythm.CriticalDays(forecast)

	return &Output{Snapshot: snapshot, Forecast: forecast, CriticalDays: critical}, nil
}

func (e *Engine) Interpret(raw engine.RawResult, input engine.ValidatedInput) (any, error) {
	out := raw.(*Output)
	s := out.Snapshot

	summary := fmt.Sprintf(
		"On day %d of your life, physical is %.0f%%, emotional %.0f%%, intellectual %.0f%% (%s trend).",
		s.DaysAlive,
		s.Cycles[biorhythm.Physical].Percentage,
		s.Cycles[biorhythm.Emotional].Percentage,
		s.Cycles[biorhythm.Intellectual].Percentage,
		s.Trend,
	)
	if s.CriticalDay {
		summary += " This is a critical day — at least two cycles are crossing zero."
	}
	if len(out.CriticalDays) > 0 {
		summary += fmt.Sprintf(" %d critical day(s) ahead in this forecast window.", len(out.CriticalDays))
	}
	return summary, nil
}

func (e *Engine) Recommendations(raw engine.RawResult, input engine.ValidatedInput) []string {
	out := raw.(*Output)
	var recs []string
	if out.Snapshot.CriticalDay {
		recs = append(recs, "Today is a critical transition day — favor caution over big commitments")
	}
	if out.Snapshot.OverallEnergy > 50 {
		recs = append(recs, "Energy levels are high — a good window for demanding tasks")
	} else if out.Snapshot.OverallEnergy < -25 {
		recs = append(recs, "Energy levels are low — prioritize rest and recovery")
	}
	return recs
}

func (e *Engine) RealityPatches(raw engine.RawResult, input engine.ValidatedInput) []string {
	return nil
}

func (e *Engine) ArchetypalThemes(raw engine.RawResult, input engine.ValidatedInput) []string {
	out := raw.(*Output)
	return []string{fmt.Sprintf("biorhythm_trend_%s", out.Snapshot.Trend)}
}

func (e *Engine) Confidence(raw engine.RawResult, input engine.ValidatedInput) float64 {
	return 1.0
}
