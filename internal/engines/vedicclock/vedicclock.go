// Package vedicclock implements the VedicClock-TCM integration engine of
// §4.3: it synthesizes a personal Vimshottari dasha context (the macro life
// curriculum, delegated to the vimshottari package's real calculations)
// with the live Vedic Panchanga and the Traditional Chinese Medicine organ
// clock, producing moment-by-moment consciousness optimization guidance.
package vedicclock

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/witnessos/engine-core/internal/astro"
	"github.com/witnessos/engine-core/internal/engine"
	"github.com/witnessos/engine-core/internal/engines/vimshottari"
)

// Input is the VedicClock-TCM engine's request shape (§4.3): birth data
// for the personal dasha context, plus an optional target moment to
// evaluate (defaulting to now).
type Input struct {
	engine.BaseInput

	BirthDate         string  `json:"birth_date"`
	BirthTime         string  `json:"birth_time"`
	Timezone          string  `json:"timezone"`
	Latitude          float64 `json:"latitude"`
	Longitude         float64 `json:"longitude"`
	TargetDate        string  `json:"target_date,omitempty"`
	TargetTime        string  `json:"target_time,omitempty"`
	IncludePredictions bool   `json:"include_predictions,omitempty"`
	PredictionHours   int     `json:"prediction_hours,omitempty"`
}

// VimshottariContext is the macro life-curriculum summary carried into the
// moment-by-moment guidance.
type VimshottariContext struct {
	MahadashaLord            string  `json:"mahadasha_lord"`
	MahadashaRemainingYears  float64 `json:"mahadasha_remaining_years"`
	AntardashaLord           string  `json:"antardasha_lord"`
	LifeLessonTheme          string  `json:"life_lesson_theme"`
	KarmicFocus              string  `json:"karmic_focus"`
}

// TCMOrganState is the currently active organ clock window.
type TCMOrganState struct {
	PrimaryOrgan      string   `json:"primary_organ"`
	SecondaryOrgan    string   `json:"secondary_organ"`
	Element           string   `json:"element"`
	EnergyDirection   string   `json:"energy_direction"`
	OptimalActivities []string `json:"optimal_activities"`
	AvoidActivities   []string `json:"avoid_activities"`
}

// ConsciousnessOptimization is the synthesized practice guidance.
type ConsciousnessOptimization struct {
	PrimaryFocus      string   `json:"primary_focus"`
	SecondaryFocuses  []string `json:"secondary_focuses"`
	OptimalPractices  []string `json:"optimal_practices"`
	TimingGuidance    string   `json:"timing_guidance"`
	EnergyManagement  string   `json:"energy_management"`
	IntegrationMethod string   `json:"integration_method"`
}

// OptimizationWindow is a future window of favorable energy.
type OptimizationWindow struct {
	StartTime             time.Time `json:"start_time"`
	EndTime               time.Time `json:"end_time"`
	OpportunityType       string    `json:"opportunity_type"`
	EnergyQuality         string    `json:"energy_quality"`
	RecommendedActivities []string  `json:"recommended_activities"`
	PotencyScore          float64   `json:"potency_score"`
}

// Output is the raw result of Calculate.
type Output struct {
	VimshottariContext        VimshottariContext        `json:"vimshottari_context"`
	Panchanga                 Panchanga                 `json:"panchanga_state"`
	TCMOrganState             TCMOrganState              `json:"tcm_organ_state"`
	ElementalSynthesis        ElementalSynthesis         `json:"elemental_synthesis"`
	ConsciousnessOptimization ConsciousnessOptimization  `json:"consciousness_optimization"`
	PersonalResonanceScore    float64                    `json:"personal_resonance_score"`
	OptimalEnergyWindow       bool                       `json:"optimal_energy_window"`
	UpcomingWindows           []OptimizationWindow        `json:"upcoming_windows,omitempty"`
}

// Engine implements engine.Engine and engine.HelperEngine.
type Engine struct {
	Ephemeris astro.Ephemeris
}

// New returns a VedicClock-TCM Engine backed by eph.
func New(eph astro.Ephemeris) *Engine { return &Engine{Ephemeris: eph} }

func (e *Engine) Name() string { return "vedicclock_tcm" }
func (e *Engine) Description() string {
	return "Multi-dimensional consciousness optimization combining Vedic time cycles with TCM organ rhythms"
}
func (e *Engine) RequiresConsent() bool { return false }

func (e *Engine) InputSchema() engine.Schema {
	return engine.Schema{
		Name: "vedicclock_tcm_input",
		Fields: append(append([]engine.SchemaField{}, engine.BaseInputFields...),
			engine.SchemaField{Name: "birth_date", Type: "date", Required: true},
			engine.SchemaField{Name: "birth_time", Type: "string", Required: true},
			engine.SchemaField{Name: "timezone", Type: "string", Required: true},
			engine.SchemaField{Name: "latitude", Type: "number", Required: true},
			engine.SchemaField{Name: "longitude", Type: "number", Required: true},
			engine.SchemaField{Name: "target_date", Type: "date", Description: "defaults to today"},
			engine.SchemaField{Name: "target_time", Type: "string", Description: "HH:MM, defaults to now"},
			engine.SchemaField{Name: "include_predictions", Type: "bool"},
			engine.SchemaField{Name: "prediction_hours", Type: "number", Description: "default 24"},
		),
	}
}

func (e *Engine) OutputSchema() engine.Schema {
	return engine.Schema{Name: "vedicclock_tcm_output", Fields: engine.BaseOutputFields}
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
	if in.TargetDate != "" {
		if _, err := time.Parse("2006-01-02", in.TargetDate); err != nil {
			return nil, engine.NewInvalidInput("target_date", fmt.Errorf("target_date must be YYYY-MM-DD: %w", err))
		}
	}
	if in.TargetTime != "" {
		if _, err := time.Parse("15:04", in.TargetTime); err != nil {
			return nil, engine.NewInvalidInput("target_time", fmt.Errorf("target_time must be HH:MM: %w", err))
		}
	}
	if in.PredictionHours == 0 {
		in.PredictionHours = 24
	}
	return &in, nil
}

func (e *Engine) BaseInputOf(input engine.ValidatedInput) engine.BaseInput {
	return input.(*Input).BaseInput
}

func parseTarget(in *Input, loc *time.Location) (time.Time, error) {
	now := time.Now().In(loc)
	datePart := now.Format("2006-01-02")
	if in.TargetDate != "" {
		datePart = in.TargetDate
	}
	timePart := now.Format("15:04")
	if in.TargetTime != "" {
		timePart = in.TargetTime
	}
	return time.ParseInLocation("2006-01-02 15:04", datePart+" "+timePart, loc)
}

func tcmStateAt(t time.Time) TCMOrganState {
	organ, element, direction := organStateAt(t.Hour(), t.Minute())
	fallbackOptimal := []string{"Mindful awareness", "Present moment practices"}
	fallbackAvoid := []string{"Excessive stress", "Mindless activities"}
	return TCMOrganState{
		PrimaryOrgan:      organ,
		SecondaryOrgan:    resolveSecondaryOrgan(organ),
		Element:           element,
		EnergyDirection:   direction,
		OptimalActivities: lookupActivities(optimalActivities, organ, fallbackOptimal),
		AvoidActivities:   lookupActivities(avoidActivities, organ, fallbackAvoid),
	}
}

func windowPotency(tcm TCMOrganState, panch Panchanga) float64 {
	score := 0.5
	switch tcm.EnergyDirection {
	case "peak":
		score += 0.3
	case "ascending":
		score += 0.2
	}
	if panch.DominantElement == tcm.Element {
		score += 0.2
	}
	score += panch.AuspiciousnessScore * 0.2
	if score > 1.0 {
		score = 1.0
	}
	return score
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
	target, err := parseTarget(in, loc)
	if err != nil {
		return nil, engine.NewInvalidInput("target_time", err)
	}

	birth := astro.BirthData{Moment: birthMoment, Latitude: in.Latitude, Longitude: in.Longitude}
	chart, err := astro.ComputeChart(e.Ephemeris, birth)
	if err != nil {
		return nil, engine.NewDependencyUnavailable("ephemeris", err)
	}
	moonNakshatra, err := chart.MoonNakshatra(e.Ephemeris)
	if err != nil {
		return nil, engine.NewDependencyUnavailable("ephemeris", err)
	}

	completedFraction := moonNakshatra.DegreesInNakshatra / (360.0 / 27.0)
	timeline := vimshottari.BuildTimeline(birthMoment, moonNakshatra.LordOf, completedFraction)

	vCtx := VimshottariContext{MahadashaLord: moonNakshatra.LordOf}
	if maha, ok := vimshottari.FindCurrentMahadasha(timeline, target); ok {
		vCtx.MahadashaLord = maha.Planet
		vCtx.MahadashaRemainingYears = maha.EndDate.Sub(target).Hours() / 24 / 365.25
		if antar, ok := vimshottari.FindCurrentAntardasha(maha, target); ok {
			vCtx.AntardashaLord = antar.Planet
		}
	}
	vCtx.LifeLessonTheme = lifeLessonTheme(vCtx.MahadashaLord)
	vCtx.KarmicFocus = karmicFocus(vCtx.MahadashaLord)

	panchanga, err := calculatePanchanga(e.Ephemeris, target)
	if err != nil {
		return nil, engine.NewDependencyUnavailable("ephemeris", err)
	}
	tcm := tcmStateAt(target)
	synthesis := synthesizeElements(panchanga.DominantElement, tcm.Element)

	resonanceFactors := make([]float64, 0, 3)
	switch vCtx.MahadashaLord {
	case "Jupiter", "Venus", "Mercury":
		resonanceFactors = append(resonanceFactors, 0.8)
	default:
		resonanceFactors = append(resonanceFactors, 0.6)
	}
	if hour := target.Hour(); hour >= 6 && hour <= 18 {
		resonanceFactors = append(resonanceFactors, 0.7)
	} else {
		resonanceFactors = append(resonanceFactors, 0.5)
	}
	if panchanga.DominantElement == tcm.Element {
		resonanceFactors = append(resonanceFactors, 0.9)
	} else {
		resonanceFactors = append(resonanceFactors, 0.6)
	}
	resonanceSum := 0.0
	for _, f := range resonanceFactors {
		resonanceSum += f
	}
	personalResonance := resonanceSum / float64(len(resonanceFactors))

	optimalPractices := append([]string{}, synthesis.RecommendedPractices...)
	if len(tcm.OptimalActivities) >= 2 {
		optimalPractices = append(optimalPractices, tcm.OptimalActivities[:2]...)
	}

	optimization := ConsciousnessOptimization{
		PrimaryFocus: fmt.Sprintf("%s through %s element mastery", vCtx.LifeLessonTheme, tcm.Element),
		SecondaryFocuses: []string{
			fmt.Sprintf("Harmonizing %s-%s energies", panchanga.DominantElement, tcm.Element),
			fmt.Sprintf("Optimizing %s function", tcm.PrimaryOrgan),
			"Integrating cosmic and bodily rhythms",
		},
		OptimalPractices:  optimalPractices,
		TimingGuidance:    fmt.Sprintf("Best practiced during the %s phase of %s time", tcm.EnergyDirection, tcm.PrimaryOrgan),
		EnergyManagement:  fmt.Sprintf("Work with %s while supporting the %s element", strings.ToLower(panchanga.EnergyQuality), tcm.Element),
		IntegrationMethod: "Combine daily practices with moment-by-moment awareness of energy shifts",
	}

	out := &Output{
		VimshottariContext:        vCtx,
		Panchanga:                 panchanga,
		TCMOrganState:             tcm,
		ElementalSynthesis:        synthesis,
		ConsciousnessOptimization: optimization,
		PersonalResonanceScore:    personalResonance,
		OptimalEnergyWindow:       personalResonance > 0.7,
	}

	if in.IncludePredictions {
		out.UpcomingWindows = upcomingWindows(e.Ephemeris, target, in.PredictionHours)
	}

	return out, nil
}

func upcomingWindows(eph astro.Ephemeris, target time.Time, predictionHours int) []OptimizationWindow {
	var windows []OptimizationWindow
	for hoursAhead := 2; hoursAhead < predictionHours; hoursAhead += 4 {
		future := target.Add(time.Duration(hoursAhead) * time.Hour)
		futureTCM := tcmStateAt(future)
		futurePanchanga, err := calculatePanchanga(eph, future)
		if err != nil {
			continue
		}
		potency := windowPotency(futureTCM, futurePanchanga)
		if potency <= 0.6 {
			continue
		}
		recommended := futureTCM.OptimalActivities
		if len(recommended) > 3 {
			recommended = recommended[:3]
		}
		windows = append(windows, OptimizationWindow{
			StartTime:             future,
			EndTime:               future.Add(2 * time.Hour),
			OpportunityType:       fmt.Sprintf("%s Element Optimization", futureTCM.Element),
			EnergyQuality:         fmt.Sprintf("%s %s", futureTCM.EnergyDirection, futureTCM.PrimaryOrgan),
			RecommendedActivities: recommended,
			PotencyScore:          potency,
		})
	}
	sort.Slice(windows, func(i, j int) bool { return windows[i].PotencyScore > windows[j].PotencyScore })
	if len(windows) > 5 {
		windows = windows[:5]
	}
	return windows
}

func (e *Engine) Interpret(raw engine.RawResult, input engine.ValidatedInput) (any, error) {
	out := raw.(*Output)

	var b strings.Builder
	fmt.Fprintf(&b, "Mahadasha: %s — %s\n", out.VimshottariContext.MahadashaLord, out.VimshottariContext.LifeLessonTheme)
	fmt.Fprintf(&b, "Panchanga: %s %s, %s nakshatra, %s yoga, %s karana\n",
		out.Panchanga.Paksha, out.Panchanga.Tithi, out.Panchanga.Nakshatra.Name, out.Panchanga.Yoga, out.Panchanga.Karana)
	fmt.Fprintf(&b, "TCM: %s (%s) is active, energy %s\n", out.TCMOrganState.PrimaryOrgan, out.TCMOrganState.Element, out.TCMOrganState.EnergyDirection)
	fmt.Fprintf(&b, "Elemental synthesis: %s (%s)\n", out.ElementalSynthesis.SynthesisQuality, out.TCMOrganState.Element)
	fmt.Fprintf(&b, "Personal resonance: %.2f\n", out.PersonalResonanceScore)
	fmt.Fprintf(&b, "%s\n", out.ConsciousnessOptimization.PrimaryFocus)
	return b.String(), nil
}

func (e *Engine) Recommendations(raw engine.RawResult, input engine.ValidatedInput) []string {
	out := raw.(*Output)
	recs := append([]string{out.ConsciousnessOptimization.TimingGuidance}, out.ConsciousnessOptimization.OptimalPractices...)
	return recs
}

func (e *Engine) RealityPatches(raw engine.RawResult, input engine.ValidatedInput) []string {
	return nil
}

func (e *Engine) ArchetypalThemes(raw engine.RawResult, input engine.ValidatedInput) []string {
	out := raw.(*Output)
	return []string{fmt.Sprintf("dasha_%s", out.VimshottariContext.MahadashaLord), fmt.Sprintf("organ_%s", out.TCMOrganState.PrimaryOrgan)}
}

func (e *Engine) Confidence(raw engine.RawResult, input engine.ValidatedInput) float64 {
	return 0.92
}
