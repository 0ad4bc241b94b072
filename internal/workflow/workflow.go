// Package workflow implements the eight named recipes of §4.7: a workflow
// is a fixed engine list plus a fan-out mode, composed on top of the
// orchestrator and the synthesiser. The manager itself holds no engine
// logic — it only decides which engines to run, how, and what to hand the
// synthesiser afterward.
package workflow

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/witnessos/engine-core/internal/engine"
	"github.com/witnessos/engine-core/internal/orchestrator"
	"github.com/witnessos/engine-core/internal/synthesis"
)

// Definition is one named workflow's recipe.
type Definition struct {
	Engines   []string
	Mode      orchestrator.Mode
	Overrides map[string]map[string]any
}

// Manager holds the fixed set of workflow definitions and runs them against
// an orchestrator.
type Manager struct {
	orch        *orchestrator.Orchestrator
	definitions map[string]Definition
}

// New builds a Manager with the eight named workflows of §4.7 pre-registered.
func New(orch *orchestrator.Orchestrator) *Manager {
	return &Manager{orch: orch, definitions: defaultDefinitions()}
}

func defaultDefinitions() map[string]Definition {
	return map[string]Definition{
		"complete_natal": {
			Engines: []string{"numerology", "biorhythm", "human_design", "vimshottari", "gene_keys", "sacred_geometry"},
			Mode:    orchestrator.ModeParallel,
		},
		"relationship_compatibility": {
			Engines: []string{"numerology", "human_design", "vimshottari"},
			Mode:    orchestrator.ModeParallel,
		},
		"career_guidance": {
			Engines: []string{"numerology", "human_design", "enneagram"},
			Mode:    orchestrator.ModeParallel,
		},
		"spiritual_development": {
			Engines: []string{"gene_keys", "enneagram", "iching", "tarot"},
			Mode:    orchestrator.ModeSequential,
		},
		"life_transition": {
			Engines: []string{"vimshottari", "iching", "biorhythm"},
			Mode:    orchestrator.ModeSequential,
		},
		"daily_guidance": {
			Engines: []string{"biorhythm", "tarot", "vedicclock_tcm"},
			Mode:    orchestrator.ModeParallel,
		},
		"shadow_work": {
			Engines: []string{"gene_keys", "enneagram", "iching"},
			Mode:    orchestrator.ModeSequential,
		},
		"manifestation_timing": {
			Engines: []string{"vimshottari", "vedicclock_tcm", "sacred_geometry", "sigil_forge"},
			Mode:    orchestrator.ModeSequential,
		},
	}
}

// Names returns the registered workflow names.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.definitions))
	for name := range m.definitions {
		names = append(names, name)
	}
	return names
}

// Result is the composed response of one workflow run.
type Result struct {
	WorkflowName     string                             `json:"workflow_name"`
	Input            json.RawMessage                    `json:"input"`
	EngineResults    map[string]*engine.StorageEnvelope  `json:"engine_results"`
	EngineErrors     map[string]string                   `json:"engine_errors,omitempty"`
	Synthesis        *synthesis.Document                 `json:"synthesis"`
	WorkflowInsights []string                            `json:"workflow_insights"`
	Recommendations  []string                            `json:"recommendations"`
}

// Run validates the workflow name, fans the recipe's engines out through
// the orchestrator, and folds the results through the synthesiser.
func (m *Manager) Run(ctx context.Context, workflowName string, rawInput json.RawMessage) (*Result, error) {
	def, ok := m.definitions[workflowName]
	if !ok {
		return nil, engine.NewUnknownWorkflow(workflowName)
	}

	requests := make([]orchestrator.Request, 0, len(def.Engines))
	for _, engineName := range def.Engines {
		merged, err := mergeOverrides(rawInput, def.Overrides[engineName])
		if err != nil {
			return nil, engine.NewInvalidInput(engineName, err)
		}
		requests = append(requests, orchestrator.Request{EngineName: engineName, RawInput: merged})
	}

	raw := m.orch.RunMany(ctx, requests, def.Mode)

	engineResults := make(map[string]*engine.StorageEnvelope, len(raw))
	engineErrors := make(map[string]string)
	for name, res := range raw {
		if res.Err != nil {
			engineErrors[name] = res.Err.Error()
			continue
		}
		engineResults[name] = res.Output
	}

	doc, err := synthesis.Analyze(engineResults)
	if err != nil {
		return nil, engine.NewInternalError("workflow:"+workflowName, "", err)
	}

	recommendations := aggregateRecommendations(engineResults, doc)
	insights := workflowInsights(workflowName, engineResults, engineErrors)

	result := &Result{
		WorkflowName:     workflowName,
		Input:            rawInput,
		EngineResults:    engineResults,
		Synthesis:        doc,
		WorkflowInsights: insights,
		Recommendations:  recommendations,
	}
	if len(engineErrors) > 0 {
		result.EngineErrors = engineErrors
	}
	return result, nil
}

func mergeOverrides(rawInput json.RawMessage, overrides map[string]any) (json.RawMessage, error) {
	if len(overrides) == 0 {
		return rawInput, nil
	}
	var base map[string]any
	if len(rawInput) > 0 {
		if err := json.Unmarshal(rawInput, &base); err != nil {
			return nil, fmt.Errorf("decode workflow input: %w", err)
		}
	}
	if base == nil {
		base = map[string]any{}
	}
	for k, v := range overrides {
		base[k] = v
	}
	return json.Marshal(base)
}

func aggregateRecommendations(results map[string]*engine.StorageEnvelope, doc *synthesis.Document) []string {
	var recs []string
	for _, name := range sortedEngineNames(results) {
		recs = append(recs, results[name].Recommendations...)
	}
	recs = append(recs, doc.RealityPatches...)
	return recs
}

func workflowInsights(workflowName string, results map[string]*engine.StorageEnvelope, errs map[string]string) []string {
	insights := []string{fmt.Sprintf("%s drew on %d engine(s) successfully", workflowName, len(results))}
	for name := range errs {
		insights = append(insights, fmt.Sprintf("%s could not complete and was omitted from synthesis", name))
	}
	return insights
}

func sortedEngineNames(results map[string]*engine.StorageEnvelope) []string {
	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
