package workflow

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/witnessos/engine-core/internal/config"
	"github.com/witnessos/engine-core/internal/engine"
	"github.com/witnessos/engine-core/internal/orchestrator"
	"github.com/witnessos/engine-core/internal/storage"
	"github.com/witnessos/engine-core/pkg/cache"
	"github.com/witnessos/engine-core/pkg/logger"
)

type echoInput struct {
	engine.BaseInput
	Name string `json:"name"`
}

type echoEngine struct{ name string }

func (e *echoEngine) Name() string               { return e.name }
func (e *echoEngine) Description() string        { return "echoes its input for workflow tests" }
func (e *echoEngine) InputSchema() engine.Schema  { return engine.Schema{} }
func (e *echoEngine) OutputSchema() engine.Schema { return engine.Schema{} }
func (e *echoEngine) RequiresConsent() bool       { return false }

func (e *echoEngine) DecodeInput(raw json.RawMessage) (engine.ValidatedInput, error) {
	var in echoInput
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, engine.NewInvalidInput("name", err)
	}
	return &in, nil
}

func (e *echoEngine) BaseInputOf(input engine.ValidatedInput) engine.BaseInput {
	return input.(*echoInput).BaseInput
}

func (e *echoEngine) Calculate(input engine.ValidatedInput) (engine.RawResult, error) {
	return map[string]any{"echoed": input.(*echoInput).Name}, nil
}

func (e *echoEngine) Interpret(raw engine.RawResult, input engine.ValidatedInput) (any, error) {
	return "echo result", nil
}

func newManager(t *testing.T, names ...string) *Manager {
	t.Helper()
	reg := engine.NewRegistry()
	for _, n := range names {
		reg.Register(&echoEngine{name: n})
	}
	log := logger.New("error")
	rc := storage.NewResultCache(cache.NewNoopCache(log, time.Hour), log, time.Hour)
	cfg := config.OrchestratorConfig{RunDeadline: 2 * time.Second, PersistenceDeadline: time.Second}
	retention := config.RetentionConfig{DefaultDays: 90, MaxDays: 365, BiometricMaxDays: 30}
	orch := orchestrator.New(reg, rc, nil, log, cfg, retention)
	m := New(orch)
	m.definitions = map[string]Definition{
		"test_workflow": {Engines: names, Mode: orchestrator.ModeParallel},
	}
	return m
}

func TestRun_UnknownWorkflowFails(t *testing.T) {
	m := newManager(t, "numerology")
	_, err := m.Run(context.Background(), "not_a_workflow", json.RawMessage(`{}`))
	require.Error(t, err)
	eerr, ok := err.(*engine.Error)
	require.True(t, ok)
	assert.Equal(t, engine.KindUnknownWorkflow, eerr.Kind)
}

func TestRun_ComposesEngineResultsAndSynthesis(t *testing.T) {
	m := newManager(t, "numerology", "biorhythm")
	result, err := m.Run(context.Background(), "test_workflow", json.RawMessage(`{"name":"alice"}`))
	require.NoError(t, err)

	assert.Len(t, result.EngineResults, 2)
	assert.NotNil(t, result.Synthesis)
	assert.NotEmpty(t, result.WorkflowInsights)
}

func TestRun_PartialFailureStillSynthesizesSurvivors(t *testing.T) {
	m := newManager(t, "numerology")
	m.definitions["test_workflow"] = Definition{
		Engines: []string{"numerology", "missing_engine"},
		Mode:    orchestrator.ModeParallel,
	}
	result, err := m.Run(context.Background(), "test_workflow", json.RawMessage(`{"name":"bob"}`))
	require.NoError(t, err)

	assert.Len(t, result.EngineResults, 1)
	assert.Contains(t, result.EngineErrors, "missing_engine")
}
