package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/witnessos/engine-core/internal/config"
	"github.com/witnessos/engine-core/internal/engine"
	"github.com/witnessos/engine-core/internal/storage"
	"github.com/witnessos/engine-core/pkg/cache"
	"github.com/witnessos/engine-core/pkg/logger"
)

type stubInput struct {
	engine.BaseInput
	Value int `json:"value"`
}

type stubEngine struct {
	name           string
	consent        bool
	calculateError error
	calcCalled     bool
}

func (s *stubEngine) Name() string               { return s.name }
func (s *stubEngine) Description() string        { return "stub engine for orchestrator tests" }
func (s *stubEngine) InputSchema() engine.Schema  { return engine.Schema{} }
func (s *stubEngine) OutputSchema() engine.Schema { return engine.Schema{} }
func (s *stubEngine) RequiresConsent() bool       { return s.consent }

func (s *stubEngine) DecodeInput(raw json.RawMessage) (engine.ValidatedInput, error) {
	var in stubInput
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		return nil, engine.NewInvalidInput("value", err)
	}
	return &in, nil
}

func (s *stubEngine) BaseInputOf(input engine.ValidatedInput) engine.BaseInput {
	return input.(*stubInput).BaseInput
}

func (s *stubEngine) Calculate(input engine.ValidatedInput) (engine.RawResult, error) {
	s.calcCalled = true
	if s.calculateError != nil {
		return nil, s.calculateError
	}
	in := input.(*stubInput)
	return map[string]int{"doubled": in.Value * 2}, nil
}

func (s *stubEngine) Interpret(raw engine.RawResult, input engine.ValidatedInput) (any, error) {
	return "stub interpretation", nil
}

func newOrchestrator(t *testing.T, engines ...engine.Engine) *Orchestrator {
	t.Helper()
	reg := engine.NewRegistry()
	for _, e := range engines {
		reg.Register(e)
	}
	log := logger.New("error")
	rc := storage.NewResultCache(cache.NewNoopCache(log, time.Hour), log, time.Hour)
	cfg := config.OrchestratorConfig{RunDeadline: 2 * time.Second, PersistenceDeadline: time.Second}
	retention := config.RetentionConfig{DefaultDays: 90, MaxDays: 365, BiometricMaxDays: 30}
	return New(reg, rc, nil, log, cfg, retention)
}

func TestRun_UnknownEngineFails(t *testing.T) {
	o := newOrchestrator(t)
	_, err := o.Run(context.Background(), "missing", json.RawMessage(`{}`))
	require.Error(t, err)
	eerr, ok := err.(*engine.Error)
	require.True(t, ok)
	assert.Equal(t, engine.KindUnknownEngine, eerr.Kind)
}

func TestRun_ConsentRequiredFails(t *testing.T) {
	stub := &stubEngine{name: "needs_consent", consent: true}
	o := newOrchestrator(t, stub)
	_, err := o.Run(context.Background(), "needs_consent", json.RawMessage(`{"value":1}`))
	require.Error(t, err)
	eerr, ok := err.(*engine.Error)
	require.True(t, ok)
	assert.Equal(t, engine.KindConsentRequired, eerr.Kind)
	assert.False(t, stub.calcCalled, "Calculate must never run when consent is withheld")
}

func TestRun_ProducesEnvelopeWithReadingID(t *testing.T) {
	o := newOrchestrator(t, &stubEngine{name: "doubler"})
	env, err := o.Run(context.Background(), "doubler", json.RawMessage(`{"value":21}`))
	require.NoError(t, err)
	assert.NotEmpty(t, env.ReadingID)
	assert.Equal(t, "doubler", env.EngineName)
	assert.Equal(t, "stub interpretation", env.FormattedOutput)
	assert.NotNil(t, env.ExpiresAt)
}

func TestRun_SecondCallIsCacheHit(t *testing.T) {
	o := newOrchestrator(t, &stubEngine{name: "doubler"})
	first, err := o.Run(context.Background(), "doubler", json.RawMessage(`{"value":7}`))
	require.NoError(t, err)
	assert.False(t, first.StorageMetadata["cache_hit"].(bool))

	second, err := o.Run(context.Background(), "doubler", json.RawMessage(`{"value":7}`))
	require.NoError(t, err)
	assert.True(t, second.StorageMetadata["cache_hit"].(bool))
}

func TestRunMany_ParallelIsolatesFailures(t *testing.T) {
	o := newOrchestrator(t,
		&stubEngine{name: "ok"},
		&stubEngine{name: "broken", calculateError: assertError{}},
	)
	results := o.RunMany(context.Background(), []Request{
		{EngineName: "ok", RawInput: json.RawMessage(`{"value":1}`)},
		{EngineName: "broken", RawInput: json.RawMessage(`{"value":1}`)},
	}, ModeParallel)

	require.NoError(t, results["ok"].Err)
	require.Error(t, results["broken"].Err)
	eerr, ok := results["broken"].Err.(*engine.Error)
	require.True(t, ok)
	assert.Equal(t, engine.KindInternalError, eerr.Kind)
}

func TestRunMany_SequentialSharesRunContext(t *testing.T) {
	o := newOrchestrator(t, &stubEngine{name: "a"}, &stubEngine{name: "b"})
	results := o.RunMany(context.Background(), []Request{
		{EngineName: "a", RawInput: json.RawMessage(`{"value":3}`)},
		{EngineName: "b", RawInput: json.RawMessage(`{"value":4}`)},
	}, ModeSequential)

	require.NoError(t, results["a"].Err)
	require.NoError(t, results["b"].Err)
}

type assertError struct{}

func (assertError) Error() string { return "calculation failed" }
