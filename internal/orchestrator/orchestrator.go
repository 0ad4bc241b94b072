// Package orchestrator implements the single concurrency boundary of §5:
// Run resolves one engine name against validated input and returns the
// storage-aware output; RunMany fans the same flow out across engines,
// either concurrently (parallel) or in submission order (sequential).
// Engines themselves never touch the cache, the persistence store, or a
// clock — that is entirely this package's job.
package orchestrator

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/witnessos/engine-core/internal/config"
	"github.com/witnessos/engine-core/internal/engine"
	"github.com/witnessos/engine-core/internal/monitoring"
	"github.com/witnessos/engine-core/internal/storage"
	"github.com/witnessos/engine-core/internal/storage/sqlstore"
	"github.com/witnessos/engine-core/pkg/logger"
)

// Mode selects how RunMany schedules its engines.
type Mode string

const (
	ModeParallel   Mode = "parallel"
	ModeSequential Mode = "sequential"
)

// Request pairs one engine name with its raw JSON input for RunMany.
type Request struct {
	EngineName string
	RawInput   json.RawMessage
}

// RunContext is the shared, read-only context later engines in a
// sequential RunMany may consult — currently the prior engines' outputs,
// keyed by name, in submission order.
type RunContext struct {
	mu      sync.RWMutex
	results map[string]*engine.StorageEnvelope
}

func newRunContext() *RunContext {
	return &RunContext{results: make(map[string]*engine.StorageEnvelope)}
}

// Prior returns the already-produced output for engineName, if any.
func (rc *RunContext) Prior(engineName string) (*engine.StorageEnvelope, bool) {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	env, ok := rc.results[engineName]
	return env, ok
}

func (rc *RunContext) record(engineName string, env *engine.StorageEnvelope) {
	rc.mu.Lock()
	rc.results[engineName] = env
	rc.mu.Unlock()
}

// Orchestrator ties the engine registry to the result cache and the
// persistence store.
type Orchestrator struct {
	registry   *engine.Registry
	cache      *storage.ResultCache
	store      *sqlstore.Client
	logger     logger.Logger
	runDeadline         time.Duration
	persistDeadline     time.Duration
	retentionDefaultDays int
	retentionMaxDays     int
}

// New builds an Orchestrator. store may be nil, in which case step 8's
// persistence enqueue is skipped for every request (degraded mode, §7's
// DependencyUnavailable carve-out for persistence).
func New(reg *engine.Registry, cache *storage.ResultCache, store *sqlstore.Client, log logger.Logger, cfg config.OrchestratorConfig, retention config.RetentionConfig) *Orchestrator {
	runDeadline := cfg.RunDeadline
	if runDeadline <= 0 {
		runDeadline = 30 * time.Second
	}
	persistDeadline := cfg.PersistenceDeadline
	if persistDeadline <= 0 {
		persistDeadline = 5 * time.Second
	}
	return &Orchestrator{
		registry:             reg,
		cache:                cache,
		store:                store,
		logger:               log,
		runDeadline:          runDeadline,
		persistDeadline:      persistDeadline,
		retentionDefaultDays: retention.DefaultDays,
		retentionMaxDays:     retention.MaxDays,
	}
}

// Run executes the eight-step flow of §4.4 for one engine.
func (o *Orchestrator) Run(ctx context.Context, engineName string, raw json.RawMessage) (*engine.StorageEnvelope, error) {
	return o.run(ctx, engineName, raw, nil)
}

func (o *Orchestrator) run(ctx context.Context, engineName string, raw json.RawMessage, rc *RunContext) (*engine.StorageEnvelope, error) {
	// Step 1: lookup.
	eng, ok := o.registry.Lookup(engineName)
	if !ok {
		return nil, engine.NewUnknownEngine(engineName)
	}

	// Step 2: decode.
	input, err := eng.DecodeInput(raw)
	if err != nil {
		if eerr, ok := err.(*engine.Error); ok {
			return nil, eerr
		}
		return nil, engine.NewInvalidInput("", err)
	}
	base := eng.BaseInputOf(input)

	// Step 3: consent.
	if eng.RequiresConsent() && !base.DataProcessingConsent {
		return nil, engine.NewConsentRequired(engineName)
	}

	ctx, cancel := context.WithTimeout(ctx, o.runDeadline)
	defer cancel()

	// Step 4: cache key.
	cacheKey := base.CacheKey
	if cacheKey == "" {
		cacheKey, err = storage.DeriveCacheKey(engineName, input)
		if err != nil {
			return nil, engine.NewInternalError(engineName, uuid.NewString(), err)
		}
	}

	// Step 5: cache lookup.
	if base.ShouldCache() && o.cache != nil {
		var cached engine.StorageEnvelope
		if o.cache.Get(ctx, cacheKey, &cached) {
			if cached.StorageMetadata == nil {
				cached.StorageMetadata = map[string]any{}
			}
			cached.StorageMetadata["cache_hit"] = true
			if rc != nil {
				rc.record(engineName, &cached)
			}
			return &cached, nil
		}
	}

	// Step 6: timed calculate/interpret/helpers.
	start := time.Now()
	rawResult, calcErr := eng.Calculate(input)
	if calcErr != nil {
		monitoring.RecordEngineRun(engineName, time.Since(start), false)
		if ctx.Err() == context.DeadlineExceeded {
			return nil, engine.NewTimeout(engineName)
		}
		return nil, engine.AsEngineError(engineName, uuid.NewString(), calcErr)
	}

	formatted, interpErr := eng.Interpret(rawResult, input)
	if interpErr != nil {
		monitoring.RecordEngineRun(engineName, time.Since(start), false)
		return nil, engine.AsEngineError(engineName, uuid.NewString(), interpErr)
	}

	helpers := engine.Helpers(eng)
	recommendations := helpers.Recommendations(rawResult, input)
	realityPatches := helpers.RealityPatches(rawResult, input)
	archetypalThemes := helpers.ArchetypalThemes(rawResult, input)
	confidence := helpers.Confidence(rawResult, input)
	elapsed := time.Since(start)
	monitoring.RecordEngineRun(engineName, elapsed, true)

	rawJSON, err := json.Marshal(rawResult)
	if err != nil {
		return nil, engine.NewInternalError(engineName, uuid.NewString(), err)
	}

	// Step 7: assemble.
	now := time.Now().UTC()
	readingID := base.ReadingID
	if readingID == "" {
		readingID = uuid.NewString()
	}
	privacy := base.EffectivePrivacy()
	retentionDays := base.RetentionDays
	if retentionDays <= 0 {
		retentionDays = o.retentionDefaultDays
	}
	maxDays := o.retentionMaxDays
	if privacy == engine.PrivacyBiometric && maxDays > 30 {
		maxDays = 30
	}
	if maxDays > 0 && retentionDays > maxDays {
		retentionDays = maxDays
	}
	var expiresAt *time.Time
	if retentionDays > 0 {
		t := now.Add(time.Duration(retentionDays) * 24 * time.Hour)
		expiresAt = &t
	}

	kvKeys := []string{cacheKey}
	if base.UserID != "" {
		kvKeys = append(kvKeys, storage.UserScopedKey(base.UserID, engineName, "reading", readingID))
	}

	env := &engine.StorageEnvelope{
		BaseOutput: engine.BaseOutput{
			EngineName:             engineName,
			CalculationTimeSeconds: elapsed.Seconds(),
			ConfidenceScore:        confidence,
			Timestamp:              now,
			RawData:                rawJSON,
			FormattedOutput:        formatted,
			Recommendations:        recommendations,
			RealityPatches:         realityPatches,
			ArchetypalThemes:       archetypalThemes,
		},
		ReadingID:       readingID,
		UserID:          base.UserID,
		CreatedAt:       now,
		UpdatedAt:       now,
		ExpiresAt:       expiresAt,
		StorageMetadata: map[string]any{"cache_hit": false},
		KVCacheKeys:     kvKeys,
		D1TableRefs:     []string{"engine_" + engineName + "_readings"},
		PrivacyLevel:    privacy,
	}

	if rc != nil {
		rc.record(engineName, env)
	}

	// Step 8: async cache write and persistence enqueue, decoupled from the
	// caller's deadline but still bounded by their own deadline.
	if base.ShouldCache() && o.cache != nil {
		go o.cachePut(ctx, cacheKey, env)
	}
	if base.ShouldStore() && o.store != nil {
		go o.persist(engineName, env)
	}

	return env, nil
}

func (o *Orchestrator) cachePut(ctx context.Context, cacheKey string, env *engine.StorageEnvelope) {
	putCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), o.persistDeadline)
	defer cancel()
	o.cache.Put(putCtx, cacheKey, env)
}

func (o *Orchestrator) persist(engineName string, env *engine.StorageEnvelope) {
	ctx, cancel := context.WithTimeout(context.Background(), o.persistDeadline)
	defer cancel()
	if err := o.store.Insert(ctx, env); err != nil {
		o.logger.Warn("reading persistence failed, continuing without it", "engine", engineName, "reading_id", env.ReadingID, "error", err)
	}
}

// Result is one entry of a RunMany batch: either Output or Err is set.
type Result struct {
	Output *engine.StorageEnvelope
	Err    error
}

// RunMany fans requests out according to mode. A per-engine failure never
// fails the batch; it is reported in that engine's Result.
func (o *Orchestrator) RunMany(ctx context.Context, requests []Request, mode Mode) map[string]Result {
	monitoring.RecordOrchestratorBatch(string(mode), len(requests))
	results := make(map[string]Result, len(requests))

	if mode == ModeSequential {
		rc := newRunContext()
		for _, req := range requests {
			env, err := o.run(ctx, req.EngineName, req.RawInput, rc)
			results[req.EngineName] = Result{Output: env, Err: err}
		}
		return results
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for _, req := range requests {
		req := req
		g.Go(func() error {
			env, err := o.run(gctx, req.EngineName, req.RawInput, nil)
			mu.Lock()
			results[req.EngineName] = Result{Output: env, Err: err}
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return results
}
