// Package engine defines the uniform engine contract (§4.1): every
// divination engine is a pure computation from validated input to a raw
// result plus a human-readable interpretation. Engines never start timers,
// manage caches, or know about storage — that is the orchestrator's job
// (§4.4).
package engine

import (
	"encoding/json"
	"time"
)

// PrivacyLevel is one of the four privacy tiers of §3.1.
type PrivacyLevel string

const (
	PrivacyMinimal   PrivacyLevel = "minimal"
	PrivacyStandard  PrivacyLevel = "standard"
	PrivacyEnhanced  PrivacyLevel = "enhanced"
	PrivacyBiometric PrivacyLevel = "biometric"
)

// BaseInput carries the fields every engine input shares (§3.1). Concrete
// engine inputs embed this struct rather than inheriting from it (Design
// Note §9: composition over inheritance).
type BaseInput struct {
	UserID                 string       `json:"user_id,omitempty"`
	SessionID              string       `json:"session_id,omitempty"`
	Timestamp              time.Time    `json:"timestamp,omitempty"`
	ReadingID              string       `json:"reading_id,omitempty"`
	CacheKey               string       `json:"cache_key,omitempty"`
	StoreReading           *bool        `json:"store_reading,omitempty"`
	CacheResult            *bool        `json:"cache_result,omitempty"`
	RetentionDays          int          `json:"retention_days,omitempty"`
	DataProcessingConsent  bool         `json:"data_processing_consent,omitempty"`
	PrivacyLevel           PrivacyLevel `json:"privacy_level,omitempty"`
}

// ShouldStore returns the effective store_reading value (default true, §3.1).
func (b BaseInput) ShouldStore() bool {
	if b.StoreReading == nil {
		return true
	}
	return *b.StoreReading
}

// ShouldCache returns the effective cache_result value (default true, §3.1).
func (b BaseInput) ShouldCache() bool {
	if b.CacheResult == nil {
		return true
	}
	return *b.CacheResult
}

// EffectivePrivacy returns the configured privacy level or "standard" when unset.
func (b BaseInput) EffectivePrivacy() PrivacyLevel {
	if b.PrivacyLevel == "" {
		return PrivacyStandard
	}
	return b.PrivacyLevel
}

// BaseOutput carries the fields every engine output shares (§3.1).
type BaseOutput struct {
	EngineName            string          `json:"engine_name"`
	CalculationTimeSeconds float64        `json:"calculation_time_seconds"`
	ConfidenceScore       float64         `json:"confidence_score"`
	Timestamp             time.Time       `json:"timestamp"`
	RawData               json.RawMessage `json:"raw_data"`
	FormattedOutput       interface{}     `json:"formatted_output"`
	Recommendations       []string        `json:"recommendations"`
	FieldSignature        string          `json:"field_signature,omitempty"`
	RealityPatches        []string        `json:"reality_patches"`
	ArchetypalThemes      []string        `json:"archetypal_themes"`
}

// StorageEnvelope wraps a BaseOutput with the storage-aware fields of §3.1.
// It is the variant returned by the orchestrator's Run method, not by the
// engine itself (Design Note §9: storage-aware outputs are an envelope
// wrapping the engine-specific variant).
type StorageEnvelope struct {
	BaseOutput

	ReadingID       string            `json:"reading_id"`
	UserID          string            `json:"user_id,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	ExpiresAt       *time.Time        `json:"expires_at,omitempty"`
	StorageMetadata map[string]any    `json:"storage_metadata"`
	KVCacheKeys     []string          `json:"kv_cache_keys"`
	D1TableRefs     []string          `json:"d1_table_refs"`
	PrivacyLevel    PrivacyLevel      `json:"privacy_level"`
}

// RawResult is the opaque value returned by Calculate and consumed by
// Interpret and the optional helpers. Each engine defines its own concrete
// type underneath this alias.
type RawResult = any

// ValidatedInput is the opaque, already-schema-validated value returned by
// the validation layer and passed to Calculate/Interpret. Each engine
// defines its own concrete type underneath this alias.
type ValidatedInput = any

// Engine is the uniform capability set every divination engine implements.
type Engine interface {
	Name() string
	Description() string
	InputSchema() Schema
	OutputSchema() Schema

	// Calculate is a pure transformation over validated input.
	Calculate(input ValidatedInput) (RawResult, error)

	// Interpret renders a deterministic, human-readable summary of raw.
	Interpret(raw RawResult, input ValidatedInput) (any, error)

	// DecodeInput decodes a raw JSON payload into this engine's
	// ValidatedInput, rejecting unknown fields (§3.1, §6).
	DecodeInput(raw json.RawMessage) (ValidatedInput, error)

	// RequiresConsent reports whether this engine refuses to run without
	// data_processing_consent = true (face reading, biofield; §4.4 step 3).
	RequiresConsent() bool

	// BaseInputOf extracts the embedded BaseInput from a ValidatedInput.
	BaseInputOf(input ValidatedInput) BaseInput
}

// HelperEngine is implemented by engines that override one or more of the
// optional assembler helpers of §4.1. Engines that don't implement this
// interface get the zero-value defaults (empty lists, confidence 1.0) from
// DefaultHelpers.
type HelperEngine interface {
	Recommendations(raw RawResult, input ValidatedInput) []string
	RealityPatches(raw RawResult, input ValidatedInput) []string
	ArchetypalThemes(raw RawResult, input ValidatedInput) []string
	Confidence(raw RawResult, input ValidatedInput) float64
}

// DefaultHelpers is embedded by engines that don't need to override every
// optional helper; it supplies the §4.1 defaults for the rest.
type DefaultHelpers struct{}

func (DefaultHelpers) Recommendations(RawResult, ValidatedInput) []string  { return nil }
func (DefaultHelpers) RealityPatches(RawResult, ValidatedInput) []string   { return nil }
func (DefaultHelpers) ArchetypalThemes(RawResult, ValidatedInput) []string { return nil }
func (DefaultHelpers) Confidence(RawResult, ValidatedInput) float64        { return 1.0 }

// Helpers resolves the four optional helpers for an engine, falling back to
// DefaultHelpers' zero values when the engine does not implement HelperEngine.
func Helpers(e Engine) HelperEngine {
	if h, ok := e.(HelperEngine); ok {
		return h
	}
	return DefaultHelpers{}
}
