package engine

// Schema is an immutable, declarative description of an engine's input or
// output shape: a field list with types, required flags, and constraints
// (Design Note §9: a schema the validation layer decodes against, preferred
// over open reflection). It exists primarily for the /engines listing and
// for documentation; the actual decode+reject-unknown-fields behaviour
// lives in each engine's hand-written DecodeInput, which decodes into the
// engine's own Input struct rather than reading this field list.
type Schema struct {
	Name   string       `json:"name"`
	Fields []SchemaField `json:"fields"`
}

// SchemaField describes one field of a Schema.
type SchemaField struct {
	Name        string `json:"name"`
	Type        string `json:"type"` // "string", "number", "bool", "date", "object", "array"
	Required    bool   `json:"required"`
	Description string `json:"description,omitempty"`
}

// BaseInputFields are the schema fields every engine input shares; concrete
// engines prepend these to their own field list when building InputSchema().
var BaseInputFields = []SchemaField{
	{Name: "user_id", Type: "string"},
	{Name: "session_id", Type: "string"},
	{Name: "timestamp", Type: "date"},
	{Name: "reading_id", Type: "string"},
	{Name: "cache_key", Type: "string"},
	{Name: "store_reading", Type: "bool", Description: "default true"},
	{Name: "cache_result", Type: "bool", Description: "default true"},
	{Name: "retention_days", Type: "number"},
	{Name: "data_processing_consent", Type: "bool", Description: "default false"},
	{Name: "privacy_level", Type: "string", Description: "minimal|standard|enhanced|biometric"},
}

// BaseOutputFields documents the shared output envelope fields.
var BaseOutputFields = []SchemaField{
	{Name: "engine_name", Type: "string", Required: true},
	{Name: "calculation_time_seconds", Type: "number", Required: true},
	{Name: "confidence_score", Type: "number", Required: true},
	{Name: "timestamp", Type: "date", Required: true},
	{Name: "raw_data", Type: "object", Required: true},
	{Name: "formatted_output", Type: "object", Required: true},
	{Name: "recommendations", Type: "array"},
	{Name: "field_signature", Type: "string"},
	{Name: "reality_patches", Type: "array"},
	{Name: "archetypal_themes", Type: "array"},
}
