package engine

import "fmt"

// Kind is the closed set of error kinds of §7.
type Kind string

const (
	KindInvalidInput          Kind = "invalid_input"
	KindUnknownEngine         Kind = "unknown_engine"
	KindUnknownWorkflow       Kind = "unknown_workflow"
	KindConsentRequired       Kind = "consent_required"
	KindTimeout               Kind = "timeout"
	KindDependencyUnavailable Kind = "dependency_unavailable"
	KindInternalError         Kind = "internal_error"
)

// Retryable reports whether a caller may usefully retry an error of this kind.
func (k Kind) Retryable() bool {
	return k == KindTimeout || k == KindDependencyUnavailable
}

// Error is the single error type used across validation, routing, and the
// orchestrator boundary (§7). Engine-internal panics/errors are wrapped into
// an InternalError carrying the engine name and a correlation id.
type Error struct {
	Kind          Kind
	Engine        string
	Field         string
	CorrelationID string
	Err           error
}

func (e *Error) Error() string {
	msg := string(e.Kind)
	if e.Engine != "" {
		msg = fmt.Sprintf("%s: engine=%s", msg, e.Engine)
	}
	if e.Field != "" {
		msg = fmt.Sprintf("%s field=%s", msg, e.Field)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

func NewInvalidInput(field string, err error) *Error {
	return &Error{Kind: KindInvalidInput, Field: field, Err: err}
}

func NewUnknownEngine(name string) *Error {
	return &Error{Kind: KindUnknownEngine, Engine: name, Err: fmt.Errorf("no engine registered under %q", name)}
}

func NewUnknownWorkflow(name string) *Error {
	return &Error{Kind: KindUnknownWorkflow, Err: fmt.Errorf("no workflow registered under %q", name)}
}

func NewConsentRequired(engineName string) *Error {
	return &Error{Kind: KindConsentRequired, Engine: engineName, Err: fmt.Errorf("data_processing_consent is required for %q", engineName)}
}

func NewTimeout(engineName string) *Error {
	return &Error{Kind: KindTimeout, Engine: engineName, Err: fmt.Errorf("engine %q did not complete within its deadline", engineName)}
}

func NewDependencyUnavailable(component string, err error) *Error {
	return &Error{Kind: KindDependencyUnavailable, Err: fmt.Errorf("%s unavailable: %w", component, err)}
}

func NewInternalError(engineName, correlationID string, err error) *Error {
	return &Error{Kind: KindInternalError, Engine: engineName, CorrelationID: correlationID, Err: err}
}

// AsEngineError unwraps err into an *Error, or wraps it as an InternalError
// if it is not already one.
func AsEngineError(engineName, correlationID string, err error) *Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}
	return NewInternalError(engineName, correlationID, err)
}
