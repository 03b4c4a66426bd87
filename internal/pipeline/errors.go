package pipeline

import "fmt"

// FailureKind is the run-level error taxonomy. Every failed run maps to
// exactly one kind so callers can translate it to a transport status.
type FailureKind string

const (
	FailureInvalidInput        FailureKind = "invalid_input"
	FailureUpstreamUnavailable FailureKind = "upstream_unavailable"
	FailureNoResults           FailureKind = "no_results"
	FailureGenerationFailed    FailureKind = "generation_failed"
	FailureTimeout             FailureKind = "timeout"
	FailureBusy                FailureKind = "busy"
)

// Error is the terminal failure of a pipeline run. Partial itineraries are
// never attached to it.
type Error struct {
	Stage   string      `json:"stage,omitempty"`
	Kind    FailureKind `json:"kind"`
	Message string      `json:"message"`
}

func (e *Error) Error() string {
	if e.Stage == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("stage %s: %s: %s", e.Stage, e.Kind, e.Message)
}

func NewError(stage string, kind FailureKind, format string, args ...any) *Error {
	return &Error{Stage: stage, Kind: kind, Message: fmt.Sprintf(format, args...)}
}
