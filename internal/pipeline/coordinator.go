package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"tripgenie/internal/models/trip_models"
	"tripgenie/internal/schema"
	"tripgenie/pkg/utils"
)

// StageMetadata is the per-stage diagnostics block of a run.
type StageMetadata struct {
	Name       string    `json:"name"`
	Kind       StageKind `json:"kind"`
	DurationMs int64     `json:"duration_ms"`
	Attempts   int       `json:"attempts"`
	Outcome    Outcome   `json:"outcome"`
}

// RunMetadata aggregates timing, retry and degraded-mode information for one
// pipeline run.
type RunMetadata struct {
	Stages          []StageMetadata `json:"stages"`
	TotalDurationMs int64           `json:"total_duration_ms"`
	Degraded        []string        `json:"degraded,omitempty"`
}

// Result is the success payload of a run.
type Result struct {
	Itinerary trip_models.Itinerary `json:"itinerary"`
	Metadata  RunMetadata           `json:"metadata"`
}

// Coordinator owns the ordered stage list and executes it sequentially,
// threading the evolving context and validating every stage boundary. It is
// stateless across runs: every Run builds its state from scratch.
type Coordinator struct {
	stages  []Stage
	retry   RetryPolicy
	timeout time.Duration
}

func NewCoordinator(stages []Stage, retry RetryPolicy, timeout time.Duration) *Coordinator {
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	return &Coordinator{stages: stages, retry: retry, timeout: timeout}
}

// PreferencesSchema is the structural contract of the inbound request.
func PreferencesSchema() schema.Schema {
	return schema.Schema{Fields: []schema.Field{
		{Path: "destination", Kind: schema.String, Required: true},
		{Path: "duration_days", Kind: schema.Int, Required: true, Min: schema.Bound(1), Max: schema.Bound(30)},
		{Path: "interests", Kind: schema.List, Required: true, MinLen: 1},
		{Path: "budget", Kind: schema.Enum, Required: true, Enum: trip_models.Budgets},
		{Path: "travel_style", Kind: schema.Enum, Required: true, Enum: trip_models.TravelStyles},
	}}
}

// Run executes the full stage chain for one preferences payload. It returns
// either a complete formatted itinerary with metadata, or a single *Error;
// partial itineraries are never returned.
func (c *Coordinator) Run(parent context.Context, prefs trip_models.Preferences) (*Result, error) {
	start := time.Now()

	prefs = prefs.Normalized()
	if serr := schema.Validate("preferences", preferencesPayload(prefs), PreferencesSchema()); serr != nil {
		return nil, &Error{Kind: FailureInvalidInput, Message: serr.Error()}
	}

	ctx, cancel := context.WithTimeout(parent, c.timeout)
	defer cancel()

	run := Context{Preferences: prefs}
	meta := RunMetadata{Stages: make([]StageMetadata, 0, len(c.stages))}

	for _, st := range c.stages {
		stageStart := time.Now()
		log.Printf("Running stage: %s", st.Name())

		var (
			out      Context
			attempts int
			outcome  Outcome
			err      error
		)

		if st.Kind() == KindGenerative {
			out, attempts, outcome, err = c.retry.Execute(ctx, st, run)
		} else {
			attempts = 1
			out, err = st.Run(ctx, run)
			if err == nil {
				if serr := schema.Validate(st.Name(), out.Payload(), st.OutputSchema()); serr != nil {
					err = serr
				}
			}
			if err == nil {
				outcome = OutcomeSucceeded
			} else {
				outcome = OutcomeExhausted
			}
		}

		meta.Stages = append(meta.Stages, StageMetadata{
			Name:       st.Name(),
			Kind:       st.Kind(),
			DurationMs: time.Since(stageStart).Milliseconds(),
			Attempts:   attempts,
			Outcome:    outcome,
		})

		if err != nil {
			meta.TotalDurationMs = time.Since(start).Milliseconds()
			ferr := classify(ctx, st.Name(), err)
			log.Printf("Pipeline failed at stage %s: %v", st.Name(), ferr)
			return nil, ferr
		}

		run = out
	}

	if run.Itinerary == nil {
		return nil, NewError("", FailureGenerationFailed, "pipeline completed without an itinerary")
	}

	meta.TotalDurationMs = time.Since(start).Milliseconds()
	meta.Degraded = run.Degraded
	log.Printf("Pipeline completed in %dms (%d stages)", meta.TotalDurationMs, len(meta.Stages))

	return &Result{Itinerary: *run.Itinerary, Metadata: meta}, nil
}

// classify maps a stage failure onto the run-level taxonomy.
func classify(ctx context.Context, stage string, err error) *Error {
	var perr *Error
	if errors.As(err, &perr) {
		if perr.Stage == "" {
			perr.Stage = stage
		}
		return perr
	}

	if ctx.Err() == context.DeadlineExceeded || errors.Is(err, context.DeadlineExceeded) {
		return NewError(stage, FailureTimeout, "run deadline elapsed")
	}

	switch {
	case errors.Is(err, utils.ErrLocationNotFound), errors.Is(err, utils.ErrNoPlacesFound):
		return NewError(stage, FailureNoResults, "%v", err)
	case errors.Is(err, utils.ErrProviderUnavailable):
		return NewError(stage, FailureUpstreamUnavailable, "%v", err)
	case errors.Is(err, utils.ErrInvalidInput):
		return NewError(stage, FailureInvalidInput, "%v", err)
	}

	var serr *schema.Error
	if errors.As(err, &serr) {
		return NewError(stage, FailureGenerationFailed, "%v", serr)
	}

	return NewError(stage, FailureGenerationFailed, "%v", err)
}

func preferencesPayload(prefs trip_models.Preferences) map[string]any {
	raw, err := json.Marshal(prefs)
	if err != nil {
		return map[string]any{}
	}
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return map[string]any{}
	}
	return payload
}
