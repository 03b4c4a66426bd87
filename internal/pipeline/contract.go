// Package pipeline contains the itinerary generation core: the stage
// contract, the sequential coordinator, bounded retry for generative stages
// and the single-flight admission gate.
package pipeline

import (
	"context"
	"encoding/json"

	"tripgenie/internal/models/trip_models"
	"tripgenie/internal/schema"
)

// StageKind classifies how a stage produces its output. Only generative
// stages are eligible for re-prompt retry.
type StageKind string

const (
	KindDeterministic StageKind = "deterministic"
	KindAPIDriven     StageKind = "api-driven"
	KindComputational StageKind = "computational"
	KindGenerative    StageKind = "generative"
)

// Context is the evolving payload threaded through the stage chain. It is
// passed and returned by value: a stage works on its own copy and can never
// mutate what an earlier stage observed.
type Context struct {
	Preferences trip_models.Preferences      `json:"preferences"`
	Destination *trip_models.GeoLocation     `json:"destination_location,omitempty"`
	Origin      *trip_models.GeoLocation     `json:"origin_location,omitempty"`
	Places      []trip_models.PlaceCandidate `json:"places,omitempty"`
	Weather     []trip_models.WeatherDay     `json:"weather_forecast,omitempty"`
	Ranked      []trip_models.RankedPlace    `json:"ranked_places,omitempty"`
	Itinerary   *trip_models.Itinerary       `json:"itinerary,omitempty"`

	// RetryFeedback carries the previous attempt's validation error into a
	// generative re-prompt. Never serialized across stage boundaries.
	RetryFeedback string `json:"-"`

	// Degraded collects locally recovered conditions (weather unavailable,
	// rating-based ranking fallback). Reported in run metadata, never fatal.
	Degraded []string `json:"-"`
}

// Payload renders the context as the generic key/value form the schema
// validator checks at every stage boundary.
func (c Context) Payload() map[string]any {
	raw, err := json.Marshal(c)
	if err != nil {
		return map[string]any{}
	}
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return map[string]any{}
	}
	return payload
}

// Stage is one unit of the fixed pipeline. Run must treat its input as
// read-only history: it returns a new Context extending what it was given.
type Stage interface {
	Name() string
	Kind() StageKind

	// OutputSchema declares the only channel later stages may rely on. The
	// coordinator validates every stage's output against it before handing
	// the context onward.
	OutputSchema() schema.Schema

	Run(ctx context.Context, in Context) (Context, error)
}

// Fallbacker is implemented by generative stages that can produce a
// deterministic substitute once their retry budget is exhausted.
type Fallbacker interface {
	Fallback(ctx context.Context, in Context) (Context, error)
}
