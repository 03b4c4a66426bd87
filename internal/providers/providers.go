// Package providers wraps the external collaborators of the pipeline:
// geocoding/places, weather forecasts and the language model. The pipeline
// core only sees these interfaces.
package providers

import (
	"context"
	"time"

	"tripgenie/internal/models/trip_models"
)

// Suggestion is one location autocomplete entry.
type Suggestion struct {
	Description   string `json:"description"`
	PlaceID       string `json:"place_id"`
	MainText      string `json:"main_text"`
	SecondaryText string `json:"secondary_text"`
}

// GeoProvider resolves free text to coordinates and searches for places.
type GeoProvider interface {
	// Resolve geocodes free text. Returns utils.ErrLocationNotFound when the
	// text matches nothing, utils.ErrProviderUnavailable on transport faults.
	Resolve(ctx context.Context, text string) (*trip_models.GeoLocation, error)

	// Search runs a text search biased around an area. The result is finite
	// and may be empty.
	Search(ctx context.Context, query string, near trip_models.GeoLocation) ([]trip_models.PlaceCandidate, error)

	// Autocomplete returns city suggestions for a partial query.
	Autocomplete(ctx context.Context, query string) ([]Suggestion, error)

	// Configured reports whether the provider has credentials to operate.
	Configured() bool
}

// WeatherProvider returns one forecast entry per requested day starting at
// start. It may return fewer days than asked, or fail entirely; callers must
// degrade rather than abort.
type WeatherProvider interface {
	Forecast(ctx context.Context, loc trip_models.GeoLocation, start time.Time, days int) ([]trip_models.WeatherDay, error)
	Configured() bool
}

// LLMProvider produces untrusted completion text. Callers must extract and
// schema-validate any structure they need from it.
type LLMProvider interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	Configured() bool
}
