package response_models

import (
	"tripgenie/internal/models/trip_models"
	"tripgenie/internal/providers"
)

// AutocompleteResponse lists city suggestions for a partial query.
type AutocompleteResponse struct {
	Query       string                 `json:"query"`
	Suggestions []providers.Suggestion `json:"suggestions"`
}

// ValidateLocationResponse reports whether free text resolves to a real
// location, and to which coordinates when it does.
type ValidateLocationResponse struct {
	Valid    bool                     `json:"valid"`
	Location *trip_models.GeoLocation `json:"location,omitempty"`
}
