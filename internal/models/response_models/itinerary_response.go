package response_models

import (
	"tripgenie/internal/models/trip_models"
	"tripgenie/internal/pipeline"
)

// GenerateItineraryResponse is the success body of itinerary generation:
// the complete formatted itinerary plus run diagnostics.
type GenerateItineraryResponse struct {
	Itinerary trip_models.Itinerary `json:"itinerary"`
	Metadata  pipeline.RunMetadata  `json:"metadata"`
}

func NewGenerateItineraryResponse(result *pipeline.Result) GenerateItineraryResponse {
	return GenerateItineraryResponse{
		Itinerary: result.Itinerary,
		Metadata:  result.Metadata,
	}
}
