package request_models

import "tripgenie/internal/models/trip_models"

// GenerateItineraryRequest is the inbound payload for itinerary generation.
// Only destination and duration are mandatory; everything else defaults
// during normalization.
type GenerateItineraryRequest struct {
	Destination      string   `json:"destination" binding:"required"`
	Origin           string   `json:"origin,omitempty"`
	DurationDays     int      `json:"duration_days" binding:"required"`
	Interests        []string `json:"interests,omitempty"`
	Budget           string   `json:"budget,omitempty"`
	TravelStyle      string   `json:"travel_style,omitempty"`
	StartDate        string   `json:"start_date,omitempty"` // YYYY-MM-DD
	SpecialInterests string   `json:"special_interests,omitempty"`
}

func (r *GenerateItineraryRequest) ToPreferences() trip_models.Preferences {
	return trip_models.Preferences{
		Destination:      r.Destination,
		Origin:           r.Origin,
		DurationDays:     r.DurationDays,
		Interests:        r.Interests,
		Budget:           trip_models.Budget(r.Budget),
		TravelStyle:      trip_models.TravelStyle(r.TravelStyle),
		StartDate:        r.StartDate,
		SpecialInterests: r.SpecialInterests,
	}
}
