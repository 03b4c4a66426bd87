package trip_models

// Activity is one scheduled entry inside an itinerary day.
type Activity struct {
	Time          string         `json:"time"` // HH:MM
	Place         PlaceCandidate `json:"place"`
	DurationHours float64        `json:"duration_hours"`
	ActivityType  string         `json:"activity_type"`
	Notes         string         `json:"notes,omitempty"`
	EstimatedCost *float64       `json:"estimated_cost,omitempty"`
}

// ItineraryDay holds the ordered activities of one trip day. Day numbers are
// 1-based and contiguous across the itinerary.
type ItineraryDay struct {
	DayNumber       int         `json:"day_number"`
	Date            string      `json:"date"` // YYYY-MM-DD
	Weather         *WeatherDay `json:"weather,omitempty"`
	Activities      []Activity  `json:"activities"`
	TotalDistanceKm float64     `json:"total_distance_km"`
	EstimatedCost   *float64    `json:"estimated_cost,omitempty"`
}

// Itinerary is the full trip plan. After the planning stage the day count and
// total activity count are fixed; later stages only annotate.
type Itinerary struct {
	Destination        string         `json:"destination"`
	Origin             string         `json:"origin,omitempty"`
	StartDate          string         `json:"start_date"`
	EndDate            string         `json:"end_date"`
	Days               []ItineraryDay `json:"days"`
	TotalDistanceKm    float64        `json:"total_distance_km"`
	EstimatedTotalCost *float64       `json:"estimated_total_cost,omitempty"`
	Preferences        Preferences    `json:"preferences"`
}

// ActivityCount returns the total number of activities across all days.
func (i *Itinerary) ActivityCount() int {
	count := 0
	for _, day := range i.Days {
		count += len(day.Activities)
	}
	return count
}
