package trip_models

// PlaceCandidate is a discovered attraction. The candidate set only ever
// shrinks after the exploration stage.
type PlaceCandidate struct {
	Name        string      `json:"name"`
	Location    GeoLocation `json:"location"`
	Category    string      `json:"category"`
	Rating      float64     `json:"rating"`
	PriceLevel  int         `json:"price_level,omitempty"`
	Description string      `json:"description,omitempty"`

	// DistanceKm is filled by the distance filter stage: great-circle
	// distance from the destination centre.
	DistanceKm float64 `json:"distance_km"`
}

// RankedPlace is a PlaceCandidate with its ranking score (0-100 range) and
// 1-based rank position. Score ties keep the candidates' pre-ranking order.
type RankedPlace struct {
	PlaceCandidate
	Score float64 `json:"score"`
	Rank  int     `json:"rank"`
}
