package trip_models

// WeatherDay is the forecast for a single itinerary day. A day without a
// forecast simply carries no WeatherDay; it is never shared across days.
type WeatherDay struct {
	Date                string  `json:"date"` // YYYY-MM-DD
	Condition           string  `json:"condition"`
	TemperatureMax      float64 `json:"temperature_max"`
	TemperatureMin      float64 `json:"temperature_min"`
	PrecipitationChance float64 `json:"precipitation_chance"`
	Description         string  `json:"description,omitempty"`
}
