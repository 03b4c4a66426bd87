package trip_models

// GeoLocation is a resolved coordinate pair with its normalized address.
// It is produced once by the validation stage and referenced by every later stage.
type GeoLocation struct {
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	PlaceID   string  `json:"place_id,omitempty"`
}
