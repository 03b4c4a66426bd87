package providers

import (
	"context"
	"fmt"
	"strings"

	"googlemaps.github.io/maps"

	"tripgenie/internal/models/trip_models"
	"tripgenie/pkg/utils"
)

const searchRadiusMeters = 50000

// GoogleMapsProvider implements GeoProvider on top of the Google Maps Platform
// (Geocoding, Places Text Search and Autocomplete APIs).
type GoogleMapsProvider struct {
	client *maps.Client
	apiKey string
}

func NewGoogleMapsProvider(apiKey string) (*GoogleMapsProvider, error) {
	if apiKey == "" {
		// Still constructed so the health endpoint can report the gap.
		return &GoogleMapsProvider{}, nil
	}
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GoogleMapsProvider{client: client, apiKey: apiKey}, nil
}

func (g *GoogleMapsProvider) Configured() bool {
	return g.client != nil
}

func (g *GoogleMapsProvider) Resolve(ctx context.Context, text string) (*trip_models.GeoLocation, error) {
	if g.client == nil {
		return nil, fmt.Errorf("%w: maps API key not configured", utils.ErrProviderUnavailable)
	}

	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: text})
	if err != nil {
		return nil, fmt.Errorf("%w: geocode: %v", utils.ErrProviderUnavailable, err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: %q", utils.ErrLocationNotFound, text)
	}

	top := results[0]
	return &trip_models.GeoLocation{
		Name:      top.FormattedAddress,
		Address:   top.FormattedAddress,
		Latitude:  top.Geometry.Location.Lat,
		Longitude: top.Geometry.Location.Lng,
		PlaceID:   top.PlaceID,
	}, nil
}

func (g *GoogleMapsProvider) Search(ctx context.Context, query string, near trip_models.GeoLocation) ([]trip_models.PlaceCandidate, error) {
	if g.client == nil {
		return nil, fmt.Errorf("%w: maps API key not configured", utils.ErrProviderUnavailable)
	}

	resp, err := g.client.TextSearch(ctx, &maps.TextSearchRequest{
		Query:    query,
		Location: &maps.LatLng{Lat: near.Latitude, Lng: near.Longitude},
		Radius:   searchRadiusMeters,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: text search: %v", utils.ErrProviderUnavailable, err)
	}

	candidates := make([]trip_models.PlaceCandidate, 0, len(resp.Results))
	for _, result := range resp.Results {
		candidates = append(candidates, trip_models.PlaceCandidate{
			Name: result.Name,
			Location: trip_models.GeoLocation{
				Name:      result.Name,
				Address:   result.FormattedAddress,
				Latitude:  result.Geometry.Location.Lat,
				Longitude: result.Geometry.Location.Lng,
				PlaceID:   result.PlaceID,
			},
			Category:    joinTypes(result.Types),
			Rating:      float64(result.Rating),
			PriceLevel:  result.PriceLevel,
			Description: result.Vicinity,
		})
	}
	return candidates, nil
}

func (g *GoogleMapsProvider) Autocomplete(ctx context.Context, query string) ([]Suggestion, error) {
	if g.client == nil {
		return nil, fmt.Errorf("%w: maps API key not configured", utils.ErrProviderUnavailable)
	}

	resp, err := g.client.PlaceAutocomplete(ctx, &maps.PlaceAutocompleteRequest{
		Input: query,
		Types: maps.AutocompletePlaceTypeCities,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: autocomplete: %v", utils.ErrProviderUnavailable, err)
	}

	suggestions := make([]Suggestion, 0, len(resp.Predictions))
	for _, prediction := range resp.Predictions {
		suggestions = append(suggestions, Suggestion{
			Description:   prediction.Description,
			PlaceID:       prediction.PlaceID,
			MainText:      prediction.StructuredFormatting.MainText,
			SecondaryText: prediction.StructuredFormatting.SecondaryText,
		})
	}
	return suggestions, nil
}

func joinTypes(types []string) string {
	if len(types) > 3 {
		types = types[:3]
	}
	return strings.Join(types, ", ")
}
