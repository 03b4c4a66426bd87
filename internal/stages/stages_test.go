package stages

import (
	"context"
	"time"

	"tripgenie/internal/models/trip_models"
	"tripgenie/internal/pipeline"
	"tripgenie/internal/providers"
	"tripgenie/pkg/config"
)

type fakeGeo struct {
	resolve      func(ctx context.Context, text string) (*trip_models.GeoLocation, error)
	search       func(ctx context.Context, query string, near trip_models.GeoLocation) ([]trip_models.PlaceCandidate, error)
	autocomplete func(ctx context.Context, query string) ([]providers.Suggestion, error)
}

func (f *fakeGeo) Resolve(ctx context.Context, text string) (*trip_models.GeoLocation, error) {
	return f.resolve(ctx, text)
}

func (f *fakeGeo) Search(ctx context.Context, query string, near trip_models.GeoLocation) ([]trip_models.PlaceCandidate, error) {
	return f.search(ctx, query, near)
}

func (f *fakeGeo) Autocomplete(ctx context.Context, query string) ([]providers.Suggestion, error) {
	if f.autocomplete == nil {
		return nil, nil
	}
	return f.autocomplete(ctx, query)
}

func (f *fakeGeo) Configured() bool { return true }

type fakeWeather struct {
	forecast func(ctx context.Context, loc trip_models.GeoLocation, start time.Time, days int) ([]trip_models.WeatherDay, error)
}

func (f *fakeWeather) Forecast(ctx context.Context, loc trip_models.GeoLocation, start time.Time, days int) ([]trip_models.WeatherDay, error) {
	return f.forecast(ctx, loc, start, days)
}

func (f *fakeWeather) Configured() bool { return true }

type fakeLLM struct {
	complete func(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

func (f *fakeLLM) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return f.complete(ctx, systemPrompt, userPrompt)
}

func (f *fakeLLM) Configured() bool { return true }

func testSettings() *config.Settings {
	return &config.Settings{
		MaxSearchQueries:        5,
		MaxResultsPerQuery:      10,
		MaxTotalPlaces:          60,
		MaxPlacesPerDay:         5,
		MaxTravelDistanceKm:     200,
		RankingRelevanceWeight:  0.6,
		RankingPopularityWeight: 0.4,
		MaxGenerativeAttempts:   3,
	}
}

func kyoto() *trip_models.GeoLocation {
	return &trip_models.GeoLocation{
		Name:      "Kyoto",
		Latitude:  35.0116,
		Longitude: 135.7681,
		PlaceID:   "kyoto-1",
	}
}

// placeAt builds a candidate offset roughly deltaKm north of the destination.
// One degree of latitude spans ~111 km.
func placeAt(name string, deltaKm, rating float64) trip_models.PlaceCandidate {
	return trip_models.PlaceCandidate{
		Name:   name,
		Rating: rating,
		Location: trip_models.GeoLocation{
			Name:      name,
			Latitude:  35.0116 + deltaKm/111.0,
			Longitude: 135.7681,
			PlaceID:   "place-" + name,
		},
	}
}

func baseContext(durationDays int, style trip_models.TravelStyle) pipeline.Context {
	return pipeline.Context{
		Preferences: trip_models.Preferences{
			Destination:  "Kyoto",
			DurationDays: durationDays,
			Interests:    []string{"culture", "food"},
			Budget:       trip_models.BudgetMedium,
			TravelStyle:  style,
			StartDate:    "2026-09-06",
		},
		Destination: kyoto(),
	}
}
