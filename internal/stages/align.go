package stages

import (
	"context"
	"fmt"

	"tripgenie/internal/models/trip_models"
	"tripgenie/internal/pipeline"
	"tripgenie/internal/schema"
)

// AlignmentChecker is the consistency gate between planning and formatting. It
// verifies the itinerary against the run's own inputs: the day grid matches
// the requested duration, every scheduled place came through the filtered
// candidate set, and no place is scheduled twice. It also fills in the per-day
// and trip distance totals from the annotated candidates.
type AlignmentChecker struct{}

func NewAlignmentChecker() *AlignmentChecker {
	return &AlignmentChecker{}
}

func (a *AlignmentChecker) Name() string             { return StageAlign }
func (a *AlignmentChecker) Kind() pipeline.StageKind { return pipeline.KindComputational }

func (a *AlignmentChecker) OutputSchema() schema.Schema {
	return schema.Schema{Fields: []schema.Field{
		{Path: "itinerary.days", Kind: schema.List, Required: true, MinLen: 1},
		{Path: "itinerary.days.*.total_distance_km", Kind: schema.Float, Required: true, Min: schema.Bound(0)},
		{Path: "itinerary.total_distance_km", Kind: schema.Float, Required: true, Min: schema.Bound(0)},
	}}
}

func (a *AlignmentChecker) Run(_ context.Context, in pipeline.Context) (pipeline.Context, error) {
	it := *in.Itinerary
	prefs := in.Preferences

	if got := len(it.Days); got != prefs.DurationDays {
		return in, pipeline.NewError(StageAlign, pipeline.FailureGenerationFailed,
			"itinerary has %d days, trip requires %d", got, prefs.DurationDays)
	}

	allowed := make(map[string]float64, len(in.Places))
	for _, p := range in.Places {
		allowed[placeKey(p)] = p.DistanceKm
	}

	scheduled := make(map[string]bool)
	days := make([]trip_models.ItineraryDay, len(it.Days))
	copy(days, it.Days)

	var total float64
	for i := range days {
		if days[i].DayNumber != i+1 {
			return in, pipeline.NewError(StageAlign, pipeline.FailureGenerationFailed,
				"day numbers are not contiguous: position %d holds day %d", i+1, days[i].DayNumber)
		}
		var dayTotal float64
		for _, act := range days[i].Activities {
			key := placeKey(act.Place)
			dist, ok := allowed[key]
			if !ok {
				return in, pipeline.NewError(StageAlign, pipeline.FailureGenerationFailed,
					"day %d schedules %q which is not among the filtered candidates", days[i].DayNumber, act.Place.Name)
			}
			if scheduled[key] {
				return in, pipeline.NewError(StageAlign, pipeline.FailureGenerationFailed,
					"place %q scheduled more than once", act.Place.Name)
			}
			scheduled[key] = true
			dayTotal += dist
		}
		days[i].TotalDistanceKm = dayTotal
		total += dayTotal
	}

	it.Days = days
	it.TotalDistanceKm = total

	out := in
	out.Itinerary = &it
	return out, nil
}

func placeKey(p trip_models.PlaceCandidate) string {
	if p.Location.PlaceID != "" {
		return p.Location.PlaceID
	}
	return fmt.Sprintf("%s@%.5f,%.5f", p.Name, p.Location.Latitude, p.Location.Longitude)
}
