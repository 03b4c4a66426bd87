package stages

import (
	"context"
	"math"
	"strings"

	"tripgenie/internal/models/trip_models"
	"tripgenie/internal/pipeline"
	"tripgenie/internal/schema"
)

// Per-activity base cost in USD by place category, scaled by the traveller's
// budget multiplier. Ordered: categories are substrings matched against a
// comma-joined category list, and the first hit wins.
var categoryBaseCost = []struct {
	key  string
	cost float64
}{
	{"museum", 20},
	{"park", 0},
	{"gallery", 15},
	{"historic", 25},
	{"restaurant", 30},
	{"sightseeing", 10},
	{"outdoor", 5},
	{"food", 30},
}

const defaultBaseCost = 10

// Formatter is the final stage: it prices every activity from its category
// and the trip budget, and rolls the estimates up into day and trip totals.
// It never adds or removes days or activities.
type Formatter struct{}

func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string             { return StageFormat }
func (f *Formatter) Kind() pipeline.StageKind { return pipeline.KindDeterministic }

func (f *Formatter) OutputSchema() schema.Schema {
	return schema.Schema{Fields: []schema.Field{
		{Path: "itinerary.estimated_total_cost", Kind: schema.Float, Required: true, Min: schema.Bound(0)},
		{Path: "itinerary.days.*.estimated_cost", Kind: schema.Float, Required: true, Min: schema.Bound(0)},
		{Path: "itinerary.days.*.activities.*.estimated_cost", Kind: schema.Float, Required: true, Min: schema.Bound(0)},
	}}
}

func (f *Formatter) Run(_ context.Context, in pipeline.Context) (pipeline.Context, error) {
	it := *in.Itinerary
	multiplier := in.Preferences.BudgetMultiplier()

	days := make([]trip_models.ItineraryDay, len(it.Days))
	copy(days, it.Days)

	var tripTotal float64
	for i := range days {
		activities := make([]trip_models.Activity, len(days[i].Activities))
		copy(activities, days[i].Activities)

		var dayTotal float64
		for j := range activities {
			cost := round2(activityBaseCost(activities[j]) * multiplier)
			activities[j].EstimatedCost = &cost
			dayTotal += cost
		}
		dayTotal = round2(dayTotal)
		dayCost := dayTotal
		days[i].Activities = activities
		days[i].EstimatedCost = &dayCost
		tripTotal += dayTotal
	}
	tripTotal = round2(tripTotal)

	it.Days = days
	it.EstimatedTotalCost = &tripTotal

	out := in
	out.Itinerary = &it
	return out, nil
}

func activityBaseCost(a trip_models.Activity) float64 {
	category := strings.ToLower(a.Place.Category)
	for _, entry := range categoryBaseCost {
		if strings.Contains(category, entry.key) {
			return entry.cost
		}
	}
	return defaultBaseCost
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
