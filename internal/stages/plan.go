package stages

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"tripgenie/internal/models/trip_models"
	"tripgenie/internal/pipeline"
	"tripgenie/internal/providers"
	"tripgenie/internal/schema"
	"tripgenie/pkg/config"
	"tripgenie/pkg/utils"
)

const planSystemPrompt = "You are a travel planner. Reply with one JSON object and nothing else. " +
	"It must follow the schema in the user message exactly: every day present, times in 24h HH:MM, " +
	"and places referenced only by the REF numbers given."

// planDoc is the shape the model is asked to produce. Places are referenced by
// index into the prompted candidate list so the model cannot invent venues.
type planDoc struct {
	Days []struct {
		Day        int    `json:"day"`
		Activities []struct {
			Time         string `json:"time"`
			PlaceRef     int    `json:"place_ref"`
			ActivityType string `json:"activity_type"`
			Notes        string `json:"notes"`
		} `json:"activities"`
	} `json:"days"`
}

// Planner turns the ranked candidates into a day-by-day itinerary via the
// language model. The model output is strictly validated: exact day count,
// contiguous day numbers, parseable times and in-range place references.
// There is no deterministic fallback; an exhausted retry budget fails the run.
type Planner struct {
	llm providers.LLMProvider
	cfg *config.Settings
}

func NewPlanner(llm providers.LLMProvider, cfg *config.Settings) *Planner {
	return &Planner{llm: llm, cfg: cfg}
}

func (p *Planner) Name() string             { return StagePlan }
func (p *Planner) Kind() pipeline.StageKind { return pipeline.KindGenerative }

func (p *Planner) OutputSchema() schema.Schema {
	return schema.Schema{Fields: []schema.Field{
		{Path: "itinerary", Kind: schema.Object, Required: true},
		{Path: "itinerary.destination", Kind: schema.String, Required: true},
		{Path: "itinerary.start_date", Kind: schema.String, Required: true},
		{Path: "itinerary.days", Kind: schema.List, Required: true, MinLen: 1},
		{Path: "itinerary.days.*.day_number", Kind: schema.Int, Required: true, Min: schema.Bound(1)},
		{Path: "itinerary.days.*.date", Kind: schema.String, Required: true},
		{Path: "itinerary.days.*.activities", Kind: schema.List, Required: true, MinLen: 1},
		{Path: "itinerary.days.*.activities.*.time", Kind: schema.String, Required: true},
		{Path: "itinerary.days.*.activities.*.place.name", Kind: schema.String, Required: true},
	}}
}

func (p *Planner) Run(ctx context.Context, in pipeline.Context) (pipeline.Context, error) {
	prefs := in.Preferences
	days := prefs.DurationDays

	candidates := in.Ranked
	if limit := days * p.cfg.MaxPlacesPerDay; len(candidates) > limit {
		candidates = candidates[:limit]
	}

	raw, err := p.llm.Complete(ctx, planSystemPrompt, p.userPrompt(in, candidates))
	if err != nil {
		return in, err
	}

	var doc planDoc
	if err := json.Unmarshal([]byte(utils.ExtractJSON(raw)), &doc); err != nil {
		return in, fmt.Errorf("%w: plan is not valid JSON: %v", utils.ErrMalformedLLMOutput, err)
	}
	itinerary, err := p.assemble(in, candidates, doc)
	if err != nil {
		return in, err
	}

	out := in
	out.Itinerary = itinerary
	return out, nil
}

func (p *Planner) userPrompt(in pipeline.Context, candidates []trip_models.RankedPlace) string {
	prefs := in.Preferences
	var b strings.Builder
	fmt.Fprintf(&b, "Plan a %d-day trip to %s starting %s.\n", prefs.DurationDays, in.Destination.Name, prefs.StartDate)
	fmt.Fprintf(&b, "Interests: %s. Travel style: %s. Budget: %s.\n",
		strings.Join(prefs.Interests, ", "), prefs.TravelStyle, prefs.Budget)
	if prefs.SpecialInterests != "" {
		fmt.Fprintf(&b, "Special requests: %s.\n", prefs.SpecialInterests)
	}

	b.WriteString("\nAvailable places (reference by REF only):\n")
	for i, rp := range candidates {
		fmt.Fprintf(&b, "REF %d: %s | %s | rating %.1f | %.1f km from centre\n",
			i, rp.Name, rp.Category, rp.Rating, rp.DistanceKm)
	}

	if len(in.Weather) > 0 {
		b.WriteString("\nForecast:\n")
		for _, w := range in.Weather {
			fmt.Fprintf(&b, "%s: %s, %.0f%% chance of rain\n", w.Date, w.Condition, w.PrecipitationChance)
		}
		b.WriteString("Prefer indoor places on rainy days.\n")
	}

	fmt.Fprintf(&b, "\nRules: exactly %d days numbered 1..%d with no gaps, 2 to %d activities per day "+
		"between 09:00 and 21:00, each place used at most once.\n",
		prefs.DurationDays, prefs.DurationDays, p.cfg.MaxPlacesPerDay)
	b.WriteString(`Schema: {"days":[{"day":1,"activities":[{"time":"09:00","place_ref":0,"activity_type":"sightseeing","notes":"..."}]}]}`)
	if in.RetryFeedback != "" {
		fmt.Fprintf(&b, "\nYour previous reply was rejected: %s. Return only the JSON object.", in.RetryFeedback)
	}
	return b.String()
}

// assemble converts the model's plan into the itinerary, rejecting anything
// that breaks the day or reference contract.
func (p *Planner) assemble(in pipeline.Context, candidates []trip_models.RankedPlace, doc planDoc) (*trip_models.Itinerary, error) {
	prefs := in.Preferences
	if len(doc.Days) != prefs.DurationDays {
		return nil, fmt.Errorf("%w: plan has %d days, trip has %d", utils.ErrMalformedLLMOutput, len(doc.Days), prefs.DurationDays)
	}

	forecastByDate := make(map[string]trip_models.WeatherDay, len(in.Weather))
	for _, w := range in.Weather {
		forecastByDate[w.Date] = w
	}

	usedRefs := make(map[int]bool)
	days := make([]trip_models.ItineraryDay, len(doc.Days))
	for i, d := range doc.Days {
		if d.Day != i+1 {
			return nil, fmt.Errorf("%w: expected day %d, got day %d", utils.ErrMalformedLLMOutput, i+1, d.Day)
		}
		if len(d.Activities) == 0 {
			return nil, fmt.Errorf("%w: day %d has no activities", utils.ErrMalformedLLMOutput, d.Day)
		}
		date := utils.AddDays(prefs.StartDate, i)

		activities := make([]trip_models.Activity, len(d.Activities))
		for j, a := range d.Activities {
			if !utils.ValidClockTime(a.Time) {
				return nil, fmt.Errorf("%w: day %d activity %d has time %q", utils.ErrMalformedLLMOutput, d.Day, j+1, a.Time)
			}
			if a.PlaceRef < 0 || a.PlaceRef >= len(candidates) {
				return nil, fmt.Errorf("%w: day %d references unknown place %d", utils.ErrMalformedLLMOutput, d.Day, a.PlaceRef)
			}
			if usedRefs[a.PlaceRef] {
				return nil, fmt.Errorf("%w: place %d scheduled more than once", utils.ErrMalformedLLMOutput, a.PlaceRef)
			}
			usedRefs[a.PlaceRef] = true
			place := candidates[a.PlaceRef].PlaceCandidate
			activityType := a.ActivityType
			if activityType == "" {
				activityType = place.Category
			}
			notes := a.Notes
			if notes == "" {
				notes = fmt.Sprintf("Visit %s", place.Name)
			}
			activities[j] = trip_models.Activity{
				Time:          a.Time,
				Place:         place,
				DurationHours: 2,
				ActivityType:  activityType,
				Notes:         notes,
			}
		}

		day := trip_models.ItineraryDay{
			DayNumber:  d.Day,
			Date:       date,
			Activities: activities,
		}
		if w, ok := forecastByDate[date]; ok {
			day.Weather = &w
		}
		days[i] = day
	}

	origin := ""
	if in.Origin != nil {
		origin = in.Origin.Name
	}
	return &trip_models.Itinerary{
		Destination: in.Destination.Name,
		Origin:      origin,
		StartDate:   prefs.StartDate,
		EndDate:     utils.AddDays(prefs.StartDate, prefs.DurationDays-1),
		Days:        days,
		Preferences: prefs,
	}, nil
}
