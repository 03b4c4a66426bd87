package stages

import (
	"context"
	"fmt"
	"sort"

	"tripgenie/internal/models/trip_models"
	"tripgenie/internal/pipeline"
	"tripgenie/internal/schema"
	"tripgenie/pkg/config"
	"tripgenie/pkg/utils"
)

// DistanceFilter annotates each candidate with its distance from the
// destination centre and drops everything beyond the trip's travel ceiling.
// The ceiling scales with trip length and travel style:
//
//	ceiling = min(duration_days * 40km * style_multiplier, configured max)
type DistanceFilter struct {
	cfg *config.Settings
}

func NewDistanceFilter(cfg *config.Settings) *DistanceFilter {
	return &DistanceFilter{cfg: cfg}
}

func (d *DistanceFilter) Name() string             { return StageDistanceFilter }
func (d *DistanceFilter) Kind() pipeline.StageKind { return pipeline.KindComputational }

func (d *DistanceFilter) OutputSchema() schema.Schema {
	return schema.Schema{Fields: []schema.Field{
		{Path: "places", Kind: schema.List, Required: true, MinLen: 1},
		{Path: "places.*.distance_km", Kind: schema.Float, Required: true, Min: schema.Bound(0)},
	}}
}

// Ceiling returns the maximum acceptable distance in km for the given
// preferences.
func (d *DistanceFilter) Ceiling(prefs trip_models.Preferences) float64 {
	ceiling := float64(prefs.DurationDays) * 40 * prefs.StyleMultiplier()
	if ceiling > d.cfg.MaxTravelDistanceKm {
		ceiling = d.cfg.MaxTravelDistanceKm
	}
	return ceiling
}

func (d *DistanceFilter) Run(_ context.Context, in pipeline.Context) (pipeline.Context, error) {
	dest := in.Destination
	ceiling := d.Ceiling(in.Preferences)

	kept := make([]trip_models.PlaceCandidate, 0, len(in.Places))
	for _, p := range in.Places {
		p.DistanceKm = utils.Haversine(dest.Latitude, dest.Longitude, p.Location.Latitude, p.Location.Longitude)
		if p.DistanceKm <= ceiling {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		return in, fmt.Errorf("%w: nothing within %.0f km of %s", utils.ErrNoPlacesFound, ceiling, dest.Name)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].DistanceKm != kept[j].DistanceKm {
			return kept[i].DistanceKm < kept[j].DistanceKm
		}
		return kept[i].Rating > kept[j].Rating
	})

	out := in
	out.Places = kept
	return out, nil
}
