package stages

import (
	"context"
	"fmt"

	"tripgenie/internal/models/trip_models"
	"tripgenie/internal/pipeline"
	"tripgenie/internal/providers"
	"tripgenie/internal/schema"
	"tripgenie/pkg/config"
	"tripgenie/pkg/utils"
)

// Explorer searches for candidate places around the resolved destination. One
// query per traveller interest plus a pair of generic queries, capped by the
// configured query and result budgets, deduplicated by place id.
type Explorer struct {
	geo providers.GeoProvider
	cfg *config.Settings
}

func NewExplorer(geo providers.GeoProvider, cfg *config.Settings) *Explorer {
	return &Explorer{geo: geo, cfg: cfg}
}

func (e *Explorer) Name() string             { return StageExplore }
func (e *Explorer) Kind() pipeline.StageKind { return pipeline.KindAPIDriven }

func (e *Explorer) OutputSchema() schema.Schema {
	return schema.Schema{Fields: []schema.Field{
		{Path: "places", Kind: schema.List, Required: true, MinLen: 1},
		{Path: "places.*.name", Kind: schema.String, Required: true},
		{Path: "places.*.location.latitude", Kind: schema.Float, Required: true},
		{Path: "places.*.location.longitude", Kind: schema.Float, Required: true},
		{Path: "places.*.rating", Kind: schema.Float, Min: schema.Bound(0), Max: schema.Bound(5)},
	}}
}

func (e *Explorer) Run(ctx context.Context, in pipeline.Context) (pipeline.Context, error) {
	dest := in.Destination
	prefs := in.Preferences

	queries := make([]string, 0, len(prefs.Interests)+2)
	for _, interest := range prefs.Interests {
		queries = append(queries, fmt.Sprintf("%s in %s", interest, dest.Name))
	}
	queries = append(queries,
		fmt.Sprintf("tourist attractions in %s", dest.Name),
		fmt.Sprintf("things to do in %s", dest.Name),
	)
	if len(queries) > e.cfg.MaxSearchQueries {
		queries = queries[:e.cfg.MaxSearchQueries]
	}

	seen := make(map[string]bool)
	places := make([]trip_models.PlaceCandidate, 0, e.cfg.MaxTotalPlaces)
	for _, q := range queries {
		results, err := e.geo.Search(ctx, q, *dest)
		if err != nil {
			return in, err
		}
		if len(results) > e.cfg.MaxResultsPerQuery {
			results = results[:e.cfg.MaxResultsPerQuery]
		}
		for _, p := range results {
			key := p.Location.PlaceID
			if key == "" {
				key = p.Name
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			places = append(places, p)
			if len(places) >= e.cfg.MaxTotalPlaces {
				break
			}
		}
		if len(places) >= e.cfg.MaxTotalPlaces {
			break
		}
	}

	if len(places) == 0 {
		return in, fmt.Errorf("%w: no candidate places for %q", utils.ErrNoPlacesFound, dest.Name)
	}

	out := in
	out.Places = places
	return out, nil
}
