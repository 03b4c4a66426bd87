package stages

import (
	"context"
	"fmt"
	"log"
	"time"

	"tripgenie/internal/models/trip_models"
	"tripgenie/internal/pipeline"
	"tripgenie/internal/providers"
	"tripgenie/internal/schema"
	"tripgenie/pkg/utils"
)

// InputValidator resolves the destination (and origin, when given) to
// coordinates and fills in the trip start date when the caller left it empty.
type InputValidator struct {
	geo providers.GeoProvider
}

func NewInputValidator(geo providers.GeoProvider) *InputValidator {
	return &InputValidator{geo: geo}
}

func (v *InputValidator) Name() string             { return StageValidate }
func (v *InputValidator) Kind() pipeline.StageKind { return pipeline.KindAPIDriven }

func (v *InputValidator) OutputSchema() schema.Schema {
	return schema.Schema{Fields: []schema.Field{
		{Path: "preferences.start_date", Kind: schema.String, Required: true},
		{Path: "destination_location.name", Kind: schema.String, Required: true},
		{Path: "destination_location.latitude", Kind: schema.Float, Required: true, Min: schema.Bound(-90), Max: schema.Bound(90)},
		{Path: "destination_location.longitude", Kind: schema.Float, Required: true, Min: schema.Bound(-180), Max: schema.Bound(180)},
	}}
}

func (v *InputValidator) Run(ctx context.Context, in pipeline.Context) (pipeline.Context, error) {
	out := in
	prefs := in.Preferences

	if prefs.StartDate == "" {
		prefs.StartDate = utils.FormatDate(time.Now().AddDate(0, 0, 7))
	} else {
		start, err := utils.ParseDate(prefs.StartDate)
		if err != nil {
			return in, fmt.Errorf("%w: start_date %q is not YYYY-MM-DD", utils.ErrInvalidInput, prefs.StartDate)
		}
		if start.Before(time.Now().Truncate(24 * time.Hour)) {
			return in, fmt.Errorf("%w: start_date %q is in the past", utils.ErrInvalidInput, prefs.StartDate)
		}
	}

	dest, err := v.geo.Resolve(ctx, prefs.Destination)
	if err != nil {
		return in, err
	}

	var origin *trip_models.GeoLocation
	if prefs.Origin != "" {
		o, err := v.geo.Resolve(ctx, prefs.Origin)
		if err != nil {
			// Origin is only used for context in prompts; a failed lookup
			// must not sink the whole run.
			log.Printf("[validate] origin %q not resolved: %v", prefs.Origin, err)
		} else {
			origin = o
		}
	}

	out.Preferences = prefs
	out.Destination = dest
	out.Origin = origin
	return out, nil
}
