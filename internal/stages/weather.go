package stages

import (
	"context"
	"log"

	"tripgenie/internal/pipeline"
	"tripgenie/internal/providers"
	"tripgenie/internal/schema"
	"tripgenie/pkg/utils"
)

// WeatherOptimizer fetches the forecast for the trip window and attaches it to
// the run. The forecast is advisory: when the provider fails or covers fewer
// days than the trip, the run continues degraded instead of failing.
type WeatherOptimizer struct {
	weather providers.WeatherProvider
}

func NewWeatherOptimizer(weather providers.WeatherProvider) *WeatherOptimizer {
	return &WeatherOptimizer{weather: weather}
}

func (w *WeatherOptimizer) Name() string             { return StageWeather }
func (w *WeatherOptimizer) Kind() pipeline.StageKind { return pipeline.KindAPIDriven }

func (w *WeatherOptimizer) OutputSchema() schema.Schema {
	return schema.Schema{Fields: []schema.Field{
		{Path: "weather_forecast.*.date", Kind: schema.String},
		{Path: "weather_forecast.*.condition", Kind: schema.String},
	}}
}

func (w *WeatherOptimizer) Run(ctx context.Context, in pipeline.Context) (pipeline.Context, error) {
	out := in

	start, err := utils.ParseDate(in.Preferences.StartDate)
	if err != nil {
		// Unreachable after validate, but never worth failing the run over.
		out.Degraded = append(out.Degraded, "weather: unparseable start date")
		return out, nil
	}

	forecast, err := w.weather.Forecast(ctx, *in.Destination, start, in.Preferences.DurationDays)
	if err != nil {
		log.Printf("[weather] forecast for %s unavailable: %v", in.Destination.Name, err)
		out.Degraded = append(out.Degraded, "weather: forecast unavailable, itinerary not weather-adjusted")
		return out, nil
	}
	if len(forecast) < in.Preferences.DurationDays {
		out.Degraded = append(out.Degraded, "weather: forecast covers only part of the trip")
	}

	out.Weather = forecast
	return out, nil
}
