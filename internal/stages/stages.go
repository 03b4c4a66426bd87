// Package stages implements the fixed pipeline: validate, explore,
// distance_filter, weather, rank, plan, align, format. Each stage extends the
// run context and declares the output schema the coordinator enforces at its
// boundary.
package stages

import (
	"tripgenie/internal/pipeline"
	"tripgenie/internal/providers"
	"tripgenie/pkg/config"
)

const (
	StageValidate       = "validate"
	StageExplore        = "explore"
	StageDistanceFilter = "distance_filter"
	StageWeather        = "weather"
	StageRank           = "rank"
	StagePlan           = "plan"
	StageAlign          = "align"
	StageFormat         = "format"
)

// All returns the stage chain in its fixed execution order.
func All(
	geo providers.GeoProvider,
	weather providers.WeatherProvider,
	llm providers.LLMProvider,
	cfg *config.Settings,
) []pipeline.Stage {
	return []pipeline.Stage{
		NewInputValidator(geo),
		NewExplorer(geo, cfg),
		NewDistanceFilter(cfg),
		NewWeatherOptimizer(weather),
		NewRanker(llm, cfg),
		NewPlanner(llm, cfg),
		NewAlignmentChecker(),
		NewFormatter(),
	}
}
