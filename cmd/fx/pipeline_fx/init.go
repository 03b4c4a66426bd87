package pipelinefx

import (
	"go.uber.org/fx"

	"tripgenie/internal/pipeline"
	"tripgenie/internal/providers"
	"tripgenie/internal/stages"
	"tripgenie/pkg/config"
)

var Module = fx.Provide(
	provideStages, provideGate, provideCoordinator)

func provideStages(
	geo providers.GeoProvider,
	weather providers.WeatherProvider,
	llm providers.LLMProvider,
	cfg *config.Settings,
) []pipeline.Stage {
	return stages.All(geo, weather, llm, cfg)
}

func provideGate() *pipeline.Gate {
	return pipeline.NewGate()
}

func provideCoordinator(stageList []pipeline.Stage, cfg *config.Settings) *pipeline.Coordinator {
	retry := pipeline.RetryPolicy{MaxAttempts: cfg.MaxGenerativeAttempts}
	return pipeline.NewCoordinator(stageList, retry, cfg.RunTimeout)
}
