package providersfx

import (
	"go.uber.org/fx"

	"tripgenie/internal/providers"
	"tripgenie/pkg/config"
)

var Module = fx.Provide(
	provideGeoProvider, provideWeatherProvider, provideLLMProvider)

func provideGeoProvider(cfg *config.Settings) (providers.GeoProvider, error) {
	return providers.NewGoogleMapsProvider(cfg.GoogleMapsAPIKey)
}

func provideWeatherProvider() providers.WeatherProvider {
	return providers.NewWttrProvider()
}

func provideLLMProvider(cfg *config.Settings) (providers.LLMProvider, error) {
	return providers.NewLLMProvider(cfg.LLMProvider, cfg.LLMAPIKey, cfg.LLMModel)
}
