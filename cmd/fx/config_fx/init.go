package configfx

import (
	"go.uber.org/fx"

	"tripgenie/pkg/config"
)

var Module = fx.Provide(provideSettings)

func provideSettings() *config.Settings {
	return config.Load()
}
