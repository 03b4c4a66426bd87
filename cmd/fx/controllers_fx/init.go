package controllersfx

import (
	"go.uber.org/fx"

	"tripgenie/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewLocationController),
	fx.Provide(controllers.NewMetaController))
