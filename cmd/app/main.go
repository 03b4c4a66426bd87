package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"tripgenie/cmd/fx/config_fx"
	"tripgenie/cmd/fx/controllers_fx"
	"tripgenie/cmd/fx/pipeline_fx"
	"tripgenie/cmd/fx/providers_fx"
	"tripgenie/internal/api/controllers"
	"tripgenie/pkg/config"
	"tripgenie/pkg/middleware"
)

func main() {
	app := fx.New(
		configfx.Module,
		providersfx.Module,
		pipelinefx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Settings) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	itineraryController *controllers.ItineraryController,
	locationController *controllers.LocationController,
	metaController *controllers.MetaController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, itineraryController, locationController, metaController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	itineraryController *controllers.ItineraryController,
	locationController *controllers.LocationController,
	metaController *controllers.MetaController) {

	r.GET("/", metaController.Root)
	r.GET("/health", metaController.Health)
	r.GET("/interests", metaController.Interests)

	locationsGroup := r.Group("/locations")
	locationsGroup.GET("/autocomplete", locationController.Autocomplete)
	locationsGroup.GET("/validate", locationController.ValidateLocation)

	itinerariesGroup := r.Group("/itineraries")
	itinerariesGroup.POST("/generate", itineraryController.GenerateItinerary)
}
