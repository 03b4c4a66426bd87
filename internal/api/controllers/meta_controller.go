package controllers

import (
	"github.com/gin-gonic/gin"

	"tripgenie/internal/models/response_models"
	"tripgenie/internal/providers"
	"tripgenie/pkg/utils"
)

// interestCatalog is what the UI offers as preset interests. Free-form
// interests are still accepted on generation requests.
var interestCatalog = []string{
	"sightseeing", "culture", "food", "history", "art",
	"nature", "adventure", "shopping", "nightlife", "architecture",
	"museums", "beaches", "hiking", "photography", "local experiences",
}

type MetaController struct {
	geo     providers.GeoProvider
	weather providers.WeatherProvider
	llm     providers.LLMProvider
}

func NewMetaController(geo providers.GeoProvider, weather providers.WeatherProvider, llm providers.LLMProvider) *MetaController {
	return &MetaController{geo: geo, weather: weather, llm: llm}
}

// Health godoc
// @Summary Service health
// @Description Liveness plus per-provider configuration flags. Missing credentials do not make the service unhealthy.
// @Tags Meta
// @Produce json
// @Success 200 {object} response_models.HealthResponse
// @Router /health [get]
func (m *MetaController) Health(c *gin.Context) {
	utils.RespondSuccess(c, response_models.HealthResponse{
		Status: "ok",
		Providers: map[string]bool{
			"geo":     m.geo.Configured(),
			"weather": m.weather.Configured(),
			"llm":     m.llm.Configured(),
		},
	}, "Service is healthy")
}

// Interests godoc
// @Summary List preset interests
// @Tags Meta
// @Produce json
// @Success 200 {object} response_models.InterestsResponse
// @Router /interests [get]
func (m *MetaController) Interests(c *gin.Context) {
	utils.RespondSuccess(c, response_models.InterestsResponse{Interests: interestCatalog}, "Interests fetched successfully")
}

// Root godoc
// @Summary Service banner
// @Tags Meta
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router / [get]
func (m *MetaController) Root(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{
		"service": "tripgenie",
		"docs":    "/health, /interests, /locations/autocomplete, /locations/validate, /itineraries/generate",
	}, "TripGenie itinerary service")
}
