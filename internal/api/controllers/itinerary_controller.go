package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripgenie/internal/models/request_models"
	"tripgenie/internal/models/response_models"
	"tripgenie/internal/pipeline"
	"tripgenie/pkg/utils"
)

type ItineraryController struct {
	coordinator *pipeline.Coordinator
	gate        *pipeline.Gate
}

func NewItineraryController(coordinator *pipeline.Coordinator, gate *pipeline.Gate) *ItineraryController {
	return &ItineraryController{
		coordinator: coordinator,
		gate:        gate,
	}
}

// GenerateItinerary godoc
// @Summary Generate a travel itinerary
// @Description Run the full planning pipeline for the given trip preferences. Only one generation runs at a time; concurrent requests get a busy response.
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.GenerateItineraryRequest true "Trip preferences"
// @Success 200 {object} response_models.GenerateItineraryResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Failure 504 {object} utils.APIResponse
// @Router /itineraries/generate [post]
func (i *ItineraryController) GenerateItinerary(c *gin.Context) {
	if !i.gate.TryAcquire() {
		utils.RespondBusy(c, "Another itinerary is being generated, try again shortly")
		return
	}
	defer i.gate.Release()

	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Destination and duration_days are required")
		return
	}

	result, err := i.coordinator.Run(c.Request.Context(), req.ToPreferences())
	if err != nil {
		var runErr *pipeline.Error
		if errors.As(err, &runErr) {
			utils.RespondError(c, statusForKind(runErr.Kind), runErr.Message)
			return
		}
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewGenerateItineraryResponse(result), "Itinerary generated successfully")
}

func statusForKind(kind pipeline.FailureKind) int {
	switch kind {
	case pipeline.FailureInvalidInput:
		return http.StatusBadRequest
	case pipeline.FailureNoResults:
		return http.StatusNotFound
	case pipeline.FailureUpstreamUnavailable, pipeline.FailureGenerationFailed:
		return http.StatusBadGateway
	case pipeline.FailureTimeout:
		return http.StatusGatewayTimeout
	case pipeline.FailureBusy:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
