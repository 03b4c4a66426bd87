package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tripgenie/internal/models/response_models"
	"tripgenie/internal/providers"
	"tripgenie/pkg/utils"
)

type LocationController struct {
	geo providers.GeoProvider
}

func NewLocationController(geo providers.GeoProvider) *LocationController {
	return &LocationController{geo: geo}
}

// Autocomplete godoc
// @Summary Autocomplete a destination
// @Description Suggest city names for a partial query. Queries shorter than two characters return an empty list.
// @Tags Location
// @Produce json
// @Param q query string true "Partial location text"
// @Success 200 {object} response_models.AutocompleteResponse
// @Router /locations/autocomplete [get]
func (l *LocationController) Autocomplete(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if len(query) < 2 {
		utils.RespondSuccess(c, response_models.AutocompleteResponse{
			Query:       query,
			Suggestions: []providers.Suggestion{},
		}, "Query too short for suggestions")
		return
	}

	suggestions, err := l.geo.Autocomplete(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if suggestions == nil {
		suggestions = []providers.Suggestion{}
	}

	utils.RespondSuccess(c, response_models.AutocompleteResponse{
		Query:       query,
		Suggestions: suggestions,
	}, "Suggestions fetched successfully")
}

// ValidateLocation godoc
// @Summary Validate a destination
// @Description Check whether free text resolves to a real location. An unresolvable location is a valid=false answer, not an error.
// @Tags Location
// @Produce json
// @Param q query string true "Location text"
// @Success 200 {object} response_models.ValidateLocationResponse
// @Failure 400 {object} utils.APIResponse
// @Router /locations/validate [get]
func (l *LocationController) ValidateLocation(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		utils.RespondError(c, http.StatusBadRequest, "Query parameter q is required")
		return
	}

	location, err := l.geo.Resolve(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, utils.ErrLocationNotFound) {
			utils.RespondSuccess(c, response_models.ValidateLocationResponse{Valid: false}, "Location not found")
			return
		}
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.ValidateLocationResponse{
		Valid:    true,
		Location: location,
	}, "Location validated successfully")
}
