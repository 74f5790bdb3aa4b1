package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"goindia/internal/services"
	"goindia/pkg/utils"
)

type ExploreController struct {
	exploreService services.ExploreServiceInterface
	weatherService services.WeatherServiceInterface
}

func NewExploreController(
	exploreService services.ExploreServiceInterface,
	weatherService services.WeatherServiceInterface,
) *ExploreController {
	return &ExploreController{
		exploreService: exploreService,
		weatherService: weatherService,
	}
}

// ListCities godoc
// @Summary List destination cities
// @Description Cities ordered by popularity, optionally filtered by name or state
// @Tags Explore
// @Produce json
// @Param search query string false "Name or state filter"
// @Param limit query int false "Max results, default 20"
// @Success 200 {object} utils.APIResponse
// @Router /explore/cities [get]
func (e *ExploreController) ListCities(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	cities, err := e.exploreService.ListCities(c.Request.Context(), c.Query("search"), limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, cities, "Cities fetched successfully")
}

func (e *ExploreController) GetCity(c *gin.Context) {
	city, err := e.exploreService.GetCity(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, city, "City fetched successfully")
}

func (e *ExploreController) ListLocations(c *gin.Context) {
	locations, err := e.exploreService.ListLocations(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, locations, "Locations fetched successfully")
}

func (e *ExploreController) GetLocation(c *gin.Context) {
	location, err := e.exploreService.GetLocation(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, location, "Location fetched successfully")
}

// ListPhrases serves the offline phrasebook. Adult slang is excluded
// unless explicitly requested.
func (e *ExploreController) ListPhrases(c *gin.Context) {
	includeAdult := c.Query("include_adult") == "true"

	phrases, err := e.exploreService.ListPhrases(c.Request.Context(), c.Query("category"), includeAdult)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, phrases, "Phrases fetched successfully")
}

func (e *ExploreController) CityWeather(c *gin.Context) {
	report, err := e.weatherService.CurrentWeather(c.Request.Context(), c.Query("city"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "Weather fetched successfully")
}
