package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"goindia/internal/models/request_models"
	"goindia/internal/services"
	"goindia/pkg/utils"
)

// AdminController backs the content management screens. All routes are
// behind the admin role middleware.
type AdminController struct {
	exploreService services.ExploreServiceInterface
}

func NewAdminController(exploreService services.ExploreServiceInterface) *AdminController {
	return &AdminController{
		exploreService: exploreService,
	}
}

func (a *AdminController) CreateCity(c *gin.Context) {
	var req request_models.CreateCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	city, err := a.exploreService.CreateCity(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, city, "City created")
}

func (a *AdminController) CreateLocation(c *gin.Context) {
	var req request_models.UpsertLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	location, err := a.exploreService.CreateLocation(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, location, "Location created")
}

func (a *AdminController) UpdateLocation(c *gin.Context) {
	var req request_models.UpsertLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	location, err := a.exploreService.UpdateLocation(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, location, "Location updated")
}

func (a *AdminController) DeleteLocation(c *gin.Context) {
	if err := a.exploreService.DeleteLocation(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Location deleted")
}
