package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"goindia/internal/models/request_models"
	"goindia/internal/services"
	"goindia/pkg/utils"
)

type FoodController struct {
	foodService services.FoodServiceInterface
}

func NewFoodController(foodService services.FoodServiceInterface) *FoodController {
	return &FoodController{
		foodService: foodService,
	}
}

// Score godoc
// @Summary Score a dish
// @Description Health-score a dish from nutrition estimates or a photo; counts against the food_scanner quota
// @Tags Food
// @Accept json
// @Produce json
// @Param request body request_models.FoodScoreRequest true "Dish payload"
// @Success 200 {object} utils.APIResponse
// @Failure 402 {object} utils.APIResponse
// @Router /food/score [post]
func (f *FoodController) Score(c *gin.Context) {
	var req request_models.FoodScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := f.foodService.ScoreDish(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Dish scored")
}
