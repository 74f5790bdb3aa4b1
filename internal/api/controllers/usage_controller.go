package controllers

import (
	"github.com/gin-gonic/gin"

	"goindia/internal/services"
	"goindia/pkg/utils"
)

type UsageController struct {
	usageService services.UsageServiceInterface
}

func NewUsageController(usageService services.UsageServiceInterface) *UsageController {
	return &UsageController{
		usageService: usageService,
	}
}

// GetUsage godoc
// @Summary Get metered feature usage
// @Description Report used/limit/remaining for each metered feature on the caller's plan
// @Tags Profile
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /profile/usage [get]
func (u *UsageController) GetUsage(c *gin.Context) {
	usage, err := u.usageService.GetUsage(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, usage, "Usage fetched successfully")
}

// Upgrade records a completed plan upgrade and returns the refreshed
// profile. Payment confirmation happens upstream.
func (u *UsageController) Upgrade(c *gin.Context) {
	profile, err := u.usageService.UpgradeToPaid(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Plan upgraded successfully")
}
