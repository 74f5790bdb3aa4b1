package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"goindia/internal/models/request_models"
	"goindia/internal/models/response_models"
	"goindia/internal/services"
	"goindia/pkg/utils"
)

type AssistantController struct {
	assistantService services.AssistantServiceInterface
	translateService services.TranslateServiceInterface
	fareService      services.FareServiceInterface
}

func NewAssistantController(
	assistantService services.AssistantServiceInterface,
	translateService services.TranslateServiceInterface,
	fareService services.FareServiceInterface,
) *AssistantController {
	return &AssistantController{
		assistantService: assistantService,
		translateService: translateService,
		fareService:      fareService,
	}
}

// Chat godoc
// @Summary Ask the travel assistant
// @Description Free-form travel question answered by the assistant
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body request_models.ChatRequest true "Chat payload"
// @Success 200 {object} utils.APIResponse
// @Router /assistant/chat [post]
func (a *AssistantController) Chat(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	reply, err := a.assistantService.Ask(c.Request.Context(), req.Message)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.ChatResponse{Reply: reply}, "Reply generated")
}

func (a *AssistantController) Translate(c *gin.Context) {
	var req request_models.TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := a.translateService.Translate(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Translation generated")
}

func (a *AssistantController) EstimateFare(c *gin.Context) {
	var req request_models.FareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := a.fareService.EstimateFare(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Fare estimated")
}
