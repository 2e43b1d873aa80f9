package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/translationdesk/platform-go/dto"
	"github.com/translationdesk/platform-go/response"
	"github.com/translationdesk/platform-go/services"
	"github.com/translationdesk/platform-go/utils"
)

type TranslationHandler struct {
	service *services.TranslationService
}

func NewTranslationHandler(service *services.TranslationService) *TranslationHandler {
	return &TranslationHandler{service: service}
}

func (h *TranslationHandler) SubmitReply(c *gin.Context) {
	var input dto.SubmitTranslationDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	result, err := h.service.SubmitReply(c.Request.Context(), userID, c.Param("id"), input)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.SuccessResponse{Data: result})
}

func (h *TranslationHandler) ResendRejected(c *gin.Context) {
	var input dto.ResendTranslationDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	result, err := h.service.ResendRejected(c.Request.Context(), userID, c.Param("id"), c.Param("translationId"), input)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: result})
}
