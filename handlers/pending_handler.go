package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/translationdesk/platform-go/dto"
	"github.com/translationdesk/platform-go/models"
	"github.com/translationdesk/platform-go/response"
	"github.com/translationdesk/platform-go/services"
	"github.com/translationdesk/platform-go/utils"
)

type PendingHandler struct {
	service *services.PendingService
}

func NewPendingHandler(service *services.PendingService) *PendingHandler {
	return &PendingHandler{service: service}
}

func (h *PendingHandler) List(c *gin.Context) {
	var query dto.TicketListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	tickets, total, err := h.service.List(query)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ListResponse{Data: tickets, Total: total})
}

func (h *PendingHandler) Reassign(c *gin.Context) {
	var input dto.ReassignDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	result, err := h.service.Reassign(c.Request.Context(), claims, input)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: result})
}

func (h *PendingHandler) Abandon(c *gin.Context) {
	var input dto.AbandonDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	result, err := h.service.Abandon(c.Request.Context(), claims, input)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: result})
}

func (h *PendingHandler) Handlers(c *gin.Context) {
	role := models.UserRole(c.DefaultQuery("role", string(models.RoleAgent)))
	users, err := h.service.Handlers(role)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: users})
}
