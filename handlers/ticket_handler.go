package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/translationdesk/platform-go/dto"
	"github.com/translationdesk/platform-go/response"
	"github.com/translationdesk/platform-go/services"
	"github.com/translationdesk/platform-go/utils"
)

type TicketHandler struct {
	service *services.TicketService
}

func NewTicketHandler(service *services.TicketService) *TicketHandler {
	return &TicketHandler{service: service}
}

func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var input dto.CreateTicketDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	ticket, err := h.service.CreateTicket(c.Request.Context(), userID, input)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.SuccessResponse{Data: ticket})
}

func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticket, err := h.service.GetTicket(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: ticket})
}

func (h *TicketHandler) ListTickets(c *gin.Context) {
	var query dto.TicketListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	tickets, total, err := h.service.ListTickets(query)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ListResponse{Data: tickets, Total: total})
}

func (h *TicketHandler) SaveTicket(c *gin.Context) {
	var input dto.SaveTicketDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	ticket, err := h.service.SaveTicket(c.Param("id"), input)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: ticket})
}

func (h *TicketHandler) CloseTicket(c *gin.Context) {
	var input dto.CloseTicketDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	ticket, err := h.service.CloseTicket(c.Request.Context(), userID, c.Param("id"), input)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: ticket})
}

func (h *TicketHandler) ReopenTicket(c *gin.Context) {
	ticket, err := h.service.ReopenTicket(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: ticket})
}

func (h *TicketHandler) MarkCopied(c *gin.Context) {
	if err := h.service.MarkCopied(c.Request.Context(), c.Param("id"), c.Param("translationId")); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "marked as copied"})
}

func (h *TicketHandler) DeleteTranslation(c *gin.Context) {
	ticket, err := h.service.DeleteTranslation(c.Param("id"), c.Param("translationId"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: ticket})
}
