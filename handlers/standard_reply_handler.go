package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/translationdesk/platform-go/dto"
	"github.com/translationdesk/platform-go/response"
	"github.com/translationdesk/platform-go/services"
)

type StandardReplyHandler struct {
	service *services.StandardReplyService
}

func NewStandardReplyHandler(service *services.StandardReplyService) *StandardReplyHandler {
	return &StandardReplyHandler{service: service}
}

func (h *StandardReplyHandler) Create(c *gin.Context) {
	var input dto.CreateStandardReplyDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	reply, err := h.service.Create(input)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.SuccessResponse{Data: reply})
}

func (h *StandardReplyHandler) ListByProject(c *gin.Context) {
	projectID, err := strconv.ParseUint(c.Param("projectId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}

	replies, err := h.service.ListByProject(uint(projectID))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: replies})
}

func (h *StandardReplyHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}

	var input dto.UpdateStandardReplyDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	reply, err := h.service.Update(uint(id), input)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: reply})
}

func (h *StandardReplyHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}

	if err := h.service.Delete(uint(id)); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "deleted"})
}
