package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/translationdesk/platform-go/response"
	"github.com/translationdesk/platform-go/services"
)

type ProjectHandler struct {
	service *services.ProjectService
}

func NewProjectHandler(service *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

func (h *ProjectHandler) ListClients(c *gin.Context) {
	clients, err := h.service.ListClients()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: clients})
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	clientID, _ := strconv.ParseUint(c.Query("clientId"), 10, 64)
	projects, err := h.service.ListProjects(uint(clientID))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: projects})
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}
	project, err := h.service.GetProject(uint(id))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: project})
}
