package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "costbook/internal/errors"
	"costbook/internal/models"
	"costbook/internal/services"
)

// ProjectHandler handles project requests
type ProjectHandler struct {
	projectService services.ProjectServicer
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(projectService services.ProjectServicer) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// CreateProjectRequest represents the request payload for creating a project
type CreateProjectRequest struct {
	ProjectName string `json:"project_name" binding:"required"`
	ClientName  string `json:"client_name"`
}

// CreateProject handles the creation of a new project
// @Summary     Create a project
// @Description Create a new project for a client
// @Tags        projects
// @Accept      json
// @Produce     json
// @Param       request body CreateProjectRequest true "Project details"
// @Success     201 {object} models.Project "Project created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	project, err := h.projectService.CreateProject(req.ProjectName, req.ClientName)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

// ListProjects handles the retrieval of all projects
// @Summary     List projects
// @Description List projects in creation order
// @Tags        projects
// @Produce     json
// @Param       skip  query int false "Rows to skip"
// @Param       limit query int false "Maximum rows to return"
// @Success     200 {array} models.Project "List of projects"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	window, err := bindWindow(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	projects, err := h.projectService.ListProjects(window)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if projects == nil {
		projects = []models.Project{}
	}

	c.JSON(http.StatusOK, projects)
}

// DeleteProject handles deleting a project without estimations
// @Summary     Delete a project
// @Description Delete a project; rejected while the project still has estimations
// @Tags        projects
// @Produce     json
// @Param       project_id path int true "Project ID"
// @Success     200 {object} models.Project "Deleted project"
// @Failure     404 {object} ErrorResponse "Project not found"
// @Failure     409 {object} ErrorResponse "Project still has estimations"
// @Router      /projects/{project_id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	projectID, err := parsePathID(c, "project_id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	project, err := h.projectService.DeleteProject(projectID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}
