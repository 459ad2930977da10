package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "obralog/internal/errors"
	"obralog/internal/models"
	"obralog/internal/pagination"
	"obralog/internal/services"
)

// ProjectHandler handles project-related requests.
type ProjectHandler struct {
	projectService services.ProjectServicer
	auditService   services.AuditServicer
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService services.ProjectServicer, auditService services.AuditServicer) *ProjectHandler {
	return &ProjectHandler{projectService: projectService, auditService: auditService}
}

// CreateProjectRequest represents the request payload for creating a project.
type CreateProjectRequest struct {
	Name           string             `json:"name" binding:"required,min=1,max=200"`
	Client         string             `json:"client" binding:"max=200"`
	Type           models.ProjectType `json:"type" binding:"omitempty,project_type"`
	OfficialRate   models.Amount      `json:"official_rate"`
	WorkerRate     models.Amount      `json:"worker_rate"`
	BudgetAmount   models.Amount      `json:"budget_amount"`
	AllowExtraWork bool               `json:"allow_extra_work"`
	Currency       string             `json:"currency" binding:"omitempty,iso4217"`
	Notes          string             `json:"notes" binding:"max=1000"`
}

// UpdateProjectRequest represents the request payload for updating a project.
type UpdateProjectRequest struct {
	Name           string             `json:"name" binding:"omitempty,min=1,max=200"`
	Client         string             `json:"client" binding:"max=200"`
	Type           models.ProjectType `json:"type" binding:"omitempty,project_type"`
	OfficialRate   models.Amount      `json:"official_rate"`
	WorkerRate     models.Amount      `json:"worker_rate"`
	BudgetAmount   models.Amount      `json:"budget_amount"`
	AllowExtraWork bool               `json:"allow_extra_work"`
	Currency       string             `json:"currency" binding:"omitempty,iso4217"`
	Notes          string             `json:"notes" binding:"max=1000"`
}

// CreateProject handles the creation of a new project.
// @Summary     Create a project
// @Description Create a new hourly or fixed-price project
// @Tags        projects
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateProjectRequest true "Project details"
// @Success     201 {object} models.Project "Project created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	project, err := h.projectService.CreateProject(userID, services.ProjectInput{
		Name:           req.Name,
		Client:         req.Client,
		Type:           req.Type,
		OfficialRate:   req.OfficialRate,
		WorkerRate:     req.WorkerRate,
		BudgetAmount:   req.BudgetAmount,
		AllowExtraWork: req.AllowExtraWork,
		Currency:       req.Currency,
		Notes:          req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_PROJECT", "project", project.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name, "type": project.Type})

	c.JSON(http.StatusCreated, gin.H{"project": project})
}

// GetProjects handles listing projects for the authenticated user.
// @Summary     Get projects
// @Description Get a paginated list of projects for the authenticated user
// @Tags        projects
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       type      query string false "Filter by project type (hourly/fixed)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Project] "Paginated projects"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /projects [get]
func (h *ProjectHandler) GetProjects(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var projectType *models.ProjectType
	if v := c.Query("type"); v != "" {
		t := models.ProjectType(v)
		if t != models.ProjectTypeHourly && t != models.ProjectTypeFixed {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "type must be 'hourly' or 'fixed'"))
			return
		}
		projectType = &t
	}

	result, err := h.projectService.GetUserProjects(userID, page, projectType)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetProject handles retrieving a specific project.
// @Summary     Get project by ID
// @Description Get a specific project by ID
// @Tags        projects
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Project ID"
// @Success     200 {object} models.Project "Project details"
// @Failure     400 {object} ErrorResponse "Invalid project ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Project not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	projectID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	project, err := h.projectService.GetProjectByID(userID, projectID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": project})
}

// UpdateProject handles updating an existing project.
// @Summary     Update project
// @Description Update an existing project
// @Tags        projects
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string               true "Project ID"
// @Param       request body UpdateProjectRequest true "Updated project details"
// @Success     200 {object} models.Project "Updated project"
// @Failure     400 {object} ErrorResponse "Invalid input or project ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Project not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	projectID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	project, err := h.projectService.UpdateProject(userID, projectID, services.ProjectInput{
		Name:           req.Name,
		Client:         req.Client,
		Type:           req.Type,
		OfficialRate:   req.OfficialRate,
		WorkerRate:     req.WorkerRate,
		BudgetAmount:   req.BudgetAmount,
		AllowExtraWork: req.AllowExtraWork,
		Currency:       req.Currency,
		Notes:          req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_PROJECT", "project", project.ID, c.ClientIP(),
		map[string]interface{}{"name": project.Name})

	c.JSON(http.StatusOK, gin.H{"project": project})
}

// DeleteProject handles deleting a project.
// @Summary     Delete project
// @Description Delete a project that has no reports filed against it
// @Tags        projects
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Project ID"
// @Success     200 {object} map[string]string "Project deleted"
// @Failure     400 {object} ErrorResponse "Invalid project ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Project not found"
// @Failure     409 {object} ErrorResponse "Project has reports"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	projectID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.projectService.DeleteProject(userID, projectID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_PROJECT", "project", projectID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
