package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "obralog/internal/errors"
	"obralog/internal/models"
	"obralog/internal/pagination"
)

// projectService handles project-related business logic.
type projectService struct {
	db *gorm.DB
}

// NewProjectService creates a new ProjectServicer.
func NewProjectService(db *gorm.DB) ProjectServicer {
	return &projectService{db: db}
}

// CreateProject creates a new project for the user.
func (s *projectService) CreateProject(userID string, input ProjectInput) (*models.Project, error) {
	if input.Name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "project name is required")
	}
	if input.Type == "" {
		input.Type = models.ProjectTypeHourly
	}
	if input.Currency == "" {
		input.Currency = "EUR"
	}

	project := &models.Project{
		UserID:         userID,
		Name:           input.Name,
		Client:         input.Client,
		Type:           input.Type,
		OfficialRate:   input.OfficialRate,
		WorkerRate:     input.WorkerRate,
		BudgetAmount:   input.BudgetAmount,
		AllowExtraWork: input.AllowExtraWork,
		Currency:       input.Currency,
		Notes:          input.Notes,
	}

	// Budget and extra-work settings only mean something on fixed-price
	// projects; normalize them away on hourly ones so stored rows stay
	// consistent with how they are billed.
	if project.Type == models.ProjectTypeHourly {
		project.BudgetAmount = 0
		project.AllowExtraWork = false
	}

	if err := s.db.Create(project).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return project, nil
}

// GetUserProjects returns a paginated list of the user's projects.
func (s *projectService) GetUserProjects(
	userID string,
	page pagination.PageRequest,
	projectType *models.ProjectType,
) (*pagination.PageResponse[models.Project], error) {
	page.Defaults()

	base := s.db.Model(&models.Project{}).Where("user_id = ?", userID)
	if projectType != nil {
		base = base.Where("type = ?", *projectType)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var projects []models.Project
	if err := base.Order("created_at DESC").Scopes(pagination.Paginate(page)).Find(&projects).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(projects, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetProjectByID returns a project by ID if it belongs to the user.
func (s *projectService) GetProjectByID(userID, projectID string) (*models.Project, error) {
	var project models.Project
	if err := s.db.Where("id = ? AND user_id = ?", projectID, userID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &project, nil
}

// UpdateProject updates an existing project's fields.
func (s *projectService) UpdateProject(userID, projectID string, input ProjectInput) (*models.Project, error) {
	project, err := s.GetProjectByID(userID, projectID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if input.Name != "" {
		updates["name"] = input.Name
	}
	if input.Client != "" {
		updates["client"] = input.Client
	}
	if input.Type != "" {
		updates["type"] = input.Type
	}
	if input.Currency != "" {
		updates["currency"] = input.Currency
	}
	updates["official_rate"] = input.OfficialRate
	updates["worker_rate"] = input.WorkerRate
	updates["budget_amount"] = input.BudgetAmount
	updates["allow_extra_work"] = input.AllowExtraWork
	if input.Notes != "" {
		updates["notes"] = input.Notes
	}

	if err := s.db.Model(project).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return project, nil
}

// DeleteProject soft-deletes a project. Projects that still have reports
// filed against them are refused so that summaries never lose their
// project reference.
func (s *projectService) DeleteProject(userID, projectID string) error {
	project, err := s.GetProjectByID(userID, projectID)
	if err != nil {
		return err
	}

	var reportCount int64
	if err := s.db.Model(&models.Report{}).Where("project_id = ?", projectID).Count(&reportCount).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if reportCount > 0 {
		return apperrors.ErrProjectHasReports
	}

	if err := s.db.Delete(project).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
