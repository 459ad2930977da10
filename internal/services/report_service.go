package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "obralog/internal/errors"
	"obralog/internal/models"
	"obralog/internal/pagination"
)

// reportService handles report-related business logic.
type reportService struct {
	db             *gorm.DB
	projectService ProjectServicer
}

// NewReportService creates a new ReportServicer.
func NewReportService(db *gorm.DB, projectService ProjectServicer) ReportServicer {
	return &reportService{db: db, projectService: projectService}
}

// validateMode checks that a report's extra-work flags are legal for its
// project before anything is stored. Historic rows may still carry odd
// combinations; summaries tolerate those, but new writes are held to the
// rules.
func (s *reportService) validateMode(project *models.Project, input ReportInput) error {
	if !input.IsExtraWork {
		return nil
	}
	if !project.IsFixed() || !project.AllowExtraWork {
		return apperrors.ErrExtraWorkNotAllowed
	}
	if input.ExtraWorkType == models.ExtraWorkTypeAdditionalBudget && input.ExtraBudgetAmount <= 0 {
		return apperrors.ErrExtraBudgetRequired
	}
	return nil
}

// CreateReport files a new daily report against one of the user's projects.
// The stored week number is derived from the report date here, at write
// time; read-side summaries use it verbatim.
func (s *reportService) CreateReport(userID string, input ReportInput) (*models.Report, error) {
	project, err := s.projectService.GetProjectByID(userID, input.ProjectID)
	if err != nil {
		return nil, err
	}
	if err := s.validateMode(project, input); err != nil {
		return nil, err
	}

	_, week := input.ReportDate.ISOWeek()
	report := &models.Report{
		UserID:            userID,
		ProjectID:         project.ID,
		ReportDate:        input.ReportDate,
		WeekNumber:        week,
		Labor:             input.Labor,
		InvoicedAmount:    input.InvoicedAmount,
		IsExtraWork:       input.IsExtraWork,
		ExtraWorkType:     input.ExtraWorkType,
		ExtraBudgetAmount: input.ExtraBudgetAmount,
		TotalCost:         input.TotalCost,
		Notes:             input.Notes,
	}
	for _, m := range input.Materials {
		report.Materials = append(report.Materials, models.MaterialItem{
			Description: m.Description,
			Cost:        m.Cost,
		})
	}

	if err := s.db.Create(report).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return report, nil
}

// GetUserReports returns a paginated, filtered list of the user's reports.
func (s *reportService) GetUserReports(
	userID string,
	page pagination.PageRequest,
	filter ReportFilter,
) (*pagination.PageResponse[models.Report], error) {
	page.Defaults()

	base := s.db.Model(&models.Report{}).Where("user_id = ?", userID)
	if filter.ProjectID != nil {
		base = base.Where("project_id = ?", *filter.ProjectID)
	}
	if filter.FromDate != nil {
		base = base.Where("report_date >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		base = base.Where("report_date <= ?", *filter.ToDate)
	}
	if filter.IsExtraWork != nil {
		base = base.Where("is_extra_work = ?", *filter.IsExtraWork)
	}
	if filter.WeekNumber != nil {
		base = base.Where("week_number = ?", *filter.WeekNumber)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var reports []models.Report
	if err := base.Preload("Materials").Order("report_date DESC").
		Scopes(pagination.Paginate(page)).Find(&reports).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(reports, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetReportByID returns a report with its materials if it belongs to the user.
func (s *reportService) GetReportByID(userID, reportID string) (*models.Report, error) {
	var report models.Report
	if err := s.db.Preload("Materials").Where("id = ? AND user_id = ?", reportID, userID).
		First(&report).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReportNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &report, nil
}

// UpdateReport replaces a report's writable fields, recomputing the stored
// week number from the (possibly changed) report date and replacing the
// material lines wholesale.
func (s *reportService) UpdateReport(userID, reportID string, input ReportInput) (*models.Report, error) {
	report, err := s.GetReportByID(userID, reportID)
	if err != nil {
		return nil, err
	}

	projectID := report.ProjectID
	if input.ProjectID != "" {
		projectID = input.ProjectID
	}
	project, err := s.projectService.GetProjectByID(userID, projectID)
	if err != nil {
		return nil, err
	}
	if err := s.validateMode(project, input); err != nil {
		return nil, err
	}

	_, week := input.ReportDate.ISOWeek()

	err = s.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"project_id":           project.ID,
			"report_date":          input.ReportDate,
			"week_number":          week,
			"labor_official_entry": input.Labor.OfficialEntry,
			"labor_official_exit":  input.Labor.OfficialExit,
			"labor_worker_entry":   input.Labor.WorkerEntry,
			"labor_worker_exit":    input.Labor.WorkerExit,
			"invoiced_amount":      input.InvoicedAmount,
			"is_extra_work":        input.IsExtraWork,
			"extra_work_type":      input.ExtraWorkType,
			"extra_budget_amount":  input.ExtraBudgetAmount,
			"total_cost":           input.TotalCost,
			"notes":                input.Notes,
		}
		if err := tx.Model(report).Updates(updates).Error; err != nil {
			return err
		}

		if err := tx.Where("report_id = ?", report.ID).Delete(&models.MaterialItem{}).Error; err != nil {
			return err
		}
		materials := make([]models.MaterialItem, 0, len(input.Materials))
		for _, m := range input.Materials {
			materials = append(materials, models.MaterialItem{
				ReportID:    report.ID,
				Description: m.Description,
				Cost:        m.Cost,
			})
		}
		if len(materials) > 0 {
			if err := tx.Create(&materials).Error; err != nil {
				return err
			}
		}
		report.Materials = materials
		return nil
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return report, nil
}

// DeleteReport soft-deletes a report.
func (s *reportService) DeleteReport(userID, reportID string) error {
	report, err := s.GetReportByID(userID, reportID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(report).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
