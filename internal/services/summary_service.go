package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"obralog/internal/calc"
	apperrors "obralog/internal/errors"
	"obralog/internal/logger"
	"obralog/internal/models"
)

// summaryService serves the read-side roll-ups. It loads the user's
// records and hands them to the calc package; no arithmetic happens here.
type summaryService struct {
	db *gorm.DB
}

// NewSummaryService creates a new SummaryServicer.
func NewSummaryService(db *gorm.DB) SummaryServicer {
	return &summaryService{db: db}
}

// loadReports fetches the user's reports with materials, optionally scoped
// to a project and date range.
func (s *summaryService) loadReports(userID, projectID string, from, to *time.Time) ([]models.Report, error) {
	query := s.db.Preload("Materials").Where("user_id = ?", userID)
	if projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}
	if from != nil {
		query = query.Where("report_date >= ?", *from)
	}
	if to != nil {
		query = query.Where("report_date <= ?", *to)
	}

	var reports []models.Report
	if err := query.Find(&reports).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return reports, nil
}

// GetSummary computes totals plus weekly and per-project breakdowns over
// the user's reports. When projectID names a fixed-price project the
// result also carries its budget consumption.
func (s *summaryService) GetSummary(userID, projectID string, from, to *time.Time) (*calc.SummaryResult, error) {
	reports, err := s.loadReports(userID, projectID, from, to)
	if err != nil {
		return nil, err
	}

	var projects []models.Project
	if err := s.db.Where("user_id = ?", userID).Find(&projects).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := calc.Summary(reports, projects, projectID)
	if result.SkippedReports > 0 {
		logger.Get().Warnw("summary skipped reports with unresolvable projects",
			"user_id", userID,
			"skipped", result.SkippedReports,
		)
	}
	return &result, nil
}

// GetProjectBudget returns budget consumption for a fixed-price project.
func (s *summaryService) GetProjectBudget(userID, projectID string) (*calc.BudgetResult, error) {
	project, err := s.getProject(userID, projectID)
	if err != nil {
		return nil, err
	}
	if !project.IsFixed() {
		return nil, apperrors.ErrProjectNotFixed
	}

	reports, err := s.loadReports(userID, projectID, nil, nil)
	if err != nil {
		return nil, err
	}
	if reports == nil {
		reports = []models.Report{}
	}

	result := calc.Budget(project, reports)
	return &result, nil
}

// GetProjectExtraWork returns the extra-work totals for a fixed-price project.
func (s *summaryService) GetProjectExtraWork(userID, projectID string) (*calc.ExtraWorkResult, error) {
	project, err := s.getProject(userID, projectID)
	if err != nil {
		return nil, err
	}
	if !project.IsFixed() {
		return nil, apperrors.ErrProjectNotFixed
	}

	reports, err := s.loadReports(userID, projectID, nil, nil)
	if err != nil {
		return nil, err
	}

	result := calc.ExtraWork(reports, project)
	return &result, nil
}

// GetReportBreakdown recomputes labor and materials for a single report,
// the per-row detail report lists and PDF export render.
func (s *summaryService) GetReportBreakdown(userID, reportID string) (*ReportBreakdown, error) {
	var report models.Report
	if err := s.db.Preload("Materials").Where("id = ? AND user_id = ?", reportID, userID).
		First(&report).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReportNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var project models.Project
	if err := s.db.Where("id = ?", report.ProjectID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	labor := calc.Labor(&report.Labor, &project)
	materials := calc.Materials(report.Materials)

	return &ReportBreakdown{
		ReportID:  report.ID,
		Labor:     labor,
		Materials: materials,
		TotalCost: labor.TotalLaborCost + materials.TotalMaterialsCost,
	}, nil
}

func (s *summaryService) getProject(userID, projectID string) (*models.Project, error) {
	var project models.Project
	if err := s.db.Where("id = ? AND user_id = ?", projectID, userID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &project, nil
}
