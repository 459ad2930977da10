package services

import (
	"time"

	"obralog/internal/calc"
	"obralog/internal/models"
	"obralog/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
	StoreRefreshTokenHash(userID, tokenHash string) error
	GetRefreshTokenHash(userID string) (string, error)
}

// ProjectInput carries the writable fields of a project.
type ProjectInput struct {
	Name           string
	Client         string
	Type           models.ProjectType
	OfficialRate   models.Amount
	WorkerRate     models.Amount
	BudgetAmount   models.Amount
	AllowExtraWork bool
	Currency       string
	Notes          string
}

// ProjectServicer defines the contract for project-related business logic.
type ProjectServicer interface {
	CreateProject(userID string, input ProjectInput) (*models.Project, error)
	GetUserProjects(userID string, page pagination.PageRequest, projectType *models.ProjectType) (*pagination.PageResponse[models.Project], error)
	GetProjectByID(userID, projectID string) (*models.Project, error)
	UpdateProject(userID, projectID string, input ProjectInput) (*models.Project, error)
	DeleteProject(userID, projectID string) error
}

// MaterialInput is one material line in a report payload.
type MaterialInput struct {
	Description string
	Cost        models.Amount
}

// ReportInput carries the writable fields of a report.
type ReportInput struct {
	ProjectID         string
	ReportDate        time.Time
	Labor             models.LaborEntry
	Materials         []MaterialInput
	InvoicedAmount    models.Amount
	IsExtraWork       bool
	ExtraWorkType     models.ExtraWorkType
	ExtraBudgetAmount models.Amount
	TotalCost         *models.Amount
	Notes             string
}

// ReportFilter holds optional filter parameters for listing reports.
type ReportFilter struct {
	ProjectID   *string
	FromDate    *time.Time
	ToDate      *time.Time
	IsExtraWork *bool
	WeekNumber  *int
}

// ReportServicer defines the contract for report-related business logic.
type ReportServicer interface {
	CreateReport(userID string, input ReportInput) (*models.Report, error)
	GetUserReports(userID string, page pagination.PageRequest, filter ReportFilter) (*pagination.PageResponse[models.Report], error)
	GetReportByID(userID, reportID string) (*models.Report, error)
	UpdateReport(userID, reportID string, input ReportInput) (*models.Report, error)
	DeleteReport(userID, reportID string) error
}

// SummaryServicer defines the contract for the read-side roll-ups served
// to dashboards, project lists, and report exports. All arithmetic is
// delegated to the calc package; these methods only load the records.
type SummaryServicer interface {
	GetSummary(userID, projectID string, from, to *time.Time) (*calc.SummaryResult, error)
	GetProjectBudget(userID, projectID string) (*calc.BudgetResult, error)
	GetProjectExtraWork(userID, projectID string) (*calc.ExtraWorkResult, error)
	GetReportBreakdown(userID, reportID string) (*ReportBreakdown, error)
}

// ReportBreakdown is the per-report cost detail used by report views and
// PDF export.
type ReportBreakdown struct {
	ReportID  string               `json:"report_id"`
	Labor     calc.LaborResult     `json:"labor"`
	Materials calc.MaterialsResult `json:"materials"`
	TotalCost float64              `json:"total_cost"`
}

// AuditServicer defines the contract for recording audit events.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]any)
}
