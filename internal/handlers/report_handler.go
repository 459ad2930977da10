package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "obralog/internal/errors"
	"obralog/internal/models"
	"obralog/internal/pagination"
	"obralog/internal/services"
	"obralog/internal/uuid"
)

// ReportHandler handles daily work report requests.
type ReportHandler struct {
	reportService services.ReportServicer
	auditService  services.AuditServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer, auditService services.AuditServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService, auditService: auditService}
}

// MaterialItemRequest is one material line in a report payload.
type MaterialItemRequest struct {
	Description string        `json:"description" binding:"required,min=1,max=500"`
	Cost        models.Amount `json:"cost"`
}

// ReportRequest represents the request payload for creating or updating a report.
type ReportRequest struct {
	ProjectID         string                `json:"project_id" binding:"required,uuid"`
	ReportDate        time.Time             `json:"report_date" binding:"required"`
	OfficialEntry     string                `json:"official_entry" binding:"clock_time"`
	OfficialExit      string                `json:"official_exit" binding:"clock_time"`
	WorkerEntry       string                `json:"worker_entry" binding:"clock_time"`
	WorkerExit        string                `json:"worker_exit" binding:"clock_time"`
	Materials         []MaterialItemRequest `json:"materials" binding:"omitempty,dive"`
	InvoicedAmount    models.Amount         `json:"invoiced_amount"`
	IsExtraWork       bool                  `json:"is_extra_work"`
	ExtraWorkType     models.ExtraWorkType  `json:"extra_work_type" binding:"omitempty,extra_work_type"`
	ExtraBudgetAmount models.Amount         `json:"extra_budget_amount"`
	TotalCost         *models.Amount        `json:"total_cost"`
	Notes             string                `json:"notes" binding:"max=1000"`
}

func (r *ReportRequest) toInput() services.ReportInput {
	materials := make([]services.MaterialInput, 0, len(r.Materials))
	for _, m := range r.Materials {
		materials = append(materials, services.MaterialInput{Description: m.Description, Cost: m.Cost})
	}
	return services.ReportInput{
		ProjectID:  r.ProjectID,
		ReportDate: r.ReportDate,
		Labor: models.LaborEntry{
			OfficialEntry: r.OfficialEntry,
			OfficialExit:  r.OfficialExit,
			WorkerEntry:   r.WorkerEntry,
			WorkerExit:    r.WorkerExit,
		},
		Materials:         materials,
		InvoicedAmount:    r.InvoicedAmount,
		IsExtraWork:       r.IsExtraWork,
		ExtraWorkType:     r.ExtraWorkType,
		ExtraBudgetAmount: r.ExtraBudgetAmount,
		TotalCost:         r.TotalCost,
		Notes:             r.Notes,
	}
}

// CreateReport handles the creation of a new daily work report.
// @Summary     Create a report
// @Description File a daily work report against a project
// @Tags        reports
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ReportRequest true "Report details"
// @Success     201 {object} models.Report "Report created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Project not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports [post]
func (h *ReportHandler) CreateReport(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	report, err := h.reportService.CreateReport(userID, req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_REPORT", "report", report.ID, c.ClientIP(),
		map[string]interface{}{"project_id": report.ProjectID, "report_date": report.ReportDate})

	c.JSON(http.StatusCreated, gin.H{"report": report})
}

// GetReports handles listing reports for the authenticated user.
// @Summary     Get reports
// @Description Get a paginated list of reports for the authenticated user
// @Tags        reports
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       project_id    query string false "Filter by project ID"
// @Param       from          query string false "Start date (RFC 3339)"
// @Param       to            query string false "End date (RFC 3339)"
// @Param       is_extra_work query bool   false "Filter by extra-work flag"
// @Param       week          query int    false "Filter by week number"
// @Param       page          query int    false "Page number (default 1)"
// @Param       page_size     query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Report] "Paginated reports"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports [get]
func (h *ReportHandler) GetReports(c *gin.Context) {
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

	filter, err := parseReportFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.reportService.GetUserReports(userID, page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func parseReportFilter(c *gin.Context) (services.ReportFilter, error) {
	var filter services.ReportFilter

	if v := c.Query("project_id"); v != "" {
		if !uuid.IsValid(v) {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid project_id")
		}
		filter.ProjectID = &v
	}

	if v := c.Query("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "from must be an RFC 3339 timestamp")
		}
		filter.FromDate = &t
	}

	if v := c.Query("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "to must be an RFC 3339 timestamp")
		}
		filter.ToDate = &t
	}

	if v := c.Query("is_extra_work"); v != "" {
		switch v {
		case "true":
			b := true
			filter.IsExtraWork = &b
		case "false":
			b := false
			filter.IsExtraWork = &b
		default:
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "is_extra_work must be 'true' or 'false'")
		}
	}

	if v := c.Query("week"); v != "" {
		week, err := strconv.Atoi(v)
		if err != nil || week < 1 || week > 53 {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "week must be between 1 and 53")
		}
		filter.WeekNumber = &week
	}

	return filter, nil
}

// GetProjectReports handles listing the reports of one project.
// @Summary     Get project reports
// @Description Get a paginated list of reports filed against one project
// @Tags        projects
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id        path  string true  "Project ID"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Report] "Paginated reports"
// @Failure     400 {object} ErrorResponse "Invalid project ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /projects/{id}/reports [get]
func (h *ReportHandler) GetProjectReports(c *gin.Context) {
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

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.reportService.GetUserReports(userID, page, services.ReportFilter{ProjectID: &projectID})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetReport handles retrieving a specific report.
// @Summary     Get report by ID
// @Description Get a specific report by ID
// @Tags        reports
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Report ID"
// @Success     200 {object} models.Report "Report details"
// @Failure     400 {object} ErrorResponse "Invalid report ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Report not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/{id} [get]
func (h *ReportHandler) GetReport(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	reportID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	report, err := h.reportService.GetReportByID(userID, reportID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"report": report})
}

// UpdateReport handles updating an existing report.
// @Summary     Update report
// @Description Update an existing report, replacing its material lines
// @Tags        reports
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string        true "Report ID"
// @Param       request body ReportRequest true "Updated report details"
// @Success     200 {object} models.Report "Updated report"
// @Failure     400 {object} ErrorResponse "Invalid input or report ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Report not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/{id} [put]
func (h *ReportHandler) UpdateReport(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	reportID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	report, err := h.reportService.UpdateReport(userID, reportID, req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_REPORT", "report", report.ID, c.ClientIP(),
		map[string]interface{}{"project_id": report.ProjectID})

	c.JSON(http.StatusOK, gin.H{"report": report})
}

// DeleteReport handles deleting a report.
// @Summary     Delete report
// @Description Delete a report and its material lines
// @Tags        reports
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Report ID"
// @Success     200 {object} map[string]string "Report deleted"
// @Failure     400 {object} ErrorResponse "Invalid report ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Report not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/{id} [delete]
func (h *ReportHandler) DeleteReport(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	reportID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.reportService.DeleteReport(userID, reportID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_REPORT", "report", reportID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Report deleted successfully"})
}
