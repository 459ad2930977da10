package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "obralog/internal/errors"
	"obralog/internal/services"
	"obralog/internal/uuid"
)

// SummaryHandler serves the read-side roll-ups: global and per-project
// summaries, budget status, extra-work totals, and per-report breakdowns.
type SummaryHandler struct {
	summaryService services.SummaryServicer
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(summaryService services.SummaryServicer) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

func parseDateRange(c *gin.Context) (from, to *time.Time, err error) {
	if v := c.Query("from"); v != "" {
		t, perr := time.Parse(time.RFC3339, v)
		if perr != nil {
			return nil, nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "from must be an RFC 3339 timestamp")
		}
		from = &t
	}
	if v := c.Query("to"); v != "" {
		t, perr := time.Parse(time.RFC3339, v)
		if perr != nil {
			return nil, nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "to must be an RFC 3339 timestamp")
		}
		to = &t
	}
	return from, to, nil
}

// GetSummary returns aggregated totals with weekly and per-project buckets.
// @Summary     Get summary
// @Description Aggregate all reports into totals, weekly buckets, and per-project buckets. Optionally scoped to one project and a date range.
// @Tags        summary
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       project_id query string false "Scope the summary to one project"
// @Param       from       query string false "Start date (RFC 3339)"
// @Param       to         query string false "End date (RFC 3339)"
// @Success     200 {object} calc.SummaryResult "Aggregated summary"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /summary [get]
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	projectID := c.Query("project_id")
	if projectID != "" && !uuid.IsValid(projectID) {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid project_id"))
		return
	}

	from, to, err := parseDateRange(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.summaryService.GetSummary(userID, projectID, from, to)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": result})
}

// GetProjectBudget returns budget status for a fixed-price project.
// @Summary     Get project budget
// @Description Get invoiced total, remaining budget, and progress for a fixed-price project
// @Tags        projects
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Project ID"
// @Success     200 {object} calc.BudgetResult "Budget status"
// @Failure     400 {object} ErrorResponse "Project is not fixed-price"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Project not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /projects/{id}/budget [get]
func (h *SummaryHandler) GetProjectBudget(c *gin.Context) {
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

	result, err := h.summaryService.GetProjectBudget(userID, projectID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": result})
}

// GetProjectExtraWork returns extra-work totals for a project.
// @Summary     Get project extra work
// @Description Get out-of-budget extra work totals for a project, split into additional-budget and hourly components
// @Tags        projects
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Project ID"
// @Success     200 {object} calc.ExtraWorkResult "Extra-work totals"
// @Failure     400 {object} ErrorResponse "Invalid project ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Project not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /projects/{id}/extra-work [get]
func (h *SummaryHandler) GetProjectExtraWork(c *gin.Context) {
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

	result, err := h.summaryService.GetProjectExtraWork(userID, projectID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"extra_work": result})
}

// GetReportBreakdown returns the computed cost detail of a single report.
// @Summary     Get report breakdown
// @Description Get the computed labor hours, labor costs, and material costs of a single report
// @Tags        reports
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Report ID"
// @Success     200 {object} services.ReportBreakdown "Cost breakdown"
// @Failure     400 {object} ErrorResponse "Invalid report ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Report not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/{id}/breakdown [get]
func (h *SummaryHandler) GetReportBreakdown(c *gin.Context) {
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

	result, err := h.summaryService.GetReportBreakdown(userID, reportID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"breakdown": result})
}
