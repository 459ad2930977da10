package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "obralog/internal/errors"
	"obralog/internal/models"
	"obralog/internal/pagination"
	"obralog/internal/services"
)

// --- mock report service ---

type mockReportService struct {
	createReportFn   func(userID string, input services.ReportInput) (*models.Report, error)
	getUserReportsFn func(userID string, page pagination.PageRequest, filter services.ReportFilter) (*pagination.PageResponse[models.Report], error)
	getReportByIDFn  func(userID, reportID string) (*models.Report, error)
	updateReportFn   func(userID, reportID string, input services.ReportInput) (*models.Report, error)
	deleteReportFn   func(userID, reportID string) error
}

func (m *mockReportService) CreateReport(userID string, input services.ReportInput) (*models.Report, error) {
	if m.createReportFn != nil {
		return m.createReportFn(userID, input)
	}
	return &models.Report{}, nil
}

func (m *mockReportService) GetUserReports(userID string, page pagination.PageRequest, filter services.ReportFilter) (*pagination.PageResponse[models.Report], error) {
	if m.getUserReportsFn != nil {
		return m.getUserReportsFn(userID, page, filter)
	}
	resp := pagination.NewPageResponse([]models.Report{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockReportService) GetReportByID(userID, reportID string) (*models.Report, error) {
	if m.getReportByIDFn != nil {
		return m.getReportByIDFn(userID, reportID)
	}
	return &models.Report{}, nil
}

func (m *mockReportService) UpdateReport(userID, reportID string, input services.ReportInput) (*models.Report, error) {
	if m.updateReportFn != nil {
		return m.updateReportFn(userID, reportID, input)
	}
	return &models.Report{}, nil
}

func (m *mockReportService) DeleteReport(userID, reportID string) error {
	if m.deleteReportFn != nil {
		return m.deleteReportFn(userID, reportID)
	}
	return nil
}

var _ services.ReportServicer = (*mockReportService)(nil)

const testReportID = "0195f1f2-3a4b-7c5d-8e6f-000000000003"

func setupReportRouter(handler *ReportHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.POST("/reports", handler.CreateReport)
	auth.GET("/reports", handler.GetReports)
	auth.GET("/reports/:id", handler.GetReport)
	auth.PUT("/reports/:id", handler.UpdateReport)
	auth.DELETE("/reports/:id", handler.DeleteReport)
	return r
}

func TestReportHandler_CreateReport(t *testing.T) {
	t.Run("returns 201 and forwards labor times and materials", func(t *testing.T) {
		var got services.ReportInput
		svc := &mockReportService{
			createReportFn: func(_ string, input services.ReportInput) (*models.Report, error) {
				got = input
				return &models.Report{Base: models.Base{ID: testReportID}, ProjectID: input.ProjectID}, nil
			},
		}
		handler := NewReportHandler(svc, &mockAuditService{})
		r := setupReportRouter(handler)

		rec := doRequest(r, "POST", "/reports", `{
			"project_id":"`+testProjectID+`",
			"report_date":"2025-03-10T00:00:00Z",
			"official_entry":"08:00","official_exit":"16:00",
			"worker_entry":"08:00","worker_exit":"16:00",
			"materials":[{"description":"Cement","cost":100},{"description":"Sand","cost":45.5}],
			"invoiced_amount":500
		}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.Labor.OfficialEntry != "08:00" || got.Labor.WorkerExit != "16:00" {
			t.Errorf("labor times not forwarded: %+v", got.Labor)
		}
		if len(got.Materials) != 2 || got.Materials[1].Cost != 45.5 {
			t.Errorf("materials not forwarded: %+v", got.Materials)
		}
	})

	t.Run("returns 400 on malformed clock time", func(t *testing.T) {
		handler := NewReportHandler(&mockReportService{}, &mockAuditService{})
		r := setupReportRouter(handler)

		rec := doRequest(r, "POST", "/reports", `{
			"project_id":"`+testProjectID+`",
			"report_date":"2025-03-10T00:00:00Z",
			"official_entry":"25:00"
		}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("accepts empty clock times", func(t *testing.T) {
		handler := NewReportHandler(&mockReportService{}, &mockAuditService{})
		r := setupReportRouter(handler)

		rec := doRequest(r, "POST", "/reports", `{
			"project_id":"`+testProjectID+`",
			"report_date":"2025-03-10T00:00:00Z"
		}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("returns 400 on missing project_id", func(t *testing.T) {
		handler := NewReportHandler(&mockReportService{}, &mockAuditService{})
		r := setupReportRouter(handler)

		rec := doRequest(r, "POST", "/reports", `{"report_date":"2025-03-10T00:00:00Z"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 when extra work is not allowed", func(t *testing.T) {
		svc := &mockReportService{
			createReportFn: func(_ string, _ services.ReportInput) (*models.Report, error) {
				return nil, apperrors.ErrExtraWorkNotAllowed
			},
		}
		handler := NewReportHandler(svc, &mockAuditService{})
		r := setupReportRouter(handler)

		rec := doRequest(r, "POST", "/reports", `{
			"project_id":"`+testProjectID+`",
			"report_date":"2025-03-10T00:00:00Z",
			"is_extra_work":true,
			"extra_work_type":"hourly"
		}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "EXTRA_WORK_NOT_ALLOWED")
	})
}

func TestReportHandler_GetReports(t *testing.T) {
	t.Run("passes filters to service", func(t *testing.T) {
		var got services.ReportFilter
		svc := &mockReportService{
			getUserReportsFn: func(_ string, _ pagination.PageRequest, filter services.ReportFilter) (*pagination.PageResponse[models.Report], error) {
				got = filter
				resp := pagination.NewPageResponse([]models.Report{}, 1, 20, 0)
				return &resp, nil
			},
		}
		handler := NewReportHandler(svc, &mockAuditService{})
		r := setupReportRouter(handler)

		rec := doRequest(r, "GET", "/reports?project_id="+testProjectID+"&is_extra_work=true&week=11", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.ProjectID == nil || *got.ProjectID != testProjectID {
			t.Errorf("project filter not forwarded: %v", got.ProjectID)
		}
		if got.IsExtraWork == nil || !*got.IsExtraWork {
			t.Errorf("extra-work filter not forwarded: %v", got.IsExtraWork)
		}
		if got.WeekNumber == nil || *got.WeekNumber != 11 {
			t.Errorf("week filter not forwarded: %v", got.WeekNumber)
		}
	})

	t.Run("returns 400 on out-of-range week", func(t *testing.T) {
		handler := NewReportHandler(&mockReportService{}, &mockAuditService{})
		r := setupReportRouter(handler)

		rec := doRequest(r, "GET", "/reports?week=54", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on malformed from date", func(t *testing.T) {
		handler := NewReportHandler(&mockReportService{}, &mockAuditService{})
		r := setupReportRouter(handler)

		rec := doRequest(r, "GET", "/reports?from=yesterday", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestReportHandler_DeleteReport(t *testing.T) {
	t.Run("returns 404 when not found", func(t *testing.T) {
		svc := &mockReportService{
			deleteReportFn: func(_, _ string) error {
				return apperrors.ErrReportNotFound
			},
		}
		handler := NewReportHandler(svc, &mockAuditService{})
		r := setupReportRouter(handler)

		rec := doRequest(r, "DELETE", "/reports/"+testReportID, "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "REPORT_NOT_FOUND")
	})
}
