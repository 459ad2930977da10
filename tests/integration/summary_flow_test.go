package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestSummaryFlow_FixedProjectWithExtraWork(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "summary@test.com", "password123")

	projectID := app.createProject(t, token,
		`{"name":"Warehouse","type":"fixed","budget_amount":10000,"allow_extra_work":true,"official_rate":30,"worker_rate":20}`)

	app.createReport(t, token, fmt.Sprintf(`{
		"project_id":%q,"report_date":"2025-05-05T00:00:00Z","invoiced_amount":7000
	}`, projectID))
	app.createReport(t, token, fmt.Sprintf(`{
		"project_id":%q,"report_date":"2025-05-06T00:00:00Z",
		"is_extra_work":true,"extra_work_type":"additional_budget","extra_budget_amount":1500
	}`, projectID))

	rec := app.request("GET", "/api/v1/summary?project_id="+projectID, "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("summary failed: %d %s", rec.Code, rec.Body.String())
	}
	summary := parseJSON(t, rec)["summary"].(map[string]interface{})
	totals := summary["totals"].(map[string]interface{})

	if totals["total_income"].(float64) != 7000 {
		t.Errorf("expected income 7000, got %v", totals["total_income"])
	}
	if totals["total_extra_budget"].(float64) != 1500 {
		t.Errorf("expected extra budget 1500, got %v", totals["total_extra_budget"])
	}
	if totals["grand_total"].(float64) != 8500 {
		t.Errorf("expected grand total 8500, got %v", totals["grand_total"])
	}

	// Budget status is merged in when the summary is scoped to a fixed project
	budget, ok := totals["budget"].(map[string]interface{})
	if !ok {
		t.Fatal("expected budget block in project-scoped summary")
	}
	if budget["progress_percentage"].(float64) != 70 {
		t.Errorf("expected progress 70, got %v", budget["progress_percentage"])
	}
}

func TestSummaryFlow_WeeklyBuckets(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "weeks@test.com", "password123")

	projectID := app.createProject(t, token,
		`{"name":"Road Crew","type":"hourly","official_rate":25,"worker_rate":18}`)

	// Two reports in one ISO week, one in the next
	for _, date := range []string{"2025-03-10", "2025-03-11", "2025-03-17"} {
		app.createReport(t, token, fmt.Sprintf(`{
			"project_id":%q,"report_date":"%sT00:00:00Z",
			"official_entry":"08:00","official_exit":"12:00"
		}`, projectID, date))
	}

	rec := app.request("GET", "/api/v1/summary", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("summary failed: %d %s", rec.Code, rec.Body.String())
	}
	summary := parseJSON(t, rec)["summary"].(map[string]interface{})

	byWeek := summary["by_week"].([]interface{})
	if len(byWeek) != 2 {
		t.Fatalf("expected 2 weekly buckets, got %d", len(byWeek))
	}
	first := byWeek[0].(map[string]interface{})
	second := byWeek[1].(map[string]interface{})
	if first["key"] != "11-2025" || second["key"] != "12-2025" {
		t.Errorf("expected keys 11-2025 and 12-2025, got %v and %v", first["key"], second["key"])
	}
	if first["report_count"].(float64) != 2 {
		t.Errorf("expected 2 reports in week 11, got %v", first["report_count"])
	}

	byProject := summary["by_project"].([]interface{})
	if len(byProject) != 1 {
		t.Fatalf("expected 1 project bucket, got %d", len(byProject))
	}
	bucket := byProject[0].(map[string]interface{})
	if bucket["report_count"].(float64) != 3 {
		t.Errorf("expected 3 reports in project bucket, got %v", bucket["report_count"])
	}
	// 3 reports x 4h x 25/h official, no worker times
	if bucket["official_hours"].(float64) != 12 {
		t.Errorf("expected 12 official hours, got %v", bucket["official_hours"])
	}
}

func TestSummaryFlow_DateRangeScoping(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "range@test.com", "password123")

	projectID := app.createProject(t, token,
		`{"name":"Seasonal","type":"hourly","official_rate":10}`)

	app.createReport(t, token, fmt.Sprintf(`{
		"project_id":%q,"report_date":"2025-01-15T00:00:00Z",
		"official_entry":"08:00","official_exit":"10:00"
	}`, projectID))
	app.createReport(t, token, fmt.Sprintf(`{
		"project_id":%q,"report_date":"2025-06-15T00:00:00Z",
		"official_entry":"08:00","official_exit":"10:00"
	}`, projectID))

	rec := app.request("GET",
		"/api/v1/summary?from=2025-06-01T00:00:00Z&to=2025-06-30T00:00:00Z", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("summary failed: %d %s", rec.Code, rec.Body.String())
	}
	totals := parseJSON(t, rec)["summary"].(map[string]interface{})["totals"].(map[string]interface{})

	// Only the June report: 2h x 10/h
	if totals["total_income"].(float64) != 20 {
		t.Errorf("expected income 20, got %v", totals["total_income"])
	}
}
