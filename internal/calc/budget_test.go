package calc

import (
	"testing"

	"obralog/internal/models"
)

func fixedProject(id string, budget float64) *models.Project {
	return &models.Project{
		Base:         models.Base{ID: id},
		Type:         models.ProjectTypeFixed,
		BudgetAmount: models.Amount(budget),
	}
}

func TestBudget(t *testing.T) {
	t.Run("tracks_invoiced_against_budget", func(t *testing.T) {
		project := fixedProject("p1", 10000)
		reports := []models.Report{
			{ProjectID: "p1", InvoicedAmount: 3000},
			{ProjectID: "p1", InvoicedAmount: 4000},
		}

		got := Budget(project, reports)
		if got.InvoicedTotal != 7000 {
			t.Errorf("invoiced = %v, want 7000", got.InvoicedTotal)
		}
		if got.RemainingBudget != 3000 {
			t.Errorf("remaining = %v, want 3000", got.RemainingBudget)
		}
		if got.ProgressPercentage != 70 {
			t.Errorf("progress = %v, want 70", got.ProgressPercentage)
		}
		if got.IsOverBudget {
			t.Error("expected not over budget")
		}
	})

	t.Run("extra_work_reports_are_excluded", func(t *testing.T) {
		// The budget tracks only the original contracted scope.
		project := fixedProject("p1", 10000)
		reports := []models.Report{
			{ProjectID: "p1", InvoicedAmount: 3000},
			{ProjectID: "p1", InvoicedAmount: 5000, IsExtraWork: true, ExtraWorkType: models.ExtraWorkTypeAdditionalBudget},
		}
		if got := Budget(project, reports).InvoicedTotal; got != 3000 {
			t.Errorf("invoiced = %v, want 3000", got)
		}
	})

	t.Run("other_projects_never_contribute", func(t *testing.T) {
		project := fixedProject("p1", 10000)
		reports := []models.Report{
			{ProjectID: "p1", InvoicedAmount: 2000},
			{ProjectID: "p2", InvoicedAmount: 9000},
		}
		if got := Budget(project, reports).InvoicedTotal; got != 2000 {
			t.Errorf("invoiced = %v, want 2000", got)
		}
	})

	t.Run("overrun", func(t *testing.T) {
		project := fixedProject("p1", 5000)
		reports := []models.Report{{ProjectID: "p1", InvoicedAmount: 6500}}

		got := Budget(project, reports)
		if got.RemainingBudget != -1500 {
			t.Errorf("remaining = %v, want -1500", got.RemainingBudget)
		}
		if got.ProgressPercentage != 100 {
			t.Errorf("progress = %v, want clamped 100", got.ProgressPercentage)
		}
		if !got.IsOverBudget {
			t.Error("expected over budget")
		}
	})

	t.Run("zero_budget_never_divides", func(t *testing.T) {
		project := fixedProject("p1", 0)
		reports := []models.Report{{ProjectID: "p1", InvoicedAmount: 1200}}

		got := Budget(project, reports)
		if got.ProgressPercentage != 0 {
			t.Errorf("progress = %v, want 0 for zero budget", got.ProgressPercentage)
		}
		if !got.IsOverBudget {
			t.Error("invoicing against a zero budget is an overrun")
		}
	})

	t.Run("absent_arguments", func(t *testing.T) {
		if got := Budget(nil, []models.Report{{ProjectID: "p1"}}); got != (BudgetResult{}) {
			t.Errorf("Budget(nil, reports) = %+v, want zero result", got)
		}
		if got := Budget(fixedProject("p1", 8000), nil); got != (BudgetResult{}) {
			t.Errorf("Budget(project, nil) = %+v, want zero result", got)
		}
	})

	t.Run("empty_report_list_is_a_real_answer", func(t *testing.T) {
		got := Budget(fixedProject("p1", 8000), []models.Report{})
		if got.InvoicedTotal != 0 || got.RemainingBudget != 8000 || got.IsOverBudget {
			t.Errorf("no reports yet: %+v", got)
		}
	})
}
