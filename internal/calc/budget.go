package calc

import "obralog/internal/models"

// BudgetResult tracks consumption of a fixed-price project's contracted
// budget. ProgressPercentage is clamped to [0, 100] for display;
// IsOverBudget is derived from the unclamped remaining amount, so it can
// be true while the percentage reads 100.
type BudgetResult struct {
	BudgetAmount       float64 `json:"budget_amount"`
	InvoicedTotal      float64 `json:"invoiced_total"`
	RemainingBudget    float64 `json:"remaining_budget"`
	ProgressPercentage float64 `json:"progress_percentage"`
	IsOverBudget       bool    `json:"is_over_budget"`
}

// Budget computes invoiced-to-date against a fixed project's budget.
// Extra-work reports are excluded: the budget tracks only the original
// contracted scope. A nil project or a nil report list yields an all-zero
// result; an empty list is a real answer (nothing invoiced yet).
func Budget(project *models.Project, reports []models.Report) BudgetResult {
	if project == nil || reports == nil {
		return BudgetResult{}
	}

	var invoiced float64
	for _, r := range reports {
		if r.ProjectID != project.ID || r.IsExtraWork {
			continue
		}
		invoiced += sanitize(r.InvoicedAmount.Float())
	}

	budget := sanitize(project.BudgetAmount.Float())
	remaining := budget - invoiced

	var progress float64
	if budget > 0 {
		progress = invoiced / budget * 100
		if progress < 0 {
			progress = 0
		}
		if progress > 100 {
			progress = 100
		}
	}

	return BudgetResult{
		BudgetAmount:       budget,
		InvoicedTotal:      invoiced,
		RemainingBudget:    remaining,
		ProgressPercentage: progress,
		IsOverBudget:       remaining < 0,
	}
}
