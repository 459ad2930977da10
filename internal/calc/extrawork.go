package calc

import "obralog/internal/models"

// ExtraWorkResult totals the out-of-budget work attached to a fixed-price
// project. Additional-budget and hourly extra work accumulate into
// separate totals and are never double counted: TotalExtra is their sum.
type ExtraWorkResult struct {
	TotalExtraBudget    float64 `json:"total_extra_budget"`
	TotalExtraLaborCost float64 `json:"total_extra_labor_cost"`
	TotalExtraMaterials float64 `json:"total_extra_materials"`
	TotalExtraCost      float64 `json:"total_extra_cost"`
	TotalExtra          float64 `json:"total_extra"`
	ExtraWorkCount      int     `json:"extra_work_count"`
}

// ExtraWork classifies and totals a project's extra-work reports.
// Reports with an unrecognized extra-work sub-type are counted but
// contribute to no monetary total. A nil project yields a zero result.
func ExtraWork(reports []models.Report, project *models.Project) ExtraWorkResult {
	if project == nil {
		return ExtraWorkResult{}
	}

	var result ExtraWorkResult
	for i := range reports {
		r := &reports[i]
		if r.ProjectID != project.ID || !r.IsExtraWork {
			continue
		}
		result.ExtraWorkCount++

		switch r.ExtraWorkType {
		case models.ExtraWorkTypeAdditionalBudget:
			result.TotalExtraBudget += sanitize(r.ExtraBudgetAmount.Float())

		case models.ExtraWorkTypeHourly:
			labor := Labor(&r.Labor, project)
			materials := Materials(r.Materials)
			result.TotalExtraLaborCost += labor.TotalLaborCost
			result.TotalExtraMaterials += materials.TotalMaterialsCost

			// Some clients store a denormalized total on the report;
			// prefer it when present, otherwise recompute.
			cost := labor.TotalLaborCost + materials.TotalMaterialsCost
			if r.TotalCost != nil {
				cost = sanitize(r.TotalCost.Float())
			}
			result.TotalExtraCost += cost
		}
	}

	result.TotalExtra = result.TotalExtraBudget + result.TotalExtraCost
	return result
}
