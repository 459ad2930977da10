package calc

import "obralog/internal/models"

// LaborResult breaks a report's labor entry down into hours and costs per
// role at the project's hourly rates.
type LaborResult struct {
	OfficialHours  float64 `json:"official_hours"`
	WorkerHours    float64 `json:"worker_hours"`
	OfficialCost   float64 `json:"official_cost"`
	WorkerCost     float64 `json:"worker_cost"`
	TotalLaborCost float64 `json:"total_labor_cost"`
}

// Labor computes hours and costs for one labor entry. It is called
// uniformly across hourly reports, fixed reports (labor may be absent),
// and hourly extra-work reports, so a nil labor entry or project is not
// an error: it yields an all-zero result.
func Labor(labor *models.LaborEntry, project *models.Project) LaborResult {
	if labor == nil || project == nil {
		return LaborResult{}
	}

	officialHours := HoursBetween(labor.OfficialEntry, labor.OfficialExit)
	workerHours := HoursBetween(labor.WorkerEntry, labor.WorkerExit)

	officialCost := officialHours * sanitize(project.OfficialRate.Float())
	workerCost := workerHours * sanitize(project.WorkerRate.Float())

	return LaborResult{
		OfficialHours:  officialHours,
		WorkerHours:    workerHours,
		OfficialCost:   officialCost,
		WorkerCost:     workerCost,
		TotalLaborCost: officialCost + workerCost,
	}
}
