package calc

import (
	"fmt"
	"sort"

	"obralog/internal/models"
)

// Totals is the global roll-up over a set of reports. Income covers the
// two normal billing modes (labor cost for hourly projects, invoiced
// amounts for fixed ones); extra work accumulates into the extra fields
// and only the extra budget joins income in GrandTotal, so hourly extra
// cost is never recognized as revenue twice.
type Totals struct {
	TotalLabor     float64 `json:"total_labor"`
	TotalMaterials float64 `json:"total_materials"`
	TotalInvoiced  float64 `json:"total_invoiced"`
	TotalIncome    float64 `json:"total_income"`
	TotalCost      float64 `json:"total_cost"`

	TotalOfficialHours float64 `json:"total_official_hours"`
	TotalWorkerHours   float64 `json:"total_worker_hours"`
	TotalHours         float64 `json:"total_hours"`

	TotalExtraBudget        float64 `json:"total_extra_budget"`
	TotalExtraCost          float64 `json:"total_extra_cost"`
	TotalExtraOfficialHours float64 `json:"total_extra_official_hours"`
	TotalExtraWorkerHours   float64 `json:"total_extra_worker_hours"`
	TotalExtraHours         float64 `json:"total_extra_hours"`

	GrandTotal float64 `json:"grand_total"`

	// Budget is set only when the summary is scoped to a single
	// fixed-price project.
	Budget *BudgetResult `json:"budget,omitempty"`
}

// WeekBucket aggregates the reports of one stored week number within one
// calendar year.
type WeekBucket struct {
	Key           string  `json:"key"`
	Week          int     `json:"week"`
	Year          int     `json:"year"`
	LaborCost     float64 `json:"labor_cost"`
	MaterialsCost float64 `json:"materials_cost"`
	Income        float64 `json:"income"`
	Invoiced      float64 `json:"invoiced"`
	OfficialHours float64 `json:"official_hours"`
	WorkerHours   float64 `json:"worker_hours"`
	ExtraBudget   float64 `json:"extra_budget"`
	ExtraCost     float64 `json:"extra_cost"`
	ReportCount   int     `json:"report_count"`
}

// ProjectBucket aggregates the reports of one project, carrying the
// project's type and budget for downstream display.
type ProjectBucket struct {
	ProjectID     string             `json:"project_id"`
	Name          string             `json:"name"`
	Type          models.ProjectType `json:"type"`
	BudgetAmount  float64            `json:"budget_amount"`
	LaborCost     float64            `json:"labor_cost"`
	MaterialsCost float64            `json:"materials_cost"`
	Income        float64            `json:"income"`
	Invoiced      float64            `json:"invoiced"`
	OfficialHours float64            `json:"official_hours"`
	WorkerHours   float64            `json:"worker_hours"`
	ExtraBudget   float64            `json:"extra_budget"`
	ExtraCost     float64            `json:"extra_cost"`
	ReportCount   int                `json:"report_count"`
}

// SummaryResult is the full output of Summary: grand totals, a per-week
// breakdown sorted ascending by (year, week), and a per-project breakdown
// sorted descending by income. SkippedReports counts reports dropped
// because their project could not be resolved; the caller decides whether
// that is worth logging.
type SummaryResult struct {
	Totals         Totals          `json:"totals"`
	ByWeek         []WeekBucket    `json:"by_week"`
	ByProject      []ProjectBucket `json:"by_project"`
	SkippedReports int             `json:"-"`
}

// weekKey groups reports by stored week number and calendar year. The
// year deliberately comes from the report date, not from the ISO week:
// a report dated Jan 1 can carry week 52 of the previous ISO year and
// will bucket under "52-<new year>". Stored data has always grouped this
// way and consumers key off it, so the formula is preserved as is.
type weekKey struct {
	Year int
	Week int
}

// Summary rolls a set of reports and projects up into totals, weekly
// buckets, and per-project buckets, optionally scoped to one project.
// Labor and materials are always recomputed from the report's raw fields;
// denormalized numbers stored on reports are not trusted, except for the
// hourly extra-work total fallback handled by ExtraWork.
//
// Summary never returns an error: a malformed report contributes zero to
// the fields it cannot supply, and a report whose project is unknown is
// skipped entirely.
func Summary(reports []models.Report, projects []models.Project, selectedProjectID string) SummaryResult {
	projectsByID := make(map[string]*models.Project, len(projects))
	for i := range projects {
		projectsByID[projects[i].ID] = &projects[i]
	}

	var result SummaryResult
	weeks := make(map[weekKey]*WeekBucket)
	perProject := make(map[string]*ProjectBucket)

	for i := range reports {
		r := &reports[i]
		if selectedProjectID != "" && r.ProjectID != selectedProjectID {
			continue
		}
		project, ok := projectsByID[r.ProjectID]
		if !ok {
			result.SkippedReports++
			continue
		}

		labor := Labor(&r.Labor, project)
		materials := Materials(r.Materials)

		wk := weekKey{Year: r.ReportDate.Year(), Week: r.WeekNumber}
		week := weeks[wk]
		if week == nil {
			week = &WeekBucket{
				Key:  fmt.Sprintf("%d-%d", wk.Week, wk.Year),
				Week: wk.Week,
				Year: wk.Year,
			}
			weeks[wk] = week
		}

		bucket := perProject[project.ID]
		if bucket == nil {
			bucket = &ProjectBucket{
				ProjectID:    project.ID,
				Name:         project.Name,
				Type:         project.Type,
				BudgetAmount: sanitize(project.BudgetAmount.Float()),
			}
			perProject[project.ID] = bucket
		}

		week.ReportCount++
		bucket.ReportCount++

		totals := &result.Totals
		switch ResolveMode(r, project) {
		case ModeHourlyNormal:
			income := labor.TotalLaborCost
			totals.TotalLabor += labor.TotalLaborCost
			totals.TotalMaterials += materials.TotalMaterialsCost
			totals.TotalIncome += income
			totals.TotalOfficialHours += labor.OfficialHours
			totals.TotalWorkerHours += labor.WorkerHours

			week.LaborCost += labor.TotalLaborCost
			week.MaterialsCost += materials.TotalMaterialsCost
			week.Income += income
			week.OfficialHours += labor.OfficialHours
			week.WorkerHours += labor.WorkerHours

			bucket.LaborCost += labor.TotalLaborCost
			bucket.MaterialsCost += materials.TotalMaterialsCost
			bucket.Income += income
			bucket.OfficialHours += labor.OfficialHours
			bucket.WorkerHours += labor.WorkerHours

		case ModeFixedNormal:
			// Invoiced amounts are the income; labor and materials are
			// still tracked so fixed projects can be checked for
			// efficiency against what they cost.
			income := sanitize(r.InvoicedAmount.Float())
			totals.TotalLabor += labor.TotalLaborCost
			totals.TotalMaterials += materials.TotalMaterialsCost
			totals.TotalInvoiced += income
			totals.TotalIncome += income
			totals.TotalOfficialHours += labor.OfficialHours
			totals.TotalWorkerHours += labor.WorkerHours

			week.LaborCost += labor.TotalLaborCost
			week.MaterialsCost += materials.TotalMaterialsCost
			week.Income += income
			week.Invoiced += income
			week.OfficialHours += labor.OfficialHours
			week.WorkerHours += labor.WorkerHours

			bucket.LaborCost += labor.TotalLaborCost
			bucket.MaterialsCost += materials.TotalMaterialsCost
			bucket.Income += income
			bucket.Invoiced += income
			bucket.OfficialHours += labor.OfficialHours
			bucket.WorkerHours += labor.WorkerHours

		case ModeExtraBudget:
			amount := sanitize(r.ExtraBudgetAmount.Float())
			totals.TotalExtraBudget += amount
			week.ExtraBudget += amount
			bucket.ExtraBudget += amount

		case ModeExtraHourly:
			cost := labor.TotalLaborCost + materials.TotalMaterialsCost
			totals.TotalExtraCost += cost
			totals.TotalMaterials += materials.TotalMaterialsCost
			totals.TotalExtraOfficialHours += labor.OfficialHours
			totals.TotalExtraWorkerHours += labor.WorkerHours

			week.ExtraCost += cost
			week.MaterialsCost += materials.TotalMaterialsCost
			bucket.ExtraCost += cost
			bucket.MaterialsCost += materials.TotalMaterialsCost

		case ModeExtraUnknown:
			// Counted toward the report counts above, contributes no money.
		}
	}

	totals := &result.Totals
	totals.TotalCost = totals.TotalLabor + totals.TotalMaterials
	totals.TotalHours = totals.TotalOfficialHours + totals.TotalWorkerHours
	totals.TotalExtraHours = totals.TotalExtraOfficialHours + totals.TotalExtraWorkerHours
	totals.GrandTotal = totals.TotalIncome + totals.TotalExtraBudget

	if selectedProjectID != "" {
		if project, ok := projectsByID[selectedProjectID]; ok && project.IsFixed() {
			budget := Budget(project, reports)
			totals.Budget = &budget
		}
	}

	result.ByWeek = make([]WeekBucket, 0, len(weeks))
	for _, w := range weeks {
		result.ByWeek = append(result.ByWeek, *w)
	}
	sort.Slice(result.ByWeek, func(i, j int) bool {
		if result.ByWeek[i].Year != result.ByWeek[j].Year {
			return result.ByWeek[i].Year < result.ByWeek[j].Year
		}
		return result.ByWeek[i].Week < result.ByWeek[j].Week
	})

	result.ByProject = make([]ProjectBucket, 0, len(perProject))
	for _, p := range perProject {
		result.ByProject = append(result.ByProject, *p)
	}
	sort.Slice(result.ByProject, func(i, j int) bool {
		return result.ByProject[i].Income > result.ByProject[j].Income
	})

	return result
}
