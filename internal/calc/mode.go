package calc

import "obralog/internal/models"

// Mode is the billing mode of a report relative to its project. The mode
// is never stored on the report as a single tag: it is derived from the
// project type together with the report's extra-work flags, which can be
// inconsistent in stored data. Resolving the combination once up front
// keeps the flag checks out of the aggregation itself.
type Mode int

const (
	// ModeHourlyNormal bills the report's labor hours at the project rates.
	ModeHourlyNormal Mode = iota
	// ModeFixedNormal bills the report's invoiced amount against the budget.
	ModeFixedNormal
	// ModeExtraBudget is extra work billed as a flat additional budget.
	ModeExtraBudget
	// ModeExtraHourly is extra work billed hourly at the project rates.
	ModeExtraHourly
	// ModeExtraUnknown is extra work with an unrecognized sub-type. Such
	// reports count as extra work but contribute no money.
	ModeExtraUnknown
)

// ResolveMode classifies a report against its project.
func ResolveMode(report *models.Report, project *models.Project) Mode {
	if report.IsExtraWork {
		switch report.ExtraWorkType {
		case models.ExtraWorkTypeAdditionalBudget:
			return ModeExtraBudget
		case models.ExtraWorkTypeHourly:
			return ModeExtraHourly
		default:
			return ModeExtraUnknown
		}
	}
	if project != nil && project.IsFixed() {
		return ModeFixedNormal
	}
	return ModeHourlyNormal
}
