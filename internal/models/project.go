package models

// ProjectType determines how a project's income is attributed: hourly
// projects bill labor hours at the project rates, fixed projects bill
// invoiced amounts against a contracted budget.
type ProjectType string

const (
	ProjectTypeHourly ProjectType = "hourly"
	ProjectTypeFixed  ProjectType = "fixed"
)

// Project represents a client project that daily work reports are filed
// against. OfficialRate and WorkerRate apply to hourly billing and to
// hourly-billed extra work on fixed projects; BudgetAmount and
// AllowExtraWork are only meaningful when Type is fixed.
type Project struct {
	Base
	UserID         string      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name           string      `gorm:"not null" json:"name"`
	Client         string      `json:"client"`
	Type           ProjectType `gorm:"not null;default:hourly" json:"type"`
	OfficialRate   Amount      `json:"official_rate"`
	WorkerRate     Amount      `json:"worker_rate"`
	BudgetAmount   Amount      `json:"budget_amount"`
	AllowExtraWork bool        `gorm:"default:false" json:"allow_extra_work"`
	Currency       string      `gorm:"size:3;default:EUR" json:"currency"`
	Notes          string      `json:"notes,omitempty"`

	// Relationships
	Reports []Report `gorm:"foreignKey:ProjectID" json:"reports,omitempty"`
}

// IsFixed reports whether the project bills against a fixed budget.
func (p *Project) IsFixed() bool { return p.Type == ProjectTypeFixed }
