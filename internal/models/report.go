package models

import "time"

// ExtraWorkType distinguishes how out-of-budget work on a fixed project is
// billed: a flat additional budget, or hourly at the project rates.
type ExtraWorkType string

const (
	ExtraWorkTypeAdditionalBudget ExtraWorkType = "additional_budget"
	ExtraWorkTypeHourly           ExtraWorkType = "hourly"
)

// LaborEntry holds the four optional "HH:MM" clock times of a work day,
// one entry/exit pair per role. A missing endpoint means that role did
// not work that day.
type LaborEntry struct {
	OfficialEntry string `gorm:"size:5" json:"official_entry"`
	OfficialExit  string `gorm:"size:5" json:"official_exit"`
	WorkerEntry   string `gorm:"size:5" json:"worker_entry"`
	WorkerExit    string `gorm:"size:5" json:"worker_exit"`
}

// MaterialItem is one purchased-material line on a report.
type MaterialItem struct {
	Base
	ReportID    string `gorm:"type:uuid;not null;index" json:"report_id"`
	Description string `json:"description"`
	Cost        Amount `json:"cost"`
}

// Report is one daily work report filed against a project. Exactly one of
// three billing modes applies, determined by the project's type together
// with IsExtraWork and ExtraWorkType: normal hourly billing, normal
// fixed-budget invoicing, or extra work on a fixed project.
//
// WeekNumber is the ISO week of ReportDate, computed at write time and
// stored; summaries group by it verbatim instead of re-deriving it.
// TotalCost is a denormalized figure some clients store on hourly
// extra-work reports; it is only ever used as a fallback when summing
// extra work.
type Report struct {
	Base
	UserID     string    `gorm:"type:uuid;not null;index" json:"user_id"`
	ProjectID  string    `gorm:"type:uuid;not null;index" json:"project_id"`
	ReportDate time.Time `gorm:"not null;index" json:"report_date"`
	WeekNumber int       `gorm:"not null" json:"week_number"`

	Labor     LaborEntry     `gorm:"embedded;embeddedPrefix:labor_" json:"labor"`
	Materials []MaterialItem `gorm:"foreignKey:ReportID" json:"materials"`

	InvoicedAmount    Amount        `json:"invoiced_amount"`
	IsExtraWork       bool          `gorm:"default:false" json:"is_extra_work"`
	ExtraWorkType     ExtraWorkType `gorm:"size:32" json:"extra_work_type,omitempty"`
	ExtraBudgetAmount Amount        `json:"extra_budget_amount"`
	TotalCost         *Amount       `json:"total_cost,omitempty"`

	Notes string `json:"notes,omitempty"`

	// Relationships
	Project Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}
