package models

import (
	"time"

	"gorm.io/gorm"
)

// DocketStatus — статус жизненного цикла докета.
type DocketStatus string

const (
	StatusDrafted     DocketStatus = "DRAFTED"
	StatusSubmitted   DocketStatus = "SUBMITTED"
	StatusApproved    DocketStatus = "APPROVED"
	StatusRejected    DocketStatus = "REJECTED"
	StatusRecommended DocketStatus = "RECOMMENDED"
	StatusClosed      DocketStatus = "CLOSED"
)

// AllDocketStatuses lists every defined status (used for validation).
var AllDocketStatuses = []DocketStatus{
	StatusDrafted, StatusSubmitted, StatusApproved,
	StatusRejected, StatusRecommended, StatusClosed,
}

// Known reports whether s is one of the defined statuses.
func (s DocketStatus) Known() bool {
	for _, v := range AllDocketStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Terminal reports whether no outbound transition exists from s.
func (s DocketStatus) Terminal() bool {
	return s == StatusRejected || s == StatusClosed
}

type MaintenanceType string

const (
	TypeComprehensive         MaintenanceType = "COMPREHENSIVE"
	TypePreventiveScheduled   MaintenanceType = "PREVENTIVE_SCHEDULED"
	TypePreventiveUnscheduled MaintenanceType = "PREVENTIVE_UNSCHEDULED"
)

type DocketCategory string

const (
	CategoryICT        DocketCategory = "ICT"
	CategoryElectrical DocketCategory = "ELECTRICAL"
	CategoryPlumbing   DocketCategory = "PLUMBING"
	CategoryHVAC       DocketCategory = "HVAC"
	CategoryOther      DocketCategory = "OTHER"
)

type SLACategory string

const (
	SLACritical SLACategory = "CRITICAL"
	SLANormal   SLACategory = "NORMAL"
	SLALow      SLACategory = "LOW"
)

// Attachments — ссылки на фото "до" и "после" работ.
type Attachments struct {
	Before []string `json:"before"`
	After  []string `json:"after"`
}

type MaintenanceDocket struct {
	ID        string         `gorm:"primaryKey;size:64" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// DocketNo присваивается один раз при создании и не меняется.
	DocketNo    string          `gorm:"uniqueIndex;size:32;not null" json:"docket_no"`
	Title       string          `gorm:"size:255;not null" json:"title"`
	Description string          `gorm:"type:text" json:"description"`
	Type        MaintenanceType `gorm:"size:64;not null" json:"type"`
	Category    DocketCategory  `gorm:"size:32;not null" json:"category"`
	SLACategory SLACategory     `gorm:"size:32;not null" json:"sla_category"`
	Status      DocketStatus    `gorm:"size:32;not null;index" json:"status"`
	Location    string          `gorm:"size:255" json:"location"`

	AssetID    string `gorm:"size:64;index" json:"asset_id,omitempty"`
	AssignedTo string `gorm:"size:64" json:"assigned_to,omitempty"`

	RequestedBy   string    `gorm:"size:255;not null" json:"requested_by"`
	SubmittedBy   string    `gorm:"size:255;not null" json:"submitted_by"`
	SubmittedDate time.Time `json:"submitted_date"`

	EstimatedCompletionDate string     `gorm:"size:32" json:"estimated_completion_date"`
	ActualCompletionDate    *time.Time `json:"actual_completion_date,omitempty"`

	// Каждый переход статуса атомарно обновляет обе записи last action.
	LastActionBy   string    `gorm:"size:255" json:"last_action_by"`
	LastActionDate time.Time `json:"last_action_date"`

	Remarks     string      `gorm:"type:text" json:"remarks,omitempty"`
	Attachments Attachments `gorm:"serializer:json" json:"attachments"`
	IsOverdue   bool        `json:"is_overdue"`
}

// Clone returns a deep copy. Status transitions are copy-on-write: the
// store diffs old vs new snapshots, so the input must never be mutated.
func (d *MaintenanceDocket) Clone() *MaintenanceDocket {
	cp := *d
	cp.Attachments.Before = append([]string(nil), d.Attachments.Before...)
	cp.Attachments.After = append([]string(nil), d.Attachments.After...)
	if d.ActualCompletionDate != nil {
		t := *d.ActualCompletionDate
		cp.ActualCompletionDate = &t
	}
	return &cp
}
