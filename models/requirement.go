package models

import (
	"time"
)

// RequirementPriority represents requirement priority levels
type RequirementPriority string

const (
	PriorityLow      RequirementPriority = "low"
	PriorityMedium   RequirementPriority = "medium"
	PriorityHigh     RequirementPriority = "high"
	PriorityCritical RequirementPriority = "critical"
)

// RequirementStatus represents requirement lifecycle states
type RequirementStatus string

const (
	StatusOpen       RequirementStatus = "open"
	StatusInProgress RequirementStatus = "in_progress"
	StatusCompleted  RequirementStatus = "completed"
	StatusCancelled  RequirementStatus = "cancelled"
)

// Requirement is owned by exactly one user and optionally scoped to a model.
// Ownership is the sole authorization axis: sharing a model does not expose
// the owner's requirements to collaborators.
type Requirement struct {
	ID          string              `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title       string              `json:"title" gorm:"not null"`
	Description string              `json:"description" gorm:"default:null"`
	Priority    RequirementPriority `json:"priority" gorm:"type:varchar(10);not null;default:'medium'"`
	Status      RequirementStatus   `json:"status" gorm:"type:varchar(15);not null;default:'open'"`
	UserID      string              `json:"userId" gorm:"type:uuid;not null;index"`
	ModelID     *string             `json:"modelId" gorm:"type:uuid;index"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`

	// Relations
	User  User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Model *Model `json:"model,omitempty" gorm:"foreignKey:ModelID;constraint:OnDelete:CASCADE"`
	Links []Link `json:"links,omitempty" gorm:"foreignKey:RequirementID;constraint:OnDelete:CASCADE"`
}
