package models

import (
	"time"
)

// Link associates one block with one requirement inside a model. The unique
// index keeps the (model, block, requirement) triple single-valued even under
// concurrent creates.
type Link struct {
	ID            string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ModelID       string    `json:"modelId" gorm:"type:uuid;not null;uniqueIndex:idx_model_block_requirement"`
	BlockID       string    `json:"blockId" gorm:"type:uuid;not null;uniqueIndex:idx_model_block_requirement"`
	RequirementID string    `json:"requirementId" gorm:"type:uuid;not null;uniqueIndex:idx_model_block_requirement"`
	CreatedAt     time.Time `json:"createdAt"`

	// Relations
	Model       Model       `json:"-" gorm:"foreignKey:ModelID;constraint:OnDelete:CASCADE"`
	Block       Block       `json:"block,omitempty" gorm:"foreignKey:BlockID;constraint:OnDelete:CASCADE"`
	Requirement Requirement `json:"requirement,omitempty" gorm:"foreignKey:RequirementID;constraint:OnDelete:CASCADE"`
}
