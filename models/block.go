package models

import (
	"time"
)

// BlockType represents the kind of system element a block stands for
type BlockType string

const (
	BlockTypeComponent BlockType = "COMPONENT"
	BlockTypeSubsystem BlockType = "SUBSYSTEM"
	BlockTypeFunction  BlockType = "FUNCTION"
)

// Block is a node in a per-model tree. The parent relation restricted to one
// model must stay a forest; cycle checks happen at write time in the block
// service, the database only backstops referential integrity.
type Block struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description" gorm:"default:null"`
	Type        BlockType `json:"type" gorm:"type:varchar(20);not null;default:'COMPONENT'"`
	ModelID     string    `json:"modelId" gorm:"type:uuid;not null;index"`
	ParentID    *string   `json:"parentId" gorm:"type:uuid;index"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Relations
	Model    Model   `json:"-" gorm:"foreignKey:ModelID;constraint:OnDelete:CASCADE"`
	Parent   *Block  `json:"parent,omitempty" gorm:"foreignKey:ParentID;constraint:OnDelete:SET NULL"`
	Children []Block `json:"children,omitempty" gorm:"foreignKey:ParentID"`
}
