package models

import (
	"time"
)

// DiagramType represents the SysML view kind of a diagram
type DiagramType string

const (
	DiagramTypeBDD DiagramType = "BDD"
	DiagramTypeIBD DiagramType = "IBD"
)

// Diagram is a named visual view over a subset of a model's blocks.
type Diagram struct {
	ID        string      `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name      string      `json:"name" gorm:"not null"`
	Type      DiagramType `json:"type" gorm:"type:varchar(10);not null"`
	ModelID   string      `json:"modelId" gorm:"type:uuid;not null;index"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`

	// Relations
	Model         Model          `json:"-" gorm:"foreignKey:ModelID;constraint:OnDelete:CASCADE"`
	DiagramBlocks []DiagramBlock `json:"diagramBlocks,omitempty" gorm:"foreignKey:DiagramID;constraint:OnDelete:CASCADE"`
}

// DiagramBlock records a block's position and size inside one diagram.
// One row per (diagram, block) pair; repositioning updates the row.
type DiagramBlock struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	DiagramID string    `json:"diagramId" gorm:"type:uuid;not null;uniqueIndex:idx_diagram_block"`
	BlockID   string    `json:"blockId" gorm:"type:uuid;not null;uniqueIndex:idx_diagram_block"`
	X         float64   `json:"x" gorm:"not null;default:0"`
	Y         float64   `json:"y" gorm:"not null;default:0"`
	Width     float64   `json:"width" gorm:"not null;default:120"`
	Height    float64   `json:"height" gorm:"not null;default:80"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations
	Diagram Diagram `json:"-" gorm:"foreignKey:DiagramID;constraint:OnDelete:CASCADE"`
	Block   Block   `json:"block,omitempty" gorm:"foreignKey:BlockID;constraint:OnDelete:CASCADE"`
}
