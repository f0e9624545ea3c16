package models

import (
	"time"

	"gorm.io/datatypes"
)

// Model is the top-level container for a system design: blocks, requirements,
// links, shares and diagrams all hang off it. DiagramData holds the canvas
// geometry document; the backend stores it opaquely and never interprets it
// outside the export path.
type Model struct {
	ID          string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name        string         `json:"name" gorm:"not null"`
	Description string         `json:"description" gorm:"default:null"`
	DiagramData datatypes.JSON `json:"diagramData" gorm:"type:jsonb"`
	UserID      string         `json:"userId" gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`

	// Relations
	User         User          `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Blocks       []Block       `json:"blocks,omitempty" gorm:"foreignKey:ModelID;constraint:OnDelete:CASCADE"`
	Requirements []Requirement `json:"requirements,omitempty" gorm:"foreignKey:ModelID;constraint:OnDelete:CASCADE"`
	Links        []Link        `json:"links,omitempty" gorm:"foreignKey:ModelID;constraint:OnDelete:CASCADE"`
	Shares       []ModelShare  `json:"shares,omitempty" gorm:"foreignKey:ModelID;constraint:OnDelete:CASCADE"`
	Diagrams     []Diagram     `json:"diagrams,omitempty" gorm:"foreignKey:ModelID;constraint:OnDelete:CASCADE"`
}
