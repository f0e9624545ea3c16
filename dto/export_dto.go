package dto

import (
	"encoding/json"
	"time"

	"github.com/blocktrace/models"
)

// ExportMetadata describes an export run
type ExportMetadata struct {
	ExportVersion    string    `json:"exportVersion"`
	ExportID         string    `json:"exportId"`
	ExportedAt       time.Time `json:"exportedAt"`
	ExportedBy       string    `json:"exportedBy"`
	ModelID          string    `json:"modelId"`
	ModelName        string    `json:"modelName"`
	ModelDescription string    `json:"modelDescription"`
	OriginalAuthor   string    `json:"originalAuthor"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// ExportDiagram carries the opaque geometry document of the exported model
type ExportDiagram struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	DiagramData json.RawMessage `json:"diagramData"`
}

// ExportRequirement is the requirement shape embedded in export documents
type ExportRequirement struct {
	ID          string                     `json:"id"`
	Title       string                     `json:"title"`
	Description string                     `json:"description"`
	Priority    models.RequirementPriority `json:"priority"`
	Status      models.RequirementStatus   `json:"status"`
	CreatedAt   time.Time                  `json:"createdAt"`
}

// ExportLink is the link shape embedded in export documents. The requirement
// is embedded (not just referenced) so imports can remap ids.
type ExportLink struct {
	ID          string            `json:"id"`
	BlockID     string            `json:"blockId"`
	ModelID     string            `json:"modelId"`
	Requirement ExportRequirement `json:"requirement"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// ExportDocument is the full JSON export of a model
type ExportDocument struct {
	Metadata     ExportMetadata      `json:"metadata"`
	Diagram      ExportDiagram       `json:"diagram"`
	Requirements []ExportRequirement `json:"requirements"`
	Links        []ExportLink        `json:"links"`
}

// ImportRequest represents the request payload for importing a model from an
// export document
type ImportRequest struct {
	ModelName  string         `json:"modelName" binding:"required"`
	ImportData ExportDocument `json:"importData" binding:"required"`
}
