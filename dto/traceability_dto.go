package dto

import (
	"github.com/blocktrace/models"
)

// RequirementTrace is a requirement annotated with the blocks it links to
type RequirementTrace struct {
	models.Requirement
	LinkedBlocks []string `json:"linkedBlocks"`
}

// BlockTrace is a block annotated with the requirements linked to it
type BlockTrace struct {
	models.Block
	LinkedRequirements []string `json:"linkedRequirements"`
}

// TraceabilityMatrix maps each requirement to its linked blocks and each
// block to its linked requirements. Recomputed in full on every call.
type TraceabilityMatrix struct {
	Requirements []RequirementTrace `json:"requirements"`
	Blocks       []BlockTrace       `json:"blocks"`
}

// TraceabilityResponse bundles the raw rows with the derived matrix
type TraceabilityResponse struct {
	Requirements []models.Requirement `json:"requirements"`
	Blocks       []models.Block       `json:"blocks"`
	Links        []models.Link        `json:"links"`
	Matrix       TraceabilityMatrix   `json:"matrix"`
}
