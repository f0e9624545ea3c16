package dto

// CreateLinkRequest represents the request payload for linking one block to
// one requirement within a model
type CreateLinkRequest struct {
	ModelID       string `json:"modelId" binding:"required"`
	BlockID       string `json:"blockId" binding:"required"`
	RequirementID string `json:"requirementId" binding:"required"`
}

// ReplaceLinksRequest represents the full-replace payload for a requirement's
// block links. An empty BlockIDs list removes every link of the requirement
// in the model.
type ReplaceLinksRequest struct {
	ModelID  string   `json:"modelId" binding:"required"`
	BlockIDs []string `json:"blockIds"`
}
