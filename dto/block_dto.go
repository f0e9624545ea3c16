package dto

import (
	"time"

	"github.com/blocktrace/models"
)

// CreateBlockRequest represents the request payload for creating a block
type CreateBlockRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Type        string  `json:"type" binding:"omitempty,oneof=COMPONENT SUBSYSTEM FUNCTION"`
	ModelID     string  `json:"modelId" binding:"required"`
	ParentID    *string `json:"parentId"`
}

// UpdateBlockRequest represents the request payload for updating a block.
// Nil fields are left untouched; an empty-string ParentID detaches the block
// and promotes it to a root.
type UpdateBlockRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Type        *string `json:"type" binding:"omitempty,oneof=COMPONENT SUBSYSTEM FUNCTION"`
	ParentID    *string `json:"parentId"`
}

// BlockSummary is the shallow parent/child shape embedded in block responses
type BlockSummary struct {
	ID   string           `json:"id"`
	Name string           `json:"name"`
	Type models.BlockType `json:"type"`
}

// BlockResponse represents the standard response format for a block
type BlockResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Type        models.BlockType `json:"type"`
	ModelID     string           `json:"modelId"`
	ParentID    *string          `json:"parentId"`
	Parent      *BlockSummary    `json:"parent,omitempty"`
	Children    []BlockSummary   `json:"children"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}
