package dto

import (
	"time"

	"github.com/blocktrace/models"
)

// ShareModelRequest represents the request payload for sharing a model with
// another user by email
type ShareModelRequest struct {
	ModelID    string `json:"modelId" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Permission string `json:"permission" binding:"omitempty,oneof=view edit"`
}

// SharedModelItem is one entry in the models-shared-with-me listing
type SharedModelItem struct {
	ID         string            `json:"id"`
	Permission models.Permission `json:"permission"`
	SharedAt   time.Time         `json:"sharedAt"`
	Model      SharedModelInfo   `json:"model"`
}

// SharedModelInfo summarizes the shared model and its owner
type SharedModelInfo struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Owner       ModelOwner `json:"owner"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
