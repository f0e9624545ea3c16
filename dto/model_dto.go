package dto

import (
	"encoding/json"
	"time"
)

// CreateModelRequest represents the request payload for creating a model.
// DiagramData is the canvas geometry document, stored opaquely.
type CreateModelRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	DiagramData json.RawMessage `json:"diagramData"`
}

// UpdateModelRequest represents the request payload for updating a model.
// Nil fields are left untouched.
type UpdateModelRequest struct {
	Name        *string         `json:"name"`
	Description *string         `json:"description"`
	DiagramData json.RawMessage `json:"diagramData"`
}

// ModelOwner is the owner summary embedded in model responses
type ModelOwner struct {
	ID    string  `json:"id"`
	Email string  `json:"email"`
	Name  *string `json:"name"`
}

// ModelResponse represents the standard response format for a model.
// Permission is the caller's effective level: "owner", "edit" or "view".
type ModelResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	DiagramData json.RawMessage `json:"diagramData"`
	Owner       ModelOwner      `json:"owner"`
	Permission  string          `json:"permission"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
