package dto

// CreateDiagramRequest represents the request payload for creating a diagram
type CreateDiagramRequest struct {
	Name    string `json:"name" binding:"required,max=255"`
	Type    string `json:"type" binding:"required,oneof=BDD IBD"`
	ModelID string `json:"modelId" binding:"required"`
}

// UpdateDiagramRequest represents the request payload for renaming or
// retyping a diagram. Nil fields are left untouched.
type UpdateDiagramRequest struct {
	Name *string `json:"name" binding:"omitempty,max=255"`
	Type *string `json:"type" binding:"omitempty,oneof=BDD IBD"`
}

// PlaceBlockRequest represents the position payload when placing or moving a
// block on a diagram. Width and height keep their current (or default) values
// when omitted.
type PlaceBlockRequest struct {
	X      float64  `json:"x"`
	Y      float64  `json:"y"`
	Width  *float64 `json:"width"`
	Height *float64 `json:"height"`
}
