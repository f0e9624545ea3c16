package dto

// CreateRequirementRequest represents the request payload for creating a
// requirement
type CreateRequirementRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Priority    string  `json:"priority" binding:"omitempty,oneof=low medium high critical"`
	Status      string  `json:"status" binding:"omitempty,oneof=open in_progress completed cancelled"`
	ModelID     *string `json:"modelId"`
}

// UpdateRequirementRequest represents the request payload for updating a
// requirement. Nil fields are left untouched.
type UpdateRequirementRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high critical"`
	Status      *string `json:"status" binding:"omitempty,oneof=open in_progress completed cancelled"`
	ModelID     *string `json:"modelId"`
}
