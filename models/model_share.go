package models

import (
	"time"
)

// Permission represents share permission levels on a model
type Permission string

const (
	PermissionView Permission = "view"
	PermissionEdit Permission = "edit"
)

// Satisfies reports whether this permission level covers the required one.
// Edit covers view; view covers only view.
func (p Permission) Satisfies(required Permission) bool {
	if required == PermissionEdit {
		return p == PermissionEdit
	}
	return p == PermissionView || p == PermissionEdit
}

// ModelShare grants a non-owner user view or edit permission on a model.
// At most one share exists per (model, user) pair; re-sharing updates the
// permission in place.
type ModelShare struct {
	ID         string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ModelID    string     `json:"modelId" gorm:"type:uuid;not null;uniqueIndex:idx_model_user"`
	UserID     string     `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_model_user"`
	Permission Permission `json:"permission" gorm:"type:varchar(10);not null;default:'view'"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`

	// Relations
	Model Model `json:"model,omitempty" gorm:"foreignKey:ModelID;constraint:OnDelete:CASCADE"`
	User  User  `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
