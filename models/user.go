package models

import (
	"time"
)

// User represents a registered account. Users own models and requirements;
// requirement ownership is independent of model sharing.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"` // Password is not exposed in JSON
	Name      *string   `json:"name" gorm:"default:null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations
	Models       []Model       `json:"models,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Requirements []Requirement `json:"requirements,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Shares       []ModelShare  `json:"shares,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
