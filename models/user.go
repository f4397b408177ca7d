package models

import (
	"time"
)

// User is a business account. Email is stored lowercase and trimmed;
// the password column only ever holds a bcrypt hash.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	BusinessName string    `json:"businessName" gorm:"size:100;not null"`
	BusinessType string    `json:"businessType" gorm:"size:50;not null"`
	Email        string    `json:"email" gorm:"size:100;uniqueIndex;not null"`
	Password     string    `json:"-" gorm:"size:255;not null"`
	IsActive     bool      `json:"isActive" gorm:"default:true;index"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TableName sets the table name.
func (User) TableName() string {
	return "users"
}
