package models

import (
	"time"
)

// Spending categories for outflows.
const (
	CategoryRestocking = "restocking"
	CategoryDelivery   = "delivery"
	CategoryUtilities  = "utilities"
	CategoryRent       = "rent"
	CategorySalaries   = "salaries"
	CategoryOther      = "other"
)

// OutflowCategories returns every valid spending category.
func OutflowCategories() []string {
	return []string{
		CategoryRestocking,
		CategoryDelivery,
		CategoryUtilities,
		CategoryRent,
		CategorySalaries,
		CategoryOther,
	}
}

// Outflow is a spent-cash event belonging to one user. Same shape as
// Inflow with a spending category instead of a payment channel.
type Outflow struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"not null;index:idx_outflows_user_date,priority:1;index:idx_outflows_user_deleted_date,priority:1"`
	Amount    float64   `json:"amount" gorm:"type:decimal(10,2);not null"`
	Date      time.Time `json:"date" gorm:"not null;index:idx_outflows_user_date,priority:2,sort:desc;index:idx_outflows_user_deleted_date,priority:3,sort:desc"`
	Category  string    `json:"category" gorm:"size:20;not null;default:other"`
	Note      string    `json:"note,omitempty" gorm:"size:500"`
	IsDeleted bool      `json:"-" gorm:"not null;default:false;index:idx_outflows_user_deleted_date,priority:2"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	User      User      `json:"-" gorm:"foreignKey:UserID"`
}

// TableName sets the table name.
func (Outflow) TableName() string {
	return "outflows"
}
