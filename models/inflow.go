package models

import (
	"time"
)

// Payment channels for received cash.
const (
	ChannelCash     = "cash"
	ChannelTransfer = "transfer"
	ChannelOnline   = "online"
)

// PaymentChannels returns every valid payment channel.
func PaymentChannels() []string {
	return []string{ChannelCash, ChannelTransfer, ChannelOnline}
}

// Inflow is a received-cash event belonging to one user. Rows are never
// hard-deleted; IsDeleted is composed into every read query instead.
type Inflow struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	UserID         uint      `json:"userId" gorm:"not null;index:idx_inflows_user_date,priority:1;index:idx_inflows_user_deleted_date,priority:1;index:idx_inflows_user_channel_date,priority:1"`
	Amount         float64   `json:"amount" gorm:"type:decimal(10,2);not null"`
	Date           time.Time `json:"date" gorm:"not null;index:idx_inflows_user_date,priority:2,sort:desc;index:idx_inflows_user_deleted_date,priority:3,sort:desc;index:idx_inflows_user_channel_date,priority:3,sort:desc"`
	PaymentChannel string    `json:"paymentChannel" gorm:"size:20;not null;default:cash;index:idx_inflows_user_channel_date,priority:2"`
	Note           string    `json:"note,omitempty" gorm:"size:500"`
	IsDeleted      bool      `json:"-" gorm:"not null;default:false;index:idx_inflows_user_deleted_date,priority:2"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	User           User      `json:"-" gorm:"foreignKey:UserID"`
}

// TableName sets the table name.
func (Inflow) TableName() string {
	return "inflows"
}
