package models

import "time"

// History is an immutable snapshot of a cart line taken at checkout.
// Rows are only ever inserted; nothing in the API mutates or deletes them.
type History struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"UserId"`
	ProductID uint      `gorm:"not null" json:"ProductId"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"Product"`
	CreatedAt time.Time `json:"created_at"`
}
