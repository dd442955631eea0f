package models

import "time"

// Cart is a single cart line: one product with a quantity, owned by one user.
// The composite unique index enforces at most one line per (user, product).
type Cart struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_product" json:"UserId"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_user_product" json:"ProductId"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"Product"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
