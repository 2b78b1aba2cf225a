package models

import "time"

type ShopItem struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Category string `gorm:"size:20" json:"category"`
	Price    int64  `gorm:"not null" json:"price"`
	Active   bool   `gorm:"not null;default:true" json:"active"`
	// ImageName is the object key in the asset bucket; presigned on read.
	ImageName string    `gorm:"size:255" json:"-"`
	CreatedAt time.Time `json:"-"`
}

func (ShopItem) TableName() string {
	return "shop_items"
}

// Purchase marks ownership of an item, at most once per (user, item).
// Append-only, like Completion.
type Purchase struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;uniqueIndex:idx_purchase_user_item" json:"user_id"`
	ItemID         uint      `gorm:"not null;uniqueIndex:idx_purchase_user_item" json:"item_id"`
	TransactionRef string    `gorm:"size:40;not null" json:"transaction_ref"`
	Amount         int64     `gorm:"not null" json:"amount"`
	PurchasedAt    time.Time `gorm:"autoCreateTime" json:"purchased_at"`
}

func (Purchase) TableName() string {
	return "purchases"
}
