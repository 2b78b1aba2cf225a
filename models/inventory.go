package models

// InventoryEntry holds a purchased item for a user. Invariant maintained by
// the ledger: at most one entry per user has Equipped=true at any time.
type InventoryEntry struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	UserID   uint `gorm:"not null;uniqueIndex:idx_inventory_user_item" json:"user_id"`
	ItemID   uint `gorm:"not null;uniqueIndex:idx_inventory_user_item" json:"item_id"`
	Quantity int  `gorm:"not null;default:1" json:"quantity"`
	Equipped bool `gorm:"not null;default:false" json:"equipped"`
}

func (InventoryEntry) TableName() string {
	return "inventory"
}
