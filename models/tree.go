package models

import "time"

// Tree is the per-user accumulated experience counter. One row per user,
// lazily created on the first achievement completion (or seeded at signup).
// Level only ever increases.
type Tree struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	Level     int64     `gorm:"not null;default:1" json:"level"`
	UpdatedAt time.Time `json:"-"`
}

func (Tree) TableName() string {
	return "trees"
}
