package models

import "time"

type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"size:512;not null" json:"name"`
	Email     string `gorm:"size:512;not null" json:"email"`
	EmailHash string `gorm:"size:64;uniqueIndex;not null" json:"-"`
	Password  string `gorm:"size:255;not null" json:"-"`
	Gender    string `gorm:"size:512" json:"gender,omitempty"`
	BirthDate string `gorm:"size:512" json:"date_of_birth,omitempty"`
	// Coins is mutated only inside ledger transactions and must never go negative.
	Coins         int64     `gorm:"not null;default:0" json:"coins"`
	EquippedAsset *string   `gorm:"size:255" json:"equipped_asset,omitempty"`
	Deleted       bool      `gorm:"not null;default:false" json:"-"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
}

func (User) TableName() string {
	return "users"
}
