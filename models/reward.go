package models

import "time"

// Reward types. Monetary rewards credit coins when granted; the rest are
// cosmetic or informational and only produce a grant record.
const (
	RewardMonetary    = "monetary"
	RewardStatus      = "status"
	RewardBoost       = "boost"
	RewardImpact      = "impact"
	RewardNonMonetary = "nonMonetary"
)

type Reward struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:500" json:"description"`
	Type        string `gorm:"size:20;not null" json:"type"`
	Value       int64  `gorm:"not null;default:0" json:"value"`
	Available   bool   `gorm:"not null;default:true" json:"available"`
}

func (Reward) TableName() string {
	return "rewards"
}

// RewardGrant is append-only: created once per successful grant, never updated
// or deleted. A user can hold each reward at most once.
type RewardGrant struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_grant_user_reward" json:"user_id"`
	RewardID  uint      `gorm:"not null;uniqueIndex:idx_grant_user_reward" json:"reward_id"`
	GrantedAt time.Time `gorm:"autoCreateTime" json:"granted_at"`
}

func (RewardGrant) TableName() string {
	return "reward_grants"
}
