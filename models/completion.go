package models

import "time"

const CompletionDone = 1

// Completion is the durable proof that a user finished an achievement. The
// composite unique index is the authoritative at-most-once guard: a concurrent
// duplicate insert fails here regardless of isolation level.
type Completion struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;uniqueIndex:idx_completion_user_achievement" json:"user_id"`
	AchievementID uint      `gorm:"not null;uniqueIndex:idx_completion_user_achievement" json:"achievement_id"`
	Status        int       `gorm:"not null;default:1" json:"status"`
	CompletedAt   time.Time `gorm:"autoCreateTime" json:"completed_at"`
}

func (Completion) TableName() string {
	return "completions"
}
