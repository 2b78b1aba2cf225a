package models

import "time"

// Achievement kinds. Missions and quizzes are structurally identical for
// completion purposes; quizzes additionally carry questions.
const (
	KindMission = "mission"
	KindQuiz    = "quiz"
)

type Achievement struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Kind        string    `gorm:"size:10;not null;index" json:"kind"`
	Category    string    `gorm:"size:20;not null" json:"category"`
	Description string    `gorm:"size:500;not null" json:"description"`
	Experience  int64     `gorm:"not null;default:0" json:"experience"`
	Available   bool      `gorm:"not null;default:true" json:"available"`
	CreatedAt   time.Time `json:"created_at"`

	// Associations
	Rewards   []Reward   `gorm:"many2many:achievement_rewards" json:"rewards,omitempty"`
	Questions []Question `gorm:"foreignKey:AchievementID" json:"questions,omitempty"`
}

func (Achievement) TableName() string {
	return "achievements"
}
