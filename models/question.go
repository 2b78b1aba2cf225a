package models

// Question belongs to a quiz achievement. WrongAnswers holds the distractor
// options as a pipe-separated list, mirroring how the mobile client consumes them.
type Question struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	AchievementID uint   `gorm:"not null;index" json:"achievement_id"`
	Question      string `gorm:"size:500;not null" json:"question"`
	Answer        string `gorm:"size:255;not null" json:"answer"`
	WrongAnswers  string `gorm:"size:1000" json:"wrong_answers"`
}

func (Question) TableName() string {
	return "questions"
}
